package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Op is a comparison operator applied to a single column.
type Op string

const (
	OpEq  Op = "="
	OpGte Op = ">="
	OpLte Op = "<="
)

// Condition is one predicate (column, operator, operand). Conditions passed
// to a repository call are combined with logical AND and translated into
// parameterized SQL; no query-builder expressions leak out of this package.
type Condition struct {
	Column string
	Op     Op
	Value  interface{}
}

// Eq matches rows where column equals value.
func Eq(column string, value interface{}) Condition {
	return Condition{Column: column, Op: OpEq, Value: value}
}

// Gte matches rows where column is greater than or equal to value.
func Gte(column string, value interface{}) Condition {
	return Condition{Column: column, Op: OpGte, Value: value}
}

// Lte matches rows where column is less than or equal to value.
func Lte(column string, value interface{}) Condition {
	return Condition{Column: column, Op: OpLte, Value: value}
}

// Repository provides entity-agnostic CRUD primitives over one table, so each
// entity type needs no bespoke data-access code. Absence is never an error
// here: Get reports it as a nil entity, Delete and Update as a no-op. Only
// storage failures surface, wrapped and untranslated.
type Repository[T any] struct {
	db *gorm.DB
}

// New creates a repository bound to the given database handle.
func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

func (r *Repository[T]) scope(ctx context.Context, conds []Condition) *gorm.DB {
	q := r.db.WithContext(ctx).Model(new(T))
	for _, c := range conds {
		q = q.Where(fmt.Sprintf("%s %s ?", c.Column, c.Op), c.Value)
	}
	return q
}

// Create persists the entity and commits before returning. Server-managed
// timestamps are filled in place; no uniqueness probe is performed.
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return errors.Wrap(err, "create entity")
	}
	return nil
}

// Get returns at most one entity matching all conditions, or nil when
// nothing matches. No ordering is imposed on multi-row matches.
func (r *Repository[T]) Get(ctx context.Context, conds ...Condition) (*T, error) {
	var entity T
	err := r.scope(ctx, conds).Take(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get entity")
	}
	return &entity, nil
}

// Filter returns every entity matching all conditions in storage-native order.
func (r *Repository[T]) Filter(ctx context.Context, conds ...Condition) ([]T, error) {
	var entities []T
	if err := r.scope(ctx, conds).Find(&entities).Error; err != nil {
		return nil, errors.Wrap(err, "filter entities")
	}
	return entities, nil
}

// Delete removes the first entity matching all conditions, committing before
// returning. Nothing matching is not an error.
func (r *Repository[T]) Delete(ctx context.Context, conds ...Condition) error {
	entity, err := r.Get(ctx, conds...)
	if err != nil {
		return err
	}
	if entity == nil {
		return nil
	}
	if err := r.db.WithContext(ctx).Delete(entity).Error; err != nil {
		return errors.Wrap(err, "delete entity")
	}
	return nil
}

// Update overwrites the given fields on the entity with the given id,
// refreshing its updated_at timestamp. Unknown ids are a no-op.
func (r *Repository[T]) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields).Error; err != nil {
		return errors.Wrap(err, "update entity")
	}
	return nil
}
