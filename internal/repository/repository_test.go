package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hideapp/reminder-service/internal/models"
)

func newTestRepo(t *testing.T) *Repository[models.Reminder] {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_fk=1", name, time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite memory: %v", err)
	}
	if err := db.AutoMigrate(&models.Reminder{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	return New[models.Reminder](db)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustCreate(t *testing.T, repo *Repository[models.Reminder], userID uuid.UUID, day time.Time, text string) models.Reminder {
	t.Helper()

	reminder := models.Reminder{
		ID:     uuid.New(),
		UserID: userID,
		Date:   day,
		Text:   text,
	}
	if err := repo.Create(context.Background(), &reminder); err != nil {
		t.Fatalf("create: %v", err)
	}
	return reminder
}

func TestCreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	userID := uuid.New()

	created := mustCreate(t, repo, userID, date(2024, 1, 1), "pay rent")

	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be filled on create, got %v / %v", created.CreatedAt, created.UpdatedAt)
	}

	got, err := repo.Get(context.Background(), Eq("id", created.ID))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected reminder, got nil")
	}
	if got.ID != created.ID || got.UserID != userID || got.Text != "pay rent" {
		t.Fatalf("unexpected reminder: %+v", got)
	}
}

func TestGetAbsentReturnsNil(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.Get(context.Background(), Eq("id", uuid.New()))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent row, got %+v", got)
	}
}

func TestConditionsCombineWithAnd(t *testing.T) {
	repo := newTestRepo(t)
	owner := uuid.New()
	other := uuid.New()

	created := mustCreate(t, repo, owner, date(2024, 1, 1), "dentist")
	mustCreate(t, repo, other, date(2024, 1, 1), "dentist")

	got, err := repo.Get(context.Background(), Eq("id", created.ID), Eq("user_id", other))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no match for foreign owner, got %+v", got)
	}
}

func TestFilterDateRange(t *testing.T) {
	repo := newTestRepo(t)
	userID := uuid.New()

	for _, d := range []time.Time{date(2024, 1, 1), date(2024, 1, 15), date(2024, 2, 1)} {
		mustCreate(t, repo, userID, d, "reminder")
	}

	testCases := []struct {
		name  string
		conds []Condition
		want  int
	}{
		{"no range", nil, 3},
		{"lower bound", []Condition{Gte("date", date(2024, 1, 15))}, 2},
		{"upper bound", []Condition{Lte("date", date(2024, 1, 15))}, 2},
		{"both bounds", []Condition{Gte("date", date(2024, 1, 10)), Lte("date", date(2024, 1, 20))}, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conds := append([]Condition{Eq("user_id", userID)}, tc.conds...)
			got, err := repo.Filter(context.Background(), conds...)
			if err != nil {
				t.Fatalf("filter: %v", err)
			}
			if len(got) != tc.want {
				t.Fatalf("expected %d reminders, got %d", tc.want, len(got))
			}
		})
	}
}

func TestDeleteRemovesFirstMatchOnly(t *testing.T) {
	repo := newTestRepo(t)
	userID := uuid.New()

	mustCreate(t, repo, userID, date(2024, 1, 1), "water plants")
	mustCreate(t, repo, userID, date(2024, 1, 2), "water plants")

	if err := repo.Delete(context.Background(), Eq("user_id", userID), Eq("text", "water plants")); err != nil {
		t.Fatalf("delete: %v", err)
	}

	remaining, err := repo.Filter(context.Background(), Eq("user_id", userID))
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected one reminder left, got %d", len(remaining))
	}
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.Delete(context.Background(), Eq("id", uuid.New())); err != nil {
		t.Fatalf("expected no error deleting absent row, got %v", err)
	}
}

func TestUpdateOverwritesFields(t *testing.T) {
	repo := newTestRepo(t)
	userID := uuid.New()

	created := mustCreate(t, repo, userID, date(2024, 1, 1), "old text")

	if err := repo.Update(context.Background(), created.ID, map[string]interface{}{"text": "new text"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.Get(context.Background(), Eq("id", created.ID))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Text != "new text" {
		t.Fatalf("expected updated text, got %+v", got)
	}
	if got.UserID != userID || !got.Date.Equal(created.Date) {
		t.Fatalf("unrelated fields changed: %+v", got)
	}
}

func TestUpdateAbsentIsNoop(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.Update(context.Background(), uuid.New(), map[string]interface{}{"text": "x"}); err != nil {
		t.Fatalf("expected no error updating absent row, got %v", err)
	}
}
