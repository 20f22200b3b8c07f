package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hideapp/reminder-service/internal/config"
	"github.com/hideapp/reminder-service/internal/models"
)

// Connect opens a GORM handle backed by a pgx connection, applies the pool
// limits from the configuration, pings the server, and runs auto-migration.
func Connect(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	pgxCfg, err := pgx.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "parse dsn")
	}
	pgxCfg.RuntimeParams["application_name"] = "reminder-service"
	pgxCfg.RuntimeParams["statement_timeout"] = "30000" // 30s

	sqlDB := stdlib.OpenDB(*pgxCfg)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, errors.Wrap(err, "ping database")
	}

	if err := db.AutoMigrate(&models.Reminder{}); err != nil {
		return nil, errors.Wrap(err, "auto migrate")
	}

	slog.Info("database: connected",
		slog.String("host", cfg.Database.Host),
		slog.String("name", cfg.Database.Name))

	return db, nil
}

// Ping verifies connectivity on the underlying connection pool.
func Ping(ctx context.Context, db *gorm.DB, timeout time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "unwrap sql.DB")
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return errors.Wrap(sqlDB.PingContext(pingCtx), "ping database")
}
