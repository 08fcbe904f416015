package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

// schema creates the vault entry table. seq fixes the list order to insertion order.
const schema = `
	CREATE TABLE IF NOT EXISTS vault_entries (
		seq             BIGINT AUTO_INCREMENT PRIMARY KEY,
		id              CHAR(36)     NOT NULL UNIQUE,
		user_id         VARCHAR(255) NOT NULL,
		site_name       VARCHAR(1024) NOT NULL,
		link            VARCHAR(2048) NOT NULL,
		sealed_password VARBINARY(1024) NOT NULL,
		created_at      TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_vault_entries_user (user_id, seq)
	)`

// NewDB creates a new MySQL database connection pool with the given DSN and
// verifies that the server is reachable.
func NewDB(ctx context.Context, dsn string) (*sql.DB, error) {
	dsn, err := normalizeDSN(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// normalizeDSN forces the driver options the repository relies on:
// created_at is scanned into time.Time, which needs parseTime.
func normalizeDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parsing database dsn: %w", err)
	}
	cfg.ParseTime = true
	if cfg.Loc == nil {
		cfg.Loc = time.UTC
	}
	return cfg.FormatDSN(), nil
}

// EnsureSchema creates the tables the repository needs if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
