// Package migrate applies the embedded schema migrations in filename
// order. Files are numbered 0001_geo.sql onward and each runs in its
// own transaction, recorded in schema_migrations so reruns skip it.
package migrate

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Run brings the database schema up to date. Safe to call on every start.
func Run(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, f := range files {
		m := migration{
			version:  strings.TrimSuffix(f, ".sql"),
			filename: f,
		}
		if applyErr := apply(ctx, db, m); applyErr != nil {
			return applyErr
		}
	}
	return nil
}

type migration struct {
	version  string
	filename string
}

func alreadyApplied(ctx context.Context, db *sql.DB, m migration) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`,
		m.version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check migration %s: %w", m.filename, err)
	}
	return exists, nil
}

func apply(ctx context.Context, db *sql.DB, m migration) error {
	done, err := alreadyApplied(ctx, db, m)
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	script, err := migrationsFS.ReadFile("migrations/" + m.filename)
	if err != nil {
		return fmt.Errorf("read migration %s: %w", m.filename, err)
	}

	logger := slog.Default().With("component", "migrations")
	logger.InfoContext(ctx, "applying migration", "version", m.version)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			logger.ErrorContext(ctx, "failed to rollback transaction",
				"err", rollbackErr, "migration_file", m.filename)
		}
	}()

	if _, execErr := tx.ExecContext(ctx, string(script)); execErr != nil {
		return fmt.Errorf("exec migration %s: %w", m.filename, execErr)
	}
	if _, insErr := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version) VALUES ($1)`, m.version); insErr != nil {
		return fmt.Errorf("record migration %s: %w", m.filename, insErr)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		return fmt.Errorf("commit migration %s: %w", m.filename, commitErr)
	}
	return nil
}
