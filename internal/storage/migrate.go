package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func RunMigrations(dbPath string) error {
	// Create a separate connection for migrations to avoid interfering with the main connection
	migrateDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", d, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// ensureTypeColumn upgrades stores created before transactions carried a
// type. The ALTER is always attempted; "duplicate column name" means the
// store is already migrated. Rows left without a type get one derived from
// the amount sign.
func ensureTypeColumn(ctx context.Context, q *Queries) error {
	err := q.AddTypeColumn(ctx)
	switch {
	case err == nil:
		slog.InfoContext(ctx, "Added type column to transactions table")
	case isDuplicateColumn(err):
		slog.DebugContext(ctx, "Type column already present, skipping schema upgrade")
	default:
		return fmt.Errorf("add type column: %w", err)
	}

	n, err := q.BackfillTypes(ctx)
	if err != nil {
		return fmt.Errorf("backfill transaction types: %w", err)
	}
	if n > 0 {
		slog.InfoContext(ctx, "Backfilled transaction types from amount sign", "rows", n)
	}
	return nil
}

func isDuplicateColumn(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "duplicate column name")
}
