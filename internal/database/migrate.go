package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/hnakamura/decksched/schemas"
)

// ApplyMigrations applies any pending SQL migrations from the embedded
// schemas package. Applied versions are tracked in schema_migrations so
// re-running is safe on both drivers.
func ApplyMigrations(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx,
		"CREATE TABLE IF NOT EXISTS schema_migrations (version VARCHAR(255) NOT NULL PRIMARY KEY)"); err != nil {
		return fmt.Errorf("db.ExecContext(create schema_migrations) > %w", err)
	}

	applied := map[string]bool{}
	var versions []string
	if err := db.SelectContext(ctx, &versions, "SELECT version FROM schema_migrations"); err != nil {
		return fmt.Errorf("db.SelectContext(schema_migrations) > %w", err)
	}
	for _, v := range versions {
		applied[v] = true
	}

	entries, err := fs.Glob(schemas.Migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("fs.Glob(migrations) > %w", err)
	}
	sort.Strings(entries)

	for _, name := range entries {
		if applied[name] {
			continue
		}
		contents, err := fs.ReadFile(schemas.Migrations, name)
		if err != nil {
			return fmt.Errorf("fs.ReadFile(%s) > %w", name, err)
		}
		if err := RunInTx(ctx, db, func(ctx context.Context, tx *sqlx.Tx) error {
			if _, err := tx.ExecContext(ctx, string(contents)); err != nil {
				return fmt.Errorf("tx.ExecContext(%s) > %w", name, err)
			}
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO schema_migrations (version) VALUES (?)", name); err != nil {
				return fmt.Errorf("tx.ExecContext(record %s) > %w", name, err)
			}
			return nil
		}); err != nil {
			return err
		}
	}
	return nil
}
