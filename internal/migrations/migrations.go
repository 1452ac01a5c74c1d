// Package migrations holds the schema scripts. They double as init scripts for
// the postgres test containers.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

//go:embed *.up.sql
var scripts embed.FS

const createVersionsTable = `CREATE TABLE IF NOT EXISTS schema_migrations
(
    name       TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Names returns the scripts in the order they are applied.
func Names() ([]string, error) {
	names, err := fs.Glob(scripts, "*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("fs.Glob: %w", err)
	}

	slices.Sort(names)

	return names, nil
}

// Apply runs every script not yet recorded in schema_migrations, each in its
// own transaction.
func Apply(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if _, err := pool.Exec(ctx, createVersionsTable); err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	names, err := Names()
	if err != nil {
		return fmt.Errorf("Names: %w", err)
	}

	for _, name := range names {
		applied, err := apply(ctx, pool, name)
		if err != nil {
			return fmt.Errorf("apply[%s]: %w", name, err)
		}
		if applied {
			logger.Info("migration applied", zap.String("name", name))
		}
	}

	return nil
}

func apply(ctx context.Context, pool *pgxpool.Pool, name string) (bool, error) {
	body, err := scripts.ReadFile(name)
	if err != nil {
		return false, fmt.Errorf("scripts.ReadFile: %w", err)
	}

	applied := false
	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			"INSERT INTO schema_migrations (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", name)
		if err != nil {
			return fmt.Errorf("tx.Exec: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		if _, err := tx.Exec(ctx, strings.TrimSpace(string(body))); err != nil {
			return fmt.Errorf("tx.Exec: %w", err)
		}
		applied = true

		return nil
	})

	return applied, err
}
