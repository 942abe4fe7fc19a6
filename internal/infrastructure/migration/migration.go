package migration

import (
	"context"

	"resume-builder/internal/logger"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Migration represents a database migration
type Migration struct {
	Name string
	SQL  string
}

// Migrations are idempotent and run in order on every startup.
var Migrations = []Migration{
	{
		Name: "create_resume_exports",
		SQL: `
		CREATE TABLE IF NOT EXISTS resume_exports (
			id UUID PRIMARY KEY,
			file_name TEXT NOT NULL,
			location TEXT NOT NULL DEFAULT '',
			file_size INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			full_name TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
	},
	{
		Name: "add_metadata_to_resume_exports",
		SQL: `
		ALTER TABLE resume_exports
		ADD COLUMN IF NOT EXISTS metadata JSONB DEFAULT '{}'::jsonb;`,
	},
	{
		Name: "index_resume_exports_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS resume_exports_created_at_idx ON resume_exports (created_at DESC);`,
	},
}

// RunMigrations executes all migrations on startup.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	return run(ctx, func(ctx context.Context, sql string) error {
		_, err := pool.Exec(ctx, sql)
		return err
	})
}

func run(ctx context.Context, exec func(ctx context.Context, sql string) error) error {
	logger.Info().Int("count", len(Migrations)).Msg("starting database migrations")

	for _, m := range Migrations {
		if err := exec(ctx, m.SQL); err != nil {
			logger.Error().Err(err).Str("name", m.Name).Msg("migration failed")
			return err
		}
		logger.Info().Str("name", m.Name).Msg("migration completed")
	}

	logger.Info().Msg("all migrations completed")
	return nil
}
