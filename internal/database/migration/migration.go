package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// Sentinel is the table whose presence marks the schema as migrated.
const Sentinel = "phrel"

var sqliteSteps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id         INTEGER PRIMARY KEY AUTOINCREMENT,
  username   TEXT    NOT NULL UNIQUE,
  password   TEXT    NOT NULL,
  created_at INTEGER NOT NULL
);`,
	},
	{
		Name: "create_table_word",
		SQL: `CREATE TABLE IF NOT EXISTS word (
  id      INTEGER PRIMARY KEY AUTOINCREMENT,
  name    TEXT    NOT NULL,
  user_id INTEGER NOT NULL,
  UNIQUE (name, user_id)
);`,
	},
	{
		Name: "create_table_phrase",
		SQL: `CREATE TABLE IF NOT EXISTS phrase (
  id      INTEGER PRIMARY KEY AUTOINCREMENT,
  name    TEXT    NOT NULL,
  user_id INTEGER NOT NULL,
  UNIQUE (name, user_id)
);`,
	},
	{
		Name: "create_table_rel",
		SQL: `CREATE TABLE IF NOT EXISTS rel (
  id             INTEGER PRIMARY KEY AUTOINCREMENT,
  main_word_id   INTEGER NOT NULL,
  phrase_word_id INTEGER NOT NULL,
  user_id        INTEGER NOT NULL,
  UNIQUE (main_word_id, phrase_word_id)
);`,
	},
	{
		Name: "create_table_phrel",
		SQL: `CREATE TABLE IF NOT EXISTS phrel (
  id        INTEGER PRIMARY KEY AUTOINCREMENT,
  phrase_id INTEGER NOT NULL,
  word_id   INTEGER NOT NULL,
  user_id   INTEGER NOT NULL,
  UNIQUE (phrase_id, word_id)
);`,
	},
	{
		Name: "create_index_word_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_word_name ON word (name);`,
	},
	{
		Name: "create_index_rel_phrase_word_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_rel_phrase_word_id ON rel (phrase_word_id);`,
	},
	{
		Name: "create_index_phrel_word_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_phrel_word_id ON phrel (word_id);`,
	},
}

var postgresSteps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id         BIGSERIAL   PRIMARY KEY,
  username   TEXT        NOT NULL UNIQUE,
  password   TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_word",
		SQL: `CREATE TABLE IF NOT EXISTS word (
  id      BIGSERIAL PRIMARY KEY,
  name    TEXT      NOT NULL,
  user_id BIGINT    NOT NULL,
  UNIQUE (name, user_id)
);`,
	},
	{
		Name: "create_table_phrase",
		SQL: `CREATE TABLE IF NOT EXISTS phrase (
  id      BIGSERIAL PRIMARY KEY,
  name    TEXT      NOT NULL,
  user_id BIGINT    NOT NULL,
  UNIQUE (name, user_id)
);`,
	},
	{
		Name: "create_table_rel",
		SQL: `CREATE TABLE IF NOT EXISTS rel (
  id             BIGSERIAL PRIMARY KEY,
  main_word_id   BIGINT    NOT NULL,
  phrase_word_id BIGINT    NOT NULL,
  user_id        BIGINT    NOT NULL,
  UNIQUE (main_word_id, phrase_word_id)
);`,
	},
	{
		Name: "create_table_phrel",
		SQL: `CREATE TABLE IF NOT EXISTS phrel (
  id        BIGSERIAL PRIMARY KEY,
  phrase_id BIGINT    NOT NULL,
  word_id   BIGINT    NOT NULL,
  user_id   BIGINT    NOT NULL,
  UNIQUE (phrase_id, word_id)
);`,
	},
	{
		Name: "create_index_word_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_word_name ON word (name);`,
	},
	{
		Name: "create_index_rel_phrase_word_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_rel_phrase_word_id ON rel (phrase_word_id);`,
	},
	{
		Name: "create_index_phrel_word_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_phrel_word_id ON phrel (word_id);`,
	},
}

func dialectSteps(dialect string) ([]migrationStep, string, error) {
	switch dialect {
	case "", "sqlite":
		return sqliteSteps, "SELECT COUNT(*) > 0 FROM sqlite_master WHERE type = 'table' AND name = '" + Sentinel + "'", nil
	case "postgres":
		return postgresSteps, "SELECT to_regclass('public." + Sentinel + "') IS NOT NULL", nil
	default:
		return nil, "", fmt.Errorf("unsupported migration dialect: %q", dialect)
	}
}

// EnsureMigrated checks if the sentinel table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, dialect string, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	steps, query, err := dialectSteps(dialect)
	if err != nil {
		return err
	}

	log.Info("db_migration_check", zap.String("status", "starting"), zap.String("dialect", dialect))

	var exists bool
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.String("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("reason", "schema already exists, skipping migration"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.String("error_message", err.Error()),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}
