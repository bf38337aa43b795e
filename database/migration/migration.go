package migration

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS commands (
		id             BIGSERIAL PRIMARY KEY,
		name           VARCHAR(100) NOT NULL,
		trigger_phrase VARCHAR(200) NOT NULL,
		action_type    VARCHAR(50)  NOT NULL,
		action_data    TEXT         NOT NULL,
		description    TEXT,
		is_active      BOOLEAN      NOT NULL DEFAULT TRUE,
		created_at     TIMESTAMPTZ,
		updated_at     TIMESTAMPTZ,
		CONSTRAINT commands_name_key UNIQUE (name)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_commands_is_active ON commands (is_active)`,
	`CREATE TABLE IF NOT EXISTS voice_sessions (
		id             BIGSERIAL PRIMARY KEY,
		session_id     VARCHAR(100) NOT NULL,
		command_text   TEXT         NOT NULL,
		intent         VARCHAR(100),
		entities       TEXT,
		response       TEXT,
		execution_time DOUBLE PRECISION,
		success        BOOLEAN DEFAULT TRUE,
		error_message  TEXT,
		created_at     TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_voice_sessions_created_at ON voice_sessions (created_at DESC, id DESC)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS commands (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		name           VARCHAR(100) NOT NULL UNIQUE,
		trigger_phrase VARCHAR(200) NOT NULL,
		action_type    VARCHAR(50)  NOT NULL,
		action_data    TEXT         NOT NULL,
		description    TEXT,
		is_active      BOOLEAN      NOT NULL DEFAULT 1,
		created_at     DATETIME,
		updated_at     DATETIME
	)`,
	`CREATE INDEX IF NOT EXISTS idx_commands_is_active ON commands (is_active)`,
	`CREATE TABLE IF NOT EXISTS voice_sessions (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id     VARCHAR(100) NOT NULL,
		command_text   TEXT         NOT NULL,
		intent         VARCHAR(100),
		entities       TEXT,
		response       TEXT,
		execution_time REAL,
		success        BOOLEAN DEFAULT 1,
		error_message  TEXT,
		created_at     DATETIME
	)`,
	`CREATE INDEX IF NOT EXISTS idx_voice_sessions_created_at ON voice_sessions (created_at DESC, id DESC)`,
}

// Migrate creates the commands and voice_sessions tables when missing.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	var statements []string
	switch db.DriverName() {
	case "postgres":
		statements = postgresSchema
	case "sqlite3":
		statements = sqliteSchema
	default:
		return fmt.Errorf("unsupported database driver %q", db.DriverName())
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}
