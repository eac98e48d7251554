package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		name       TEXT PRIMARY KEY,
		session_id TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS priorities (
		profile_name TEXT NOT NULL REFERENCES profiles(name) ON DELETE CASCADE,
		field_id     TEXT NOT NULL,
		importance   TEXT NOT NULL
		             CHECK(importance IN ('critical','high','medium','low')),
		notes        TEXT NOT NULL DEFAULT '',
		added_from   TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (profile_name, field_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_priorities_profile ON priorities(profile_name)`,
	`CREATE INDEX IF NOT EXISTS idx_priorities_importance ON priorities(importance)`,
}
