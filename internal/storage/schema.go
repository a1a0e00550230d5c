package storage

import (
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed migrations/001_initial.sql
var migration001 string

// migrations, in apply order. Each script must insert its own row into
// schema_version.
var migrations = []struct {
	version int
	script  string
}{
	{1, migration001},
}

// schemaVersion reads the highest applied migration version. A database
// without a schema_version table reports 0.
func schemaVersion(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='schema_version'
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to check schema version table: %w", err)
	}
	if count == 0 {
		return 0, nil
	}

	var version int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// applyMigrations runs every migration newer than the current version.
func applyMigrations(db *sql.DB) error {
	current, err := schemaVersion(db)
	if err != nil {
		return err
	}
	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if _, err := db.Exec(m.script); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", m.version, err)
		}
	}
	return nil
}
