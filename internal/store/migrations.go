package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	// Create the schema_version table if it does not exist.
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS readings (
			id          TEXT PRIMARY KEY,
			user_id     TEXT NOT NULL,
			metric_type TEXT NOT NULL,
			value       TEXT NOT NULL,
			recorded_at TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS score_snapshots (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id       TEXT NOT NULL,
			taken_at      TEXT NOT NULL,
			time_range    TEXT NOT NULL,
			overall_score INTEGER NOT NULL,
			grade         TEXT NOT NULL,
			trend         TEXT NOT NULL,
			version       TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS score_components (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id INTEGER NOT NULL REFERENCES score_snapshots(id),
			name        TEXT NOT NULL,
			score       INTEGER NOT NULL,
			weight      REAL NOT NULL,
			status      TEXT NOT NULL
		)`,

		// Indexes.
		`CREATE INDEX IF NOT EXISTS idx_readings_user ON readings(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_readings_user_type ON readings(user_id, metric_type)`,
		`CREATE INDEX IF NOT EXISTS idx_readings_recorded ON readings(recorded_at)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_user ON score_snapshots(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_components_snapshot ON score_components(snapshot_id)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	// Set schema version.
	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
