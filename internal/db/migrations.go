package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS readings (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			source     TEXT NOT NULL CHECK(source IN ('cli', 'stdin', 'uptime', 'watch')),
			input      TEXT NOT NULL,
			output     TEXT NOT NULL,
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_readings_created ON readings(created_at);
		CREATE INDEX IF NOT EXISTS idx_readings_source ON readings(source, created_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating readings table: %w", err)
	}

	return nil
}
