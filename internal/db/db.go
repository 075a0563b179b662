package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// BuildDSN builds the SQLite connection string for a database file. WAL
// keeps concurrent readers off the writer's lock; the busy timeout covers
// writer contention between the rate limiter and the chat path.
func BuildDSN(path string) string {
	return fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)",
		path,
	)
}

// Open opens the database file, creating parent directories as needed, and
// runs migrations.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	database, err := sql.Open("sqlite", BuildDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// modernc.org/sqlite serializes writes; a single connection avoids
	// SQLITE_BUSY between concurrent writers.
	database.SetMaxOpenConns(1)

	if err := Migrate(database); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}
