package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"roteiro/backend/internal/db"
	"roteiro/backend/internal/model"
	"roteiro/backend/pkg/snowflake"

	_ "modernc.org/sqlite"
)

// snowflakeOnce guards the one-time node init shared by parallel tests.
var snowflakeOnce sync.Once

// NewTestDB opens an in-memory SQLite database and runs all migrations.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			// t.Fatalf is unusable inside sync.Once, panic instead.
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	// Shared-cache mode so concurrent connections see the same memory db;
	// the name is unique per test to avoid cross-test bleed.
	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

// SeedRateLimitRecord inserts one request record and returns its ID.
func SeedRateLimitRecord(t *testing.T, db *sql.DB, rec model.RateLimitRecord) int64 {
	t.Helper()

	if rec.ID == 0 {
		rec.ID = snowflake.NextID()
	}

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO rate_limit_records (id, identifier, endpoint, timestamp, window_seconds) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Identifier, rec.Endpoint, rec.Timestamp, rec.WindowSeconds,
	)
	if err != nil {
		t.Fatalf("failed to seed rate limit record: %v", err)
	}

	return rec.ID
}

// BackdateRateLimitRecords shifts all stored timestamps for the given key
// into the past, simulating elapsed time without sleeping.
func BackdateRateLimitRecords(t *testing.T, db *sql.DB, identifier, endpoint string, seconds int64) {
	t.Helper()

	_, err := db.ExecContext(
		context.Background(),
		`UPDATE rate_limit_records SET timestamp = timestamp - ? WHERE identifier = ? AND endpoint = ?`,
		seconds, identifier, endpoint,
	)
	if err != nil {
		t.Fatalf("failed to backdate rate limit records: %v", err)
	}
}

// SeedKnowledgeSection inserts one guideline section and returns its ID.
func SeedKnowledgeSection(t *testing.T, db *sql.DB, section model.KnowledgeSection) int64 {
	t.Helper()

	if section.ID == 0 {
		section.ID = snowflake.NextID()
	}
	if section.Source == "" {
		section.Source = "seed.md"
	}

	now := time.Now().UTC().Format(time.RFC3339)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO knowledge_sections (id, source, title, content, priority, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		section.ID, section.Source, section.Title, section.Content, section.Priority, now,
	)
	if err != nil {
		t.Fatalf("failed to seed knowledge section: %v", err)
	}

	return section.ID
}
