package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS rate_limit_records (
  id INTEGER PRIMARY KEY,
  identifier TEXT NOT NULL,
  endpoint TEXT NOT NULL,
  timestamp INTEGER NOT NULL,
  window_seconds INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_rate_limit_records_key_ts
  ON rate_limit_records(identifier, endpoint, timestamp);

CREATE TABLE IF NOT EXISTS endpoint_configs (
  endpoint TEXT PRIMARY KEY,
  max_requests INTEGER NOT NULL,
  window_seconds INTEGER NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_stats (
  date TEXT PRIMARY KEY,
  total_requests INTEGER NOT NULL DEFAULT 0,
  blocked_requests INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS persona_stats (
  persona_id TEXT PRIMARY KEY,
  questions INTEGER NOT NULL DEFAULT 0,
  fallbacks INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS knowledge_sections (
  id INTEGER PRIMARY KEY,
  source TEXT NOT NULL,
  title TEXT NOT NULL,
  content TEXT NOT NULL,
  priority TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL
);

CREATE VIRTUAL TABLE IF NOT EXISTS knowledge_fts USING fts5(
  title,
  content,
  tokenize = 'unicode61'
);

CREATE TRIGGER IF NOT EXISTS knowledge_ai AFTER INSERT ON knowledge_sections BEGIN
  INSERT INTO knowledge_fts(rowid, title, content)
  VALUES (new.id, new.title, new.content);
END;

CREATE TRIGGER IF NOT EXISTS knowledge_ad AFTER DELETE ON knowledge_sections BEGIN
  DELETE FROM knowledge_fts WHERE rowid = old.id;
END;
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: Add embedding column to knowledge_sections if not exists.
	// Stored as a JSON array of floats; empty/NULL means not yet indexed.
	exists, err := hasColumn(db, "knowledge_sections", "embedding")
	if err != nil {
		return fmt.Errorf("check embedding column: %w", err)
	}
	if !exists {
		if _, err := db.Exec(`ALTER TABLE knowledge_sections ADD COLUMN embedding TEXT`); err != nil {
			return fmt.Errorf("add embedding column: %w", err)
		}
	}

	// Migration 2: Index for bulk cleanup scans (timestamp only).
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_rate_limit_records_ts ON rate_limit_records(timestamp)`); err != nil {
		return fmt.Errorf("create idx_rate_limit_records_ts: %w", err)
	}

	// Migration 3: Add source column index for re-ingestion by file.
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_knowledge_sections_source ON knowledge_sections(source)`); err != nil {
		return fmt.Errorf("create idx_knowledge_sections_source: %w", err)
	}

	return nil
}

func hasColumn(db *sql.DB, table string, column string) (bool, error) {
	var count int
	if err := db.QueryRow(
		fmt.Sprintf(`SELECT COUNT(*) FROM pragma_table_info('%s') WHERE name = ?`, table),
		column,
	).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
