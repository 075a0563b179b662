//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"

	"roteiro/backend/internal/model"
	"roteiro/backend/pkg/snowflake"
)

// RateLimitStore holds sliding-window request records. Implemented by the
// SQLite repository below and by the Redis store for multi-worker setups.
type RateLimitStore interface {
	// TrimAndCount deletes records for (identifier, endpoint) with timestamp
	// below cutoff and returns how many remain inside the window.
	TrimAndCount(ctx context.Context, identifier, endpoint string, cutoff int64) (int, error)
	// Record appends one request attempt.
	Record(ctx context.Context, rec model.RateLimitRecord) error
	// DeleteOlderThan removes records below cutoff across all keys and
	// returns the number of rows removed.
	DeleteOlderThan(ctx context.Context, cutoff int64) (int64, error)
}

type rateLimitRepository struct {
	db *sql.DB
}

// NewRateLimitRepository creates the SQLite-backed sliding-window store.
func NewRateLimitRepository(db *sql.DB) RateLimitStore {
	return &rateLimitRepository{db: db}
}

func (r *rateLimitRepository) TrimAndCount(ctx context.Context, identifier, endpoint string, cutoff int64) (int, error) {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM rate_limit_records WHERE identifier = ? AND endpoint = ? AND timestamp < ?
	`, identifier, endpoint, cutoff)
	if err != nil {
		return 0, err
	}

	var count int
	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM rate_limit_records WHERE identifier = ? AND endpoint = ?
	`, identifier, endpoint).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *rateLimitRepository) Record(ctx context.Context, rec model.RateLimitRecord) error {
	id := rec.ID
	if id == 0 {
		id = snowflake.NextID()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO rate_limit_records (id, identifier, endpoint, timestamp, window_seconds)
		VALUES (?, ?, ?, ?, ?)
	`, id, rec.Identifier, rec.Endpoint, rec.Timestamp, rec.WindowSeconds)
	return err
}

func (r *rateLimitRepository) DeleteOlderThan(ctx context.Context, cutoff int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rate_limit_records WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
