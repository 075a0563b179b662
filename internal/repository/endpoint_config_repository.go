//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"roteiro/backend/internal/model"
)

// EndpointConfigRepository defines the interface for persisted per-endpoint
// rate-limit overrides.
type EndpointConfigRepository interface {
	Get(ctx context.Context, endpoint string) (*model.EndpointConfig, error)
	Upsert(ctx context.Context, endpoint string, maxRequests, windowSeconds int) error
	Delete(ctx context.Context, endpoint string) error
	List(ctx context.Context) ([]model.EndpointConfig, error)
}

type endpointConfigRepository struct {
	db *sql.DB
}

// NewEndpointConfigRepository creates a new endpoint config repository.
func NewEndpointConfigRepository(db *sql.DB) EndpointConfigRepository {
	return &endpointConfigRepository{db: db}
}

// Get retrieves the override for an endpoint, or nil when none is stored.
func (r *endpointConfigRepository) Get(ctx context.Context, endpoint string) (*model.EndpointConfig, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT endpoint, max_requests, window_seconds, updated_at FROM endpoint_configs WHERE endpoint = ?
	`, endpoint)

	var cfg model.EndpointConfig
	var updatedAt string
	if err := row.Scan(&cfg.Endpoint, &cfg.MaxRequests, &cfg.WindowSeconds, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	cfg.UpdatedAt = parseTime(updatedAt)
	return &cfg, nil
}

func (r *endpointConfigRepository) Upsert(ctx context.Context, endpoint string, maxRequests, windowSeconds int) error {
	now := formatTime(time.Now())
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO endpoint_configs (endpoint, max_requests, window_seconds, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(endpoint) DO UPDATE SET
			max_requests = excluded.max_requests,
			window_seconds = excluded.window_seconds,
			updated_at = excluded.updated_at
	`, endpoint, maxRequests, windowSeconds, now)
	return err
}

func (r *endpointConfigRepository) Delete(ctx context.Context, endpoint string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM endpoint_configs WHERE endpoint = ?`, endpoint)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *endpointConfigRepository) List(ctx context.Context) ([]model.EndpointConfig, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT endpoint, max_requests, window_seconds, updated_at FROM endpoint_configs ORDER BY endpoint
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []model.EndpointConfig
	for rows.Next() {
		var cfg model.EndpointConfig
		var updatedAt string
		if err := rows.Scan(&cfg.Endpoint, &cfg.MaxRequests, &cfg.WindowSeconds, &updatedAt); err != nil {
			return nil, err
		}
		cfg.UpdatedAt = parseTime(updatedAt)
		configs = append(configs, cfg)
	}
	return configs, rows.Err()
}
