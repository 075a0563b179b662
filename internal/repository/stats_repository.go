//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"

	"roteiro/backend/internal/model"
)

// StatsRepository stores daily request counters and per-persona usage.
type StatsRepository interface {
	IncrementDaily(ctx context.Context, date string, blocked bool) error
	GetDaily(ctx context.Context, date string) (*model.DailyStats, error)
	ListDaily(ctx context.Context, limit int) ([]model.DailyStats, error)
	PruneDailyBefore(ctx context.Context, date string) (int64, error)
	IncrementPersona(ctx context.Context, personaID string, fallback bool) error
	ListPersona(ctx context.Context) ([]model.PersonaStats, error)
}

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new stats repository.
func NewStatsRepository(db *sql.DB) StatsRepository {
	return &statsRepository{db: db}
}

// IncrementDaily bumps the total counter for date, and the blocked counter
// too when blocked is set. The row is created on first touch.
func (r *statsRepository) IncrementDaily(ctx context.Context, date string, blocked bool) error {
	blockedInc := 0
	if blocked {
		blockedInc = 1
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO daily_stats (date, total_requests, blocked_requests)
		VALUES (?, 1, ?)
		ON CONFLICT(date) DO UPDATE SET
			total_requests = total_requests + 1,
			blocked_requests = blocked_requests + ?
	`, date, blockedInc, blockedInc)
	return err
}

func (r *statsRepository) GetDaily(ctx context.Context, date string) (*model.DailyStats, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT date, total_requests, blocked_requests FROM daily_stats WHERE date = ?
	`, date)

	var s model.DailyStats
	if err := row.Scan(&s.Date, &s.TotalRequests, &s.BlockedRequests); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *statsRepository) ListDaily(ctx context.Context, limit int) ([]model.DailyStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date, total_requests, blocked_requests FROM daily_stats ORDER BY date DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []model.DailyStats
	for rows.Next() {
		var s model.DailyStats
		if err := rows.Scan(&s.Date, &s.TotalRequests, &s.BlockedRequests); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *statsRepository) PruneDailyBefore(ctx context.Context, date string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM daily_stats WHERE date < ?`, date)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *statsRepository) IncrementPersona(ctx context.Context, personaID string, fallback bool) error {
	fallbackInc := 0
	if fallback {
		fallbackInc = 1
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO persona_stats (persona_id, questions, fallbacks)
		VALUES (?, 1, ?)
		ON CONFLICT(persona_id) DO UPDATE SET
			questions = questions + 1,
			fallbacks = fallbacks + ?
	`, personaID, fallbackInc, fallbackInc)
	return err
}

func (r *statsRepository) ListPersona(ctx context.Context) ([]model.PersonaStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT persona_id, questions, fallbacks FROM persona_stats ORDER BY persona_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []model.PersonaStats
	for rows.Next() {
		var s model.PersonaStats
		if err := rows.Scan(&s.PersonaID, &s.Questions, &s.Fallbacks); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
