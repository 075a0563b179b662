// Package scheduler runs the periodic retention cleanup: rate-limit request
// records and daily counters older than the retention horizon are dropped.
package scheduler

import (
	"context"
	"sync"
	"time"

	"roteiro/backend/internal/service"
	"roteiro/backend/pkg/logger"
)

type Scheduler struct {
	rateLimits    service.RateLimitService
	interval      time.Duration
	retentionDays int
	stopCh        chan struct{}
	wg            sync.WaitGroup
	cancelFunc    context.CancelFunc // cancels the current cleanup operation
	mu            sync.Mutex         // protects cancelFunc
}

func New(rateLimits service.RateLimitService, interval time.Duration, retentionDays int) *Scheduler {
	return &Scheduler{
		rateLimits:    rateLimits,
		interval:      interval,
		retentionDays: retentionDays,
		stopCh:        make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "interval", s.interval, "retention_days", s.retentionDays)
}

func (s *Scheduler) Stop() {
	// Cancel any ongoing cleanup first
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// Run immediately on start
	s.cleanup()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) cleanup() {
	// Use the same timeout as the cleanup interval
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	// Store cancel function so Stop() can cancel an ongoing cleanup
	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	removed, err := s.rateLimits.CleanupOlderThan(ctx, s.retentionDays)
	if err != nil {
		if ctx.Err() != nil {
			logger.Info("scheduled cleanup cancelled")
			return
		}
		logger.Error("scheduled cleanup", "error", err)
		return
	}
	logger.Info("scheduled cleanup completed", "removed", removed)
}
