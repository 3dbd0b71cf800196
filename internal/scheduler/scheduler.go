package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/andriskumpel/combate-desinformacao/internal/domain"
)

// Sweeper marks verifications stuck in pending as failed.
type Sweeper interface {
	SweepStale(ctx context.Context) (*domain.SweepStats, error)
}

type Scheduler struct {
	sweeper  Sweeper
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

// NewScheduler runs sweeper every interval. A single sweep is cut off after
// timeout, or after the interval when timeout is zero.
func NewScheduler(sweeper Sweeper, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	if timeout <= 0 {
		timeout = interval
	}
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		timeout:  timeout,
		logger:   logger.With("component", "sweeper"),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSweep(ctx)
		}
	}
}

func (s *Scheduler) runSweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.sweeper.SweepStale(sweepCtx); err != nil {
		s.logger.Error("sweep failed", "error", err)
	}
}
