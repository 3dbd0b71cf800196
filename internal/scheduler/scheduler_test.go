package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriskumpel/combate-desinformacao/internal/domain"
)

type countingSweeper struct {
	calls atomic.Int32
	err   error
}

func (c *countingSweeper) SweepStale(ctx context.Context) (*domain.SweepStats, error) {
	c.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("sweep without deadline")
	}
	if c.err != nil {
		return nil, c.err
	}
	return &domain.SweepStats{}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestScheduler_RunsImmediatelyAndOnTicks(t *testing.T) {
	sweeper := &countingSweeper{}
	sched := NewScheduler(sweeper, 10*time.Millisecond, 0, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()

	err := sched.Start(ctx)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, sweeper.calls.Load(), int32(3))
}

func TestScheduler_KeepsRunningAfterErrors(t *testing.T) {
	sweeper := &countingSweeper{err: domain.ErrStore}
	sched := NewScheduler(sweeper, 5*time.Millisecond, time.Second, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	_ = sched.Start(ctx)

	assert.Greater(t, sweeper.calls.Load(), int32(1))
}

func TestScheduler_StopsOnCancel(t *testing.T) {
	sweeper := &countingSweeper{}
	sched := NewScheduler(sweeper, time.Hour, 0, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sched.Start(ctx) }()

	require.Eventually(t, func() bool { return sweeper.calls.Load() == 1 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
