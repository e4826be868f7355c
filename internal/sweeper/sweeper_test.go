package sweeper

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingSweeper struct {
	calls int64
	err   error
}

func (c *countingSweeper) SweepExpiredHolds(ctx context.Context) (int64, error) {
	atomic.AddInt64(&c.calls, 1)
	return 0, c.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestSweeper_RunsUntilCancelled(t *testing.T) {
	svc := &countingSweeper{}
	s := New(svc, 5*time.Millisecond, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&svc.calls) >= 2
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}
}

func TestSweeper_KeepsRunningAfterError(t *testing.T) {
	svc := &countingSweeper{err: errors.New("db gone")}
	s := New(svc, 5*time.Millisecond, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Start(ctx)

	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&svc.calls) >= 2
	}, time.Second, time.Millisecond)
}
