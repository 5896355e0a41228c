package dyncanvas

import (
	"context"
	"time"
)

// Scheduler paces the frame loop. Wait blocks until the next frame is due
// or ctx is done, in which case it returns ctx.Err().
type Scheduler interface {
	Wait(ctx context.Context) error
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(ctx context.Context) error

// Wait calls f(ctx).
func (f SchedulerFunc) Wait(ctx context.Context) error {
	return f(ctx)
}

// TickerScheduler signals frames at a fixed rate using a time.Ticker.
// Frames that are missed while a tick runs long are dropped, not queued.
type TickerScheduler struct {
	ticker *time.Ticker
}

// NewTickerScheduler returns a scheduler firing fps times per second.
// A non-positive fps selects 60. Call Stop when done.
func NewTickerScheduler(fps int) *TickerScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &TickerScheduler{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

// Wait implements Scheduler.
func (s *TickerScheduler) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (s *TickerScheduler) Stop() {
	s.ticker.Stop()
}
