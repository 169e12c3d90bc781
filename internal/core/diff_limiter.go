package core

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrTooManyDiffs is returned when no diff slot frees up within the wait
// limit. Clients should retry after a short delay.
var ErrTooManyDiffs = errors.New("too many concurrent diffs, please try again later")

const (
	DefaultMaxConcurrentDiffs = 4
	DefaultMaxWaitTime        = 10 * time.Second
)

// drainPollInterval is how often Drain checks for in-flight diffs.
const drainPollInterval = 50 * time.Millisecond

// DiffLimiter bounds the number of diffs evaluated at once. Each diff holds
// both exports and every intermediate table in memory, so the bound caps
// peak memory as well as CPU.
type DiffLimiter struct {
	slots   chan struct{}
	maxWait time.Duration
	active  atomic.Int64
}

// NewDiffLimiter returns a limiter admitting maxConcurrent diffs. Callers
// wait up to maxWait for a slot. Non-positive values select the defaults.
func NewDiffLimiter(maxConcurrent int, maxWait time.Duration) *DiffLimiter {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentDiffs
	}
	if maxWait <= 0 {
		maxWait = DefaultMaxWaitTime
	}
	return &DiffLimiter{
		slots:   make(chan struct{}, maxConcurrent),
		maxWait: maxWait,
	}
}

// Acquire blocks until a slot is free, the wait limit passes
// (ErrTooManyDiffs) or ctx is done (ctx.Err()). A nil error must be paired
// with exactly one Release.
func (l *DiffLimiter) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timer := time.NewTimer(l.maxWait)
	defer timer.Stop()

	select {
	case l.slots <- struct{}{}:
		l.active.Add(1)
		return nil
	case <-timer.C:
		return ErrTooManyDiffs
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryAcquire takes a slot only if one is free right now.
func (l *DiffLimiter) TryAcquire() bool {
	select {
	case l.slots <- struct{}{}:
		l.active.Add(1)
		return true
	default:
		return false
	}
}

// Release frees a slot taken by Acquire or TryAcquire.
func (l *DiffLimiter) Release() {
	l.active.Add(-1)
	<-l.slots
}

// Active returns the number of diffs in flight.
func (l *DiffLimiter) Active() int { return int(l.active.Load()) }

// Capacity returns the maximum number of concurrent diffs.
func (l *DiffLimiter) Capacity() int { return cap(l.slots) }

// Drain blocks until no diff is in flight or ctx is done.
func (l *DiffLimiter) Drain(ctx context.Context) error {
	if l.Active() == 0 {
		return nil
	}
	ticker := time.NewTicker(drainPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if l.Active() == 0 {
				return nil
			}
		}
	}
}

// LimiterStatus is a point-in-time view of a DiffLimiter.
type LimiterStatus struct {
	Active    int `json:"active"`
	Available int `json:"available"`
	Capacity  int `json:"capacity"`
}

// Status reports current slot usage.
func (l *DiffLimiter) Status() LimiterStatus {
	return LimiterStatus{
		Active:    l.Active(),
		Available: cap(l.slots) - len(l.slots),
		Capacity:  cap(l.slots),
	}
}
