package core

import (
	"fmt"
	"time"
)

// MinCyclesPerSecond is the slowest rate a caller may configure.
const MinCyclesPerSecond = 1

// Interval converts a cycles-per-second rate into the wait between ticks.
func Interval(cps int) (time.Duration, error) {
	if cps < MinCyclesPerSecond {
		return 0, fmt.Errorf("%w: %d cycles per second", ErrInvalidRate, cps)
	}
	return time.Second / time.Duration(cps), nil
}

// ClampRate raises non-positive rates to MinCyclesPerSecond.
func ClampRate(cps int) int {
	if cps < MinCyclesPerSecond {
		return MinCyclesPerSecond
	}
	return cps
}

// TickHandle is a cancellable recurring schedule driven by the host loop.
// The host polls Due with the current time; once Cancel has been called the
// handle never reports another tick.
type TickHandle struct {
	step        time.Duration
	pending     time.Duration
	accumulator time.Duration
	last        time.Time
	cancelled   bool
}

// NewTickHandle creates a handle firing every interval, the first tick one
// interval after start. A zero start anchors the schedule at the first poll.
func NewTickHandle(interval time.Duration, start time.Time) *TickHandle {
	if interval <= 0 {
		interval = time.Second
	}
	return &TickHandle{step: interval, pending: interval, last: start}
}

// SetInterval changes the tick interval. The wait already in flight keeps its
// old length; the new interval applies from the next tick on.
func (h *TickHandle) SetInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	h.pending = interval
}

// Interval returns the length of the wait currently in flight.
func (h *TickHandle) Interval() time.Duration { return h.step }

// Cancel invalidates the handle.
func (h *TickHandle) Cancel() { h.cancelled = true }

// Cancelled reports whether Cancel has been called.
func (h *TickHandle) Cancelled() bool { return h.cancelled }

// Due reports whether a tick should fire at now. At most one tick is reported
// per call; backlog beyond a single interval is dropped so a stalled host does
// not trigger a burst of catch-up steps.
func (h *TickHandle) Due(now time.Time) bool {
	if h.cancelled {
		return false
	}
	if h.last.IsZero() {
		h.last = now
		return false
	}
	delta := now.Sub(h.last)
	h.last = now
	if delta > 0 {
		h.accumulator += delta
	}
	if h.accumulator < h.step {
		return false
	}
	h.accumulator -= h.step
	h.step = h.pending
	if h.accumulator >= h.step {
		h.accumulator = 0
	}
	return true
}
