package tetris

import "time"

// Timer is a repeating frame-driven timer. It accumulates frame deltas and
// reports how many whole periods have elapsed.
type Timer struct {
	period  time.Duration
	elapsed time.Duration
	paused  bool
}

// NewTimer creates a running timer with the given period.
func NewTimer(period time.Duration) *Timer {
	if period <= 0 {
		panic("tetris: timer period must be positive")
	}
	return &Timer{period: period}
}

// Tick advances the timer by dt and returns the number of periods completed.
// A paused timer does not advance.
func (t *Timer) Tick(dt time.Duration) int {
	if t.paused || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	n := int(t.elapsed / t.period)
	t.elapsed -= time.Duration(n) * t.period
	return n
}

// Reset starts the current period over.
func (t *Timer) Reset() { t.elapsed = 0 }

// Pause stops the timer without losing accumulated time.
func (t *Timer) Pause() { t.paused = true }

// Resume restarts a paused timer.
func (t *Timer) Resume() { t.paused = false }

// Paused reports whether the timer is paused.
func (t *Timer) Paused() bool { return t.paused }

// Period returns the repeat interval.
func (t *Timer) Period() time.Duration { return t.period }

// SetPeriod changes the repeat interval. Accumulated time is kept but capped
// so the next Tick fires at most once early.
func (t *Timer) SetPeriod(period time.Duration) {
	if period <= 0 {
		panic("tetris: timer period must be positive")
	}
	t.period = period
	if t.elapsed >= period {
		t.elapsed = period - 1
	}
}
