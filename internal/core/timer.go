package core

import "time"

// StepTimer gates simulation updates at a repeating interval. It also
// carries the pause flag: while paused the timer never fires, and no
// accumulated time is lost.
type StepTimer struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
	paused      bool
}

// NewStepTimer constructs a timer firing every interval.
func NewStepTimer(interval time.Duration) *StepTimer {
	if interval <= 0 {
		interval = 125 * time.Millisecond
	}
	return &StepTimer{interval: interval}
}

// Interval returns the current firing interval.
func (t *StepTimer) Interval() time.Duration { return t.interval }

// Increase lengthens the interval by the given amount.
func (t *StepTimer) Increase(by time.Duration) {
	t.interval += by
}

// Decrease shortens the interval by the given amount, saturating at zero.
func (t *StepTimer) Decrease(by time.Duration) {
	t.interval -= by
	if t.interval < 0 {
		t.interval = 0
	}
}

// Toggle flips the pause flag.
func (t *StepTimer) Toggle() { t.paused = !t.paused }

// Paused reports whether the timer is paused.
func (t *StepTimer) Paused() bool { return t.paused }

// Fire reports whether an update is due. Paused timers never fire.
func (t *StepTimer) Fire() bool {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
	}
	delta := now.Sub(t.last)
	t.last = now
	if t.paused {
		return false
	}
	t.accumulator += delta
	if t.accumulator >= t.interval {
		t.accumulator -= t.interval
		if t.accumulator > t.interval {
			t.accumulator = t.interval
		}
		return true
	}
	return false
}
