package core

import "time"

// FixedStep converts host frame time into a whole number of simulation
// steps at a fixed interval.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	maxCatchUp  int
}

// NewFixedStep constructs a FixedStep emitting one step per interval and at
// most maxCatchUp steps per Advance call.
func NewFixedStep(interval time.Duration, maxCatchUp int) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	fs.SetMaxCatchUp(maxCatchUp)
	return fs
}

// DefaultInterval is used when a non-positive interval is requested.
const DefaultInterval = 100 * time.Millisecond

// SetInterval changes the step interval. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultInterval
	}
	f.step = d
	if f.accumulator >= f.step {
		f.accumulator = f.step - 1
	}
}

// Interval returns the configured step interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// SetMaxCatchUp bounds how many steps a single Advance may emit.
func (f *FixedStep) SetMaxCatchUp(n int) {
	if n <= 0 {
		n = 1
	}
	f.maxCatchUp = n
}

// Advance adds elapsed to the accumulator and returns how many steps are due.
// Time owed beyond the catch-up limit is dropped rather than carried.
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	f.accumulator += elapsed
	steps := int(f.accumulator / f.step)
	if steps > f.maxCatchUp {
		steps = f.maxCatchUp
		f.accumulator = 0
		return steps
	}
	f.accumulator -= time.Duration(steps) * f.step
	return steps
}

// Reset discards any accumulated time.
func (f *FixedStep) Reset() { f.accumulator = 0 }

// Pending reports the accumulated time not yet converted into steps.
func (f *FixedStep) Pending() time.Duration { return f.accumulator }
