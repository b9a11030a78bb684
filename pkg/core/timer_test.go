package core

import (
	"testing"
	"time"
)

func TestFixedStepCadence(t *testing.T) {
	fs := NewFixedStep(100*time.Millisecond, 1)
	steps := 0
	for i := 0; i < 10; i++ {
		steps += fs.Advance(30 * time.Millisecond)
	}
	// 300ms elapsed -> 3 steps, 0ms pending.
	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}
	if fs.Pending() != 0 {
		t.Fatalf("pending = %v, want 0", fs.Pending())
	}
}

func TestFixedStepCapsBursts(t *testing.T) {
	fs := NewFixedStep(10*time.Millisecond, 2)
	if got := fs.Advance(time.Second); got != 2 {
		t.Fatalf("steps after long frame = %d, want 2", got)
	}
	if fs.Pending() != 0 {
		t.Fatalf("excess time carried over: %v", fs.Pending())
	}
	if got := fs.Advance(5 * time.Millisecond); got != 0 {
		t.Fatalf("steps = %d, want 0", got)
	}
}

func TestFixedStepIgnoresNonPositive(t *testing.T) {
	fs := NewFixedStep(10*time.Millisecond, 1)
	if fs.Advance(0) != 0 || fs.Advance(-time.Second) != 0 {
		t.Fatal("non-positive elapsed produced steps")
	}
	if fs.Pending() != 0 {
		t.Fatalf("pending = %v, want 0", fs.Pending())
	}
}

func TestFixedStepDefaults(t *testing.T) {
	fs := NewFixedStep(0, 0)
	if fs.Interval() != DefaultInterval {
		t.Fatalf("interval = %v, want %v", fs.Interval(), DefaultInterval)
	}
	if got := fs.Advance(10 * DefaultInterval); got != 1 {
		t.Fatalf("steps = %d, want 1", got)
	}
}

func TestFixedStepReset(t *testing.T) {
	fs := NewFixedStep(100*time.Millisecond, 1)
	fs.Advance(90 * time.Millisecond)
	fs.Reset()
	if got := fs.Advance(20 * time.Millisecond); got != 0 {
		t.Fatalf("steps after reset = %d, want 0", got)
	}
}
