package app

import (
	"time"

	"conway/internal/render"
	"conway/pkg/core"
	"conway/pkg/life"
)

// Command is a user action translated from a key press.
type Command uint8

// Commands understood by Session.Apply.
const (
	CmdNone Command = iota
	CmdTogglePause
	CmdStep
	CmdRestart
	CmdReseed
	CmdClear
	CmdFaster
	CmdSlower
)

// intervalStep is how much CmdFaster/CmdSlower move the generation interval.
const intervalStep = 10 * time.Millisecond

// PatternSource builds a fresh pattern for a reseed.
type PatternSource func(seed int64) (core.Pattern, error)

// Session binds front-end events to a controller. It tracks wall-clock time
// between frames and forwards it to Tick.
type Session struct {
	ctrl   *life.Controller
	source PatternSource
	last   time.Time
}

// NewSession wraps ctrl. source may be nil, in which case reseeding is
// ignored.
func NewSession(ctrl *life.Controller, source PatternSource) *Session {
	return &Session{ctrl: ctrl, source: source}
}

// Controller returns the driven controller.
func (s *Session) Controller() *life.Controller { return s.ctrl }

// Frame is called once per host frame with the current time and returns how
// many generations were advanced. The first frame only records the time.
func (s *Session) Frame(now time.Time) int {
	if s.last.IsZero() {
		s.last = now
		return 0
	}
	elapsed := now.Sub(s.last)
	s.last = now
	return s.ctrl.Tick(elapsed)
}

// Apply executes a command. Only reseeding can fail.
func (s *Session) Apply(cmd Command, now time.Time) error {
	switch cmd {
	case CmdTogglePause:
		s.ctrl.TogglePause()
	case CmdStep:
		s.ctrl.Step()
	case CmdRestart:
		s.ctrl.Restart()
	case CmdReseed:
		if s.source == nil {
			return nil
		}
		p, err := s.source(now.UnixNano())
		if err != nil {
			return err
		}
		return s.ctrl.Load(p)
	case CmdClear:
		s.ctrl.Clear()
	case CmdFaster:
		s.ctrl.SetInterval(max(s.ctrl.Interval()-intervalStep, intervalStep))
	case CmdSlower:
		s.ctrl.SetInterval(s.ctrl.Interval() + intervalStep)
	}
	return nil
}

// Click toggles the cell drawn under pixel (px, py). Clicks outside the grid
// are ignored; it reports whether a cell was toggled.
func (s *Session) Click(px, py, scale int) (bool, error) {
	size := s.ctrl.Size()
	row, col, ok := render.CellAt(px, py, scale, size.W, size.H)
	if !ok {
		return false, nil
	}
	if err := s.ctrl.ToggleCell(row, col); err != nil {
		return false, err
	}
	return true, nil
}
