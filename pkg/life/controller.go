package life

import (
	"strconv"
	"time"

	"conway/pkg/core"
)

// State is the run state of a Controller.
type State uint8

const (
	// Running advances generations on Tick.
	Running State = iota
	// Paused ignores Tick; explicit Step still works.
	Paused
)

func (s State) String() string {
	if s == Paused {
		return "paused"
	}
	return "running"
}

// ParamInterval is the HUD key for the generation interval in milliseconds.
const ParamInterval = "interval_ms"

// Option customises a Controller.
type Option func(*Controller)

// StartPaused makes the controller begin in the Paused state.
func StartPaused() Option {
	return func(c *Controller) { c.state = Paused }
}

// WithWorkers advances generations with n concurrent row bands. n <= 1 keeps
// the advance on the calling goroutine.
func WithWorkers(n int) Option {
	return func(c *Controller) { c.workers = n }
}

// WithMaxCatchUp lets a single Tick perform up to n steps when the host frame
// spans several intervals.
func WithMaxCatchUp(n int) Option {
	return func(c *Controller) { c.maxCatchUp = n }
}

// Controller owns a simulation session: the current grid, a spare buffer for
// the next generation, the generation counter and the run state. It is driven
// by a single host loop and is not safe for concurrent use.
type Controller struct {
	cur, nxt *core.Grid
	initial  *core.Grid

	generation int
	state      State
	clock      *core.FixedStep
	workers    int
	maxCatchUp int
}

// NewController takes a private copy of grid and advances it once per
// interval while running. A non-positive interval selects
// core.DefaultInterval.
func NewController(grid *core.Grid, interval time.Duration, opts ...Option) *Controller {
	c := &Controller{
		cur:        grid.Clone(),
		nxt:        blank(grid),
		initial:    grid.Clone(),
		state:      Running,
		workers:    1,
		maxCatchUp: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.clock = core.NewFixedStep(interval, c.maxCatchUp)
	return c
}

// Step computes and installs the next generation regardless of run state.
func (c *Controller) Step() {
	if c.workers > 1 {
		// Buffers are owned and same-shaped, so this cannot fail.
		_ = NextParallel(c.nxt, c.cur, c.workers)
	} else {
		advanceRows(c.nxt, c.cur, 0, c.cur.Size().H)
	}
	c.cur, c.nxt = c.nxt, c.cur
	c.generation++
}

// Tick reports elapsed host time. While running it performs every step that
// has come due, up to the catch-up limit, and returns how many were taken.
func (c *Controller) Tick(elapsed time.Duration) int {
	if c.state != Running {
		return 0
	}
	steps := c.clock.Advance(elapsed)
	for i := 0; i < steps; i++ {
		c.Step()
	}
	return steps
}

// ToggleCell flips the cell at (row, col).
func (c *Controller) ToggleCell(row, col int) error {
	_, err := c.cur.Toggle(row, col)
	return err
}

// SetCell writes a definite state at (row, col).
func (c *Controller) SetCell(row, col int, s core.CellState) error {
	return c.cur.Set(row, col, s)
}

// Pause stops Tick from advancing generations. Calling it while paused is a
// no-op.
func (c *Controller) Pause() {
	if c.state == Paused {
		return
	}
	c.state = Paused
	c.clock.Reset()
}

// Resume restarts Tick-driven advancement from a fresh accumulator.
func (c *Controller) Resume() {
	if c.state == Running {
		return
	}
	c.state = Running
	c.clock.Reset()
}

// TogglePause switches between Running and Paused.
func (c *Controller) TogglePause() {
	if c.state == Running {
		c.Pause()
		return
	}
	c.Resume()
}

// State returns the current run state.
func (c *Controller) State() State { return c.state }

// Running reports whether Tick advances generations.
func (c *Controller) Running() bool { return c.state == Running }

// Generation returns the number of generations advanced since the last
// restart.
func (c *Controller) Generation() int { return c.generation }

// Interval returns the time between generations.
func (c *Controller) Interval() time.Duration { return c.clock.Interval() }

// SetInterval changes the time between generations.
func (c *Controller) SetInterval(d time.Duration) { c.clock.SetInterval(d) }

// Size returns the grid dimensions.
func (c *Controller) Size() core.Size { return c.cur.Size() }

// Restart reinstalls the initial grid and resets the generation counter.
func (c *Controller) Restart() {
	_ = c.cur.CopyFrom(c.initial)
	c.generation = 0
	c.clock.Reset()
}

// Load clears the grid, seeds it with p and makes the result the new restart
// point. On error the session is left untouched.
func (c *Controller) Load(p core.Pattern) error {
	w, h := c.cur.Dimensions()
	g, err := core.NewGrid(w, h, p, core.WithBoundary(c.cur.Boundary()))
	if err != nil {
		return err
	}
	c.initial = g
	c.Restart()
	return nil
}

// Clear kills every cell and resets the generation counter. The restart
// point is kept.
func (c *Controller) Clear() {
	c.cur.Clear()
	c.generation = 0
	c.clock.Reset()
}

// Snapshot returns a read-only copy of the session state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		grid:       c.cur.Clone(),
		generation: c.generation,
		running:    c.state == Running,
	}
}

// Parameters describes the session for HUD display.
func (c *Controller) Parameters() core.ParameterSnapshot {
	size := c.cur.Size()
	pop := c.cur.Population()
	density := float64(pop) / float64(size.Cells()) * 100
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				{Key: "state", Label: "State", Type: core.ParamTypeString, Value: c.state.String()},
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(c.generation)},
				{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(pop)},
				{Key: "density", Label: "Density %", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(density, 'f', 1, 64)},
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				{Key: "size", Label: "Size", Type: core.ParamTypeString, Value: strconv.Itoa(size.W) + "x" + strconv.Itoa(size.H)},
				{Key: "boundary", Label: "Boundary", Type: core.ParamTypeString, Value: c.cur.Boundary().String()},
				{Key: ParamInterval, Label: "Interval ms", Type: core.ParamTypeInt, Value: strconv.Itoa(int(c.Interval() / time.Millisecond))},
				{Key: "running", Label: "Running", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.Running())},
			},
		},
	}}
}

// ParameterControls lists the parameters the HUD may adjust.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{intervalControl}
}

var intervalControl = core.ParameterControl{
	Key: ParamInterval, Label: "Interval ms", Step: 10,
	Min: 10, Max: 2000, HasMin: true, HasMax: true,
}

// SetIntParameter updates an adjustable parameter. It reports false for
// unknown keys.
func (c *Controller) SetIntParameter(key string, value int) bool {
	switch key {
	case ParamInterval:
		value = intervalControl.Clamp(value)
		c.SetInterval(time.Duration(value) * time.Millisecond)
		return true
	default:
		return false
	}
}
