package life

import "conway/pkg/core"

// Snapshot is a point-in-time copy of a Controller's state. It shares no
// storage with the controller.
type Snapshot struct {
	grid       *core.Grid
	generation int
	running    bool
}

// Get returns the state at (row, col).
func (s Snapshot) Get(row, col int) (core.CellState, error) { return s.grid.Get(row, col) }

// Dimensions returns the grid width and height.
func (s Snapshot) Dimensions() (int, int) { return s.grid.Dimensions() }

// Size returns the grid dimensions as a Size.
func (s Snapshot) Size() core.Size { return s.grid.Size() }

// Generation returns the generation counter at the time of the snapshot.
func (s Snapshot) Generation() int { return s.generation }

// Running reports whether the controller was running.
func (s Snapshot) Running() bool { return s.running }

// Population returns the number of live cells.
func (s Snapshot) Population() int { return s.grid.Population() }

// Cells returns the snapshot's row-major cell values (1 alive, 0 dead). The
// slice belongs to the snapshot.
func (s Snapshot) Cells() []uint8 { return s.grid.Cells() }

// String renders the snapshot grid as text.
func (s Snapshot) String() string { return s.grid.String() }
