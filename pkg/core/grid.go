package core

import (
	"strings"

	"github.com/pkg/errors"
)

// CellState is the binary state of a single cell.
type CellState uint8

const (
	// Dead marks an empty cell.
	Dead CellState = 0
	// Alive marks a populated cell.
	Alive CellState = 1
)

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Boundary selects how neighbour counting treats cells past the grid edge.
type Boundary uint8

const (
	// Clamped treats every cell outside the grid as permanently dead.
	Clamped Boundary = iota
	// Toroidal wraps the grid edges onto each other.
	Toroidal
)

func (b Boundary) String() string {
	switch b {
	case Clamped:
		return "clamped"
	case Toroidal:
		return "toroidal"
	default:
		return "unknown"
	}
}

// ParseBoundary maps a boundary name to its policy.
func ParseBoundary(name string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "clamped", "dead":
		return Clamped, nil
	case "toroidal", "torus", "wrap":
		return Toroidal, nil
	default:
		return Clamped, errors.Errorf("unknown boundary %q", name)
	}
}

// Pattern populates a freshly allocated grid.
type Pattern interface {
	Apply(g *Grid) error
}

// PatternFunc adapts a plain function to the Pattern interface.
type PatternFunc func(g *Grid) error

// Apply calls f(g).
func (f PatternFunc) Apply(g *Grid) error { return f(g) }

// GridOption customises grid construction.
type GridOption func(*Grid)

// WithBoundary sets the neighbour-counting boundary policy.
func WithBoundary(b Boundary) GridOption {
	return func(g *Grid) { g.boundary = b }
}

// Grid stores a fixed-size 2D field of cells in row-major order.
type Grid struct {
	w, h     int
	boundary Boundary
	data     []uint8
}

// NewGrid allocates a w*h grid and seeds it with p. A nil pattern leaves
// every cell dead.
func NewGrid(w, h int, p Pattern, opts ...GridOption) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "got %dx%d", w, h)
	}
	g := &Grid{w: w, h: h, data: make([]uint8, w*h)}
	for _, opt := range opts {
		opt(g)
	}
	if p != nil {
		if err := p.Apply(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Dimensions returns the grid width and height.
func (g *Grid) Dimensions() (int, int) { return g.w, g.h }

// Size returns the dimensions as a Size.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Boundary reports the neighbour-counting policy.
func (g *Grid) Boundary() Boundary { return g.boundary }

// Cells exposes the backing slice so the owner can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.w + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

// Get returns the state at (row, col).
func (g *Grid) Get(row, col int) (CellState, error) {
	if !g.InBounds(row, col) {
		return Dead, outOfBounds(row, col, g.w, g.h)
	}
	return CellState(g.data[g.Index(row, col)]), nil
}

// Set writes the state at (row, col).
func (g *Grid) Set(row, col int, s CellState) error {
	if !g.InBounds(row, col) {
		return outOfBounds(row, col, g.w, g.h)
	}
	g.data[g.Index(row, col)] = uint8(s)
	return nil
}

// Toggle flips the cell at (row, col) and returns its new state.
func (g *Grid) Toggle(row, col int) (CellState, error) {
	if !g.InBounds(row, col) {
		return Dead, outOfBounds(row, col, g.w, g.h)
	}
	idx := g.Index(row, col)
	g.data[idx] ^= 1
	return CellState(g.data[idx]), nil
}

// CountLiveNeighbors counts live cells in the Moore neighbourhood of
// (row, col) according to the grid's boundary policy.
func (g *Grid) CountLiveNeighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if g.boundary == Toroidal {
				r, c = g.wrap(r, c)
			} else if !g.InBounds(r, c) {
				continue
			}
			n += int(g.data[r*g.w+c])
		}
	}
	return n
}

func (g *Grid) wrap(row, col int) (int, int) {
	row = (row%g.h + g.h) % g.h
	col = (col%g.w + g.w) % g.w
	return row, col
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{w: g.w, h: g.h, boundary: g.boundary, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}

// CopyFrom overwrites g with the cells of src. Both grids must share
// dimensions.
func (g *Grid) CopyFrom(src *Grid) error {
	if src.w != g.w || src.h != g.h {
		return errors.Errorf("cannot copy %dx%d grid into %dx%d grid", src.w, src.h, g.w, g.h)
	}
	copy(g.data, src.data)
	return nil
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.data {
		if other.data[i] != c {
			return false
		}
	}
	return true
}

// String renders the grid with 'O' for live cells and '.' for dead ones.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			if g.data[row*g.w+col] != 0 {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
