package life

import (
	"testing"

	"github.com/pkg/errors"

	"conway/pkg/core"
	"conway/pkg/pattern"
)

// gridFrom builds a clamped grid whose cells are given as text rows.
func gridFrom(t *testing.T, rows ...string) *core.Grid {
	t.Helper()
	shape, err := pattern.Parse(rows...)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	g, err := core.NewGrid(len(rows[0]), len(rows), shape.At(0, 0))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func expectGrid(t *testing.T, got *core.Grid, rows ...string) {
	t.Helper()
	want := gridFrom(t, rows...)
	if !got.Equal(want) {
		t.Fatalf("grid mismatch\ngot:\n%swant:\n%s", got, want)
	}
}

func TestApply(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := Apply(true, n); got != wantAlive {
			t.Fatalf("Apply(alive, %d) = %v, want %v", n, got, wantAlive)
		}
		wantBorn := n == 3
		if got := Apply(false, n); got != wantBorn {
			t.Fatalf("Apply(dead, %d) = %v, want %v", n, got, wantBorn)
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	g := gridFrom(t,
		"......",
		"......",
		"..OO..",
		"..OO..",
		"......",
		"......",
	)
	expectGrid(t, Next(g),
		"......",
		"......",
		"..OO..",
		"..OO..",
		"......",
		"......",
	)
}

func TestBlinkerOscillation(t *testing.T) {
	g := gridFrom(t,
		".....",
		".....",
		".OOO.",
		".....",
		".....",
	)
	g = Next(g)
	expectGrid(t, g,
		".....",
		"..O..",
		"..O..",
		"..O..",
		".....",
	)
	g = Next(g)
	expectGrid(t, g,
		".....",
		".....",
		".OOO.",
		".....",
		".....",
	)
}

func TestUnderpopulation(t *testing.T) {
	g := gridFrom(t,
		"...",
		".O.",
		"...",
	)
	if Next(g).Population() != 0 {
		t.Fatal("isolated cell survived")
	}
}

func TestOverpopulation(t *testing.T) {
	// Centre has four live neighbours.
	g := gridFrom(t,
		".....",
		".O.O.",
		"..O..",
		".O.O.",
		".....",
	)
	if s, _ := Next(g).Get(2, 2); s != core.Dead {
		t.Fatal("overcrowded cell survived")
	}
}

func TestReproduction(t *testing.T) {
	g := gridFrom(t,
		".....",
		".O.O.",
		".....",
		"..O..",
		".....",
	)
	if n := g.CountLiveNeighbors(2, 2); n != 3 {
		t.Fatalf("setup: neighbors = %d, want 3", n)
	}
	if s, _ := Next(g).Get(2, 2); s != core.Alive {
		t.Fatal("dead cell with three neighbours was not born")
	}
}

func TestSimultaneousUpdate(t *testing.T) {
	// (2,1) is born from three parents, one of which ((2,0)) dies in the same
	// generation. In-place row-major evaluation kills (2,0) first and the
	// birth never happens.
	g := gridFrom(t,
		"......",
		".OO...",
		"O..O..",
		"......",
	)
	want := Next(g.Clone())

	seq := g.Clone()
	w, h := seq.Dimensions()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			s, _ := seq.Get(row, col)
			next := core.Dead
			if Apply(s == core.Alive, seq.CountLiveNeighbors(row, col)) {
				next = core.Alive
			}
			_ = seq.Set(row, col, next)
		}
	}
	if seq.Equal(want) {
		t.Fatal("setup does not distinguish sequential from simultaneous update")
	}
	expectGrid(t, want,
		"......",
		".OO...",
		".OO...",
		"......",
	)
}

func TestNextLeavesInputUntouched(t *testing.T) {
	g := gridFrom(t,
		".....",
		"..O..",
		"..O..",
		"..O..",
		".....",
	)
	before := g.Clone()
	_ = Next(g)
	if !g.Equal(before) {
		t.Fatal("Next mutated its input")
	}
}

func TestNextIntoMatchesNext(t *testing.T) {
	g, err := core.NewGrid(24, 17, pattern.Random(7, 0.35))
	if err != nil {
		t.Fatal(err)
	}
	dst, _ := core.NewGrid(24, 17, pattern.Random(99, 0.5))
	if err := NextInto(dst, g); err != nil {
		t.Fatalf("NextInto: %v", err)
	}
	if !dst.Equal(Next(g)) {
		t.Fatal("NextInto differs from Next")
	}
}

func TestNextParallelMatchesSerial(t *testing.T) {
	for _, b := range []core.Boundary{core.Clamped, core.Toroidal} {
		g, err := core.NewGrid(37, 29, pattern.Random(3, 0.4), core.WithBoundary(b))
		if err != nil {
			t.Fatal(err)
		}
		for _, workers := range []int{0, 1, 2, 3, 8, 64} {
			serial := g.Clone()
			par := g.Clone()
			for gen := 0; gen < 5; gen++ {
				serial = Next(serial)
				dst, _ := core.NewGrid(37, 29, nil, core.WithBoundary(b))
				if err := NextParallel(dst, par, workers); err != nil {
					t.Fatalf("NextParallel: %v", err)
				}
				par = dst
			}
			if !par.Equal(serial) {
				t.Fatalf("boundary %v workers %d: parallel result differs from serial", b, workers)
			}
		}
	}
}

func TestBufferMismatch(t *testing.T) {
	g, _ := core.NewGrid(4, 4, nil)
	other, _ := core.NewGrid(5, 4, nil)
	if err := NextInto(g, g); !errors.Is(err, ErrBufferMismatch) {
		t.Fatalf("same buffer err = %v", err)
	}
	if err := NextInto(other, g); !errors.Is(err, ErrBufferMismatch) {
		t.Fatalf("size mismatch err = %v", err)
	}
	if err := NextParallel(nil, g, 2); !errors.Is(err, ErrBufferMismatch) {
		t.Fatalf("nil buffer err = %v", err)
	}
}

func TestToroidalGliderWraps(t *testing.T) {
	g, err := core.NewGrid(6, 6, pattern.Glider.At(0, 0), core.WithBoundary(core.Toroidal))
	if err != nil {
		t.Fatal(err)
	}
	start := g.Clone()
	// A glider returns to its shape shifted by (1,1) every 4 generations; on a
	// 6x6 torus it is back home after 24.
	for i := 0; i < 24; i++ {
		g = Next(g)
	}
	if !g.Equal(start) {
		t.Fatalf("glider did not wrap home:\n%s", g)
	}
}
