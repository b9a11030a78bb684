package pattern

import (
	"slices"
	"testing"

	"github.com/pkg/errors"

	"conway/pkg/core"
)

func TestParse(t *testing.T) {
	s, err := Parse(
		".O.",
		"..O",
		"OOO",
	)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Size() != (core.Size{W: 3, H: 3}) {
		t.Fatalf("size = %+v", s.Size())
	}
	want := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	if !slices.Equal(s.Cells(), want) {
		t.Fatalf("cells = %v, want %v", s.Cells(), want)
	}
	if _, err := Parse("O?O"); err == nil {
		t.Fatal("Parse accepted an unknown cell marker")
	}
}

func TestShapeAt(t *testing.T) {
	g, err := core.NewGrid(5, 4, Glider.At(1, 2))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if got := g.String(); got != ".....\n...O.\n....O\n..OOO\n" {
		t.Fatalf("glider placement:\n%s", got)
	}

	if _, err := core.NewGrid(3, 3, Glider.At(1, 1)); !errors.Is(err, core.ErrOutOfBounds) {
		t.Fatalf("out-of-range placement err = %v", err)
	}
}

func TestCentered(t *testing.T) {
	g, err := core.NewGrid(5, 5, Blinker.Centered())
	if err != nil {
		t.Fatal(err)
	}
	for _, col := range []int{1, 2, 3} {
		if s, _ := g.Get(2, col); s != core.Alive {
			t.Fatalf("cell (2,%d) not alive:\n%s", col, g)
		}
	}
	if g.Population() != 3 {
		t.Fatalf("population = %d", g.Population())
	}
}

func TestRandomDeterministic(t *testing.T) {
	a, _ := core.NewGrid(32, 24, Random(99, 0.3))
	b, _ := core.NewGrid(32, 24, Random(99, 0.3))
	c, _ := core.NewGrid(32, 24, Random(100, 0.3))
	if !a.Equal(b) {
		t.Fatal("equal seeds produced different grids")
	}
	if a.Equal(c) {
		t.Fatal("different seeds produced identical grids")
	}
	if a.Population() == 0 || a.Population() == 32*24 {
		t.Fatalf("implausible population %d", a.Population())
	}

	full, _ := core.NewGrid(4, 4, Random(1, 1))
	if full.Population() != 16 {
		t.Fatalf("density 1 population = %d", full.Population())
	}
	if _, err := core.NewGrid(4, 4, Random(1, 1.5)); err == nil {
		t.Fatal("density above 1 accepted")
	}
}

func TestNoiseDeterministic(t *testing.T) {
	a, _ := core.NewGrid(40, 30, Noise(5, 0.1))
	b, _ := core.NewGrid(40, 30, Noise(5, 0.1))
	if !a.Equal(b) {
		t.Fatal("noise pattern not deterministic per seed")
	}
	all, _ := core.NewGrid(10, 10, Noise(5, -2))
	if all.Population() != 100 {
		t.Fatalf("threshold below noise range population = %d", all.Population())
	}
}

func TestGlidersWithoutDensity(t *testing.T) {
	g, err := core.NewGrid(40, 20, Gliders(1, 0))
	if err != nil {
		t.Fatal(err)
	}
	// two gliders and two blinkers
	if g.Population() != 5+5+3+3 {
		t.Fatalf("population = %d, want 16", g.Population())
	}
	small, err := core.NewGrid(6, 6, Gliders(1, 0))
	if err != nil || small.Population() != 0 {
		t.Fatalf("small grid: population %d, err %v", small.Population(), err)
	}
}

func TestRegistry(t *testing.T) {
	names := Names()
	for _, want := range []string{"blinker", "block", "demo", "empty", "glider", "gliders", "noise", "random"} {
		if !slices.Contains(names, want) {
			t.Fatalf("pattern %q not registered (have %v)", want, names)
		}
	}
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	if _, err := Lookup("gosper", Options{}); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("unknown lookup err = %v", err)
	}

	p, err := Lookup("demo", Options{})
	if err != nil {
		t.Fatal(err)
	}
	g, err := core.NewGrid(80, 60, p)
	if err != nil {
		t.Fatal(err)
	}
	for _, rc := range [][2]int{{2, 1}, {3, 2}, {1, 3}, {2, 3}, {3, 3}, {5, 3}} {
		if s, _ := g.Get(rc[0], rc[1]); s != core.Alive {
			t.Fatalf("demo cell %v not alive", rc)
		}
	}
	if g.Population() != 6 {
		t.Fatalf("demo population = %d", g.Population())
	}
}
