package pattern

import (
	"sort"

	"github.com/pkg/errors"

	"conway/pkg/core"
)

// ErrUnknownPattern reports a lookup for a name that was never registered.
var ErrUnknownPattern = errors.New("unknown pattern")

// Options carries the knobs a Factory may consult.
type Options struct {
	Seed    int64
	Density float64
}

// Factory constructs a Pattern from options.
type Factory func(opts Options) core.Pattern

var patterns = map[string]Factory{}

// Register adds a pattern factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// Lookup builds the named pattern.
func Lookup(name string, opts Options) (core.Pattern, error) {
	f, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "%q", name)
	}
	return f(opts), nil
}

// Names lists registered patterns in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	// Glider travels diagonally toward the bottom-right.
	Glider = MustParse(
		".O.",
		"..O",
		"OOO",
	)
	// Blinker is a period-2 oscillator in its horizontal phase.
	Blinker = MustParse("OOO")
	// Block is the 2x2 still life.
	Block = MustParse(
		"OO",
		"OO",
	)
	// demo is the six-cell start-up layout anchored at the top-left corner.
	demo = MustParse(
		"....",
		"...O",
		".O.O",
		"..OO",
		"....",
		"...O",
	)
)

// Gliders seeds a couple of gliders and blinkers sized to the grid, then
// sprinkles random cells at the given density on top.
func Gliders(seed int64, density float64) core.Pattern {
	return core.PatternFunc(func(g *core.Grid) error {
		w, h := g.Dimensions()
		var parts []core.Pattern
		if density > 0 {
			parts = append(parts, Random(seed, density))
		}
		if w >= 10 && h >= 10 {
			parts = append(parts, Glider.At(5, 5))
			if w >= 20 && h >= 15 {
				parts = append(parts, Glider.At(5, w-8))
			}
			parts = append(parts, Blinker.At(h/4, w/4))
			if w >= 30 {
				parts = append(parts, Blinker.At(3*h/4, 3*w/4))
			}
		}
		return Combine(parts...).Apply(g)
	})
}

func init() {
	Register("empty", func(Options) core.Pattern { return Empty() })
	Register("random", func(o Options) core.Pattern { return Random(o.Seed, o.Density) })
	Register("noise", func(o Options) core.Pattern { return Noise(o.Seed, 0.1) })
	Register("glider", func(Options) core.Pattern { return Glider.Centered() })
	Register("blinker", func(Options) core.Pattern { return Blinker.Centered() })
	Register("block", func(Options) core.Pattern { return Block.Centered() })
	Register("demo", func(Options) core.Pattern { return demo.At(0, 0) })
	Register("gliders", func(o Options) core.Pattern { return Gliders(o.Seed, o.Density) })
}
