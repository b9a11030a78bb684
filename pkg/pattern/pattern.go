// Package pattern provides initial configurations for Life grids.
package pattern

import (
	"github.com/aquilax/go-perlin"
	"github.com/pkg/errors"

	"conway/pkg/core"
)

// Shape is a set of live cells relative to an origin at (0, 0).
type Shape struct {
	cells [][2]int
	w, h  int
}

// Parse builds a Shape from rows of text. 'O', 'o', '*' and '#' mark live
// cells; '.', ' ' and '_' mark dead ones.
func Parse(rows ...string) (Shape, error) {
	var s Shape
	for r, line := range rows {
		for c, ch := range line {
			switch ch {
			case 'O', 'o', '*', '#':
				s.cells = append(s.cells, [2]int{r, c})
			case '.', ' ', '_':
			default:
				return Shape{}, errors.Errorf("row %d col %d: unexpected %q", r, c, ch)
			}
			s.w = max(s.w, c+1)
		}
		s.h = r + 1
	}
	return s, nil
}

// MustParse is Parse that panics on malformed input. Intended for package
// level presets.
func MustParse(rows ...string) Shape {
	s, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return s
}

// Size returns the bounding box of the shape.
func (s Shape) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// Cells returns the live cell offsets as (row, col) pairs.
func (s Shape) Cells() [][2]int { return append([][2]int(nil), s.cells...) }

// At places the shape with its top-left corner at (row, col). Cells falling
// outside the grid fail with core.ErrOutOfBounds.
func (s Shape) At(row, col int) core.Pattern {
	return core.PatternFunc(func(g *core.Grid) error {
		for _, rc := range s.cells {
			if err := g.Set(row+rc[0], col+rc[1], core.Alive); err != nil {
				return errors.Wrap(err, "placing shape")
			}
		}
		return nil
	})
}

// Centered places the shape in the middle of the grid.
func (s Shape) Centered() core.Pattern {
	return core.PatternFunc(func(g *core.Grid) error {
		w, h := g.Dimensions()
		return s.At((h-s.h)/2, (w-s.w)/2).Apply(g)
	})
}

// Empty leaves the grid dead.
func Empty() core.Pattern {
	return core.PatternFunc(func(g *core.Grid) error {
		g.Clear()
		return nil
	})
}

// Random sets each cell alive with probability density using a seeded RNG,
// so equal seeds produce equal grids.
func Random(seed int64, density float64) core.Pattern {
	return core.PatternFunc(func(g *core.Grid) error {
		if density < 0 || density > 1 {
			return errors.Errorf("density %.3f outside [0,1]", density)
		}
		core.FillDensity(core.NewRNG(seed), g.Cells(), density)
		return nil
	})
}

// Noise seeds the grid from 2D Perlin noise: cells whose noise value exceeds
// threshold start alive. Produces clustered blobs rather than uniform static.
func Noise(seed int64, threshold float64) core.Pattern {
	return core.PatternFunc(func(g *core.Grid) error {
		const (
			alpha = 2.0
			beta  = 2.0
			octav = 3
			scale = 0.15
		)
		p := perlin.NewPerlin(alpha, beta, octav, seed)
		w, h := g.Dimensions()
		cells := g.Cells()
		for row := 0; row < h; row++ {
			for col := 0; col < w; col++ {
				idx := g.Index(row, col)
				cells[idx] = 0
				if p.Noise2D(float64(col)*scale, float64(row)*scale) > threshold {
					cells[idx] = 1
				}
			}
		}
		return nil
	})
}

// Combine applies patterns in order, stopping at the first error.
func Combine(patterns ...core.Pattern) core.Pattern {
	return core.PatternFunc(func(g *core.Grid) error {
		for _, p := range patterns {
			if p == nil {
				continue
			}
			if err := p.Apply(g); err != nil {
				return err
			}
		}
		return nil
	})
}
