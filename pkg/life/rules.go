// Package life implements Conway's Game of Life on top of core.Grid: the
// generation rule, a double-buffered advance and the Controller that front
// ends drive.
package life

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"conway/pkg/core"
)

// ErrBufferMismatch reports a destination buffer that cannot receive the next
// generation of a source grid.
var ErrBufferMismatch = errors.New("destination buffer does not match source grid")

/*
Apply reports whether a cell is alive in the next generation.

	alive, <2 neighbours  -> dead (underpopulation)
	alive, 2 or 3         -> alive
	alive, >3             -> dead (overpopulation)
	dead, exactly 3       -> alive (reproduction)
*/
func Apply(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Next returns a new grid holding the generation after src. src is not
// modified.
func Next(src *core.Grid) *core.Grid {
	dst := blank(src)
	advanceRows(dst, src, 0, src.Size().H)
	return dst
}

// NextInto writes the generation after src into dst. dst must be a distinct
// grid of the same dimensions; its previous contents are overwritten.
func NextInto(dst, src *core.Grid) error {
	if err := checkBuffers(dst, src); err != nil {
		return err
	}
	advanceRows(dst, src, 0, src.Size().H)
	return nil
}

// NextParallel is NextInto with the rows split into bands evaluated
// concurrently. Each band reads only src and writes only its own rows of dst.
// workers <= 0 uses runtime.NumCPU.
func NextParallel(dst, src *core.Grid, workers int) error {
	if err := checkBuffers(dst, src); err != nil {
		return err
	}
	h := src.Size().H
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > h {
		workers = h
	}
	if workers <= 1 {
		advanceRows(dst, src, 0, h)
		return nil
	}

	var (
		eg          errgroup.Group
		rowsPerBand = (h + workers - 1) / workers
	)
	for start := 0; start < h; start += rowsPerBand {
		end := min(start+rowsPerBand, h)
		eg.Go(func() error {
			advanceRows(dst, src, start, end)
			return nil
		})
	}
	return eg.Wait()
}

func advanceRows(dst, src *core.Grid, startRow, endRow int) {
	w := src.Size().W
	cur, nxt := src.Cells(), dst.Cells()
	for row := startRow; row < endRow; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			nxt[idx] = 0
			if Apply(cur[idx] != 0, src.CountLiveNeighbors(row, col)) {
				nxt[idx] = 1
			}
		}
	}
}

func checkBuffers(dst, src *core.Grid) error {
	if dst == nil || src == nil {
		return errors.Wrap(ErrBufferMismatch, "nil grid")
	}
	if dst == src {
		return errors.Wrap(ErrBufferMismatch, "source and destination are the same grid")
	}
	if dst.Size() != src.Size() {
		return errors.Wrapf(ErrBufferMismatch, "source %dx%d, destination %dx%d",
			src.Size().W, src.Size().H, dst.Size().W, dst.Size().H)
	}
	return nil
}

// blank allocates an empty grid shaped like src.
func blank(src *core.Grid) *core.Grid {
	w, h := src.Dimensions()
	g, err := core.NewGrid(w, h, nil, core.WithBoundary(src.Boundary()))
	if err != nil {
		// src already has positive dimensions.
		panic(err)
	}
	return g
}
