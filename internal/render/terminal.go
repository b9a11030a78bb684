package render

import (
	"bufio"
	"fmt"
	"io"

	"conway/pkg/life"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// clearScreen homes the cursor and erases the display.
	clearScreen = "\x1b[H\x1b[2J"
)

// TerminalRenderer draws snapshots as text.
type TerminalRenderer struct {
	out *bufio.Writer
}

// NewTerminalRenderer returns a renderer writing to w.
func NewTerminalRenderer(w io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: bufio.NewWriter(w)}
}

// Clear clears the terminal screen.
func (r *TerminalRenderer) Clear() error {
	if _, err := r.out.WriteString(clearScreen); err != nil {
		return err
	}
	return r.out.Flush()
}

// Display renders the status line followed by the grid.
func (r *TerminalRenderer) Display(s life.Snapshot) error {
	w, h := s.Dimensions()
	cells := s.Cells()
	fmt.Fprintln(r.out, StatusLine(s))
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if cells[row*w+col] != 0 {
				r.out.WriteString(gridPosBlock)
			} else {
				r.out.WriteString(gridPosEmpty)
			}
		}
		r.out.WriteByte('\n')
	}
	return r.out.Flush()
}

// StatusLine summarises a snapshot in one line.
func StatusLine(s life.Snapshot) string {
	size := s.Size()
	living := s.Population()
	density := float64(living) / float64(size.Cells()) * 100
	state := "Running"
	if !s.Running() {
		state = "Paused"
	}
	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s",
		s.Generation(), living, density, state)
}
