package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"conway/pkg/core"
	"conway/pkg/life"
	"conway/pkg/pattern"
)

func TestTerminalDisplay(t *testing.T) {
	g, err := core.NewGrid(4, 2, pattern.MustParse("O..O", ".OO.").At(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	ctrl := life.NewController(g, time.Second, life.StartPaused())

	var out bytes.Buffer
	r := NewTerminalRenderer(&out)
	if err := r.Display(ctrl.Snapshot()); err != nil {
		t.Fatalf("Display: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want status + 2 rows:\n%s", len(lines), out.String())
	}
	if want := "Gen: 0 | Living: 4 | Density: 50.0% | Status: Paused"; lines[0] != want {
		t.Fatalf("status = %q, want %q", lines[0], want)
	}
	if want := gridPosBlock + gridPosEmpty + gridPosEmpty + gridPosBlock; lines[1] != want {
		t.Fatalf("row 0 = %q", lines[1])
	}
	if want := gridPosEmpty + gridPosBlock + gridPosBlock + gridPosEmpty; lines[2] != want {
		t.Fatalf("row 1 = %q", lines[2])
	}
}

func TestTerminalClear(t *testing.T) {
	var out bytes.Buffer
	if err := NewTerminalRenderer(&out).Clear(); err != nil {
		t.Fatal(err)
	}
	if out.String() != clearScreen {
		t.Fatalf("clear wrote %q", out.String())
	}
}
