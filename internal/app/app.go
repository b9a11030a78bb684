//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"conway/internal/render"
	"conway/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyCommands = map[ebiten.Key]Command{
	ebiten.KeySpace:     CmdTogglePause,
	ebiten.KeyN:         CmdStep,
	ebiten.KeyR:         CmdRestart,
	ebiten.KeyS:         CmdReseed,
	ebiten.KeyC:         CmdClear,
	ebiten.KeyArrowUp:   CmdFaster,
	ebiten.KeyArrowDown: CmdSlower,
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided session.
func New(session *Session, scale, hudWidth int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := session.Controller().Size()
	return &Game{
		session:  session,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(session.Controller(), hudWidth),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	for key, cmd := range keyCommands {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if err := g.session.Apply(cmd, now); err != nil {
			log.Printf("command %d: %v", cmd, err)
		}
	}

	consumed := g.hud.Update(g.gridWidth())
	if !consumed && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if _, err := g.session.Click(mx, my, g.scale); err != nil {
			return err
		}
	}

	g.session.Frame(now)
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Controller().Snapshot()
	g.painter.Blit(screen, snap.Cells(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, g.gridWidth(), snap.Size().H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Controller().Size()
	return g.gridWidth() + g.hud.Width(), s.H * g.scale
}

func (g *Game) gridWidth() int {
	return g.session.Controller().Size().W * g.scale
}
