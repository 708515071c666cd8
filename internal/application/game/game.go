// Package game provides the ebiten.Game that drives the current scene.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/griddefense/internal/application/scene"
)

// Game implements ebiten.Game and manages scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	closed  bool
}

// New creates a Game showing the given scene at a fixed logical size.
// The initial scene's OnEnter is called immediately.
func New(initial scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(ebiten.DefaultTPS),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Returns ebiten.Termination when the scene asks to quit.
func (g *Game) Update() error {
	if g.closed {
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		g.Close()
		if errors.Is(err, scene.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the fixed logical screen size regardless of the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// Close runs OnExit on the current scene once. Safe to call after the loop returns.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}

// SetDT sets the delta time passed to scenes.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
