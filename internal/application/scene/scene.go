// Package scene defines the screens the ebiten loop delegates to.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update to close the window without reporting a failure
var ErrQuit = errors.New("quit")

// Scene is one screen of the game.
//
// Update returns the next scene to switch to, or nil to stay.
// Any error other than ErrQuit ends the loop and is reported.
type Scene interface {
	// Update advances the scene by dt seconds of wall time
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current
	OnEnter()

	// OnExit is called when the scene is replaced or the loop ends
	OnExit()
}
