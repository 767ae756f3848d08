// Package scene defines the screens the sandbox can show.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wallhop/internal/application/system"
	"github.com/younwookim/wallhop/internal/infrastructure/config"
)

// Scene is one screen of the sandbox. The game loop delegates Update and
// Draw to the current scene; returning a non-nil Scene from Update
// switches to it.
type Scene interface {
	// Update advances the scene by dt seconds. A non-nil error ends the loop.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current.
	OnEnter()

	// OnExit runs when the scene is replaced or the loop ends.
	OnExit()
}

// Reloadable is a scene that accepts new configs while running.
type Reloadable interface {
	Scene
	SetConfig(cfg *config.PhysicsConfig) error
	SetStage(stage *system.Stage) error
}
