// Package game provides the ebiten loop that hosts scenes.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wallhop/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	posted  chan func(scene.Scene)
}

// New creates a Game ticking at tps updates per second.
// The initial scene's OnEnter is called immediately.
func New(initial scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(tps),
		posted:  make(chan func(scene.Scene), 16),
	}
	g.current.OnEnter()
	return g
}

// Post queues fn to run against the current scene before the next update.
// It is safe to call from any goroutine. Posts are dropped while the queue
// is full.
func (g *Game) Post(fn func(scene.Scene)) bool {
	select {
	case g.posted <- fn:
		return true
	default:
		return false
	}
}

// Update runs posted work, then the current scene, and handles transitions.
func (g *Game) Update() error {
drain:
	for {
		select {
		case fn := <-g.posted:
			fn(g.current)
		default:
			break drain
		}
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
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

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// DT returns the time each update advances.
func (g *Game) DT() float64 {
	return g.dt
}

// Close exits the current scene.
func (g *Game) Close() {
	g.current.OnExit()
}
