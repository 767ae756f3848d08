// Package input maps the keyboard to actor input.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/wallhop/internal/application/system"
)

// Keyboard reads actor input from ebiten's keyboard state.
type Keyboard struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Jump  []ebiten.Key
}

// NewKeyboard returns the default bindings: A/D or the arrow keys to move,
// W, Up or Space to jump.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		Left:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Jump:  []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeySpace},
	}
}

// Read returns the input for the current frame.
func (k *Keyboard) Read() system.InputState {
	return k.read(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}

func (k *Keyboard) read(pressed, justPressed func(ebiten.Key) bool) system.InputState {
	return system.InputState{
		Left:        anyKey(k.Left, pressed),
		Right:       anyKey(k.Right, pressed),
		Jump:        anyKey(k.Jump, pressed),
		JumpPressed: anyKey(k.Jump, justPressed),
	}
}

func anyKey(keys []ebiten.Key, fn func(ebiten.Key) bool) bool {
	for _, key := range keys {
		if fn(key) {
			return true
		}
	}
	return false
}
