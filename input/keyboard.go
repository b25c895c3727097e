package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spacebattle/game"
)

// Keyboard reads the ebiten keyboard into a game.KeyState once per tick
type Keyboard struct {
	pressed []ebiten.Key
}

// NewKeyboard creates a keyboard input source
func NewKeyboard() *Keyboard {
	return &Keyboard{
		pressed: make([]ebiten.Key, 0, 8),
	}
}

// Poll samples the keyboard. Arrows or WASD move and Space fires.
// Escape or Q quits, as does closing the window.
func (k *Keyboard) Poll() game.KeyState {
	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	quit := inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		ebiten.IsWindowBeingClosed()

	return game.KeyState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Jump:  ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),

		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:    quit,
		AnyKey:  len(k.pressed) > 0,
	}
}

// DebugToggled reports whether the hitbox overlay key was pressed this tick
func (k *Keyboard) DebugToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF1)
}

// FullscreenToggled reports whether Alt+Enter was pressed this tick
func (k *Keyboard) FullscreenToggled() bool {
	alt := ebiten.IsKeyPressed(ebiten.KeyAlt)
	return alt && inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

var _ game.InputSource = (*Keyboard)(nil)
