package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spacebattle/game"
)

// DebugState holds debug flags that persist across game resets
type DebugState struct {
	ShowHitboxes bool // Outline every collision box and print tick counters
}

// Toggle flips the hitbox overlay
func (d *DebugState) Toggle() {
	d.ShowHitboxes = !d.ShowHitboxes
}

var hitboxColor = color.RGBA{0, 255, 255, 255}

// drawHitboxes outlines every collision rect and prints the frame counters
func drawHitboxes(screen *ebiten.Image, s game.Snapshot) {
	outline := func(b game.Rect) {
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1, hitboxColor, false)
	}

	outline(s.Player)
	for _, e := range s.Enemies {
		outline(e.Bounds)
	}
	for _, p := range s.Projectiles {
		outline(p.Bounds)
	}
	for _, c := range s.Collectibles {
		outline(c.Bounds)
	}

	info := fmt.Sprintf("tick %d  phase %s  shots %d  TPS %0.1f  FPS %0.1f",
		s.Tick, s.Phase, len(s.Projectiles), ebiten.ActualTPS(), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, info, hudMarginX, screen.Bounds().Dy()-20)
}
