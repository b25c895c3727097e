package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"spacebattle/game"
)

const (
	hudMarginX     = 10
	hudLineHeight  = 20
	healthBarWidth = 200
	bigTextScale   = 3
	blinkTicks     = 30 // half a second at 60 TPS
	restartHint    = "Press R to Restart or Q to Quit"
)

var (
	textWhite = color.RGBA{255, 255, 255, 255}
	textRed   = color.RGBA{255, 60, 60, 255}
	textGreen = color.RGBA{60, 255, 60, 255}
	textBlue  = color.RGBA{80, 140, 255, 255}
)

// HUD draws the status lines and the phase screens
type HUD struct {
	face *text.GoXFace
}

// NewHUD creates a HUD using the built-in bitmap font
func NewHUD() *HUD {
	return &HUD{
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw renders the status lines and the player's health bar
func (h *HUD) Draw(screen *ebiten.Image, s game.Snapshot) {
	lines := []string{
		fmt.Sprintf("Lives: %d", s.Lives),
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Hits Taken: %d / %d", s.HitsTaken, s.MaxHits),
		fmt.Sprintf("Enemies Escaped: %d / %d", s.EnemyEscapes, s.EscapeLimit),
	}
	for i, line := range lines {
		h.drawText(screen, line, hudMarginX, float64(hudMarginX+i*hudLineHeight), 1, textWhite)
	}

	level := fmt.Sprintf("Level: %d", s.Level)
	if s.Level < s.FinalLevel {
		level = fmt.Sprintf("Level: %d  Kills: %d / %d", s.Level, s.EnemiesDefeated, s.KillTarget)
	}
	w, _ := text.Measure(level, h.face, 0)
	h.drawText(screen, level, float64(screen.Bounds().Dx())-w-hudMarginX, hudMarginX, 1, textWhite)

	barY := float32(hudMarginX + len(lines)*hudLineHeight + 4)
	vector.DrawFilledRect(screen, hudMarginX, barY, healthBarWidth, 10, healthBackground, false)
	vector.DrawFilledRect(screen, hudMarginX, barY, float32(healthBarWidth*s.HealthFraction()), 10, healthForeground, false)
	h.drawText(screen, "Health", hudMarginX+healthBarWidth+10, float64(barY)-2, 1, textWhite)
}

// DrawStartScreen renders the title screen
func (h *HUD) DrawStartScreen(screen *ebiten.Image) {
	cy := float64(screen.Bounds().Dy()) / 2
	h.drawCentered(screen, "SPACE WAR", cy-80, bigTextScale, textWhite)
	h.drawCentered(screen, "Press any key to Start (WASD for movement, Space for Shoot)", cy-20, 1, textWhite)
	h.drawCentered(screen, "Press Q to Quit", cy+20, 1, textWhite)
}

// DrawGameOverScreen renders the loss screen
func (h *HUD) DrawGameOverScreen(screen *ebiten.Image, s game.Snapshot) {
	cy := float64(screen.Bounds().Dy()) / 2
	h.drawCentered(screen, "GAME OVER", cy-60, bigTextScale, textRed)
	h.drawCentered(screen, fmt.Sprintf("Score: %d  Level: %d", s.Score, s.Level), cy-10, 1, textWhite)
	h.drawCentered(screen, restartHint, cy+20, 1, textWhite)
}

// DrawLevelComplete renders the banner shown between levels
func (h *HUD) DrawLevelComplete(screen *ebiten.Image, s game.Snapshot) {
	cy := float64(screen.Bounds().Dy()) / 2
	h.drawCentered(screen, fmt.Sprintf("LEVEL %d COMPLETED!", s.Level), cy-40, bigTextScale, textBlue)
}

// DrawWinScreen renders the victory screen with a blinking title
func (h *HUD) DrawWinScreen(screen *ebiten.Image, s game.Snapshot) {
	cy := float64(screen.Bounds().Dy()) / 2
	if (s.PhaseTicks/blinkTicks)%2 == 0 {
		h.drawCentered(screen, "CONGRATULATIONS!", cy-60, bigTextScale, textGreen)
	}
	h.drawCentered(screen, "You defeated the boss!", cy-10, 1, textWhite)
	h.drawCentered(screen, restartHint, cy+30, 1, textWhite)
}

func (h *HUD) drawCentered(screen *ebiten.Image, str string, y, scale float64, clr color.Color) {
	w, _ := text.Measure(str, h.face, 0)
	x := (float64(screen.Bounds().Dx()) - w*scale) / 2
	h.drawText(screen, str, x, y, scale, clr)
}

func (h *HUD) drawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, h.face, op)
}
