package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spacebattle/game"
	"spacebattle/render/fx"
)

var (
	backgroundColor  = color.RGBA{8, 8, 24, 255}
	groundColor      = color.RGBA{40, 60, 40, 255}
	playerColor      = color.RGBA{0, 255, 0, 255}
	enemyColor       = color.RGBA{255, 0, 0, 255}
	bossColor        = color.RGBA{200, 0, 255, 255}
	playerShotColor  = color.RGBA{255, 255, 0, 255}
	enemyShotColor   = color.RGBA{255, 120, 0, 255}
	healthBackground = color.RGBA{100, 0, 0, 255}
	healthForeground = color.RGBA{0, 255, 0, 255}
)

// collectibleColors indexes pickup colors by kind
var collectibleColors = map[game.CollectibleKind]color.RGBA{
	game.CollectibleHealthBoost: {80, 255, 120, 255},
	game.CollectibleExtraLife:   {255, 80, 160, 255},
	game.CollectibleScoreBoost:  {80, 200, 255, 255},
}

// Renderer draws snapshots of the game. It never touches the world directly.
type Renderer struct {
	effects *fx.Effects
	hud     *HUD
	debug   *DebugState

	groundY float64
}

// NewRenderer creates a renderer for the configured arena
func NewRenderer(config game.Config, effects *fx.Effects, debug *DebugState) *Renderer {
	return &Renderer{
		effects: effects,
		hud:     NewHUD(),
		debug:   debug,
		groundY: config.Ground(),
	}
}

// Draw renders one frame
func (r *Renderer) Draw(screen *ebiten.Image, s game.Snapshot) {
	screen.Fill(backgroundColor)
	r.drawStars(screen)

	switch s.Phase {
	case game.PhaseStart:
		r.hud.DrawStartScreen(screen)
		return
	case game.PhaseGameOver:
		r.hud.DrawGameOverScreen(screen, s)
		return
	}

	r.drawGround(screen)
	for _, c := range s.Collectibles {
		r.drawCollectible(screen, c)
	}
	for _, e := range s.Enemies {
		r.drawEnemy(screen, e)
	}
	r.drawPlayer(screen, s.Player)
	for _, p := range s.Projectiles {
		r.drawProjectile(screen, p)
	}
	r.drawParticles(screen)

	if r.debug.ShowHitboxes {
		drawHitboxes(screen, s)
	}

	r.hud.Draw(screen, s)
	switch s.Phase {
	case game.PhaseLevelComplete:
		r.hud.DrawLevelComplete(screen, s)
	case game.PhaseWin:
		r.hud.DrawWinScreen(screen, s)
	}
}

func (r *Renderer) drawStars(screen *ebiten.Image) {
	for _, star := range r.effects.Stars.Stars {
		shade := uint8(120 + star.Speed*60)
		vector.DrawFilledCircle(screen, float32(star.X), float32(star.Y), float32(star.Size), color.RGBA{shade, shade, shade, 255}, true)
	}
}

func (r *Renderer) drawGround(screen *ebiten.Image) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, float32(r.groundY), w, h-float32(r.groundY), groundColor, false)
}

// drawPlayer draws the player as a hull with a cockpit
func (r *Renderer) drawPlayer(screen *ebiten.Image, b game.Rect) {
	fillRect(screen, b, playerColor)
	cockpit := game.Rect{X: b.X + b.Width/4, Y: b.Y + 8, Width: b.Width / 2, Height: b.Height / 4}
	fillRect(screen, cockpit, color.RGBA{20, 80, 20, 255})
}

// drawEnemy draws an enemy and its health bar. The boss bar spans the whole hull.
func (r *Renderer) drawEnemy(screen *ebiten.Image, e game.EnemyView) {
	clr := enemyColor
	if e.Boss {
		clr = bossColor
	}
	fillRect(screen, e.Bounds, clr)

	if e.MaxHealth <= 0 {
		return
	}
	barWidth := e.Bounds.Width
	barHeight := 4.0
	if e.Boss {
		barHeight = 8
	}
	barX := e.Bounds.X
	barY := e.Bounds.Y - barHeight - 2

	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth), float32(barHeight), healthBackground, false)
	healthWidth := barWidth * e.Health / e.MaxHealth
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(healthWidth), float32(barHeight), healthForeground, false)
}

func (r *Renderer) drawProjectile(screen *ebiten.Image, p game.ProjectileView) {
	clr := playerShotColor
	if p.Faction == game.FactionEnemy {
		clr = enemyShotColor
	}
	fillRect(screen, p.Bounds, clr)
}

// drawCollectible draws a pickup as a colored disc
func (r *Renderer) drawCollectible(screen *ebiten.Image, c game.CollectibleView) {
	clr, ok := collectibleColors[c.Kind]
	if !ok {
		clr = color.RGBA{255, 255, 255, 255}
	}
	cx := c.Bounds.X + c.Bounds.Width/2
	cy := c.Bounds.Y + c.Bounds.Height/2
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(c.Bounds.Width/2), clr, true)
}

func (r *Renderer) drawParticles(screen *ebiten.Image) {
	for _, p := range r.effects.Particles.Particles() {
		clr := p.Color
		clr.A = uint8(float64(clr.A) * p.Alpha())
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), clr, true)
	}
}

func fillRect(screen *ebiten.Image, b game.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), clr, false)
}
