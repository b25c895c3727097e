package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"spacebattle/game"
	"spacebattle/input"
	"spacebattle/profiling"
	"spacebattle/render"
	"spacebattle/render/fx"
)

// App adapts game.Game to ebiten.Game
type App struct {
	game     *game.Game
	keyboard *input.Keyboard
	renderer *render.Renderer
	effects  *fx.Effects
	debug    *render.DebugState
	profiler *profiling.Profiler // nil unless -profile is set

	width, height int
}

// Update samples the keyboard and advances the simulation one tick
func (a *App) Update() error {
	if a.keyboard.DebugToggled() {
		a.debug.Toggle()
	}
	if a.keyboard.FullscreenToggled() {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	if err := a.game.Update(a.keyboard.Poll()); err != nil {
		if errors.Is(err, game.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	a.effects.Update(a.game.Phase())

	if a.profiler != nil {
		a.profiler.Observe(ebiten.ActualTPS())
	}
	return nil
}

// Draw renders the current snapshot
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.game.Snapshot())
}

// Layout keeps the arena resolution regardless of the window size
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}
