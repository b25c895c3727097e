package fx

import (
	"image/color"
	"math/rand"

	"spacebattle/game"
)

const maxParticles = 600

// Effects turns game events into particle bursts. It implements game.EventSink.
type Effects struct {
	Particles *ParticleSystem
	Stars     *Starfield

	rng *rand.Rand
}

// NewEffects creates the effect layer for a width x height arena
func NewEffects(rng *rand.Rand, width, height float64) *Effects {
	return &Effects{
		Particles: NewParticleSystem(rng, maxParticles),
		Stars:     NewStarfield(rng, 120, width, height),
		rng:       rng,
	}
}

// HandleEvent reacts to one game event
func (f *Effects) HandleEvent(ev game.Event) {
	switch ev.Kind {
	case game.EventEnemyDefeated:
		f.Particles.Burst(ev.X, ev.Y, ExplosionEmitter())
	case game.EventBossDefeated:
		f.Particles.Burst(ev.X, ev.Y, BossExplosionEmitter())
	case game.EventEnemyHit:
		f.Particles.Burst(ev.X, ev.Y, HitEmitter(color.NRGBA{R: 255, G: 255, B: 160, A: 255}))
	case game.EventPlayerHit:
		f.Particles.Burst(ev.X, ev.Y, HitEmitter(color.NRGBA{R: 255, G: 60, B: 60, A: 255}))
	case game.EventCollectiblePicked:
		f.Particles.Burst(ev.X, ev.Y, HitEmitter(color.NRGBA{R: 120, G: 255, B: 160, A: 255}))
	case game.EventGameStarted:
		f.Particles.Clear()
	}
}

// Update advances the background and particles one tick.
// The win screen keeps sparkles falling across the whole width.
func (f *Effects) Update(phase game.Phase) {
	f.Stars.Update()
	if phase == game.PhaseWin && f.rng.Intn(2) == 0 {
		f.Particles.Burst(f.rng.Float64()*f.Stars.width, 0, SparkleEmitter())
	}
	f.Particles.Update()
}

var _ game.EventSink = (*Effects)(nil)
