package fx

import (
	"image/color"
	"math"
	"math/rand"
)

// Particle is a single short-lived spark. Ages and lifetimes are in ticks.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Age      int
	Lifetime int
	Size     float64
	Fall     float64 // added to VY every tick
	Color    color.NRGBA
}

// IsAlive returns true if the particle is still alive
func (p *Particle) IsAlive() bool {
	return p.Age < p.Lifetime
}

// Alpha returns the fade factor in [0, 1] from the particle's age
func (p *Particle) Alpha() float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, 1-float64(p.Age)/float64(p.Lifetime)))
}

// Emitter describes the particles produced by one burst
type Emitter struct {
	Count          int
	SpeedMin       float64 // pixels per tick
	SpeedMax       float64
	SpreadAngle    float64 // half-angle around Direction, Pi for a full circle
	Direction      float64 // radians, 0 points right and Pi/2 points down
	LifetimeMin    int
	LifetimeMax    int
	SizeMin        float64
	SizeMax        float64
	Gravity        float64 // added to VY every tick
	ColorBase      color.NRGBA
	ColorVariation color.NRGBA
}

// ExplosionEmitter is used when a regular enemy is destroyed
func ExplosionEmitter() Emitter {
	return Emitter{
		Count:          24,
		SpeedMin:       1.5,
		SpeedMax:       4,
		SpreadAngle:    math.Pi,
		LifetimeMin:    15,
		LifetimeMax:    35,
		SizeMin:        1.5,
		SizeMax:        3.5,
		Gravity:        0.05,
		ColorBase:      color.NRGBA{R: 255, G: 170, B: 40, A: 255},
		ColorVariation: color.NRGBA{R: 0, G: 80, B: 40},
	}
}

// BossExplosionEmitter is used when the boss falls
func BossExplosionEmitter() Emitter {
	e := ExplosionEmitter()
	e.Count = 90
	e.SpeedMax = 7
	e.LifetimeMax = 70
	e.SizeMax = 5
	return e
}

// HitEmitter is used for shots that damage without destroying
func HitEmitter(clr color.NRGBA) Emitter {
	return Emitter{
		Count:          6,
		SpeedMin:       1,
		SpeedMax:       2.5,
		SpreadAngle:    math.Pi,
		LifetimeMin:    6,
		LifetimeMax:    14,
		SizeMin:        1,
		SizeMax:        2,
		ColorBase:      clr,
		ColorVariation: color.NRGBA{R: 30, G: 30, B: 30},
	}
}

// SparkleEmitter drops glitter from the top of the screen on the win screen
func SparkleEmitter() Emitter {
	return Emitter{
		Count:          1,
		SpeedMin:       1,
		SpeedMax:       3,
		SpreadAngle:    math.Pi / 8,
		Direction:      math.Pi / 2,
		LifetimeMin:    120,
		LifetimeMax:    240,
		SizeMin:        1,
		SizeMax:        2.5,
		ColorBase:      color.NRGBA{R: 255, G: 230, B: 120, A: 255},
		ColorVariation: color.NRGBA{R: 0, G: 25, B: 100},
	}
}

// ParticleSystem owns every live particle on screen
type ParticleSystem struct {
	particles    []Particle
	maxParticles int
	rng          *rand.Rand
}

// NewParticleSystem creates a particle system holding at most maxParticles
func NewParticleSystem(rng *rand.Rand, maxParticles int) *ParticleSystem {
	return &ParticleSystem{
		particles:    make([]Particle, 0, maxParticles),
		maxParticles: maxParticles,
		rng:          rng,
	}
}

// Burst emits e.Count particles from (x, y). Particles past the cap are dropped.
func (ps *ParticleSystem) Burst(x, y float64, e Emitter) {
	for i := 0; i < e.Count && len(ps.particles) < ps.maxParticles; i++ {
		ps.emitParticle(x, y, e)
	}
}

// emitParticle creates a new particle
func (ps *ParticleSystem) emitParticle(x, y float64, e Emitter) {
	angle := e.Direction + (ps.rng.Float64()-0.5)*e.SpreadAngle*2
	speed := e.SpeedMin + ps.rng.Float64()*(e.SpeedMax-e.SpeedMin)

	lifetime := e.LifetimeMin
	if e.LifetimeMax > e.LifetimeMin {
		lifetime += ps.rng.Intn(e.LifetimeMax - e.LifetimeMin + 1)
	}

	ps.particles = append(ps.particles, Particle{
		X:        x,
		Y:        y,
		VX:       math.Cos(angle) * speed,
		VY:       math.Sin(angle) * speed,
		Lifetime: lifetime,
		Size:     e.SizeMin + ps.rng.Float64()*(e.SizeMax-e.SizeMin),
		Fall:     e.Gravity,
		Color: color.NRGBA{
			R: ps.vary(e.ColorBase.R, e.ColorVariation.R),
			G: ps.vary(e.ColorBase.G, e.ColorVariation.G),
			B: ps.vary(e.ColorBase.B, e.ColorVariation.B),
			A: e.ColorBase.A,
		},
	})
}

// vary offsets a color channel by up to ±variation
func (ps *ParticleSystem) vary(base, variation uint8) uint8 {
	v := float64(base) + ps.rng.Float64()*float64(variation)*2 - float64(variation)
	return uint8(math.Max(0, math.Min(255, v)))
}

// Update ages and moves every particle, dropping the dead ones
func (ps *ParticleSystem) Update() {
	kept := ps.particles[:0]
	for _, p := range ps.particles {
		p.Age++
		p.X += p.VX
		p.Y += p.VY
		p.VY += p.Fall
		if p.IsAlive() {
			kept = append(kept, p)
		}
	}
	ps.particles = kept
}

// Particles returns the live particles. The slice is reused by the next Update.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Clear removes every particle
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}
