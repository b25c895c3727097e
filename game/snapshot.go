package game

import "github.com/google/uuid"

// EnemyView is the drawable state of one enemy
type EnemyView struct {
	Bounds    Rect
	Health    float64
	MaxHealth float64
	Boss      bool
}

// ProjectileView is the drawable state of one shot
type ProjectileView struct {
	Bounds  Rect
	Faction Faction
}

// CollectibleView is the drawable state of one pickup
type CollectibleView struct {
	Bounds Rect
	Kind   CollectibleKind
}

// Snapshot is a copy of everything a renderer needs for one frame.
// It shares no memory with the world.
type Snapshot struct {
	SessionID  uuid.UUID
	Phase      Phase
	PhaseTicks int
	Tick       uint64

	Level      int
	FinalLevel int

	Score     int
	Lives     int
	HitsTaken int
	MaxHits   int

	EnemiesDefeated int
	KillTarget      int
	EnemyEscapes    int
	EscapeLimit     int

	Player       Rect
	Enemies      []EnemyView
	Projectiles  []ProjectileView
	Collectibles []CollectibleView
}

// Snapshot copies the current world for rendering
func (g *Game) Snapshot() Snapshot {
	w := g.world
	p := w.Player
	s := Snapshot{
		SessionID:       w.SessionID,
		Phase:           g.phase,
		PhaseTicks:      g.phaseTicks,
		Tick:            w.Tick,
		Level:           w.Level,
		FinalLevel:      w.FinalLevel(),
		Score:           p.Score,
		Lives:           p.Lives,
		HitsTaken:       p.HitsTaken,
		MaxHits:         p.MaxHits,
		EnemiesDefeated: w.EnemiesDefeated,
		KillTarget:      w.KillTarget,
		EnemyEscapes:    w.EnemyEscapes,
		EscapeLimit:     g.config.EscapeLimit,
		Player:          p.Bounds(),
		Enemies:         make([]EnemyView, 0, len(w.Enemies)),
		Projectiles:     make([]ProjectileView, 0, len(p.Projectiles)+len(w.Enemies)),
		Collectibles:    make([]CollectibleView, 0, len(w.Collectibles)),
	}

	for _, shot := range p.Projectiles {
		s.Projectiles = append(s.Projectiles, ProjectileView{Bounds: shot.Bounds(), Faction: shot.Faction})
	}
	for _, e := range w.Enemies {
		s.Enemies = append(s.Enemies, EnemyView{
			Bounds:    e.Bounds(),
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			Boss:      e.IsBoss(),
		})
		for _, shot := range e.Projectiles {
			s.Projectiles = append(s.Projectiles, ProjectileView{Bounds: shot.Bounds(), Faction: shot.Faction})
		}
	}
	for _, c := range w.Collectibles {
		s.Collectibles = append(s.Collectibles, CollectibleView{Bounds: c.Bounds(), Kind: c.Kind})
	}
	return s
}

// HealthFraction returns the share of the current life left, in [0, 1]
func (s Snapshot) HealthFraction() float64 {
	if s.MaxHits <= 0 {
		return 0
	}
	f := float64(s.MaxHits-s.HitsTaken) / float64(s.MaxHits)
	return clamp(f, 0, 1)
}
