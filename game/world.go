package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// World is the authoritative session state. It exclusively owns the player,
// the enemies and the collectibles; nothing outside it holds references to them.
type World struct {
	// Configuration
	Config Config

	// Identifies the current session in logs; renewed on every reset
	SessionID uuid.UUID

	Player       *Player
	Enemies      []*Enemy
	Collectibles []*Collectible

	// Current level number
	Level int

	// Regular enemies that must be destroyed to clear the level
	KillTarget int

	// Enemies destroyed since the level loaded
	EnemiesDefeated int

	// Enemies that left the arena this session
	EnemyEscapes int

	// Ticks since the last collectible drop
	CollectibleTimer int

	// Ticks simulated while playing this session
	Tick uint64

	rng *rand.Rand
}

// NewWorld creates a world at level one
func NewWorld(config Config, rng *rand.Rand) (*World, error) {
	w := &World{
		Config: config,
		rng:    rng,
	}
	if err := w.Reset(); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset discards all session state in place and reloads level one
func (w *World) Reset() error {
	w.SessionID = uuid.New()
	w.Player = NewPlayer(w.Config)
	w.Collectibles = w.Collectibles[:0]
	w.EnemyEscapes = 0
	w.CollectibleTimer = 0
	w.Tick = 0
	return w.LoadLevel(1)
}

// LoadLevel replaces the enemy collection with the level's enemies.
// Score, lives and the escape counter are left alone.
func (w *World) LoadLevel(level int) error {
	desc, ok := w.Config.Levels.Lookup(level)
	if !ok {
		return fmt.Errorf("load level %d: no such level", level)
	}

	w.Enemies = make([]*Enemy, 0, desc.EnemyCount())
	for _, spawn := range desc.Spawns {
		for i := 0; i < spawn.Count; i++ {
			x, y := randomSpawnPoint(w.rng, w.Config.ArenaWidth)
			w.Enemies = append(w.Enemies, NewEnemy(x, y, spawn.Speed, spawn.Boss, w.Config))
		}
	}

	w.Level = level
	w.KillTarget = desc.KillTarget
	w.EnemiesDefeated = 0
	return nil
}

// FinalLevel returns the last level of the campaign
func (w *World) FinalLevel() int {
	return w.Config.Levels.FinalLevel()
}

// LevelCleared reports whether the kill target is met on a level that has a successor
func (w *World) LevelCleared() bool {
	return w.EnemiesDefeated >= w.KillTarget && w.Level < w.FinalLevel()
}

// Boss returns the boss if the current level has one
func (w *World) Boss() *Enemy {
	for _, e := range w.Enemies {
		if e.IsBoss() {
			return e
		}
	}
	return nil
}

// RespawnEnemy sends an enemy back above the arena at full health
func (w *World) RespawnEnemy(e *Enemy) {
	e.Respawn(w.rng, w.Config.ArenaWidth)
}

// UpdateCollectibles moves pickups and drops a new one when the spawn timer expires.
// It returns the pickup dropped this tick, if any.
func (w *World) UpdateCollectibles() *Collectible {
	for _, c := range w.Collectibles {
		c.Update(w.Config.ArenaHeight)
	}
	w.Collectibles = pruneCollectibles(w.Collectibles)

	w.CollectibleTimer++
	if w.CollectibleTimer < w.Config.CollectibleSpawnTicks {
		return nil
	}
	w.CollectibleTimer = 0
	c := randomCollectible(w.rng, w.Config.ArenaWidth)
	w.Collectibles = append(w.Collectibles, c)
	return c
}

// Prune drops every inactive projectile and collectible
func (w *World) Prune() {
	w.Player.Projectiles = pruneProjectiles(w.Player.Projectiles)
	for _, e := range w.Enemies {
		e.Projectiles = pruneProjectiles(e.Projectiles)
	}
	w.Collectibles = pruneCollectibles(w.Collectibles)
}
