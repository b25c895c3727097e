package game

import "math/rand"

// Respawn area, matching where a level places its enemies
const (
	spawnMarginX = 50
	spawnMinY    = 60
	spawnMaxY    = 300
)

// Enemy descends the arena at a fixed speed, firing straight down
type Enemy struct {
	Entity

	// Ship type, either ShipTypeEnemy or ShipTypeBoss
	ShipType ShipType

	// Current health, always in [0, MaxHealth]
	Health float64

	// Maximum health
	MaxHealth float64

	// Descent in pixels per tick
	Speed float64

	// Ticks since the last shot
	AttackTimer int

	// Ticks between shots
	AttackRate int

	// Shots fired by this enemy that are still in play
	Projectiles []*Projectile

	weapon WeaponConfig
}

// NewEnemy creates a regular enemy or the boss with its top-left corner at (x, y)
func NewEnemy(x, y, speed float64, boss bool, config Config) *Enemy {
	shipType := ShipTypeEnemy
	health := config.EnemyHealth
	if boss {
		shipType = ShipTypeBoss
		health = config.BossHealth
	}
	shipConfig := GetShipTypeConfig(shipType)
	weapon := GetWeaponConfig(shipConfig.Weapon)
	return &Enemy{
		Entity:      NewEntity(x, y, shipConfig.Width, shipConfig.Height, EntityTypeEnemy),
		ShipType:    shipType,
		Health:      health,
		MaxHealth:   health,
		Speed:       speed,
		AttackRate:  weapon.Cooldown,
		Projectiles: make([]*Projectile, 0, 4),
		weapon:      weapon,
	}
}

// IsBoss reports whether defeating this enemy wins the game
func (e *Enemy) IsBoss() bool {
	return e.ShipType == ShipTypeBoss
}

// Update descends, advances the attack timer and moves this enemy's shots.
// It returns the projectile fired this tick, if any.
func (e *Enemy) Update(arenaHeight float64) *Projectile {
	e.Y += e.Speed

	var fired *Projectile
	e.AttackTimer++
	if e.AttackTimer >= e.AttackRate {
		e.AttackTimer = 0
		fired = NewProjectile(e.CenterX(), e.Bottom(), e.weapon)
		e.Projectiles = append(e.Projectiles, fired)
	}

	for _, shot := range e.Projectiles {
		shot.Update(arenaHeight)
	}
	e.Projectiles = pruneProjectiles(e.Projectiles)

	return fired
}

// ApplyDamage lowers health, clamped at zero, and reports whether the enemy is destroyed
func (e *Enemy) ApplyDamage(damage float64) bool {
	if damage > 0 {
		e.Health = max(0, e.Health-damage)
	}
	return e.Health <= 0
}

// Escaped reports whether the enemy has left through the bottom of the arena
func (e *Enemy) Escaped(arenaHeight float64) bool {
	return e.Y > arenaHeight
}

// Respawn restores full health and moves the enemy above the visible area
func (e *Enemy) Respawn(rng *rand.Rand, arenaWidth float64) {
	e.Health = e.MaxHealth
	e.X, e.Y = randomSpawnPoint(rng, arenaWidth)
}

// randomSpawnPoint picks a top-left corner above the arena
func randomSpawnPoint(rng *rand.Rand, arenaWidth float64) (float64, float64) {
	return randomSpawnX(rng, arenaWidth), -float64(spawnMinY + rng.Intn(spawnMaxY-spawnMinY+1))
}

// randomSpawnX picks an x in [50, width-50]
func randomSpawnX(rng *rand.Rand, arenaWidth float64) float64 {
	span := int(arenaWidth) - 2*spawnMarginX
	if span <= 0 {
		return arenaWidth / 2
	}
	return float64(spawnMarginX + rng.Intn(span+1))
}
