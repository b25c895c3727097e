package game

// Projectile is a shot travelling straight up or down the arena
type Projectile struct {
	Entity

	// Side that fired the shot
	Faction Faction

	// Vertical direction, -1 up or +1 down
	Direction float64

	// Pixels travelled per tick
	Speed float64

	// Damage dealt on hit
	Damage float64
}

// NewProjectile creates a projectile centered on (cx, cy) using the weapon's stats
func NewProjectile(cx, cy float64, weapon WeaponConfig) *Projectile {
	return &Projectile{
		Entity:    NewEntityCentered(cx, cy, weapon.Width, weapon.Height, EntityTypeProjectile),
		Faction:   weapon.Faction,
		Direction: weapon.Faction.Direction(),
		Speed:     weapon.ProjectileSpeed,
		Damage:    weapon.Damage,
	}
}

// Update moves the projectile and deactivates it once it leaves the vertical bounds
func (p *Projectile) Update(arenaHeight float64) {
	if !p.Active {
		return
	}
	p.Y += p.Speed * p.Direction
	if p.Bottom() < 0 || p.Y > arenaHeight {
		p.Active = false
	}
}

// Destroy removes the projectile from play
func (p *Projectile) Destroy() {
	p.Active = false
}

// pruneProjectiles drops inactive projectiles, reusing the backing array
func pruneProjectiles(projectiles []*Projectile) []*Projectile {
	kept := projectiles[:0]
	for _, p := range projectiles {
		if p.Active {
			kept = append(kept, p)
		}
	}
	// Clear the tail so dropped projectiles can be collected
	for i := len(kept); i < len(projectiles); i++ {
		projectiles[i] = nil
	}
	return kept
}

// liveProjectiles counts active projectiles
func liveProjectiles(projectiles []*Projectile) int {
	n := 0
	for _, p := range projectiles {
		if p.Active {
			n++
		}
	}
	return n
}
