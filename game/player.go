package game

// Player is the craft steered by the keyboard
type Player struct {
	Entity

	// Vertical velocity in pixels per tick, positive is down
	VelocityY float64

	// Whether the player stands on the ground and may jump
	Grounded bool

	// Spare lives; the game ends once this drops below the configured floor
	Lives int

	// Hits taken during the current life, always in [0, MaxHits)
	HitsTaken int

	// Hits that consume one life
	MaxHits int

	// Score never decreases
	Score int

	// Ticks remaining before the next shot is allowed
	ShootCooldown int

	// Shots fired by the player that are still in play
	Projectiles []*Projectile

	weapon WeaponConfig
}

// NewPlayer creates a player standing on the ground at the center of the arena
func NewPlayer(config Config) *Player {
	shipConfig := GetShipTypeConfig(ShipTypePlayer)
	x := config.ArenaWidth/2 - shipConfig.Width/2
	y := config.Ground() - shipConfig.Height
	return &Player{
		Entity:      NewEntity(x, y, shipConfig.Width, shipConfig.Height, EntityTypePlayer),
		Grounded:    true,
		Lives:       config.PlayerLives,
		MaxHits:     config.PlayerMaxHits,
		Projectiles: make([]*Projectile, 0, 8),
		weapon:      GetWeaponConfig(shipConfig.Weapon),
	}
}

// Update applies one tick of input, gravity and firing.
// It returns the projectile fired this tick, if any.
func (p *Player) Update(keys KeyState, config Config) *Projectile {
	// Horizontal movement has no inertia
	if keys.Left {
		p.X -= config.PlayerSpeed
	}
	if keys.Right {
		p.X += config.PlayerSpeed
	}
	p.X = clamp(p.X, 0, config.ArenaWidth-p.Width)

	if keys.Jump && p.Grounded {
		p.VelocityY = config.JumpImpulse
		p.Grounded = false
	}

	p.VelocityY += config.Gravity
	p.Y += p.VelocityY

	ground := config.Ground()
	if p.Bottom() >= ground {
		p.Y = ground - p.Height
		p.VelocityY = 0
		p.Grounded = true
	}

	var fired *Projectile
	if keys.Fire && p.weapon.CanShoot(p.ShootCooldown, liveProjectiles(p.Projectiles)) {
		fired = NewProjectile(p.CenterX(), p.Y, p.weapon)
		p.Projectiles = append(p.Projectiles, fired)
		p.ShootCooldown = p.weapon.Cooldown
	}
	if p.ShootCooldown > 0 {
		p.ShootCooldown--
	}

	for _, shot := range p.Projectiles {
		shot.Update(config.ArenaHeight)
	}
	p.Projectiles = pruneProjectiles(p.Projectiles)

	return fired
}

// TakeHit registers one hit and reports whether it cost a life
func (p *Player) TakeHit() bool {
	p.HitsTaken++
	if p.HitsTaken >= p.MaxHits {
		p.Lives--
		p.HitsTaken = 0
		return true
	}
	return false
}

// Heal removes up to amount hits from the current life
func (p *Player) Heal(amount int) {
	if amount <= 0 {
		return
	}
	p.HitsTaken = max(0, p.HitsTaken-amount)
}

// AddLife grants extra lives
func (p *Player) AddLife(amount int) {
	if amount > 0 {
		p.Lives += amount
	}
}

// AddScore adds points; non-positive amounts are ignored so the score never drops
func (p *Player) AddScore(amount int) {
	if amount > 0 {
		p.Score += amount
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
