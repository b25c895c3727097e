package game

// Outcome is the terminal signal a combat pass can raise
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeGameOver
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// CombatResolver applies the effects of every overlap in the world once per tick.
// The steps run in a fixed order so outcomes are deterministic:
//
//  1. player shots cancel enemy shots
//  2. player shots damage enemies
//  3. enemy shots hit the player
//  4. the player picks up collectibles
//  5. enemies leaving the arena count as escapes
//
// A terminal outcome stops the pass; later steps do not run that tick.
type CombatResolver struct {
	world *World
	emit  func(Event)
	hits  []*Enemy // enemies under the current shot
}

// NewCombatResolver creates a resolver for world. emit may be nil.
func NewCombatResolver(world *World, emit func(Event)) *CombatResolver {
	if emit == nil {
		emit = func(Event) {}
	}
	return &CombatResolver{
		world: world,
		emit:  emit,
	}
}

// Resolve runs one combat pass and prunes destroyed projectiles and pickups
func (c *CombatResolver) Resolve() Outcome {
	defer c.world.Prune()

	c.CancelProjectiles()
	if c.HitEnemies() == OutcomeWin {
		return OutcomeWin
	}
	if c.HitPlayer() == OutcomeGameOver {
		return OutcomeGameOver
	}
	c.PickUpCollectibles()
	return c.CheckEscapes()
}

// CancelProjectiles destroys every overlapping pair of player and enemy shots
func (c *CombatResolver) CancelProjectiles() {
	for _, shot := range c.world.Player.Projectiles {
		for _, enemy := range c.world.Enemies {
			for _, enemyShot := range enemy.Projectiles {
				if shot.IsColliding(&enemyShot.Entity) {
					shot.Destroy()
					enemyShot.Destroy()
				}
			}
		}
	}
}

// HitEnemies applies player shot damage. A shot damages every enemy it
// overlaps when it lands, then is destroyed.
func (c *CombatResolver) HitEnemies() Outcome {
	w := c.world
	for _, shot := range w.Player.Projectiles {
		c.hits = c.hits[:0]
		for _, enemy := range w.Enemies {
			if shot.IsColliding(&enemy.Entity) {
				c.hits = append(c.hits, enemy)
			}
		}
		if len(c.hits) == 0 {
			continue
		}
		shot.Destroy()

		for _, enemy := range c.hits {
			destroyed := enemy.ApplyDamage(shot.Damage)
			c.emit(Event{Kind: EventEnemyHit, X: enemy.CenterX(), Y: enemy.Bottom()})
			if !destroyed {
				continue
			}

			if enemy.IsBoss() {
				c.emit(Event{Kind: EventBossDefeated, X: enemy.CenterX(), Y: enemy.Y + enemy.Height/2})
				return OutcomeWin
			}

			w.Player.AddScore(w.Config.KillScore)
			w.EnemiesDefeated++
			c.emit(Event{Kind: EventEnemyDefeated, X: enemy.CenterX(), Y: enemy.Y + enemy.Height/2, Value: w.Config.KillScore})
			w.RespawnEnemy(enemy)
		}
	}
	return OutcomeNone
}

// HitPlayer applies enemy shots that reach the player
func (c *CombatResolver) HitPlayer() Outcome {
	w := c.world
	player := w.Player
	for _, enemy := range w.Enemies {
		for _, shot := range enemy.Projectiles {
			if !shot.IsColliding(&player.Entity) {
				continue
			}
			shot.Destroy()
			lifeLost := player.TakeHit()
			c.emit(Event{Kind: EventPlayerHit, X: shot.CenterX(), Y: shot.Y, Value: player.HitsTaken})
			if !lifeLost {
				continue
			}
			c.emit(Event{Kind: EventLifeLost, X: player.CenterX(), Y: player.Y, Value: player.Lives})
			if player.Lives < w.Config.LivesFloor {
				return OutcomeGameOver
			}
		}
	}
	return OutcomeNone
}

// PickUpCollectibles applies and removes every pickup touching the player
func (c *CombatResolver) PickUpCollectibles() {
	player := c.world.Player
	for _, item := range c.world.Collectibles {
		if !item.IsColliding(&player.Entity) {
			continue
		}
		item.Active = false
		item.Apply(player)
		c.emit(Event{Kind: EventCollectiblePicked, X: item.CenterX(), Y: item.Y, Value: int(item.Kind)})
	}
}

// CheckEscapes respawns enemies below the arena and counts them against the player
func (c *CombatResolver) CheckEscapes() Outcome {
	w := c.world
	for _, enemy := range w.Enemies {
		if !enemy.Escaped(w.Config.ArenaHeight) {
			continue
		}
		w.EnemyEscapes++
		c.emit(Event{Kind: EventEnemyEscaped, X: enemy.CenterX(), Y: w.Config.ArenaHeight, Value: w.EnemyEscapes})
		w.RespawnEnemy(enemy)
		if w.EnemyEscapes >= w.Config.EscapeLimit {
			return OutcomeGameOver
		}
	}
	return OutcomeNone
}
