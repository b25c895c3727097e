package game

import "math/rand"

// CollectibleKind tags the effect a pickup has on the player
type CollectibleKind int

const (
	CollectibleHealthBoost CollectibleKind = iota
	CollectibleExtraLife
	CollectibleScoreBoost
	collectibleKindCount
)

func (k CollectibleKind) String() string {
	switch k {
	case CollectibleHealthBoost:
		return "health_boost"
	case CollectibleExtraLife:
		return "extra_life"
	case CollectibleScoreBoost:
		return "score_boost"
	default:
		return "unknown"
	}
}

const (
	collectibleSize      = 20
	collectibleFallSpeed = 2   // pixels per tick
	collectibleSpawnY    = -30 // center, just above the arena
)

// Collectible is a falling pickup
type Collectible struct {
	Entity

	Kind CollectibleKind

	// Effect strength: hits healed, lives granted or points awarded
	Value int

	// Fall speed in pixels per tick
	Speed float64
}

// NewCollectible creates a pickup centered on (cx, cy)
func NewCollectible(cx, cy float64, kind CollectibleKind) *Collectible {
	return &Collectible{
		Entity: NewEntityCentered(cx, cy, collectibleSize, collectibleSize, EntityTypeCollectible),
		Kind:   kind,
		Value:  collectibleValue(kind),
		Speed:  collectibleFallSpeed,
	}
}

func collectibleValue(kind CollectibleKind) int {
	switch kind {
	case CollectibleScoreBoost:
		return 100
	default:
		return 1
	}
}

// randomCollectible drops a pickup of a random kind above the arena
func randomCollectible(rng *rand.Rand, arenaWidth float64) *Collectible {
	kind := CollectibleKind(rng.Intn(int(collectibleKindCount)))
	return NewCollectible(randomSpawnX(rng, arenaWidth), collectibleSpawnY, kind)
}

// Update moves the pickup down and deactivates it once it falls out of the arena
func (c *Collectible) Update(arenaHeight float64) {
	if !c.Active {
		return
	}
	c.Y += c.Speed
	if c.Y > arenaHeight {
		c.Active = false
	}
}

// Apply grants the pickup's effect to the player
func (c *Collectible) Apply(p *Player) {
	switch c.Kind {
	case CollectibleHealthBoost:
		p.Heal(c.Value)
	case CollectibleExtraLife:
		p.AddLife(c.Value)
	case CollectibleScoreBoost:
		p.AddScore(c.Value)
	}
}

func pruneCollectibles(collectibles []*Collectible) []*Collectible {
	kept := collectibles[:0]
	for _, c := range collectibles {
		if c.Active {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(collectibles); i++ {
		collectibles[i] = nil
	}
	return kept
}
