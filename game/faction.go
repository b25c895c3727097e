package game

// Faction represents which side fired a projectile
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Direction returns the vertical travel direction of the faction's shots
// (-1 is up the screen)
func (f Faction) Direction() float64 {
	if f == FactionPlayer {
		return -1
	}
	return 1
}
