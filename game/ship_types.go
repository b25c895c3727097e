package game

// ShipType defines different types of ships
type ShipType int

const (
	ShipTypePlayer ShipType = iota
	ShipTypeEnemy
	ShipTypeBoss
)

// ShipTypeConfig holds configuration for each ship type
type ShipTypeConfig struct {
	Type   ShipType
	Name   string
	Width  float64
	Height float64
	Weapon WeaponType
}

// GetShipTypeConfig returns configuration for a ship type
func GetShipTypeConfig(shipType ShipType) ShipTypeConfig {
	switch shipType {
	case ShipTypePlayer:
		return ShipTypeConfig{
			Type:   ShipTypePlayer,
			Name:   "Player",
			Width:  40,
			Height: 90,
			Weapon: WeaponTypeCannon,
		}
	case ShipTypeEnemy:
		return ShipTypeConfig{
			Type:   ShipTypeEnemy,
			Name:   "Enemy",
			Width:  40,
			Height: 80,
			Weapon: WeaponTypeEnemyCannon,
		}
	case ShipTypeBoss:
		return ShipTypeConfig{
			Type:   ShipTypeBoss,
			Name:   "Boss",
			Width:  120,
			Height: 180,
			Weapon: WeaponTypeEnemyCannon,
		}
	default:
		return GetShipTypeConfig(ShipTypePlayer)
	}
}
