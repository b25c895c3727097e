package game

// WeaponType defines different types of weapons
type WeaponType int

const (
	WeaponTypeCannon      WeaponType = iota // player's upward gun
	WeaponTypeEnemyCannon                   // enemy's downward gun
)

// WeaponConfig holds configuration for each weapon type
type WeaponConfig struct {
	Type            WeaponType
	Faction         Faction
	Damage          float64
	ProjectileSpeed float64 // pixels per tick
	Cooldown        int     // ticks between shots
	MaxLive         int     // live projectiles allowed per owner, 0 = unlimited
	Width, Height   float64 // projectile size
}

// GetWeaponConfig returns configuration for a weapon type
func GetWeaponConfig(weaponType WeaponType) WeaponConfig {
	switch weaponType {
	case WeaponTypeCannon:
		return WeaponConfig{
			Type:            WeaponTypeCannon,
			Faction:         FactionPlayer,
			Damage:          100,
			ProjectileSpeed: 10,
			Cooldown:        15,
			MaxLive:         5,
			Width:           5,
			Height:          10,
		}
	case WeaponTypeEnemyCannon:
		return WeaponConfig{
			Type:            WeaponTypeEnemyCannon,
			Faction:         FactionEnemy,
			Damage:          100,
			ProjectileSpeed: 10,
			Cooldown:        90,
			Width:           5,
			Height:          10,
		}
	default:
		return GetWeaponConfig(WeaponTypeCannon)
	}
}

// CanShoot checks if a weapon is ready to fire given the owner's
// remaining cooldown and live projectile count
func (wc WeaponConfig) CanShoot(cooldown, live int) bool {
	if cooldown > 0 {
		return false
	}
	return wc.MaxLive == 0 || live < wc.MaxLive
}
