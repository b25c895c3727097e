package game

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds game configuration constants.
// All durations are in ticks; all distances are in pixels.
type Config struct {
	// ArenaWidth is the width of the playfield in pixels
	ArenaWidth float64 `toml:"arena_width"`

	// ArenaHeight is the height of the playfield in pixels
	ArenaHeight float64 `toml:"arena_height"`

	// GroundOffset is the distance from the bottom edge to the ground line
	GroundOffset float64 `toml:"ground_offset"`

	// TicksPerSecond is the fixed simulation rate
	TicksPerSecond int `toml:"ticks_per_second"`

	// PlayerSpeed is the horizontal distance moved per tick while a direction key is held
	PlayerSpeed float64 `toml:"player_speed"`

	// JumpImpulse is the vertical velocity applied when jumping (negative is up)
	JumpImpulse float64 `toml:"jump_impulse"`

	// Gravity is added to the player's vertical velocity every tick
	Gravity float64 `toml:"gravity"`

	// PlayerLives is the number of spare lives a new player starts with
	PlayerLives int `toml:"player_lives"`

	// PlayerMaxHits is the number of hits that consume one life
	PlayerMaxHits int `toml:"player_max_hits"`

	// LivesFloor ends the game once lives drop below it
	LivesFloor int `toml:"lives_floor"`

	// EscapeLimit ends the game once this many enemies have escaped
	EscapeLimit int `toml:"escape_limit"`

	// KillScore is awarded for every regular enemy destroyed
	KillScore int `toml:"kill_score"`

	// EnemyHealth is the max health of a regular enemy
	EnemyHealth float64 `toml:"enemy_health"`

	// BossHealth is the max health of the boss
	BossHealth float64 `toml:"boss_health"`

	// CollectibleSpawnTicks is the interval between collectible drops
	CollectibleSpawnTicks int `toml:"collectible_spawn_ticks"`

	// LevelCompleteTicks is how long the level complete banner is held
	LevelCompleteTicks int `toml:"level_complete_ticks"`

	// Seed seeds spawn randomness; zero picks a seed from the clock
	Seed int64 `toml:"seed"`

	// Levels replaces the built-in level table when non-empty
	Levels LevelTable `toml:"levels"`

	// ScreenWidth is the window width in pixels
	ScreenWidth int `toml:"screen_width"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `toml:"screen_height"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ArenaWidth:            960,
		ArenaHeight:           540,
		GroundOffset:          60,
		TicksPerSecond:        60,
		PlayerSpeed:           5,
		JumpImpulse:           -12,
		Gravity:               0.6,
		PlayerLives:           3,
		PlayerMaxHits:         3,
		LivesFloor:            0, // lives < 0 ends the game
		EscapeLimit:           6,
		KillScore:             1,
		EnemyHealth:           50,
		BossHealth:            250,
		CollectibleSpawnTicks: 300, // 5 seconds at 60 TPS
		LevelCompleteTicks:    120, // 2 seconds at 60 TPS
		Levels:                DefaultLevelTable(),
		ScreenWidth:           960,
		ScreenHeight:          540,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	// Decode levels separately so a partial file does not append to the defaults
	config.Levels = nil
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if len(config.Levels) == 0 {
		config.Levels = DefaultLevelTable()
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return config, nil
}

// Validate reports configuration values the simulation cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.ArenaWidth <= 0 || c.ArenaHeight <= 0 {
		errs = append(errs, fmt.Errorf("arena must be positive, got %gx%g", c.ArenaWidth, c.ArenaHeight))
	}
	if c.GroundOffset < 0 || c.GroundOffset >= c.ArenaHeight {
		errs = append(errs, fmt.Errorf("ground_offset %g outside arena", c.GroundOffset))
	}
	if c.TicksPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("ticks_per_second must be positive, got %d", c.TicksPerSecond))
	}
	if c.PlayerMaxHits <= 0 {
		errs = append(errs, fmt.Errorf("player_max_hits must be positive, got %d", c.PlayerMaxHits))
	}
	if c.EscapeLimit <= 0 {
		errs = append(errs, fmt.Errorf("escape_limit must be positive, got %d", c.EscapeLimit))
	}
	if c.EnemyHealth <= 0 || c.BossHealth <= 0 {
		errs = append(errs, errors.New("enemy and boss health must be positive"))
	}
	if c.CollectibleSpawnTicks <= 0 {
		errs = append(errs, fmt.Errorf("collectible_spawn_ticks must be positive, got %d", c.CollectibleSpawnTicks))
	}
	if c.LevelCompleteTicks < 0 {
		errs = append(errs, fmt.Errorf("level_complete_ticks must not be negative, got %d", c.LevelCompleteTicks))
	}
	if err := c.Levels.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Ground returns the y coordinate of the ground line
func (c Config) Ground() float64 {
	return c.ArenaHeight - c.GroundOffset
}
