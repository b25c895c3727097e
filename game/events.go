package game

//go:generate go tool mockgen -destination=./mocks/event_sink_mock.go -package=mocks . EventSink

// EventKind identifies something that happened during a tick
type EventKind int

const (
	EventGameStarted EventKind = iota
	EventShotFired
	EventEnemyShot
	EventEnemyHit
	EventEnemyDefeated
	EventBossDefeated
	EventPlayerHit
	EventLifeLost
	EventCollectiblePicked
	EventEnemyEscaped
	EventLevelComplete
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventGameStarted:
		return "game_started"
	case EventShotFired:
		return "shot_fired"
	case EventEnemyShot:
		return "enemy_shot"
	case EventEnemyHit:
		return "enemy_hit"
	case EventEnemyDefeated:
		return "enemy_defeated"
	case EventBossDefeated:
		return "boss_defeated"
	case EventPlayerHit:
		return "player_hit"
	case EventLifeLost:
		return "life_lost"
	case EventCollectiblePicked:
		return "collectible_picked"
	case EventEnemyEscaped:
		return "enemy_escaped"
	case EventLevelComplete:
		return "level_complete"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a discrete notification for audio and effects.
// X and Y locate the event in arena coordinates where that makes sense.
type Event struct {
	Kind EventKind
	X, Y float64

	// Kind specific payload such as the level number or points gained
	Value int
}

// EventSink receives events synchronously while the tick runs
type EventSink interface {
	HandleEvent(ev Event)
}

// EventSinkFunc adapts a function to EventSink
type EventSinkFunc func(ev Event)

// HandleEvent calls f(ev)
func (f EventSinkFunc) HandleEvent(ev Event) {
	f(ev)
}
