package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// ErrQuit is returned by Update once the quit key is pressed or the window closes
var ErrQuit = errors.New("game: quit requested")

// Game drives the simulation one fixed tick at a time
type Game struct {
	config   Config
	world    *World
	resolver *CombatResolver

	phase      Phase
	phaseTicks int // ticks spent in the current phase

	// Events raised during the last Update
	events []Event
	sinks  []EventSink

	logger *slog.Logger
	rng    *rand.Rand
}

// Option configures a Game
type Option func(*Game)

// WithEventSink adds a receiver for tick events. It may be given more than once.
func WithEventSink(sink EventSink) Option {
	return func(g *Game) {
		if sink != nil {
			g.sinks = append(g.sinks, sink)
		}
	}
}

// WithLogger sets the logger used for phase changes
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithRand sets the random source for spawn positions and pickups
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// NewGame creates a game waiting on the start screen
func NewGame(config Config, opts ...Option) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{
		config: config,
		phase:  PhaseStart,
		events: make([]Event, 0, 16),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}

	world, err := NewWorld(config, g.rng)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g.world = world
	g.resolver = NewCombatResolver(world, g.emit)

	g.logger.Info("game created",
		"session", world.SessionID,
		"levels", world.FinalLevel(),
		"arena_width", config.ArenaWidth,
		"arena_height", config.ArenaHeight,
	)
	return g, nil
}

// Update advances the game by one tick
func (g *Game) Update(keys KeyState) error {
	g.events = g.events[:0]

	if keys.Quit {
		g.logger.Info("quit requested", "session", g.world.SessionID, "phase", g.phase)
		return ErrQuit
	}

	switch g.phase {
	case PhaseStart:
		g.updateStartState(keys)
	case PhasePlaying:
		g.updatePlayingState(keys)
	case PhaseLevelComplete:
		return g.updateLevelCompleteState()
	case PhaseGameOver, PhaseWin:
		return g.updateTerminalState(keys)
	}
	return nil
}

// updatePlayingState runs one simulation tick. Combat resolves after
// everything has moved, and phase changes come last.
func (g *Game) updatePlayingState(keys KeyState) {
	w := g.world
	w.Tick++
	g.phaseTicks++

	if shot := w.Player.Update(keys, g.config); shot != nil {
		g.emit(Event{Kind: EventShotFired, X: shot.CenterX(), Y: shot.Y})
	}
	for _, enemy := range w.Enemies {
		if shot := enemy.Update(g.config.ArenaHeight); shot != nil {
			g.emit(Event{Kind: EventEnemyShot, X: shot.CenterX(), Y: shot.Y})
		}
	}
	w.UpdateCollectibles()

	switch g.resolver.Resolve() {
	case OutcomeWin:
		g.transition(PhaseWin)
		return
	case OutcomeGameOver:
		g.emit(Event{Kind: EventGameOver, Value: w.Player.Score})
		g.transition(PhaseGameOver)
		return
	}

	if w.LevelCleared() {
		g.emit(Event{Kind: EventLevelComplete, Value: w.Level})
		g.transition(PhaseLevelComplete)
	}
}

// emit buffers an event for this tick and forwards it to the sinks
func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
	for _, sink := range g.sinks {
		sink.HandleEvent(ev)
	}
	g.logger.Debug("event", "kind", ev.Kind, "value", ev.Value, "tick", g.world.Tick)
}

// Events returns the events raised by the last Update.
// The slice is reused by the next Update.
func (g *Game) Events() []Event {
	return g.events
}

// Phase returns the current game phase
func (g *Game) Phase() Phase {
	return g.phase
}

// World returns the authoritative session state
func (g *Game) World() *World {
	return g.world
}

// Config returns the configuration the game runs with
func (g *Game) Config() Config {
	return g.config
}
