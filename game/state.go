package game

// Phase represents the current game phase
type Phase int

const (
	PhaseStart         Phase = iota // Title screen, waiting for a key
	PhasePlaying                    // Active gameplay
	PhaseLevelComplete              // Banner between levels
	PhaseGameOver                   // Lost, waiting for restart
	PhaseWin                        // Boss defeated, waiting for restart
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "game_over"
	case PhaseWin:
		return "win"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase waits for a restart
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseWin
}

// updateStartState leaves the title screen on any key
func (g *Game) updateStartState(keys KeyState) {
	if !keys.AnyKey {
		return
	}
	g.transition(PhasePlaying)
	g.emit(Event{Kind: EventGameStarted, Value: g.world.Level})
}

// updateLevelCompleteState holds the banner, then loads the next level
func (g *Game) updateLevelCompleteState() error {
	g.phaseTicks++
	if g.phaseTicks < g.config.LevelCompleteTicks {
		return nil
	}

	next := g.world.Level + 1
	if err := g.world.LoadLevel(next); err != nil {
		return err
	}
	g.logger.Info("level loaded",
		"session", g.world.SessionID,
		"level", next,
		"enemies", len(g.world.Enemies),
		"kill_target", g.world.KillTarget,
	)
	g.transition(PhasePlaying)
	return nil
}

// updateTerminalState waits on the game over and win screens for a restart.
// Restart resets the world and returns to the title screen.
func (g *Game) updateTerminalState(keys KeyState) error {
	g.phaseTicks++
	if !keys.Restart {
		return nil
	}
	if err := g.world.Reset(); err != nil {
		return err
	}
	g.transition(PhaseStart)
	return nil
}

// transition switches phase and restarts the phase clock
func (g *Game) transition(to Phase) {
	g.logger.Info("phase change",
		"session", g.world.SessionID,
		"from", g.phase,
		"to", to,
		"level", g.world.Level,
		"score", g.world.Player.Score,
		"lives", g.world.Player.Lives,
		"escapes", g.world.EnemyEscapes,
	)
	g.phase = to
	g.phaseTicks = 0
}
