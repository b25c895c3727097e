package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	config := DefaultConfig()
	config.EscapeLimit = 0

	_, err := NewGame(config, WithLogger(discardLogger()))
	assert.Error(t, err)
}

func TestStartScreenWaitsForKey(t *testing.T) {
	g := newTestGame(t)
	require.Equal(t, PhaseStart, g.Phase())

	for i := 0; i < 10; i++ {
		require.NoError(t, g.Update(KeyState{Fire: true, Left: true}))
	}
	assert.Equal(t, PhaseStart, g.Phase(), "held keys are not a key press")
	assert.Zero(t, g.World().Tick)

	require.NoError(t, g.Update(KeyState{AnyKey: true}))
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, []EventKind{EventGameStarted}, eventKinds(g.Events()))
}

func TestQuitFromAnyPhase(t *testing.T) {
	g := newTestGame(t)
	assert.ErrorIs(t, g.Update(KeyState{Quit: true, AnyKey: true}), ErrQuit)
	assert.Equal(t, PhaseStart, g.Phase(), "quit does not start the game")

	g = newPlayingGame(t)
	assert.ErrorIs(t, g.Update(KeyState{Quit: true}), ErrQuit)

	g.phase = PhaseGameOver
	assert.ErrorIs(t, g.Update(KeyState{Quit: true, Restart: true}), ErrQuit)
}

func TestLevelOneToLevelTwo(t *testing.T) {
	g := newPlayingGame(t)
	w := g.World()
	levelCompleteEvents := 0

	for kill := 1; kill <= 5; kill++ {
		aimAtEnemy(g, w.Enemies[0])
		require.NoError(t, g.Update(KeyState{}))
		require.Equal(t, kill, w.EnemiesDefeated)
		levelCompleteEvents += countKind(g.Events(), EventLevelComplete)
		if kill < 5 {
			require.Equal(t, PhasePlaying, g.Phase(), "kill %d", kill)
		}
	}

	require.Equal(t, PhaseLevelComplete, g.Phase())
	assert.Equal(t, 5, w.Player.Score)
	assert.Equal(t, 1, w.Level, "the banner shows the finished level")

	for i := 1; i < g.Config().LevelCompleteTicks; i++ {
		require.NoError(t, g.Update(KeyState{}))
		levelCompleteEvents += countKind(g.Events(), EventLevelComplete)
		require.Equal(t, PhaseLevelComplete, g.Phase())
	}
	require.NoError(t, g.Update(KeyState{}))

	assert.Equal(t, 1, levelCompleteEvents)
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, 2, w.Level)
	assert.Len(t, w.Enemies, 5)
	assert.Zero(t, w.EnemiesDefeated)
	assert.Equal(t, 7, w.KillTarget)
	assert.Equal(t, 5, w.Player.Score, "score survives the level change")
}

func TestLevelCompleteFreezesWorld(t *testing.T) {
	g := newPlayingGame(t)
	w := g.World()
	for i := 0; i < 5; i++ {
		aimAtEnemy(g, w.Enemies[0])
		require.NoError(t, g.Update(KeyState{}))
	}
	require.Equal(t, PhaseLevelComplete, g.Phase())

	tick := w.Tick
	x := w.Player.X
	require.NoError(t, g.Update(KeyState{Left: true, Fire: true}))
	assert.Equal(t, tick, w.Tick)
	assert.Equal(t, x, w.Player.X)
	assert.Empty(t, g.Events())
}

func TestPlayerLosesLifeAfterMaxHits(t *testing.T) {
	g := newPlayingGame(t)
	w := g.World()

	for i := 0; i < 3; i++ {
		aimAtPlayer(g, w.Enemies[0])
		require.NoError(t, g.Update(KeyState{}))
	}

	assert.Equal(t, 2, w.Player.Lives)
	assert.Zero(t, w.Player.HitsTaken)
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Contains(t, eventKinds(g.Events()), EventLifeLost)
}

func TestScoreBoostCollectible(t *testing.T) {
	g := newPlayingGame(t)
	w := g.World()
	p := w.Player
	w.Collectibles = append(w.Collectibles, NewCollectible(p.CenterX(), p.Y+40, CollectibleScoreBoost))
	before := p.Score

	require.NoError(t, g.Update(KeyState{}))

	assert.Equal(t, before+100, p.Score)
	assert.Empty(t, w.Collectibles)
	assert.Contains(t, eventKinds(g.Events()), EventCollectiblePicked)
}

func TestBossDefeatWinsAndRestarts(t *testing.T) {
	g := newPlayingGame(t)
	w := g.World()
	require.NoError(t, w.LoadLevel(3))
	boss := w.Boss()
	require.NotNil(t, boss)

	// Bring the boss down to one hit
	boss.Health = 100
	aimAtEnemy(g, boss)
	require.NoError(t, g.Update(KeyState{}))

	require.Equal(t, PhaseWin, g.Phase())
	assert.Zero(t, boss.Health)
	assert.Zero(t, w.EnemiesDefeated)
	assert.Contains(t, eventKinds(g.Events()), EventBossDefeated)
	assert.NotContains(t, eventKinds(g.Events()), EventLevelComplete)

	// The win screen holds until restart and runs no more simulation
	y := boss.Y
	for i := 0; i < 30; i++ {
		require.NoError(t, g.Update(KeyState{AnyKey: true, Fire: true}))
	}
	assert.Equal(t, PhaseWin, g.Phase())
	assert.Equal(t, y, boss.Y)
	assert.Zero(t, boss.Health)

	session := w.SessionID
	require.NoError(t, g.Update(KeyState{Restart: true, AnyKey: true}))
	assert.Equal(t, PhaseStart, g.Phase(), "restart shows the title screen")
	assert.Empty(t, g.Events())
	assert.Same(t, w, g.World(), "the world is reset in place")
	assert.Equal(t, 1, w.Level)
	assert.Len(t, w.Enemies, 3)
	assert.Zero(t, w.Player.Score)
	assert.NotEqual(t, session, w.SessionID)
}

func TestEscapeLimitEndsGameRegardlessOfLives(t *testing.T) {
	g := newPlayingGame(t)
	w := g.World()
	w.Player.Lives = 50
	w.EnemyEscapes = 5
	w.Enemies[0].Y = w.Config.ArenaHeight

	require.NoError(t, g.Update(KeyState{}))

	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.Equal(t, 6, w.EnemyEscapes)
	assert.Contains(t, eventKinds(g.Events()), EventGameOver)
}

func TestGameOverRestartResetsSession(t *testing.T) {
	g := newPlayingGame(t)
	w := g.World()
	w.Player.Lives = 0
	w.Player.HitsTaken = 2
	w.Player.Score = 30
	w.EnemyEscapes = 2
	aimAtPlayer(g, w.Enemies[0])

	require.NoError(t, g.Update(KeyState{}))
	require.Equal(t, PhaseGameOver, g.Phase())
	assert.Equal(t, -1, w.Player.Lives)

	require.NoError(t, g.Update(KeyState{AnyKey: true}))
	require.Equal(t, PhaseGameOver, g.Phase(), "only restart leaves game over")

	require.NoError(t, g.Update(KeyState{Restart: true}))
	assert.Equal(t, PhaseStart, g.Phase())
	assert.Equal(t, 3, w.Player.Lives)
	assert.Zero(t, w.Player.HitsTaken)
	assert.Zero(t, w.Player.Score)
	assert.Zero(t, w.EnemyEscapes)
	assert.Zero(t, w.EnemiesDefeated)
	assert.Equal(t, 1, w.Level)

	// The next session begins from the title screen like the first
	tick := w.Tick
	require.NoError(t, g.Update(KeyState{Fire: true}))
	assert.Equal(t, PhaseStart, g.Phase())
	assert.Equal(t, tick, w.Tick)
	require.NoError(t, g.Update(KeyState{AnyKey: true}))
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Equal(t, []EventKind{EventGameStarted}, eventKinds(g.Events()))
}

func TestFiringThroughGameEmitsShots(t *testing.T) {
	g := newPlayingGame(t)

	shots := 0
	for i := 0; i < 60; i++ {
		require.NoError(t, g.Update(KeyState{Fire: true}))
		shots += countKind(g.Events(), EventShotFired)
		require.LessOrEqual(t, len(g.World().Player.Projectiles), 5)
	}
	assert.Equal(t, 4, shots) // ticks 1, 16, 31 and 46
}

func TestSnapshotCopiesWorld(t *testing.T) {
	g := newPlayingGame(t)
	require.NoError(t, g.Update(KeyState{Fire: true}))

	s := g.Snapshot()
	w := g.World()
	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Equal(t, w.Level, s.Level)
	assert.Equal(t, 3, s.FinalLevel)
	assert.Equal(t, w.Player.Lives, s.Lives)
	assert.Equal(t, 6, s.EscapeLimit)
	assert.Equal(t, w.Player.Bounds(), s.Player)
	assert.Len(t, s.Enemies, len(w.Enemies))
	require.Len(t, s.Projectiles, 1)
	assert.Equal(t, FactionPlayer, s.Projectiles[0].Faction)
	assert.Equal(t, 1.0, s.HealthFraction())

	s.Enemies[0].Health = -5
	assert.Equal(t, w.Enemies[0].MaxHealth, w.Enemies[0].Health)
}
