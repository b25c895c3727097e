package game

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithRand(testRNG()), WithLogger(discardLogger())}, opts...)
	g, err := NewGame(DefaultConfig(), opts...)
	require.NoError(t, err)
	return g
}

// newPlayingGame returns a game that has left the start screen
func newPlayingGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g := newTestGame(t, opts...)
	require.NoError(t, g.Update(KeyState{AnyKey: true}))
	require.Equal(t, PhasePlaying, g.Phase())
	return g
}

// aimAtEnemy parks the enemy in view and puts a player shot where it will hit it next tick
func aimAtEnemy(g *Game, e *Enemy) *Projectile {
	e.X, e.Y = 100, 100
	shot := NewProjectile(e.CenterX(), e.Y+e.Height/2, GetWeaponConfig(WeaponTypeCannon))
	g.world.Player.Projectiles = append(g.world.Player.Projectiles, shot)
	return shot
}

// aimAtPlayer gives the enemy a shot that will hit the player next tick
func aimAtPlayer(g *Game, e *Enemy) *Projectile {
	p := g.world.Player
	shot := NewProjectile(p.CenterX(), p.Y+10, GetWeaponConfig(WeaponTypeEnemyCannon))
	e.Projectiles = append(e.Projectiles, shot)
	return shot
}

func eventKinds(events []Event) []EventKind {
	kinds := make([]EventKind, 0, len(events))
	for _, ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
