package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacebattle/game"
)

func soakOptions(ticks, sessions int) runOptions {
	return runOptions{
		Ticks:    ticks,
		Sessions: sessions,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestRunFinishesSessions(t *testing.T) {
	config := game.DefaultConfig()
	config.Seed = 3

	s, err := run(config, soakOptions(20000, 2))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, s.Sessions, 1)
	assert.LessOrEqual(t, s.Sessions, 2)
	assert.Equal(t, s.Sessions, s.Wins+s.Losses)
	assert.Positive(t, s.Events["shot_fired"])
	started := s.Events["game_started"]
	assert.GreaterOrEqual(t, started, s.Sessions)
	assert.LessOrEqual(t, started, s.Sessions+1)
}

func TestRunIsDeterministic(t *testing.T) {
	config := game.DefaultConfig()
	config.Seed = 11

	first, err := run(config, soakOptions(3000, 0))
	require.NoError(t, err)
	second, err := run(config, soakOptions(3000, 0))
	require.NoError(t, err)

	assert.Equal(t, 3000, first.Ticks)
	assert.Equal(t, first, second)
}
