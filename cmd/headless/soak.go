package main

import (
	"fmt"
	"log/slog"
	"math/rand"

	"spacebattle/game"
)

// pilot holds random key combinations for a random number of ticks.
// It presses restart on the end screens so sessions chain together.
type pilot struct {
	rng  *rand.Rand
	g    *game.Game
	keys game.KeyState
	hold int
}

// Poll returns the pilot's keys for the coming tick
func (p *pilot) Poll() game.KeyState {
	switch {
	case p.g.Phase() == game.PhaseStart:
		return game.KeyState{AnyKey: true}
	case p.g.Phase().Terminal():
		return game.KeyState{Restart: true, AnyKey: true}
	}

	if p.hold <= 0 {
		p.hold = 5 + p.rng.Intn(40)
		p.keys = game.KeyState{
			Left:  p.rng.Intn(3) == 0,
			Right: p.rng.Intn(3) == 0,
			Jump:  p.rng.Intn(8) == 0,
			Fire:  p.rng.Intn(4) != 0,
		}
	}
	p.hold--
	return p.keys
}

var _ game.InputSource = (*pilot)(nil)

type runOptions struct {
	Ticks    int
	Sessions int
	Logger   *slog.Logger
}

// summary aggregates a soak run
type summary struct {
	Ticks     int
	Sessions  int
	Wins      int
	Losses    int
	BestScore int
	BestLevel int
	Events    map[string]int
}

// run drives a game with the random pilot until the tick or session budget is spent
func run(config game.Config, opts runOptions) (summary, error) {
	s := summary{Events: make(map[string]int)}
	counter := game.EventSinkFunc(func(ev game.Event) {
		s.Events[ev.Kind.String()]++
	})

	rng := rand.New(rand.NewSource(config.Seed))
	g, err := game.NewGame(config,
		game.WithRand(rng),
		game.WithLogger(opts.Logger),
		game.WithEventSink(counter),
	)
	if err != nil {
		return s, fmt.Errorf("headless run: %w", err)
	}
	var in game.InputSource = &pilot{rng: rand.New(rand.NewSource(config.Seed + 1)), g: g}

	for s.Ticks = 0; s.Ticks < opts.Ticks; s.Ticks++ {
		before := g.Phase()
		if err := g.Update(in.Poll()); err != nil {
			return s, fmt.Errorf("headless run: tick %d: %w", s.Ticks, err)
		}

		w := g.World()
		s.BestScore = max(s.BestScore, w.Player.Score)
		s.BestLevel = max(s.BestLevel, w.Level)

		if !before.Terminal() && g.Phase().Terminal() {
			s.Sessions++
			if g.Phase() == game.PhaseWin {
				s.Wins++
			} else {
				s.Losses++
			}
			opts.Logger.Info("session finished",
				"session", w.SessionID,
				"outcome", g.Phase(),
				"score", w.Player.Score,
				"level", w.Level,
				"tick", w.Tick,
			)
			if opts.Sessions > 0 && s.Sessions >= opts.Sessions {
				s.Ticks++
				break
			}
		}
	}
	return s, nil
}
