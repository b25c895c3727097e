package audio

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"spacebattle/game"
)

// eventTones maps game events to the sound they trigger.
// Events missing from the map are silent.
var eventTones = map[game.EventKind]Tone{
	game.EventShotFired:         {Freq: 950, EndFreq: 700, Duration: 0.07, Volume: 0.25, Decay: 20},
	game.EventEnemyShot:         {Freq: 320, EndFreq: 260, Duration: 0.06, Volume: 0.15, Decay: 25},
	game.EventEnemyHit:          {Freq: 600, Duration: 0.05, Volume: 0.2, Decay: 30},
	game.EventEnemyDefeated:     {Freq: 240, EndFreq: 80, Duration: 0.2, Volume: 0.35, Decay: 10},
	game.EventBossDefeated:      {Freq: 180, EndFreq: 40, Duration: 0.8, Volume: 0.45, Decay: 3},
	game.EventPlayerHit:         {Freq: 200, EndFreq: 140, Duration: 0.12, Volume: 0.35, Decay: 12},
	game.EventLifeLost:          {Freq: 440, EndFreq: 110, Duration: 0.4, Volume: 0.4, Decay: 4},
	game.EventCollectiblePicked: {Freq: 660, EndFreq: 1320, Duration: 0.15, Volume: 0.3, Decay: 8},
	game.EventEnemyEscaped:      {Freq: 150, Duration: 0.2, Volume: 0.25, Decay: 6},
	game.EventLevelComplete:     {Freq: 523, EndFreq: 784, Duration: 0.5, Volume: 0.35, Decay: 2},
	game.EventGameOver:          {Freq: 300, EndFreq: 60, Duration: 1.0, Volume: 0.4, Decay: 2},
}

// Player plays a short synthesized tone for each game event.
// It implements game.EventSink.
type Player struct {
	ctx     *audio.Context
	players map[game.EventKind]*audio.Player
	muted   bool
	logger  *slog.Logger
}

// NewPlayer synthesizes every event tone up front
func NewPlayer(logger *slog.Logger, muted bool) *Player {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	p := &Player{
		ctx:     ctx,
		players: make(map[game.EventKind]*audio.Player, len(eventTones)),
		muted:   muted,
		logger:  logger,
	}
	for kind, tone := range eventTones {
		p.players[kind] = ctx.NewPlayerFromBytes(tone.PCM())
	}
	return p
}

// HandleEvent plays the tone bound to the event kind
func (p *Player) HandleEvent(ev game.Event) {
	if p.muted {
		return
	}
	player, ok := p.players[ev.Kind]
	if !ok {
		return
	}
	if err := player.Rewind(); err != nil {
		p.logger.Warn("rewind sound", "event", ev.Kind, "error", err)
		return
	}
	player.Play()
}

var _ game.EventSink = (*Player)(nil)
