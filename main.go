package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"spacebattle/audio"
	"spacebattle/game"
	"spacebattle/input"
	"spacebattle/profiling"
	"spacebattle/render"
	"spacebattle/render/fx"
)

func main() {
	configPath := flag.String("config", os.Getenv("SPACEBATTLE_CONFIG"), "TOML config file (defaults to $SPACEBATTLE_CONFIG)")
	seed := flag.Int64("seed", 0, "spawn seed, 0 picks one from the clock")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	profile := flag.Bool("profile", false, "capture a CPU profile and trace when the tick rate drops")
	mute := flag.Bool("mute", false, "start with sound off")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("invalid -log-level %q: %v", *logLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		config.Seed = *seed
	}

	effects := fx.NewEffects(rand.New(rand.NewSource(time.Now().UnixNano())), config.ArenaWidth, config.ArenaHeight)
	g, err := game.NewGame(config,
		game.WithLogger(logger),
		game.WithEventSink(effects),
		game.WithEventSink(audio.NewPlayer(logger, *mute)),
	)
	if err != nil {
		log.Fatal(err)
	}

	debug := &render.DebugState{}
	app := &App{
		game:     g,
		keyboard: input.NewKeyboard(),
		renderer: render.NewRenderer(config, effects, debug),
		effects:  effects,
		debug:    debug,
		width:    int(config.ArenaWidth),
		height:   int(config.ArenaHeight),
	}
	if *profile {
		if app.profiler, err = profiling.New(logger, profiling.DefaultDir); err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Space War")
	ebiten.SetWindowResizable(true)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
	logger.Info("bye", "score", g.World().Player.Score, "level", g.World().Level)
}
