package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"spacebattle/game"
)

func main() {
	configPath := flag.String("config", os.Getenv("SPACEBATTLE_CONFIG"), "TOML config file (defaults to $SPACEBATTLE_CONFIG)")
	seed := flag.Int64("seed", 1, "seed for spawns and the pilot")
	ticks := flag.Int("ticks", 60*60*10, "ticks to simulate")
	sessions := flag.Int("sessions", 0, "stop after this many finished sessions, 0 runs all ticks")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn or error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("invalid -log-level %q: %v", *logLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	config.Seed = *seed

	start := time.Now()
	result, err := run(config, runOptions{
		Ticks:    *ticks,
		Sessions: *sessions,
		Logger:   logger,
	})
	if err != nil {
		log.Fatal(err)
	}

	elapsed := time.Since(start)
	tps := 0.0
	if elapsed > 0 {
		tps = float64(result.Ticks) / elapsed.Seconds()
	}
	slog.New(slog.NewTextHandler(os.Stdout, nil)).Info("soak finished",
		"seed", *seed,
		"ticks", result.Ticks,
		"sessions", result.Sessions,
		"wins", result.Wins,
		"losses", result.Losses,
		"best_score", result.BestScore,
		"best_level", result.BestLevel,
		"events", result.Events,
		"elapsed", elapsed.Round(time.Millisecond),
		"ticks_per_second", int(tps),
	)
}
