// Package main is the entry point for beaconcave. It builds a cave level,
// optionally runs the session for a number of ticks and prints the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/samdwyer/beaconcave/internal/game"
	"github.com/samdwyer/beaconcave/internal/rng"
	"github.com/samdwyer/beaconcave/internal/telemetry"
	"github.com/samdwyer/beaconcave/internal/world"
)

// EnvLogLevel selects the log level (debug, info, warn, error).
const EnvLogLevel = "BEACON_LOG_LEVEL"

func main() {
	preset := flag.String("preset", "", "level preset from presets.json (default \"default\")")
	seed := flag.String("seed", "", "64 hex digit seed, overrides "+game.EnvSeed)
	debug := flag.Bool("debug", false, "use the fixed debug seed")
	ticks := flag.Int("ticks", 0, "number of session ticks to run after building the level")
	dump := flag.Bool("print", true, "print the ASCII level dump")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "beaconcave",
	})

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		logger.Debug(".env file not loaded", "err", err)
	}

	if raw := os.Getenv(EnvLogLevel); raw != "" {
		level, err := log.ParseLevel(raw)
		if err != nil {
			logger.Fatal("invalid log level", "var", EnvLogLevel, "err", err)
		}
		logger.SetLevel(level)
	}

	ctx := context.Background()

	telemetryOpts, err := telemetry.OptionsFromEnv()
	if err != nil {
		logger.Fatal("invalid telemetry configuration", "err", err)
	}
	shutdown, err := telemetry.Setup(ctx, telemetryOpts)
	if err != nil {
		logger.Warn("telemetry setup failed, running without observability", "err", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error("shutting down telemetry", "err", err)
			}
		}()
	}

	if err := run(ctx, logger, *preset, *seed, *debug, *ticks, *dump); err != nil {
		logger.Error("beaconcave failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, preset, seed string, debug bool, ticks int, dump bool) error {
	cfg, err := game.LoadConfig(preset)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	switch {
	case seed != "":
		if cfg.Seed, err = rng.ParseSeed(seed); err != nil {
			return fmt.Errorf("-seed: %w", err)
		}
	case debug:
		cfg.Debug = true
		cfg.Seed = rng.DebugSeed
	}

	g, err := game.New(ctx, cfg, logger)
	if err != nil {
		return err
	}

	spawned, placed := 0, 0
	for i := 0; i < ticks; i++ {
		report := g.Tick(ctx)
		if report.Spawner != nil {
			placed++
		}
		if report.Enemy != nil {
			spawned++
		}
	}

	if dump {
		fmt.Print(g.Dump())
	}

	level := g.Level()
	fmt.Printf("level    %s\n", level.ID)
	fmt.Printf("seed     %s\n", level.Seed)
	fmt.Printf("size     %dx%d (%d floor)\n", level.Width, level.Height, level.Grid.Count(world.Floor))
	fmt.Printf("attempts %d\n", g.Attempts())
	fmt.Printf("beacon   %s\n", g.Beacon().Pos)
	fmt.Printf("player   %s\n", g.Player().Pos)
	if ticks > 0 {
		fmt.Printf("ticks    %d (%d spawners, %d enemies, %d breaches)\n",
			g.Ticks(), placed, spawned, g.Breaches())
	}
	return nil
}
