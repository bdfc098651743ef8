package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samdwyer/beaconcave/internal/gamedata"
	"github.com/samdwyer/beaconcave/internal/rng"
	"github.com/samdwyer/beaconcave/internal/world"
)

// Environment variables that override preset values.
const (
	EnvSeed        = "BEACON_SEED"
	EnvDebug       = "BEACON_DEBUG"
	EnvWidth       = "BEACON_WIDTH"
	EnvHeight      = "BEACON_HEIGHT"
	EnvIterations  = "BEACON_ITERATIONS"
	EnvSpawnerOdds = "BEACON_SPAWNER_ODDS"
	EnvEnemyOdds   = "BEACON_ENEMY_ODDS"
	EnvMaxAttempts = "BEACON_MAX_ATTEMPTS"
)

// DefaultMaxAttempts bounds how many levels New builds before giving up.
const DefaultMaxAttempts = 10

// Config holds game configuration options.
type Config struct {
	Preset string

	// Seed keys the first level attempt. Rerolls always use fresh seeds.
	Seed rng.Seed
	// Debug pins the first attempt to rng.DebugSeed unless a seed is given.
	Debug bool

	Width      int
	Height     int
	Iterations int

	SpawnerOdds int // One in N ticks places a spawner
	EnemyOdds   int // One in N ticks spawns an enemy
	MaxAttempts int
}

// DefaultConfig returns the standard 50×50 configuration with a fresh seed.
func DefaultConfig() Config {
	return Config{
		Preset:      gamedata.DefaultPreset,
		Seed:        rng.NewSeed(),
		Width:       world.DefaultWidth,
		Height:      world.DefaultHeight,
		Iterations:  world.DefaultIterations,
		SpawnerOdds: 50,
		EnemyOdds:   10,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// LoadConfig builds a Config from the named embedded preset and applies
// environment overrides on top. An empty preset selects the default one.
func LoadConfig(preset string) (Config, error) {
	if preset == "" {
		preset = gamedata.DefaultPreset
	}
	p, err := gamedata.FindPreset(preset)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Preset:      p.Name,
		Width:       p.Width,
		Height:      p.Height,
		Iterations:  p.Iterations,
		SpawnerOdds: p.SpawnerOdds,
		EnemyOdds:   p.EnemyOdds,
		MaxAttempts: DefaultMaxAttempts,
	}

	if cfg.Debug, err = envBool(EnvDebug, false); err != nil {
		return Config{}, err
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &cfg.Width},
		{EnvHeight, &cfg.Height},
		{EnvIterations, &cfg.Iterations},
		{EnvSpawnerOdds, &cfg.SpawnerOdds},
		{EnvEnemyOdds, &cfg.EnemyOdds},
		{EnvMaxAttempts, &cfg.MaxAttempts},
	}
	for _, v := range ints {
		if *v.dst, err = envInt(v.key, *v.dst); err != nil {
			return Config{}, err
		}
	}

	if raw, ok := os.LookupEnv(EnvSeed); ok && strings.TrimSpace(raw) != "" {
		if cfg.Seed, err = rng.ParseSeed(raw); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
	} else {
		cfg.Seed = rng.CreateSeed(cfg.Debug)
	}

	return cfg, cfg.Validate()
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	var errs []error
	if c.Width < 3 || c.Height < 3 {
		errs = append(errs, fmt.Errorf("level must be at least 3x3, got %dx%d", c.Width, c.Height))
	}
	if c.Iterations < 0 {
		errs = append(errs, fmt.Errorf("iterations must not be negative, got %d", c.Iterations))
	}
	if c.SpawnerOdds <= 0 {
		errs = append(errs, fmt.Errorf("spawner odds must be positive, got %d", c.SpawnerOdds))
	}
	if c.EnemyOdds <= 0 {
		errs = append(errs, fmt.Errorf("enemy odds must be positive, got %d", c.EnemyOdds))
	}
	if c.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("max attempts must be positive, got %d", c.MaxAttempts))
	}
	return errors.Join(errs...)
}

// LevelOptions returns the generation options for this configuration.
func (c Config) LevelOptions() world.Options {
	return world.Options{
		Width:      c.Width,
		Height:     c.Height,
		Iterations: c.Iterations,
	}
}

func envInt(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func envBool(key string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
