// Package game builds a playable session around a generated level: it places
// the beacon and the player, rerolls levels that cannot host them, and drives
// spawners and enemies tick by tick.
package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/beaconcave/internal/entity"
	"github.com/samdwyer/beaconcave/internal/gamedata"
	"github.com/samdwyer/beaconcave/internal/rng"
	"github.com/samdwyer/beaconcave/internal/telemetry"
	"github.com/samdwyer/beaconcave/internal/world"
)

// ErrLevelConstruction is returned when no attempt produced a level with a
// beacon and a player site.
var ErrLevelConstruction = errors.New("level construction failed")

// LevelBuilder generates a level from a seed.
type LevelBuilder func(ctx context.Context, seed rng.Seed, opts world.Options) *world.Level

// Option customises a Game at construction.
type Option func(*Game)

// WithLevelBuilder replaces world.NewLevel as the level source.
func WithLevelBuilder(b LevelBuilder) Option {
	return func(g *Game) { g.build = b }
}

// WithSeedSource replaces rng.NewSeed for reroll seeds.
func WithSeedSource(next func() rng.Seed) Option {
	return func(g *Game) { g.nextSeed = next }
}

// WithEnemyRegistry replaces the embedded enemy kinds.
func WithEnemyRegistry(r *gamedata.EnemyRegistry) Option {
	return func(g *Game) { g.registry = r }
}

// Game holds the entire session state.
type Game struct {
	cfg    Config
	logger *log.Logger

	build    LevelBuilder
	nextSeed func() rng.Seed
	registry *gamedata.EnemyRegistry

	level    *world.Level
	beacon   *entity.Beacon
	player   *entity.Player
	enemies  []*entity.Enemy
	attempts int
	ticks    int
	breaches int
}

// TickReport describes what happened during one Tick.
type TickReport struct {
	Tick    int
	Spawner *world.Coord    // Spawner placed this tick, if any
	Enemy   *entity.Enemy   // Enemy spawned this tick, if any
	Arrived []*entity.Enemy // Enemies that reached the beacon this tick
}

// New builds a session. The first attempt uses cfg.Seed; each failed attempt
// is discarded and retried with a fresh seed, up to cfg.MaxAttempts.
func New(ctx context.Context, cfg Config, logger *log.Logger, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}

	g := &Game{
		cfg:      cfg,
		logger:   logger,
		build:    world.NewLevel,
		nextSeed: rng.NewSeed,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.registry == nil {
		g.registry = gamedata.MustLoadEnemyRegistry()
	}

	ctx, span := telemetry.Tracer("game").Start(ctx, "game.init")
	defer span.End()

	var lastErr error
	seed := cfg.Seed
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			seed = g.nextSeed()
		}
		g.attempts = attempt

		err := g.setup(ctx, seed)
		if err == nil {
			span.SetAttributes(
				attribute.String("level.id", g.level.ID.String()),
				attribute.String("level.seed", seed.String()),
				attribute.Int("game.attempts", attempt),
				attribute.Int("beacon.x", g.beacon.Pos.X),
				attribute.Int("beacon.y", g.beacon.Pos.Y),
				attribute.Int("player.x", g.player.Pos.X),
				attribute.Int("player.y", g.player.Pos.Y),
			)
			g.logger.Info("level built",
				"level", g.level.ID,
				"seed", seed,
				"attempt", attempt,
				"floor", g.level.Grid.Count(world.Floor),
				"regions", g.level.SealedRegions,
				"beacon", g.beacon.Pos,
				"player", g.player.Pos,
			)
			return g, nil
		}

		lastErr = err
		g.logger.Warn("discarding level", "seed", seed, "attempt", attempt, "err", err)
	}

	err := fmt.Errorf("%w after %d attempts: %w", ErrLevelConstruction, cfg.MaxAttempts, lastErr)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return nil, err
}

// setup builds one level and places the beacon and the player on it. State
// is only committed when both placements succeed.
func (g *Game) setup(ctx context.Context, seed rng.Seed) error {
	level := g.build(ctx, seed, g.cfg.LevelOptions())

	beacon, err := level.PlaceBeacon(ctx)
	if err != nil {
		return err
	}
	player, err := level.PlacePlayer(ctx, beacon)
	if err != nil {
		return err
	}

	g.level = level
	g.beacon = entity.NewBeacon(beacon)
	g.player = entity.NewPlayer(player)
	g.enemies = nil
	return nil
}

// Tick advances the session by one step: enemies move one waypoint, then the
// spawner gate and the enemy gate each consume one draw from the level
// stream.
func (g *Game) Tick(ctx context.Context) TickReport {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.tick")
	defer span.End()

	g.ticks++
	report := TickReport{Tick: g.ticks}

	remaining := g.enemies[:0]
	for _, e := range g.enemies {
		e.Advance()
		if e.Arrived() {
			report.Arrived = append(report.Arrived, e)
			continue
		}
		remaining = append(remaining, e)
	}
	g.enemies = remaining
	g.breaches += len(report.Arrived)

	src := g.level.Rand()
	if rng.Intn(src, g.cfg.SpawnerOdds) == 0 {
		if c, ok := g.level.PlaceSpawner(ctx); ok {
			report.Spawner = &c
			g.logger.Debug("spawner placed", "tick", g.ticks, "pos", c, "spawners", len(g.level.Spawners))
		} else {
			g.logger.Debug("no spawner site", "tick", g.ticks)
		}
	}
	if rng.Intn(src, g.cfg.EnemyOdds) == 0 {
		if e, ok := g.SpawnEnemy(ctx); ok {
			report.Enemy = e
		}
	}

	span.SetAttributes(
		attribute.Int("game.tick", g.ticks),
		attribute.Int("game.enemies", len(g.enemies)),
		attribute.Int("game.arrived", len(report.Arrived)),
		attribute.Bool("game.spawner_placed", report.Spawner != nil),
		attribute.Bool("game.enemy_spawned", report.Enemy != nil),
	)
	return report
}

// SpawnEnemy places an enemy on a random spawner if a path from there to the
// beacon exists. The enemy carries that path as its waypoint queue.
func (g *Game) SpawnEnemy(ctx context.Context) (*entity.Enemy, bool) {
	_, span := telemetry.Tracer("game").Start(ctx, "game.spawn_enemy")
	defer span.End()

	site, ok := g.level.EnemySpawnSite()
	if !ok {
		span.SetAttributes(attribute.String("spawn.skipped", "no spawner"))
		return nil, false
	}

	path, ok := g.level.Pathfind(site, g.beacon.Pos)
	if !ok {
		span.SetAttributes(attribute.String("spawn.skipped", "no path"))
		g.logger.Debug("spawner cut off from beacon", "pos", site)
		return nil, false
	}

	def := g.registry.SpawnRandom(g.level.Rand())
	if def == nil {
		span.SetAttributes(attribute.String("spawn.skipped", "no enemy kind"))
		return nil, false
	}

	e := entity.NewEnemy(def, path)
	g.enemies = append(g.enemies, e)

	span.SetAttributes(
		attribute.String("enemy.kind", def.ID),
		attribute.Int("enemy.x", site.X),
		attribute.Int("enemy.y", site.Y),
		attribute.Int("enemy.path_cost", path.Cost),
	)
	g.logger.Debug("enemy spawned", "kind", def.ID, "pos", site, "path", path.Cost)
	return e, true
}

// MovePlayer attempts to move the player by the given delta and reports
// whether the move happened.
func (g *Game) MovePlayer(dx, dy int) bool {
	if !g.level.IsPassable(g.player.Pos.Add(dx, dy)) {
		return false
	}
	g.player.Move(dx, dy)
	return true
}

// Dump renders the level as ASCII with the beacon, the player and enemies
// drawn over their cells, one line per row.
func (g *Game) Dump() string {
	rows := strings.Split(strings.TrimSuffix(g.level.Grid.String(), "\n"), "\n")
	grid := make([][]rune, len(rows))
	for y, row := range rows {
		grid[y] = []rune(row)
	}

	put := func(c world.Coord, r rune) {
		if g.level.Grid.InBounds(c) {
			grid[c.Y][c.X] = r
		}
	}
	for _, e := range g.enemies {
		put(e.Pos, e.Symbol)
	}
	put(g.beacon.Pos, g.beacon.Symbol)
	put(g.player.Pos, g.player.Symbol)

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Level returns the current level.
func (g *Game) Level() *world.Level { return g.level }

// Beacon returns the beacon.
func (g *Game) Beacon() *entity.Beacon { return g.beacon }

// Player returns the player.
func (g *Game) Player() *entity.Player { return g.player }

// Enemies returns the enemies still walking towards the beacon.
func (g *Game) Enemies() []*entity.Enemy { return g.enemies }

// Attempts returns how many levels were built before one succeeded.
func (g *Game) Attempts() int { return g.attempts }

// Ticks returns how many ticks have run.
func (g *Game) Ticks() int { return g.ticks }

// Breaches returns how many enemies have reached the beacon.
func (g *Game) Breaches() int { return g.breaches }
