package world

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/beaconcave/internal/rng"
	"github.com/samdwyer/beaconcave/internal/telemetry"
)

const (
	// Default level dimensions
	DefaultWidth  = 50
	DefaultHeight = 50
)

// Options controls level generation.
type Options struct {
	Width      int
	Height     int
	Iterations int // automaton generations
}

// DefaultOptions returns the standard 50×50, five-iteration level options.
func DefaultOptions() Options {
	return Options{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Iterations: DefaultIterations,
	}
}

// Level is one generated cave together with the random source that made it.
// The same source is used for every later spawn decision.
type Level struct {
	ID           uuid.UUID
	Seed         rng.Seed
	Width        int
	Height       int
	Grid         *Grid
	Spawners     []Coord
	Connectivity ConnectivityReport

	// SealedRegions is the number of floor regions left after the border
	// is sealed. Sealing runs after connectivity enforcement and can split
	// the kept region, so this may exceed one.
	SealedRegions int

	src        rng.Source
	pathfinder *Pathfinder
}

// NewLevel generates a level from seed.
func NewLevel(ctx context.Context, seed rng.Seed, opts Options) *Level {
	l := NewLevelFromSource(ctx, rng.NewStream(seed), opts)
	l.Seed = seed
	return l
}

// NewLevelFromSource generates a level drawing from src. The level takes
// ownership of src.
func NewLevelFromSource(ctx context.Context, src rng.Source, opts Options) *Level {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "level.generate")
	defer span.End()

	startTime := time.Now()

	grid := Generate(src, opts.Width, opts.Height, opts.Iterations)

	_, connSpan := tracer.Start(ctx, "level.connectivity")
	report := EnforceConnectivity(grid)
	connSpan.SetAttributes(
		attribute.Int("connectivity.regions", report.Regions),
		attribute.Int("connectivity.kept_size", report.KeptSize),
		attribute.Int("connectivity.demoted", report.Demoted),
	)
	connSpan.End()

	SealEdges(grid)

	l := &Level{
		ID:            uuid.New(),
		Width:         opts.Width,
		Height:        opts.Height,
		Grid:          grid,
		Connectivity:  report,
		SealedRegions: FloorRegions(grid),
		src:           src,
		pathfinder:    NewPathfinder(grid),
	}

	span.SetAttributes(
		attribute.String("level.id", l.ID.String()),
		attribute.Int("level.width", l.Width),
		attribute.Int("level.height", l.Height),
		attribute.Int("level.iterations", opts.Iterations),
		attribute.Int("level.floor_count", grid.Count(Floor)),
		attribute.Int("level.sealed_regions", l.SealedRegions),
		attribute.Int64("level.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return l
}

// LevelFromGrid wraps an already finished grid, such as one loaded from a
// fixture, in a Level drawing spawn decisions from src. The grid is used as
// is: no connectivity or sealing pass runs.
func LevelFromGrid(grid *Grid, src rng.Source) *Level {
	return &Level{
		ID:            uuid.New(),
		Width:         grid.Width(),
		Height:        grid.Height(),
		Grid:          grid,
		SealedRegions: FloorRegions(grid),
		src:           src,
		pathfinder:    NewPathfinder(grid),
	}
}

// Rand returns the level's random source.
func (l *Level) Rand() rng.Source {
	return l.src
}

// Draw returns the next value from the level's random source.
func (l *Level) Draw() uint32 {
	return l.src.Uint32()
}

// IsPassable returns true if the given position can be walked on.
func (l *Level) IsPassable(c Coord) bool {
	if !l.Grid.InBounds(c) {
		return false
	}
	cell, ok := l.Grid.Get(c)
	return ok && cell.IsPassable()
}

// GetCell returns the cell at the given position, or Wall outside the level.
func (l *Level) GetCell(c Coord) Cell {
	if cell, ok := l.Grid.Get(c); ok && l.Grid.InBounds(c) {
		return cell
	}
	return Wall
}

// Pathfind searches a path over the level grid.
func (l *Level) Pathfind(start, target Coord) (Path, bool) {
	return l.pathfinder.Find(start, target)
}
