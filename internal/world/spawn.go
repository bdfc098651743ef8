package world

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/beaconcave/internal/rng"
	"github.com/samdwyer/beaconcave/internal/telemetry"
)

const (
	// Beacon placement parameters
	beaconWindow    = 6  // side of the openness window around a candidate
	beaconThreshold = 30 // minimum floor-minus-wall score in the window

	// Player placement parameters
	playerWindow = 21 // side of the window centered on the beacon
)

var (
	// ErrNoSpawnSite is the common cause of every failed mandatory placement.
	ErrNoSpawnSite = errors.New("no spawn site")
	// ErrNoBeaconSite means no coordinate is open enough for the beacon.
	ErrNoBeaconSite = fmt.Errorf("beacon: %w", ErrNoSpawnSite)
	// ErrNoPlayerSite means there is no floor near the beacon.
	ErrNoPlayerSite = fmt.Errorf("player: %w", ErrNoSpawnSite)
)

// BeaconCandidates returns the coordinates eligible for the beacon, in
// row-major order. Candidates lie in the central half of the level, have a
// floor-minus-wall score above the threshold over a 6×6 window and sit at
// the south-east corner of a 2×2 block of floor.
func (l *Level) BeaconCandidates() []Coord {
	central := Rect{
		X:      l.Width / 4,
		Y:      l.Height / 4,
		Width:  l.Width*3/4 - l.Width/4,
		Height: l.Height*3/4 - l.Height/4,
	}

	var candidates []Coord
	central.Each(func(c Coord) {
		if l.opennessScore(c) <= beaconThreshold {
			return
		}
		for _, q := range []Coord{c, c.Add(-1, 0), c.Add(0, -1), c.Add(-1, -1)} {
			if !l.Grid.Is(q, Floor) {
				return
			}
		}
		candidates = append(candidates, c)
	})
	return candidates
}

// opennessScore counts floors minus walls in the window around c.
// Spawners and absent cells count for nothing.
func (l *Level) opennessScore(c Coord) int {
	score := 0
	CenteredRect(c, beaconWindow, beaconWindow).Each(func(q Coord) {
		switch cell, _ := l.Grid.Get(q); cell {
		case Floor:
			score++
		case Wall:
			score--
		}
	})
	return score
}

// PlaceBeacon picks the beacon position among BeaconCandidates.
func (l *Level) PlaceBeacon(ctx context.Context) (Coord, error) {
	_, span := telemetry.Tracer("world").Start(ctx, "spawn.beacon")
	defer span.End()

	candidates := l.BeaconCandidates()
	span.SetAttributes(attribute.Int("spawn.candidates", len(candidates)))
	if len(candidates) == 0 {
		span.SetAttributes(attribute.Bool("failed", true))
		return Coord{}, ErrNoBeaconSite
	}

	c := candidates[rng.Intn(l.src, len(candidates))]
	span.SetAttributes(attribute.Int("spawn.x", c.X), attribute.Int("spawn.y", c.Y))
	return c, nil
}

// PlayerCandidates returns the floor coordinates in the 21×21 window
// centered on the beacon, clipped to the grid, in row-major order.
func (l *Level) PlayerCandidates(beacon Coord) []Coord {
	window := CenteredRect(beacon, playerWindow, playerWindow).Intersect(l.Grid.Bounds())
	if window.Empty() {
		return nil
	}

	var candidates []Coord
	window.Each(func(c Coord) {
		if l.Grid.Is(c, Floor) {
			candidates = append(candidates, c)
		}
	})
	return candidates
}

// PlacePlayer picks the player position near the beacon.
func (l *Level) PlacePlayer(ctx context.Context, beacon Coord) (Coord, error) {
	_, span := telemetry.Tracer("world").Start(ctx, "spawn.player")
	defer span.End()

	candidates := l.PlayerCandidates(beacon)
	span.SetAttributes(attribute.Int("spawn.candidates", len(candidates)))
	if len(candidates) == 0 {
		span.SetAttributes(attribute.Bool("failed", true))
		return Coord{}, fmt.Errorf("%w near beacon %v", ErrNoPlayerSite, beacon)
	}

	c := candidates[rng.Intn(l.src, len(candidates))]
	span.SetAttributes(attribute.Int("spawn.x", c.X), attribute.Int("spawn.y", c.Y))
	return c, nil
}

// SpawnerCandidates returns the walls that touch a floor or spawner cell
// orthogonally, in row-major order.
func (l *Level) SpawnerCandidates() []Coord {
	var candidates []Coord
	l.Grid.Each(func(c Coord, cell Cell) {
		if cell != Wall {
			return
		}
		for _, n := range c.Neighbors4() {
			if got, ok := l.Grid.Get(n); ok && got.IsPassable() {
				candidates = append(candidates, c)
				return
			}
		}
	})
	return candidates
}

// PlaceSpawner converts one candidate wall into a spawner and appends it to
// the spawner list. It reports false, without drawing, when no wall
// qualifies.
func (l *Level) PlaceSpawner(ctx context.Context) (Coord, bool) {
	_, span := telemetry.Tracer("world").Start(ctx, "spawn.spawner")
	defer span.End()

	candidates := l.SpawnerCandidates()
	span.SetAttributes(attribute.Int("spawn.candidates", len(candidates)))
	if len(candidates) == 0 {
		return Coord{}, false
	}

	c := candidates[rng.Intn(l.src, len(candidates))]
	l.Grid.Set(c, Spawner)
	l.Spawners = append(l.Spawners, c)
	span.SetAttributes(
		attribute.Int("spawn.x", c.X),
		attribute.Int("spawn.y", c.Y),
		attribute.Int("spawn.spawner_count", len(l.Spawners)),
	)
	return c, true
}

// EnemySpawnSite picks one of the placed spawners. It reports false when no
// spawner exists yet.
func (l *Level) EnemySpawnSite() (Coord, bool) {
	if len(l.Spawners) == 0 {
		return Coord{}, false
	}
	return l.Spawners[rng.Intn(l.src, len(l.Spawners))], true
}
