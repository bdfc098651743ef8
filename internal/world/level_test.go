package world

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/beaconcave/internal/rng"
)

func testSeed(i int) rng.Seed {
	seed := rng.DebugSeed
	seed[31] = byte(i)
	return seed
}

func TestLevelReproducibility(t *testing.T) {
	ctx := context.Background()

	l1 := NewLevel(ctx, rng.DebugSeed, DefaultOptions())
	l2 := NewLevel(ctx, rng.DebugSeed, DefaultOptions())

	require.True(t, l1.Grid.Equal(l2.Grid), "same seed must give the same grid")
	assert.Equal(t, l1.Connectivity, l2.Connectivity)
	assert.NotEqual(t, l1.ID, l2.ID, "level ids identify runs, not layouts")

	b1, err1 := l1.PlaceBeacon(ctx)
	b2, err2 := l2.PlaceBeacon(ctx)
	require.Equal(t, err1, err2)
	assert.Equal(t, b1, b2)
	if err1 != nil {
		return
	}

	p1, err1 := l1.PlacePlayer(ctx, b1)
	p2, err2 := l2.PlacePlayer(ctx, b2)
	require.Equal(t, err1, err2)
	assert.Equal(t, p1, p2)

	for i := 0; i < 5; i++ {
		s1, ok1 := l1.PlaceSpawner(ctx)
		s2, ok2 := l2.PlaceSpawner(ctx)
		assert.Equal(t, ok1, ok2)
		assert.Equal(t, s1, s2)
	}
	assert.Equal(t, l1.Spawners, l2.Spawners)
}

func TestLevelDifferentSeeds(t *testing.T) {
	ctx := context.Background()

	l1 := NewLevel(ctx, testSeed(1), DefaultOptions())
	l2 := NewLevel(ctx, testSeed(2), DefaultOptions())

	assert.False(t, l1.Grid.Equal(l2.Grid), "levels with different seeds should not be identical")
}

func TestLevelInvariants(t *testing.T) {
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		l := NewLevel(ctx, testSeed(i), DefaultOptions())
		g := l.Grid

		require.Equal(t, l.Width*l.Height, g.Len(), "seed %d: every coordinate has exactly one entry", i)
		g.Each(func(c Coord, cell Cell) {
			assert.True(t, cell == Floor || cell == Wall, "seed %d: %v is %s", i, c, cell)
			border := c.X == 0 || c.Y == 0 || c.X == l.Width-1 || c.Y == l.Height-1
			if border {
				assert.Equal(t, Wall, cell, "seed %d: border %v", i, c)
			}
		})
		assert.Empty(t, l.Spawners)
	}
}

func TestLevelCustomOptions(t *testing.T) {
	l := NewLevel(context.Background(), rng.DebugSeed, Options{Width: 30, Height: 12, Iterations: 2})

	assert.Equal(t, 30, l.Grid.Width())
	assert.Equal(t, 12, l.Grid.Height())
	assert.Equal(t, 30*12, l.Grid.Len())
	assert.Equal(t, rng.DebugSeed, l.Seed)
}

func TestLevelPathfindFloorToFloor(t *testing.T) {
	ctx := context.Background()
	l := NewLevel(ctx, rng.DebugSeed, DefaultOptions())

	var first, last Coord
	found := false
	l.Grid.Each(func(c Coord, cell Cell) {
		if cell != Floor {
			return
		}
		if !found {
			first, found = c, true
		}
		last = c
	})
	require.True(t, found, "generated level has no floor")

	if l.SealedRegions == 1 {
		path, ok := l.Pathfind(first, last)
		require.True(t, ok)
		assert.Equal(t, path.Len(), path.Cost)
		assertContiguous(t, l.Grid, path)
	}

	var wall Coord
	l.Grid.Each(func(c Coord, cell Cell) {
		if cell == Wall {
			wall = c
		}
	})
	_, ok := l.Pathfind(first, wall)
	assert.False(t, ok, "found a path into a wall")
}

func TestLevelCellAccess(t *testing.T) {
	l := newTestLevel(ParseGrid(
		"###",
		"#.#",
		"###",
	), rng.NewSequence(0))

	assert.True(t, l.IsPassable(Coord{1, 1}))
	assert.False(t, l.IsPassable(Coord{0, 0}))
	assert.False(t, l.IsPassable(Coord{-1, 1}))
	assert.Equal(t, Floor, l.GetCell(Coord{1, 1}))
	assert.Equal(t, Wall, l.GetCell(Coord{7, 7}))
}

func TestLevelDrawAdvancesSource(t *testing.T) {
	l := newTestLevel(NewFilledGrid(3, 3, Floor), rng.NewSequence(4, 9))

	assert.Equal(t, uint32(4), l.Draw())
	assert.Equal(t, uint32(9), l.Draw())
}

func TestLevelFromGrid(t *testing.T) {
	src := rng.NewSequence(1)
	g := ParseGrid(
		"####",
		"#..#",
		"####",
	)

	l := LevelFromGrid(g, src)

	assert.Equal(t, 4, l.Width)
	assert.Equal(t, 3, l.Height)
	assert.Same(t, src, l.Rand())
	assert.Empty(t, l.Spawners)
	path, ok := l.Pathfind(Coord{1, 1}, Coord{2, 1})
	require.True(t, ok)
	assert.Equal(t, 1, path.Cost)
}

// TestSealingFragmentation measures how often sealing the border after
// connectivity enforcement splits the kept floor region.
func TestSealingFragmentation(t *testing.T) {
	ctx := context.Background()
	const seeds = 32

	fragmented, independent := 0, 0
	for i := 0; i < seeds; i++ {
		seed := testSeed(100 + i)
		l := NewLevel(ctx, seed, DefaultOptions())

		// Before sealing the kept region is always a single component.
		raw := Generate(rng.NewStream(seed), DefaultWidth, DefaultHeight, DefaultIterations)
		EnforceConnectivity(raw)
		require.Equal(t, raw.Count(Floor), floorComponent(t, raw), "seed %d: pre-seal grid is split", i)

		if l.SealedRegions > 1 {
			fragmented++

			// Only floor lost to the border can split the region.
			sealedFloor := 0
			raw.Each(func(c Coord, cell Cell) {
				border := c.X == 0 || c.Y == 0 || c.X == l.Width-1 || c.Y == l.Height-1
				if border && cell == Floor {
					sealedFloor++
				}
			})
			assert.Positive(t, sealedFloor, "seed %d: split without any floor on the border", i)
		}
		if floorComponent(t, l.Grid) != l.Grid.Count(Floor) {
			independent++
		}
		assert.GreaterOrEqual(t, l.SealedRegions, 1, "seed %d", i)
	}

	t.Logf("sealing split the floor in %d of %d levels", fragmented, seeds)
	assert.Equal(t, independent, fragmented, "SealedRegions disagrees with an independent flood fill")

	again := 0
	for i := 0; i < seeds; i++ {
		if NewLevel(ctx, testSeed(100+i), DefaultOptions()).SealedRegions > 1 {
			again++
		}
	}
	assert.Equal(t, fragmented, again, "fragmentation count must be reproducible")
}
