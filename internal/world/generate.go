package world

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/beaconcave/internal/rng"
)

// DefaultIterations is the number of automaton generations run by default.
const DefaultIterations = 5

// Generate builds the raw cave layout: random walls relaxed by a
// Game-of-Life automaton, with every remaining in-bounds coordinate filled
// with Floor. The result is not yet connectivity-enforced or sealed.
func Generate(src rng.Source, width, height, iterations int) *Grid {
	walls := seedWalls(src, width, height)
	for i := 0; i < iterations; i++ {
		walls = relax(walls)
	}

	g := NewGrid(width, height)
	g.Bounds().Each(func(c Coord) {
		if walls.Has(c) {
			g.Set(c, Wall)
		} else {
			g.Set(c, Floor)
		}
	})
	return g
}

// seedWalls draws once per coordinate in row-major order; odd draws are walls.
func seedWalls(src rng.Source, width, height int) mapset.Set[Coord] {
	walls := mapset.New[Coord]()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if src.Uint32()%2 == 1 {
				walls.Put(Coord{X: x, Y: y})
			}
		}
	}
	return walls
}

// relax computes the next automaton generation. A coordinate is a wall iff
// it has exactly three wall neighbours, or exactly two and was a wall already.
// The automaton is unbounded: walls may be born just outside the grid and
// still count towards later generations.
func relax(walls mapset.Set[Coord]) mapset.Set[Coord] {
	counts := make(map[Coord]int, walls.Size()*2)
	walls.Each(func(c Coord) {
		for _, n := range c.Neighbors8() {
			counts[n]++
		}
	})

	next := mapset.New[Coord]()
	for c, n := range counts {
		if n == 3 || (n == 2 && walls.Has(c)) {
			next.Put(c)
		}
	}
	return next
}
