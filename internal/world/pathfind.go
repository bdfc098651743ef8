package world

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// heuristicDivisor scales down the Manhattan estimate used by the search.
// The estimate stays a lower bound, so paths remain shortest; the search is
// just less directed.
const heuristicDivisor = 3

// Path is a walkable route from a start to a target coordinate.
type Path struct {
	Steps []Coord // start and target included
	Cost  int     // one per step
}

// Len returns the number of moves in the path.
func (p Path) Len() int {
	return max(len(p.Steps)-1, 0)
}

// Contains returns true if the path passes through c.
func (p Path) Contains(c Coord) bool {
	for _, s := range p.Steps {
		if s == c {
			return true
		}
	}
	return false
}

// Pathfinder runs A* searches over one grid. It reuses its search buffers
// between queries, so it must not be shared between goroutines.
type Pathfinder struct {
	grid   *Grid
	pr     *paths.PathRange
	walker *caveWalker
}

// NewPathfinder creates a pathfinder for g. The grid may change between
// queries (spawners appear) but its size must not.
func NewPathfinder(g *Grid) *Pathfinder {
	return &Pathfinder{
		grid:   g,
		pr:     paths.NewPathRange(gruid.NewRange(0, 0, g.Width(), g.Height())),
		walker: &caveWalker{grid: g},
	}
}

// Pathfind is a one-shot search; see Pathfinder.Find.
func Pathfind(g *Grid, start, target Coord) (Path, bool) {
	return NewPathfinder(g).Find(start, target)
}

// Find returns a path from start to target moving orthogonally over floor
// and spawner cells. It reports false when the target is not walkable or
// cannot be reached.
func (pf *Pathfinder) Find(start, target Coord) (Path, bool) {
	if !pf.grid.InBounds(start) || !pf.grid.InBounds(target) {
		return Path{}, false
	}
	if cell, ok := pf.grid.Get(target); !ok || !cell.IsPassable() {
		return Path{}, false
	}
	if start == target {
		return Path{Steps: []Coord{start}}, true
	}

	points := pf.pr.AstarPath(pf.walker, start.point(), target.point())
	if len(points) == 0 {
		return Path{}, false
	}

	steps := make([]Coord, len(points))
	for i, p := range points {
		steps[i] = fromPoint(p)
	}
	return Path{Steps: steps, Cost: len(steps) - 1}, true
}

// caveWalker adapts a Grid to the gruid A* interface.
type caveWalker struct {
	grid *Grid
	nbs  paths.Neighbors
}

func (w *caveWalker) Neighbors(p gruid.Point) []gruid.Point {
	return w.nbs.Cardinal(p, w.passable)
}

func (w *caveWalker) Cost(p, q gruid.Point) int {
	return 1
}

func (w *caveWalker) Estimation(p, q gruid.Point) int {
	return paths.DistanceManhattan(p, q) / heuristicDivisor
}

func (w *caveWalker) passable(p gruid.Point) bool {
	c := fromPoint(p)
	if !w.grid.InBounds(c) {
		return false
	}
	cell, ok := w.grid.Get(c)
	return ok && cell.IsPassable()
}
