// Package world provides cave level generation, spawn placement and
// pathfinding over the generated grid.
package world

// Cell classifies a single grid coordinate.
type Cell rune

const (
	// Floor is open, walkable space.
	Floor Cell = '.'
	// Wall is solid rock.
	Wall Cell = '#'
	// Spawner is a wall converted into an enemy spawn point. It is walkable.
	Spawner Cell = 'S'
)

// IsPassable returns true if the cell can be walked on.
func (c Cell) IsPassable() bool {
	return c == Floor || c == Spawner
}

// Rune returns the cell's display character.
func (c Cell) Rune() rune {
	return rune(c)
}

// String returns a human-readable cell name.
func (c Cell) String() string {
	switch c {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case Spawner:
		return "spawner"
	default:
		return "unknown"
	}
}
