package entity

import (
	"github.com/samdwyer/beaconcave/internal/gamedata"
	"github.com/samdwyer/beaconcave/internal/world"
)

// Enemy is a hostile creature walking a precomputed route to the beacon.
type Enemy struct {
	Def    *gamedata.EnemyDef // Kind of enemy
	Name   string             // Display name
	Symbol rune               // Display symbol
	Pos    world.Coord        // Current position

	waypoints []world.Coord
}

// NewEnemy creates an enemy of the given kind at the start of path.
// The remaining steps of the path become its waypoint queue.
func NewEnemy(def *gamedata.EnemyDef, path world.Path) *Enemy {
	e := &Enemy{
		Def:    def,
		Name:   def.Name,
		Symbol: def.GlyphRune(),
	}
	if len(path.Steps) > 0 {
		e.Pos = path.Steps[0]
		e.waypoints = append([]world.Coord(nil), path.Steps[1:]...)
	}
	return e
}

// ID returns the enemy's kind identifier.
func (e *Enemy) ID() string {
	return e.Def.ID
}

// Waypoints returns the positions still ahead, nearest first.
func (e *Enemy) Waypoints() []world.Coord {
	return e.waypoints
}

// Arrived returns true once the waypoint queue is empty.
func (e *Enemy) Arrived() bool {
	return len(e.waypoints) == 0
}

// Advance moves the enemy to its next waypoint and reports whether it moved.
func (e *Enemy) Advance() bool {
	if e.Arrived() {
		return false
	}
	e.Pos = e.waypoints[0]
	e.waypoints = e.waypoints[1:]
	return true
}
