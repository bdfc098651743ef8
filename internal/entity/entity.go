// Package entity provides the beacon, the player and enemies placed on a
// level.
package entity

import "github.com/samdwyer/beaconcave/internal/world"

// Beacon is the structure the player defends. Enemies walk towards it.
type Beacon struct {
	Pos    world.Coord
	Symbol rune
}

// NewBeacon creates a beacon at the given position.
func NewBeacon(pos world.Coord) *Beacon {
	return &Beacon{Pos: pos, Symbol: 'B'}
}

// Player is the controlled character.
type Player struct {
	Pos    world.Coord
	Symbol rune
}

// NewPlayer creates a player at the given position.
func NewPlayer(pos world.Coord) *Player {
	return &Player{Pos: pos, Symbol: '@'}
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy int) {
	p.Pos = p.Pos.Add(dx, dy)
}
