package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/beaconcave/internal/gamedata"
	"github.com/samdwyer/beaconcave/internal/world"
)

func TestPlayerMove(t *testing.T) {
	p := NewPlayer(world.Coord{X: 3, Y: 4})

	p.Move(1, -1)

	assert.Equal(t, world.Coord{X: 4, Y: 3}, p.Pos)
	assert.Equal(t, '@', p.Symbol)
}

func TestNewBeacon(t *testing.T) {
	b := NewBeacon(world.Coord{X: 7, Y: 7})

	assert.Equal(t, world.Coord{X: 7, Y: 7}, b.Pos)
	assert.Equal(t, 'B', b.Symbol)
}

func TestEnemyFollowsPath(t *testing.T) {
	def := &gamedata.EnemyDef{ID: "brute", Name: "Brute", Glyph: "b"}
	path := world.Path{
		Steps: []world.Coord{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}},
		Cost:  2,
	}

	e := NewEnemy(def, path)

	assert.Equal(t, "brute", e.ID())
	assert.Equal(t, "Brute", e.Name)
	assert.Equal(t, 'b', e.Symbol)
	assert.Equal(t, world.Coord{X: 0, Y: 1}, e.Pos)
	require.Equal(t, []world.Coord{{X: 1, Y: 1}, {X: 1, Y: 2}}, e.Waypoints())

	assert.True(t, e.Advance())
	assert.Equal(t, world.Coord{X: 1, Y: 1}, e.Pos)
	assert.False(t, e.Arrived())

	assert.True(t, e.Advance())
	assert.Equal(t, world.Coord{X: 1, Y: 2}, e.Pos)
	assert.True(t, e.Arrived())

	assert.False(t, e.Advance(), "an arrived enemy stays put")
	assert.Equal(t, world.Coord{X: 1, Y: 2}, e.Pos)
}

func TestEnemyCopiesPath(t *testing.T) {
	steps := []world.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}}
	e := NewEnemy(&gamedata.EnemyDef{ID: "crawler"}, world.Path{Steps: steps, Cost: 1})

	steps[1] = world.Coord{X: 9, Y: 9}

	assert.Equal(t, []world.Coord{{X: 1, Y: 0}}, e.Waypoints())
}

func TestEnemyEmptyPath(t *testing.T) {
	e := NewEnemy(&gamedata.EnemyDef{ID: "wraith"}, world.Path{})

	assert.True(t, e.Arrived())
	assert.Equal(t, '?', e.Symbol)
}
