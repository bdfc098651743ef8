package world

import (
	"fmt"
	"strings"

	"codeberg.org/anaseto/gruid"
)

// Coord is an (x, y) grid position. It is a value type and used as map key.
type Coord struct {
	X, Y int
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Neighbors4 returns the west, north, east and south neighbours.
func (c Coord) Neighbors4() [4]Coord {
	return [4]Coord{
		{c.X - 1, c.Y},
		{c.X, c.Y - 1},
		{c.X + 1, c.Y},
		{c.X, c.Y + 1},
	}
}

// Neighbors8 returns all eight surrounding coordinates.
// The result may fall outside any grid bounds.
func (c Coord) Neighbors8() [8]Coord {
	return [8]Coord{
		{c.X - 1, c.Y - 1}, {c.X, c.Y - 1}, {c.X + 1, c.Y - 1},
		{c.X - 1, c.Y}, {c.X + 1, c.Y},
		{c.X - 1, c.Y + 1}, {c.X, c.Y + 1}, {c.X + 1, c.Y + 1},
	}
}

// Manhattan returns the taxicab distance between two coordinates.
func (c Coord) Manhattan(other Coord) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

// String returns the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func (c Coord) point() gruid.Point {
	return gruid.Point{X: c.X, Y: c.Y}
}

func fromPoint(p gruid.Point) Coord {
	return Coord{X: p.X, Y: p.Y}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Grid maps coordinates to cells within the bounds [0,width)×[0,height).
// Get and Set do not check bounds; callers stay in range.
type Grid struct {
	width  int
	height int
	cells  map[Coord]Cell
}

// NewGrid creates an empty grid. No coordinate has an entry yet.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make(map[Coord]Cell, width*height),
	}
}

// NewFilledGrid creates a grid with every in-bounds coordinate set to cell.
func NewFilledGrid(width, height int, cell Cell) *Grid {
	g := NewGrid(width, height)
	g.Bounds().Each(func(c Coord) {
		g.cells[c] = cell
	})
	return g
}

// ParseGrid builds a grid from rows of cell runes ('#', '.', 'S').
// Any other rune leaves the coordinate absent.
func ParseGrid(rows ...string) *Grid {
	width := 0
	for _, row := range rows {
		width = max(width, len([]rune(row)))
	}
	g := NewGrid(width, len(rows))
	for y, row := range rows {
		for x, r := range []rune(row) {
			switch Cell(r) {
			case Floor, Wall, Spawner:
				g.cells[Coord{X: x, Y: y}] = Cell(r)
			}
		}
	}
	return g
}

// Width returns the grid width.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height.
func (g *Grid) Height() int { return g.height }

// Bounds returns the rectangle covered by the grid.
func (g *Grid) Bounds() Rect {
	return Rect{Width: g.width, Height: g.height}
}

// InBounds returns true if the coordinate lies within the grid bounds.
func (g *Grid) InBounds(c Coord) bool {
	return g.Bounds().Contains(c)
}

// Get returns the cell at c and whether it is present.
func (g *Grid) Get(c Coord) (Cell, bool) {
	cell, ok := g.cells[c]
	return cell, ok
}

// Is returns true if the cell at c is present and equal to cell.
func (g *Grid) Is(c Coord, cell Cell) bool {
	got, ok := g.cells[c]
	return ok && got == cell
}

// Set stores cell at c.
func (g *Grid) Set(c Coord, cell Cell) {
	g.cells[c] = cell
}

// Len returns the number of coordinates with an entry.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Count returns how many in-bounds coordinates hold the given cell.
func (g *Grid) Count(cell Cell) int {
	n := 0
	g.Each(func(_ Coord, got Cell) {
		if got == cell {
			n++
		}
	})
	return n
}

// Each calls fn for every present in-bounds cell in row-major order.
func (g *Grid) Each(fn func(c Coord, cell Cell)) {
	g.Bounds().Each(func(c Coord) {
		if cell, ok := g.cells[c]; ok {
			fn(c, cell)
		}
	})
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := NewGrid(g.width, g.height)
	for c, cell := range g.cells {
		out.cells[c] = cell
	}
	return out
}

// Equal returns true if both grids have the same bounds and entries.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height || len(g.cells) != len(other.cells) {
		return false
	}
	for c, cell := range g.cells {
		if got, ok := other.cells[c]; !ok || got != cell {
			return false
		}
	}
	return true
}

// String returns the grid as text, one line per row. Absent cells print as
// a space.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if cell, ok := g.cells[Coord{X: x, Y: y}]; ok {
				b.WriteRune(cell.Rune())
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
