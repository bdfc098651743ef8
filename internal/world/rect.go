package world

// Rect is a half-open rectangle of coordinates used to bound scans.
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the rectangle
}

// CenteredRect returns the rectangle of the given size whose center is c.
// For even sizes the extra row and column fall on the low side, so a 6×6
// window around (x, y) spans x-3..x+2.
func CenteredRect(c Coord, width, height int) Rect {
	return Rect{
		X:      c.X - width/2,
		Y:      c.Y - height/2,
		Width:  width,
		Height: height,
	}
}

// Contains returns true if the given coordinate is inside the rectangle.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.X && c.X < r.X+r.Width && c.Y >= r.Y && c.Y < r.Y+r.Height
}

// Intersect returns the overlap of two rectangles. The result is empty when
// they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0, y0 := max(r.X, other.X), max(r.Y, other.Y)
	x1 := min(r.X+r.Width, other.X+other.Width)
	y1 := min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Empty returns true if the rectangle holds no coordinates.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Each calls fn for every coordinate in row-major order.
func (r Rect) Each(fn func(c Coord)) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			fn(Coord{X: x, Y: y})
		}
	}
}
