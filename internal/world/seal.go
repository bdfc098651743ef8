package world

// SealEdges turns every border coordinate into a wall.
func SealEdges(g *Grid) {
	w, h := g.Width(), g.Height()
	for x := 0; x < w; x++ {
		g.Set(Coord{X: x, Y: 0}, Wall)
		g.Set(Coord{X: x, Y: h - 1}, Wall)
	}
	for y := 0; y < h; y++ {
		g.Set(Coord{X: 0, Y: y}, Wall)
		g.Set(Coord{X: w - 1, Y: y}, Wall)
	}
}
