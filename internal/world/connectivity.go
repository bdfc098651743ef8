package world

// ConnectivityReport summarizes one connectivity pass.
type ConnectivityReport struct {
	Regions    int // number of floor regions found
	KeptRegion int // id of the region kept as floor, -1 if there was no floor
	KeptSize   int // number of cells in the kept region
	Demoted    int // floor cells turned into walls
}

// EnforceConnectivity keeps the largest 4-connected floor region and turns
// every other floor cell into a wall. Region ids are assigned in row-major
// discovery order and on a tie the lower id wins.
func EnforceConnectivity(g *Grid) ConnectivityReport {
	labels := make(map[Coord]int)
	var sizes []int

	g.Each(func(c Coord, cell Cell) {
		if cell != Floor {
			return
		}
		if _, seen := labels[c]; seen {
			return
		}
		id := len(sizes)
		sizes = append(sizes, floodFill(g, c, id, labels))
	})

	report := ConnectivityReport{Regions: len(sizes), KeptRegion: -1}
	for id, size := range sizes {
		if size > report.KeptSize {
			report.KeptRegion, report.KeptSize = id, size
		}
	}

	g.Bounds().Each(func(c Coord) {
		if id, ok := labels[c]; ok && id != report.KeptRegion {
			g.Set(c, Wall)
			report.Demoted++
		}
	})
	return report
}

// FloorRegions counts the 4-connected floor regions of g without changing it.
func FloorRegions(g *Grid) int {
	labels := make(map[Coord]int)
	regions := 0
	g.Each(func(c Coord, cell Cell) {
		if _, seen := labels[c]; seen || cell != Floor {
			return
		}
		floodFill(g, c, regions, labels)
		regions++
	})
	return regions
}

// floodFill labels every floor cell 4-reachable from start with id and
// returns the region size. It uses an explicit stack.
func floodFill(g *Grid, start Coord, id int, labels map[Coord]int) int {
	stack := []Coord{start}
	labels[start] = id
	size := 0
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		for _, n := range c.Neighbors4() {
			if _, seen := labels[n]; seen || !g.Is(n, Floor) {
				continue
			}
			labels[n] = id
			stack = append(stack, n)
		}
	}
	return size
}
