package gridgraph

// OpenRegions finds all 4-connected regions of open (non-obstacle) cells.
// Returns a slice of regions; each region is a slice of cell indices in
// discovery order. Regions are ordered by their smallest index.
//
// Two open cells can be joined by a search iff they share a region.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) OpenRegions() [][]int {
	seen := make([]bool, len(g.cells))
	var regions [][]int

	for i0 := range g.cells {
		if g.cells[i0].Obstacle || seen[i0] {
			continue
		}
		// BFS to collect region
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.cells[queue[qi]].neighbors {
				if g.cells[v].Obstacle || seen[v] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// RegionOf returns a per-cell region label (-1 for obstacles) and the number
// of regions. Labels follow the order of OpenRegions.
func (g *Grid) RegionOf() (labels []int, count int) {
	labels = make([]int, len(g.cells))
	for i := range labels {
		labels[i] = -1
	}
	for r, region := range g.OpenRegions() {
		for _, i := range region {
			labels[i] = r
		}
		count++
	}

	return labels, count
}
