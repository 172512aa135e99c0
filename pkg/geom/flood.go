package geom

// Region describes a maximal connected set of cells discovered by flood
// fill or FindRegions.
type Region struct {
	ID     int
	Cells  []Point
	Bounds Rect
}

// FloodFill performs a 4- or 8-connected flood fill starting at (x, y),
// visiting cells for which match returns true, writing fillValue into grid
// for each visited cell, and stopping once maxSize cells have been visited
// (0 means unbounded). It returns the visited cells.
func FloodFill(g *Grid, x, y int, match func(TileKind) bool, fillValue TileKind, eightConnected bool, maxSize int) []Point {
	if !g.inBounds(x, y) || !match(g.GetCell(x, y)) {
		return nil
	}

	visited := make(map[int]bool)
	var order []Point
	stack := []Point{{X: x, Y: y}}

	neighbors := neighbors4
	if eightConnected {
		neighbors = neighbors8
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx := p.Y*g.Width + p.X
		if visited[idx] {
			continue
		}
		if !g.inBounds(p.X, p.Y) || !match(g.GetCell(p.X, p.Y)) {
			continue
		}
		visited[idx] = true
		order = append(order, p)
		g.SetUnsafe(p.X, p.Y, fillValue)

		if maxSize > 0 && len(order) >= maxSize {
			break
		}

		for _, d := range neighbors {
			stack = append(stack, Point{X: p.X + d[0], Y: p.Y + d[1]})
		}
	}

	return order
}

// FloodFillScanline is a scanline variant of FloodFill for 4-connectivity,
// faster on large open areas. Semantics (matched cells, fillValue, maxSize)
// match FloodFill.
func FloodFillScanline(g *Grid, x, y int, match func(TileKind) bool, fillValue TileKind, maxSize int) []Point {
	if !g.inBounds(x, y) || !match(g.GetCell(x, y)) {
		return nil
	}

	var order []Point
	type span struct{ x, y int }
	stack := []span{{x, y}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !g.inBounds(s.x, s.y) || !match(g.GetCell(s.x, s.y)) {
			continue
		}

		// Walk left to find the start of the run.
		lx := s.x
		for lx-1 >= 0 && match(g.GetCell(lx-1, s.y)) {
			lx--
		}
		rx := s.x
		for rx+1 < g.Width && match(g.GetCell(rx+1, s.y)) {
			rx++
		}

		aboveSeeded, belowSeeded := false, false
		for cx := lx; cx <= rx; cx++ {
			if g.GetCell(cx, s.y) != fillValue && match(g.GetCell(cx, s.y)) {
				g.SetUnsafe(cx, s.y, fillValue)
				order = append(order, Point{X: cx, Y: s.y})
				if maxSize > 0 && len(order) >= maxSize {
					return order
				}
			}

			if s.y > 0 {
				above := match(g.GetCell(cx, s.y-1))
				if above && !aboveSeeded {
					stack = append(stack, span{cx, s.y - 1})
					aboveSeeded = true
				} else if !above {
					aboveSeeded = false
				}
			}
			if s.y < g.Height-1 {
				below := match(g.GetCell(cx, s.y+1))
				if below && !belowSeeded {
					stack = append(stack, span{cx, s.y + 1})
					belowSeeded = true
				} else if !below {
					belowSeeded = false
				}
			}
		}
	}

	return order
}

var neighbors4 = [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
var neighbors8 = [][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// FindRegions returns every maximal connected region of cells matching
// match, using the requested connectivity. The source grid is not mutated:
// region discovery runs on an internal visited bitmap.
func FindRegions(g *Grid, match func(TileKind) bool, eightConnected bool) []Region {
	visited := NewBitGrid(g.Width, g.Height)
	var regions []Region
	nextID := 0

	neighbors := neighbors4
	if eightConnected {
		neighbors = neighbors8
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if visited.Get(x, y) || !match(g.GetCell(x, y)) {
				continue
			}

			var cells []Point
			minX, minY, maxX, maxY := x, y, x, y
			stack := []Point{{X: x, Y: y}}
			visited.Set(x, y)

			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				cells = append(cells, p)
				if p.X < minX {
					minX = p.X
				}
				if p.X > maxX {
					maxX = p.X
				}
				if p.Y < minY {
					minY = p.Y
				}
				if p.Y > maxY {
					maxY = p.Y
				}

				for _, d := range neighbors {
					nx, ny := p.X+d[0], p.Y+d[1]
					if !g.inBounds(nx, ny) || visited.Get(nx, ny) || !match(g.GetCell(nx, ny)) {
						continue
					}
					visited.Set(nx, ny)
					stack = append(stack, Point{X: nx, Y: ny})
				}
			}

			regions = append(regions, Region{
				ID:    nextID,
				Cells: cells,
				Bounds: Rect{
					X: minX, Y: minY,
					Width:  maxX - minX + 1,
					Height: maxY - minY + 1,
				},
			})
			nextID++
		}
	}

	return regions
}

// IsConnected reports whether every cell matching match is reachable from
// (startX, startY) under the requested connectivity.
func IsConnected(g *Grid, startX, startY int, match func(TileKind) bool, eightConnected bool) bool {
	total := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if match(g.GetCell(x, y)) {
				total++
			}
		}
	}
	if total == 0 {
		return true
	}

	scratch := g.Clone()
	visited := FloodFill(scratch, startX, startY, match, TileKind(255), eightConnected, 0)
	return len(visited) == total
}
