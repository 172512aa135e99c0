package connect

import (
	"container/heap"

	"github.com/dshills/rogueforge/pkg/geom"
	"github.com/dshills/rogueforge/pkg/model"
	"github.com/dshills/rogueforge/pkg/randstream"
)

const (
	astarFloorCost = 1
	astarWallCost  = 4
)

// drawLine is Bresenham's algorithm, accumulating cells instead of writing
// directly into a tile buffer, so the caller can carve and widen in one
// pass.
func drawLine(x0, y0, x1, y1 int) []geom.Point {
	var points []geom.Point
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		points = append(points, geom.Point{X: x0, Y: y0})
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
	return points
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// carveLShaped draws one horizontal then one vertical segment (or vice
// versa, chosen by the stream) between two points.
func carveLShaped(from, to geom.Point, stream *randstream.Stream) []geom.Point {
	var corner geom.Point
	if stream.Bool() {
		corner = geom.Point{X: to.X, Y: from.Y}
	} else {
		corner = geom.Point{X: from.X, Y: to.Y}
	}
	pts := drawLine(from.X, from.Y, corner.X, corner.Y)
	pts = append(pts, drawLine(corner.X, corner.Y, to.X, to.Y)...)
	return dedupe(pts)
}

func carveBresenham(from, to geom.Point) []geom.Point {
	return drawLine(from.X, from.Y, to.X, to.Y)
}

// carveBranching carves an L-shape then adds perpendicular branches at
// probabilistic anchors along the path.
func carveBranching(from, to geom.Point, branchChance float64, branchLen int, stream *randstream.Stream) []geom.Point {
	base := carveLShaped(from, to, stream)
	out := append([]geom.Point(nil), base...)
	for _, p := range base {
		if !stream.Chance(branchChance) {
			continue
		}
		horizontal := stream.Bool()
		dir := 1
		if stream.Bool() {
			dir = -1
		}
		if horizontal {
			out = append(out, drawLine(p.X, p.Y, p.X+dir*branchLen, p.Y)...)
		} else {
			out = append(out, drawLine(p.X, p.Y, p.X, p.Y+dir*branchLen)...)
		}
	}
	return dedupe(out)
}

type astarNode struct {
	p        geom.Point
	priority int
	index    int
}

type astarQueue []*astarNode

func (q astarQueue) Len() int            { return len(q) }
func (q astarQueue) Less(i, j int) bool  { return q[i].priority < q[j].priority }
func (q astarQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i]; q[i].index = i; q[j].index = j }
func (q *astarQueue) Push(x interface{}) { n := x.(*astarNode); n.index = len(*q); *q = append(*q, n) }
func (q *astarQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// carveAStar weights the search toward existing floor using astarFloorCost
// versus astarWallCost, with deterministic 4-neighborhood expansion ordered
// toward the goal.
func carveAStar(grid *geom.Grid, from, to geom.Point) []geom.Point {
	type key struct{ x, y int }
	start := key{from.X, from.Y}
	goal := key{to.X, to.Y}

	heuristic := func(k key) int { return absInt(k.x-goal.x) + absInt(k.y-goal.y) }

	gScore := map[key]int{start: 0}
	cameFrom := map[key]key{}
	visited := map[key]bool{}

	pq := &astarQueue{{p: geom.Point{X: from.X, Y: from.Y}, priority: heuristic(start)}}
	heap.Init(pq)

	dirs := []key{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*astarNode)
		ck := key{cur.p.X, cur.p.Y}
		if ck == goal {
			break
		}
		if visited[ck] {
			continue
		}
		visited[ck] = true

		for _, d := range dirs {
			nk := key{ck.x + d.x, ck.y + d.y}
			cost := astarWallCost
			if grid.GetCell(nk.x, nk.y) == geom.TileFloor {
				cost = astarFloorCost
			}
			tentative := gScore[ck] + cost
			if existing, ok := gScore[nk]; !ok || tentative < existing {
				gScore[nk] = tentative
				cameFrom[nk] = ck
				heap.Push(pq, &astarNode{p: geom.Point{X: nk.x, Y: nk.y}, priority: tentative + heuristic(nk)})
			}
		}
	}

	if _, ok := cameFrom[goal]; !ok && start != goal {
		return carveBresenham(from, to)
	}

	var path []geom.Point
	cur := goal
	for cur != start {
		path = append([]geom.Point{{X: cur.x, Y: cur.y}}, path...)
		prev, ok := cameFrom[cur]
		if !ok {
			return carveBresenham(from, to)
		}
		cur = prev
	}
	path = append([]geom.Point{from}, path...)
	return path
}

func dedupe(points []geom.Point) []geom.Point {
	seen := make(map[geom.Point]bool, len(points))
	out := points[:0]
	for _, p := range points {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// Carve lowers a connection's edge to a grid path using the requested
// style, widens it symmetrically, and clips to grid bounds. It does not
// mutate grid; callers stamp the returned connection's path onto a grid
// separately via Apply.
func Carve(grid *geom.Grid, from, to model.Room, style model.CorridorStyle, width int, stream *randstream.Stream) model.Connection {
	a, b := from.Centroid(), to.Centroid()

	var path []geom.Point
	switch style {
	case model.StyleLShaped:
		path = carveLShaped(a, b, stream)
	case model.StyleBresenham:
		path = carveBresenham(a, b)
	case model.StyleAStar:
		path = carveAStar(grid, a, b)
	case model.StyleBranching:
		path = carveBranching(a, b, 0.12, 3, stream)
	default:
		path = carveLShaped(a, b, stream)
	}

	return model.Connection{
		From:  from.ID,
		To:    to.ID,
		Path:  widen(path, width, grid.Width, grid.Height),
		Style: style,
		Width: width,
	}
}

// widen applies symmetric width around each path cell and clips to bounds.
func widen(path []geom.Point, width, gw, gh int) []geom.Point {
	if width <= 1 {
		return clip(path, gw, gh)
	}
	half := width / 2
	var out []geom.Point
	for _, p := range path {
		for dx := -half; dx <= half; dx++ {
			for dy := -half; dy <= half; dy++ {
				out = append(out, geom.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return clip(dedupe(out), gw, gh)
}

func clip(points []geom.Point, gw, gh int) []geom.Point {
	out := points[:0]
	for _, p := range points {
		if p.X >= 0 && p.X < gw && p.Y >= 0 && p.Y < gh {
			out = append(out, p)
		}
	}
	return out
}

// Apply stamps a connection's path onto the grid as floor.
func Apply(grid *geom.Grid, c model.Connection) {
	for _, p := range c.Path {
		grid.SetCell(p.X, p.Y, geom.TileFloor)
	}
}
