package validation

import (
	"math"

	"github.com/dshills/rogueforge/pkg/connect"
	"github.com/dshills/rogueforge/pkg/generate"
	"github.com/dshills/rogueforge/pkg/model"
)

// ComputeMetrics summarizes a dungeon's structural and pacing properties.
func ComputeMetrics(d *model.Dungeon, cfg generate.Config) *Metrics {
	return &Metrics{
		BranchingFactor: branchingFactor(d),
		PathLength:      pathLength(d),
		CycleCount:      cycleCount(d),
		PacingDeviation: pacingDeviation(d, cfg),
	}
}

// pathLength returns the entrance-to-exit hop count, or 0 if either room is
// missing or no path exists.
func pathLength(d *model.Dungeon) int {
	entrance, hasEntrance := d.EntranceRoom()
	exit, hasExit := d.ExitRoom()
	if !hasEntrance || !hasExit {
		return 0
	}
	hops := connect.ShortestPathHops(d.AdjacencyGraph(), entrance.ID, exit.ID)
	if hops < 0 {
		return 0
	}
	return hops
}

// cycleCount uses the cyclomatic number of the room graph: edges minus
// nodes plus connected components. A tree (or forest) has zero cycles;
// each extra edge beyond a spanning tree closes one loop.
func cycleCount(d *model.Dungeon) int {
	if len(d.Rooms) == 0 {
		return 0
	}
	adj := d.AdjacencyGraph()
	edgeSet := map[[2]int]bool{}
	for from, neighbors := range adj {
		for to := range neighbors {
			key := [2]int{from, to}
			if from > to {
				key = [2]int{to, from}
			}
			edgeSet[key] = true
		}
	}
	components := countComponents(d, adj)
	count := len(edgeSet) - len(d.Rooms) + components
	if count < 0 {
		return 0
	}
	return count
}

func countComponents(d *model.Dungeon, adj map[int]map[int]bool) int {
	visited := make(map[int]bool, len(d.Rooms))
	components := 0
	for _, r := range d.Rooms {
		if visited[r.ID] {
			continue
		}
		components++
		queue := []int{r.ID}
		visited[r.ID] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for next := range adj[cur] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
	}
	return components
}

// pacingDeviation measures how closely each room's "difficulty" trait along
// the entrance-to-exit path tracks a linear ramp scaled by cfg.Difficulty,
// as the root-mean-squared error between expected and actual. Rooms with no
// recorded difficulty trait default to their linear progress value, so an
// un-enriched dungeon reports zero deviation rather than a misleading one.
func pacingDeviation(d *model.Dungeon, cfg generate.Config) float64 {
	entrance, hasEntrance := d.EntranceRoom()
	exit, hasExit := d.ExitRoom()
	if !hasEntrance || !hasExit {
		return 1.0
	}

	adj := d.AdjacencyGraph()
	path := shortestPathRooms(adj, entrance.ID, exit.ID)
	if len(path) < 2 {
		return 0.0
	}

	sumSquaredError := 0.0
	for i, roomID := range path {
		room, ok := d.RoomByID(roomID)
		if !ok {
			continue
		}
		progress := float64(i) / float64(len(path)-1)
		expected := progress * cfg.Difficulty
		actual := room.Trait("difficulty", expected)
		diff := expected - actual
		sumSquaredError += diff * diff
	}
	return math.Sqrt(sumSquaredError / float64(len(path)))
}

// shortestPathRooms returns the room IDs along a shortest BFS path from
// start to goal, or nil if none exists.
func shortestPathRooms(adj map[int]map[int]bool, start, goal int) []int {
	if start == goal {
		return []int{start}
	}
	prev := map[int]int{start: start}
	queue := []int{start}
	found := false
	for len(queue) > 0 && !found {
		cur := queue[0]
		queue = queue[1:]
		for next := range adj[cur] {
			if _, seen := prev[next]; seen {
				continue
			}
			prev[next] = cur
			if next == goal {
				found = true
				break
			}
			queue = append(queue, next)
		}
	}
	if _, ok := prev[goal]; !ok {
		return nil
	}
	path := []int{goal}
	for path[len(path)-1] != start {
		path = append(path, prev[path[len(path)-1]])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
