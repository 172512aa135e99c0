package validation

import (
	"fmt"

	"github.com/dshills/rogueforge/pkg/connect"
	"github.com/dshills/rogueforge/pkg/model"
)

// CheckConnectivity verifies every room is reachable from the entrance via
// a breadth-first search over model.Dungeon's AdjacencyGraph.
func CheckConnectivity(d *model.Dungeon) ConstraintResult {
	entrance, ok := d.EntranceRoom()
	if !ok {
		return NewHardConstraintResult("connectivity", "all rooms reachable from entrance",
			false, "dungeon has no entrance room")
	}

	ids := make([]int, 0, len(d.Rooms))
	for _, r := range d.Rooms {
		ids = append(ids, r.ID)
	}
	adj := d.AdjacencyGraph()
	if connect.IsFullyConnected(adj, entrance.ID, ids) {
		return NewHardConstraintResult("connectivity", "all rooms reachable from entrance",
			true, fmt.Sprintf("all %d rooms reachable", len(ids)))
	}
	return NewHardConstraintResult("connectivity", "all rooms reachable from entrance",
		false, "one or more rooms are unreachable from the entrance")
}

// CheckNoOverlaps verifies no two room bounds intersect.
func CheckNoOverlaps(d *model.Dungeon) ConstraintResult {
	for i := 0; i < len(d.Rooms); i++ {
		for j := i + 1; j < len(d.Rooms); j++ {
			if d.Rooms[i].Bounds.Overlaps(d.Rooms[j].Bounds) {
				return NewHardConstraintResult("no-overlaps", "room bounds do not intersect",
					false, fmt.Sprintf("room %d overlaps room %d", d.Rooms[i].ID, d.Rooms[j].ID))
			}
		}
	}
	return NewHardConstraintResult("no-overlaps", "room bounds do not intersect",
		true, "no overlapping rooms")
}

// CheckPathBounds verifies the entrance-to-exit shortest path is neither
// absent nor longer than the room count allows. A legitimate shortest path
// through a simple room graph never revisits a room, so it has at most
// len(d.Rooms)-1 hops; the check rejects only paths longer than
// len(d.Rooms) hops, which would signal a disconnected or malformed
// connectivity graph that CheckConnectivity's BFS didn't already catch
// (e.g. an exit with no recorded room membership).
func CheckPathBounds(d *model.Dungeon) ConstraintResult {
	entrance, hasEntrance := d.EntranceRoom()
	exit, hasExit := d.ExitRoom()
	if !hasEntrance || !hasExit {
		return NewHardConstraintResult("path-bounds", "entrance-to-exit path exists and is bounded",
			false, "dungeon is missing an entrance or exit room")
	}

	adj := d.AdjacencyGraph()
	hops := connect.ShortestPathHops(adj, entrance.ID, exit.ID)
	maxHops := len(d.Rooms)
	if hops < 0 {
		return NewHardConstraintResult("path-bounds", "entrance-to-exit path exists and is bounded",
			false, "no path from entrance to exit")
	}
	if hops > maxHops {
		return NewHardConstraintResult("path-bounds", "entrance-to-exit path exists and is bounded",
			false, fmt.Sprintf("path length %d exceeds room count %d", hops, maxHops))
	}
	return NewHardConstraintResult("path-bounds", "entrance-to-exit path exists and is bounded",
		true, fmt.Sprintf("path length %d within bounds", hops))
}

// CheckBranchingFactor scores how closely the dungeon's average
// connections-per-room tracks target, as a soft constraint.
func CheckBranchingFactor(d *model.Dungeon, target float64) ConstraintResult {
	actual := branchingFactor(d)
	deviation := actual - target
	if deviation < 0 {
		deviation = -deviation
	}
	denom := target
	if denom < 1.0 {
		denom = 1.0
	}
	score := 1.0 - deviation/denom
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return NewSoftConstraintResult("branching-factor", fmt.Sprintf("average connections near %.2f", target),
		score, fmt.Sprintf("actual branching factor %.2f", actual))
}

func branchingFactor(d *model.Dungeon) float64 {
	if len(d.Rooms) == 0 {
		return 0
	}
	adj := d.AdjacencyGraph()
	total := 0
	for _, neighbors := range adj {
		total += len(neighbors)
	}
	return float64(total) / float64(len(d.Rooms))
}
