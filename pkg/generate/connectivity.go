package generate

import (
	"github.com/dshills/rogueforge/pkg/connect"
	"github.com/dshills/rogueforge/pkg/model"
)

// loopChance reads the per-algorithm loop probability for extra MST edges.
func (s *State) loopChance() float64 {
	switch s.Config.Algorithm {
	case AlgorithmCellular:
		return s.Config.Cellular.LoopChance
	default:
		return s.Config.BSP.LoopChance
	}
}

func (s *State) corridorWidth() int {
	switch s.Config.Algorithm {
	case AlgorithmCellular:
		return s.Config.Cellular.CorridorWidth
	default:
		return s.Config.BSP.CorridorWidth
	}
}

// BuildConnectivity constructs the complete weighted room graph, computes
// an MST via Kruskal with union-find, and adds extra loop edges, recording
// the result as unwalled Connections on the state (paths are carved by
// CarveCorridors).
var BuildConnectivity = Pass("build-connectivity", func(in *State, ctx *Context) (*State, error) {
	out := in.clone()
	if len(out.Rooms) < 2 {
		return out, nil
	}

	result := connect.BuildConnectivity(out.Rooms, out.loopChance(), ctx.Streams.Connections)

	addEdge := func(e connect.Edge) {
		out.Connections = append(out.Connections, model.Connection{From: e.A, To: e.B})
	}
	for _, e := range result.MST {
		addEdge(e)
	}
	for _, e := range result.Extra {
		addEdge(e)
	}
	return out, nil
})

// AssignRoomTypes makes the first room the entrance and the room farthest
// from it in hops over the recorded connections the exit; every other room
// becomes treasure with probability 0.1 and normal otherwise. No room ends
// the pass as RoomBoss: the exit's provisional boss type is replaced by
// RoomExit.
var AssignRoomTypes = Pass("assign-room-types", func(in *State, ctx *Context) (*State, error) {
	out := in.clone()
	if len(out.Rooms) == 0 {
		return out, nil
	}

	adj := make(map[int]map[int]bool)
	for _, c := range out.Connections {
		if adj[c.From] == nil {
			adj[c.From] = map[int]bool{}
		}
		if adj[c.To] == nil {
			adj[c.To] = map[int]bool{}
		}
		adj[c.From][c.To] = true
		adj[c.To][c.From] = true
	}

	entranceIdx, exitIdx := 0, 0
	if len(out.Rooms) > 1 {
		bestHops := -1
		for i := range out.Rooms {
			hops := connect.ShortestPathHops(adj, out.Rooms[0].ID, out.Rooms[i].ID)
			if hops > bestHops {
				bestHops = hops
				exitIdx = i
			}
		}
	}

	stream := ctx.Streams.Rooms
	for i := range out.Rooms {
		switch {
		case i == entranceIdx:
			out.Rooms[i].Type = model.RoomEntrance
		case i == exitIdx && exitIdx != entranceIdx:
			out.Rooms[i].Type = model.RoomBoss
		default:
			if stream.Chance(0.1) {
				out.Rooms[i].Type = model.RoomTreasure
			} else {
				out.Rooms[i].Type = model.RoomNormal
			}
		}
	}

	// The exit is the room farthest from the entrance along the adjacency
	// graph; it always gets RoomExit semantics for spawn purposes even
	// though it was seeded as a boss encounter above.
	if exitIdx != entranceIdx && exitIdx < len(out.Rooms) {
		out.Rooms[exitIdx].Type = model.RoomExit
	}

	return out, nil
})
