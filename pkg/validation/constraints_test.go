package validation

import (
	"testing"

	"github.com/dshills/rogueforge/pkg/geom"
	"github.com/dshills/rogueforge/pkg/model"
)

func threeRoomChain() *model.Dungeon {
	return &model.Dungeon{
		Width:  20,
		Height: 20,
		Rooms: []model.Room{
			{ID: 1, Bounds: geom.Rect{X: 0, Y: 0, Width: 3, Height: 3}, Type: model.RoomEntrance},
			{ID: 2, Bounds: geom.Rect{X: 5, Y: 0, Width: 3, Height: 3}, Type: model.RoomNormal},
			{ID: 3, Bounds: geom.Rect{X: 10, Y: 0, Width: 3, Height: 3}, Type: model.RoomExit},
		},
		Connections: []model.Connection{
			{From: 1, To: 2},
			{From: 2, To: 3},
		},
	}
}

func TestCheckConnectivity_FullyConnected(t *testing.T) {
	d := threeRoomChain()
	result := CheckConnectivity(d)
	if !result.Satisfied {
		t.Errorf("expected connectivity to be satisfied, got: %s", result.Details)
	}
}

func TestCheckConnectivity_IsolatedRoom(t *testing.T) {
	d := threeRoomChain()
	d.Rooms = append(d.Rooms, model.Room{ID: 4, Bounds: geom.Rect{X: 15, Y: 15, Width: 2, Height: 2}})
	result := CheckConnectivity(d)
	if result.Satisfied {
		t.Error("expected connectivity to fail with an isolated room")
	}
}

func TestCheckConnectivity_NoEntrance(t *testing.T) {
	d := threeRoomChain()
	d.Rooms[0].Type = model.RoomNormal
	result := CheckConnectivity(d)
	if result.Satisfied {
		t.Error("expected connectivity to fail with no entrance room")
	}
}

func TestCheckNoOverlaps_Disjoint(t *testing.T) {
	d := threeRoomChain()
	result := CheckNoOverlaps(d)
	if !result.Satisfied {
		t.Errorf("expected no overlaps, got: %s", result.Details)
	}
}

func TestCheckNoOverlaps_Overlapping(t *testing.T) {
	d := threeRoomChain()
	d.Rooms[1].Bounds = geom.Rect{X: 1, Y: 1, Width: 3, Height: 3}
	result := CheckNoOverlaps(d)
	if result.Satisfied {
		t.Error("expected overlap to be detected")
	}
}

func TestCheckPathBounds_WithinBounds(t *testing.T) {
	d := threeRoomChain()
	result := CheckPathBounds(d)
	if !result.Satisfied {
		t.Errorf("expected path bounds to be satisfied, got: %s", result.Details)
	}
}

func TestCheckPathBounds_NoExit(t *testing.T) {
	d := threeRoomChain()
	d.Rooms[2].Type = model.RoomNormal
	result := CheckPathBounds(d)
	if result.Satisfied {
		t.Error("expected path bounds to fail with no exit room")
	}
}

func TestCheckBranchingFactor_ExactMatch(t *testing.T) {
	d := threeRoomChain()
	// two rooms with degree 1, one with degree 2 -> average 4/3
	result := CheckBranchingFactor(d, branchingFactor(d))
	if result.Score != 1.0 {
		t.Errorf("expected score 1.0 for exact target match, got %f", result.Score)
	}
}

func TestCheckBranchingFactor_FarFromTarget(t *testing.T) {
	d := threeRoomChain()
	result := CheckBranchingFactor(d, 100.0)
	if result.Satisfied {
		t.Error("expected branching factor far from an unreasonable target to score low")
	}
}
