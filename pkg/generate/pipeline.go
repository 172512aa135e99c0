package generate

import (
	"github.com/dshills/rogueforge/pkg/model"
	"github.com/dshills/rogueforge/pkg/pgen"
)

// BSPPipeline returns the BSP generator's pass sequence: initialize-state
// -> partition-BSP -> place-rooms -> build-connectivity -> assign-room-types
// -> carve-rooms -> carve-corridors -> calculate-spawns -> finalize.
func BSPPipeline() *pgen.Builder[Config, *model.Dungeon] {
	b0 := pgen.NewPipeline[Config]("bsp")
	b1 := pgen.Pipe(b0, pgen.Pass[Config, *State]{ID: "initialize-state", Run: func(in Config, ctx *Context) (*State, error) {
		return InitState(in), nil
	}})
	b2 := pgen.Pipe(b1, PartitionBSP)
	b3 := pgen.Pipe(b2, PlaceRooms)
	b4 := pgen.Pipe(b3, BuildConnectivity)
	b5 := pgen.Pipe(b4, AssignRoomTypes)
	b6 := pgen.Pipe(b5, CarveRooms)
	b7 := pgen.Pipe(b6, CarveCorridors)
	b8 := pgen.Pipe(b7, CalculateSpawns)
	return pgen.Pipe(b8, Finalize)
}

// CellularPipeline returns the cellular-automaton generator's pass
// sequence.
func CellularPipeline() *pgen.Builder[Config, *model.Dungeon] {
	b0 := pgen.NewPipeline[Config]("cellular")
	b1 := pgen.Pipe(b0, pgen.Pass[Config, *State]{ID: "initialize-state", Run: func(in Config, ctx *Context) (*State, error) {
		return InitState(in), nil
	}})
	b2 := pgen.Pipe(b1, FillCellular)
	b3 := pgen.Pipe(b2, SimulateCellular)
	b4 := pgen.Pipe(b3, ExtractRegions)
	b5 := pgen.Pipe(b4, BuildConnectivity)
	b6 := pgen.Pipe(b5, AssignRoomTypes)
	b7 := pgen.Pipe(b6, CarveCorridors)
	b8 := pgen.Pipe(b7, CalculateSpawns)
	return pgen.Pipe(b8, Finalize)
}

// HybridPipeline returns the hybrid generator's pass sequence: zone split,
// per-zone dispatch to BSP or cellular sub-passes, then a shared
// connectivity/carving/spawn tail.
func HybridPipeline() *pgen.Builder[Config, *model.Dungeon] {
	b0 := pgen.NewPipeline[Config]("hybrid")
	b1 := pgen.Pipe(b0, pgen.Pass[Config, *State]{ID: "initialize-state", Run: func(in Config, ctx *Context) (*State, error) {
		return InitState(in), nil
	}})
	b2 := pgen.Pipe(b1, SplitZones)
	b3 := pgen.Pipe(b2, GenerateZones)
	b4 := pgen.Pipe(b3, StitchZones)
	b5 := pgen.Pipe(b4, BuildConnectivity)
	b6 := pgen.Pipe(b5, AssignRoomTypes)
	b7 := pgen.Pipe(b6, CarveCorridors)
	b8 := pgen.Pipe(b7, CalculateSpawns)
	return pgen.Pipe(b8, Finalize)
}
