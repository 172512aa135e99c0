package generate

import (
	"github.com/dshills/rogueforge/pkg/geom"
	"github.com/dshills/rogueforge/pkg/model"
	"github.com/dshills/rogueforge/pkg/pgen"
)

// Context re-exports pgen.Context so generator pass files don't need a
// separate import just to name the parameter type.
type Context = pgen.Context

// State is the working artifact threaded through a generator's passes:
// Empty -> State -> ... -> State -> Dungeon. Every pass takes a
// State and returns a new State; Grid is replaced wholesale rather than
// mutated in place to honor the "a pass must never mutate its input" rule,
// at the cost of a clone per pass — acceptable at dungeon-sized grids.
type State struct {
	Config      Config
	Grid        *geom.Grid
	Rooms       []model.Room
	Connections []model.Connection
	Spawns      []model.SpawnDescriptor
	nextRoomID  int

	// leaves holds BSP partition leaves awaiting room placement.
	leaves []geom.Rect

	// zones holds hybrid-generator zone assignments between SplitZones and
	// GenerateZones.
	zones []hybridZone
}

// hybridZone is a sub-rectangle of a hybrid-mode dungeon dispatched to
// either the BSP or the cellular sub-generator.
type hybridZone struct {
	bounds geom.Rect
	kind   zoneKind
}

// Info satisfies pgen.Introspectable.
func (s *State) Info() pgen.ArtifactInfo {
	floor := 0
	var terrain []byte
	if s.Grid != nil {
		terrain = s.Grid.Bytes()
		for _, t := range terrain {
			if geom.TileKind(t) == geom.TileFloor {
				floor++
			}
		}
	}
	ratio := 0.0
	if len(terrain) > 0 {
		ratio = float64(floor) / float64(len(terrain))
	}
	return pgen.ArtifactInfo{
		RoomCount:       len(s.Rooms),
		ConnectionCount: len(s.Connections),
		SpawnCount:      len(s.Spawns),
		FloorRatio:      ratio,
		Terrain:         append([]byte(nil), terrain...),
	}
}

func (s *State) clone() *State {
	ns := *s
	ns.Grid = s.Grid.Clone()
	ns.Rooms = append([]model.Room(nil), s.Rooms...)
	ns.Connections = append([]model.Connection(nil), s.Connections...)
	ns.Spawns = append([]model.SpawnDescriptor(nil), s.Spawns...)
	ns.leaves = append([]geom.Rect(nil), s.leaves...)
	ns.zones = append([]hybridZone(nil), s.zones...)
	return &ns
}

func (s *State) allocRoomID() int {
	id := s.nextRoomID
	s.nextRoomID++
	return id
}

// Pass is a small constructor so generator pass files can declare passes
// as package-level values (ID, Run) -> pgen.Pass[*State, *State] without
// repeating the struct literal's field names at every call site.
func Pass(id string, run func(in *State, ctx *Context) (*State, error)) pgen.Pass[*State, *State] {
	return pgen.Pass[*State, *State]{ID: id, Run: run}
}
