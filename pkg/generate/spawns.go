package generate

import (
	"github.com/dshills/rogueforge/pkg/geom"
	"github.com/dshills/rogueforge/pkg/model"
	"github.com/dshills/rogueforge/pkg/randstream"
)

// CalculateSpawns derives a raw spawn set: one entrance spawn and one exit
// spawn at their rooms' centroids, plus generic spawns scattered across
// other rooms scaled by enemyDensity.
// In the BSP pipeline positions land on floor tiles because CarveRooms
// has carved every room. Cellular and hybrid rooms are region bounding
// boxes, so a position there can be a wall tile; Finalize's
// RevalidateSpawns relocates or drops such spawns.
var CalculateSpawns = Pass("calculate-spawns", func(in *State, ctx *Context) (*State, error) {
	out := in.clone()
	stream := ctx.Streams.Details
	density := out.Config.Content.EnemyDensity

	for _, r := range out.Rooms {
		center := r.Centroid()
		switch r.Type {
		case model.RoomEntrance:
			out.Spawns = append(out.Spawns, model.SpawnDescriptor{
				Position: center, RoomID: r.ID, Type: model.SpawnEntrance, Weight: 1,
			})
			continue
		case model.RoomExit:
			out.Spawns = append(out.Spawns, model.SpawnDescriptor{
				Position: center, RoomID: r.ID, Type: model.SpawnExit, Weight: 1,
			})
			continue
		}

		area := r.Bounds.Width * r.Bounds.Height
		count := int(float64(area) * density * 0.05)
		for i := 0; i < count; i++ {
			p := randomFloorInRoom(out.Grid, r.Bounds, stream)
			out.Spawns = append(out.Spawns, model.SpawnDescriptor{
				Position: p,
				RoomID:   r.ID,
				Type:     model.SpawnGeneric,
				Weight:   stream.Float64Range(0.2, 1.0),
			})
		}
	}
	return out, nil
})

func randomFloorInRoom(grid *geom.Grid, bounds geom.Rect, stream *randstream.Stream) geom.Point {
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return geom.Point{X: bounds.X, Y: bounds.Y}
	}
	for attempt := 0; attempt < 8; attempt++ {
		x := stream.IntRange(bounds.X, bounds.X+bounds.Width-1)
		y := stream.IntRange(bounds.Y, bounds.Y+bounds.Height-1)
		if grid.GetCell(x, y) == geom.TileFloor {
			return geom.Point{X: x, Y: y}
		}
	}
	return bounds.Centroid()
}

// RevalidateSpawns relocates any spawn whose position is not a floor tile
// to the nearest floor cell within radius, or drops it if none is found.
func RevalidateSpawns(grid *geom.Grid, spawns []model.SpawnDescriptor, radius int) []model.SpawnDescriptor {
	out := make([]model.SpawnDescriptor, 0, len(spawns))
	for _, s := range spawns {
		if grid.GetCell(s.Position.X, s.Position.Y) == geom.TileFloor {
			out = append(out, s)
			continue
		}
		if p, ok := nearestFloor(grid, s.Position, radius); ok {
			s.Position = p
			out = append(out, s)
		}
		// else: dropped
	}
	return out
}

func nearestFloor(grid *geom.Grid, from geom.Point, radius int) (geom.Point, bool) {
	for r := 1; r <= radius; r++ {
		for dx := -r; dx <= r; dx++ {
			for dy := -r; dy <= r; dy++ {
				if absInt(dx) != r && absInt(dy) != r {
					continue // only scan the ring's perimeter at this radius
				}
				p := geom.Point{X: from.X + dx, Y: from.Y + dy}
				if grid.GetCell(p.X, p.Y) == geom.TileFloor {
					return p, true
				}
			}
		}
	}
	return geom.Point{}, false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
