package generate

import (
	"github.com/dshills/rogueforge/pkg/geom"
	"github.com/dshills/rogueforge/pkg/model"
)

// FillCellular fills the grid at initialFillRatio with walls (and the
// complement with floor), per-cell Bernoulli draws from the layout stream.
var FillCellular = Pass("fill-cellular", func(in *State, ctx *Context) (*State, error) {
	out := in.clone()
	stream := ctx.Streams.Layout
	ratio := out.Config.Cellular.InitialFillRatio

	for y := 0; y < out.Grid.Height; y++ {
		for x := 0; x < out.Grid.Width; x++ {
			if stream.Chance(ratio) {
				out.Grid.SetUnsafe(x, y, geom.TileWall)
			} else {
				out.Grid.SetUnsafe(x, y, geom.TileFloor)
			}
		}
	}
	return out, nil
})

// SimulateCellular runs `iterations` birth/death automaton steps with the
// configured thresholds over 8-neighborhoods.
var SimulateCellular = Pass("simulate-cellular", func(in *State, ctx *Context) (*State, error) {
	out := in.clone()
	cfg := out.Config.Cellular
	grid := out.Grid
	for i := 0; i < cfg.Iterations; i++ {
		grid = grid.CellularStep(cfg.BirthLimit, cfg.DeathLimit)
	}
	out.Grid = grid
	return out, nil
})

// ExtractRegions finds connected floor regions, drops those smaller than
// minRegionSize, and either keeps only the largest or forces connectivity
// on the rest depending on connectAllRegions. Any region below
// minRegionSize is re-filled as wall rather than left floor-but-unreachable.
var ExtractRegions = Pass("extract-regions", func(in *State, ctx *Context) (*State, error) {
	out := in.clone()
	cfg := out.Config.Cellular

	regions := geom.FindRegions(out.Grid, func(k geom.TileKind) bool { return k == geom.TileFloor }, true)

	var kept []geom.Region
	for _, r := range regions {
		if len(r.Cells) >= cfg.MinRegionSize {
			kept = append(kept, r)
		} else {
			for _, c := range r.Cells {
				out.Grid.SetCell(c.X, c.Y, geom.TileWall)
			}
		}
	}

	if len(kept) == 0 {
		return out, nil
	}

	if !cfg.ConnectAllRegions {
		largest := kept[0]
		for _, r := range kept[1:] {
			if len(r.Cells) > len(largest.Cells) {
				largest = r
			}
		}
		for _, r := range kept {
			if r.ID == largest.ID {
				continue
			}
			for _, c := range r.Cells {
				out.Grid.SetCell(c.X, c.Y, geom.TileWall)
			}
		}
		kept = []geom.Region{largest}
	}

	for _, r := range kept {
		out.Rooms = append(out.Rooms, model.Room{
			ID:     out.allocRoomID(),
			Bounds: r.Bounds,
			Type:   model.RoomCavern,
			Seed:   ctx.Streams.Rooms.Uint64(),
		})
	}
	return out, nil
})
