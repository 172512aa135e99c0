package generate

import (
	"github.com/dshills/rogueforge/pkg/geom"
	"github.com/dshills/rogueforge/pkg/model"
)

// zoneKind selects which sub-generator a hybrid zone dispatches to.
type zoneKind int

const (
	zoneBSP zoneKind = iota
	zoneCellular
)

// SplitZones divides the map into a 2x2 grid of zones and assigns each a
// generator kind by alternating BSP and cellular, giving the hybrid
// generator a deterministic, inspectable zone layout.
var SplitZones = Pass("split-zones", func(in *State, ctx *Context) (*State, error) {
	out := in.clone()

	halfW := out.Grid.Width / 2
	halfH := out.Grid.Height / 2

	out.zones = []hybridZone{
		{bounds: geom.Rect{X: 0, Y: 0, Width: halfW, Height: halfH}, kind: zoneBSP},
		{bounds: geom.Rect{X: halfW, Y: 0, Width: out.Grid.Width - halfW, Height: halfH}, kind: zoneCellular},
		{bounds: geom.Rect{X: 0, Y: halfH, Width: halfW, Height: out.Grid.Height - halfH}, kind: zoneCellular},
		{bounds: geom.Rect{X: halfW, Y: halfH, Width: out.Grid.Width - halfW, Height: out.Grid.Height - halfH}, kind: zoneBSP},
	}
	return out, nil
})

// GenerateZones dispatches each zone's sub-rectangle to a BSP or cellular
// leaf-level generator, translating the sub-grid's rooms back into dungeon
// space.
var GenerateZones = Pass("generate-zones", func(in *State, ctx *Context) (*State, error) {
	out := in.clone()

	for _, z := range out.zones {
		switch z.kind {
		case zoneBSP:
			zoneGenerateBSP(out, z.bounds, ctx)
		case zoneCellular:
			zoneGenerateCellular(out, z.bounds, ctx)
		}
	}
	return out, nil
})

func zoneGenerateBSP(out *State, bounds geom.Rect, ctx *Context) {
	cfg := out.Config.BSP
	leaves := partitionRect(bounds, cfg, ctx.Streams.Layout, 0)
	for _, leaf := range leaves {
		if !ctx.Streams.Rooms.Chance(cfg.RoomPlacementChance) {
			continue
		}
		usable := leaf.Inset(cfg.RoomPadding)
		if usable.Width < cfg.MinRoomSize || usable.Height < cfg.MinRoomSize {
			continue
		}
		w := clampInt(ctx.Streams.Rooms.IntRange(cfg.MinRoomSize, cfg.MaxRoomSize), cfg.MinRoomSize, usable.Width)
		h := clampInt(ctx.Streams.Rooms.IntRange(cfg.MinRoomSize, cfg.MaxRoomSize), cfg.MinRoomSize, usable.Height)
		room := model.Room{
			ID:     out.allocRoomID(),
			Bounds: geom.Rect{X: usable.X, Y: usable.Y, Width: w, Height: h},
			Type:   model.RoomNormal,
			Seed:   ctx.Streams.Rooms.Uint64(),
		}
		out.Grid.FillRect(room.Bounds.X, room.Bounds.Y, room.Bounds.Width, room.Bounds.Height, geom.TileFloor)
		out.Rooms = append(out.Rooms, room)
	}
}

func zoneGenerateCellular(out *State, bounds geom.Rect, ctx *Context) {
	cfg := out.Config.Cellular
	sub := geom.NewGrid(bounds.Width, bounds.Height)
	for y := 0; y < bounds.Height; y++ {
		for x := 0; x < bounds.Width; x++ {
			if ctx.Streams.Layout.Chance(cfg.InitialFillRatio) {
				sub.SetUnsafe(x, y, geom.TileWall)
			} else {
				sub.SetUnsafe(x, y, geom.TileFloor)
			}
		}
	}
	for i := 0; i < cfg.Iterations; i++ {
		sub = sub.CellularStep(cfg.BirthLimit, cfg.DeathLimit)
	}

	regions := geom.FindRegions(sub, func(k geom.TileKind) bool { return k == geom.TileFloor }, true)
	for _, r := range regions {
		if len(r.Cells) < cfg.MinRegionSize {
			continue
		}
		for _, c := range r.Cells {
			out.Grid.SetCell(bounds.X+c.X, bounds.Y+c.Y, geom.TileFloor)
		}
		out.Rooms = append(out.Rooms, model.Room{
			ID: out.allocRoomID(),
			Bounds: geom.Rect{
				X: bounds.X + r.Bounds.X, Y: bounds.Y + r.Bounds.Y,
				Width: r.Bounds.Width, Height: r.Bounds.Height,
			},
			Type: model.RoomCavern,
			Seed: ctx.Streams.Rooms.Uint64(),
		})
	}
}

// StitchZones is a structural marker pass: zone boundary stitching happens
// implicitly because BuildConnectivity/CarveCorridors run over the combined
// room set afterward, connecting across zone boundaries the same way they
// connect within a zone.
var StitchZones = Pass("stitch-zones", func(in *State, ctx *Context) (*State, error) {
	out := in.clone()
	out.zones = nil
	return out, nil
})

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
