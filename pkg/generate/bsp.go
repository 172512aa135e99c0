package generate

import (
	"github.com/dshills/rogueforge/pkg/geom"
	"github.com/dshills/rogueforge/pkg/model"
	"github.com/dshills/rogueforge/pkg/pgen"
	"github.com/dshills/rogueforge/pkg/randstream"
)

// PartitionBSP recursively splits the grid rectangle with split ratios
// drawn uniformly from [splitRatioMin, splitRatioMax], respecting
// minRoomSize+2*roomPadding on each child. Leaves are recorded
// on the returned state for PlaceRooms to consume.
var PartitionBSP = pgen.Pass[*State, *State]{
	ID: "partition-bsp",
	Run: func(in *State, ctx *Context) (*State, error) {
		out := in.clone()
		cfg := out.Config.BSP
		stream := ctx.Streams.Layout

		root := geom.Rect{X: 0, Y: 0, Width: out.Grid.Width, Height: out.Grid.Height}
		out.leaves = partitionRect(root, cfg, stream, 0)
		return out, nil
	},
}

func partitionRect(r geom.Rect, cfg BSPConfig, stream *randstream.Stream, depth int) []geom.Rect {
	minSplit := cfg.MinRoomSize + cfg.RoomPadding*2

	if cfg.MaxDepth > 0 && depth >= cfg.MaxDepth {
		return []geom.Rect{r}
	}

	canSplitH := r.Width >= minSplit*2
	canSplitV := r.Height >= minSplit*2
	if !canSplitH && !canSplitV {
		return []geom.Rect{r}
	}

	splitHorizontal := canSplitH
	if canSplitH && canSplitV {
		splitHorizontal = stream.Bool()
	} else if !canSplitH {
		splitHorizontal = false
	}

	ratio := stream.Float64Range(cfg.SplitRatioMin, cfg.SplitRatioMax)

	var a, b geom.Rect
	if splitHorizontal {
		splitAt := int(float64(r.Width) * ratio)
		if splitAt < minSplit {
			splitAt = minSplit
		}
		if r.Width-splitAt < minSplit {
			splitAt = r.Width - minSplit
		}
		a = geom.Rect{X: r.X, Y: r.Y, Width: splitAt, Height: r.Height}
		b = geom.Rect{X: r.X + splitAt, Y: r.Y, Width: r.Width - splitAt, Height: r.Height}
	} else {
		splitAt := int(float64(r.Height) * ratio)
		if splitAt < minSplit {
			splitAt = minSplit
		}
		if r.Height-splitAt < minSplit {
			splitAt = r.Height - minSplit
		}
		a = geom.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: splitAt}
		b = geom.Rect{X: r.X, Y: r.Y + splitAt, Width: r.Width, Height: r.Height - splitAt}
	}

	leaves := partitionRect(a, cfg, stream, depth+1)
	leaves = append(leaves, partitionRect(b, cfg, stream, depth+1)...)
	return leaves
}

// PlaceRooms places, with probability roomPlacementChance, one room per
// leaf, random-sized in [minRoomSize, maxRoomSize] and constrained to fit
// within the leaf after padding.
var PlaceRooms = pgen.Pass[*State, *State]{
	ID: "place-rooms",
	Run: func(in *State, ctx *Context) (*State, error) {
		out := in.clone()
		cfg := out.Config.BSP
		stream := ctx.Streams.Rooms

		for _, leaf := range out.leaves {
			if !stream.Chance(cfg.RoomPlacementChance) {
				continue
			}

			usable := leaf.Inset(cfg.RoomPadding)
			if usable.Width < cfg.MinRoomSize || usable.Height < cfg.MinRoomSize {
				continue
			}

			maxW := cfg.MaxRoomSize
			if usable.Width < maxW {
				maxW = usable.Width
			}
			maxH := cfg.MaxRoomSize
			if usable.Height < maxH {
				maxH = usable.Height
			}

			w := stream.IntRange(cfg.MinRoomSize, maxW)
			h := stream.IntRange(cfg.MinRoomSize, maxH)

			maxX := usable.X + usable.Width - w
			maxY := usable.Y + usable.Height - h
			x := usable.X
			if maxX > usable.X {
				x = stream.IntRange(usable.X, maxX)
			}
			y := usable.Y
			if maxY > usable.Y {
				y = stream.IntRange(usable.Y, maxY)
			}

			out.Rooms = append(out.Rooms, model.Room{
				ID:     out.allocRoomID(),
				Bounds: geom.Rect{X: x, Y: y, Width: w, Height: h},
				Type:   model.RoomNormal,
				Seed:   stream.Uint64(),
			})
		}
		return out, nil
	},
}

// CarveRooms stamps every room's rectangle onto the grid as floor.
var CarveRooms = pgen.Pass[*State, *State]{
	ID: "carve-rooms",
	Run: func(in *State, ctx *Context) (*State, error) {
		out := in.clone()
		for _, r := range out.Rooms {
			out.Grid.FillRect(r.Bounds.X, r.Bounds.Y, r.Bounds.Width, r.Bounds.Height, geom.TileFloor)
		}
		return out, nil
	},
}
