package generate

import (
	"github.com/dshills/rogueforge/pkg/model"
	"github.com/dshills/rogueforge/pkg/pgen"
)

// Finalize converts the working State into the terminal model.Dungeon
// artifact, revalidating spawn positions and computing the content
// checksum.
var Finalize = pgen.Pass[*State, *model.Dungeon]{
	ID: "finalize",
	Run: func(in *State, ctx *Context) (*model.Dungeon, error) {
		d := &model.Dungeon{
			Width:       in.Grid.Width,
			Height:      in.Grid.Height,
			Terrain:     append([]byte(nil), in.Grid.Bytes()...),
			Rooms:       append([]model.Room(nil), in.Rooms...),
			Connections: append([]model.Connection(nil), in.Connections...),
			Seed:        ctx.Seed,
		}
		d.Spawns = RevalidateSpawns(in.Grid, in.Spawns, 10)
		d.Checksum = d.ComputeChecksum()
		return d, nil
	},
}
