package generate

import (
	"github.com/dshills/rogueforge/pkg/connect"
	"github.com/dshills/rogueforge/pkg/model"
)

// corridorStyleFor picks a deterministic carving style per connection index,
// cycling through the four styles so a single dungeon exercises all of
// them rather than defaulting to one uniformly.
func corridorStyleFor(i int) model.CorridorStyle {
	switch i % 4 {
	case 0:
		return model.StyleLShaped
	case 1:
		return model.StyleBresenham
	case 2:
		return model.StyleAStar
	default:
		return model.StyleBranching
	}
}

// CarveCorridors lowers every connection's room-pair edge to a grid path
// using one of the four corridor styles, widens it, stamps it onto the
// grid, then runs crossing detection to record implicit connections.
var CarveCorridors = Pass("carve-corridors", func(in *State, ctx *Context) (*State, error) {
	out := in.clone()
	width := out.corridorWidth()
	stream := ctx.Streams.Connections

	roomByID := make(map[int]model.Room, len(out.Rooms))
	for _, r := range out.Rooms {
		roomByID[r.ID] = r
	}

	carved := make([]model.Connection, 0, len(out.Connections))
	for i, c := range out.Connections {
		from, ok1 := roomByID[c.From]
		to, ok2 := roomByID[c.To]
		if !ok1 || !ok2 {
			continue
		}
		style := corridorStyleFor(i)
		full := connect.Carve(out.Grid, from, to, style, width, stream)
		connect.Apply(out.Grid, full)
		carved = append(carved, full)
	}
	out.Connections = carved

	implicit := connect.DetectCrossings(out.Connections)
	out.Connections = append(out.Connections, implicit...)

	return out, nil
})
