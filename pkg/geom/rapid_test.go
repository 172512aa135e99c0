package geom

import (
	"testing"

	"pgregory.net/rapid"
)

// TestProperty_BooleanGridRoundTrip checks that FromBooleanGrid(g.ToBooleanGrid())
// reproduces g's floor/wall pattern exactly, for any grid built from floor
// and wall tiles alone (the round trip is stated over that boolean view;
// door/water/lava tiles collapse to floor or wall and are excluded here).
func TestProperty_BooleanGridRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(1, 40).Draw(t, "width")
		height := rapid.IntRange(1, 40).Draw(t, "height")

		g := NewGrid(width, height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if rapid.Bool().Draw(t, "floor") {
					g.SetUnsafe(x, y, TileFloor)
				}
			}
		}

		round := FromBooleanGrid(g.ToBooleanGrid())
		if round.Width != g.Width || round.Height != g.Height {
			t.Fatalf("dimensions differ: got %dx%d, want %dx%d", round.Width, round.Height, g.Width, g.Height)
		}
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				want := g.GetCell(x, y) != TileWall
				got := round.GetCell(x, y) != TileWall
				if want != got {
					t.Fatalf("round-trip mismatch at (%d,%d): want floor=%v got floor=%v", x, y, want, got)
				}
			}
		}
	})
}
