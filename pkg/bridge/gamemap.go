package bridge

import "github.com/dshills/rogueforge/pkg/model"

// GameMapResource is the name LoadDungeon registers the map under.
// Resources registered on the world (GameMap, RNG, turn state, hierarchy
// manager) are accessed by name.
const GameMapResource = "GameMap"

// GameMap is the world-resource view of a dungeon's terrain: width, height,
// and the flat tile array. LoadDungeon aliases d.Terrain directly into
// Terrain rather than copying it — the underlying buffer is moved or
// aliased, not logically copied.
type GameMap struct {
	Width   int
	Height  int
	Terrain []byte
}

// newGameMap aliases d's terrain buffer; it does not clone it.
func newGameMap(d *model.Dungeon) *GameMap {
	return &GameMap{Width: d.Width, Height: d.Height, Terrain: d.Terrain}
}
