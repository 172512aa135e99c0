package geom

// TileKind enumerates the terrain values a Grid cell can hold.
type TileKind byte

const (
	TileWall TileKind = iota
	TileFloor
	TileDoor
	TileWater
	TileLava
)

// Grid is a dense row-major byte matrix. Reads outside the bounds return
// TileWall; writes outside the bounds are a silent no-op (see SetCell).
type Grid struct {
	Width, Height int
	cells         []byte
}

// NewGrid allocates a Width*Height grid filled with TileWall.
func NewGrid(width, height int) *Grid {
	return &Grid{Width: width, Height: height, cells: make([]byte, width*height)}
}

// inBounds reports whether (x, y) is a valid cell index.
func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// GetCell returns the tile at (x, y), or TileWall if out of bounds.
func (g *Grid) GetCell(x, y int) TileKind {
	if !g.inBounds(x, y) {
		return TileWall
	}
	return TileKind(g.cells[y*g.Width+x])
}

// SetCell sets the tile at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) SetCell(x, y int, kind TileKind) {
	if !g.inBounds(x, y) {
		return
	}
	g.cells[y*g.Width+x] = byte(kind)
}

// SetUnsafe sets the tile at (x, y) without bounds checking. Callers must
// guarantee (x, y) is in range.
func (g *Grid) SetUnsafe(x, y int, kind TileKind) {
	g.cells[y*g.Width+x] = byte(kind)
}

// FillRect sets every cell in [x, x+w) x [y, y+h) to kind, clipping to the
// grid bounds.
func (g *Grid) FillRect(x, y, w, h int, kind TileKind) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			g.SetCell(x+dx, y+dy, kind)
		}
	}
}

// CountInRect counts cells of the given kind within [x, x+w) x [y, y+h).
func (g *Grid) CountInRect(x, y, w, h int, kind TileKind) int {
	count := 0
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if g.GetCell(x+dx, y+dy) == kind {
				count++
			}
		}
	}
	return count
}

// CountNeighbors4 counts cells of the given kind in the 4-connected
// neighborhood of (x, y). Out-of-bounds neighbors count as TileWall.
func (g *Grid) CountNeighbors4(x, y int, kind TileKind) int {
	count := 0
	for _, d := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		if g.GetCell(x+d[0], y+d[1]) == kind {
			count++
		}
	}
	return count
}

// CountNeighbors8 counts cells of the given kind in the 8-connected
// neighborhood of (x, y). Out-of-bounds neighbors count as TileWall.
func (g *Grid) CountNeighbors8(x, y int, kind TileKind) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.GetCell(x+dx, y+dy) == kind {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{Width: g.Width, Height: g.Height, cells: make([]byte, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Bytes returns the flat row-major terrain array backing the grid. The
// returned slice aliases the grid's storage and must not be mutated by the
// caller unless it owns the grid exclusively.
func (g *Grid) Bytes() []byte {
	return g.cells
}

// CellularStep runs one birth/death iteration of a cellular automaton and
// returns a new grid; g is not mutated. A wall cell with >= birthLimit wall
// neighbors (8-connected) stays/becomes wall; a floor cell with at most
// deathLimit wall neighbors stays floor and becomes wall above that.
func (g *Grid) CellularStep(birthLimit, deathLimit int) *Grid {
	out := NewGrid(g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			walls := g.CountNeighbors8(x, y, TileWall)
			switch g.GetCell(x, y) {
			case TileWall:
				if walls >= birthLimit {
					out.SetUnsafe(x, y, TileWall)
				} else {
					out.SetUnsafe(x, y, TileFloor)
				}
			default:
				if walls > deathLimit {
					out.SetUnsafe(x, y, TileWall)
				} else {
					out.SetUnsafe(x, y, TileFloor)
				}
			}
		}
	}
	return out
}

// ToBooleanGrid converts the grid to a boolean matrix where true means
// "not a wall". Used for region extraction and round-trip tests.
func (g *Grid) ToBooleanGrid() [][]bool {
	out := make([][]bool, g.Height)
	for y := 0; y < g.Height; y++ {
		out[y] = make([]bool, g.Width)
		for x := 0; x < g.Width; x++ {
			out[y][x] = g.GetCell(x, y) != TileWall
		}
	}
	return out
}

// FromBooleanGrid builds a Grid from a boolean matrix (true -> floor, false
// -> wall). FromBooleanGrid(g.ToBooleanGrid()) reproduces g's floor/wall
// pattern; doors/water/lava distinctions are lost since the round trip is
// stated over the boolean view.
func FromBooleanGrid(b [][]bool) *Grid {
	height := len(b)
	width := 0
	if height > 0 {
		width = len(b[0])
	}
	g := NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width && x < len(b[y]); x++ {
			if b[y][x] {
				g.SetUnsafe(x, y, TileFloor)
			}
		}
	}
	return g
}
