package model

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sort"

	"github.com/dshills/rogueforge/pkg/geom"
	"github.com/dshills/rogueforge/pkg/pgen"
	"github.com/dshills/rogueforge/pkg/randstream"
)

// Dungeon is the terminal artifact of the generation pipeline: dimensions,
// terrain, rooms, connections, derived spawn descriptors, the seed bundle
// that produced it, and a content checksum.
type Dungeon struct {
	Width       int
	Height      int
	Terrain     []byte // flat, row-major, values from geom.TileKind
	Rooms       []Room
	Connections []Connection
	Spawns      []SpawnDescriptor
	Seed        randstream.SeedBundle
	Checksum    string
}

// Info satisfies pgen.Introspectable so a Dungeon (or any pass artifact
// wrapping one) can be snapshotted and measured without pgen importing this
// package.
func (d *Dungeon) Info() pgen.ArtifactInfo {
	floor := 0
	for _, t := range d.Terrain {
		if geom.TileKind(t) == geom.TileFloor {
			floor++
		}
	}
	ratio := 0.0
	if len(d.Terrain) > 0 {
		ratio = float64(floor) / float64(len(d.Terrain))
	}
	return pgen.ArtifactInfo{
		RoomCount:       len(d.Rooms),
		ConnectionCount: len(d.Connections),
		SpawnCount:      len(d.Spawns),
		FloorRatio:      ratio,
		Terrain:         append([]byte(nil), d.Terrain...),
	}
}

// Grid returns the terrain as a *geom.Grid for algorithms that operate on
// the grid abstraction rather than the raw byte slice.
func (d *Dungeon) Grid() *geom.Grid {
	g := geom.NewGrid(d.Width, d.Height)
	copy(g.Bytes(), d.Terrain)
	return g
}

// RoomByID returns the room with the given identifier, or false if absent.
func (d *Dungeon) RoomByID(id int) (Room, bool) {
	for _, r := range d.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

// EntranceRoom returns the first room of type RoomEntrance, or false if none.
func (d *Dungeon) EntranceRoom() (Room, bool) {
	for _, r := range d.Rooms {
		if r.Type == RoomEntrance {
			return r, true
		}
	}
	return Room{}, false
}

// ExitRoom returns the first room of type RoomExit, or false if none.
func (d *Dungeon) ExitRoom() (Room, bool) {
	for _, r := range d.Rooms {
		if r.Type == RoomExit {
			return r, true
		}
	}
	return Room{}, false
}

// AdjacencyGraph returns a room-ID adjacency map built from the dungeon's
// connections (both explicit and implicit), symmetric in both directions.
func (d *Dungeon) AdjacencyGraph() map[int]map[int]bool {
	adj := make(map[int]map[int]bool, len(d.Rooms))
	for _, c := range d.Connections {
		if adj[c.From] == nil {
			adj[c.From] = map[int]bool{}
		}
		if adj[c.To] == nil {
			adj[c.To] = map[int]bool{}
		}
		adj[c.From][c.To] = true
		adj[c.To][c.From] = true
	}
	return adj
}

// ComputeChecksum computes the content checksum as a pure function of the
// final terrain, rooms, connections, and spawns, each serialized in
// canonical (ID-sorted) order, truncated to a 128-bit hex digest.
func (d *Dungeon) ComputeChecksum() string {
	h := sha256.New()

	var buf [8]byte
	writeInt := func(v int) {
		binary.BigEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}
	writeFloat := func(v float64) {
		binary.BigEndian.PutUint64(buf[:], uint64(v*1e9))
		h.Write(buf[:])
	}

	writeInt(d.Width)
	writeInt(d.Height)
	h.Write(d.Terrain)

	rooms := append([]Room(nil), d.Rooms...)
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	for _, r := range rooms {
		writeInt(r.ID)
		writeInt(int(r.Type))
		writeInt(r.Bounds.X)
		writeInt(r.Bounds.Y)
		writeInt(r.Bounds.Width)
		writeInt(r.Bounds.Height)
	}

	conns := append([]Connection(nil), d.Connections...)
	sort.Slice(conns, func(i, j int) bool {
		if conns[i].From != conns[j].From {
			return conns[i].From < conns[j].From
		}
		return conns[i].To < conns[j].To
	})
	for _, c := range conns {
		writeInt(c.From)
		writeInt(c.To)
		writeInt(int(c.Style))
		for _, p := range c.Path {
			writeInt(p.X)
			writeInt(p.Y)
		}
	}

	spawns := append([]SpawnDescriptor(nil), d.Spawns...)
	sort.Slice(spawns, func(i, j int) bool {
		if spawns[i].RoomID != spawns[j].RoomID {
			return spawns[i].RoomID < spawns[j].RoomID
		}
		if spawns[i].Position.X != spawns[j].Position.X {
			return spawns[i].Position.X < spawns[j].Position.X
		}
		return spawns[i].Position.Y < spawns[j].Position.Y
	})
	for _, s := range spawns {
		writeInt(s.RoomID)
		writeInt(s.Position.X)
		writeInt(s.Position.Y)
		writeInt(int(s.Type))
		writeFloat(s.Weight)
		writeInt(s.HopDistance)
	}

	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:16])
}
