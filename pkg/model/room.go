package model

import "github.com/dshills/rogueforge/pkg/geom"

// RoomType is the semantic type of a placed room.
type RoomType int

const (
	RoomNormal RoomType = iota
	RoomEntrance
	RoomExit
	RoomTreasure
	RoomBoss
	RoomCavern
	RoomLibrary
	RoomArmory
)

// String returns the human-readable room type name.
func (t RoomType) String() string {
	switch t {
	case RoomEntrance:
		return "entrance"
	case RoomExit:
		return "exit"
	case RoomNormal:
		return "normal"
	case RoomTreasure:
		return "treasure"
	case RoomBoss:
		return "boss"
	case RoomCavern:
		return "cavern"
	case RoomLibrary:
		return "library"
	case RoomArmory:
		return "armory"
	default:
		return "unknown"
	}
}

// Room is a placed area of the dungeon: an axis-aligned rectangle, a
// semantic type, a per-room seed sub-value, and optional traits.
type Room struct {
	ID       int
	Bounds   geom.Rect
	Type     RoomType
	Seed     uint64
	Template string             // optional non-rectangular template reference
	Traits   map[string]float64 // named scalar modifiers in [0,1]
}

// Centroid returns the integer center of the room's bounds.
func (r Room) Centroid() geom.Point {
	return r.Bounds.Centroid()
}

// Trait returns the named trait value, or def if absent.
func (r Room) Trait(name string, def float64) float64 {
	if r.Traits == nil {
		return def
	}
	if v, ok := r.Traits[name]; ok {
		return v
	}
	return def
}
