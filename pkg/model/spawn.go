package model

import "github.com/dshills/rogueforge/pkg/geom"

// SpawnStructuralType is the structural role of a raw spawn descriptor
//, distinct from the richer semantic roles assigned during
// enrichment (pkg/enrich).
type SpawnStructuralType int

const (
	SpawnEntrance SpawnStructuralType = iota
	SpawnExit
	SpawnGeneric
)

// String returns the spawn structural type name.
func (t SpawnStructuralType) String() string {
	switch t {
	case SpawnEntrance:
		return "entrance"
	case SpawnExit:
		return "exit"
	case SpawnGeneric:
		return "spawn"
	default:
		return "unknown"
	}
}

// SpawnDescriptor is a position plus tags telling downstream layers what to
// instantiate. Procgen guarantees positions are on floor tiles; the game
// layer interprets tags.
type SpawnDescriptor struct {
	Position    geom.Point
	RoomID      int
	Type        SpawnStructuralType
	Tags        map[string]string
	Weight      float64
	HopDistance int // hop-distance from the entrance room, along the room-adjacency graph
}

// HasTag reports whether the spawn carries the named tag.
func (s SpawnDescriptor) HasTag(name string) bool {
	if s.Tags == nil {
		return false
	}
	_, ok := s.Tags[name]
	return ok
}

// Tag returns the named tag's value and whether it was present.
func (s SpawnDescriptor) Tag(name string) (string, bool) {
	if s.Tags == nil {
		return "", false
	}
	v, ok := s.Tags[name]
	return v, ok
}
