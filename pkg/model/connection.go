package model

import "github.com/dshills/rogueforge/pkg/geom"

// CorridorStyle names the carving style used to lower a connection's edge
// into a grid path.
type CorridorStyle int

const (
	StyleLShaped CorridorStyle = iota
	StyleBresenham
	StyleAStar
	StyleBranching
)

// String returns the corridor style name.
func (s CorridorStyle) String() string {
	switch s {
	case StyleLShaped:
		return "l-shaped"
	case StyleBresenham:
		return "bresenham"
	case StyleAStar:
		return "astar"
	case StyleBranching:
		return "branching"
	default:
		return "unknown"
	}
}

// Connection is an ordered pair of room identifiers plus the carved corridor
// path. Connections are symmetric in meaning but directional in storage
//: From -> To records which room initiated the edge during
// connectivity construction, but both rooms are mutually reachable through
// the carved path.
type Connection struct {
	From    int
	To      int
	Path    []geom.Point
	Style   CorridorStyle
	Width   int
	Implicit bool // true if derived from corridor crossing detection rather than the MST/extra-edge pass
}

// Endpoints returns the connection's two room identifiers in storage order.
func (c Connection) Endpoints() (int, int) { return c.From, c.To }

// Connects reports whether the connection joins rooms a and b, in either
// direction.
func (c Connection) Connects(a, b int) bool {
	return (c.From == a && c.To == b) || (c.From == b && c.To == a)
}
