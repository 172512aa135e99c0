package enrich

import "github.com/dshills/rogueforge/pkg/geom"

// defaultMovement maps a role to its default movement pattern.
func defaultMovement(role string) string {
	switch role {
	case "boss", "guardian":
		return "guard"
	case "minion":
		return "patrol"
	default:
		return "wander"
	}
}

// BuildBehavior starts from the role's default behavior, clamps detection
// range to 60% of the room's minimum dimension, and adds a single-room
// patrol path when the movement pattern is "patrol".
func BuildBehavior(role string, roomBounds geom.Rect, baseDetection float64) Behavior {
	minDim := roomBounds.Width
	if roomBounds.Height < minDim {
		minDim = roomBounds.Height
	}
	maxDetection := float64(minDim) * 0.6
	detection := baseDetection
	if detection > maxDetection {
		detection = maxDetection
	}

	b := Behavior{
		Role:            role,
		DetectionRange:  detection,
		MovementPattern: defaultMovement(role),
	}

	if b.MovementPattern == "patrol" {
		b.PatrolPath = singleRoomPatrol(roomBounds)
	}
	return b
}

// singleRoomPatrol returns a four-corner patrol loop inset from the room's
// walls by one tile.
func singleRoomPatrol(bounds geom.Rect) []geom.Point {
	inset := bounds.Inset(1)
	if inset.Width <= 0 || inset.Height <= 0 {
		return []geom.Point{bounds.Centroid()}
	}
	return []geom.Point{
		{X: inset.X, Y: inset.Y},
		{X: inset.X + inset.Width - 1, Y: inset.Y},
		{X: inset.X + inset.Width - 1, Y: inset.Y + inset.Height - 1},
		{X: inset.X, Y: inset.Y + inset.Height - 1},
	}
}
