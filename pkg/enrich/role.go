package enrich

import (
	"github.com/dshills/rogueforge/pkg/model"
	"github.com/dshills/rogueforge/pkg/randstream"
)

// AssignRole determines a spawn's role: an explicit role:X tag wins, a
// guards:Y tag forces "guardian", otherwise a role is sampled from the
// template's preferred roles weighted by the caller's per-room-type
// probabilities.
func AssignRole(s model.SpawnDescriptor, t Template, roomType model.RoomType, stream *randstream.Stream) string {
	if role, ok := s.Tag("role"); ok {
		return role
	}
	if _, ok := s.Tag("guards"); ok {
		return "guardian"
	}
	if len(t.PreferredRoles) == 0 {
		return "minion"
	}

	roles := make([]string, 0, len(t.PreferredRoles))
	weights := make([]float64, 0, len(t.PreferredRoles))
	for role, w := range t.PreferredRoles {
		roles = append(roles, role)
		weights = append(weights, w*roomTypeWeight(roomType, role))
	}
	idx := stream.WeightedChoice(weights)
	if idx < 0 {
		return roles[0]
	}
	return roles[idx]
}

// roomTypeWeight biases role selection by room semantics: boss rooms favor
// "boss", treasure rooms favor "guardian", everything else is neutral.
func roomTypeWeight(roomType model.RoomType, role string) float64 {
	switch roomType {
	case model.RoomBoss:
		if role == "boss" {
			return 2.0
		}
	case model.RoomTreasure:
		if role == "guardian" {
			return 1.5
		}
	}
	return 1.0
}
