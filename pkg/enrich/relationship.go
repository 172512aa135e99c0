package enrich

// BuildRelationships computes guards/commands/allies_with edges among the
// semantic entities sharing a room. Items never participate.
func BuildRelationships(entities []*SemanticEntity) {
	byRoom := make(map[int][]*SemanticEntity)
	for _, e := range entities {
		byRoom[e.RoomID] = append(byRoom[e.RoomID], e)
	}

	for _, group := range byRoom {
		var boss *SemanticEntity
		for _, e := range group {
			if e.Role == "boss" {
				boss = e
			}
			if e.Role == "guardian" {
				target := e.GuardsTarget
				if target == "" {
					target = e.ID
				}
				e.Relationships = append(e.Relationships, Relationship{Kind: "guards", TargetID: target, Strength: 1.0})
			}
		}
		if boss != nil {
			for _, e := range group {
				if e == boss || e.Role != "minion" {
					continue
				}
				boss.Relationships = append(boss.Relationships, Relationship{Kind: "commands", TargetID: e.ID, Strength: 0.8})
			}
		}
		for i, a := range group {
			if a.Role == "neutral" || a.Role == "merchant" {
				continue
			}
			for j, b := range group {
				if i == j || b.Role == "neutral" || b.Role == "merchant" {
					continue
				}
				a.Relationships = append(a.Relationships, Relationship{Kind: "allies_with", TargetID: b.ID, Strength: 0.5})
			}
		}
	}
}
