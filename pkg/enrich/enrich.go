package enrich

import (
	"fmt"

	"github.com/dshills/rogueforge/pkg/connect"
	"github.com/dshills/rogueforge/pkg/model"
	"github.com/dshills/rogueforge/pkg/randstream"
)

// Result is the output of Enrich: the semantic entities and items derived
// from a dungeon's raw spawn descriptors.
type Result struct {
	Entities []*SemanticEntity
	Items    []*SemanticItem
}

// Enrich computes room-graph BFS distances from the entrance and produces
// one SemanticEntity per enemy spawn and one SemanticItem per generic spawn
// tagged "item". Non-generic spawns (entrance, exit) yield neither, and a
// spawn for which the catalog yields no template is skipped.
// enemyCatalog/itemCatalog may overlap; Enrich treats
// a spawn as an enemy spawn iff it is model.SpawnGeneric and carries no
// "item" tag, matching the cheapest discriminator available on raw spawn
// descriptors (richer discrimination is a catalog/game-layer concern,
// explicitly out of scope).
func Enrich(d *model.Dungeon, enemyCatalog, itemCatalog Catalog, cfg Config, stream *randstream.Stream) Result {
	adj := d.AdjacencyGraph()

	entranceID := -1
	if r, ok := d.EntranceRoom(); ok {
		entranceID = r.ID
	}

	maxHops := 1
	hopsByRoom := make(map[int]int, len(d.Rooms))
	for _, r := range d.Rooms {
		h := 0
		if entranceID >= 0 {
			h = connect.ShortestPathHops(adj, entranceID, r.ID)
			if h < 0 {
				h = 0
			}
		}
		hopsByRoom[r.ID] = h
		if h > maxHops {
			maxHops = h
		}
	}

	roomByID := make(map[int]model.Room, len(d.Rooms))
	for _, r := range d.Rooms {
		roomByID[r.ID] = r
	}

	res := Result{}
	var entities []*SemanticEntity

	for i, s := range d.Spawns {
		if s.Type != model.SpawnGeneric {
			continue
		}
		room := roomByID[s.RoomID]
		hop := hopsByRoom[s.RoomID]
		_, isItem := s.Tag("item")

		if isItem {
			t, ok := SelectTemplate(itemCatalog, RequiredTagsFor(s), hop, maxHops, cfg.DifficultyScaling, stream)
			if !ok {
				continue
			}
			res.Items = append(res.Items, &SemanticItem{
				ID:           fmt.Sprintf("item-%d", i),
				RoomID:       s.RoomID,
				Position:     s.Position,
				TemplateName: t.Name,
				Value:        int(float64(t.BaseGold) * (1 + room.Trait("difficulty", hopNormalized(hop, maxHops))*cfg.DifficultyScaling)),
				HopDistance:  hop,
			})
			continue
		}

		t, ok := SelectTemplate(enemyCatalog, RequiredTagsFor(s), hop, maxHops, cfg.DifficultyScaling, stream)
		if !ok {
			continue
		}
		role := AssignRole(s, t, room.Type, stream)
		guardsTarget, _ := s.Tag("guards")
		difficulty := room.Trait("difficulty", hopNormalized(hop, maxHops))
		isElite := stream.Chance(cfg.EliteChance)

		entity := &SemanticEntity{
			ID:           fmt.Sprintf("entity-%d", i),
			RoomID:       s.RoomID,
			Position:     s.Position,
			TemplateName: t.Name,
			Role:         role,
			GuardsTarget: guardsTarget,
			Behavior:     BuildBehavior(role, room.Bounds, 5.0),
			Loot:         BuildLoot(t, role, isElite, difficulty, cfg),
			HopDistance:  hop,
		}
		entities = append(entities, entity)
	}

	BuildRelationships(entities)
	res.Entities = entities
	return res
}

func hopNormalized(hop, maxHops int) float64 {
	return normalizedDistance(hop, maxHops)
}
