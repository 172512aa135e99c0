package connect

import (
	"github.com/dshills/rogueforge/pkg/geom"
	"github.com/dshills/rogueforge/pkg/model"
)

// DetectCrossings scans all corridor pairs that do not share a room and
// records shared cells as implicit connections.
func DetectCrossings(connections []model.Connection) []model.Connection {
	var implicit []model.Connection

	for i := 0; i < len(connections); i++ {
		for j := i + 1; j < len(connections); j++ {
			a, b := connections[i], connections[j]
			if sharesRoom(a, b) {
				continue
			}
			if shared := intersection(a, b); len(shared) > 0 {
				implicit = append(implicit, model.Connection{
					From:     a.From,
					To:       b.From,
					Path:     shared,
					Style:    model.StyleBresenham,
					Implicit: true,
				})
			}
		}
	}
	return implicit
}

func sharesRoom(a, b model.Connection) bool {
	return a.From == b.From || a.From == b.To || a.To == b.From || a.To == b.To
}

func intersection(a, b model.Connection) []geom.Point {
	set := make(map[geom.Point]bool, len(a.Path))
	for _, p := range a.Path {
		set[p] = true
	}
	var shared []geom.Point
	for _, p := range b.Path {
		if set[p] {
			shared = append(shared, p)
		}
	}
	return shared
}

// DerivedGraph unions explicit connections with implicit crossing-derived
// connections into adjacency sets keyed by room ID.
func DerivedGraph(explicit, implicit []model.Connection) map[int]map[int]bool {
	adj := make(map[int]map[int]bool)
	add := func(a, b int) {
		if adj[a] == nil {
			adj[a] = make(map[int]bool)
		}
		adj[a][b] = true
	}
	for _, c := range explicit {
		add(c.From, c.To)
		add(c.To, c.From)
	}
	for _, c := range implicit {
		add(c.From, c.To)
		add(c.To, c.From)
	}
	return adj
}
