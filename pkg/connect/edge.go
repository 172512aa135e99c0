package connect

import "github.com/dshills/rogueforge/pkg/model"

// Edge is a candidate connection between two rooms, weighted by Manhattan
// distance between centroids.
type Edge struct {
	A, B   int
	Weight int
}

// BuildCompleteGraph constructs the complete weighted graph over room
// centroids. Edges are returned sorted by weight, then by (A, B) for
// deterministic tie-breaking.
func BuildCompleteGraph(rooms []model.Room) []Edge {
	edges := make([]Edge, 0, len(rooms)*(len(rooms)-1)/2)
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			ci := rooms[i].Centroid()
			cj := rooms[j].Centroid()
			edges = append(edges, Edge{
				A:      rooms[i].ID,
				B:      rooms[j].ID,
				Weight: ci.Manhattan(cj),
			})
		}
	}
	sortEdges(edges)
	return edges
}

func sortEdges(edges []Edge) {
	// Hand-written insertion sort, kept as a named function so the
	// tie-breaking rule is documented in one place: weight, then endpoints.
	less := func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight < edges[j].Weight
		}
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	}
	for i := 1; i < len(edges); i++ {
		for k := i; k > 0 && less(k, k-1); k-- {
			edges[k], edges[k-1] = edges[k-1], edges[k]
		}
	}
}

// unionFind is a deterministic disjoint-set with path compression and
// union-by-rank, keyed by room ID rather than dense index so callers don't
// need a separate ID remapping step.
type unionFind struct {
	parent map[int]int
	rank   map[int]int
}

func newUnionFind(ids []int) *unionFind {
	uf := &unionFind{parent: make(map[int]int, len(ids)), rank: make(map[int]int, len(ids))}
	for _, id := range ids {
		uf.parent[id] = id
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
	return true
}
