package connect

import (
	"github.com/dshills/rogueforge/pkg/model"
	"github.com/dshills/rogueforge/pkg/randstream"
)

// BuildConnectivityResult is the output of BuildConnectivity: the MST edges
// that guarantee a connected dungeon, plus any extra loop edges sampled
// from the remaining non-MST edges.
type BuildConnectivityResult struct {
	MST   []Edge
	Extra []Edge
}

// BuildConnectivity computes a minimum spanning tree over the complete
// weighted room graph via Kruskal with union-find, deterministically
// tie-broken by edge endpoints, then adds extra edges from the sorted
// non-MST edges with independent per-edge Bernoulli draws at loopChance.
func BuildConnectivity(rooms []model.Room, loopChance float64, stream *randstream.Stream) BuildConnectivityResult {
	if len(rooms) < 2 {
		return BuildConnectivityResult{}
	}

	ids := make([]int, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}

	edges := BuildCompleteGraph(rooms)
	uf := newUnionFind(ids)

	var mst []Edge
	var rest []Edge
	for _, e := range edges {
		if uf.union(e.A, e.B) {
			mst = append(mst, e)
		} else {
			rest = append(rest, e)
		}
	}

	var extra []Edge
	for _, e := range rest {
		if stream.Chance(loopChance) {
			extra = append(extra, e)
		}
	}

	return BuildConnectivityResult{MST: mst, Extra: extra}
}
