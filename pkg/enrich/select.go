package enrich

import (
	"sort"

	"github.com/dshills/rogueforge/pkg/model"
	"github.com/dshills/rogueforge/pkg/randstream"
)

// SelectTemplate filters candidates by required tags, scores each as
// `1 - |templateDifficulty - targetDifficulty|`, sorts descending, and
// samples the top three by score-weighted choice.
func SelectTemplate(catalog Catalog, requiredTags []string, hopDistance, maxHops int, difficultyScaling float64, stream *randstream.Stream) (Template, bool) {
	candidates := catalog.ByTags(requiredTags)
	if len(candidates) == 0 {
		return Template{}, false
	}

	target := normalizedDistance(hopDistance, maxHops) * difficultyScaling

	type scored struct {
		t     Template
		score float64
	}
	scoredList := make([]scored, len(candidates))
	for i, t := range candidates {
		scoredList[i] = scored{t: t, score: 1 - absFloat(t.Difficulty-target)}
	}
	sort.SliceStable(scoredList, func(i, j int) bool { return scoredList[i].score > scoredList[j].score })

	top := scoredList
	if len(top) > 3 {
		top = top[:3]
	}

	weights := make([]float64, len(top))
	for i, s := range top {
		if s.score < 0 {
			s.score = 0
		}
		weights[i] = s.score
	}
	idx := stream.WeightedChoice(weights)
	if idx < 0 {
		idx = 0
	}
	return top[idx].t, true
}

func normalizedDistance(hop, maxHops int) float64 {
	if maxHops <= 0 {
		return 0
	}
	d := float64(hop) / float64(maxHops)
	if d > 1 {
		return 1
	}
	return d
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// RequiredTagsFor derives the tag filter for a spawn: the value of its
// "role" tag as the single required template tag, or nil (no filter) when
// the spawn has no role tag.
func RequiredTagsFor(s model.SpawnDescriptor) []string {
	if tag, ok := s.Tag("role"); ok {
		return []string{tag}
	}
	return nil
}
