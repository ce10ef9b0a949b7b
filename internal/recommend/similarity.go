package recommend

import (
	"sort"

	"github.com/jakoblorz/toolscout/internal/models"
)

// applySimilarityBonuses rewards entries whose tag sets co-occur with
// the tags of the highest-scoring entries of this call. The bonus only
// counts when enough tags are shared and the Jaccard value clears its
// threshold, and it is capped.
func applySimilarityBonuses(scored []models.ScoredEntry, cfg Config) {
	if len(scored) < 2 {
		return
	}

	// Pick the current top-N as the reference set.
	order := make([]int, len(scored))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scored[order[a]].Score > scored[order[b]].Score
	})

	topN := cfg.SimilarityTopN
	if topN > len(order) {
		topN = len(order)
	}
	top := order[:topN]

	for i := range scored {
		best := 0.0
		for _, t := range top {
			if t == i {
				continue
			}
			shared, jaccard := tagJaccard(scored[i].Item.Tags, scored[t].Item.Tags)
			if shared < cfg.SimilarityMinShared || jaccard < cfg.SimilarityMinJaccard {
				continue
			}
			if jaccard > best {
				best = jaccard
			}
		}
		if best == 0 {
			continue
		}

		bonus := best * cfg.SimilarityWeight
		if bonus > cfg.SimilarityMaxBonus {
			bonus = cfg.SimilarityMaxBonus
		}
		scored[i].Score += bonus
		scored[i].Reasons = append(scored[i].Reasons, "similar to other matches")
	}
}

// tagJaccard returns the shared-tag count and the Jaccard similarity of
// two tag sets.
func tagJaccard(a, b []string) (int, float64) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0
	}

	setA := make(map[string]struct{}, len(a))
	for _, t := range a {
		setA[t] = struct{}{}
	}

	shared := 0
	setB := make(map[string]struct{}, len(b))
	for _, t := range b {
		if _, dup := setB[t]; dup {
			continue
		}
		setB[t] = struct{}{}
		if _, ok := setA[t]; ok {
			shared++
		}
	}

	union := len(setA) + len(setB) - shared
	if union == 0 {
		return 0, 0
	}
	return shared, float64(shared) / float64(union)
}
