package recommend

import (
	"sort"
)

// Status distinguishes why a recommendation list may be empty, so the
// guest-facing surface can show a correct message instead of a generic
// error.
type Status string

const (
	StatusOK           Status = "ok"
	StatusEmptyCatalog Status = "empty_catalog"
	StatusAllExcluded  Status = "all_excluded"
)

// Recommendation is the ranked food list for one guest session
type Recommendation struct {
	Items  []ScoredItem
	Status Status
}

// Rank produces the final ordered recommendation list from all scored food
// items of one computation: excluded items are filtered, the rest sorted by
// score descending with deterministic tie-breaks (popularity descending,
// then catalog position), the top K selected under the soft diversity cap,
// and one reason rendered per pick.
func Rank(scored []ScoredItem, weights Weights) Recommendation {
	if len(scored) == 0 {
		return Recommendation{Items: []ScoredItem{}, Status: StatusEmptyCatalog}
	}

	eligible := make([]ScoredItem, 0, len(scored))
	for _, s := range scored {
		if !s.Excluded {
			eligible = append(eligible, s)
		}
	}
	if len(eligible) == 0 {
		return Recommendation{Items: []ScoredItem{}, Status: StatusAllExcluded}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].Score != eligible[j].Score {
			return eligible[i].Score > eligible[j].Score
		}
		if eligible[i].Item.Popularity != eligible[j].Item.Popularity {
			return eligible[i].Item.Popularity > eligible[j].Item.Popularity
		}
		return eligible[i].Item.Position < eligible[j].Item.Position
	})

	picks := selectTopK(eligible, weights)

	for i := range picks {
		picks[i].Reason = reasonFor(&picks[i])
	}

	return Recommendation{Items: picks, Status: StatusOK}
}

// selectTopK walks the sorted candidates applying the per-category cap.
// If the cap would leave the list under-filled, it is relaxed and the
// skipped candidates are taken back in rank order.
func selectTopK(sorted []ScoredItem, weights Weights) []ScoredItem {
	k := weights.TopK
	if k <= 0 {
		k = 1
	}
	if k > len(sorted) {
		k = len(sorted)
	}

	if weights.DiversityMaxPerCategory <= 0 {
		picks := make([]ScoredItem, k)
		copy(picks, sorted[:k])
		return picks
	}

	picks := make([]ScoredItem, 0, k)
	skipped := make([]ScoredItem, 0, len(sorted))
	perCategory := make(map[string]int)

	for _, candidate := range sorted {
		if len(picks) == k {
			break
		}
		if perCategory[candidate.Item.Category] >= weights.DiversityMaxPerCategory {
			skipped = append(skipped, candidate)
			continue
		}
		perCategory[candidate.Item.Category]++
		picks = append(picks, candidate)
	}

	// Relax rather than under-fill
	for _, candidate := range skipped {
		if len(picks) == k {
			break
		}
		picks = append(picks, candidate)
	}

	if len(picks) > 1 {
		sort.SliceStable(picks, func(i, j int) bool {
			if picks[i].Score != picks[j].Score {
				return picks[i].Score > picks[j].Score
			}
			if picks[i].Item.Popularity != picks[j].Item.Popularity {
				return picks[i].Item.Popularity > picks[j].Item.Popularity
			}
			return picks[i].Item.Position < picks[j].Item.Position
		})
	}

	return picks
}

// DominantMood returns the mood driving the upsell pairing: the mood tag
// matched by the top food pick, falling back to the guest's stated mood
// when no food mood was inferable.
func DominantMood(recommendation Recommendation, statedMood string) string {
	if len(recommendation.Items) > 0 {
		if tag, ok := recommendation.Items[0].MatchedTag(AxisMood); ok {
			return tag
		}
	}
	return statedMood
}
