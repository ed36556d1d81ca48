// Package recommend implements the preference scoring model: per-item
// scoring with hard exclusions, top-K ranking with deterministic
// tie-breaking, one-line explanations, and drink pairing.
//
// Scoring is a pure function of (item, intent vector, taxonomy, weights).
// No hidden state is read or written, so any number of recommendation
// computations may run concurrently against the same catalog snapshot.
package recommend

import (
	"github.com/platewise/v1/internal/domain/intent"
	"github.com/platewise/v1/internal/domain/menu"
)

// Axis identifies one preference axis of the scoring model. Declaration
// order is the tie-break order for reason selection: mood beats flavor
// beats portion.
type Axis int

const (
	AxisMood Axis = iota
	AxisFlavor
	AxisPortion
	AxisPairing
	AxisDrinkFlavor
)

// String returns the axis name for logs and metrics
func (a Axis) String() string {
	switch a {
	case AxisMood:
		return "mood"
	case AxisFlavor:
		return "flavor"
	case AxisPortion:
		return "portion"
	case AxisPairing:
		return "pairing"
	case AxisDrinkFlavor:
		return "drink_flavor"
	default:
		return "unknown"
	}
}

// Weights is the externally tunable configuration of the scoring model.
// Popularity is deliberately weighted small relative to the tag bonuses so
// it breaks ties rather than dominating preference matches.
type Weights struct {
	TopK             int
	PopularityWeight float64
	AxisBonus        float64
	PushBonus        float64
	PairingBonus     float64
	DrinkFlavorBonus float64

	// DiversityMaxPerCategory softly caps picks per catalog category.
	// Zero disables the cap. The cap is relaxed rather than under-filling
	// the list.
	DiversityMaxPerCategory int
}

// DefaultWeights returns the production defaults
func DefaultWeights() Weights {
	return Weights{
		TopK:                    3,
		PopularityWeight:        0.1,
		AxisBonus:               10,
		PushBonus:               5,
		PairingBonus:            10,
		DrinkFlavorBonus:        4,
		DiversityMaxPerCategory: 2,
	}
}

// ScoredItem is an item plus its computed score and exclusion status.
// It exists only within one recommendation computation.
type ScoredItem struct {
	Item     *menu.Item
	Score    float64
	Excluded bool
	Reason   string

	// matched records the first matching tag per axis, consumed by
	// reason rendering
	matched map[Axis]string
}

// MatchedTag returns the tag that matched on the given axis, if any
func (s *ScoredItem) MatchedTag(axis Axis) (string, bool) {
	tag, ok := s.matched[axis]
	return tag, ok
}

// axisSpec is one bonus-carrying tag set of the shared scoring primitive.
// Food scoring and drink pairing both reduce to a list of these.
type axisSpec struct {
	axis  Axis
	tags  map[string]struct{}
	bonus float64
}

// scoreAgainst is the shared scoring primitive: popularity baseline, one
// bonus per matching axis (first matching tag only, so tag-stuffing a
// single axis cannot stack), and the operator push bonus.
func scoreAgainst(item *menu.Item, specs []axisSpec, weights Weights) (float64, map[Axis]string) {
	score := item.Popularity * weights.PopularityWeight
	matched := make(map[Axis]string, len(specs))

	for _, spec := range specs {
		if len(spec.tags) == 0 {
			continue
		}
		if tag, ok := item.FirstTagIn(spec.tags); ok {
			score += spec.bonus
			matched[spec.axis] = tag
		}
	}

	if item.Push {
		score += weights.PushBonus
	}

	return score, matched
}

// excluded applies the hard exclusion pass: availability flags first, then
// the guest's diet/allergy exclusion set. An excluded item's score must
// never be used for ranking or upsell consideration.
func excluded(item *menu.Item, vector *intent.Vector) bool {
	if !item.Available() {
		return true
	}
	for _, tag := range item.Tags {
		if vector.Excludes(tag) {
			return true
		}
	}
	return false
}

// ScoreItem computes (score, excluded) for one catalog item against one
// intent vector. Pure and deterministic; safe to invoke in any order or
// concurrently across items.
func ScoreItem(item *menu.Item, vector *intent.Vector, weights Weights) ScoredItem {
	if excluded(item, vector) {
		return ScoredItem{Item: item, Excluded: true}
	}

	specs := make([]axisSpec, 0, 3)
	if vector.HasMood() {
		specs = append(specs, axisSpec{
			axis:  AxisMood,
			tags:  map[string]struct{}{vector.Mood: {}},
			bonus: weights.AxisBonus,
		})
	}
	if len(vector.Flavors) > 0 {
		specs = append(specs, axisSpec{
			axis:  AxisFlavor,
			tags:  tagSet(vector.Flavors),
			bonus: weights.AxisBonus,
		})
	}
	if vector.HasPortion() {
		specs = append(specs, axisSpec{
			axis:  AxisPortion,
			tags:  map[string]struct{}{vector.Portion: {}},
			bonus: weights.AxisBonus,
		})
	}

	score, matched := scoreAgainst(item, specs, weights)

	return ScoredItem{
		Item:    item,
		Score:   score,
		matched: matched,
	}
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}
