package recommend

import (
	"fmt"
	"sort"

	"github.com/platewise/v1/internal/domain/intent"
	"github.com/platewise/v1/internal/domain/menu"
	"github.com/platewise/v1/internal/domain/taxonomy"
)

// PairingMapVersion identifies the revision of the mood→drink mapping.
// The mapping is an explicit versioned structure so each entry can be unit
// tested, rather than inline conditionals.
const PairingMapVersion = "2025-06"

// pairingProfile lists the drink tags a food mood favors: pairing-intent
// tags carry the main bonus, drink-flavor tags a smaller one.
type pairingProfile struct {
	intents map[string]struct{}
	flavors map[string]struct{}
	reason  string
}

// moodPairings maps each food mood to the drinks it favors
var moodPairings = map[string]pairingProfile{
	taxonomy.TagMoodComfort: {
		intents: tagSet([]string{taxonomy.TagPairUnwind}),
		flavors: tagSet([]string{taxonomy.TagDrinkFlavorCreamy, taxonomy.TagDrinkFlavorSweet}),
		reason:  "Something to unwind with alongside %s.",
	},
	taxonomy.TagMoodLight: {
		intents: tagSet([]string{taxonomy.TagPairRefresh}),
		flavors: tagSet([]string{taxonomy.TagDrinkFlavorCrisp, taxonomy.TagDrinkFlavorHerbal}),
		reason:  "A refreshing match for %s.",
	},
	taxonomy.TagMoodTreat: {
		intents: tagSet([]string{taxonomy.TagPairTreat}),
		flavors: tagSet([]string{taxonomy.TagDrinkFlavorSweet, taxonomy.TagDrinkFlavorFruity}),
		reason:  "A celebratory sip to go with %s.",
	},
	taxonomy.TagMoodAdventurous: {
		intents: tagSet([]string{taxonomy.TagPairEnergize}),
		flavors: tagSet([]string{taxonomy.TagDrinkFlavorBitter, taxonomy.TagDrinkFlavorHerbal}),
		reason:  "A bold companion for %s.",
	},
}

// pairingReasonGeneric explains an upsell chosen without a mood signal
const pairingReasonGeneric = "A popular pick to round out your meal."

// PairDrink selects the single best-paired drink for the guest's dominant
// food mood. Drinks carrying an excluded tag or flagged unavailable are
// never considered. Returns nil when no drink survives the exclusion pass.
//
// This is a strictly smaller application of the same scoring primitive as
// food scoring: popularity baseline, pairing-intent bonus, drink-flavor
// bonus, push bonus.
func PairDrink(drinks []*menu.Item, mood string, vector *intent.Vector, weights Weights) *ScoredItem {
	profile, hasProfile := moodPairings[mood]

	var specs []axisSpec
	if hasProfile {
		specs = []axisSpec{
			{axis: AxisPairing, tags: profile.intents, bonus: weights.PairingBonus},
			{axis: AxisDrinkFlavor, tags: profile.flavors, bonus: weights.DrinkFlavorBonus},
		}
	}

	candidates := make([]ScoredItem, 0, len(drinks))
	for _, drink := range drinks {
		if drink.Kind != menu.KindDrink {
			continue
		}
		if excluded(drink, vector) {
			continue
		}
		score, matched := scoreAgainst(drink, specs, weights)
		candidates = append(candidates, ScoredItem{
			Item:    drink,
			Score:   score,
			matched: matched,
		})
	}

	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		if candidates[i].Item.Popularity != candidates[j].Item.Popularity {
			return candidates[i].Item.Popularity > candidates[j].Item.Popularity
		}
		return candidates[i].Item.Position < candidates[j].Item.Position
	})

	best := candidates[0]
	if hasProfile {
		best.Reason = fmt.Sprintf(profile.reason, taxonomy.LabelFor(mood))
	} else {
		best.Reason = pairingReasonGeneric
	}

	return &best
}
