// Package taxonomy defines the closed, versioned vocabulary of menu tags.
// Every other part of the recommendation engine depends on it: scoring
// matches tags by category, and reason rendering uses the display labels.
package taxonomy

import (
	"sort"
	"strings"
)

// Version identifies the current revision of the vocabulary. The set is
// append-only in practice: tags may be added in a new version, but removing
// a tag that catalog data still references must never break scoring.
const Version = "2025-06"

// Category groups tags by their prefix
type Category string

const (
	CategoryMood        Category = "mood"
	CategoryFlavor      Category = "flavor"
	CategoryPortion     Category = "portion"
	CategoryDiet        Category = "diet"
	CategoryAllergy     Category = "allergy"
	CategoryDrinkFlavor Category = "drink_flavor"
	CategoryPairing     Category = "pair"
)

// prefixes in match order. drink_flavor_ must be tested before flavor_
// since both would match a "flavor_" scan on a naive ordering.
var prefixes = []struct {
	prefix   string
	category Category
}{
	{"mood_", CategoryMood},
	{"drink_flavor_", CategoryDrinkFlavor},
	{"flavor_", CategoryFlavor},
	{"portion_", CategoryPortion},
	{"diet_", CategoryDiet},
	{"allergy_", CategoryAllergy},
	{"pair_", CategoryPairing},
}

// Mood tags carried by food items
const (
	TagMoodComfort     = "mood_comfort"
	TagMoodLight       = "mood_light"
	TagMoodTreat       = "mood_treat"
	TagMoodAdventurous = "mood_adventurous"
)

// Flavor tags carried by food items
const (
	TagFlavorSpicy  = "flavor_spicy"
	TagFlavorSweet  = "flavor_sweet"
	TagFlavorSavory = "flavor_savory"
	TagFlavorFresh  = "flavor_fresh"
	TagFlavorRich   = "flavor_rich"
	TagFlavorSmoky  = "flavor_smoky"
)

// Portion tags
const (
	TagPortionSmall   = "portion_small"
	TagPortionRegular = "portion_regular"
	TagPortionLarge   = "portion_large"
	TagPortionSharing = "portion_sharing"
)

// Diet tags mark contents that conflict with a dietary choice. An item
// tagged diet_meat is excluded for a vegetarian guest.
const (
	TagDietMeat  = "diet_meat"
	TagDietFish  = "diet_fish"
	TagDietDairy = "diet_dairy"
	TagDietEgg   = "diet_egg"
)

// Allergy tags mark allergens present in an item
const (
	TagAllergyNuts      = "allergy_nuts"
	TagAllergyGluten    = "allergy_gluten"
	TagAllergyShellfish = "allergy_shellfish"
	TagAllergyDairy     = "allergy_dairy"
	TagAllergySoy       = "allergy_soy"
	TagAllergyEgg       = "allergy_egg"
)

// Drink flavor tags carried by drink items
const (
	TagDrinkFlavorSweet  = "drink_flavor_sweet"
	TagDrinkFlavorBitter = "drink_flavor_bitter"
	TagDrinkFlavorCrisp  = "drink_flavor_crisp"
	TagDrinkFlavorCreamy = "drink_flavor_creamy"
	TagDrinkFlavorFruity = "drink_flavor_fruity"
	TagDrinkFlavorHerbal = "drink_flavor_herbal"
)

// Pairing intent tags carried by drink items
const (
	TagPairUnwind   = "pair_unwind"
	TagPairRefresh  = "pair_refresh"
	TagPairTreat    = "pair_treat"
	TagPairEnergize = "pair_energize"
)

// registry is the closed set of valid tags, grouped by category
var registry = map[Category][]string{
	CategoryMood: {
		TagMoodComfort, TagMoodLight, TagMoodTreat, TagMoodAdventurous,
	},
	CategoryFlavor: {
		TagFlavorSpicy, TagFlavorSweet, TagFlavorSavory,
		TagFlavorFresh, TagFlavorRich, TagFlavorSmoky,
	},
	CategoryPortion: {
		TagPortionSmall, TagPortionRegular, TagPortionLarge, TagPortionSharing,
	},
	CategoryDiet: {
		TagDietMeat, TagDietFish, TagDietDairy, TagDietEgg,
	},
	CategoryAllergy: {
		TagAllergyNuts, TagAllergyGluten, TagAllergyShellfish,
		TagAllergyDairy, TagAllergySoy, TagAllergyEgg,
	},
	CategoryDrinkFlavor: {
		TagDrinkFlavorSweet, TagDrinkFlavorBitter, TagDrinkFlavorCrisp,
		TagDrinkFlavorCreamy, TagDrinkFlavorFruity, TagDrinkFlavorHerbal,
	},
	CategoryPairing: {
		TagPairUnwind, TagPairRefresh, TagPairTreat, TagPairEnergize,
	},
}

// known is the flattened registry for O(1) membership checks
var known = func() map[string]Category {
	m := make(map[string]Category)
	for category, tags := range registry {
		for _, tag := range tags {
			m[tag] = category
		}
	}
	return m
}()

// IsKnown reports whether tag belongs to the current vocabulary. Unknown
// tags are ignored for scoring but preserved for display.
func IsKnown(tag string) bool {
	_, ok := known[tag]
	return ok
}

// CategoryOf returns the category a tag belongs to. It resolves by prefix,
// so a tag removed from the registry still reports its category and keeps
// scoring from erroring on stale catalog data.
func CategoryOf(tag string) (Category, bool) {
	if category, ok := known[tag]; ok {
		return category, true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(tag, p.prefix) {
			return p.category, true
		}
	}
	return "", false
}

// Tags returns the registered tags of a category in sorted order
func Tags(category Category) []string {
	tags := make([]string, len(registry[category]))
	copy(tags, registry[category])
	sort.Strings(tags)
	return tags
}

// Filter returns the subset of tags belonging to the given category
func Filter(tags []string, category Category) []string {
	var out []string
	for _, tag := range tags {
		if c, ok := CategoryOf(tag); ok && c == category {
			out = append(out, tag)
		}
	}
	return out
}
