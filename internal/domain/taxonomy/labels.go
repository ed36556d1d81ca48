package taxonomy

import "strings"

// labels holds the explicit tag→display-label overrides used in reasons.
// Tags without an entry fall back to a label derived from the tag itself.
var labels = map[string]string{
	TagMoodComfort:     "comfort food",
	TagMoodLight:       "light and fresh",
	TagMoodTreat:       "a well-earned treat",
	TagMoodAdventurous: "bold new flavors",

	TagFlavorSpicy:  "a spicy kick",
	TagFlavorSweet:  "sweet notes",
	TagFlavorSavory: "savory depth",
	TagFlavorFresh:  "fresh flavors",
	TagFlavorRich:   "rich flavors",
	TagFlavorSmoky:  "smoky flavors",

	TagPortionSmall:   "a lighter portion",
	TagPortionRegular: "a regular portion",
	TagPortionLarge:   "a generous portion",
	TagPortionSharing: "a portion made for sharing",

	TagPairUnwind:   "something to unwind with",
	TagPairRefresh:  "something refreshing",
	TagPairTreat:    "a celebratory sip",
	TagPairEnergize: "a pick-me-up",
}

// LabelFor returns the human-readable label for a tag. When no explicit
// label is registered the label is derived: category prefix stripped,
// separators replaced with spaces, title-cased.
func LabelFor(tag string) string {
	if label, ok := labels[tag]; ok {
		return label
	}
	return derivedLabel(tag)
}

func derivedLabel(tag string) string {
	stripped := tag
	for _, p := range prefixes {
		if strings.HasPrefix(tag, p.prefix) {
			stripped = strings.TrimPrefix(tag, p.prefix)
			break
		}
	}

	words := strings.Split(strings.ReplaceAll(stripped, "-", "_"), "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
