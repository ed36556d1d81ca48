package recommend

import (
	"fmt"

	"github.com/platewise/v1/internal/domain/taxonomy"
)

// reasonTemplates renders the one-sentence explanation per pick. A single
// lookup table keyed by axis, with the matched tag's taxonomy label
// substituted in, keeps reason generation testable and extensible.
var reasonTemplates = map[Axis]string{
	AxisMood:    "Matches your craving for %s.",
	AxisFlavor:  "Brings %s, just like you asked.",
	AxisPortion: "Served as %s, just how you wanted it.",
}

// reasonPopular explains a pure popularity pick
const reasonPopular = "A crowd favorite at this venue."

// reasonAxisOrder is the priority in which matched axes are considered for
// the explanation: mood beats flavor beats portion.
var reasonAxisOrder = []Axis{AxisMood, AxisFlavor, AxisPortion}

// reasonFor picks the item's highest-priority matched axis and renders its
// template with the tag's display label. Items that matched no axis get the
// generic popularity reason.
func reasonFor(item *ScoredItem) string {
	for _, axis := range reasonAxisOrder {
		tag, ok := item.MatchedTag(axis)
		if !ok {
			continue
		}
		template, ok := reasonTemplates[axis]
		if !ok {
			continue
		}
		return fmt.Sprintf(template, taxonomy.LabelFor(tag))
	}
	return reasonPopular
}
