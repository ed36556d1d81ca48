package intent

import (
	"errors"
	"strings"

	"github.com/platewise/v1/internal/domain/taxonomy"
)

// Validation errors for malformed answer payloads
var (
	ErrMissingQuestionID = errors.New("answer is missing a question identifier")
)

// BuildResult carries the folded vector plus any dietary answers the
// builder could not understand. Allergy parsing fails closed: the
// unrecognized values are surfaced so the caller can demand confirmation
// instead of silently weakening an exclusion.
type BuildResult struct {
	Vector      Vector
	Unconfirmed []string
}

// moodAnswers maps accepted mood answer values to their mood tag
var moodAnswers = map[string]string{
	"comfort":     taxonomy.TagMoodComfort,
	"light":       taxonomy.TagMoodLight,
	"treat":       taxonomy.TagMoodTreat,
	"adventurous": taxonomy.TagMoodAdventurous,
}

// flavorAnswers maps accepted flavor answer values to their flavor tag
var flavorAnswers = map[string]string{
	"spicy":  taxonomy.TagFlavorSpicy,
	"sweet":  taxonomy.TagFlavorSweet,
	"savory": taxonomy.TagFlavorSavory,
	"fresh":  taxonomy.TagFlavorFresh,
	"rich":   taxonomy.TagFlavorRich,
	"smoky":  taxonomy.TagFlavorSmoky,
}

// portionAnswers maps accepted portion answer values to their portion tag
var portionAnswers = map[string]string{
	"small":   taxonomy.TagPortionSmall,
	"regular": taxonomy.TagPortionRegular,
	"large":   taxonomy.TagPortionLarge,
	"sharing": taxonomy.TagPortionSharing,
}

// dietaryAnswers maps accepted dietary answer values to the item tags they
// exclude. One guest answer can exclude several tags: "vegan" rules out
// every animal-content tag, not just one.
var dietaryAnswers = map[string][]string{
	"none": {},

	"vegetarian":  {taxonomy.TagDietMeat, taxonomy.TagDietFish},
	"vegan":       {taxonomy.TagDietMeat, taxonomy.TagDietFish, taxonomy.TagDietDairy, taxonomy.TagDietEgg},
	"pescatarian": {taxonomy.TagDietMeat},

	"no_nuts":            {taxonomy.TagAllergyNuts},
	"nut_allergy":        {taxonomy.TagAllergyNuts},
	"gluten_free":        {taxonomy.TagAllergyGluten},
	"no_gluten":          {taxonomy.TagAllergyGluten},
	"no_shellfish":       {taxonomy.TagAllergyShellfish},
	"shellfish_allergy":  {taxonomy.TagAllergyShellfish},
	"dairy_free":         {taxonomy.TagAllergyDairy, taxonomy.TagDietDairy},
	"lactose_intolerant": {taxonomy.TagAllergyDairy, taxonomy.TagDietDairy},
	"no_soy":             {taxonomy.TagAllergySoy},
	"no_egg":             {taxonomy.TagAllergyEgg, taxonomy.TagDietEgg},
	"egg_allergy":        {taxonomy.TagAllergyEgg, taxonomy.TagDietEgg},
}

// Build folds an ordered sequence of question/answer pairs into a Vector.
// Skipped questions contribute nothing. Unknown question identifiers are
// recorded in the raw answer log only. Dietary values the builder does not
// recognize are returned in Unconfirmed rather than dropped.
func Build(answers []Answer) (*BuildResult, error) {
	result := &BuildResult{
		Vector: Vector{
			Exclusions: make(map[string]struct{}),
			RawAnswers: make([]Answer, 0, len(answers)),
		},
	}

	seenFlavors := make(map[string]struct{})

	for _, answer := range answers {
		if answer.QuestionID == "" {
			return nil, ErrMissingQuestionID
		}

		result.Vector.RawAnswers = append(result.Vector.RawAnswers, answer)

		switch answer.QuestionID {
		case QuestionMood:
			for _, value := range answer.Values {
				if tag, ok := moodAnswers[normalize(value)]; ok {
					result.Vector.Mood = tag
					break
				}
			}

		case QuestionFlavor:
			for _, value := range answer.Values {
				tag, ok := flavorAnswers[normalize(value)]
				if !ok {
					continue
				}
				if _, dup := seenFlavors[tag]; dup {
					continue
				}
				seenFlavors[tag] = struct{}{}
				result.Vector.Flavors = append(result.Vector.Flavors, tag)
			}

		case QuestionPortion:
			for _, value := range answer.Values {
				if tag, ok := portionAnswers[normalize(value)]; ok {
					result.Vector.Portion = tag
					break
				}
			}

		case QuestionDietary:
			for _, value := range answer.Values {
				normalized := normalize(value)

				// Direct diet_/allergy_ tags are accepted as-is
				if category, ok := taxonomy.CategoryOf(normalized); ok &&
					(category == taxonomy.CategoryDiet || category == taxonomy.CategoryAllergy) &&
					taxonomy.IsKnown(normalized) {
					result.Vector.Exclusions[normalized] = struct{}{}
					continue
				}

				tags, ok := dietaryAnswers[normalized]
				if !ok {
					// Fail closed: never guess at an allergy
					result.Unconfirmed = append(result.Unconfirmed, value)
					continue
				}
				for _, tag := range tags {
					result.Vector.Exclusions[tag] = struct{}{}
				}
			}

		default:
			// Unknown question: raw log only
		}
	}

	return result, nil
}

// normalize lowercases an answer value and folds separators so that
// "Gluten Free", "gluten-free" and "gluten_free" all parse identically
func normalize(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = strings.ReplaceAll(value, " ", "_")
	value = strings.ReplaceAll(value, "-", "_")
	return value
}
