// Package intent turns a guest's questionnaire answers into the structured
// preference signal the scoring engine consumes.
package intent

// Question identifiers accepted by the builder. Answers referencing any
// other identifier are kept in the raw answer log but never affect scoring.
const (
	QuestionMood    = "mood"
	QuestionFlavor  = "flavor"
	QuestionPortion = "portion"
	QuestionDietary = "dietary"
)

// Answer is one raw question/answer pair as the guest gave it
type Answer struct {
	QuestionID string   `json:"question_id"`
	Values     []string `json:"values"`
}

// Vector is the folded preference signal for one guest session. Mood,
// flavor and portion are soft preferences (boosts only); the exclusion set
// holds hard diet/allergy constraints. A Vector is immutable once scoring
// begins.
type Vector struct {
	Mood       string
	Flavors    []string
	Portion    string
	Exclusions map[string]struct{}

	// RawAnswers preserves the ordered question→answer record for the
	// session/event collaborator.
	RawAnswers []Answer
}

// HasMood reports whether the guest stated a mood preference
func (v *Vector) HasMood() bool {
	return v.Mood != ""
}

// HasPortion reports whether the guest stated a portion preference
func (v *Vector) HasPortion() bool {
	return v.Portion != ""
}

// Excludes reports whether the given item tag is in the guest's hard
// exclusion set
func (v *Vector) Excludes(tag string) bool {
	_, ok := v.Exclusions[tag]
	return ok
}
