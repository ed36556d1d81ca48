package recommend

import (
	"testing"

	"github.com/platewise/v1/internal/domain/intent"
	"github.com/platewise/v1/internal/domain/taxonomy"
	"github.com/platewise/v1/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// ScorerTestSuite provides a test suite for per-item scoring
type ScorerTestSuite struct {
	suite.Suite
	weights Weights
}

func (suite *ScorerTestSuite) SetupSuite() {
	suite.weights = DefaultWeights()
}

// vectorOf builds a vector directly, bypassing the answer builder
func vectorOf(mood string, flavors []string, portion string, exclusions ...string) *intent.Vector {
	v := &intent.Vector{
		Mood:       mood,
		Flavors:    flavors,
		Portion:    portion,
		Exclusions: make(map[string]struct{}),
	}
	for _, tag := range exclusions {
		v.Exclusions[tag] = struct{}{}
	}
	return v
}

func (suite *ScorerTestSuite) TestBaseline() {
	suite.Run("NoPreferences_ShouldScorePopularityOnly", func() {
		// Arrange
		item := testutils.NewItemBuilder().
			WithPopularity(8).
			WithTags(taxonomy.TagMoodLight, taxonomy.TagFlavorFresh).
			Build()

		// Act
		scored := ScoreItem(&item, vectorOf("", nil, ""), suite.weights)

		// Assert
		assert.False(suite.T(), scored.Excluded)
		assert.InDelta(suite.T(), 0.8, scored.Score, 1e-9)
	})

	suite.Run("PushWithNoPreferences_ShouldAddPushBonus", func() {
		item := testutils.NewItemBuilder().
			WithPopularity(8).
			AsPush().
			Build()

		scored := ScoreItem(&item, vectorOf("", nil, ""), suite.weights)

		assert.InDelta(suite.T(), 5.8, scored.Score, 1e-9)
	})
}

func (suite *ScorerTestSuite) TestAxisBonuses() {
	suite.Run("EachMatchedAxis_ShouldAddOneBonus", func() {
		item := testutils.NewItemBuilder().
			WithPopularity(5).
			WithTags(taxonomy.TagMoodComfort, taxonomy.TagFlavorRich, taxonomy.TagPortionLarge).
			Build()

		vector := vectorOf(
			taxonomy.TagMoodComfort,
			[]string{taxonomy.TagFlavorRich},
			taxonomy.TagPortionLarge,
		)

		scored := ScoreItem(&item, vector, suite.weights)

		// 5*0.1 + 10 + 10 + 10
		assert.InDelta(suite.T(), 30.5, scored.Score, 1e-9)

		mood, ok := scored.MatchedTag(AxisMood)
		assert.True(suite.T(), ok)
		assert.Equal(suite.T(), taxonomy.TagMoodComfort, mood)
	})

	suite.Run("MultipleTagsOnOneAxis_ShouldScoreOnlyFirstMatch", func() {
		// Tag-stuffing the flavor axis must not stack bonuses
		item := testutils.NewItemBuilder().
			WithPopularity(0).
			WithTags(taxonomy.TagFlavorSpicy, taxonomy.TagFlavorRich, taxonomy.TagFlavorSmoky).
			Build()

		vector := vectorOf("", []string{
			taxonomy.TagFlavorSpicy, taxonomy.TagFlavorRich, taxonomy.TagFlavorSmoky,
		}, "")

		scored := ScoreItem(&item, vector, suite.weights)

		assert.InDelta(suite.T(), 10, scored.Score, 1e-9)

		tag, ok := scored.MatchedTag(AxisFlavor)
		assert.True(suite.T(), ok)
		assert.Equal(suite.T(), taxonomy.TagFlavorSpicy, tag)
	})

	suite.Run("UnmatchedAxis_ShouldAddNothing", func() {
		item := testutils.NewItemBuilder().
			WithPopularity(4).
			WithTags(taxonomy.TagMoodLight).
			Build()

		vector := vectorOf(taxonomy.TagMoodComfort, nil, "")

		scored := ScoreItem(&item, vector, suite.weights)

		assert.InDelta(suite.T(), 0.4, scored.Score, 1e-9)
		_, ok := scored.MatchedTag(AxisMood)
		assert.False(suite.T(), ok)
	})
}

func (suite *ScorerTestSuite) TestExclusions() {
	suite.Run("ExcludedTag_ShouldHardExclude", func() {
		// A high score elsewhere must never rescue an excluded item
		item := testutils.NewItemBuilder().
			WithPopularity(10).
			AsPush().
			WithTags(taxonomy.TagMoodComfort, taxonomy.TagAllergyNuts).
			Build()

		vector := vectorOf(taxonomy.TagMoodComfort, nil, "", taxonomy.TagAllergyNuts)

		scored := ScoreItem(&item, vector, suite.weights)

		assert.True(suite.T(), scored.Excluded)
		assert.Zero(suite.T(), scored.Score)
	})

	suite.Run("UnavailableItem_ShouldBeExcluded", func() {
		item := testutils.NewItemBuilder().AsUnavailable().Build()

		scored := ScoreItem(&item, vectorOf("", nil, ""), suite.weights)

		assert.True(suite.T(), scored.Excluded)
	})

	suite.Run("OutOfStockItem_ShouldBeExcluded", func() {
		item := testutils.NewItemBuilder().AsOutOfStock().Build()

		scored := ScoreItem(&item, vectorOf("", nil, ""), suite.weights)

		assert.True(suite.T(), scored.Excluded)
	})
}

func (suite *ScorerTestSuite) TestDeterminism() {
	suite.Run("RepeatedScoring_ShouldBeIdentical", func() {
		item := testutils.NewItemBuilder().
			WithPopularity(7).
			WithTags(taxonomy.TagMoodTreat, taxonomy.TagFlavorSweet).
			AsPush().
			Build()

		vector := vectorOf(taxonomy.TagMoodTreat, []string{taxonomy.TagFlavorSweet}, "")

		first := ScoreItem(&item, vector, suite.weights)
		for i := 0; i < 100; i++ {
			assert.Equal(suite.T(), first.Score, ScoreItem(&item, vector, suite.weights).Score)
		}
	})
}

func TestScorerTestSuite(t *testing.T) {
	suite.Run(t, new(ScorerTestSuite))
}

func BenchmarkScoreItem(b *testing.B) {
	factory := testutils.NewItemFactory(42)
	items := factory.CreateCatalog(200, 0)
	vector := &intent.Vector{
		Mood:       taxonomy.TagMoodComfort,
		Flavors:    []string{taxonomy.TagFlavorRich, taxonomy.TagFlavorSmoky},
		Portion:    taxonomy.TagPortionLarge,
		Exclusions: map[string]struct{}{taxonomy.TagAllergyNuts: {}},
	}
	weights := DefaultWeights()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		item := items[i%len(items)]
		_ = ScoreItem(&item, vector, weights)
	}
}
