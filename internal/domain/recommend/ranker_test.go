package recommend

import (
	"testing"

	"github.com/platewise/v1/internal/domain/intent"
	"github.com/platewise/v1/internal/domain/menu"
	"github.com/platewise/v1/internal/domain/taxonomy"
	"github.com/platewise/v1/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RankerTestSuite provides a test suite for ranking and explanations
type RankerTestSuite struct {
	suite.Suite
	weights Weights
}

func (suite *RankerTestSuite) SetupSuite() {
	suite.weights = DefaultWeights()
}

// scoreAll scores a catalog of food items against one vector
func (suite *RankerTestSuite) scoreAll(items []menu.Item, vector *intent.Vector) []ScoredItem {
	scored := make([]ScoredItem, 0, len(items))
	for i := range items {
		scored = append(scored, ScoreItem(&items[i], vector, suite.weights))
	}
	return scored
}

func (suite *RankerTestSuite) TestStatuses() {
	suite.Run("NoScoredItems_ShouldReportEmptyCatalog", func() {
		result := Rank(nil, suite.weights)

		assert.Equal(suite.T(), StatusEmptyCatalog, result.Status)
		assert.Empty(suite.T(), result.Items)
	})

	suite.Run("EverythingExcluded_ShouldReportAllExcluded", func() {
		items := []menu.Item{
			testutils.NewItemBuilder().WithName("Satay").WithTags(taxonomy.TagAllergyNuts).Build(),
			testutils.NewItemBuilder().WithName("Torte").WithTags(taxonomy.TagAllergyNuts).Build(),
		}
		vector := vectorOf("", nil, "", taxonomy.TagAllergyNuts)

		result := Rank(suite.scoreAll(items, vector), suite.weights)

		assert.Equal(suite.T(), StatusAllExcluded, result.Status)
		assert.Empty(suite.T(), result.Items)
	})
}

func (suite *RankerTestSuite) TestOrdering() {
	suite.Run("PreferenceMatch_ShouldBeatRawPopularity", func() {
		// A modestly popular dish matching the guest's mood must outrank
		// the venue's most popular dish that matches nothing
		pasta := testutils.NewItemBuilder().
			WithName("Pasta").WithPopularity(5).WithPosition(0).
			WithTags(taxonomy.TagMoodComfort).Build()
		salad := testutils.NewItemBuilder().
			WithName("Salad").WithPopularity(8).WithPosition(1).
			WithTags(taxonomy.TagMoodLight).Build()

		vector := vectorOf(taxonomy.TagMoodComfort, nil, "")

		result := Rank(suite.scoreAll([]menu.Item{salad, pasta}, vector), suite.weights)

		require.Len(suite.T(), result.Items, 2)
		assert.Equal(suite.T(), "Pasta", result.Items[0].Item.Name)
		assert.Equal(suite.T(), "Salad", result.Items[1].Item.Name)
	})

	suite.Run("ScoreTie_ShouldBreakByPopularityThenPosition", func() {
		a := testutils.NewItemBuilder().WithName("A").WithPopularity(4).WithPosition(2).Build()
		b := testutils.NewItemBuilder().WithName("B").WithPopularity(6).WithPosition(1).Build()
		c := testutils.NewItemBuilder().WithName("C").WithPopularity(6).WithPosition(0).Build()

		// No preferences: all scores are popularity*0.1, so B and C tie
		vector := vectorOf("", nil, "")

		result := Rank(suite.scoreAll([]menu.Item{a, b, c}, vector), suite.weights)

		require.Len(suite.T(), result.Items, 3)
		assert.Equal(suite.T(), "C", result.Items[0].Item.Name)
		assert.Equal(suite.T(), "B", result.Items[1].Item.Name)
		assert.Equal(suite.T(), "A", result.Items[2].Item.Name)
	})

	suite.Run("ScoresMonotonicallyDecrease", func() {
		factory := testutils.NewItemFactory(7)
		items := factory.CreateCatalog(40, 0)
		vector := vectorOf(taxonomy.TagMoodComfort, []string{taxonomy.TagFlavorRich}, "")

		result := Rank(suite.scoreAll(items, vector), suite.weights)

		for i := 1; i < len(result.Items); i++ {
			assert.GreaterOrEqual(suite.T(), result.Items[i-1].Score, result.Items[i].Score)
		}
	})

	suite.Run("IdenticalInputs_ShouldRankIdentically", func() {
		factory := testutils.NewItemFactory(11)
		items := factory.CreateCatalog(30, 0)
		vector := vectorOf(taxonomy.TagMoodAdventurous, nil, taxonomy.TagPortionSmall)

		first := Rank(suite.scoreAll(items, vector), suite.weights)
		for i := 0; i < 10; i++ {
			again := Rank(suite.scoreAll(items, vector), suite.weights)
			require.Len(suite.T(), again.Items, len(first.Items))
			for j := range first.Items {
				assert.Equal(suite.T(), first.Items[j].Item.ID, again.Items[j].Item.ID)
			}
		}
	})
}

func (suite *RankerTestSuite) TestTopK() {
	suite.Run("ResultLength_ShouldNeverExceedTopK", func() {
		factory := testutils.NewItemFactory(3)
		items := factory.CreateCatalog(25, 0)

		result := Rank(suite.scoreAll(items, vectorOf("", nil, "")), suite.weights)

		assert.LessOrEqual(suite.T(), len(result.Items), suite.weights.TopK)
	})

	suite.Run("FewerEligibleThanTopK_ShouldReturnAll", func() {
		items := []menu.Item{
			testutils.NewItemBuilder().WithName("Only").Build(),
		}

		result := Rank(suite.scoreAll(items, vectorOf("", nil, "")), suite.weights)

		assert.Equal(suite.T(), StatusOK, result.Status)
		assert.Len(suite.T(), result.Items, 1)
	})
}

func (suite *RankerTestSuite) TestDiversity() {
	suite.Run("CategoryCap_ShouldPromoteOtherCategories", func() {
		// Three top-scoring desserts, one weaker main. With a cap of two
		// per category the main takes the third slot.
		desserts := []menu.Item{
			testutils.NewItemBuilder().WithName("Cake").WithCategory("desserts").WithPopularity(9).WithPosition(0).Build(),
			testutils.NewItemBuilder().WithName("Pie").WithCategory("desserts").WithPopularity(8).WithPosition(1).Build(),
			testutils.NewItemBuilder().WithName("Tart").WithCategory("desserts").WithPopularity(7).WithPosition(2).Build(),
		}
		main := testutils.NewItemBuilder().WithName("Stew").WithCategory("mains").WithPopularity(2).WithPosition(3).Build()

		items := append(desserts, main)
		result := Rank(suite.scoreAll(items, vectorOf("", nil, "")), suite.weights)

		require.Len(suite.T(), result.Items, 3)
		names := []string{result.Items[0].Item.Name, result.Items[1].Item.Name, result.Items[2].Item.Name}
		assert.Equal(suite.T(), []string{"Cake", "Pie", "Stew"}, names)
	})

	suite.Run("CapWouldUnderfill_ShouldRelax", func() {
		// Only one category exists; the cap must give way rather than
		// return fewer than K picks
		items := []menu.Item{
			testutils.NewItemBuilder().WithName("Cake").WithCategory("desserts").WithPopularity(9).WithPosition(0).Build(),
			testutils.NewItemBuilder().WithName("Pie").WithCategory("desserts").WithPopularity(8).WithPosition(1).Build(),
			testutils.NewItemBuilder().WithName("Tart").WithCategory("desserts").WithPopularity(7).WithPosition(2).Build(),
		}

		result := Rank(suite.scoreAll(items, vectorOf("", nil, "")), suite.weights)

		require.Len(suite.T(), result.Items, 3)
		// Order stays monotonic after relaxation
		assert.Equal(suite.T(), "Cake", result.Items[0].Item.Name)
		assert.Equal(suite.T(), "Pie", result.Items[1].Item.Name)
		assert.Equal(suite.T(), "Tart", result.Items[2].Item.Name)
	})

	suite.Run("ZeroCap_ShouldDisableDiversity", func() {
		weights := suite.weights
		weights.DiversityMaxPerCategory = 0

		items := []menu.Item{
			testutils.NewItemBuilder().WithName("Cake").WithCategory("desserts").WithPopularity(9).WithPosition(0).Build(),
			testutils.NewItemBuilder().WithName("Pie").WithCategory("desserts").WithPopularity(8).WithPosition(1).Build(),
			testutils.NewItemBuilder().WithName("Tart").WithCategory("desserts").WithPopularity(7).WithPosition(2).Build(),
			testutils.NewItemBuilder().WithName("Stew").WithCategory("mains").WithPopularity(2).WithPosition(3).Build(),
		}

		result := Rank(suite.scoreAll(items, vectorOf("", nil, "")), weights)

		require.Len(suite.T(), result.Items, 3)
		assert.Equal(suite.T(), "Tart", result.Items[2].Item.Name)
	})
}

func (suite *RankerTestSuite) TestReasons() {
	suite.Run("MoodMatch_ShouldOutrankOtherAxesForTheReason", func() {
		item := testutils.NewItemBuilder().
			WithName("Pasta").
			WithTags(taxonomy.TagFlavorRich, taxonomy.TagMoodComfort, taxonomy.TagPortionLarge).
			Build()
		vector := vectorOf(
			taxonomy.TagMoodComfort,
			[]string{taxonomy.TagFlavorRich},
			taxonomy.TagPortionLarge,
		)

		result := Rank(suite.scoreAll([]menu.Item{item}, vector), suite.weights)

		require.Len(suite.T(), result.Items, 1)
		assert.Equal(suite.T(), "Matches your craving for comfort food.", result.Items[0].Reason)
	})

	suite.Run("FlavorOnlyMatch_ShouldUseFlavorTemplate", func() {
		item := testutils.NewItemBuilder().
			WithName("Wings").
			WithTags(taxonomy.TagFlavorSpicy).
			Build()
		vector := vectorOf(taxonomy.TagMoodComfort, []string{taxonomy.TagFlavorSpicy}, "")

		result := Rank(suite.scoreAll([]menu.Item{item}, vector), suite.weights)

		require.Len(suite.T(), result.Items, 1)
		assert.Equal(suite.T(), "Brings a spicy kick, just like you asked.", result.Items[0].Reason)
	})

	suite.Run("NoMatches_ShouldFallBackToPopularity", func() {
		item := testutils.NewItemBuilder().WithName("Bread").Build()

		result := Rank(suite.scoreAll([]menu.Item{item}, vectorOf("", nil, "")), suite.weights)

		require.Len(suite.T(), result.Items, 1)
		assert.Equal(suite.T(), "A crowd favorite at this venue.", result.Items[0].Reason)
	})
}

func (suite *RankerTestSuite) TestDominantMood() {
	suite.Run("TopPickMoodMatch_ShouldWin", func() {
		item := testutils.NewItemBuilder().WithTags(taxonomy.TagMoodTreat).Build()
		vector := vectorOf(taxonomy.TagMoodTreat, nil, "")

		result := Rank(suite.scoreAll([]menu.Item{item}, vector), suite.weights)

		assert.Equal(suite.T(), taxonomy.TagMoodTreat, DominantMood(result, vector.Mood))
	})

	suite.Run("NoFoodMoodMatch_ShouldFallBackToStatedMood", func() {
		item := testutils.NewItemBuilder().WithTags(taxonomy.TagFlavorFresh).Build()
		vector := vectorOf(taxonomy.TagMoodLight, nil, "")

		result := Rank(suite.scoreAll([]menu.Item{item}, vector), suite.weights)

		assert.Equal(suite.T(), taxonomy.TagMoodLight, DominantMood(result, vector.Mood))
	})

	suite.Run("EmptyRecommendation_ShouldFallBackToStatedMood", func() {
		assert.Equal(suite.T(),
			taxonomy.TagMoodComfort,
			DominantMood(Recommendation{}, taxonomy.TagMoodComfort))
	})
}

func TestRankerTestSuite(t *testing.T) {
	suite.Run(t, new(RankerTestSuite))
}
