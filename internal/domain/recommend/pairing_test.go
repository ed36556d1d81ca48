package recommend

import (
	"testing"

	"github.com/platewise/v1/internal/domain/menu"
	"github.com/platewise/v1/internal/domain/taxonomy"
	"github.com/platewise/v1/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// PairingTestSuite provides a test suite for drink upsell pairing
type PairingTestSuite struct {
	suite.Suite
	weights Weights
}

func (suite *PairingTestSuite) SetupSuite() {
	suite.weights = DefaultWeights()
}

func drinkPtrs(items ...menu.Item) []*menu.Item {
	out := make([]*menu.Item, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}

func (suite *PairingTestSuite) TestSelection() {
	suite.Run("PairingIntentMatch_ShouldBeatPopularity", func() {
		// Arrange
		oldFashioned := testutils.NewItemBuilder().
			WithName("Old Fashioned").WithKind(menu.KindDrink).
			WithTags(taxonomy.TagPairUnwind, taxonomy.TagDrinkFlavorBitter).
			WithPopularity(3).WithPosition(0).Build()
		houseLager := testutils.NewItemBuilder().
			WithName("House Lager").WithKind(menu.KindDrink).
			WithTags(taxonomy.TagDrinkFlavorCrisp).
			WithPopularity(9).WithPosition(1).Build()

		// Act
		pick := PairDrink(
			drinkPtrs(houseLager, oldFashioned),
			taxonomy.TagMoodComfort,
			vectorOf(taxonomy.TagMoodComfort, nil, ""),
			suite.weights,
		)

		// Assert
		require.NotNil(suite.T(), pick)
		assert.Equal(suite.T(), "Old Fashioned", pick.Item.Name)
		assert.Equal(suite.T(), "Something to unwind with alongside comfort food.", pick.Reason)
	})

	suite.Run("DrinkFlavorMatch_ShouldAddSmallerBonus", func() {
		milkshake := testutils.NewItemBuilder().
			WithName("Milkshake").WithKind(menu.KindDrink).
			WithTags(taxonomy.TagDrinkFlavorCreamy).
			WithPopularity(0).Build()

		pick := PairDrink(
			drinkPtrs(milkshake),
			taxonomy.TagMoodComfort,
			vectorOf(taxonomy.TagMoodComfort, nil, ""),
			suite.weights,
		)

		require.NotNil(suite.T(), pick)
		// Drink-flavor bonus only: no pairing-intent tag matched
		assert.InDelta(suite.T(), suite.weights.DrinkFlavorBonus, pick.Score, 1e-9)
	})

	suite.Run("UnknownMood_ShouldFallBackToPopularityWithGenericReason", func() {
		spritz := testutils.NewItemBuilder().
			WithName("Spritz").WithKind(menu.KindDrink).
			WithTags(taxonomy.TagPairRefresh).
			WithPopularity(4).WithPosition(0).Build()
		coldBrew := testutils.NewItemBuilder().
			WithName("Cold Brew").WithKind(menu.KindDrink).
			WithTags(taxonomy.TagPairEnergize).
			WithPopularity(7).WithPosition(1).Build()

		pick := PairDrink(drinkPtrs(spritz, coldBrew), "", vectorOf("", nil, ""), suite.weights)

		require.NotNil(suite.T(), pick)
		assert.Equal(suite.T(), "Cold Brew", pick.Item.Name)
		assert.Equal(suite.T(), "A popular pick to round out your meal.", pick.Reason)
	})

	suite.Run("EveryMoodInTheMap_ShouldRenderItsOwnReason", func() {
		for mood := range moodPairings {
			drink := testutils.NewItemBuilder().
				WithName("Any").WithKind(menu.KindDrink).Build()

			pick := PairDrink(drinkPtrs(drink), mood, vectorOf(mood, nil, ""), suite.weights)

			require.NotNil(suite.T(), pick, mood)
			assert.NotEmpty(suite.T(), pick.Reason, mood)
			assert.NotContains(suite.T(), pick.Reason, "%s", mood)
		}
	})
}

func (suite *PairingTestSuite) TestExclusions() {
	suite.Run("ExcludedDrink_ShouldNeverBeOffered", func() {
		milkshake := testutils.NewItemBuilder().
			WithName("Milkshake").WithKind(menu.KindDrink).
			WithTags(taxonomy.TagPairUnwind, taxonomy.TagAllergyDairy).
			WithPopularity(9).Build()
		tea := testutils.NewItemBuilder().
			WithName("Tea").WithKind(menu.KindDrink).
			WithPopularity(2).Build()

		vector := vectorOf(taxonomy.TagMoodComfort, nil, "", taxonomy.TagAllergyDairy)

		pick := PairDrink(drinkPtrs(milkshake, tea), taxonomy.TagMoodComfort, vector, suite.weights)

		require.NotNil(suite.T(), pick)
		assert.Equal(suite.T(), "Tea", pick.Item.Name)
	})

	suite.Run("AllDrinksExcluded_ShouldReturnNil", func() {
		milkshake := testutils.NewItemBuilder().
			WithName("Milkshake").WithKind(menu.KindDrink).
			WithTags(taxonomy.TagAllergyDairy).Build()

		vector := vectorOf("", nil, "", taxonomy.TagAllergyDairy)

		assert.Nil(suite.T(), PairDrink(drinkPtrs(milkshake), "", vector, suite.weights))
	})

	suite.Run("NoDrinksAtAll_ShouldReturnNil", func() {
		assert.Nil(suite.T(), PairDrink(nil, taxonomy.TagMoodTreat, vectorOf("", nil, ""), suite.weights))
	})

	suite.Run("FoodItem_ShouldBeIgnored", func() {
		cake := testutils.NewItemBuilder().
			WithName("Cake").WithKind(menu.KindFood).
			WithTags(taxonomy.TagPairTreat).WithPopularity(9).Build()

		assert.Nil(suite.T(), PairDrink(drinkPtrs(cake), taxonomy.TagMoodTreat, vectorOf("", nil, ""), suite.weights))
	})

	suite.Run("UnavailableDrink_ShouldBeIgnored", func() {
		sold := testutils.NewItemBuilder().
			WithName("Sold Out").WithKind(menu.KindDrink).
			AsOutOfStock().Build()

		assert.Nil(suite.T(), PairDrink(drinkPtrs(sold), "", vectorOf("", nil, ""), suite.weights))
	})
}

func (suite *PairingTestSuite) TestDeterminism() {
	suite.Run("TiedDrinks_ShouldBreakByPosition", func() {
		first := testutils.NewItemBuilder().
			WithName("First").WithKind(menu.KindDrink).
			WithPopularity(5).WithPosition(0).Build()
		second := testutils.NewItemBuilder().
			WithName("Second").WithKind(menu.KindDrink).
			WithPopularity(5).WithPosition(1).Build()

		for i := 0; i < 20; i++ {
			pick := PairDrink(drinkPtrs(second, first), "", vectorOf("", nil, ""), suite.weights)
			require.NotNil(suite.T(), pick)
			assert.Equal(suite.T(), "First", pick.Item.Name)
		}
	})
}

func TestPairingTestSuite(t *testing.T) {
	suite.Run(t, new(PairingTestSuite))
}
