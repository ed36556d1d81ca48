package database

import (
	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/menu"
	"github.com/platewise/v1/internal/domain/taxonomy"
	gormModels "github.com/platewise/v1/internal/infrastructure/persistence/gorm"
	"gorm.io/gorm"
)

// DemoVenueID is the venue the seed data belongs to
var DemoVenueID = uuid.MustParse("6f1b0778-9e4a-4a24-b2f6-9a15a1c7a301")

// Seed populates the database with a demo venue catalog. It is a no-op
// when menu items already exist.
func Seed(db *gorm.DB) error {
	var count int64
	db.Model(&gormModels.MenuItemModel{}).Count(&count)
	if count > 0 {
		return nil // Already seeded
	}

	items := []gormModels.MenuItemModel{
		{
			Name:       "Truffle Mac & Cheese",
			Price:      14.50,
			Category:   "mains",
			Kind:       string(menu.KindFood),
			Tags:       gormModels.StringSlice{taxonomy.TagMoodComfort, taxonomy.TagFlavorRich, taxonomy.TagPortionLarge, taxonomy.TagDietDairy, taxonomy.TagAllergyDairy, taxonomy.TagAllergyGluten},
			Popularity: 8,
			Push:       true,
		},
		{
			Name:       "Citrus Quinoa Salad",
			Price:      11.00,
			Category:   "salads",
			Kind:       string(menu.KindFood),
			Tags:       gormModels.StringSlice{taxonomy.TagMoodLight, taxonomy.TagFlavorFresh, taxonomy.TagPortionSmall},
			Popularity: 6,
		},
		{
			Name:       "Smoked Brisket Platter",
			Price:      19.00,
			Category:   "mains",
			Kind:       string(menu.KindFood),
			Tags:       gormModels.StringSlice{taxonomy.TagMoodComfort, taxonomy.TagFlavorSmoky, taxonomy.TagPortionSharing, taxonomy.TagDietMeat},
			Popularity: 9,
		},
		{
			Name:       "Gochujang Cauliflower Bites",
			Price:      9.50,
			Category:   "starters",
			Kind:       string(menu.KindFood),
			Tags:       gormModels.StringSlice{taxonomy.TagMoodAdventurous, taxonomy.TagFlavorSpicy, taxonomy.TagPortionSmall, taxonomy.TagAllergySoy},
			Popularity: 5,
		},
		{
			Name:       "Hazelnut Chocolate Torte",
			Price:      8.00,
			Category:   "desserts",
			Kind:       string(menu.KindFood),
			Tags:       gormModels.StringSlice{taxonomy.TagMoodTreat, taxonomy.TagFlavorSweet, taxonomy.TagPortionSmall, taxonomy.TagAllergyNuts, taxonomy.TagDietEgg},
			Popularity: 7,
		},
		{
			Name:       "Barrel-Aged Old Fashioned",
			Price:      12.00,
			Category:   "cocktails",
			Kind:       string(menu.KindDrink),
			Tags:       gormModels.StringSlice{taxonomy.TagPairUnwind, taxonomy.TagDrinkFlavorBitter},
			Popularity: 7,
		},
		{
			Name:       "Cucumber Mint Spritz",
			Price:      7.50,
			Category:   "mocktails",
			Kind:       string(menu.KindDrink),
			Tags:       gormModels.StringSlice{taxonomy.TagPairRefresh, taxonomy.TagDrinkFlavorCrisp, taxonomy.TagDrinkFlavorHerbal},
			Popularity: 6,
		},
		{
			Name:       "Salted Caramel Milkshake",
			Price:      8.50,
			Category:   "shakes",
			Kind:       string(menu.KindDrink),
			Tags:       gormModels.StringSlice{taxonomy.TagPairTreat, taxonomy.TagDrinkFlavorSweet, taxonomy.TagDrinkFlavorCreamy, taxonomy.TagAllergyDairy, taxonomy.TagDietDairy},
			Popularity: 8,
		},
		{
			Name:       "Cold Brew Tonic",
			Price:      6.50,
			Category:   "coffee",
			Kind:       string(menu.KindDrink),
			Tags:       gormModels.StringSlice{taxonomy.TagPairEnergize, taxonomy.TagDrinkFlavorBitter},
			Popularity: 5,
		},
	}

	for i := range items {
		items[i].ID = uuid.New()
		items[i].VenueID = DemoVenueID
		items[i].Position = i
	}

	return db.Create(&items).Error
}
