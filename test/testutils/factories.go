// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/menu"
	"github.com/platewise/v1/internal/domain/taxonomy"
)

// ItemFactory provides methods to create test catalog items
type ItemFactory struct {
	faker    *gofakeit.Faker
	position int
}

// NewItemFactory creates a new item factory with seeded faker so test
// data stays reproducible across runs
func NewItemFactory(seed int64) *ItemFactory {
	return &ItemFactory{
		faker: gofakeit.New(seed),
	}
}

// ItemBuilder provides a fluent interface for building test items
type ItemBuilder struct {
	item menu.Item
}

// NewItemBuilder creates a new item builder with sensible defaults
func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		item: menu.Item{
			ID:         uuid.New(),
			Name:       "Test Dish",
			Price:      12.50,
			Category:   "mains",
			Kind:       menu.KindFood,
			Popularity: 5,
		},
	}
}

// WithName sets the item name
func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.item.Name = name
	return b
}

// WithPrice sets the item price
func (b *ItemBuilder) WithPrice(price float64) *ItemBuilder {
	b.item.Price = price
	return b
}

// WithCategory sets the menu category
func (b *ItemBuilder) WithCategory(category string) *ItemBuilder {
	b.item.Category = category
	return b
}

// WithKind sets the item kind
func (b *ItemBuilder) WithKind(kind menu.Kind) *ItemBuilder {
	b.item.Kind = kind
	return b
}

// WithTags sets the item tags
func (b *ItemBuilder) WithTags(tags ...string) *ItemBuilder {
	b.item.Tags = tags
	return b
}

// WithPopularity sets the popularity score
func (b *ItemBuilder) WithPopularity(popularity float64) *ItemBuilder {
	b.item.Popularity = popularity
	return b
}

// WithPosition sets the catalog position
func (b *ItemBuilder) WithPosition(position int) *ItemBuilder {
	b.item.Position = position
	return b
}

// AsPush marks the item as venue-pushed
func (b *ItemBuilder) AsPush() *ItemBuilder {
	b.item.Push = true
	return b
}

// AsUnavailable marks the item as unavailable
func (b *ItemBuilder) AsUnavailable() *ItemBuilder {
	b.item.Unavailable = true
	return b
}

// AsOutOfStock marks the item as out of stock
func (b *ItemBuilder) AsOutOfStock() *ItemBuilder {
	b.item.OutOfStock = true
	return b
}

// Build returns the constructed item
func (b *ItemBuilder) Build() menu.Item {
	return b.item
}

// CreateFoodItem creates a random food item
func (f *ItemFactory) CreateFoodItem() menu.Item {
	f.position++
	return menu.Item{
		ID:         uuid.New(),
		Name:       f.faker.Dinner(),
		Price:      f.faker.Float64Range(5, 30),
		Category:   f.faker.RandomString([]string{"starters", "mains", "desserts"}),
		Kind:       menu.KindFood,
		Tags:       []string{f.randomMoodTag(), f.randomFlavorTag()},
		Popularity: f.faker.Float64Range(0, 10),
		Position:   f.position,
	}
}

// CreateDrinkItem creates a random drink item
func (f *ItemFactory) CreateDrinkItem() menu.Item {
	f.position++
	return menu.Item{
		ID:         uuid.New(),
		Name:       f.faker.BeerName(),
		Price:      f.faker.Float64Range(3, 15),
		Category:   f.faker.RandomString([]string{"cocktails", "mocktails", "coffee"}),
		Kind:       menu.KindDrink,
		Tags:       []string{f.randomPairingTag(), f.randomDrinkFlavorTag()},
		Popularity: f.faker.Float64Range(0, 10),
		Position:   f.position,
	}
}

// CreateCatalog creates a mixed catalog of the given sizes
func (f *ItemFactory) CreateCatalog(foodCount, drinkCount int) []menu.Item {
	items := make([]menu.Item, 0, foodCount+drinkCount)
	for i := 0; i < foodCount; i++ {
		items = append(items, f.CreateFoodItem())
	}
	for i := 0; i < drinkCount; i++ {
		items = append(items, f.CreateDrinkItem())
	}
	return items
}

func (f *ItemFactory) randomMoodTag() string {
	return f.faker.RandomString(taxonomy.Tags(taxonomy.CategoryMood))
}

func (f *ItemFactory) randomFlavorTag() string {
	return f.faker.RandomString(taxonomy.Tags(taxonomy.CategoryFlavor))
}

func (f *ItemFactory) randomPairingTag() string {
	return f.faker.RandomString(taxonomy.Tags(taxonomy.CategoryPairing))
}

func (f *ItemFactory) randomDrinkFlavorTag() string {
	return f.faker.RandomString(taxonomy.Tags(taxonomy.CategoryDrinkFlavor))
}
