package gorm

import (
	"context"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/menu"
	"github.com/platewise/v1/internal/ports/outbound"
	"gorm.io/gorm"
)

// MenuRepository implements the catalog collaborator interface using GORM
type MenuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *gorm.DB) outbound.MenuCatalog {
	return &MenuRepository{db: db}
}

// FindByVenue returns the venue's full current item list in catalog
// insertion order. Availability filtering is the scoring engine's job, not
// the repository's: out-of-stock items still need their exclusion recorded.
func (r *MenuRepository) FindByVenue(ctx context.Context, venueID uuid.UUID) ([]*menu.Item, error) {
	var models []MenuItemModel

	result := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("position ASC, created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*menu.Item, len(models))
	for i := range models {
		items[i] = MenuItemFromModel(&models[i])
	}

	return items, nil
}
