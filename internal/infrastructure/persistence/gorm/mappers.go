package gorm

import (
	"github.com/platewise/v1/internal/domain/menu"
	"github.com/platewise/v1/internal/ports/outbound"
)

// MenuItemFromModel converts a GORM model to a domain catalog item
func MenuItemFromModel(model *MenuItemModel) *menu.Item {
	return &menu.Item{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		Category:    model.Category,
		Kind:        menu.Kind(model.Kind),
		Tags:        model.Tags,
		Popularity:  model.Popularity,
		Push:        model.Push,
		Unavailable: model.Unavailable,
		OutOfStock:  model.OutOfStock,
		Position:    model.Position,
	}
}

// EventToModel converts a recommendation event to its GORM model
func EventToModel(event outbound.RecommendationEvent) RecommendationEventModel {
	return RecommendationEventModel{
		ID:        event.ID,
		SessionID: event.SessionID,
		VenueID:   event.VenueID,
		ItemID:    event.ItemID,
		Rank:      event.Rank,
		Score:     event.Score,
		Upsell:    event.Upsell,
		CreatedAt: event.CreatedAt,
	}
}
