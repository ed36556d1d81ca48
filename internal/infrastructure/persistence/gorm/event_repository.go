package gorm

import (
	"context"

	"github.com/platewise/v1/internal/ports/outbound"
	"gorm.io/gorm"
)

// EventRepository implements the session/event collaborator using GORM
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new recommendation event repository
func NewEventRepository(db *gorm.DB) outbound.SessionEventStore {
	return &EventRepository{db: db}
}

// RecordRecommendations stores the ranked tuples of one computation in a
// single batch insert
func (r *EventRepository) RecordRecommendations(ctx context.Context, events []outbound.RecommendationEvent) error {
	if len(events) == 0 {
		return nil
	}

	models := make([]RecommendationEventModel, len(events))
	for i, event := range events {
		models[i] = EventToModel(event)
	}

	return r.db.WithContext(ctx).Create(&models).Error
}
