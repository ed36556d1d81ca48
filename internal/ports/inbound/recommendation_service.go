// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the use cases the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/intent"
)

// RecommendationService is the guest-facing use case: fold the questionnaire
// answers, score the venue's catalog, and return ranked picks plus one
// drink upsell
type RecommendationService interface {
	Recommend(ctx context.Context, cmd RecommendCommand) (*RecommendationDTO, error)
}

// RecommendCommand carries one recommendation request
type RecommendCommand struct {
	VenueID   uuid.UUID
	SessionID uuid.UUID

	// ClientID identifies the requesting client for throttling only; the
	// engine itself is unaware of identity or quotas
	ClientID string

	// Answers is the ordered question/answer record from the guest
	Answers []intent.Answer
}

// RecommendedItemDTO is one ranked food pick
type RecommendedItemDTO struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Price  float64   `json:"price"`
	Reason string    `json:"reason"`
	Tags   []string  `json:"tags"`
	Score  float64   `json:"score"`
}

// UpsellDTO is the single complementary drink pick
type UpsellDTO struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Price  float64   `json:"price"`
	Reason string    `json:"reason"`
}

// RecommendationDTO is the guest-facing result
type RecommendationDTO struct {
	Recommendations []RecommendedItemDTO `json:"recommendations"`
	Upsell          *UpsellDTO           `json:"upsell"`
	Status          string               `json:"status"`
}
