// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the external collaborators the engine consumes but never owns:
// the menu catalog, the session/event store, and the request throttle
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/menu"
)

// MenuCatalog supplies the full current item list for a venue on demand.
// The engine never mutates it, and fetches fresh per recommendation request
// since catalog content can change between requests.
type MenuCatalog interface {
	FindByVenue(ctx context.Context, venueID uuid.UUID) ([]*menu.Item, error)
}

// RecommendationEvent is one (session, item, rank, score) tuple handed to
// the session/event collaborator for durable recording
type RecommendationEvent struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	VenueID   uuid.UUID
	ItemID    uuid.UUID
	Rank      int
	Score     float64
	Upsell    bool
	CreatedAt time.Time
}

// SessionEventStore accepts the final recommendation result for analytics
// persistence. Write failures must never block or alter the guest-facing
// result; callers invoke this fire-and-forget.
type SessionEventStore interface {
	RecordRecommendations(ctx context.Context, events []RecommendationEvent) error
}

// Throttle gates how often a given client may request a new recommendation
// computation. A nil error means the request may proceed.
type Throttle interface {
	Allow(ctx context.Context, clientID string) error
}
