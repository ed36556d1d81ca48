// Package recommendation provides the application layer for the guest
// recommendation use case: throttle gate, catalog snapshot, scoring,
// ranking, upsell pairing, and best-effort analytics persistence.
package recommendation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/intent"
	"github.com/platewise/v1/internal/domain/menu"
	"github.com/platewise/v1/internal/domain/recommend"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
	"go.uber.org/zap"
)

// Options tunes the service's interaction with its collaborators
type Options struct {
	// Development makes programming defects fail loudly instead of
	// degrading to a neutral result
	Development bool

	// CatalogTimeout bounds the per-request catalog fetch
	CatalogTimeout time.Duration

	// PersistTimeout bounds the fire-and-forget analytics write
	PersistTimeout time.Duration
}

func (o *Options) withDefaults() Options {
	opts := *o
	if opts.CatalogTimeout <= 0 {
		opts.CatalogTimeout = 2 * time.Second
	}
	if opts.PersistTimeout <= 0 {
		opts.PersistTimeout = 3 * time.Second
	}
	return opts
}

// Service implements the recommendation use case
type Service struct {
	catalog  outbound.MenuCatalog
	events   outbound.SessionEventStore
	throttle outbound.Throttle
	weights  recommend.Weights
	opts     Options
	logger   *zap.Logger
}

// NewService creates a new recommendation service
func NewService(
	catalog outbound.MenuCatalog,
	events outbound.SessionEventStore,
	throttle outbound.Throttle,
	weights recommend.Weights,
	opts Options,
	logger *zap.Logger,
) inbound.RecommendationService {
	return &Service{
		catalog:  catalog,
		events:   events,
		throttle: throttle,
		weights:  weights,
		opts:     opts.withDefaults(),
		logger:   logger.Named("recommendation-service"),
	}
}

// Recommend computes the ranked food picks and drink upsell for one guest
// session. Scoring runs against a single catalog snapshot fetched at the
// start of the computation, so the ranking stays internally consistent even
// if the catalog changes mid-flight for concurrent requests.
func (s *Service) Recommend(ctx context.Context, cmd inbound.RecommendCommand) (result *inbound.RecommendationDTO, err error) {
	defer func() {
		if r := recover(); r != nil {
			if s.opts.Development {
				panic(r)
			}
			s.logger.Error("Recommendation computation panicked",
				zap.Any("panic", r),
				zap.String("session_id", cmd.SessionID.String()),
			)
			result = emptyResult(recommend.StatusEmptyCatalog)
			err = nil
		}
	}()

	if err := s.throttle.Allow(ctx, cmd.ClientID); err != nil {
		return nil, errors.Wrap(err, "recommendation request throttled")
	}

	built, buildErr := intent.Build(cmd.Answers)
	if buildErr != nil {
		return nil, errors.NewValidationError(buildErr.Error())
	}
	if len(built.Unconfirmed) > 0 {
		// Allergy parsing fails closed: nothing is computed or persisted
		// until the guest restates the unrecognized values
		return nil, errors.NewDietaryUnconfirmedError(built.Unconfirmed)
	}
	vector := &built.Vector

	snapshot, fetchErr := s.fetchCatalog(ctx, cmd.VenueID)
	if fetchErr != nil {
		s.logger.Warn("Catalog unavailable",
			zap.String("venue_id", cmd.VenueID.String()),
			zap.Error(fetchErr),
		)
		return emptyResult(recommend.StatusEmptyCatalog), nil
	}
	if len(snapshot) == 0 {
		return emptyResult(recommend.StatusEmptyCatalog), nil
	}

	foods, drinks := s.partition(snapshot)

	scored := make([]recommend.ScoredItem, 0, len(foods))
	for _, item := range foods {
		scored = append(scored, recommend.ScoreItem(item, vector, s.weights))
	}

	ranked := recommend.Rank(scored, s.weights)

	mood := recommend.DominantMood(ranked, vector.Mood)
	upsell := recommend.PairDrink(drinks, mood, vector, s.weights)

	s.logger.Info("Recommendation computed",
		zap.String("session_id", cmd.SessionID.String()),
		zap.String("venue_id", cmd.VenueID.String()),
		zap.String("status", string(ranked.Status)),
		zap.Int("picks", len(ranked.Items)),
		zap.Bool("upsell", upsell != nil),
	)

	// Fire-and-forget: the guest-visible result never waits on, or fails
	// because of, the session/event collaborator
	if ranked.Status == recommend.StatusOK {
		go s.persist(cmd, ranked, upsell)
	}

	return toDTO(ranked, upsell), nil
}

// fetchCatalog loads the venue's current item list under a short timeout
// and stamps each item with its snapshot position for stable tie-breaking
func (s *Service) fetchCatalog(ctx context.Context, venueID uuid.UUID) ([]*menu.Item, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.opts.CatalogTimeout)
	defer cancel()

	items, err := s.catalog.FindByVenue(fetchCtx, venueID)
	if err != nil {
		return nil, errors.NewCatalogUnavailableError(venueID.String(), err)
	}

	for i, item := range items {
		item.Position = i
	}
	return items, nil
}

// partition splits the snapshot into foods and drinks, skipping items whose
// data is malformed. A single bad item must never abort the computation.
func (s *Service) partition(snapshot []*menu.Item) (foods, drinks []*menu.Item) {
	for _, item := range snapshot {
		if err := item.Validate(); err != nil {
			s.logger.Warn("Skipping malformed catalog item",
				zap.String("item_id", item.ID.String()),
				zap.Error(err),
			)
			continue
		}
		switch item.Kind {
		case menu.KindDrink:
			drinks = append(drinks, item)
		default:
			foods = append(foods, item)
		}
	}
	return foods, drinks
}

// persist records the (session, item, rank, score) tuples plus the upsell
// with the session/event collaborator. Failures are logged and swallowed.
func (s *Service) persist(cmd inbound.RecommendCommand, ranked recommend.Recommendation, upsell *recommend.ScoredItem) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Recommendation persistence panicked", zap.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.PersistTimeout)
	defer cancel()

	now := time.Now()
	events := make([]outbound.RecommendationEvent, 0, len(ranked.Items)+1)
	for i, pick := range ranked.Items {
		events = append(events, outbound.RecommendationEvent{
			ID:        uuid.New(),
			SessionID: cmd.SessionID,
			VenueID:   cmd.VenueID,
			ItemID:    pick.Item.ID,
			Rank:      i + 1,
			Score:     pick.Score,
			CreatedAt: now,
		})
	}
	if upsell != nil {
		events = append(events, outbound.RecommendationEvent{
			ID:        uuid.New(),
			SessionID: cmd.SessionID,
			VenueID:   cmd.VenueID,
			ItemID:    upsell.Item.ID,
			Rank:      len(ranked.Items) + 1,
			Score:     upsell.Score,
			Upsell:    true,
			CreatedAt: now,
		})
	}

	if err := s.events.RecordRecommendations(ctx, events); err != nil {
		s.logger.Error("Failed to persist recommendation events",
			zap.String("session_id", cmd.SessionID.String()),
			zap.Error(err),
		)
	}
}

func toDTO(ranked recommend.Recommendation, upsell *recommend.ScoredItem) *inbound.RecommendationDTO {
	dto := &inbound.RecommendationDTO{
		Recommendations: make([]inbound.RecommendedItemDTO, 0, len(ranked.Items)),
		Status:          string(ranked.Status),
	}

	for _, pick := range ranked.Items {
		dto.Recommendations = append(dto.Recommendations, inbound.RecommendedItemDTO{
			ID:     pick.Item.ID,
			Name:   pick.Item.Name,
			Price:  pick.Item.Price,
			Reason: pick.Reason,
			Tags:   pick.Item.Tags,
			Score:  pick.Score,
		})
	}

	if upsell != nil {
		dto.Upsell = &inbound.UpsellDTO{
			ID:     upsell.Item.ID,
			Name:   upsell.Item.Name,
			Price:  upsell.Item.Price,
			Reason: upsell.Reason,
		}
	}

	return dto
}

func emptyResult(status recommend.Status) *inbound.RecommendationDTO {
	return &inbound.RecommendationDTO{
		Recommendations: []inbound.RecommendedItemDTO{},
		Status:          string(status),
	}
}
