package throttle

import (
	"context"
	"sync"
	"time"

	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// MemoryThrottle enforces per-client limits with in-process token
// buckets. Used when Redis is disabled; state is lost on restart and
// not shared across instances, which is acceptable for single-node
// deployments.
type MemoryThrottle struct {
	cfg    config.RateLimitConfig
	logger *zap.Logger

	mu       sync.Mutex
	limiters map[string]*clientLimiter
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewMemoryThrottle creates an in-memory throttle
func NewMemoryThrottle(cfg config.RateLimitConfig, logger *zap.Logger) outbound.Throttle {
	t := &MemoryThrottle{
		cfg:      cfg,
		logger:   logger.Named("memory-throttle"),
		limiters: make(map[string]*clientLimiter),
	}
	go t.cleanup()
	return t
}

// Allow checks the client's token bucket
func (t *MemoryThrottle) Allow(_ context.Context, clientID string) error {
	if !t.cfg.Enable || clientID == "" {
		return nil
	}

	t.mu.Lock()
	cl, ok := t.limiters[clientID]
	if !ok {
		perSecond := rate.Limit(float64(t.cfg.RequestsPerMin) / 60.0)
		cl = &clientLimiter{limiter: rate.NewLimiter(perSecond, t.cfg.BurstSize)}
		t.limiters[clientID] = cl
	}
	cl.lastSeen = time.Now()
	t.mu.Unlock()

	if !cl.limiter.Allow() {
		t.logger.Info("Request throttled",
			zap.String("client_id", clientID),
			zap.Int("limit", t.cfg.RequestsPerMin))
		return errors.NewTooManyRequestsError(clientID)
	}

	return nil
}

// cleanup evicts limiters for clients idle longer than three windows
func (t *MemoryThrottle) cleanup() {
	window := t.cfg.Window
	if window <= 0 {
		window = time.Minute
	}

	ticker := time.NewTicker(window)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-3 * window)
		t.mu.Lock()
		for id, cl := range t.limiters {
			if cl.lastSeen.Before(cutoff) {
				delete(t.limiters, id)
			}
		}
		t.mu.Unlock()
	}
}
