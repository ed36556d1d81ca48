package throttle

import (
	"context"
	"testing"
	"time"

	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/pkg/errors"
	"github.com/platewise/v1/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// MemoryThrottleTestSuite provides a test suite for the in-memory throttle
type MemoryThrottleTestSuite struct {
	suite.Suite
}

func (suite *MemoryThrottleTestSuite) newThrottle(cfg config.RateLimitConfig) *MemoryThrottle {
	return NewMemoryThrottle(cfg, logger.NewNop()).(*MemoryThrottle)
}

func (suite *MemoryThrottleTestSuite) TestAllow() {
	suite.Run("WithinBurst_ShouldAllow", func() {
		t := suite.newThrottle(config.RateLimitConfig{
			Enable:         true,
			RequestsPerMin: 60,
			BurstSize:      2,
			Window:         time.Minute,
		})

		assert.NoError(suite.T(), t.Allow(context.Background(), "table-1"))
		assert.NoError(suite.T(), t.Allow(context.Background(), "table-1"))
	})

	suite.Run("BeyondBurst_ShouldDeny", func() {
		t := suite.newThrottle(config.RateLimitConfig{
			Enable:         true,
			RequestsPerMin: 60,
			BurstSize:      2,
			Window:         time.Minute,
		})

		_ = t.Allow(context.Background(), "table-2")
		_ = t.Allow(context.Background(), "table-2")
		err := t.Allow(context.Background(), "table-2")

		assert.Error(suite.T(), err)
		assert.True(suite.T(), errors.Is(err, errors.CodeTooManyRequests))
	})

	suite.Run("DistinctClients_ShouldNotShareBuckets", func() {
		t := suite.newThrottle(config.RateLimitConfig{
			Enable:         true,
			RequestsPerMin: 60,
			BurstSize:      1,
			Window:         time.Minute,
		})

		assert.NoError(suite.T(), t.Allow(context.Background(), "table-3"))
		assert.Error(suite.T(), t.Allow(context.Background(), "table-3"))
		assert.NoError(suite.T(), t.Allow(context.Background(), "table-4"))
	})

	suite.Run("Disabled_ShouldAlwaysAllow", func() {
		t := suite.newThrottle(config.RateLimitConfig{
			Enable:         false,
			RequestsPerMin: 1,
			BurstSize:      1,
		})

		for i := 0; i < 10; i++ {
			assert.NoError(suite.T(), t.Allow(context.Background(), "table-5"))
		}
	})

	suite.Run("EmptyClientID_ShouldAllow", func() {
		t := suite.newThrottle(config.RateLimitConfig{
			Enable:         true,
			RequestsPerMin: 1,
			BurstSize:      1,
		})

		for i := 0; i < 5; i++ {
			assert.NoError(suite.T(), t.Allow(context.Background(), ""))
		}
	})
}

func TestMemoryThrottleTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryThrottleTestSuite))
}
