// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"net/http"

	"github.com/platewise/v1/internal/application/recommendation"
	"github.com/platewise/v1/internal/domain/recommend"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/server"
	"github.com/platewise/v1/internal/infrastructure/monitoring"
	"github.com/platewise/v1/internal/infrastructure/persistence/database"
	gormRepo "github.com/platewise/v1/internal/infrastructure/persistence/gorm"
	"github.com/platewise/v1/internal/infrastructure/throttle"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	// Infrastructure modules
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	ThrottleModule,
	MonitoringModule,

	// Repository modules
	RepositoryModule,

	// Service modules
	ServiceModule,

	// HTTP modules
	HTTPModule,

	// Lifecycle hooks
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the database connection
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		db, err := database.Setup(cfg)
		if err != nil {
			return nil, err
		}

		if cfg.Database.SeedDemoData {
			if err := database.Seed(db); err != nil {
				log.Warn("Failed to seed demo catalog", zap.Error(err))
			}
		}

		log.Info("Connected to database",
			zap.String("driver", cfg.Database.Driver),
			zap.String("database", cfg.Database.Database),
		)

		return db, nil
	},
)

// ThrottleModule provides the request throttle: Redis-backed when Redis
// is enabled, in-process token buckets otherwise
var ThrottleModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.Throttle {
		if cfg.Redis.Enabled {
			client, err := throttle.NewRedisClient(cfg)
			if err != nil {
				log.Warn("Redis unavailable, falling back to in-memory throttle", zap.Error(err))
				return throttle.NewMemoryThrottle(cfg.RateLimit, log)
			}
			return throttle.NewRedisThrottle(client, cfg.RateLimit, log)
		}
		return throttle.NewMemoryThrottle(cfg.RateLimit, log)
	},
)

// MonitoringModule provides Prometheus metrics
var MonitoringModule = fx.Provide(
	monitoring.NewMetrics,
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewMenuRepository,
	gormRepo.NewEventRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(
		catalog outbound.MenuCatalog,
		events outbound.SessionEventStore,
		th outbound.Throttle,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.RecommendationService {
		weights := recommend.Weights{
			TopK:                    cfg.Recommend.TopK,
			PopularityWeight:        cfg.Recommend.PopularityWeight,
			AxisBonus:               cfg.Recommend.AxisBonus,
			PushBonus:               cfg.Recommend.PushBonus,
			PairingBonus:            cfg.Recommend.PairingBonus,
			DrinkFlavorBonus:        cfg.Recommend.DrinkFlavorBonus,
			DiversityMaxPerCategory: cfg.Recommend.DiversityMaxPerCategory,
		}

		opts := recommendation.Options{
			Development:    cfg.IsDevelopment(),
			CatalogTimeout: cfg.Recommend.CatalogTimeout,
			PersistTimeout: cfg.Recommend.PersistTimeout,
		}

		return recommendation.NewService(catalog, events, th, weights, opts, log)
	},
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	server.NewServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	server *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Platewise application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := server.Start(); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Platewise application")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}
