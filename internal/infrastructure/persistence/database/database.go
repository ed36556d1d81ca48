// Package database provides database setup for the catalog and event
// stores, supporting SQLite for development and PostgreSQL in production
package database

import (
	"fmt"

	"github.com/platewise/v1/internal/infrastructure/config"
	gormModels "github.com/platewise/v1/internal/infrastructure/persistence/gorm"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Setup creates and configures the database connection per configuration
func Setup(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.App.Debug {
		logLevel = logger.Info
	}

	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}

	var db *gorm.DB
	var err error

	switch cfg.Database.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.GetDSN()), gormCfg)
	default:
		dbPath := cfg.Database.Database
		if dbPath == "" {
			dbPath = ":memory:"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access database pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate runs auto-migration for all models
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&gormModels.MenuItemModel{},
		&gormModels.RecommendationEventModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
