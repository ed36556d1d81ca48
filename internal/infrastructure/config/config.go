// Package config provides centralized configuration management
// using Viper for configuration loading and validation
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Recommend RecommendConfig `mapstructure:"recommend"`
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains database configuration
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Database        string        `mapstructure:"database"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
	SeedDemoData    bool          `mapstructure:"seed_demo_data"`
}

// RedisConfig contains Redis configuration for the request throttle
type RedisConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	Password    string        `mapstructure:"password"`
	Database    int           `mapstructure:"database"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	PoolSize    int           `mapstructure:"pool_size"`
}

// RateLimitConfig contains request throttling configuration
type RateLimitConfig struct {
	Enable         bool          `mapstructure:"enable"`
	RequestsPerMin int           `mapstructure:"requests_per_min"`
	BurstSize      int           `mapstructure:"burst_size"`
	Window         time.Duration `mapstructure:"window"`
}

// RecommendConfig contains the tunable scoring weights and limits
type RecommendConfig struct {
	TopK                    int           `mapstructure:"top_k"`
	PopularityWeight        float64       `mapstructure:"popularity_weight"`
	AxisBonus               float64       `mapstructure:"axis_bonus"`
	PushBonus               float64       `mapstructure:"push_bonus"`
	PairingBonus            float64       `mapstructure:"pairing_bonus"`
	DrinkFlavorBonus        float64       `mapstructure:"drink_flavor_bonus"`
	DiversityMaxPerCategory int           `mapstructure:"diversity_max_per_category"`
	CatalogTimeout          time.Duration `mapstructure:"catalog_timeout"`
	PersistTimeout          time.Duration `mapstructure:"persist_timeout"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/platewise")
	}

	// Enable environment variable override
	v.SetEnvPrefix("PLATEWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "Platewise")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_format", "json")

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")

	// Database defaults
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.seed_demo_data", false)

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.database", 0)
	v.SetDefault("redis.dial_timeout", "2s")
	v.SetDefault("redis.read_timeout", "1s")
	v.SetDefault("redis.pool_size", 10)

	// Rate limit defaults
	v.SetDefault("rate_limit.enable", true)
	v.SetDefault("rate_limit.requests_per_min", 30)
	v.SetDefault("rate_limit.burst_size", 10)
	v.SetDefault("rate_limit.window", "1m")

	// Recommendation defaults: popularity breaks ties, bonuses dominate
	v.SetDefault("recommend.top_k", 3)
	v.SetDefault("recommend.popularity_weight", 0.1)
	v.SetDefault("recommend.axis_bonus", 10.0)
	v.SetDefault("recommend.push_bonus", 5.0)
	v.SetDefault("recommend.pairing_bonus", 10.0)
	v.SetDefault("recommend.drink_flavor_bonus", 4.0)
	v.SetDefault("recommend.diversity_max_per_category", 2)
	v.SetDefault("recommend.catalog_timeout", "2s")
	v.SetDefault("recommend.persist_timeout", "3s")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}

	if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		return fmt.Errorf("database.driver must be sqlite or postgres")
	}
	if c.Database.Driver == "postgres" && c.Database.Database == "" {
		return fmt.Errorf("database.database is required for postgres")
	}

	if c.Recommend.TopK < 1 {
		return fmt.Errorf("recommend.top_k must be at least 1")
	}
	if c.Recommend.PopularityWeight < 0 || c.Recommend.AxisBonus < 0 ||
		c.Recommend.PushBonus < 0 || c.Recommend.PairingBonus < 0 ||
		c.Recommend.DrinkFlavorBonus < 0 {
		return fmt.Errorf("recommend weights cannot be negative")
	}
	if c.Recommend.DiversityMaxPerCategory < 0 {
		return fmt.Errorf("recommend.diversity_max_per_category cannot be negative")
	}

	return nil
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.Username,
		c.Database.Password,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// RedisAddr returns the redis host:port address
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
