package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Config holds all runtime configuration, populated from PSN_* environment
// variables. Defaults produce a self-contained in-memory demo deployment.
type Config struct {
	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string `env:"PSN_STORAGE_TYPE" envDefault:"memory"`

	// RedisURL is the Redis connection URL, used when StorageType is "redis"
	RedisURL string `env:"PSN_REDIS_URL" envDefault:"redis://localhost:6379"`

	// Token lifetimes
	AccessTokenTTL  time.Duration `env:"PSN_ACCESS_TOKEN_TTL" envDefault:"1h"`
	RefreshTokenTTL time.Duration `env:"PSN_REFRESH_TOKEN_TTL" envDefault:"24h"`

	// Seed user credentials for the identity store. The identity API has no
	// registration endpoint; this demo account is the only credential record.
	SeedUsername string `env:"PSN_SEED_USERNAME" envDefault:"testuser"`
	SeedPassword string `env:"PSN_SEED_PASSWORD" envDefault:"password123"`
	SeedEmail    string `env:"PSN_SEED_EMAIL" envDefault:"testuser@example.com"`

	// Local dev server settings
	Host string `env:"PSN_HOST" envDefault:""`
	Port int    `env:"PSN_PORT" envDefault:"8080"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}
	if cfg.StorageType != StorageTypeMemory && cfg.StorageType != StorageTypeRedis {
		return nil, fmt.Errorf("invalid PSN_STORAGE_TYPE %q: must be %q or %q",
			cfg.StorageType, StorageTypeMemory, StorageTypeRedis)
	}
	return cfg, nil
}
