package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	idpapi "psn-emulator/internal/api/idp"
	playerapi "psn-emulator/internal/api/player"
	"psn-emulator/internal/config"
	"psn-emulator/internal/dependencies/clock"
	"psn-emulator/internal/dependencies/random"
	"psn-emulator/internal/services/identity"
	"psn-emulator/internal/services/player"
	"psn-emulator/internal/storage"
	"psn-emulator/internal/storage/memory"
	redisstorage "psn-emulator/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	IdentityService *identity.Service
	PlayerService   *player.Service

	// Event handlers
	IDPHandler    *idpapi.Handler
	PlayerHandler *playerapi.Handler
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// IdentityConfig holds token TTLs (optional, zero values select defaults)
	IdentityConfig identity.Config
	// Seed user credentials. If SeedUsername is empty the demo defaults apply.
	SeedUsername string
	SeedPassword string
	SeedEmail    string
}

// FromConfig builds a factory Config from the environment configuration
func FromConfig(cfg *config.Config, logger *slog.Logger) Config {
	fc := Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
		IdentityConfig: identity.Config{
			AccessTokenTTL:  cfg.AccessTokenTTL,
			RefreshTokenTTL: cfg.RefreshTokenTTL,
		},
		SeedUsername: cfg.SeedUsername,
		SeedPassword: cfg.SeedPassword,
		SeedEmail:    cfg.SeedEmail,
	}
	if cfg.StorageType == config.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

// New creates a new application with all dependencies wired and the
// identity store seeded
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageTypeMemory
	}

	switch storageType {
	case config.StorageTypeMemory:
		store = memory.New()
	case config.StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	app := newWithDependencies(store, clk, rnd, cfg.IdentityConfig, logger)

	// Seed the identity store; the identity API has no registration endpoint
	seedUsername := cfg.SeedUsername
	seedPassword := cfg.SeedPassword
	seedEmail := cfg.SeedEmail
	if seedUsername == "" {
		seedUsername = "testuser"
		seedPassword = "password123"
		seedEmail = "testuser@example.com"
	}
	if err := app.IdentityService.SeedUser(context.Background(), seedUsername, seedPassword, seedEmail); err != nil {
		return nil, fmt.Errorf("failed to seed identity store: %w", err)
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, identityCfg identity.Config, logger *slog.Logger) *App {
	identityService := identity.New(store, clk, rnd, identityCfg, logger)
	playerService := player.New(store, clk, rnd, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		IdentityService: identityService,
		PlayerService:   playerService,
		IDPHandler:      idpapi.New(identityService, logger),
		PlayerHandler:   playerapi.New(playerService, logger),
	}
}
