package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"psn-emulator/internal/apperr"
	"psn-emulator/internal/dependencies/clock"
	"psn-emulator/internal/dependencies/random"
	"psn-emulator/internal/model"
	"psn-emulator/internal/storage"
)

// tokenBytes is the entropy of a minted token: 32 bytes = 256 bits.
const tokenBytes = 32

// TokenPair is the result of a successful authentication or refresh.
// RefreshToken is empty on refresh: the original refresh token is
// deliberately not rotated and stays valid until its own expiry.
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int       `json:"expires_in"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	IssuedAt     time.Time `json:"issued_at"`
}

// Config holds configuration for the identity service
type Config struct {
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// DefaultConfig returns default identity configuration
func DefaultConfig() Config {
	return Config{
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	}
}

// Service handles authentication, token issuance and token refresh
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
	cfg     Config
}

// New creates a new identity Service
func New(store storage.Storage, clk clock.Clock, rnd random.Random, cfg Config, logger *slog.Logger) *Service {
	if cfg.AccessTokenTTL == 0 {
		cfg.AccessTokenTTL = DefaultConfig().AccessTokenTTL
	}
	if cfg.RefreshTokenTTL == 0 {
		cfg.RefreshTokenTTL = DefaultConfig().RefreshTokenTTL
	}
	return &Service{
		storage: store,
		clock:   clk,
		random:  rnd,
		logger:  logger,
		cfg:     cfg,
	}
}

// SeedUser stores a credential record with a bcrypt-hashed password.
// The identity store is read-only after seeding; there is no registration
// endpoint.
func (s *Service) SeedUser(ctx context.Context, username, password, email string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	user := &model.User{
		ID:           model.UserID("usr_" + s.random.Hex(8)),
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		IsActive:     true,
		CreatedAt:    s.clock.Now(),
	}
	return s.storage.SaveUser(ctx, user)
}

// Authenticate verifies credentials and mints an access/refresh token pair.
// Unknown usernames and wrong passwords yield the identical error message so
// callers cannot enumerate accounts.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*TokenPair, error) {
	s.logger.Info("authentication attempt", slog.String("username", username))

	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("authentication failed", slog.String("username", username))
			return nil, apperr.NewAuthentication("Invalid username or password")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Warn("authentication failed", slog.String("username", username))
		return nil, apperr.NewAuthentication("Invalid username or password")
	}

	if !user.IsActive {
		return nil, apperr.NewAuthentication("Account is not active")
	}

	now := s.clock.Now()

	access, err := s.mintToken(ctx, user, model.TokenKindAccess, now)
	if err != nil {
		return nil, err
	}
	refresh, err := s.mintToken(ctx, user, model.TokenKindRefresh, now)
	if err != nil {
		return nil, err
	}

	s.logger.Info("authentication successful", slog.String("username", username))

	return &TokenPair{
		AccessToken:  access.Value,
		TokenType:    "Bearer",
		ExpiresIn:    int(s.cfg.AccessTokenTTL.Seconds()),
		RefreshToken: refresh.Value,
		IssuedAt:     now,
	}, nil
}

// GetUserInfo resolves an access token to its user record.
func (s *Service) GetUserInfo(ctx context.Context, tokenValue string) (*model.User, error) {
	token, err := s.storage.GetToken(ctx, tokenValue)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NewAuthentication("Invalid or expired token")
		}
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	if token.Kind != model.TokenKindAccess {
		return nil, apperr.NewAuthentication("Invalid token type")
	}
	if token.Expired(s.clock.Now()) {
		return nil, apperr.NewAuthentication("Token has expired")
	}

	user, err := s.storage.GetUserByUsername(ctx, token.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NewNotFound("User not found")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// Refresh mints a new access token from a valid refresh token.
// The refresh token itself is not rotated.
func (s *Service) Refresh(ctx context.Context, refreshValue string) (*TokenPair, error) {
	token, err := s.storage.GetToken(ctx, refreshValue)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NewAuthentication("Invalid refresh token")
		}
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	if token.Kind != model.TokenKindRefresh {
		return nil, apperr.NewAuthentication("Invalid token type")
	}
	now := s.clock.Now()
	if token.Expired(now) {
		return nil, apperr.NewAuthentication("Refresh token has expired")
	}

	user := &model.User{ID: token.UserID, Username: token.Username}
	access, err := s.mintToken(ctx, user, model.TokenKindAccess, now)
	if err != nil {
		return nil, err
	}

	s.logger.Info("token refreshed", slog.String("username", token.Username))

	return &TokenPair{
		AccessToken: access.Value,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.cfg.AccessTokenTTL.Seconds()),
		IssuedAt:    now,
	}, nil
}

// mintToken generates, persists and returns an opaque token of the given kind
func (s *Service) mintToken(ctx context.Context, user *model.User, kind model.TokenKind, now time.Time) (*model.Token, error) {
	ttl := s.cfg.AccessTokenTTL
	if kind == model.TokenKindRefresh {
		ttl = s.cfg.RefreshTokenTTL
	}

	token := &model.Token{
		Value:     s.random.URLToken(tokenBytes),
		UserID:    user.ID,
		Username:  user.Username,
		Kind:      kind,
		ExpiresAt: now.Add(ttl),
	}
	if err := s.storage.SaveToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}
	return token, nil
}
