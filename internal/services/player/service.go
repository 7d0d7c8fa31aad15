package player

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"psn-emulator/internal/apperr"
	"psn-emulator/internal/dependencies/clock"
	"psn-emulator/internal/dependencies/random"
	"psn-emulator/internal/model"
	"psn-emulator/internal/storage"
)

// playerIDBytes is the entropy of a generated player id suffix
const playerIDBytes = 8

// Service handles player account CRUD and stats lookups
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new player Service
func New(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		random:  rnd,
		logger:  logger,
	}
}

// Create makes a new player account with a zeroed stats record.
// The username conflict is checked before the email conflict so duplicate
// username+email requests always report the username.
func (s *Service) Create(ctx context.Context, username, email, displayName string) (*model.PlayerAccount, error) {
	s.logger.Info("creating player account", slog.String("username", username))

	if _, err := s.storage.FindPlayerByUsername(ctx, username); err == nil {
		return nil, apperr.Newf(apperr.Conflict, "Username '%s' already exists", username)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to scan players by username: %w", err)
	}

	if _, err := s.storage.FindPlayerByEmail(ctx, email); err == nil {
		return nil, apperr.Newf(apperr.Conflict, "Email '%s' already exists", email)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to scan players by email: %w", err)
	}

	if displayName == "" {
		displayName = username
	}

	now := s.clock.Now()
	account := &model.PlayerAccount{
		ID:               model.PlayerID("plr_" + s.random.Hex(playerIDBytes)),
		Username:         username,
		Email:            email,
		DisplayName:      displayName,
		Status:           model.PlayerStatusActive,
		Level:            1,
		ExperiencePoints: 0,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	stats := &model.PlayerStats{PlayerID: account.ID}

	if err := s.storage.SavePlayer(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to store player: %w", err)
	}
	if err := s.storage.SaveStats(ctx, stats); err != nil {
		return nil, fmt.Errorf("failed to store player stats: %w", err)
	}

	s.logger.Info("player account created",
		slog.String("player_id", string(account.ID)),
		slog.String("username", username),
	)

	return account, nil
}

// Get returns a player account by id.
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.PlayerAccount, error) {
	account, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.Newf(apperr.NotFound, "Player with ID '%s' not found", id)
		}
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	return account, nil
}

// Update applies a partial patch to a player account. Absent patch fields
// leave the stored value untouched; UpdatedAt is always bumped.
func (s *Service) Update(ctx context.Context, id model.PlayerID, patch model.PlayerPatch) (*model.PlayerAccount, error) {
	s.logger.Info("updating player account", slog.String("player_id", string(id)))

	account, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		existing, err := s.storage.FindPlayerByEmail(ctx, *patch.Email)
		if err == nil && existing.ID != id {
			return nil, apperr.Newf(apperr.Conflict, "Email '%s' already exists", *patch.Email)
		}
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to scan players by email: %w", err)
		}
	}

	updated := *account
	if patch.DisplayName != nil {
		updated.DisplayName = *patch.DisplayName
	}
	if patch.Email != nil {
		updated.Email = *patch.Email
	}
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	updated.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayer(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to store player: %w", err)
	}

	s.logger.Info("player account updated", slog.String("player_id", string(id)))

	return &updated, nil
}

// Delete removes a player account and its stats record together.
func (s *Service) Delete(ctx context.Context, id model.PlayerID) error {
	s.logger.Info("deleting player account", slog.String("player_id", string(id)))

	if err := s.storage.DeletePlayer(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.Newf(apperr.NotFound, "Player with ID '%s' not found", id)
		}
		return fmt.Errorf("failed to delete player: %w", err)
	}
	if err := s.storage.DeleteStats(ctx, id); err != nil {
		return fmt.Errorf("failed to delete player stats: %w", err)
	}

	s.logger.Info("player account deleted", slog.String("player_id", string(id)))

	return nil
}

// List returns every player account. Order carries no meaning.
func (s *Service) List(ctx context.Context) ([]*model.PlayerAccount, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// GetStats returns the stats record for a player. The player's existence is
// checked first; a present player with missing stats is an invariant breach,
// not a caller-visible NotFound.
func (s *Service) GetStats(ctx context.Context, id model.PlayerID) (*model.PlayerStats, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	stats, err := s.storage.GetStats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("stats missing for existing player %s: %w", id, err)
	}
	return stats, nil
}
