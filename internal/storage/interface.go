package storage

import (
	"context"
	"errors"

	"psn-emulator/internal/model"
)

// ErrNotFound is returned by lookups that miss. Services translate it into
// the taxonomy error appropriate for their operation.
var ErrNotFound = errors.New("record not found")

// Storage defines the interface for data persistence. Each entity type is
// a single key->record mapping owned exclusively by its domain service.
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// Token operations
	SaveToken(ctx context.Context, token *model.Token) error
	GetToken(ctx context.Context, value string) (*model.Token, error)
	DeleteToken(ctx context.Context, value string) error

	// Player operations
	SavePlayer(ctx context.Context, player *model.PlayerAccount) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.PlayerAccount, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error
	ListPlayers(ctx context.Context) ([]*model.PlayerAccount, error)
	FindPlayerByUsername(ctx context.Context, username string) (*model.PlayerAccount, error)
	FindPlayerByEmail(ctx context.Context, email string) (*model.PlayerAccount, error)

	// Stats operations
	SaveStats(ctx context.Context, stats *model.PlayerStats) error
	GetStats(ctx context.Context, id model.PlayerID) (*model.PlayerStats, error)
	DeleteStats(ctx context.Context, id model.PlayerID) error

	// Reset clears every store. Used between tests and by the demo harness.
	Reset(ctx context.Context) error
}
