package memory

import (
	"context"
	"sync"

	"psn-emulator/internal/model"
	"psn-emulator/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// A single mutex guards all stores so that scan-then-insert sequences
// observe a consistent view.
type Storage struct {
	mu sync.RWMutex

	users   map[string]*model.User // keyed by username
	tokens  map[string]*model.Token
	players map[model.PlayerID]*model.PlayerAccount
	stats   map[model.PlayerID]*model.PlayerStats
}

// New creates a new in-memory storage instance
func New() *Storage {
	s := &Storage{}
	s.reset()
	return s
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) reset() {
	s.users = make(map[string]*model.User)
	s.tokens = make(map[string]*model.Token)
	s.players = make(map[model.PlayerID]*model.PlayerAccount)
	s.stats = make(map[model.PlayerID]*model.PlayerStats)
}

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Username] = user
	return nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[username]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return user, nil
}

// Token operations

func (s *Storage) SaveToken(ctx context.Context, token *model.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token.Value] = token
	return nil
}

func (s *Storage) GetToken(ctx context.Context, value string) (*model.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[value]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return token, nil
}

func (s *Storage) DeleteToken(ctx context.Context, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, value)
	return nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.PlayerAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.PlayerAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.players, id)
	return nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.PlayerAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.PlayerAccount, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, p)
	}
	return players, nil
}

func (s *Storage) FindPlayerByUsername(ctx context.Context, username string) (*model.PlayerAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.players {
		if p.Username == username {
			return p, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Storage) FindPlayerByEmail(ctx context.Context, email string) (*model.PlayerAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.players {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, storage.ErrNotFound
}

// Stats operations

func (s *Storage) SaveStats(ctx context.Context, stats *model.PlayerStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats[stats.PlayerID] = stats
	return nil
}

func (s *Storage) GetStats(ctx context.Context, id model.PlayerID) (*model.PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats, ok := s.stats[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return stats, nil
}

func (s *Storage) DeleteStats(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.stats, id)
	return nil
}

// Reset clears every store

func (s *Storage) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	return nil
}
