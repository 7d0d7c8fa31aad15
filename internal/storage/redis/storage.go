package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"psn-emulator/internal/model"
	"psn-emulator/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, userKey(user.Username), data, 0).Err()
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Token operations

func (s *Storage) SaveToken(ctx context.Context, token *model.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return err
	}

	// Let Redis expiry mirror token expiry so stale tokens vanish on their own
	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}
	return s.client.Set(ctx, tokenKey(token.Value), data, ttl).Err()
}

func (s *Storage) GetToken(ctx context.Context, value string) (*model.Token, error) {
	data, err := s.client.Get(ctx, tokenKey(value)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	var token model.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (s *Storage) DeleteToken(ctx context.Context, value string) error {
	return s.client.Del(ctx, tokenKey(value)).Err()
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.PlayerAccount) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// An update may change the email; drop the stale index entry if so
	old, err := s.GetPlayer(ctx, player.ID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(player.ID), data, 0)
	pipe.Set(ctx, playerUsernameIndexKey(player.Username), string(player.ID), 0)
	pipe.Set(ctx, playerEmailIndexKey(player.Email), string(player.ID), 0)
	pipe.SAdd(ctx, playerSetKey(), string(player.ID))
	if old != nil && old.Email != player.Email {
		pipe.Del(ctx, playerEmailIndexKey(old.Email))
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.PlayerAccount, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	var player model.PlayerAccount
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, playerKey(id))
	pipe.Del(ctx, playerUsernameIndexKey(player.Username))
	pipe.Del(ctx, playerEmailIndexKey(player.Email))
	pipe.SRem(ctx, playerSetKey(), string(id))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.PlayerAccount, error) {
	ids, err := s.client.SMembers(ctx, playerSetKey()).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.PlayerAccount, 0, len(ids))
	for _, id := range ids {
		player, err := s.GetPlayer(ctx, model.PlayerID(id))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

func (s *Storage) FindPlayerByUsername(ctx context.Context, username string) (*model.PlayerAccount, error) {
	id, err := s.client.Get(ctx, playerUsernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return s.GetPlayer(ctx, model.PlayerID(id))
}

func (s *Storage) FindPlayerByEmail(ctx context.Context, email string) (*model.PlayerAccount, error) {
	id, err := s.client.Get(ctx, playerEmailIndexKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return s.GetPlayer(ctx, model.PlayerID(id))
}

// Stats operations

func (s *Storage) SaveStats(ctx context.Context, stats *model.PlayerStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, statsKey(stats.PlayerID), data, 0).Err()
}

func (s *Storage) GetStats(ctx context.Context, id model.PlayerID) (*model.PlayerStats, error) {
	data, err := s.client.Get(ctx, statsKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	var stats model.PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *Storage) DeleteStats(ctx context.Context, id model.PlayerID) error {
	return s.client.Del(ctx, statsKey(id)).Err()
}

// Reset clears every store by scanning the key prefix

func (s *Storage) Reset(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, keyPrefix+":*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
