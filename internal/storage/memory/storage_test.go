package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"psn-emulator/internal/model"
	"psn-emulator/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{
		ID:           "usr_1",
		Username:     "testuser",
		PasswordHash: "hash123",
		Email:        "testuser@example.com",
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUserByUsername(s.ctx, "testuser")
	s.Require().NoError(err)
	s.Equal(user.ID, retrieved.ID)
	s.Equal(user.Email, retrieved.Email)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUserByUsername(s.ctx, "nonexistent")
	s.ErrorIs(err, storage.ErrNotFound)
}

// Token tests

func (s *StorageSuite) TestSaveAndGetToken() {
	token := &model.Token{
		Value:     "tok-abc",
		UserID:    "usr_1",
		Username:  "testuser",
		Kind:      model.TokenKindAccess,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	err := s.storage.SaveToken(s.ctx, token)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetToken(s.ctx, "tok-abc")
	s.Require().NoError(err)
	s.Equal(model.TokenKindAccess, retrieved.Kind)
	s.Equal("testuser", retrieved.Username)
}

func (s *StorageSuite) TestGetTokenNotFound() {
	_, err := s.storage.GetToken(s.ctx, "nonexistent")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestDeleteToken() {
	token := &model.Token{Value: "tok-abc", Kind: model.TokenKindAccess}
	_ = s.storage.SaveToken(s.ctx, token)

	err := s.storage.DeleteToken(s.ctx, "tok-abc")
	s.Require().NoError(err)

	_, err = s.storage.GetToken(s.ctx, "tok-abc")
	s.ErrorIs(err, storage.ErrNotFound)
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.PlayerAccount{
		ID:          "plr_1",
		Username:    "alice",
		Email:       "alice@example.com",
		DisplayName: "Alice",
		Status:      model.PlayerStatusActive,
		Level:       1,
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "plr_1")
	s.Require().NoError(err)
	s.Equal(player.Username, retrieved.Username)
	s.Equal(model.PlayerStatusActive, retrieved.Status)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestDeletePlayer() {
	player := &model.PlayerAccount{ID: "plr_1", Username: "alice"}
	_ = s.storage.SavePlayer(s.ctx, player)

	err := s.storage.DeletePlayer(s.ctx, "plr_1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "plr_1")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestDeletePlayerNotFound() {
	err := s.storage.DeletePlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestListPlayers() {
	_ = s.storage.SavePlayer(s.ctx, &model.PlayerAccount{ID: "plr_1", Username: "alice"})
	_ = s.storage.SavePlayer(s.ctx, &model.PlayerAccount{ID: "plr_2", Username: "bob"})

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 2)
}

func (s *StorageSuite) TestListPlayersEmpty() {
	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *StorageSuite) TestFindPlayerByUsername() {
	_ = s.storage.SavePlayer(s.ctx, &model.PlayerAccount{ID: "plr_1", Username: "alice", Email: "alice@example.com"})

	found, err := s.storage.FindPlayerByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("plr_1"), found.ID)

	_, err = s.storage.FindPlayerByUsername(s.ctx, "bob")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestFindPlayerByEmail() {
	_ = s.storage.SavePlayer(s.ctx, &model.PlayerAccount{ID: "plr_1", Username: "alice", Email: "alice@example.com"})

	found, err := s.storage.FindPlayerByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("plr_1"), found.ID)

	_, err = s.storage.FindPlayerByEmail(s.ctx, "bob@example.com")
	s.ErrorIs(err, storage.ErrNotFound)
}

// Stats tests

func (s *StorageSuite) TestSaveAndGetStats() {
	stats := &model.PlayerStats{
		PlayerID:   "plr_1",
		TotalGames: 10,
		Wins:       6,
		Losses:     4,
		WinRate:    0.6,
	}

	err := s.storage.SaveStats(s.ctx, stats)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetStats(s.ctx, "plr_1")
	s.Require().NoError(err)
	s.Equal(10, retrieved.TotalGames)
	s.Equal(0.6, retrieved.WinRate)
}

func (s *StorageSuite) TestGetStatsNotFound() {
	_, err := s.storage.GetStats(s.ctx, "nonexistent")
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestDeleteStats() {
	_ = s.storage.SaveStats(s.ctx, &model.PlayerStats{PlayerID: "plr_1"})

	err := s.storage.DeleteStats(s.ctx, "plr_1")
	s.Require().NoError(err)

	_, err = s.storage.GetStats(s.ctx, "plr_1")
	s.ErrorIs(err, storage.ErrNotFound)
}

// Reset tests

func (s *StorageSuite) TestResetClearsEverything() {
	_ = s.storage.SaveUser(s.ctx, &model.User{ID: "usr_1", Username: "testuser"})
	_ = s.storage.SaveToken(s.ctx, &model.Token{Value: "tok-abc"})
	_ = s.storage.SavePlayer(s.ctx, &model.PlayerAccount{ID: "plr_1", Username: "alice"})
	_ = s.storage.SaveStats(s.ctx, &model.PlayerStats{PlayerID: "plr_1"})

	err := s.storage.Reset(s.ctx)
	s.Require().NoError(err)

	_, err = s.storage.GetUserByUsername(s.ctx, "testuser")
	s.ErrorIs(err, storage.ErrNotFound)
	_, err = s.storage.GetToken(s.ctx, "tok-abc")
	s.ErrorIs(err, storage.ErrNotFound)
	_, err = s.storage.GetPlayer(s.ctx, "plr_1")
	s.ErrorIs(err, storage.ErrNotFound)
	_, err = s.storage.GetStats(s.ctx, "plr_1")
	s.ErrorIs(err, storage.ErrNotFound)
}
