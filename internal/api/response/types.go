package response

import (
	"time"

	"psn-emulator/internal/model"
)

// ErrorBody is the uniform error envelope body
type ErrorBody struct {
	Error     string         `json:"error"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// UserInfo is the user projection returned by GET /auth/userinfo.
// It never carries credential material.
type UserInfo struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserInfoFromModel converts a model.User to a response UserInfo
func UserInfoFromModel(u *model.User) UserInfo {
	return UserInfo{
		UserID:    string(u.ID),
		Username:  u.Username,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// PlayerList is the response body for GET /players
type PlayerList struct {
	Players []*model.PlayerAccount `json:"players"`
	Count   int                    `json:"count"`
}

// PlayerListFromModels builds a PlayerList from accounts
func PlayerListFromModels(players []*model.PlayerAccount) PlayerList {
	if players == nil {
		players = []*model.PlayerAccount{}
	}
	return PlayerList{
		Players: players,
		Count:   len(players),
	}
}
