package model

import "time"

// PlayerID uniquely identifies a player account across the system
type PlayerID string

// PlayerStatus is the lifecycle state of a player account
type PlayerStatus string

const (
	PlayerStatusActive    PlayerStatus = "active"
	PlayerStatusSuspended PlayerStatus = "suspended"
	PlayerStatusBanned    PlayerStatus = "banned"
	PlayerStatusInactive  PlayerStatus = "inactive"
)

// Valid reports whether the status is one of the known values.
func (s PlayerStatus) Valid() bool {
	switch s {
	case PlayerStatusActive, PlayerStatusSuspended, PlayerStatusBanned, PlayerStatusInactive:
		return true
	}
	return false
}

// PlayerAccount is a player record. Username and email are unique across
// the whole collection at all times.
type PlayerAccount struct {
	ID               PlayerID     `json:"player_id"`
	Username         string       `json:"username"`
	Email            string       `json:"email"`
	DisplayName      string       `json:"display_name"`
	Status           PlayerStatus `json:"status"`
	Level            int          `json:"level"`
	ExperiencePoints int          `json:"experience_points"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// PlayerStats holds aggregate counters for one player. A stats record is
// created zeroed together with its account and deleted together with it,
// so a player without stats is an invariant breach.
type PlayerStats struct {
	PlayerID           PlayerID `json:"player_id"`
	TotalGames         int      `json:"total_games"`
	Wins               int      `json:"wins"`
	Losses             int      `json:"losses"`
	WinRate            float64  `json:"win_rate"`
	TotalPlaytimeHours int      `json:"total_playtime_hours"`
}

// PlayerPatch is a partial update to a player account. Nil fields are
// absent from the patch and leave the stored value untouched.
type PlayerPatch struct {
	DisplayName *string
	Email       *string
	Status      *PlayerStatus
}
