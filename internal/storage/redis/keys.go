package redis

import (
	"fmt"

	"psn-emulator/internal/model"
)

// Key prefix for all platform data
const keyPrefix = "psn"

// Key generation functions for each entity type

// userKey returns the Redis key for a User, keyed by username
func userKey(username string) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, username)
}

// tokenKey returns the Redis key for a Token
func tokenKey(value string) string {
	return fmt.Sprintf("%s:token:%s", keyPrefix, value)
}

// playerKey returns the Redis key for a PlayerAccount
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// statsKey returns the Redis key for a PlayerStats record
func statsKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:stats:%s", keyPrefix, id)
}

// playerUsernameIndexKey returns the Redis key for the username -> player_id index
func playerUsernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:player_username:%s", keyPrefix, username)
}

// playerEmailIndexKey returns the Redis key for the email -> player_id index
func playerEmailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:player_email:%s", keyPrefix, email)
}

// playerSetKey returns the Redis key for the SET of all player ids
func playerSetKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}
