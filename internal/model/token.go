package model

import "time"

// TokenKind distinguishes access tokens from refresh tokens
type TokenKind string

const (
	// TokenKindAccess authorizes user-info reads, short-lived
	TokenKindAccess TokenKind = "access"
	// TokenKindRefresh authorizes minting a new access token, longer-lived
	TokenKindRefresh TokenKind = "refresh"
)

// Token is an opaque bearer credential. Tokens are created on successful
// authentication or refresh and never updated; expiry is the only
// invalidation mechanism.
type Token struct {
	Value     string    `json:"value"`
	UserID    UserID    `json:"user_id"`
	Username  string    `json:"username"`
	Kind      TokenKind `json:"kind"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the token's expiry has passed at the given time.
// A token whose expiry equals the current instant is already expired.
func (t *Token) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
