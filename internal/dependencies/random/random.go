package random

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
)

// Random provides random identifier generation that can be mocked for testing
type Random interface {
	// Hex returns nBytes of randomness as a lowercase hex string
	Hex(nBytes int) string

	// URLToken returns nBytes of randomness as an unpadded base64url string
	URLToken(nBytes int) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Hex returns nBytes of cryptographically secure randomness as hex
func (r *CryptoRandom) Hex(nBytes int) string {
	return hex.EncodeToString(r.read(nBytes))
}

// URLToken returns nBytes of cryptographically secure randomness as
// unpadded base64url, suitable for opaque bearer tokens
func (r *CryptoRandom) URLToken(nBytes int) string {
	return base64.RawURLEncoding.EncodeToString(r.read(nBytes))
}

func (r *CryptoRandom) read(nBytes int) []byte {
	b := make([]byte, nBytes)
	// crypto/rand.Read never fails on supported platforms
	_, _ = rand.Read(b)
	return b
}
