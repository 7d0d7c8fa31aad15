package mocks

import (
	"psn-emulator/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// HexResults is a queue of results to return from Hex
	HexResults []string
	hexIndex   int

	// URLTokenResults is a queue of results to return from URLToken
	URLTokenResults []string
	urlTokenIndex   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Hex returns the next queued result, or a zero-filled string if none remaining
func (r *MockRandom) Hex(nBytes int) string {
	if r.hexIndex >= len(r.HexResults) {
		return zeroes(nBytes * 2)
	}
	result := r.HexResults[r.hexIndex]
	r.hexIndex++
	return result
}

// URLToken returns the next queued result, or a zero-filled string if none remaining
func (r *MockRandom) URLToken(nBytes int) string {
	if r.urlTokenIndex >= len(r.URLTokenResults) {
		return zeroes(nBytes)
	}
	result := r.URLTokenResults[r.urlTokenIndex]
	r.urlTokenIndex++
	return result
}

// QueueHex adds values to the Hex result queue
func (r *MockRandom) QueueHex(values ...string) {
	r.HexResults = append(r.HexResults, values...)
}

// QueueURLToken adds values to the URLToken result queue
func (r *MockRandom) QueueURLToken(values ...string) {
	r.URLTokenResults = append(r.URLTokenResults, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.HexResults = nil
	r.hexIndex = 0
	r.URLTokenResults = nil
	r.urlTokenIndex = 0
}

func zeroes(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}
