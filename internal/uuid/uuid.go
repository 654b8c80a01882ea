// Package uuid wraps ID generation behind an interface so tests can
// substitute deterministic values.
package uuid

import "github.com/google/uuid"

// Generator produces unique identifiers.
type Generator interface {
	New() string
}

// GoogleUUIDGenerator generates random v4 UUIDs.
type GoogleUUIDGenerator struct{}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// New returns a new UUID string.
func (g *GoogleUUIDGenerator) New() string {
	return uuid.NewString()
}
