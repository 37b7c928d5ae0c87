// Package uuid wraps id generation behind an interface so tests can supply
// deterministic ids.
package uuid

import "github.com/google/uuid"

// Generator produces unique id strings
type Generator interface {
	New() string
}

// GoogleUUIDGenerator generates random v4 UUIDs
type GoogleUUIDGenerator struct{}

// NewGoogleUUIDGenerator creates a GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// New returns a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}
