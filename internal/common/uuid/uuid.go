package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/digestbot/steamdigest/internal/common/uuid Generator

// Generator abstracts run identifier generation
type Generator interface {
	NewUUID() string
}

// DefaultGenerator implements the Generator interface using the uuid package
type DefaultGenerator struct{}

// New creates a uuid-backed generator
func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewUUID returns a new UUID string
func (g *DefaultGenerator) NewUUID() string {
	return uuid.New().String()
}
