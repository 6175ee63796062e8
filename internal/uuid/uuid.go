// Package uuid produces store-assigned record ids behind an interface so
// repositories can be tested with fixed ids.
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks github.com/KirkDiggler/skill-seeder/internal/uuid Generator

import (
	"github.com/google/uuid"
)

// Generator produces unique record ids
type Generator interface {
	New() string
}

// GoogleUUIDGenerator generates random (v4) UUIDs
type GoogleUUIDGenerator struct{}

func (g *GoogleUUIDGenerator) New() string {
	return uuid.NewString()
}

func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}
