// Package identity produces the primary keys for newly created records.
package identity

import "github.com/google/uuid"

// Generator returns identifiers unique within the process lifetime.
// Uniqueness across store reloads rests on the generation strategy alone;
// for UUIDs the collision probability is negligible but not zero.
type Generator interface {
	NewID() string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
