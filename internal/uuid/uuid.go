// Package uuid generates identifiers for stored descriptor definitions.
// Callers depend on Generator so tests can supply fixed ids.
package uuid

import (
	"github.com/google/uuid"
)

// Generator produces new unique ids
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator with random (v4) UUIDs
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SequenceGenerator returns ids from a fixed list, then falls back to random ones
type SequenceGenerator struct {
	ids  []string
	next int
}

// NewSequenceGenerator creates a generator that yields ids in order
func NewSequenceGenerator(ids ...string) *SequenceGenerator {
	return &SequenceGenerator{ids: ids}
}

// New returns the next predetermined id
func (g *SequenceGenerator) New() string {
	if g.next < len(g.ids) {
		id := g.ids[g.next]
		g.next++
		return id
	}
	return uuid.New().String()
}
