// Package idgen provides the node id capability injected into every tree
// operation that mints ids. Keeping the generator a parameter rather than a
// package-level singleton keeps duplicate/paste deterministic in tests.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces node ids. Ids must be collision-free across an
// unbounded number of duplicate/paste calls within one editor session.
type Generator interface {
	// NewID returns a fresh id, never equal to any id it returned before.
	NewID() string
}

// UUIDGenerator is the production generator, backed by random UUIDv4.
type UUIDGenerator struct{}

// NewUUIDGenerator creates the production id generator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a random UUID string.
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator produces deterministic "prefix-N" ids for tests and
// reproducible fixtures. Safe for concurrent use.
type SequenceGenerator struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequenceGenerator creates a deterministic generator. Ids are
// "{prefix}-1", "{prefix}-2", ...
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// NewID returns the next id in the sequence.
func (g *SequenceGenerator) NewID() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.counter.Add(1))
}
