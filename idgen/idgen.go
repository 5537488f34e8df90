// Package idgen provides the identifier allocators used by the schedulers.
package idgen

import "sync/atomic"

// ID is a unique identifier represented as a uint64. The zero value is never
// allocated and marks an item that has not been assigned an ID yet.
type ID uint64

// Generator produces unique identifiers.
type Generator interface {
	Generate() ID
}

// New returns a sequential generator whose first emitted ID is 1. IDs grow
// monotonically for the lifetime of the generator.
func New() Generator {
	return &sequentialGenerator{}
}

type sequentialGenerator struct {
	next uint64
}

func (g *sequentialGenerator) Generate() ID {
	return ID(atomic.AddUint64(&g.next, 1))
}
