// Package ident provides identifier generators for newly created records.
// The EXPORT codec never generates identifiers; only editors and tools that
// create records do.
package ident

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Generator hands out fresh unique identifiers.
type Generator interface {
	NewID() string
}

// UUIDGenerator produces upper-case random UUIDs, the form the engine stores.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return strings.ToUpper(uuid.NewString())
}

// Sequence is a deterministic generator for tests and reproducible templates.
type Sequence struct {
	Prefix string

	mu   sync.Mutex
	next int
}

func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("%s%08X", s.Prefix, s.next)
	s.next++
	return id
}
