// Package idgen provides ID generation utilities
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/google/uuid"

	"github.com/KirkDiggler/card-forge/internal/pkg/roller"
)

// Generator generates identifiers
type Generator interface {
	Generate() string
}

// CardNumberGenerator produces printed card numbers such as CRT-042 or SET-07.
// Numbers are random, not unique; they identify a card within its set.
type CardNumberGenerator struct {
	prefix string
	width  int
	limit  int
	roller dice.Roller
}

// NewCardNumber creates a generator of prefix-NNN ids drawing from [0, limit)
func NewCardNumber(prefix string, width, limit int, r dice.Roller) *CardNumberGenerator {
	return &CardNumberGenerator{
		prefix: prefix,
		width:  width,
		limit:  limit,
		roller: r,
	}
}

// Generate creates a new card number
func (g *CardNumberGenerator) Generate() string {
	return fmt.Sprintf("%s-%0*d", g.prefix, g.width, roller.Intn(g.roller, g.limit))
}

// SequentialGenerator generates sequential IDs for testing
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}

// UUIDGenerator generates UUIDs with optional prefix
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	id := uuid.New().String()
	if g.prefix != "" {
		return fmt.Sprintf("%s_%s", g.prefix, id)
	}
	return id
}
