// Package engine holds the card game rules: creature/item compatibility,
// effective stats, and card set validation. Every operation is pure.
package engine

import (
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
)

// Engine provides the rules calculations over cards
type Engine interface {
	// CheckCompatibility rates how well an item suits a creature
	CheckCompatibility(creature *cards.Creature, item cards.Item) *CompatibilityResult

	// ComputeEffectiveStats applies every item's contribution to the creature's base stats
	ComputeEffectiveStats(creature *cards.Creature, items []cards.Item) (*EffectiveStats, error)

	// ValidateCardSet checks the set against every balance rule
	ValidateCardSet(set *cards.CardSet) *ValidationResult
}
