package cardset

import (
	"github.com/KirkDiggler/card-forge/internal/engine"
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
)

// GenerateCardSetInput defines the request for generating a card set
type GenerateCardSetInput struct {
	Description string
}

// GenerateCardSetOutput defines the response for generating a card set
type GenerateCardSetOutput struct {
	GenerationID string
	CardSet      *cards.CardSet

	// EffectiveStats are the creature's stats with every item applied
	EffectiveStats *engine.EffectiveStats

	// Compatibility holds one result per item, in item order
	Compatibility []*engine.CompatibilityResult

	// FallbackCards counts cards built by a local synthesizer
	FallbackCards int
}
