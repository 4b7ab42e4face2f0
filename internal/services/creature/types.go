package creature

import (
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
)

// GenerateCreatureInput defines the request for generating a creature card
type GenerateCreatureInput struct {
	// Description is the user's free text; it is kept verbatim on the card
	Description string
}

// GenerateCreatureOutput defines the response for generating a creature card
type GenerateCreatureOutput struct {
	Creature *cards.Creature

	// UsedFallback is true when the local synthesizer built the card
	UsedFallback bool
}
