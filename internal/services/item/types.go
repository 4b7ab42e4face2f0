package item

import (
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
)

// GenerateItemInput defines the request for generating one item card
type GenerateItemInput struct {
	// ItemDescription is the category flavored brief for this item
	ItemDescription string

	Category cards.ItemCategory

	// Creature the item is designed for; its set id is inherited
	Creature *cards.Creature

	// UserDescription is the original card set request, used to theme the artwork
	UserDescription string
}

// GenerateItemOutput defines the response for generating one item card
type GenerateItemOutput struct {
	Item cards.Item

	// UsedFallback is true when the local synthesizer built the card
	UsedFallback bool
}
