package engine

// Compatibility bonuses and penalties
const (
	SameElementBonus       = 0.25
	ClassSynergyBonus      = 0.20
	OpposingElementPenalty = 0.10
)

// Validation messages
const (
	MsgMissingCreature    = "Missing creature card"
	MsgWrongItemCount     = "Set must contain exactly 4 items"
	MsgTooFewCategories   = "Items must belong to at least 3 different categories"
	MsgMissingWeapon      = "Set must include at least one weapon"
	MsgMissingArmor       = "Set must include at least one armor item"
	MsgDuplicateItemTypes = "No duplicate item types allowed"
	MsgElementAlignment   = "At least 2 items should match the creature's element"
)

// MinCategories is the number of distinct categories a set must span
const MinCategories = 3

// MinAlignedItems is the number of items that must share the creature's element
const MinAlignedItems = 2

// CompatibilityResult describes how an item relates to a creature.
// Penalty is only set for opposing elements and is not applied to stats.
type CompatibilityResult struct {
	Compatible bool    `json:"compatible"`
	Bonus      float64 `json:"bonus"`
	Penalty    float64 `json:"penalty,omitempty"`
	Reason     string  `json:"reason"`
}

// EffectiveStats are a creature's stats after equipping its items
type EffectiveStats struct {
	Health  int      `json:"health"`
	Power   float64  `json:"power"`
	Defense float64  `json:"defense"`
	Agility int      `json:"agility"`
	Bonuses []string `json:"bonuses"`
}

// ValidationResult is the verdict on a card set
type ValidationResult struct {
	IsValid            bool     `json:"is_valid"`
	ValidationMessages []string `json:"validation_messages"`
}
