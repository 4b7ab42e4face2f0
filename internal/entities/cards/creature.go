package cards

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeCreature is the core.Entity type of creature cards
const EntityTypeCreature = "creature"

// SpecialAbility is a named action a creature can take
type SpecialAbility struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ActionCost  int    `json:"action_cost"`
}

// Creature is the centerpiece card of a set
type Creature struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Element           Element          `json:"element"`
	Class             CreatureClass    `json:"class"`
	Rarity            int              `json:"rarity"`
	RarityText        string           `json:"rarity_text"`
	Health            int              `json:"health"`
	Power             int              `json:"power"`
	Defense           int              `json:"defense"`
	Agility           int              `json:"agility"`
	SpecialAbilities  []SpecialAbility `json:"special_abilities"`
	EffectText        string           `json:"effect_text"`
	FlavorText        string           `json:"flavor_text"`
	SetID             string           `json:"set_id"`
	SourceDescription string           `json:"source_description"`
	ImageHandle       string           `json:"image_handle,omitempty"`
}

var _ core.Entity = (*Creature)(nil)

// GetID returns the creature card id
func (c *Creature) GetID() string {
	return c.ID
}

// GetType returns the entity type
func (c *Creature) GetType() string {
	return EntityTypeCreature
}
