package cards

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Item is an equipment card. Every variant embeds ItemBase and is
// distinguished by its Category.
type Item interface {
	core.Entity

	// Category returns the variant tag
	Category() ItemCategory

	// Base exposes the fields shared by every category
	Base() *ItemBase
}

// ItemBase holds the fields common to all item categories
type ItemBase struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	ItemType          ItemType `json:"item_type"`
	Element           Element  `json:"element"`
	Rarity            int      `json:"rarity"`
	RarityText        string   `json:"rarity_text"`
	EffectText        string   `json:"effect_text"`
	FlavorText        string   `json:"flavor_text"`
	ActionCost        int      `json:"action_cost"`
	CompatibilityTags []string `json:"compatibility_tags"`
	SetID             string   `json:"set_id"`
	ImageHandle       string   `json:"image_handle,omitempty"`
}

// GetID returns the item card id
func (b *ItemBase) GetID() string {
	return b.ID
}

// Base returns the shared fields
func (b *ItemBase) Base() *ItemBase {
	return b
}

// Weapon adds raw power to its wielder
type Weapon struct {
	ItemBase
	PowerBonus      int    `json:"power_bonus"`
	SecondaryEffect string `json:"secondary_effect"`
}

// Armor trades agility for defense
type Armor struct {
	ItemBase
	DefenseBonus   int `json:"defense_bonus"`
	AgilityPenalty int `json:"agility_penalty"`
}

// Relic grants a passive and an activated effect
type Relic struct {
	ItemBase
	PassiveEffect   string `json:"passive_effect"`
	ActivatedEffect string `json:"activated_effect"`
}

// Consumable is used up on activation. Duration 0 means instant.
type Consumable struct {
	ItemBase
	UseEffect string `json:"use_effect"`
	Duration  int    `json:"duration"`
}

var (
	_ Item = (*Weapon)(nil)
	_ Item = (*Armor)(nil)
	_ Item = (*Relic)(nil)
	_ Item = (*Consumable)(nil)
)

// Category returns CategoryWeapon
func (w *Weapon) Category() ItemCategory { return CategoryWeapon }

// Category returns CategoryArmor
func (a *Armor) Category() ItemCategory { return CategoryArmor }

// Category returns CategoryRelic
func (r *Relic) Category() ItemCategory { return CategoryRelic }

// Category returns CategoryConsumable
func (c *Consumable) Category() ItemCategory { return CategoryConsumable }

// GetType returns the entity type, the lowercased category
func (w *Weapon) GetType() string { return entityType(CategoryWeapon) }

// GetType returns the entity type, the lowercased category
func (a *Armor) GetType() string { return entityType(CategoryArmor) }

// GetType returns the entity type, the lowercased category
func (r *Relic) GetType() string { return entityType(CategoryRelic) }

// GetType returns the entity type, the lowercased category
func (c *Consumable) GetType() string { return entityType(CategoryConsumable) }

func entityType(c ItemCategory) string {
	return strings.ToLower(string(c))
}

// NewItem returns an empty item of the given category
func NewItem(category ItemCategory) (Item, error) {
	switch category {
	case CategoryWeapon:
		return &Weapon{}, nil
	case CategoryArmor:
		return &Armor{}, nil
	case CategoryRelic:
		return &Relic{}, nil
	case CategoryConsumable:
		return &Consumable{}, nil
	default:
		return nil, fmt.Errorf("unknown item category %q", category)
	}
}

// MarshalJSON writes the weapon with its category tag
func (w *Weapon) MarshalJSON() ([]byte, error) {
	type alias Weapon
	return json.Marshal(struct {
		Category ItemCategory `json:"category"`
		*alias
	}{CategoryWeapon, (*alias)(w)})
}

// MarshalJSON writes the armor with its category tag
func (a *Armor) MarshalJSON() ([]byte, error) {
	type alias Armor
	return json.Marshal(struct {
		Category ItemCategory `json:"category"`
		*alias
	}{CategoryArmor, (*alias)(a)})
}

// MarshalJSON writes the relic with its category tag
func (r *Relic) MarshalJSON() ([]byte, error) {
	type alias Relic
	return json.Marshal(struct {
		Category ItemCategory `json:"category"`
		*alias
	}{CategoryRelic, (*alias)(r)})
}

// MarshalJSON writes the consumable with its category tag
func (c *Consumable) MarshalJSON() ([]byte, error) {
	type alias Consumable
	return json.Marshal(struct {
		Category ItemCategory `json:"category"`
		*alias
	}{CategoryConsumable, (*alias)(c)})
}

// UnmarshalItem decodes a category-tagged item written by MarshalJSON
func UnmarshalItem(data []byte) (Item, error) {
	var tag struct {
		Category ItemCategory `json:"category"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, err
	}

	item, err := NewItem(tag.Category)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, item); err != nil {
		return nil, err
	}
	return item, nil
}
