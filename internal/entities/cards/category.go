package cards

import (
	"slices"
	"strings"
)

// ItemCategory is the kind of equipment card
type ItemCategory string

// Item categories
const (
	CategoryWeapon     ItemCategory = "Weapon"
	CategoryArmor      ItemCategory = "Armor"
	CategoryRelic      ItemCategory = "Relic"
	CategoryConsumable ItemCategory = "Consumable"
)

// ItemType is the concrete type tag of an item within its category
type ItemType string

// Item types
const (
	// Weapons
	ItemTypeBlade  ItemType = "Blade"
	ItemTypeStaff  ItemType = "Staff"
	ItemTypeBow    ItemType = "Bow"
	ItemTypeShield ItemType = "Shield"

	// Armor
	ItemTypeLight  ItemType = "Light"
	ItemTypeMedium ItemType = "Medium"
	ItemTypeHeavy  ItemType = "Heavy"

	// Relics
	ItemTypeCharm    ItemType = "Charm"
	ItemTypeTalisman ItemType = "Talisman"
	ItemTypeCrystal  ItemType = "Crystal"
	ItemTypeArtifact ItemType = "Artifact"

	// Consumables
	ItemTypePotion ItemType = "Potion"
	ItemTypeScroll ItemType = "Scroll"
	ItemTypeElixir ItemType = "Elixir"
	ItemTypeTonic  ItemType = "Tonic"
)

var allCategories = []ItemCategory{
	CategoryWeapon,
	CategoryArmor,
	CategoryRelic,
	CategoryConsumable,
}

var categoryItemTypes = map[ItemCategory][]ItemType{
	CategoryWeapon:     {ItemTypeBlade, ItemTypeStaff, ItemTypeBow, ItemTypeShield},
	CategoryArmor:      {ItemTypeLight, ItemTypeMedium, ItemTypeHeavy},
	CategoryRelic:      {ItemTypeCharm, ItemTypeTalisman, ItemTypeCrystal, ItemTypeArtifact},
	CategoryConsumable: {ItemTypePotion, ItemTypeScroll, ItemTypeElixir, ItemTypeTonic},
}

// String returns the string representation of the category
func (c ItemCategory) String() string {
	return string(c)
}

// IsValid checks if the category is one of the four known categories
func (c ItemCategory) IsValid() bool {
	_, ok := categoryItemTypes[c]
	return ok
}

// AllowedTypes returns the item types an item of this category may carry
func (c ItemCategory) AllowedTypes() []ItemType {
	return slices.Clone(categoryItemTypes[c])
}

// Allows reports whether the item type belongs to this category
func (c ItemCategory) Allows(t ItemType) bool {
	return slices.Contains(categoryItemTypes[c], t)
}

// IDPrefix returns the three letter prefix used in item ids (WEA, ARM, ...)
func (c ItemCategory) IDPrefix() string {
	s := strings.ToUpper(string(c))
	if len(s) > 3 {
		return s[:3]
	}
	return s
}

// AllCategories returns every item category in declaration order
func AllCategories() []ItemCategory {
	return slices.Clone(allCategories)
}

// ParseItemType matches a type name case-insensitively within a category
func ParseItemType(category ItemCategory, s string) (ItemType, bool) {
	s = strings.TrimSpace(s)
	for _, t := range categoryItemTypes[category] {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

// String returns the string representation of the item type
func (t ItemType) String() string {
	return string(t)
}
