package testutils

import (
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
)

const (
	// TestSetID is shared by every fixture card
	TestSetID = "SET-07"

	// TestDescription is the source description of the fixture creature
	TestDescription = "fire dragon"
)

// CreateTestCreature creates a fire hunter with mid-range stats
func CreateTestCreature() *cards.Creature {
	return &cards.Creature{
		ID:         "CRT-001",
		Name:       "EMBER WYRM",
		Element:    cards.ElementFire,
		Class:      cards.ClassHunter,
		Rarity:     3,
		RarityText: cards.RarityText(3),
		Health:     20,
		Power:      12,
		Defense:    8,
		Agility:    10,
		SpecialAbilities: []cards.SpecialAbility{
			{Name: "Cinder Lunge", Description: "Strike twice with burning claws", ActionCost: 2},
		},
		EffectText:        "Deals +2 damage to nature creatures",
		FlavorText:        "Its breath melts stone.",
		SetID:             TestSetID,
		SourceDescription: TestDescription,
	}
}

// CreateTestItems creates one item per category, all matching the fixture creature
func CreateTestItems() []cards.Item {
	return []cards.Item{
		&cards.Weapon{
			ItemBase:   testItemBase("WPN-001", "EMBER BOW", cards.ItemTypeBow),
			PowerBonus: 4,
		},
		&cards.Armor{
			ItemBase:       testItemBase("ARM-001", "ASHEN MAIL", cards.ItemTypeLight),
			DefenseBonus:   3,
			AgilityPenalty: 1,
		},
		&cards.Consumable{
			ItemBase:  testItemBase("CON-001", "KINDLING TONIC", cards.ItemTypeTonic),
			UseEffect: "Restore 5 health",
			Duration:  2,
		},
		&cards.Relic{
			ItemBase:        testItemBase("REL-001", "SMOLDERING CHARM", cards.ItemTypeCharm),
			PassiveEffect:   "+1 power",
			ActivatedEffect: "Ignite an enemy",
		},
	}
}

// CreateTestCardSet creates a valid four item set around the fixture creature
func CreateTestCardSet() *cards.CardSet {
	return &cards.CardSet{
		Creature:           CreateTestCreature(),
		Items:              CreateTestItems(),
		IsValid:            true,
		ValidationMessages: []string{},
	}
}

func testItemBase(id, name string, t cards.ItemType) cards.ItemBase {
	return cards.ItemBase{
		ID:                id,
		Name:              name,
		ItemType:          t,
		Element:           cards.ElementFire,
		Rarity:            2,
		RarityText:        cards.RarityText(2),
		EffectText:        "Burns on hit",
		FlavorText:        "Still warm.",
		ActionCost:        1,
		CompatibilityTags: []string{"fire", "hunter"},
		SetID:             TestSetID,
	}
}
