package item

import (
	"fmt"
	"slices"
	"strings"

	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/pkg/roller"
)

// sameElementChance is the percent chance a synthesized item shares the creature's element
const sameElementChance = 70

var elementAdjectives = map[cards.Element][]string{
	cards.ElementFire:   {"Blazing", "Inferno", "Molten", "Ember"},
	cards.ElementWater:  {"Tidal", "Aqua", "Frost", "Ocean"},
	cards.ElementEarth:  {"Stone", "Terra", "Mountain", "Crystal"},
	cards.ElementAir:    {"Zephyr", "Wind", "Sky", "Cloud"},
	cards.ElementLight:  {"Radiant", "Solar", "Divine", "Celestial"},
	cards.ElementShadow: {"Void", "Umbral", "Night", "Twilight"},
}

// synthesize builds an item without the text generator. It always succeeds
// for a valid category.
func (s *service) synthesize(category cards.ItemCategory, creature *cards.Creature) cards.Item {
	itemType := roller.Pick(s.roller, category.AllowedTypes())
	element := s.fallbackElement(creature.Element)
	opposing := element.Opposing()
	rarity := 2 + roller.Intn(s.roller, 3)

	actionCost := 0
	if category == cards.CategoryConsumable {
		actionCost = 1
	}

	base := cards.ItemBase{
		Name:       strings.ToUpper(fmt.Sprintf("%s %s", roller.Pick(s.roller, elementAdjectives[element]), itemType)),
		ItemType:   itemType,
		Element:    element,
		Rarity:     rarity,
		RarityText: cards.RarityText(rarity),
		FlavorText: fmt.Sprintf("\"Forged in the essence of %s, a valuable asset for any %s.\"", element, creature.Class),
		ActionCost: actionCost,
		CompatibilityTags: []string{
			string(element),
			string(creature.Class),
		},
	}
	effectPrefix := fmt.Sprintf("This %s %s ", element, strings.ToLower(string(itemType)))

	switch category {
	case cards.CategoryWeapon:
		base.EffectText = effectPrefix + fmt.Sprintf("increases attack power and deals extra damage against %s enemies.", opposing)
		return &cards.Weapon{
			ItemBase:        base,
			PowerBonus:      3 + roller.Intn(s.roller, 5),
			SecondaryEffect: fmt.Sprintf("Grants +%d bonus against %s resistances.", 1+roller.Intn(s.roller, 3), element),
		}
	case cards.CategoryArmor:
		maxPenalty := 1
		if itemType == cards.ItemTypeHeavy {
			maxPenalty = 2
		}
		base.EffectText = effectPrefix + fmt.Sprintf("provides protection from physical attacks and reduces damage from %s sources.", opposing)
		return &cards.Armor{
			ItemBase:       base,
			DefenseBonus:   2 + roller.Intn(s.roller, 4),
			AgilityPenalty: min(roller.Intn(s.roller, 3), maxPenalty),
		}
	case cards.CategoryRelic:
		base.EffectText = effectPrefix + fmt.Sprintf("enhances %s abilities and provides resistance against opposing elements.", element)
		return &cards.Relic{
			ItemBase:        base,
			PassiveEffect:   fmt.Sprintf("Enhances %s resistance by %d%%.", element, 10+roller.Intn(s.roller, 20)),
			ActivatedEffect: fmt.Sprintf("Once per battle: Unleash stored %s energy to deal %d damage.", element, 5+roller.Intn(s.roller, 10)),
		}
	default:
		base.EffectText = effectPrefix + fmt.Sprintf("can be used in battle to provide a temporary boost to %s abilities.", element)
		return &cards.Consumable{
			ItemBase:  base,
			UseEffect: fmt.Sprintf("Restores %d health and temporarily boosts %s power.", 5+roller.Intn(s.roller, 10), element),
			Duration:  roller.Intn(s.roller, 3),
		}
	}
}

// fallbackElement keeps the creature's element most of the time, otherwise
// picks one of the other five
func (s *service) fallbackElement(creatureElement cards.Element) cards.Element {
	if roller.Chance(s.roller, sameElementChance) {
		return creatureElement
	}
	others := slices.DeleteFunc(cards.AllElements(), func(e cards.Element) bool {
		return e == creatureElement
	})
	return roller.Pick(s.roller, others)
}
