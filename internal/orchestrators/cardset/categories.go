package cardset

import (
	"fmt"

	"github.com/KirkDiggler/card-forge/internal/entities/cards"
)

var requiredCategories = []cards.ItemCategory{cards.CategoryWeapon, cards.CategoryArmor}

// selectCategories picks the four item categories for a creature: weapon and
// armor always, then relic and consumable in class preferred order
func selectCategories(class cards.CreatureClass) []cards.ItemCategory {
	optional := []cards.ItemCategory{cards.CategoryConsumable, cards.CategoryRelic}
	if class == cards.ClassMystic {
		optional = []cards.ItemCategory{cards.CategoryRelic, cards.CategoryConsumable}
	}

	categories := make([]cards.ItemCategory, 0, cards.SetSize)
	categories = append(categories, requiredCategories...)
	for _, c := range optional {
		if len(categories) == cards.SetSize {
			break
		}
		categories = append(categories, c)
	}
	for len(categories) < cards.SetSize {
		categories = append(categories, paddingCategory(class))
	}
	return categories
}

func paddingCategory(class cards.CreatureClass) cards.ItemCategory {
	switch class {
	case cards.ClassHunter:
		return cards.CategoryWeapon
	case cards.ClassMystic:
		return cards.CategoryRelic
	default:
		return cards.CategoryConsumable
	}
}

// itemBrief is the category flavored description handed to the item generator
func itemBrief(category cards.ItemCategory, creature *cards.Creature) string {
	switch category {
	case cards.CategoryWeapon:
		return fmt.Sprintf("a powerful %s weapon for a %s", creature.Element, creature.Class)
	case cards.CategoryArmor:
		return fmt.Sprintf("protective armor with %s resistance for a %s", creature.Element, creature.Class)
	case cards.CategoryRelic:
		return fmt.Sprintf("a magical %s relic that enhances %s abilities", creature.Element, creature.Class)
	default:
		return fmt.Sprintf("a %s potion or scroll that provides temporary power", creature.Element)
	}
}
