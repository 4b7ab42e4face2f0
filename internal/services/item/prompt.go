package item

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KirkDiggler/card-forge/internal/entities/cards"
)

var elementVisuals = map[cards.Element]string{
	cards.ElementFire:   "with flames, ember effects, red-orange glow",
	cards.ElementWater:  "with water effects, flowing liquid, blue glow",
	cards.ElementEarth:  "with rocks, crystal elements, brown-green accents",
	cards.ElementAir:    "with wind effects, cloud elements, light blue-white aura",
	cards.ElementLight:  "with glowing aura, holy symbols, gold-white radiance",
	cards.ElementShadow: "with dark essence, shadowy effects, purple-black aura",
}

var categoryVisuals = map[cards.ItemCategory]string{
	cards.CategoryWeapon:     "detailed weapon design, combat-ready, powerful",
	cards.CategoryArmor:      "protective gear, defensive equipment, sturdy design",
	cards.CategoryRelic:      "mystical artifact, ancient design, magical glow",
	cards.CategoryConsumable: "potion, scroll or magical item, ready to use",
}

// categoryFields are the extra JSON fields requested per category
var categoryFields = map[cards.ItemCategory]string{
	cards.CategoryWeapon: `  "powerBonus": [number between 1-10],
  "secondaryEffect": "Description of additional effect",`,
	cards.CategoryArmor: `  "defenseBonus": [number between 1-8],
  "agilityPenalty": [number between 0-3],`,
	cards.CategoryRelic: `  "passiveEffect": "Description of always-active effect",
  "activatedEffect": "Description of effect when activated",`,
	cards.CategoryConsumable: `  "useEffect": "Effect when used",
  "duration": [number of rounds, or 0 for instant],`,
}

func jsonList(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func itemPrompt(input *GenerateItemInput) string {
	c := input.Creature
	return fmt.Sprintf(`You are a creative fantasy card game designer.

Create a %[1]s item card to equip on a %[2]s %[3]s creature.
Base your design on this description: %[4]q

The creature has these stats:
Health: %[5]d
Power: %[6]d
Defense: %[7]d
Agility: %[8]d

Your response MUST follow this JSON format:
{
  "name": "A CREATIVE, MEMORABLE NAME IN ALL CAPS",
  "itemType": one of %[9]s,
  "element": one of %[10]s,
  "rarity": [number between 1-5],
  "actionCost": [number between 0-3],
  "effectText": "Description of the item's effect in battle",
  "flavorText": "Short atmospheric quote or description",
%[11]s
  "compatibility": ["List of elements or classes this item works best with"]
}

Follow these rules:
1. The item should complement the creature's element and class
2. If creating an item with the same element as the creature (%[2]s), make it provide bonuses specific to that element
3. Balance the item's power based on its action cost and rarity
4. Consider the creature's strengths and weaknesses when designing the item
5. Keep the item's effect thematically appropriate for a %[3]s
6. %[12]s is the complementary element of %[2]s and also suits this creature; avoid %[13]s, its opposing element

Return ONLY the JSON object without explanation.`,
		strings.ToLower(string(input.Category)), c.Element, c.Class,
		input.ItemDescription,
		c.Health, c.Power, c.Defense, c.Agility,
		jsonList(input.Category.AllowedTypes()),
		jsonList(cards.AllElements()),
		categoryFields[input.Category],
		c.Element.Complementary(), c.Element.Opposing())
}

func imagePrompt(item cards.Item, userDescription string) string {
	base := item.Base()
	category := item.Category()

	var themes string
	if kw := artKeywords(base.EffectText, userDescription); len(kw) > 0 {
		themes = "Themes: " + strings.Join(kw, ", ") + ". "
	}

	return fmt.Sprintf("A high-quality trading card game artwork depicting a %[1]s %[2]s type %[3]s: %[4]s. "+
		"%[5]s. %[6]s. "+
		"%[7]s"+
		"The item should be centrally composed with rich detail and appropriate for a portrait card format, with no creatures or characters. "+
		"Include suitable background elements that enhance the %[1]s theme. "+
		"Art only - NO TEXT, NO CARD FRAMES, NO NUMBERS, NO SYMBOLS overlaid on the image.",
		base.Element, strings.ToLower(string(base.ItemType)), strings.ToLower(string(category)), base.Name,
		elementVisuals[base.Element], categoryVisuals[category],
		themes)
}
