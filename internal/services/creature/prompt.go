package creature

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/card-forge/internal/entities/cards"
)

var elementVisuals = map[cards.Element]string{
	cards.ElementFire:   "with flames, ember effects, red-orange color scheme",
	cards.ElementWater:  "with water effects, flowing liquid, blue color scheme",
	cards.ElementEarth:  "with rocks, crystal elements, brown-green color scheme",
	cards.ElementAir:    "with wind effects, cloud elements, light blue-white color scheme",
	cards.ElementLight:  "with glowing aura, holy symbols, gold-white color scheme",
	cards.ElementShadow: "with dark essence, shadowy effects, purple-black color scheme",
}

var classVisuals = map[cards.CreatureClass]string{
	cards.ClassGuardian:  "heavily armored, defensive stance, protective",
	cards.ClassHunter:    "wielding weapons, aggressive stance, ready to attack",
	cards.ClassMystic:    "with magical elements, spell-casting, mystical aura",
	cards.ClassTrickster: "agile, cunning appearance, unconventional weapons",
}

func quotedList[T ~string](values []T) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", string(v))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func creaturePrompt(description string) string {
	return fmt.Sprintf(`You are a creative fantasy card game designer.

Create a creature card based on this description: %[1]q

Your response MUST follow this JSON format:
{
  "name": "A CREATIVE, MEMORABLE NAME IN ALL CAPS",
  "element": one of %[2]s,
  "class": one of %[3]s,
  "health": [number between 10-30],
  "power": [number between 5-20],
  "defense": [number between 3-15],
  "agility": [number between 3-15],
  "rarity": [number between 1-5],
  "specialAbilities": [
    {"name": "ability name", "description": "brief description", "actionCost": 1-3}
  ],
  "effectText": "Brief description of the creature's abilities in battle",
  "flavorText": "Short atmospheric quote or description",
  "userDescription": %[1]q
}

Follow these rules:
1. Balance stats based on class:
   - Guardian: High Health/Defense, Lower Power/Agility
   - Hunter: High Power/Agility, Lower Health/Defense
   - Mystic: Balanced stats with focus on special abilities
   - Trickster: High Agility, Moderate other stats
2. Choose an element that fits the creature's theme and description
3. Create abilities that match both the class role and elemental type
4. Higher rarity creatures should have better overall stats and abilities
5. IMPORTANT: Include the original description in the userDescription field

Return ONLY the JSON object without explanation.`,
		description,
		quotedList(cards.AllElements()),
		quotedList(cards.AllClasses()))
}

func imagePrompt(c *cards.Creature) string {
	return fmt.Sprintf("A high-quality trading card game artwork depicting a %[1]s %[2]s creature: %[3]s. "+
		"%[4]s. %[5]s. "+
		"Inspired by: %[6]s. "+
		"The creature should be centrally composed with rich detail and appropriate for a portrait card format. "+
		"Include suitable background elements that enhance the %[1]s theme. "+
		"Art only - NO TEXT, NO CARD FRAMES, NO NUMBERS, NO SYMBOLS overlaid on the image.",
		c.Element, c.Class, c.Name,
		elementVisuals[c.Element], classVisuals[c.Class],
		c.SourceDescription)
}
