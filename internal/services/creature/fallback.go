package creature

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/pkg/roller"
)

var (
	nameAdjectives = []string{"Ancient", "Mystic", "Chaotic", "Divine", "Infernal", "Celestial"}
	nameNouns      = []string{"Guardian", "Hunter", "Beast", "Spirit", "Titan", "Overlord"}
)

// band is a fixed random range: base + [0, spread)
type band struct {
	base, spread int
}

func (b band) roll(r dice.Roller) int {
	return b.base + roller.Intn(r, b.spread)
}

func (b band) contains(v int) bool {
	return v >= b.base && v < b.base+b.spread
}

type classBands struct {
	health, power, defense, agility band
}

var fallbackBands = map[cards.CreatureClass]classBands{
	cards.ClassGuardian: {
		health:  band{base: 20, spread: 10},
		power:   band{base: 5, spread: 8},
		defense: band{base: 10, spread: 5},
		agility: band{base: 3, spread: 5},
	},
	cards.ClassHunter: {
		health:  band{base: 10, spread: 10},
		power:   band{base: 15, spread: 5},
		defense: band{base: 3, spread: 5},
		agility: band{base: 10, spread: 5},
	},
	cards.ClassMystic: {
		health:  band{base: 12, spread: 10},
		power:   band{base: 8, spread: 10},
		defense: band{base: 5, spread: 5},
		agility: band{base: 7, spread: 5},
	},
	cards.ClassTrickster: {
		health:  band{base: 12, spread: 10},
		power:   band{base: 8, spread: 8},
		defense: band{base: 5, spread: 5},
		agility: band{base: 10, spread: 5},
	},
}

var abilitySuffix = map[cards.CreatureClass]string{
	cards.ClassGuardian:  "Protector",
	cards.ClassHunter:    "Strike",
	cards.ClassMystic:    "Spell",
	cards.ClassTrickster: "Trick",
}

var abilityPurpose = map[cards.CreatureClass]string{
	cards.ClassGuardian:  "protect allies and reduce incoming damage",
	cards.ClassHunter:    "deal extra damage to enemies",
	cards.ClassMystic:    "cast powerful spells affecting multiple targets",
	cards.ClassTrickster: "confuse enemies and apply status effects",
}

var classStrength = map[cards.CreatureClass]string{
	cards.ClassGuardian:  "protecting allies and absorbing damage",
	cards.ClassHunter:    "dealing high damage to single targets",
	cards.ClassMystic:    "casting powerful spells with area effects",
	cards.ClassTrickster: "applying status effects and acting out of turn order",
}

// synthesize builds a creature without the text generator. It always succeeds.
func (s *service) synthesize(description string) *cards.Creature {
	element, ok := cards.DetectElement(description)
	if !ok {
		element = roller.Pick(s.roller, cards.AllElements())
	}
	class := roller.Pick(s.roller, cards.AllClasses())

	name := strings.ToUpper(fmt.Sprintf("%s %s %s",
		roller.Pick(s.roller, nameAdjectives),
		nameKeyword(description),
		roller.Pick(s.roller, nameNouns)))

	bands := fallbackBands[class]
	rarity := 2 + roller.Intn(s.roller, 3)

	actionCost := 2
	if class == cards.ClassTrickster {
		actionCost = 1
	}

	return &cards.Creature{
		Name:       name,
		Element:    element,
		Class:      class,
		Rarity:     rarity,
		RarityText: cards.RarityText(rarity),
		Health:     bands.health.roll(s.roller),
		Power:      bands.power.roll(s.roller),
		Defense:    bands.defense.roll(s.roller),
		Agility:    bands.agility.roll(s.roller),
		SpecialAbilities: []cards.SpecialAbility{{
			Name:        fmt.Sprintf("%s %s", element, abilitySuffix[class]),
			Description: fmt.Sprintf("Uses the power of %s to %s.", element, abilityPurpose[class]),
			ActionCost:  actionCost,
		}},
		EffectText: fmt.Sprintf("This %s creature excels at %s.", element, classStrength[class]),
		FlavorText: fmt.Sprintf("\"The %s's power flows through this %s, making it a formidable ally in battle.\"",
			element, strings.ToLower(string(class))),
	}
}

// nameKeyword is the first word longer than three letters, else the first word
func nameKeyword(description string) string {
	words := strings.Fields(description)
	if len(words) == 0 {
		return ""
	}
	for _, w := range words {
		if len([]rune(w)) > 3 {
			return w
		}
	}
	return words[0]
}
