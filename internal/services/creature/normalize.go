package creature

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/card-forge/internal/clients/textgen"
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/pkg/roller"
)

// Stat ranges requested from the model, with the default used when a value is unusable
var (
	healthRange  = statRange{min: 10, max: 30, def: 15}
	powerRange   = statRange{min: 5, max: 20, def: 10}
	defenseRange = statRange{min: 3, max: 15, def: 8}
	agilityRange = statRange{min: 3, max: 15, def: 8}
	rarityRange  = statRange{min: cards.MinRarity, max: cards.MaxRarity, def: 3}
	costRange    = statRange{min: 1, max: 3, def: 1}
)

type statRange struct {
	min, max, def int
}

func (r statRange) of(n textgen.Number) int {
	return n.ClampedIntOr(r.def, r.min, r.max)
}

type modelAbility struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	ActionCost  textgen.Number `json:"actionCost"`
}

// modelCreature is the JSON shape the creature prompt asks for
type modelCreature struct {
	Name             string         `json:"name"`
	Element          string         `json:"element"`
	Class            string         `json:"class"`
	Health           textgen.Number `json:"health"`
	Power            textgen.Number `json:"power"`
	Defense          textgen.Number `json:"defense"`
	Agility          textgen.Number `json:"agility"`
	Rarity           textgen.Number `json:"rarity"`
	SpecialAbilities []modelAbility `json:"specialAbilities"`
	EffectText       string         `json:"effectText"`
	FlavorText       string         `json:"flavorText"`
}

// normalize turns model output into a creature, defaulting anything missing
// or outside the enums and clamping stats to the requested ranges
func (s *service) normalize(description string, m *modelCreature) *cards.Creature {
	element, ok := cards.ParseElement(m.Element)
	if !ok {
		element = roller.Pick(s.roller, cards.AllElements())
	}
	class, ok := cards.ParseClass(m.Class)
	if !ok {
		class = roller.Pick(s.roller, cards.AllClasses())
	}

	name := strings.ToUpper(strings.TrimSpace(m.Name))
	if name == "" {
		name = strings.ToUpper(description) + " CREATURE"
	}

	abilities := make([]cards.SpecialAbility, 0, len(m.SpecialAbilities))
	for _, a := range m.SpecialAbilities {
		if strings.TrimSpace(a.Name) == "" {
			continue
		}
		abilities = append(abilities, cards.SpecialAbility{
			Name:        strings.TrimSpace(a.Name),
			Description: strings.TrimSpace(a.Description),
			ActionCost:  costRange.of(a.ActionCost),
		})
	}

	effect := strings.TrimSpace(m.EffectText)
	if effect == "" {
		effect = fmt.Sprintf("This creature harnesses the power of %s.", element)
	}
	flavor := strings.TrimSpace(m.FlavorText)
	if flavor == "" {
		flavor = fmt.Sprintf("%q", description)
	}

	rarity := rarityRange.of(m.Rarity)

	return &cards.Creature{
		Name:             name,
		Element:          element,
		Class:            class,
		Rarity:           rarity,
		RarityText:       cards.RarityText(rarity),
		Health:           healthRange.of(m.Health),
		Power:            powerRange.of(m.Power),
		Defense:          defenseRange.of(m.Defense),
		Agility:          agilityRange.of(m.Agility),
		SpecialAbilities: abilities,
		EffectText:       effect,
		FlavorText:       flavor,
	}
}
