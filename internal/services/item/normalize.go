package item

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/card-forge/internal/clients/textgen"
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/pkg/roller"
)

// modelItem is the JSON shape the item prompt asks for; only the fields of
// the requested category are read
type modelItem struct {
	Name            string         `json:"name"`
	ItemType        string         `json:"itemType"`
	Element         string         `json:"element"`
	Rarity          textgen.Number `json:"rarity"`
	ActionCost      textgen.Number `json:"actionCost"`
	EffectText      string         `json:"effectText"`
	FlavorText      string         `json:"flavorText"`
	PowerBonus      textgen.Number `json:"powerBonus"`
	SecondaryEffect string         `json:"secondaryEffect"`
	DefenseBonus    textgen.Number `json:"defenseBonus"`
	AgilityPenalty  textgen.Number `json:"agilityPenalty"`
	PassiveEffect   string         `json:"passiveEffect"`
	ActivatedEffect string         `json:"activatedEffect"`
	UseEffect       string         `json:"useEffect"`
	Duration        textgen.Number `json:"duration"`
	Compatibility   []string       `json:"compatibility"`
}

const maxDuration = 10

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}

// normalize turns model output into an item of the requested category,
// defaulting anything missing and clamping numbers to the requested ranges
func (s *service) normalize(category cards.ItemCategory, creature *cards.Creature, m *modelItem) (cards.Item, error) {
	item, err := cards.NewItem(category)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create item")
	}

	itemType, ok := cards.ParseItemType(category, m.ItemType)
	if !ok {
		itemType = roller.Pick(s.roller, category.AllowedTypes())
	}
	element, ok := cards.ParseElement(m.Element)
	if !ok {
		element = creature.Element
	}

	defaultCost := 0
	if category == cards.CategoryConsumable {
		defaultCost = 1
	}
	rarity := m.Rarity.ClampedIntOr(3, cards.MinRarity, cards.MaxRarity)

	var tags []string
	for _, t := range m.Compatibility {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		tags = []string{string(element), string(creature.Class)}
	}

	*item.Base() = cards.ItemBase{
		Name:              strings.ToUpper(orDefault(m.Name, fmt.Sprintf("%s %s", element, category))),
		ItemType:          itemType,
		Element:           element,
		Rarity:            rarity,
		RarityText:        cards.RarityText(rarity),
		EffectText:        orDefault(m.EffectText, fmt.Sprintf("This item enhances the wielder's %s abilities.", element)),
		FlavorText:        orDefault(m.FlavorText, fmt.Sprintf("\"A perfect match for a %s.\"", creature.Class)),
		ActionCost:        m.ActionCost.ClampedIntOr(defaultCost, 0, 3),
		CompatibilityTags: tags,
	}

	switch v := item.(type) {
	case *cards.Weapon:
		v.PowerBonus = m.PowerBonus.ClampedIntOr(3+roller.Intn(s.roller, 5), 1, 10)
		v.SecondaryEffect = orDefault(m.SecondaryEffect, fmt.Sprintf("Grants a bonus against %s resistances.", element))
	case *cards.Armor:
		v.DefenseBonus = m.DefenseBonus.ClampedIntOr(2+roller.Intn(s.roller, 4), 1, 8)
		v.AgilityPenalty = m.AgilityPenalty.ClampedIntOr(roller.Intn(s.roller, 2), 0, 3)
	case *cards.Relic:
		v.PassiveEffect = orDefault(m.PassiveEffect, fmt.Sprintf("Enhances %s damage.", element))
		v.ActivatedEffect = orDefault(m.ActivatedEffect, fmt.Sprintf("Unleashes stored %s energy.", element))
	case *cards.Consumable:
		v.UseEffect = orDefault(m.UseEffect, fmt.Sprintf("Restores health and boosts %s power.", element))
		v.Duration = m.Duration.ClampedIntOr(0, 0, maxDuration)
	}

	return item, nil
}
