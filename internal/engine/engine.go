package engine

import (
	"fmt"

	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/errors"
)

type engine struct{}

// Config holds engine dependencies. The rules are table driven and need none yet.
type Config struct{}

// Validate checks the config
func (cfg *Config) Validate() error {
	return nil
}

// New creates a rules engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &engine{}, nil
}

// CheckCompatibility applies the first matching rule: same element, opposing
// element, class synergy, then basic compatibility.
func (e *engine) CheckCompatibility(creature *cards.Creature, item cards.Item) *CompatibilityResult {
	if creature == nil || item == nil {
		return &CompatibilityResult{Reason: "Basic compatibility"}
	}

	base := item.Base()
	switch {
	case base.Element == creature.Element:
		return &CompatibilityResult{
			Compatible: true,
			Bonus:      SameElementBonus,
			Reason:     "Same element (+25% effect)",
		}
	case base.Element == creature.Element.Opposing():
		return &CompatibilityResult{
			Compatible: false,
			Penalty:    OpposingElementPenalty,
			Reason:     "Opposing element (10% self-damage)",
		}
	case creature.Class.Prefers(base.ItemType):
		return &CompatibilityResult{
			Compatible: true,
			Bonus:      ClassSynergyBonus,
			Reason:     fmt.Sprintf("%s works well with %s", creature.Class, base.ItemType),
		}
	default:
		return &CompatibilityResult{
			Compatible: true,
			Reason:     "Basic compatibility",
		}
	}
}

// ComputeEffectiveStats scales weapon and armor bonuses by compatibility.
// Relics and consumables have no numeric effect, and the opposing element
// penalty is reported by CheckCompatibility only.
func (e *engine) ComputeEffectiveStats(creature *cards.Creature, items []cards.Item) (*EffectiveStats, error) {
	if creature == nil {
		return nil, errors.InvalidArgument("creature is required")
	}

	stats := &EffectiveStats{
		Health:  creature.Health,
		Power:   float64(creature.Power),
		Defense: float64(creature.Defense),
		Agility: creature.Agility,
		Bonuses: []string{},
	}

	for _, item := range items {
		if item == nil {
			continue
		}

		compat := e.CheckCompatibility(creature, item)
		scale := 1.0
		if compat.Compatible {
			scale += compat.Bonus
		}

		switch it := item.(type) {
		case *cards.Weapon:
			bonus := float64(it.PowerBonus) * scale
			stats.Power += bonus
			stats.Bonuses = append(stats.Bonuses, fmt.Sprintf("%s: +%.1f Power", it.Name, bonus))
		case *cards.Armor:
			bonus := float64(it.DefenseBonus) * scale
			stats.Defense += bonus
			stats.Agility -= it.AgilityPenalty
			stats.Bonuses = append(stats.Bonuses,
				fmt.Sprintf("%s: +%.1f Defense, -%d Agility", it.Name, bonus, it.AgilityPenalty))
		case *cards.Relic, *cards.Consumable:
			// no stat contribution
		}
	}

	return stats, nil
}

// ValidateCardSet runs every rule and collects all failures. A missing
// creature or wrong item count stops evaluation early since the remaining
// rules need both.
func (e *engine) ValidateCardSet(set *cards.CardSet) *ValidationResult {
	result := &ValidationResult{
		IsValid:            true,
		ValidationMessages: []string{},
	}
	fail := func(msg string) {
		result.IsValid = false
		result.ValidationMessages = append(result.ValidationMessages, msg)
	}

	if set == nil || set.Creature == nil {
		fail(MsgMissingCreature)
	}
	if set == nil || len(set.Items) != cards.SetSize {
		fail(MsgWrongItemCount)
	}
	if !result.IsValid {
		return result
	}

	categories := make(map[cards.ItemCategory]bool)
	types := make(map[cards.ItemType]bool)
	duplicate := false
	aligned := 0
	for _, item := range set.Items {
		if item == nil {
			continue
		}
		categories[item.Category()] = true

		base := item.Base()
		if types[base.ItemType] {
			duplicate = true
		}
		types[base.ItemType] = true

		if base.Element == set.Creature.Element {
			aligned++
		}
	}

	if len(categories) < MinCategories {
		fail(MsgTooFewCategories)
	}
	if !categories[cards.CategoryWeapon] {
		fail(MsgMissingWeapon)
	}
	if !categories[cards.CategoryArmor] {
		fail(MsgMissingArmor)
	}
	if duplicate {
		fail(MsgDuplicateItemTypes)
	}
	if aligned < MinAlignedItems {
		fail(MsgElementAlignment)
	}

	return result
}
