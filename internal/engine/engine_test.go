package engine_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/card-forge/internal/engine"
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/testutils"
)

type EngineTestSuite struct {
	suite.Suite
	engine   engine.Engine
	creature *cards.Creature
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	e, err := engine.New(&engine.Config{})
	s.Require().NoError(err)
	s.engine = e

	s.creature = &cards.Creature{
		ID:      "CRT-001",
		Name:    "ANCIENT FIRE TITAN",
		Element: cards.ElementFire,
		Class:   cards.ClassGuardian,
		Rarity:  3,
		Health:  25,
		Power:   10,
		Defense: 12,
		Agility: 5,
	}
}

func weapon(name string, t cards.ItemType, el cards.Element, power int) *cards.Weapon {
	return &cards.Weapon{
		ItemBase:   cards.ItemBase{Name: name, ItemType: t, Element: el, Rarity: 2},
		PowerBonus: power,
	}
}

func armor(name string, t cards.ItemType, el cards.Element, def, penalty int) *cards.Armor {
	return &cards.Armor{
		ItemBase:       cards.ItemBase{Name: name, ItemType: t, Element: el, Rarity: 2},
		DefenseBonus:   def,
		AgilityPenalty: penalty,
	}
}

func relic(t cards.ItemType, el cards.Element) *cards.Relic {
	return &cards.Relic{ItemBase: cards.ItemBase{Name: "RELIC", ItemType: t, Element: el}}
}

func consumable(t cards.ItemType, el cards.Element) *cards.Consumable {
	return &cards.Consumable{ItemBase: cards.ItemBase{Name: "TONIC", ItemType: t, Element: el}}
}

func (s *EngineTestSuite) TestCheckCompatibility() {
	testCases := []struct {
		name     string
		item     cards.Item
		expected *engine.CompatibilityResult
	}{
		{
			name: "same element",
			item: weapon("EMBER BOW", cards.ItemTypeBow, cards.ElementFire, 4),
			expected: &engine.CompatibilityResult{
				Compatible: true,
				Bonus:      0.25,
				Reason:     "Same element (+25% effect)",
			},
		},
		{
			name: "same element wins over class synergy",
			item: weapon("EMBER SHIELD", cards.ItemTypeShield, cards.ElementFire, 4),
			expected: &engine.CompatibilityResult{
				Compatible: true,
				Bonus:      0.25,
				Reason:     "Same element (+25% effect)",
			},
		},
		{
			name: "opposing element",
			item: weapon("TIDAL SHIELD", cards.ItemTypeShield, cards.ElementWater, 4),
			expected: &engine.CompatibilityResult{
				Compatible: false,
				Penalty:    0.10,
				Reason:     "Opposing element (10% self-damage)",
			},
		},
		{
			name: "class synergy",
			item: armor("STONE HEAVY", cards.ItemTypeHeavy, cards.ElementEarth, 4, 2),
			expected: &engine.CompatibilityResult{
				Compatible: true,
				Bonus:      0.20,
				Reason:     "Guardian works well with Heavy",
			},
		},
		{
			name: "basic compatibility",
			item: relic(cards.ItemTypeCharm, cards.ElementAir),
			expected: &engine.CompatibilityResult{
				Compatible: true,
				Reason:     "Basic compatibility",
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, s.engine.CheckCompatibility(s.creature, tc.item))
		})
	}
}

func (s *EngineTestSuite) TestCheckCompatibilityIsDeterministic() {
	for _, el := range cards.AllElements() {
		for _, cat := range cards.AllCategories() {
			for _, t := range cat.AllowedTypes() {
				item, err := cards.NewItem(cat)
				s.Require().NoError(err)
				item.Base().Element = el
				item.Base().ItemType = t

				first := s.engine.CheckCompatibility(s.creature, item)
				second := s.engine.CheckCompatibility(s.creature, item)
				s.Assert().Equal(first, second)
			}
		}
	}
}

func (s *EngineTestSuite) TestSameAndOpposingElementForEveryElement() {
	for _, el := range cards.AllElements() {
		creature := &cards.Creature{Element: el, Class: cards.ClassHunter}

		same := s.engine.CheckCompatibility(creature, relic(cards.ItemTypeCharm, el))
		s.Assert().True(same.Compatible)
		s.Assert().Equal(0.25, same.Bonus)

		opposed := s.engine.CheckCompatibility(creature, relic(cards.ItemTypeCharm, el.Opposing()))
		s.Assert().False(opposed.Compatible)
		s.Assert().Equal(0.10, opposed.Penalty)
	}
}

func (s *EngineTestSuite) TestEffectiveStatsNonCompatibleWeapon() {
	// Air is neither Fire nor Water, and a Guardian has no Bow synergy
	item := weapon("ZEPHYR BOW", cards.ItemTypeBow, cards.ElementAir, 5)

	stats, err := s.engine.ComputeEffectiveStats(s.creature, []cards.Item{item})
	s.Require().NoError(err)
	s.Assert().Equal(float64(s.creature.Power+5), stats.Power)
	s.Assert().Equal([]string{"ZEPHYR BOW: +5.0 Power"}, stats.Bonuses)
}

func (s *EngineTestSuite) TestEffectiveStats() {
	items := []cards.Item{
		weapon("BLAZING BLADE", cards.ItemTypeBlade, cards.ElementFire, 4),
		armor("STONE HEAVY", cards.ItemTypeHeavy, cards.ElementEarth, 5, 2),
		relic(cards.ItemTypeCrystal, cards.ElementFire),
		weapon("TIDAL STAFF", cards.ItemTypeStaff, cards.ElementWater, 6),
	}

	stats, err := s.engine.ComputeEffectiveStats(s.creature, items)
	s.Require().NoError(err)

	expected := &engine.EffectiveStats{
		Health:  25,
		Power:   10 + 4*1.25 + 6,
		Defense: 12 + 5*1.2,
		Agility: 3,
		Bonuses: []string{
			"BLAZING BLADE: +5.0 Power",
			"STONE HEAVY: +6.0 Defense, -2 Agility",
			"TIDAL STAFF: +6.0 Power",
		},
	}
	if diff := cmp.Diff(expected, stats); diff != "" {
		s.Fail("effective stats mismatch (-want +got)", diff)
	}
}

func (s *EngineTestSuite) TestEffectiveStatsRequiresCreature() {
	_, err := s.engine.ComputeEffectiveStats(nil, nil)
	s.Assert().Error(err)
}

func (s *EngineTestSuite) validSet() *cards.CardSet {
	return &cards.CardSet{
		Creature: s.creature,
		Items: []cards.Item{
			weapon("BLAZING BLADE", cards.ItemTypeBlade, cards.ElementFire, 4),
			armor("MOLTEN HEAVY", cards.ItemTypeHeavy, cards.ElementFire, 5, 2),
			relic(cards.ItemTypeCharm, cards.ElementAir),
			consumable(cards.ItemTypePotion, cards.ElementEarth),
		},
	}
}

func (s *EngineTestSuite) TestValidateCardSet() {
	testCases := []struct {
		name     string
		mutate   func(set *cards.CardSet)
		valid    bool
		messages []string
	}{
		{
			name:     "valid set",
			mutate:   func(_ *cards.CardSet) {},
			valid:    true,
			messages: []string{},
		},
		{
			name:     "missing creature",
			mutate:   func(set *cards.CardSet) { set.Creature = nil },
			messages: []string{engine.MsgMissingCreature},
		},
		{
			name: "missing creature and short item list report both",
			mutate: func(set *cards.CardSet) {
				set.Creature = nil
				set.Items = set.Items[:2]
			},
			messages: []string{engine.MsgMissingCreature, engine.MsgWrongItemCount},
		},
		{
			name: "duplicate item types",
			mutate: func(set *cards.CardSet) {
				set.Items[2] = weapon("EMBER BLADE", cards.ItemTypeBlade, cards.ElementFire, 3)
			},
			messages: []string{engine.MsgDuplicateItemTypes},
		},
		{
			name: "all weapons",
			mutate: func(set *cards.CardSet) {
				set.Items = []cards.Item{
					weapon("A", cards.ItemTypeBlade, cards.ElementFire, 1),
					weapon("B", cards.ItemTypeBow, cards.ElementFire, 1),
					weapon("C", cards.ItemTypeStaff, cards.ElementFire, 1),
					weapon("D", cards.ItemTypeShield, cards.ElementFire, 1),
				}
			},
			messages: []string{engine.MsgTooFewCategories, engine.MsgMissingArmor},
		},
		{
			name: "no weapon",
			mutate: func(set *cards.CardSet) {
				set.Items[0] = consumable(cards.ItemTypeTonic, cards.ElementFire)
			},
			messages: []string{engine.MsgMissingWeapon},
		},
		{
			name: "too few aligned items",
			mutate: func(set *cards.CardSet) {
				set.Items[1].Base().Element = cards.ElementWater
			},
			messages: []string{engine.MsgElementAlignment},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			set := s.validSet()
			tc.mutate(set)

			result := s.engine.ValidateCardSet(set)
			s.Assert().Equal(tc.valid, result.IsValid)
			s.Assert().Equal(tc.messages, result.ValidationMessages)
		})
	}
}

func (s *EngineTestSuite) TestValidateNilSet() {
	result := s.engine.ValidateCardSet(nil)
	s.Assert().False(result.IsValid)
	s.Assert().Equal([]string{engine.MsgMissingCreature, engine.MsgWrongItemCount}, result.ValidationMessages)
}

func (s *EngineTestSuite) TestFixtureSet() {
	set := testutils.CreateTestCardSet()

	result := s.engine.ValidateCardSet(set)
	s.Assert().True(result.IsValid)
	s.Assert().Empty(result.ValidationMessages)

	stats, err := s.engine.ComputeEffectiveStats(set.Creature, set.Items)
	s.Require().NoError(err)
	s.Assert().Equal(20, stats.Health)
	s.Assert().InDelta(17.0, stats.Power, 1e-9)
	s.Assert().InDelta(11.75, stats.Defense, 1e-9)
	s.Assert().Equal(9, stats.Agility)
	s.Assert().Len(stats.Bonuses, 2)
}
