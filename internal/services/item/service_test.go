package item

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/card-forge/internal/clients/imagegen"
	imagegenmock "github.com/KirkDiggler/card-forge/internal/clients/imagegen/mock"
	textgenmock "github.com/KirkDiggler/card-forge/internal/clients/textgen/mock"
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/pkg/roller"
)

type ServiceTestSuite struct {
	suite.Suite

	ctrl         *gomock.Controller
	mockTextGen  *textgenmock.MockClient
	mockImageGen *imagegenmock.MockClient
	service      Service
	ctx          context.Context
	creature     *cards.Creature
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTextGen = textgenmock.NewMockClient(s.ctrl)
	s.mockImageGen = imagegenmock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	svc, err := NewService(&Config{
		TextGenerator:  s.mockTextGen,
		ImageGenerator: s.mockImageGen,
		Roller:         roller.NewSeeded(99),
	})
	s.Require().NoError(err)
	s.service = svc

	s.creature = &cards.Creature{
		ID:      "CRT-001",
		Name:    "ANCIENT FIRE TITAN",
		Element: cards.ElementFire,
		Class:   cards.ClassHunter,
		Health:  18,
		Power:   16,
		Defense: 5,
		Agility: 12,
		SetID:   "SET-07",
	}
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceTestSuite) input(category cards.ItemCategory) *GenerateItemInput {
	return &GenerateItemInput{
		ItemDescription: "a powerful Fire weapon for a Hunter",
		Category:        category,
		Creature:        s.creature,
		UserDescription: "fire dragon with a molten sword",
	}
}

func (s *ServiceTestSuite) TestGenerateItem_WeaponFromModel() {
	s.mockTextGen.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			s.Contains(prompt, "Create a weapon item card to equip on a Fire Hunter creature.")
			s.Contains(prompt, `"itemType": one of ["Blade","Staff","Bow","Shield"]`)
			s.Contains(prompt, "Power: 16")
			s.Contains(prompt, `"powerBonus": [number between 1-10]`)
			s.NotContains(prompt, "defenseBonus")
			s.Contains(prompt, "Air is the complementary element of Fire")
			return `{
				"name": "Cinderfang",
				"itemType": "bow",
				"element": "Fire",
				"rarity": 4,
				"actionCost": 1,
				"effectText": "Arrows ignite on impact, scorching armor.",
				"flavorText": "Every string hums with heat.",
				"powerBonus": 7,
				"secondaryEffect": "Burns for 2 rounds.",
				"compatibility": ["Fire", "Hunter"]
			}`, nil
		})
	s.mockImageGen.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			s.Contains(prompt, "depicting a Fire bow type weapon: CINDERFANG")
			s.Contains(prompt, "red-orange glow")
			s.Contains(prompt, "detailed weapon design")
			s.Contains(prompt, "Themes: arrows, ignite, impact, scorching, armor.")
			s.NotContains(prompt, "dragon")
			return "https://cdn/cinderfang.webp", nil
		})

	out, err := s.service.GenerateItem(s.ctx, s.input(cards.CategoryWeapon))
	s.Require().NoError(err)
	s.False(out.UsedFallback)

	weapon, ok := out.Item.(*cards.Weapon)
	s.Require().True(ok, "expected a weapon, got %T", out.Item)
	s.Equal("CINDERFANG", weapon.Name)
	s.Equal(cards.ItemTypeBow, weapon.ItemType)
	s.Equal(cards.ElementFire, weapon.Element)
	s.Equal(4, weapon.Rarity)
	s.Equal(1, weapon.ActionCost)
	s.Equal(7, weapon.PowerBonus)
	s.Equal("Burns for 2 rounds.", weapon.SecondaryEffect)
	s.Equal([]string{"Fire", "Hunter"}, weapon.CompatibilityTags)
	s.Equal("SET-07", weapon.SetID)
	s.Regexp(regexp.MustCompile(`^WEA-\d{3}$`), weapon.ID)
	s.Equal("https://cdn/cinderfang.webp", weapon.ImageHandle)
}

func (s *ServiceTestSuite) TestGenerateItem_NormalizesModelValues() {
	s.mockTextGen.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(`{"itemType":"Blade","element":"Lava","defenseBonus":40,"agilityPenalty":"x","actionCost":9}`, nil)
	s.mockImageGen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("https://cdn/armor.webp", nil)

	out, err := s.service.GenerateItem(s.ctx, s.input(cards.CategoryArmor))
	s.Require().NoError(err)
	s.False(out.UsedFallback)

	armor, ok := out.Item.(*cards.Armor)
	s.Require().True(ok)
	s.True(cards.CategoryArmor.Allows(armor.ItemType), "Blade is not armor, got %s", armor.ItemType)
	s.Equal(cards.ElementFire, armor.Element)
	s.Equal("FIRE ARMOR", armor.Name)
	s.Equal(3, armor.Rarity)
	s.Equal(3, armor.ActionCost)
	s.Equal(8, armor.DefenseBonus)
	s.GreaterOrEqual(armor.AgilityPenalty, 0)
	s.LessOrEqual(armor.AgilityPenalty, 1)
	s.Equal([]string{"Fire", "Hunter"}, armor.CompatibilityTags)
	s.Equal("This item enhances the wielder's Fire abilities.", armor.EffectText)
	s.Equal(`"A perfect match for a Hunter."`, armor.FlavorText)
	s.Regexp(regexp.MustCompile(`^ARM-\d{3}$`), armor.ID)
}

func (s *ServiceTestSuite) TestGenerateItem_ConsumableDefaults() {
	s.mockTextGen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(`{"name":"ember draught"}`, nil)
	s.mockImageGen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("https://cdn/draught.webp", nil)

	out, err := s.service.GenerateItem(s.ctx, s.input(cards.CategoryConsumable))
	s.Require().NoError(err)

	consumable, ok := out.Item.(*cards.Consumable)
	s.Require().True(ok)
	s.Equal("EMBER DRAUGHT", consumable.Name)
	s.Equal(1, consumable.ActionCost)
	s.Equal(0, consumable.Duration)
	s.Equal("Restores health and boosts Fire power.", consumable.UseEffect)
	s.Regexp(regexp.MustCompile(`^CON-\d{3}$`), consumable.ID)
}

func (s *ServiceTestSuite) TestGenerateItem_FallbackOnModelFailure() {
	s.mockTextGen.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return("", errors.Generation("gemini request status 429"))
	s.mockImageGen.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return("", errors.ImageGeneration("horde faulted"))

	out, err := s.service.GenerateItem(s.ctx, s.input(cards.CategoryRelic))
	s.Require().NoError(err)
	s.True(out.UsedFallback)

	relic, ok := out.Item.(*cards.Relic)
	s.Require().True(ok)
	s.True(cards.CategoryRelic.Allows(relic.ItemType))
	s.Equal("SET-07", relic.SetID)
	s.Regexp(regexp.MustCompile(`^REL-\d{3}$`), relic.ID)
	s.Equal(imagegen.Placeholder(relic.Name+" "+string(relic.Element)), relic.ImageHandle)
}

func (s *ServiceTestSuite) TestGenerateItem_InvalidInput() {
	testCases := []struct {
		name  string
		input *GenerateItemInput
	}{
		{name: "nil input"},
		{name: "unknown category", input: &GenerateItemInput{Category: "Trinket", Creature: s.creature}},
		{name: "missing creature", input: &GenerateItemInput{Category: cards.CategoryWeapon}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.GenerateItem(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func TestFallbackItemsStayInBands(t *testing.T) {
	creature := &cards.Creature{Element: cards.ElementWater, Class: cards.ClassGuardian, SetID: "SET-11"}
	sawOtherElement := false

	for seed := uint64(1); seed <= 300; seed++ {
		svc := &service{roller: roller.NewSeeded(seed)}

		for _, category := range cards.AllCategories() {
			item := svc.synthesize(category, creature)
			base := item.Base()

			if item.Category() != category {
				t.Fatalf("seed %d: category %s, want %s", seed, item.Category(), category)
			}
			if !category.Allows(base.ItemType) {
				t.Errorf("seed %d: %s not allowed in %s", seed, base.ItemType, category)
			}
			if base.Element != creature.Element {
				sawOtherElement = true
			}
			if base.Rarity < 2 || base.Rarity > 4 || base.RarityText != cards.RarityText(base.Rarity) {
				t.Errorf("seed %d: rarity %d %q", seed, base.Rarity, base.RarityText)
			}
			wantCost := 0
			if category == cards.CategoryConsumable {
				wantCost = 1
			}
			if base.ActionCost != wantCost {
				t.Errorf("seed %d %s: action cost %d", seed, category, base.ActionCost)
			}
			if len(base.CompatibilityTags) != 2 || base.CompatibilityTags[1] != "Guardian" {
				t.Errorf("seed %d: tags %v", seed, base.CompatibilityTags)
			}

			switch v := item.(type) {
			case *cards.Weapon:
				if v.PowerBonus < 3 || v.PowerBonus > 7 {
					t.Errorf("seed %d: power bonus %d", seed, v.PowerBonus)
				}
			case *cards.Armor:
				maxPenalty := 1
				if v.ItemType == cards.ItemTypeHeavy {
					maxPenalty = 2
				}
				if v.DefenseBonus < 2 || v.DefenseBonus > 5 || v.AgilityPenalty < 0 || v.AgilityPenalty > maxPenalty {
					t.Errorf("seed %d: armor %d/%d (%s)", seed, v.DefenseBonus, v.AgilityPenalty, v.ItemType)
				}
			case *cards.Relic:
				if v.PassiveEffect == "" || v.ActivatedEffect == "" {
					t.Errorf("seed %d: empty relic effects", seed)
				}
			case *cards.Consumable:
				if v.Duration < 0 || v.Duration > 2 || v.UseEffect == "" {
					t.Errorf("seed %d: consumable %d %q", seed, v.Duration, v.UseEffect)
				}
			}
		}
	}

	if !sawOtherElement {
		t.Error("expected some synthesized items to take a different element")
	}
}

func TestFallbackElementIsValid(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		svc := &service{roller: roller.NewSeeded(seed)}
		got := svc.fallbackElement(cards.ElementShadow)
		if !got.IsValid() {
			t.Fatalf("seed %d: invalid element %q", seed, got)
		}
	}
}
