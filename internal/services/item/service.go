// Package item generates the equipment cards of a set for a given creature
package item

//go:generate mockgen -destination=mock/mock_service.go -package=itemmock github.com/KirkDiggler/card-forge/internal/services/item Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/KirkDiggler/card-forge/internal/clients/imagegen"
	"github.com/KirkDiggler/card-forge/internal/clients/textgen"
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/pkg/clock"
	"github.com/KirkDiggler/card-forge/internal/pkg/idgen"
)

var tracer = otel.Tracer("card-forge/services/item")

// Service defines the interface for item generation
type Service interface {
	GenerateItem(ctx context.Context, input *GenerateItemInput) (*GenerateItemOutput, error)
}

// Config holds the dependencies for the item service
type Config struct {
	TextGenerator  textgen.Client
	ImageGenerator imagegen.Client

	// Roller drives every random choice of the synthesizer and the card numbers
	Roller dice.Roller

	// FallbackDelay is waited before synthesizing an item locally
	FallbackDelay time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.TextGenerator == nil {
		vb.RequiredField("TextGenerator")
	}
	if c.ImageGenerator == nil {
		vb.RequiredField("ImageGenerator")
	}
	if c.FallbackDelay < 0 {
		vb.InvalidField("FallbackDelay", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.Roller == nil {
		c.Roller = dice.DefaultRoller
	}
	return nil
}

type service struct {
	textGen       textgen.Client
	imageGen      imagegen.Client
	roller        dice.Roller
	fallbackDelay time.Duration
	cardIDs       map[cards.ItemCategory]idgen.Generator
}

var _ Service = (*service)(nil)

// NewService creates a new item service with the provided dependencies
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	cardIDs := make(map[cards.ItemCategory]idgen.Generator)
	for _, category := range cards.AllCategories() {
		cardIDs[category] = idgen.NewCardNumber(category.IDPrefix(), 3, 999, cfg.Roller)
	}

	return &service{
		textGen:       cfg.TextGenerator,
		imageGen:      cfg.ImageGenerator,
		roller:        cfg.Roller,
		fallbackDelay: cfg.FallbackDelay,
		cardIDs:       cardIDs,
	}, nil
}

// GenerateItem asks the text generator for an item of the requested category,
// falls back to the local synthesizer on any failure, then attaches artwork
func (s *service) GenerateItem(ctx context.Context, input *GenerateItemInput) (*GenerateItemOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "item.GenerateItem")
	defer span.End()

	usedFallback := false
	item, err := s.fromModel(ctx, input)
	if err != nil {
		slog.Warn("Item generation failed, using fallback",
			"category", input.Category,
			"creature_id", input.Creature.ID,
			"error", err)

		_ = clock.Sleep(ctx, s.fallbackDelay)

		item = s.synthesize(input.Category, input.Creature)
		usedFallback = true
	}

	base := item.Base()
	base.ID = s.cardIDs[input.Category].Generate()
	base.SetID = input.Creature.SetID
	base.ImageHandle = imagegen.HandleOrPlaceholder(ctx, s.imageGen,
		imagePrompt(item, input.UserDescription), base.Name+" "+string(base.Element))

	span.SetAttributes(
		attribute.String("item.category", string(input.Category)),
		attribute.String("item.type", string(base.ItemType)),
		attribute.Bool("item.fallback", usedFallback),
	)

	slog.Debug("Item generated",
		"item_id", base.ID,
		"category", input.Category,
		"item_type", base.ItemType,
		"element", base.Element,
		"fallback", usedFallback)

	return &GenerateItemOutput{
		Item:         item,
		UsedFallback: usedFallback,
	}, nil
}

func validateInput(input *GenerateItemInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if !input.Category.IsValid() {
		vb.InvalidField("category", "unknown item category "+string(input.Category))
	}
	if input.Creature == nil {
		vb.RequiredField("creature")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if len(input.Category.AllowedTypes()) == 0 {
		return errors.Internalf("category %s has no item types", input.Category)
	}
	return nil
}

func (s *service) fromModel(ctx context.Context, input *GenerateItemInput) (cards.Item, error) {
	raw, err := s.textGen.Generate(ctx, itemPrompt(input))
	if err != nil {
		return nil, err
	}

	var parsed modelItem
	if err := textgen.DecodeJSONObject(raw, &parsed); err != nil {
		return nil, err
	}

	return s.normalize(input.Category, input.Creature, &parsed)
}
