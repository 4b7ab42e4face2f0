// Package creature generates the creature card of a set from a user description.
// Text generation failures are recovered locally by a synthesizer, and artwork
// failures by a placeholder, so generation only fails on invalid input.
package creature

//go:generate mockgen -destination=mock/mock_service.go -package=creaturemock github.com/KirkDiggler/card-forge/internal/services/creature Service

import (
	"context"
	"log/slog"
	"strings"
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

var tracer = otel.Tracer("card-forge/services/creature")

// Service defines the interface for creature generation
type Service interface {
	GenerateCreature(ctx context.Context, input *GenerateCreatureInput) (*GenerateCreatureOutput, error)
}

// Config holds the dependencies for the creature service
type Config struct {
	TextGenerator  textgen.Client
	ImageGenerator imagegen.Client

	// Roller drives every random choice of the synthesizer and the card numbers
	Roller dice.Roller

	// FallbackDelay is waited before synthesizing a creature locally
	FallbackDelay time.Duration

	// Card number generators (optional, CRT-### and SET-## by default)
	CardIDGenerator idgen.Generator
	SetIDGenerator  idgen.Generator
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
	if c.CardIDGenerator == nil {
		c.CardIDGenerator = idgen.NewCardNumber("CRT", 3, 999, c.Roller)
	}
	if c.SetIDGenerator == nil {
		c.SetIDGenerator = idgen.NewCardNumber("SET", 2, 99, c.Roller)
	}
	return nil
}

type service struct {
	textGen       textgen.Client
	imageGen      imagegen.Client
	roller        dice.Roller
	fallbackDelay time.Duration
	cardIDs       idgen.Generator
	setIDs        idgen.Generator
}

var _ Service = (*service)(nil)

// NewService creates a new creature service with the provided dependencies
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		textGen:       cfg.TextGenerator,
		imageGen:      cfg.ImageGenerator,
		roller:        cfg.Roller,
		fallbackDelay: cfg.FallbackDelay,
		cardIDs:       cfg.CardIDGenerator,
		setIDs:        cfg.SetIDGenerator,
	}, nil
}

// GenerateCreature asks the text generator for a creature, falls back to the
// local synthesizer on any failure, then attaches artwork
func (s *service) GenerateCreature(ctx context.Context, input *GenerateCreatureInput) (*GenerateCreatureOutput, error) {
	if input == nil || strings.TrimSpace(input.Description) == "" {
		return nil, errors.InvalidArgument("description is required")
	}

	ctx, span := tracer.Start(ctx, "creature.GenerateCreature")
	defer span.End()

	description := input.Description
	usedFallback := false

	creature, err := s.fromModel(ctx, description)
	if err != nil {
		slog.Warn("Creature generation failed, using fallback",
			"description", description,
			"error", err)

		// a canceled wait only shortens the simulated latency
		_ = clock.Sleep(ctx, s.fallbackDelay)

		creature = s.synthesize(description)
		usedFallback = true
	}

	creature.ID = s.cardIDs.Generate()
	creature.SetID = s.setIDs.Generate()
	creature.SourceDescription = description
	creature.ImageHandle = imagegen.HandleOrPlaceholder(ctx, s.imageGen,
		imagePrompt(creature), creature.Name+" "+string(creature.Element))

	span.SetAttributes(
		attribute.String("creature.element", string(creature.Element)),
		attribute.String("creature.class", string(creature.Class)),
		attribute.Bool("creature.fallback", usedFallback),
	)

	slog.Info("Creature generated",
		"creature_id", creature.ID,
		"name", creature.Name,
		"element", creature.Element,
		"class", creature.Class,
		"fallback", usedFallback)

	return &GenerateCreatureOutput{
		Creature:     creature,
		UsedFallback: usedFallback,
	}, nil
}

func (s *service) fromModel(ctx context.Context, description string) (*cards.Creature, error) {
	raw, err := s.textGen.Generate(ctx, creaturePrompt(description))
	if err != nil {
		return nil, err
	}

	var parsed modelCreature
	if err := textgen.DecodeJSONObject(raw, &parsed); err != nil {
		return nil, err
	}

	return s.normalize(description, &parsed), nil
}
