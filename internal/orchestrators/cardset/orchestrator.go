// Package cardset implements the card set orchestrator: one creature, four
// items generated concurrently, then validation and analysis of the set
package cardset

//go:generate mockgen -destination=mock/mock_service.go -package=cardsetmock github.com/KirkDiggler/card-forge/internal/orchestrators/cardset Service

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/card-forge/internal/engine"
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/pkg/idgen"
	"github.com/KirkDiggler/card-forge/internal/services/creature"
	"github.com/KirkDiggler/card-forge/internal/services/item"
)

// DefaultMaxItemAttempts is how often an item is regenerated when its type is taken
const DefaultMaxItemAttempts = 3

var tracer = otel.Tracer("card-forge/orchestrators/cardset")

// Service defines the interface for card set generation
type Service interface {
	GenerateCardSet(ctx context.Context, input *GenerateCardSetInput) (*GenerateCardSetOutput, error)
}

// Config holds the dependencies for the card set orchestrator
type Config struct {
	CreatureService creature.Service
	ItemService     item.Service
	Engine          engine.Engine
	IDGenerator     idgen.Generator

	// MaxItemAttempts before a colliding item type is overridden (optional, defaults to 3)
	MaxItemAttempts int

	// Timeout for a whole generation (optional, none when zero)
	Timeout time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CreatureService == nil {
		vb.RequiredField("CreatureService")
	}
	if c.ItemService == nil {
		vb.RequiredField("ItemService")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.MaxItemAttempts < 0 {
		vb.InvalidField("MaxItemAttempts", "must not be negative")
	}
	if c.Timeout < 0 {
		vb.InvalidField("Timeout", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.IDGenerator == nil {
		c.IDGenerator = idgen.NewUUID("gen")
	}
	if c.MaxItemAttempts == 0 {
		c.MaxItemAttempts = DefaultMaxItemAttempts
	}
	return nil
}

type orchestrator struct {
	creatureService creature.Service
	itemService     item.Service
	engine          engine.Engine
	idGen           idgen.Generator
	maxAttempts     int
	timeout         time.Duration
}

var _ Service = (*orchestrator)(nil)

// NewOrchestrator creates a new card set orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		creatureService: cfg.CreatureService,
		itemService:     cfg.ItemService,
		engine:          cfg.Engine,
		idGen:           cfg.IDGenerator,
		maxAttempts:     cfg.MaxItemAttempts,
		timeout:         cfg.Timeout,
	}, nil
}

// GenerateCardSet generates the creature, then its four items concurrently,
// and validates the assembled set. An invalid set is still returned.
func (o *orchestrator) GenerateCardSet(ctx context.Context, input *GenerateCardSetInput) (*GenerateCardSetOutput, error) {
	if input == nil || strings.TrimSpace(input.Description) == "" {
		return nil, errors.InvalidArgument("description is required")
	}

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	generationID := o.idGen.Generate()
	start := time.Now()

	ctx, span := tracer.Start(ctx, "cardset.GenerateCardSet")
	defer span.End()
	span.SetAttributes(attribute.String("generation.id", generationID))

	output, err := o.generate(ctx, generationID, input.Description)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "card set generation failed")
		slog.Error("Card set generation failed",
			"generation_id", generationID,
			"error", err)
		return nil, err
	}

	refs := entityRefs(output.CardSet)
	span.SetAttributes(
		attribute.Bool("cardset.valid", output.CardSet.IsValid),
		attribute.Int("cardset.fallback_cards", output.FallbackCards),
		attribute.StringSlice("cardset.cards", refs),
	)

	slog.Info("Card set generated",
		"generation_id", generationID,
		"cards", refs,
		"creature", output.CardSet.Creature.Name,
		"element", output.CardSet.Creature.Element,
		"class", output.CardSet.Creature.Class,
		"valid", output.CardSet.IsValid,
		"validation_messages", output.CardSet.ValidationMessages,
		"fallback_cards", output.FallbackCards,
		"duration_ms", time.Since(start).Milliseconds())

	return output, nil
}

func (o *orchestrator) generate(ctx context.Context, generationID, description string) (*GenerateCardSetOutput, error) {
	creatureOut, err := o.creatureService.GenerateCreature(ctx, &creature.GenerateCreatureInput{
		Description: description,
	})
	if err != nil {
		return nil, asGenerationError(err, "failed to generate creature")
	}

	c := creatureOut.Creature
	c.SourceDescription = description

	fallbacks := 0
	if creatureOut.UsedFallback {
		fallbacks++
	}

	categories := selectCategories(c.Class)
	items, itemFallbacks, err := o.generateItems(ctx, c, categories, description)
	if err != nil {
		return nil, err
	}
	fallbacks += itemFallbacks

	set := &cards.CardSet{
		Creature: c,
		Items:    items,
	}
	verdict := o.engine.ValidateCardSet(set)
	set.IsValid = verdict.IsValid
	set.ValidationMessages = verdict.ValidationMessages

	stats, err := o.engine.ComputeEffectiveStats(c, items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute effective stats")
	}

	compatibility := make([]*engine.CompatibilityResult, len(items))
	for i, it := range items {
		compatibility[i] = o.engine.CheckCompatibility(c, it)
	}

	return &GenerateCardSetOutput{
		GenerationID:   generationID,
		CardSet:        set,
		EffectiveStats: stats,
		Compatibility:  compatibility,
		FallbackCards:  fallbacks,
	}, nil
}

// generateItems runs one generation per category concurrently. Items keep
// category order; item types are claimed in completion order.
func (o *orchestrator) generateItems(
	ctx context.Context,
	c *cards.Creature,
	categories []cards.ItemCategory,
	description string,
) ([]cards.Item, int, error) {
	used := newUsedTypes()
	items := make([]cards.Item, len(categories))
	var fallbacks atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	for i, category := range categories {
		g.Go(func() error {
			it, usedFallback, err := o.generateUniqueItem(gctx, used, &item.GenerateItemInput{
				ItemDescription: itemBrief(category, c),
				Category:        category,
				Creature:        c,
				UserDescription: description,
			})
			if err != nil {
				return err
			}
			if usedFallback {
				fallbacks.Add(1)
			}
			items[i] = it
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return items, int(fallbacks.Load()), nil
}

// generateUniqueItem regenerates an item while its type is already claimed.
// After the last attempt the item is given the first unused type of its
// category, and only when none is left does the set fail.
func (o *orchestrator) generateUniqueItem(
	ctx context.Context,
	used *usedTypes,
	input *item.GenerateItemInput,
) (cards.Item, bool, error) {
	var last cards.Item
	usedFallback := false

	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		out, err := o.itemService.GenerateItem(ctx, input)
		if err != nil {
			return nil, false, asGenerationError(err, "failed to generate "+strings.ToLower(string(input.Category))+" item")
		}

		last = out.Item
		usedFallback = out.UsedFallback

		itemType := last.Base().ItemType
		if used.claim(itemType) {
			return last, usedFallback, nil
		}

		slog.Debug("Item type already claimed, regenerating",
			"category", input.Category,
			"item_type", itemType,
			"attempt", attempt)
	}

	replacement, ok := used.claimFirstUnused(input.Category.AllowedTypes())
	if !ok {
		return nil, false, errors.ItemTypeExhaustedf("no unused %s item type left", input.Category).
			WithMeta("category", string(input.Category))
	}

	base := last.Base()
	slog.Info("Overriding colliding item type",
		"category", input.Category,
		"item_type", base.ItemType,
		"replacement", replacement)
	base.ItemType = replacement

	return last, usedFallback, nil
}

// asGenerationError keeps exhaustion and cancellation codes and reports
// anything else as a generation failure
func asGenerationError(err error, message string) error {
	switch errors.GetCode(err) {
	case errors.CodeItemTypeExhausted, errors.CodeCanceled, errors.CodeDeadlineExceeded:
		return errors.Wrap(err, message)
	default:
		return errors.WrapWithCode(err, errors.CodeGeneration, message)
	}
}

// entityRefs lists every card of the set as "type:id", creature first
func entityRefs(set *cards.CardSet) []string {
	entities := make([]core.Entity, 0, len(set.Items)+1)
	if set.Creature != nil {
		entities = append(entities, set.Creature)
	}
	for _, it := range set.Items {
		if it != nil {
			entities = append(entities, it)
		}
	}

	refs := make([]string, 0, len(entities))
	for _, e := range entities {
		refs = append(refs, e.GetType()+":"+e.GetID())
	}
	return refs
}
