package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/card-forge/internal/clients/imagegen"
	"github.com/KirkDiggler/card-forge/internal/clients/textgen"
	"github.com/KirkDiggler/card-forge/internal/config"
	"github.com/KirkDiggler/card-forge/internal/engine"
	"github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/orchestrators/cardset"
	"github.com/KirkDiggler/card-forge/internal/pkg/roller"
	"github.com/KirkDiggler/card-forge/internal/redis"
	imagecache "github.com/KirkDiggler/card-forge/internal/repositories/image_cache"
	"github.com/KirkDiggler/card-forge/internal/services/creature"
	"github.com/KirkDiggler/card-forge/internal/services/item"
)

// pipeline is a fully wired card set orchestrator and the resources it holds
type pipeline struct {
	orchestrator cardset.Service
	closers      []func() error
}

// Close releases every resource opened while wiring
func (p *pipeline) Close() {
	for _, closeFn := range p.closers {
		if err := closeFn(); err != nil {
			slog.Warn("Failed to release resource", "error", err)
		}
	}
}

// buildPipeline wires the generators described by cfg. When offline is set the
// remote generators are replaced by failing ones so every card is synthesized.
func buildPipeline(ctx context.Context, cfg *config.Config, offline bool) (*pipeline, error) {
	p := &pipeline{}
	dice := roller.New(cfg.Seed)

	textClient, err := buildTextGenerator(cfg, offline)
	if err != nil {
		return nil, err
	}

	imageClient, err := buildImageGenerator(ctx, cfg, offline, p)
	if err != nil {
		p.Close()
		return nil, err
	}

	creatureService, err := creature.NewService(&creature.Config{
		TextGenerator:  textClient,
		ImageGenerator: imageClient,
		Roller:         dice,
		FallbackDelay:  cfg.FallbackDelay,
	})
	if err != nil {
		p.Close()
		return nil, errors.Wrap(err, "failed to create creature service")
	}

	itemService, err := item.NewService(&item.Config{
		TextGenerator:  textClient,
		ImageGenerator: imageClient,
		Roller:         dice,
		FallbackDelay:  cfg.FallbackDelay,
	})
	if err != nil {
		p.Close()
		return nil, errors.Wrap(err, "failed to create item service")
	}

	rules, err := engine.New(&engine.Config{})
	if err != nil {
		p.Close()
		return nil, errors.Wrap(err, "failed to create engine")
	}

	p.orchestrator, err = cardset.NewOrchestrator(&cardset.Config{
		CreatureService: creatureService,
		ItemService:     itemService,
		Engine:          rules,
		Timeout:         cfg.GenerationTimeout,
	})
	if err != nil {
		p.Close()
		return nil, errors.Wrap(err, "failed to create card set orchestrator")
	}

	return p, nil
}

func buildTextGenerator(cfg *config.Config, offline bool) (textgen.Client, error) {
	if offline {
		return textgen.Offline{}, nil
	}
	if !cfg.TextGenerationEnabled() {
		slog.Warn("No Gemini API key configured, creatures and items will be synthesized locally")
		return textgen.Offline{}, nil
	}

	client, err := textgen.NewGemini(&textgen.GeminiConfig{
		APIKey:      cfg.GeminiAPIKey,
		Model:       cfg.GeminiModel,
		BaseURL:     cfg.GeminiBaseURL,
		HTTPTimeout: cfg.HTTPTimeout,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create text generator")
	}
	return client, nil
}

func buildImageGenerator(ctx context.Context, cfg *config.Config, offline bool, p *pipeline) (imagegen.Client, error) {
	if offline {
		return imagegen.Offline{}, nil
	}

	horde, err := imagegen.NewHorde(&imagegen.HordeConfig{
		APIKey:       cfg.HordeAPIKey,
		BaseURL:      cfg.HordeBaseURL,
		PollInterval: cfg.HordePollInterval,
		MaxPolls:     cfg.HordeMaxPolls,
		HTTPTimeout:  cfg.HTTPTimeout,
		Roller:       roller.New(cfg.Seed),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create image generator")
	}
	if !cfg.ImageCacheEnabled() {
		return horde, nil
	}

	redisClient, err := redis.Connect(ctx, cfg.RedisAddr, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect image cache")
	}
	p.closers = append(p.closers, redisClient.Close)

	repo, err := imagecache.NewRedisRepository(&imagecache.Config{Client: redisClient})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create image cache repository")
	}

	cached, err := imagegen.NewCached(&imagegen.CachedConfig{
		Client:     horde,
		Repository: repo,
		TTL:        cfg.ImageCacheTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cached image generator")
	}

	slog.Info("Image cache enabled", "redis_addr", cfg.RedisAddr, "ttl", cfg.ImageCacheTTL)
	return cached, nil
}
