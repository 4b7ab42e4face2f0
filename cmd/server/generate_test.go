package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/card-forge/internal/config"
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/errors"
)

func offlineConfig() *config.Config {
	return &config.Config{
		Seed:              7,
		GenerationTimeout: time.Minute,
	}
}

func TestGenerate_Offline(t *testing.T) {
	p, err := buildPipeline(context.Background(), offlineConfig(), true)
	require.NoError(t, err)
	defer p.Close()

	resp, err := generate(context.Background(), p.orchestrator, "fire dragon")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.GenerationID)
	require.NotNil(t, resp.CardSet)
	require.NotNil(t, resp.CardSet.Creature)
	assert.Equal(t, "fire dragon", resp.CardSet.Creature.SourceDescription)
	assert.Len(t, resp.CardSet.Items, cards.SetSize)
	assert.Len(t, resp.Compatibility, cards.SetSize)
	assert.NotNil(t, resp.EffectiveStats)

	// every card falls back to the generated placeholder art
	assert.Contains(t, resp.CardSet.Creature.ImageHandle, "data:image/png;base64,")
	for _, it := range resp.CardSet.Items {
		assert.Contains(t, it.Base().ImageHandle, "data:image/png;base64,")
	}
}

func TestGenerate_RequiresDescription(t *testing.T) {
	p, err := buildPipeline(context.Background(), offlineConfig(), true)
	require.NoError(t, err)
	defer p.Close()

	_, err = generate(context.Background(), p.orchestrator, "   ")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestBuildPipeline_WithoutGeminiKeyStillBuilds(t *testing.T) {
	cfg := offlineConfig()
	cfg.HordePollInterval = time.Second
	cfg.HordeMaxPolls = 1
	cfg.HTTPTimeout = time.Second

	p, err := buildPipeline(context.Background(), cfg, false)
	require.NoError(t, err)
	defer p.Close()

	assert.NotNil(t, p.orchestrator)
	assert.Empty(t, p.closers)
}

func TestBuildPipeline_UnreachableCacheFails(t *testing.T) {
	cfg := offlineConfig()
	cfg.RedisAddr = "127.0.0.1:1"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := buildPipeline(ctx, cfg, false)
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}
