package imagegen

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/card-forge/internal/errors"
	imagecache "github.com/KirkDiggler/card-forge/internal/repositories/image_cache"
)

// CachedConfig configures a Client that reuses artwork for repeated prompts
type CachedConfig struct {
	// Client that generates on a cache miss (required)
	Client Client
	// Repository storing handles by prompt (required)
	Repository imagecache.Repository
	// TTL for stored handles (optional, repository default when zero)
	TTL time.Duration
}

// Validate validates the config
func (cfg *CachedConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("client")
	}
	if cfg.Repository == nil {
		vb.RequiredField("repository")
	}
	if cfg.TTL < 0 {
		vb.InvalidField("ttl", "must not be negative")
	}
	return vb.Build()
}

type cachedClient struct {
	next Client
	repo imagecache.Repository
	ttl  time.Duration
}

var _ Client = (*cachedClient)(nil)

// NewCached wraps a Client with the image cache. Cache failures are logged
// and never fail a generation.
func NewCached(cfg *CachedConfig) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cachedClient{
		next: cfg.Client,
		repo: cfg.Repository,
		ttl:  cfg.TTL,
	}, nil
}

// Generate returns the cached handle for prompt or generates and stores one
func (c *cachedClient) Generate(ctx context.Context, prompt string) (string, error) {
	got, err := c.repo.Get(ctx, imagecache.GetInput{Prompt: prompt})
	switch {
	case err == nil:
		slog.Debug("Image cache hit", "prompt_hash", got.Image.PromptHash)
		return got.Image.Handle, nil
	case !errors.IsNotFound(err):
		slog.Warn("Image cache lookup failed", "error", err)
	}

	handle, err := c.next.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	if _, err := c.repo.Put(ctx, imagecache.PutInput{
		Prompt: prompt,
		Handle: handle,
		TTL:    c.ttl,
	}); err != nil {
		slog.Warn("Failed to cache generated image", "error", err)
	}

	return handle, nil
}
