package imagecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/card-forge/internal/redis"
)

const (
	// Key pattern: image_cache:{sha256(prompt)}
	imageKeyPrefix = "image_cache:"
	defaultTTL     = 24 * time.Hour

	errPromptEmpty = "prompt cannot be empty"
	errHandleEmpty = "image handle cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for cached images
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Put stores an image handle for a prompt
func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Prompt == "" {
		return nil, errors.InvalidArgument(errPromptEmpty)
	}
	if input.Handle == "" {
		return nil, errors.InvalidArgument(errHandleEmpty)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	now := r.clock.Now()
	hash := hashPrompt(input.Prompt)
	image := &CachedImage{
		PromptHash: hash,
		Handle:     input.Handle,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}

	imageJSON, err := json.Marshal(image)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal cached image")
	}

	if err := r.client.Set(ctx, imageKeyPrefix+hash, imageJSON, ttl).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store image in Redis")
	}

	return &PutOutput{Image: image}, nil
}

// Get returns the cached image for a prompt
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Prompt == "" {
		return nil, errors.InvalidArgument(errPromptEmpty)
	}

	key := imageKeyPrefix + hashPrompt(input.Prompt)
	imageJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("cached image not found")
		}
		return nil, errors.Wrap(err, "failed to get image from Redis")
	}

	var image CachedImage
	if err := json.Unmarshal([]byte(imageJSON), &image); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal cached image")
	}

	// Redis TTL and our clock can disagree; the stored expiry wins
	if r.clock.Now().After(image.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("cached image has expired")
	}

	return &GetOutput{Image: &image}, nil
}

// Delete evicts the image for a prompt
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Prompt == "" {
		return nil, errors.InvalidArgument(errPromptEmpty)
	}

	removed, err := r.client.Del(ctx, imageKeyPrefix+hashPrompt(input.Prompt)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete image from Redis")
	}

	return &DeleteOutput{Deleted: removed > 0}, nil
}

func hashPrompt(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
