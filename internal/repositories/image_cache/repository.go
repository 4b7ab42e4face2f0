// Package imagecache stores generated artwork handles keyed by prompt so a
// repeated prompt does not queue another image generation
package imagecache

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=imagecachemock github.com/KirkDiggler/card-forge/internal/repositories/image_cache Repository

// CachedImage is a stored artwork result
type CachedImage struct {
	// Digest of the prompt the image was generated from
	PromptHash string

	// Image handle, a URL or data URL
	Handle string

	// When the image was stored
	CreatedAt time.Time

	// When the entry stops being served
	ExpiresAt time.Time
}

// PutInput contains parameters for storing an image
type PutInput struct {
	Prompt string
	Handle string
	TTL    time.Duration // How long the image should be served
}

// PutOutput contains the stored image
type PutOutput struct {
	Image *CachedImage
}

// GetInput contains parameters for looking up an image
type GetInput struct {
	Prompt string
}

// GetOutput contains the cached image
type GetOutput struct {
	Image *CachedImage
}

// DeleteInput contains parameters for evicting an image
type DeleteInput struct {
	Prompt string
}

// DeleteOutput reports whether an entry was removed
type DeleteOutput struct {
	Deleted bool
}

// Repository defines the storage operations for cached images
type Repository interface {
	// Put stores an image handle for a prompt with the given TTL
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get returns the image for a prompt, or a NotFound error
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete evicts the image for a prompt
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
