// Package imagegen is the artwork capability used by the card generators.
//
// A Client returns an opaque image handle: an https URL or a data URL.
// Callers never propagate its failures; they substitute Placeholder(seed).
package imagegen

//go:generate mockgen -destination=mock/mock_client.go -package=imagegenmock github.com/KirkDiggler/card-forge/internal/clients/imagegen Client

import (
	"context"
)

// Client generates artwork for a prompt
type Client interface {
	// Generate returns an image handle. Failures are CodeImageGeneration errors.
	Generate(ctx context.Context, prompt string) (string, error)
}
