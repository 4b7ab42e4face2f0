package imagegen

import (
	"context"

	"github.com/KirkDiggler/card-forge/internal/errors"
)

// Offline is a Client that always fails, so every card gets a placeholder
type Offline struct{}

var _ Client = Offline{}

// Generate always returns an image generation error
func (Offline) Generate(_ context.Context, _ string) (string, error) {
	return "", errors.ImageGeneration("image generation is offline")
}
