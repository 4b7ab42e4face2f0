package textgen

import (
	"context"

	"github.com/KirkDiggler/card-forge/internal/errors"
)

// Offline is a Client that always fails, forcing callers onto their fallback path
type Offline struct{}

var _ Client = Offline{}

// Generate always returns a generation error
func (Offline) Generate(_ context.Context, _ string) (string, error) {
	return "", errors.Generation("text generation is offline")
}
