// Package textgen is the text generation capability used by the card generators.
// A Client turns a prompt into free-form model output; ExtractJSONObject pulls
// the structured payload out of it.
package textgen

//go:generate mockgen -destination=mock/mock_client.go -package=textgenmock github.com/KirkDiggler/card-forge/internal/clients/textgen Client

import (
	"context"
)

// Client generates free-form text from a prompt
type Client interface {
	// Generate returns the raw model output. Failures are CodeGeneration errors.
	Generate(ctx context.Context, prompt string) (string, error)
}
