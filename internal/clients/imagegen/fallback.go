package imagegen

import (
	"context"
	"log/slog"
)

// HandleOrPlaceholder generates artwork for prompt and substitutes
// Placeholder(seed) when generation fails. It never returns an empty handle.
func HandleOrPlaceholder(ctx context.Context, client Client, prompt, seed string) string {
	handle, err := client.Generate(ctx, prompt)
	if err != nil || handle == "" {
		slog.Warn("Image generation failed, using placeholder",
			"seed", seed,
			"error", err)
		return Placeholder(seed)
	}
	return handle
}
