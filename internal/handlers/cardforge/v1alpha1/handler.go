// Package v1alpha1 handles the card set grpc service interface
package v1alpha1

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/orchestrators/cardset"
)

// MsgGenerationFailed is the only failure message users see
const MsgGenerationFailed = "could not generate a card set, please retry"

// HandlerConfig holds dependencies for the card set handler
type HandlerConfig struct {
	CardSetService cardset.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.CardSetService == nil {
		return errors.InvalidArgument("card set service is required")
	}
	return nil
}

// Handler implements the card set gRPC service
type Handler struct {
	cardSetService cardset.Service
}

var _ CardSetServiceServer = (*Handler)(nil)

// NewHandler creates a new card set handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		cardSetService: cfg.CardSetService,
	}, nil
}

// GenerateCardSet generates a creature and its four items from a description.
// Generation failures are logged and reported with a generic retry message.
func (h *Handler) GenerateCardSet(
	ctx context.Context,
	req *structpb.Struct,
) (*structpb.Struct, error) {
	description := req.GetFields()[FieldDescription].GetStringValue()
	if strings.TrimSpace(description) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("description is required"))
	}

	out, err := h.cardSetService.GenerateCardSet(ctx, &cardset.GenerateCardSetInput{
		Description: description,
	})
	if err != nil {
		if errors.IsInvalidArgument(err) {
			return nil, errors.ToGRPCError(err)
		}
		slog.Error("Card set generation failed",
			"error", err,
			"code", errors.GetCode(err),
			"meta", errors.GetMeta(err))
		return nil, errors.ToGRPCError(errors.Unavailable(MsgGenerationFailed))
	}

	resp, err := EncodeGenerateCardSetResponse(&GenerateCardSetResponse{
		GenerationID:   out.GenerationID,
		CardSet:        out.CardSet,
		EffectiveStats: out.EffectiveStats,
		Compatibility:  out.Compatibility,
	})
	if err != nil {
		slog.Error("Failed to encode card set", "generation_id", out.GenerationID, "error", err)
		return nil, errors.ToGRPCError(errors.Unavailable(MsgGenerationFailed))
	}
	return resp, nil
}
