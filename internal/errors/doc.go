// Package errors provides the structured error type used across card-forge.
//
// Errors carry a Code, a user-facing message, an optional cause, and metadata.
// Codes map onto gRPC status codes and HTTP statuses so the transport layer
// never has to guess what a failure means.
//
// # Basic Usage
//
//	err := errors.InvalidArgument("description is required")
//	err := errors.Generationf("model returned no JSON object: %q", snippet)
//
// Wrapping keeps the original code:
//
//	if err := client.Generate(ctx, prompt); err != nil {
//	    return errors.Wrap(err, "failed to generate creature")
//	}
//
// # Card Generation Codes
//
// CodeGeneration and CodeImageGeneration mark recoverable provider failures.
// Generators log them and switch to their offline fallback. CodeItemTypeExhausted
// is the only generation failure that reaches callers of the card set service.
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("api_key", cfg.APIKey, vb)
//	errors.ValidateRange("max_polls", cfg.MaxPolls, 1, 600, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC Integration
//
//	return nil, errors.ToGRPCError(err)
//
// The domain code travels in the status details and is restored by FromGRPCError.
package errors
