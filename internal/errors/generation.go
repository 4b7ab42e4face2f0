package errors

// Generation creates an error for a failed or unparseable text generation.
// Generators recover from it locally by falling back to a synthesizer.
func Generation(message string) *Error {
	return New(CodeGeneration, message)
}

// Generationf creates a generation error with formatted message
func Generationf(format string, args ...any) *Error {
	return Newf(CodeGeneration, format, args...)
}

// ImageGeneration creates an error for a failed artwork request.
// Callers substitute a placeholder image instead of propagating it.
func ImageGeneration(message string) *Error {
	return New(CodeImageGeneration, message)
}

// ImageGenerationf creates an image generation error with formatted message
func ImageGenerationf(format string, args ...any) *Error {
	return Newf(CodeImageGeneration, format, args...)
}

// ItemTypeExhausted creates an error for a category with no unused item type left.
// This is the one generation failure the card set orchestrator surfaces.
func ItemTypeExhausted(message string) *Error {
	return New(CodeItemTypeExhausted, message)
}

// ItemTypeExhaustedf creates an item type exhausted error with formatted message
func ItemTypeExhaustedf(format string, args ...any) *Error {
	return Newf(CodeItemTypeExhausted, format, args...)
}

// IsGeneration checks if an error is a text generation error
func IsGeneration(err error) bool {
	return GetCode(err) == CodeGeneration
}

// IsImageGeneration checks if an error is an image generation error
func IsImageGeneration(err error) bool {
	return GetCode(err) == CodeImageGeneration
}

// IsItemTypeExhausted checks if an error is an item type exhausted error
func IsItemTypeExhausted(err error) bool {
	return GetCode(err) == CodeItemTypeExhausted
}
