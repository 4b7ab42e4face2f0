package errors

import (
	"fmt"
	"strings"
)

// ValidationBuilder accumulates field errors. Build returns nil when nothing
// was added, otherwise an InvalidArgument error listing the fields in the
// order they failed, with the per-field messages in meta validation_errors.
type ValidationBuilder struct {
	fields map[string][]string
	order  []string
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make(map[string][]string),
	}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	if _, seen := vb.fields[field]; !seen {
		vb.order = append(vb.order, field)
	}
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField adds an invalid field error
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Field(field, "is invalid: "+reason)
}

// Build returns the error if there are validation errors, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if len(vb.order) == 0 {
		return nil
	}

	parts := make([]string, len(vb.order))
	for i, field := range vb.order {
		parts[i] = field + ": " + strings.Join(vb.fields[field], ", ")
	}

	return InvalidArgument("validation failed: "+strings.Join(parts, "; ")).
		WithMeta("validation_errors", vb.fields)
}

// ValidateRequired checks if a string field is required
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange checks if a value is within a range
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Field(field, fmt.Sprintf("must be between %d and %d", minValue, maxValue))
	}
}

// ValidateEnum checks if a value is in a list of allowed values
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Field(field, "must be one of: "+strings.Join(allowed, ", "))
}

// ValidatePositiveDuration checks that a duration-like value is greater than zero
func ValidatePositiveDuration[T ~int64](field string, value T, vb *ValidationBuilder) {
	if value <= 0 {
		vb.Field(field, "must be greater than zero")
	}
}
