package validator

import (
	"errors"
	"fmt"
)

// Kind classifies a single validation failure.
type Kind string

const (
	// KindRequired marks an empty value where a non-empty one is mandated.
	KindRequired Kind = "required"
	// KindType marks a value of the wrong structural type.
	KindType Kind = "type"
	// KindRange marks a numeric value or a size outside its bounds.
	KindRange Kind = "range"
	// KindChoice marks a value outside the allowed set.
	KindChoice Kind = "choice"
	// KindFormat marks a failed conversion or pattern match.
	KindFormat Kind = "format"
	// KindNested marks a failure carrying the error payload of a nested form or collection.
	KindNested Kind = "nested"
)

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrMaxDepthExceeded is returned when nested form validation goes deeper than the configured limit.
	ErrMaxDepthExceeded = errors.New("maximum nesting depth exceeded")

	// ErrNilFrame is returned when a nil frame is pushed onto a validation context.
	ErrNilFrame = errors.New("nil frame pushed onto validation context")
)

// ValidationError is the failure reported by one validator.
// A leaf failure carries a message; a structural failure carries the nested payload.
type ValidationError struct {
	Kind              Kind
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	Nested            *Payload
}

func (e *ValidationError) Error() string {
	if e.Nested != nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Nested.String())
	}
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// NewError builds a leaf error, rendering the message template registered for key.
func NewError(kind Kind, key string, values map[string]any) *ValidationError {
	return &ValidationError{
		Kind:              kind,
		Message:           Render(key, values),
		TranslationKey:    key,
		TranslationValues: values,
	}
}

// NestedError wraps a structural payload produced by a nested form or collection.
func NestedError(p *Payload) *ValidationError {
	return &ValidationError{
		Kind:           KindNested,
		TranslationKey: "validation.nested",
		Nested:         p,
	}
}

// ExtractTree extracts the error tree from an error returned by a form.
func ExtractTree(err error) Tree {
	if err == nil {
		return nil
	}

	var tree Tree
	if errors.As(err, &tree) {
		return tree
	}

	return nil
}

// IsValidationError reports whether err carries a data validation error tree.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var tree Tree
	return errors.As(err, &tree)
}
