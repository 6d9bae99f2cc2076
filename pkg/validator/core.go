package validator

import (
	"reflect"
)

// Validator checks one value. It returns nil on success.
// Validators are stateless apart from their construction parameters.
type Validator interface {
	Validate(vc *Context, value any) *ValidationError
}

// Func adapts a plain function to the Validator interface.
type Func func(vc *Context, value any) *ValidationError

func (f Func) Validate(vc *Context, value any) *ValidationError {
	return f(vc, value)
}

// Rule represents a single atomic validation rule: a check over the value
// and the error reported when the check fails.
type Rule struct {
	Check func(value any) bool
	Error ValidationError
}

func (r Rule) Validate(_ *Context, value any) *ValidationError {
	if r.Check(value) {
		return nil
	}
	err := r.Error
	return &err
}

// WithMessage returns a copy of the rule reporting message instead of the rendered template.
// The message also becomes the translation key, so catalogues can translate it by its text.
func (r Rule) WithMessage(message string) Rule {
	if message != "" {
		r.Error.Message = message
		r.Error.TranslationKey = message
		r.Error.TranslationValues = nil
	}
	return r
}

// present wraps a content check so that empty values pass; presence is Required's concern.
func present(check func(value any) bool) func(value any) bool {
	return func(value any) bool {
		return IsEmpty(value) || check(value)
	}
}

// IsEmpty reports whether value is one of the empty sentinels:
// nil, "", an empty sequence, or an empty mapping. 0 and false are not empty.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.IsNil() || rv.Len() == 0
	case reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Apply runs validators in order against a single value outside of any form
// and returns the accumulated payload, or nil when the value is valid.
func Apply(value any, validators ...Validator) *Payload {
	return NewField(validators...).Run(NewContext(), value)
}
