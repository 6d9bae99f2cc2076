package validator

import (
	"reflect"
	"unicode/utf8"
)

// LengthRange is NumRange over a value's size: rune count for strings,
// element count for sequences and mappings. A nil bound is open.
// Empty values pass; presence is Required's concern.
func LengthRange(min, max *int) Validator {
	var minErr, maxErr *ValidationError
	if min != nil {
		minErr = NewError(KindRange, KeyMinLength, map[string]any{"min": *min})
	}
	if max != nil {
		maxErr = NewError(KindRange, KeyMaxLength, map[string]any{"max": *max})
	}

	return Func(func(_ *Context, value any) *ValidationError {
		if IsEmpty(value) {
			return nil
		}
		n, ok := sizeOf(value)
		if !ok {
			return nil
		}
		if minErr != nil && n < *min {
			err := *minErr
			return &err
		}
		if maxErr != nil && n > *max {
			err := *maxErr
			return &err
		}
		return nil
	})
}

// MinLen fails when the size is below n.
func MinLen(n int) Validator {
	return LengthRange(&n, nil)
}

// MaxLen fails when the size is above n.
func MaxLen(n int) Validator {
	return LengthRange(nil, &n)
}

// LenBetween fails when the size is outside [min, max].
func LenBetween(min, max int) Validator {
	return LengthRange(&min, &max)
}

func sizeOf(value any) (int, bool) {
	if s, ok := value.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}
