package validator

// Predicate is evaluated against the enclosing form instance, never the value itself.
type Predicate func(f Frame) bool

// Required fails when the value is one of the empty sentinels.
func Required() Rule {
	return Rule{
		Check: func(value any) bool {
			return !IsEmpty(value)
		},
		Error: *NewError(KindRequired, KeyRequired, nil),
	}
}

// RequiredIf behaves like Required only while pred holds for the current form.
func RequiredIf(pred Predicate) Validator {
	required := Required()
	return Func(func(vc *Context, value any) *ValidationError {
		if pred == nil || !pred(vc.Current()) {
			return nil
		}
		return required.Validate(vc, value)
	})
}

// If runs validators in order only while pred holds for the current form.
// It reports nothing when pred is false; it is a gate, not a check.
func If(pred Predicate, validators ...Validator) Validator {
	inner := NewField(validators...)
	return Func(func(vc *Context, value any) *ValidationError {
		if pred == nil || !pred(vc.Current()) {
			return nil
		}
		if p := inner.Run(vc, value); p != nil {
			return NestedError(p)
		}
		return nil
	})
}

// FieldEquals holds when the current form's field equals want.
// Numbers are compared by value regardless of their Go type.
func FieldEquals(name string, want any) Predicate {
	return func(f Frame) bool {
		got, ok := f.Get(name)
		if !ok {
			return false
		}
		return equalValues(got, want)
	}
}

// FieldIn holds when the current form's field equals any of values.
func FieldIn(name string, values ...any) Predicate {
	return func(f Frame) bool {
		got, ok := f.Get(name)
		if !ok {
			return false
		}
		for _, want := range values {
			if equalValues(got, want) {
				return true
			}
		}
		return false
	}
}

// FieldPresent holds when the current form's field is present and not empty.
func FieldPresent(name string) Predicate {
	return func(f Frame) bool {
		got, ok := f.Get(name)
		return ok && !IsEmpty(got)
	}
}

// Not negates a predicate.
func Not(pred Predicate) Predicate {
	return func(f Frame) bool {
		return pred == nil || !pred(f)
	}
}
