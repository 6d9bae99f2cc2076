package validator

// NumRange fails when a number falls below min or above max.
// A nil bound is open. Non-numeric values pass; pair with TypeCheck to reject them.
// Messages are rendered with the bounds at construction.
func NumRange(min, max *float64) Validator {
	var minErr, maxErr *ValidationError
	if min != nil {
		minErr = NewError(KindRange, KeyMin, map[string]any{"min": *min})
	}
	if max != nil {
		maxErr = NewError(KindRange, KeyMax, map[string]any{"max": *max})
	}

	return Func(func(_ *Context, value any) *ValidationError {
		n, ok := toFloat(value)
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

// Min fails below v.
func Min(v float64) Validator {
	return NumRange(&v, nil)
}

// Max fails above v.
func Max(v float64) Validator {
	return NumRange(nil, &v)
}

// Between fails outside the closed interval [min, max].
func Between(min, max float64) Validator {
	return NumRange(&min, &max)
}
