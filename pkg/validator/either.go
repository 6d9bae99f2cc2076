package validator

// Either passes when at least one alternative validates the value cleanly.
// Alternatives are tried in order and evaluation stops at the first success.
// When every alternative fails, the failure carries one payload per
// alternative, in declaration order, as Alternatives.
func Either(alternatives ...*Field) Validator {
	return Func(func(vc *Context, value any) *ValidationError {
		if len(alternatives) == 0 {
			return nil
		}

		failures := make([]*Payload, 0, len(alternatives))
		for _, alt := range alternatives {
			p := alt.Run(vc, value)
			if vc.Err() != nil {
				return nil
			}
			if p == nil {
				return nil
			}
			failures = append(failures, p)
		}
		return NestedError(&Payload{Alternatives: failures})
	})
}
