package validator

// Choice fails when a non-empty value is not one of allowed.
// Numbers match by value regardless of their Go type.
func Choice(allowed ...any) Rule {
	choices := make([]any, len(allowed))
	copy(choices, allowed)

	return Rule{
		Check: present(func(value any) bool {
			for _, c := range choices {
				if equalValues(value, c) {
					return true
				}
			}
			return false
		}),
		Error: *NewError(KindChoice, KeyChoice, map[string]any{"choices": choices}),
	}
}

// OneOf is Choice over a typed set.
func OneOf[T comparable](allowed ...T) Rule {
	values := make([]any, len(allowed))
	for i, v := range allowed {
		values[i] = v
	}
	return Choice(values...)
}
