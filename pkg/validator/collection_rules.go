package validator

import (
	"sort"
)

var (
	listTypeError    = NewError(KindType, KeyType, map[string]any{"type": string(TypeList)})
	mappingTypeError = NewError(KindType, KeyType, map[string]any{"type": string(TypeMapping)})
)

func typeError(proto *ValidationError) *ValidationError {
	err := *proto
	return &err
}

// ListOf runs item against every element of a sequence.
// The failure payload is index-aligned with the input: Items has one slot per
// element and clean elements hold nil. Non-sequences fail with a TypeError.
func ListOf(item *Field) Validator {
	return Func(func(vc *Context, value any) *ValidationError {
		if IsEmpty(value) {
			return nil
		}
		seq, ok := asSequence(value)
		if !ok {
			return typeError(listTypeError)
		}

		items := make([]*Payload, len(seq))
		failed := false
		for i, elem := range seq {
			if p := item.Run(vc, elem); p != nil {
				items[i] = p
				failed = true
			}
			if vc.Err() != nil {
				return nil
			}
		}
		if !failed {
			return nil
		}
		return NestedError(&Payload{Items: items})
	})
}

// MapOf runs value against every entry of a mapping, and key against every
// key when key is not nil. Errors for one entry, key errors first, are
// combined under that key. Non-mappings fail with a TypeError.
func MapOf(value, key *Field) Validator {
	return Func(func(vc *Context, raw any) *ValidationError {
		if IsEmpty(raw) {
			return nil
		}
		m, ok := AsMapping(raw)
		if !ok {
			return typeError(mappingTypeError)
		}

		names := make([]string, 0, len(m))
		for k := range m {
			names = append(names, k)
		}
		sort.Strings(names)

		keys := make(map[string]*Payload)
		for _, k := range names {
			entry := &Payload{}
			entry.Merge(key.Run(vc, k))
			entry.Merge(value.Run(vc, m[k]))
			if vc.Err() != nil {
				return nil
			}
			if !entry.IsEmpty() {
				keys[k] = entry
			}
		}
		if len(keys) == 0 {
			return nil
		}
		return NestedError(&Payload{Keys: keys})
	})
}

// TupleOf validates a sequence positionally: fields[i] checks element i.
// Missing trailing elements are validated as nil; extra elements are ignored.
// The failure payload has one slot per field.
func TupleOf(fields ...*Field) Validator {
	return Func(func(vc *Context, value any) *ValidationError {
		if IsEmpty(value) {
			return nil
		}
		seq, ok := asSequence(value)
		if !ok {
			return typeError(listTypeError)
		}

		items := make([]*Payload, len(fields))
		failed := false
		for i, f := range fields {
			var elem any
			if i < len(seq) {
				elem = seq[i]
			}
			if p := f.Run(vc, elem); p != nil {
				items[i] = p
				failed = true
			}
			if vc.Err() != nil {
				return nil
			}
		}
		if !failed {
			return nil
		}
		return NestedError(&Payload{Items: items})
	})
}

// StringList fails when a non-empty value is not a sequence of strings.
// It checks a path such as ["settings", "theme"].
func StringList() Rule {
	return Rule{
		Check: present(func(value any) bool {
			seq, ok := asSequence(value)
			if !ok {
				return false
			}
			for _, elem := range seq {
				if _, ok := elem.(string); !ok {
					return false
				}
			}
			return true
		}),
		Error: *NewError(KindType, KeyPath, nil),
	}
}
