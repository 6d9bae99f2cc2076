package form

import (
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func typed(check validator.Validator, vs []validator.Validator) *validator.Field {
	return validator.NewField(append([]validator.Validator{check}, vs...)...)
}

// Text is a string field. Extra validators run after the type check.
func Text(vs ...validator.Validator) *validator.Field {
	return typed(validator.TypeCheck(validator.TypeString, ""), vs)
}

// Int is an integer field; integral floats from decoded JSON are accepted.
func Int(vs ...validator.Validator) *validator.Field {
	return typed(validator.TypeCheck(validator.TypeInt, ""), vs)
}

// Float is a decimal field accepting numbers and numeric strings.
func Float(vs ...validator.Validator) *validator.Field {
	return typed(validator.Decimal(), vs)
}

func Bool(vs ...validator.Validator) *validator.Field {
	return typed(validator.TypeCheck(validator.TypeBool, ""), vs)
}

// DateTime is a date time string field.
func DateTime(vs ...validator.Validator) *validator.Field {
	return typed(validator.DateTime(), vs)
}

// Choice accepts only the allowed values.
func Choice(allowed []any, vs ...validator.Validator) *validator.Field {
	return typed(validator.Choice(allowed...), vs)
}

func UUID(vs ...validator.Validator) *validator.Field {
	return typed(validator.UUID(), vs)
}

// StringList is a path field: a list of strings.
func StringList(vs ...validator.Validator) *validator.Field {
	return typed(validator.StringList(), vs)
}

// Paths is a list of paths.
func Paths(vs ...validator.Validator) *validator.Field {
	return typed(validator.ListOf(StringList()), vs)
}

// List validates every element with item.
func List(item *validator.Field, vs ...validator.Validator) *validator.Field {
	return typed(validator.ListOf(item), vs)
}

// Dict validates every value with value and, when key is not nil, every key with key.
func Dict(value, key *validator.Field, vs ...validator.Validator) *validator.Field {
	return typed(validator.MapOf(value, key), vs)
}

// Tuple validates a sequence positionally.
func Tuple(fields []*validator.Field, vs ...validator.Validator) *validator.Field {
	return typed(validator.TupleOf(fields...), vs)
}

// Sub embeds the referenced schema.
func Sub(ref Ref, vs ...validator.Validator) *validator.Field {
	return typed(Embed(ref), vs)
}

// Either accepts a value that at least one alternative accepts.
func Either(alternatives []*validator.Field, vs ...validator.Validator) *validator.Field {
	return typed(validator.Either(alternatives...), vs)
}
