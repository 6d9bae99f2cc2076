package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	empty := []any{nil, "", []any{}, map[string]any{}, []string{}, map[string]int{}, (*int)(nil)}
	for _, v := range empty {
		assert.True(t, validator.IsEmpty(v), "%#v should be empty", v)
	}

	notEmpty := []any{0, false, " ", []any{nil}, map[string]any{"a": nil}, 0.0}
	for _, v := range notEmpty {
		assert.False(t, validator.IsEmpty(v), "%#v should not be empty", v)
	}
}

func TestRequired(t *testing.T) {
	t.Parallel()

	t.Run("fails on every empty sentinel", func(t *testing.T) {
		for _, v := range []any{"", map[string]any{}, []any{}, nil} {
			p := validator.Apply(v, validator.Required())
			require.NotNil(t, p, "%#v", v)
			assert.Equal(t, []string{"Required"}, p.Messages())
			assert.Equal(t, validator.KindRequired, p.Errors[0].Kind)
			assert.Equal(t, validator.KeyRequired, p.Errors[0].TranslationKey)
		}
	})

	t.Run("passes on zero values and a list holding null", func(t *testing.T) {
		for _, v := range []any{0, false, []any{nil}, "x", 0.0} {
			assert.Nil(t, validator.Apply(v, validator.Required()), "%#v", v)
		}
	})
}

func TestRule(t *testing.T) {
	t.Parallel()

	rule := validator.Rule{
		Check: func(v any) bool { return v == "ok" },
		Error: validator.ValidationError{Kind: validator.KindFormat, Message: "not ok"},
	}

	t.Run("returns a copy of its error", func(t *testing.T) {
		err := rule.Validate(nil, "nope")
		require.NotNil(t, err)
		err.Message = "changed"
		assert.Equal(t, "not ok", rule.Error.Message)
	})

	t.Run("with message overrides only when non-empty", func(t *testing.T) {
		assert.Equal(t, "custom", rule.WithMessage("custom").Error.Message)
		assert.Equal(t, "not ok", rule.WithMessage("").Error.Message)
	})

	t.Run("passes", func(t *testing.T) {
		assert.Nil(t, rule.Validate(nil, "ok"))
	})
}

func TestField_Run(t *testing.T) {
	t.Parallel()

	t.Run("accumulates failures in declaration order", func(t *testing.T) {
		f := validator.NewField(
			validator.TypeCheck(validator.TypeString, "Must be string"),
			validator.Choice("a", "b"),
			validator.Regex("[a-z]+", ""),
		)
		p := f.Run(validator.NewContext(), 42)
		require.NotNil(t, p)
		assert.Equal(t, []string{
			"Must be string",
			"Should be one of a, b",
			"Must match pattern [a-z]+",
		}, p.Messages())
	})

	t.Run("returns nil when valid", func(t *testing.T) {
		f := validator.NewField(validator.Required(), validator.LenBetween(1, 3))
		assert.Nil(t, f.Run(validator.NewContext(), "ab"))
	})

	t.Run("empty value yields only the required error", func(t *testing.T) {
		f := validator.NewField(validator.Required(), validator.LenBetween(1, 16))
		p := f.Run(validator.NewContext(), "")
		require.NotNil(t, p)
		assert.Equal(t, []string{"Required"}, p.Messages())
	})

	t.Run("stops after the context is aborted", func(t *testing.T) {
		vc := validator.NewContext()
		calls := 0
		f := validator.NewField(
			validator.Func(func(vc *validator.Context, _ any) *validator.ValidationError {
				calls++
				vc.Abort(assert.AnError)
				return nil
			}),
			validator.Func(func(*validator.Context, any) *validator.ValidationError {
				calls++
				return nil
			}),
		)
		assert.Nil(t, f.Run(vc, "x"))
		assert.Equal(t, 1, calls)
		assert.ErrorIs(t, vc.Err(), assert.AnError)
	})

	t.Run("nil field is valid", func(t *testing.T) {
		var f *validator.Field
		assert.Nil(t, f.Run(validator.NewContext(), "x"))
		assert.Equal(t, 0, f.Len())
	})
}

func TestField_With(t *testing.T) {
	t.Parallel()

	base := validator.NewField(validator.Required(), nil)
	extended := base.With(validator.MaxLen(2))

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, extended.Len())

	vs := base.Validators()
	vs[0] = nil
	assert.NotNil(t, base.Validators()[0], "validators must be copied out")

	assert.Nil(t, base.Run(validator.NewContext(), "abc"))
	assert.NotNil(t, extended.Run(validator.NewContext(), "abc"))
}
