package validator_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func messages(value any, v validator.Validator) []string {
	return validator.Apply(value, v).Messages()
}

func TestTypeCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		typ   validator.Type
		value any
		valid bool
	}{
		{"string", validator.TypeString, "x", true},
		{"string rejects int", validator.TypeString, 1, false},
		{"int", validator.TypeInt, 5, true},
		{"int accepts integral float", validator.TypeInt, 5.0, true},
		{"int accepts json number", validator.TypeInt, json.Number("12"), true},
		{"int rejects fraction", validator.TypeInt, 5.5, false},
		{"int rejects bool", validator.TypeInt, true, false},
		{"int rejects numeric string", validator.TypeInt, "5", false},
		{"float accepts int", validator.TypeFloat, 3, true},
		{"bool", validator.TypeBool, false, true},
		{"list", validator.TypeList, []string{"a"}, true},
		{"list rejects string", validator.TypeList, "abc", false},
		{"mapping", validator.TypeMapping, map[string]int{"a": 1}, true},
		{"mapping rejects int keys", validator.TypeMapping, map[int]int{1: 1}, false},
		{"empty value passes", validator.TypeInt, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validator.Apply(tt.value, validator.TypeCheck(tt.typ, ""))
			assert.Equal(t, tt.valid, p == nil)
		})
	}

	t.Run("default and custom messages", func(t *testing.T) {
		assert.Equal(t, []string{"Must be int"}, messages("x", validator.TypeCheck(validator.TypeInt, "")))
		assert.Equal(t, []string{"Must be string"}, messages(1, validator.TypeCheck(validator.TypeString, "Must be string")))
	})
}

func TestNumRange(t *testing.T) {
	t.Parallel()

	rng := validator.Between(1, 10)

	assert.Nil(t, validator.Apply(1, rng))
	assert.Nil(t, validator.Apply(10.0, rng))
	assert.Equal(t, []string{"Must be at most 10"}, messages(11, rng))
	assert.Equal(t, []string{"Must be at least 1"}, messages(int64(0), rng))
	assert.Equal(t, []string{"Must be at least 1.5"}, messages(1, validator.Min(1.5)))
	assert.Nil(t, validator.Apply(1000, validator.Min(0)), "open upper bound")
	assert.Nil(t, validator.Apply(-1000, validator.Max(0)), "open lower bound")
	assert.Nil(t, validator.Apply("eleven", rng), "non-numbers are TypeCheck's concern")
	assert.Nil(t, validator.Apply(nil, validator.NumRange(nil, nil)))

	err := validator.Max(3).Validate(nil, 4)
	require.NotNil(t, err)
	assert.Equal(t, validator.KindRange, err.Kind)
	assert.Equal(t, validator.KeyMax, err.TranslationKey)
	assert.Equal(t, map[string]any{"max": 3.0}, err.TranslationValues)
}

func TestLengthRange(t *testing.T) {
	t.Parallel()

	rng := validator.LenBetween(2, 3)

	assert.Nil(t, validator.Apply("ab", rng))
	assert.Nil(t, validator.Apply("héé", rng), "counts runes")
	assert.Equal(t, []string{"Length must be at least 2"}, messages("a", rng))
	assert.Equal(t, []string{"Length must be at most 3"}, messages([]any{1, 2, 3, 4}, rng))
	assert.Equal(t, []string{"Length must be at most 1"}, messages(map[string]any{"a": 1, "b": 2}, validator.MaxLen(1)))
	assert.Nil(t, validator.Apply("", validator.MinLen(1)), "empty values are Required's concern")
	assert.Nil(t, validator.Apply(42, rng))
}

func TestChoice(t *testing.T) {
	t.Parallel()

	choice := validator.Choice("draft", "published")
	assert.Nil(t, validator.Apply("draft", choice))
	assert.Nil(t, validator.Apply("", choice))
	assert.Equal(t, []string{"Should be one of draft, published"}, messages("archived", choice))

	numbers := validator.OneOf(1, 2, 3)
	assert.Nil(t, validator.Apply(2.0, numbers))
	assert.Equal(t, []string{"Should be one of 1, 2, 3"}, messages(4, numbers))
}

func TestRegex(t *testing.T) {
	t.Parallel()

	slug := validator.Regex(`[a-z0-9-]+`, "")
	assert.Nil(t, validator.Apply("hello-world", slug))
	assert.Equal(t, []string{"Must match pattern [a-z0-9-]+"}, messages("Hello World", slug))
	assert.NotNil(t, validator.Apply(42, slug))

	t.Run("matches the whole string", func(t *testing.T) {
		assert.NotNil(t, validator.Apply("abc", validator.Regex("b", "")))
		assert.NotNil(t, validator.Apply("ab", validator.Regex("a|b", "")), "alternation is grouped")
		assert.Nil(t, validator.Apply("b", validator.Regex("a|b", "")))
	})

	t.Run("custom message", func(t *testing.T) {
		assert.Equal(t, []string{"Invalid code"}, messages("x", validator.Regex(`\d{4}`, "Invalid code")))
	})

	t.Run("panics on invalid pattern", func(t *testing.T) {
		assert.Panics(t, func() { validator.Regex("(", "") })
	})

	t.Run("compiled patterns are shared", func(t *testing.T) {
		a, err := validator.CompilePattern(`\w+`)
		require.NoError(t, err)
		b, err := validator.CompilePattern(`\w+`)
		require.NoError(t, err)
		assert.Same(t, a, b)
	})
}

func TestConversion(t *testing.T) {
	t.Parallel()

	t.Run("date time", func(t *testing.T) {
		dt := validator.DateTime()
		for _, v := range []any{"2024-05-01", "2024-05-01T10:00:00Z", "2024-05-01 10:00:00", time.Now()} {
			assert.Nil(t, validator.Apply(v, dt), "%v", v)
		}
		assert.Equal(t, []string{"Expected date time string"}, messages("yesterday", dt))
		assert.Equal(t, []string{"Expected date time string"}, messages(12, dt))
	})

	t.Run("decimal", func(t *testing.T) {
		dec := validator.Decimal()
		assert.Nil(t, validator.Apply("12.50", dec))
		assert.Nil(t, validator.Apply(3, dec))
		assert.Equal(t, []string{"Must be decimal"}, messages("twelve", dec))
	})

	t.Run("custom converter", func(t *testing.T) {
		even := validator.Conversion(func(raw any) (any, error) {
			if n, ok := raw.(int); ok && n%2 == 0 {
				return n, nil
			}
			return nil, errors.New("odd")
		}, "Must be even")

		assert.Nil(t, validator.Apply(2, even))
		p := validator.Apply(3, even)
		require.NotNil(t, p)
		assert.Equal(t, []string{"Must be even"}, p.Messages())
		assert.Equal(t, validator.KindFormat, p.Errors[0].Kind)
	})
}

func TestUUID(t *testing.T) {
	t.Parallel()

	rule := validator.UUID()
	assert.Nil(t, validator.Apply(uuid.NewString(), rule))
	assert.Nil(t, validator.Apply(uuid.New(), rule))
	assert.Equal(t, []string{"Must be a valid UUID"}, messages("not-a-uuid", rule))
	assert.NotNil(t, validator.Apply("{"+uuid.NewString()+"}", rule))
}

func TestStringList(t *testing.T) {
	t.Parallel()

	rule := validator.StringList()
	assert.Nil(t, validator.Apply([]any{"settings", "theme"}, rule))
	assert.Nil(t, validator.Apply([]string{"a"}, rule))
	assert.Equal(t, []string{"Path must be list of strings"}, messages([]any{"a", 1}, rule))
	assert.Equal(t, []string{"Path must be list of strings"}, messages("a.b", rule))
}
