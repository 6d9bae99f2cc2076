package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

// Translation keys of the built-in rules.
const (
	KeyRequired  = "validation.required"
	KeyType      = "validation.type"
	KeyMin       = "validation.min"
	KeyMax       = "validation.max"
	KeyMinLength = "validation.min_length"
	KeyMaxLength = "validation.max_length"
	KeyChoice    = "validation.choice"
	KeyPattern   = "validation.pattern"
	KeyFormat    = "validation.format"
	KeyDateTime  = "validation.datetime"
	KeyDecimal   = "validation.decimal"
	KeyUUID      = "validation.uuid"
	KeyPath      = "validation.path"
)

// defaultTemplates holds the English message templates rendered at rule construction.
// Placeholders use the %{name} form shared with pkg/i18n catalogues.
var defaultTemplates = map[string]string{
	KeyRequired:  "Required",
	KeyType:      "Must be %{type}",
	KeyMin:       "Must be at least %{min}",
	KeyMax:       "Must be at most %{max}",
	KeyMinLength: "Length must be at least %{min}",
	KeyMaxLength: "Length must be at most %{max}",
	KeyChoice:    "Should be one of %{choices}",
	KeyPattern:   "Must match pattern %{pattern}",
	KeyFormat:    "Invalid format",
	KeyDateTime:  "Expected date time string",
	KeyDecimal:   "Must be decimal",
	KeyUUID:      "Must be a valid UUID",
	KeyPath:      "Path must be list of strings",
}

// DefaultTemplates returns a copy of the built-in English message templates.
func DefaultTemplates() map[string]string {
	out := make(map[string]string, len(defaultTemplates))
	for k, v := range defaultTemplates {
		out[k] = v
	}
	return out
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// Render renders the built-in template for key with the given values.
// Unknown keys render as the key itself.
func Render(key string, values map[string]any) string {
	tmpl, ok := defaultTemplates[key]
	if !ok {
		tmpl = key
	}
	return Interpolate(tmpl, values)
}

// Interpolate substitutes %{name} placeholders with values.
// Placeholders without a value are kept as is.
func Interpolate(tmpl string, values map[string]any) string {
	if len(values) == 0 {
		return tmpl
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := values[name]; ok {
			return FormatValue(v)
		}
		return match
	})
}

// FormatValue renders a template value; sequences are joined with ", ".
func FormatValue(v any) string {
	if v == nil {
		return "null"
	}
	if s, ok := v.(string); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = FormatValue(rv.Index(i).Interface())
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprint(v)
}
