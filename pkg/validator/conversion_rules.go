package validator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ConvertFunc parses a raw value. Any error marks the value as malformed.
type ConvertFunc func(raw any) (any, error)

// ErrUnsupportedValue is returned by converters for values of an unexpected type.
var ErrUnsupportedValue = errors.New("unsupported value")

// Conversion fails with a FormatError when fn rejects a non-empty value.
// The converted value is discarded; only the pass/fail outcome matters.
// An empty message renders the generic "Invalid format" template.
func Conversion(fn ConvertFunc, message string) Rule {
	return conversion(fn, KeyFormat).WithMessage(message)
}

func conversion(fn ConvertFunc, key string) Rule {
	return Rule{
		Check: present(func(value any) bool {
			_, err := fn(value)
			return err == nil
		}),
		Error: *NewError(KindFormat, key, nil),
	}
}

// DateTimeLayouts are tried in order by ParseDateTime.
var DateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDateTime parses a date time string using DateTimeLayouts.
// time.Time values are returned as is.
func ParseDateTime(raw any) (any, error) {
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range DateTimeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("parse date time %q: no layout matched", v)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, raw)
}

// DateTime fails when a non-empty value is not a date time string.
func DateTime() Rule {
	return conversion(ParseDateTime, KeyDateTime)
}

// ParseDecimal accepts numbers and numeric strings.
func ParseDecimal(raw any) (any, error) {
	if f, ok := toFloat(raw); ok {
		return f, nil
	}
	if s, ok := raw.(string); ok {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, raw)
}

// Decimal fails when a non-empty value is neither a number nor a numeric string.
func Decimal() Rule {
	return conversion(ParseDecimal, KeyDecimal)
}
