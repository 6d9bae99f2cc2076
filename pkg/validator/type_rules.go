package validator

import (
	"encoding/json"
	"math"
	"reflect"
)

// Type names a structural type accepted by TypeCheck.
type Type string

const (
	TypeString  Type = "string"
	TypeInt     Type = "int"
	TypeFloat   Type = "float"
	TypeNumber  Type = "number"
	TypeBool    Type = "bool"
	TypeList    Type = "list"
	TypeMapping Type = "mapping"
)

// TypeCheck fails when a non-empty value is not of type t.
// An empty message renders the "Must be <type>" template.
// Integral floats and integral json.Number values count as TypeInt,
// since decoded JSON carries every number as float64.
func TypeCheck(t Type, message string) Rule {
	return Rule{
		Check: present(func(value any) bool {
			return IsType(value, t)
		}),
		Error: *NewError(KindType, KeyType, map[string]any{"type": string(t)}),
	}.WithMessage(message)
}

// IsType reports whether value belongs to the structural type t.
func IsType(value any, t Type) bool {
	switch t {
	case TypeString:
		_, ok := value.(string)
		return ok
	case TypeBool:
		_, ok := value.(bool)
		return ok
	case TypeInt:
		return isInt(value)
	case TypeFloat, TypeNumber:
		_, ok := toFloat(value)
		return ok
	case TypeList:
		_, ok := asSequence(value)
		return ok
	case TypeMapping:
		_, ok := AsMapping(value)
		return ok
	}
	return false
}

func isInt(value any) bool {
	if n, ok := value.(json.Number); ok {
		_, err := n.Int64()
		return err == nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return !math.IsInf(f, 0) && f == math.Trunc(f)
	}
	return false
}

// toFloat converts any Go numeric kind or json.Number to float64. Strings and bools are rejected.
func toFloat(value any) (float64, bool) {
	if n, ok := value.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// asSequence exposes any slice or array except strings as []any.
func asSequence(value any) ([]any, bool) {
	if s, ok := value.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// AsMapping exposes any map keyed by strings as map[string]any.
// Decoded YAML documents carry map[string]any; other string-keyed maps are copied.
func AsMapping(value any) (map[string]any, bool) {
	if m, ok := value.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// equalValues compares numbers by value and everything else deeply.
func equalValues(a, b any) bool {
	fa, okA := toFloat(a)
	fb, okB := toFloat(b)
	if okA && okB {
		return fa == fb
	}
	return reflect.DeepEqual(a, b)
}
