package table

import (
	"fmt"
	"reflect"
	"time"
)

// Stringify renders a cell value for display and search. Absent values
// render as the empty string.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format(time.DateOnly)
	default:
		return fmt.Sprint(v)
	}
}

// Less is the generic ordering used by the sort stage. Numbers compare
// numerically across all integer and float kinds, strings and times compare
// naturally, false sorts before true, and nil sorts before everything.
// Mixed kinds fall back to comparing their Stringify forms. That is not a
// total order: 9 < 10 and "10" < 9 while 10 and "10" tie, so the order of a
// column holding mixed kinds is unspecified. Values are never validated.
func Less(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b != nil
	}
	if x, y, ok := bothInts(a, b); ok {
		return x < y
	}
	if x, y, ok := bothUints(a, b); ok {
		return x < y
	}
	if x, ok := toFloat(a); ok {
		if y, ok := toFloat(b); ok {
			return x < y
		}
	}
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return x < y
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Before(y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			return !x && y
		}
	}
	return Stringify(a) < Stringify(b)
}

func bothInts(a, b any) (int64, int64, bool) {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if isInt(ra.Kind()) && isInt(rb.Kind()) {
		return ra.Int(), rb.Int(), true
	}
	return 0, 0, false
}

func bothUints(a, b any) (uint64, uint64, bool) {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if isUint(ra.Kind()) && isUint(rb.Kind()) {
		return ra.Uint(), rb.Uint(), true
	}
	return 0, 0, false
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch {
	case isInt(rv.Kind()):
		return float64(rv.Int()), true
	case isUint(rv.Kind()):
		return float64(rv.Uint()), true
	case rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}
