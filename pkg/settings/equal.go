package settings

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
)

// valuesEqual compares two option values structurally. Numbers compare by
// value regardless of their Go type, so an int option matches the float64 or
// json.Number a JSON decoder produces for it. Integers compare exactly, even
// beyond the range a float64 represents without loss. Values that cannot be
// compared (functions, for instance) are only equal when both are nil.
func valuesEqual(a, b interface{}) bool {
	return reflect.DeepEqual(normalize(a), normalize(b))
}

// normalize maps every number to a single canonical type: int64 for integral
// values that fit, uint64 for larger non-negative integers and float64 for
// everything else.
func normalize(v interface{}) interface{} {
	switch x := v.(type) {
	case nil:
		return nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(x.String(), 10, 64); err == nil {
			return u
		}
		if f, err := x.Float64(); err == nil {
			return normalizeFloat(f)
		}
		return x.String()
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, item := range x {
			out[i] = normalize(item)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, item := range x {
			out[k] = normalize(item)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return normalizeUint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return normalizeFloat(rv.Float())
	}
	return v
}

func normalizeUint(u uint64) interface{} {
	if u <= math.MaxInt64 {
		return int64(u)
	}
	return u
}

// normalizeFloat turns integral floats into the integer they hold exactly
func normalizeFloat(f float64) interface{} {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return f
	}
	if f >= -(1<<63) && f < 1<<63 {
		return int64(f)
	}
	if f >= 0 && f < 1<<64 {
		return uint64(f)
	}
	return f
}
