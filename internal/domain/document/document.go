// Package document models provider payloads as loosely-typed JSON trees.
// Every accessor degrades to a zero value instead of failing, so callers can
// walk optional nesting without checking each level.
package document

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Doc is a decoded JSON object.
type Doc map[string]any

var (
	floatPrefixRegex = regexp.MustCompile(`^[+-]?(Infinity|\d+\.?\d*(?:[eE][+-]?\d+)?|\.\d+(?:[eE][+-]?\d+)?)`)
	intPrefixRegex   = regexp.MustCompile(`^[+-]?\d+`)
)

// AsObject returns v as a Doc when it is a JSON object.
func AsObject(v any) (Doc, bool) {
	switch typed := v.(type) {
	case Doc:
		return typed, typed != nil
	case map[string]any:
		return Doc(typed), typed != nil
	default:
		return nil, false
	}
}

// AsArray returns v as a slice when it is a JSON array.
func AsArray(v any) ([]any, bool) {
	switch typed := v.(type) {
	case []any:
		return typed, true
	case []map[string]any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, item)
		}
		return out, true
	case []Doc:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, item)
		}
		return out, true
	default:
		return nil, false
	}
}

// Field returns the raw value stored under key, or nil.
func (d Doc) Field(key string) any {
	if d == nil {
		return nil
	}
	return d[key]
}

// Has reports whether key holds a non-null value.
func (d Doc) Has(key string) bool {
	return Present(d.Field(key))
}

// Object returns the nested object under key, or nil.
func (d Doc) Object(key string) Doc {
	obj, _ := AsObject(d.Field(key))
	return obj
}

// Array returns the nested array under key, or nil.
func (d Doc) Array(key string) []any {
	arr, _ := AsArray(d.Field(key))
	return arr
}

// Objects returns the object elements of the array under key. Non-object
// elements are skipped.
func (d Doc) Objects(key string) []Doc {
	arr := d.Array(key)
	out := make([]Doc, 0, len(arr))
	for _, item := range arr {
		if obj, ok := AsObject(item); ok {
			out = append(out, obj)
		}
	}
	return out
}

// Path walks nested objects and returns the value at the end, or nil.
func (d Doc) Path(keys ...string) any {
	var current any = d
	for _, key := range keys {
		obj, ok := AsObject(current)
		if !ok {
			return nil
		}
		current = obj[key]
	}
	return current
}

// String returns the value under key rendered as text.
func (d Doc) String(key string) string {
	return Text(d.Field(key))
}

// First returns the first non-null value among keys, mirroring a chain of
// nullish fallbacks.
func (d Doc) First(keys ...string) any {
	for _, key := range keys {
		if v := d.Field(key); Present(v) {
			return v
		}
	}
	return nil
}

// Clone returns a shallow copy of d.
func (d Doc) Clone() Doc {
	out := make(Doc, len(d)+1)
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Present reports whether v is neither absent nor JSON null.
func Present(v any) bool {
	return v != nil
}

// Truthy follows the loose truthiness rules of the dashboard: empty strings,
// zero, NaN, false and null are falsy.
func Truthy(v any) bool {
	switch typed := v.(type) {
	case nil:
		return false
	case string:
		return typed != ""
	case bool:
		return typed
	case float64:
		return typed != 0 && !math.IsNaN(typed)
	case float32:
		return typed != 0 && !math.IsNaN(float64(typed))
	case int:
		return typed != 0
	case int64:
		return typed != 0
	default:
		return true
	}
}

// Text renders scalar values as display text. Objects and arrays render empty.
func Text(v any) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	default:
		return ""
	}
}

// ToNumber converts v the way Number() does: numbers pass through, booleans
// become 0/1, blank strings become 0, and anything unparseable is reported
// as not ok.
func ToNumber(v any) (float64, bool) {
	switch typed := v.(type) {
	case nil:
		return 0, true
	case float64:
		return typed, !math.IsNaN(typed)
	case float32:
		return float64(typed), !math.IsNaN(float64(typed))
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case bool:
		if typed {
			return 1, true
		}
		return 0, true
	case string:
		text := strings.TrimSpace(typed)
		if text == "" {
			return 0, true
		}
		switch text {
		case "Infinity", "+Infinity":
			return math.Inf(1), true
		case "-Infinity":
			return math.Inf(-1), true
		}
		out, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsNaN(out) {
			return 0, false
		}
		return out, true
	default:
		return 0, false
	}
}

// ParseFloatPrefix converts v the way parseFloat() does: the longest numeric
// prefix of its text form is used and a missing prefix is not ok.
func ParseFloatPrefix(v any) (float64, bool) {
	switch typed := v.(type) {
	case float64:
		return typed, !math.IsNaN(typed)
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case string:
		match := floatPrefixRegex.FindString(strings.TrimSpace(typed))
		if match == "" {
			return 0, false
		}
		if strings.HasSuffix(match, "Infinity") {
			if strings.HasPrefix(match, "-") {
				return math.Inf(-1), true
			}
			return math.Inf(1), true
		}
		out, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return 0, false
		}
		return out, true
	default:
		return 0, false
	}
}

// ParseIntPrefix converts v the way parseInt(v, 10) does.
func ParseIntPrefix(v any) (float64, bool) {
	switch typed := v.(type) {
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) {
			return 0, false
		}
		return math.Trunc(typed), true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case string:
		match := intPrefixRegex.FindString(strings.TrimSpace(typed))
		if match == "" {
			return 0, false
		}
		out, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return 0, false
		}
		return out, true
	default:
		return 0, false
	}
}

// Int returns the value under key as an int, or 0.
func (d Doc) Int(key string) int {
	n, ok := ToNumber(d.Field(key))
	if !ok || math.IsInf(n, 0) {
		return 0
	}
	return int(n)
}

// Float returns the value under key as a float64 with ok=false when absent or
// unparseable.
func (d Doc) Float(key string) (float64, bool) {
	v := d.Field(key)
	if !Present(v) {
		return 0, false
	}
	return ToNumber(v)
}
