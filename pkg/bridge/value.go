// Package bridge models the untyped key/value maps exchanged with the host bridge.
package bridge

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

// Value kinds.
const (
	// KindAbsent marks a key that is missing or holds a non-scalar value.
	KindAbsent Kind = iota
	// KindNull marks a key explicitly mapped to nil.
	KindNull
	// KindBool holds a boolean.
	KindBool
	// KindNumber holds a number.
	KindNumber
	// KindString holds a string.
	KindString
)

// KindMapType maps each Kind to a readable name used in log fields.
var KindMapType = map[Kind]string{
	KindAbsent: "absent",
	KindNull:   "null",
	KindBool:   "bool",
	KindNumber: "number",
	KindString: "string",
}

func (k Kind) String() string {
	if s, ok := KindMapType[k]; ok {
		return s
	}
	return "unknown"
}

// Value is a single scalar read out of a Map.
// Numbers keep their integral form when the source value was an integer so that
// large identifiers do not lose precision through float64.
type Value struct {
	kind    Kind
	b       bool
	i       int64
	f       float64
	isFloat bool
	s       string
}

// Absent returns the absent Value.
func Absent() Value { return Value{kind: KindAbsent} }

// Null returns the null Value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps b.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an integer number.
func Int(i int64) Value { return Value{kind: KindNumber, i: i} }

// Float wraps a floating point number.
func Float(f float64) Value { return Value{kind: KindNumber, f: f, isFloat: true} }

// String wraps s.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsPresent reports whether the key existed in the source map, null included.
func (v Value) IsPresent() bool { return v.kind != KindAbsent }

// Of classifies a raw Go value as produced by JSON/YAML decoders or the host bridge.
func Of(raw any) Value {
	switch x := raw.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(x)
	case string:
		return String(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return ofUint(uint64(x))
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint64:
		return ofUint(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i)
		}
		if f, err := x.Float64(); err == nil {
			return Float(f)
		}
		return Absent()
	default:
		return Absent()
	}
}

func ofUint(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}

// AsBool coerces v to a boolean. Strings are accepted in strconv.ParseBool form.
func AsBool(v Value) (bool, bool) {
	switch v.kind {
	case KindBool:
		return v.b, true
	case KindString:
		b, err := strconv.ParseBool(strings.TrimSpace(v.s))
		if err != nil {
			return false, false
		}
		return b, true
	default:
		return false, false
	}
}

// AsInt coerces v to an int. Numbers must be integral and strings must hold a
// base-10 integer.
func AsInt(v Value) (int, bool) {
	switch v.kind {
	case KindNumber:
		if !v.isFloat {
			if v.i < math.MinInt || v.i > math.MaxInt {
				return 0, false
			}
			return int(v.i), true
		}
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) || v.f != math.Trunc(v.f) {
			return 0, false
		}
		if v.f < math.MinInt64 || v.f >= math.MaxInt64 {
			return 0, false
		}
		return AsInt(Int(int64(v.f)))
	case KindString:
		i, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 0)
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

// AsString coerces v to a string. Only string values qualify; numbers and
// booleans are not formatted implicitly.
func AsString(v Value) (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}
