// File: attrs.go
// Role: Attribute bag values (tagged union) attached to vertices and edges.

package core

import (
	"fmt"
	"strconv"
)

// Kind tags the dynamic type held by a Value.
type Kind uint8

const (
	// KindInvalid is the zero Kind; a zero Value holds nothing.
	KindInvalid Kind = iota
	// KindNumber holds a float64.
	KindNumber
	// KindString holds a string.
	KindString
	// KindBool holds a bool.
	KindBool
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Value is a small tagged union stored in attribute bags.
// The zero Value is invalid and is rejected by the attribute options.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
}

// Number wraps a float64.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool wraps a bool.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind reports the dynamic type of v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v was built by one of the constructors.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// Float returns the number held by v; ok is false for any other kind.
func (v Value) Float() (f float64, ok bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Text returns the string held by v; ok is false for any other kind.
func (v Value) Text() (s string, ok bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Truth returns the bool held by v; ok is false for any other kind.
func (v Value) Truth() (b bool, ok bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Interface unwraps v into float64, string, bool or nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// String renders v the way it would appear in a text row.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return "<invalid>"
	}
}

// ValueOf converts a native Go value into a Value.
// Integer and float types become KindNumber. Anything else is ErrInvalidInput.
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case Value:
		if !t.IsValid() {
			return Value{}, fmt.Errorf("%w: zero Value", ErrInvalidInput)
		}
		return t, nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(float64(t)), nil
	case int:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case uint:
		return Number(float64(t)), nil
	case uint64:
		return Number(float64(t)), nil
	case uint32:
		return Number(float64(t)), nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	default:
		return Value{}, fmt.Errorf("%w: unsupported attribute type %T", ErrInvalidInput, x)
	}
}

// Attrs is an attribute bag keyed by attribute name.
type Attrs map[string]Value

// Clone returns an independent copy of a. A nil bag clones to an empty one.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// merge copies every entry of src into a, overwriting existing keys.
func (a Attrs) merge(src Attrs) {
	for k, v := range src {
		a[k] = v
	}
}
