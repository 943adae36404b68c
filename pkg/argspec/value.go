// SPDX-License-Identifier: MPL-2.0

package argspec

import "strconv"

// Value is a typed, coerced argument value.
//
// The zero Value is an empty string of type TypeString.
type Value struct {
	typ ValueType
	str string
	num int64
	flt float64
	b   bool
}

// TextValue returns a textual value (string, path, choice or custom).
func TextValue(t ValueType, s string) Value {
	if t == "" {
		t = TypeString
	}
	return Value{typ: t, str: s}
}

// IntValue returns an integer value.
func IntValue(i int64) Value {
	return Value{typ: TypeInt, num: i}
}

// BoolValue returns a boolean value.
func BoolValue(b bool) Value {
	return Value{typ: TypeBool, b: b}
}

// FloatValue returns a floating-point value.
func FloatValue(f float64) Value {
	return Value{typ: TypeFloat, flt: f}
}

// Type returns the value's type tag.
func (v Value) Type() ValueType {
	if v.typ == "" {
		return TypeString
	}
	return v.typ
}

// Int returns the integer payload; zero for non-integer values.
func (v Value) Int() int64 { return v.num }

// Bool returns the boolean payload; false for non-boolean values.
func (v Value) Bool() bool { return v.b }

// Float returns the floating-point payload. Integer values are converted.
func (v Value) Float() float64 {
	if v.typ == TypeInt {
		return float64(v.num)
	}
	return v.flt
}

// String returns the canonical text form. Coercing it again yields an equal Value.
func (v Value) String() string {
	switch v.typ {
	case TypeInt:
		return strconv.FormatInt(v.num, 10)
	case TypeBool:
		return strconv.FormatBool(v.b)
	case TypeFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	default:
		return v.str
	}
}

// Any returns the payload as a plain Go value (string, int64, bool or float64),
// suitable for encoders.
func (v Value) Any() any {
	switch v.typ {
	case TypeInt:
		return v.num
	case TypeBool:
		return v.b
	case TypeFloat:
		return v.flt
	default:
		return v.str
	}
}
