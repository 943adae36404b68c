// SPDX-License-Identifier: MPL-2.0

// Package coerce converts raw argument text into typed values and applies validators.
//
// Coercion is pure: it never reads the environment or the filesystem. Validators that
// do (DirExists) are an explicit opt-in attached to an argument.
package coerce

import (
	"errors"
	"strconv"
	"strings"

	"github.com/invowk/argbind/pkg/argerr"
	"github.com/invowk/argbind/pkg/argspec"
)

// boolLiterals is the complete set of accepted boolean spellings.
var boolLiterals = map[string]bool{
	"true": true, "1": true, "yes": true, "on": true,
	"false": false, "0": false, "no": false, "off": false,
}

// BoolLiterals returns the accepted boolean spellings in a stable order.
func BoolLiterals() []string {
	return []string{"true", "false", "1", "0", "yes", "no", "on", "off"}
}

// Coerce converts raw into a value of arg's type, then runs arg's validators in order.
// Failures are returned as *argerr.ValidationError naming arg.
func Coerce(raw string, arg *argspec.Argument) (argspec.Value, error) {
	v, err := Type(raw, arg.GetType(), arg.Choices, arg.GetIntBits())
	if err != nil {
		var ve *argerr.ValidationError
		if errors.As(err, &ve) {
			ve.Arg = arg.ID
		}
		return argspec.Value{}, err
	}
	for _, val := range arg.Validators {
		if err := val.Validate(v); err != nil {
			return argspec.Value{}, rejection(arg, raw, err)
		}
	}
	return v, nil
}

// Type converts raw into a value of type t. choices applies to TypeChoice and bits to
// TypeInt; both are ignored otherwise.
func Type(raw string, t argspec.ValueType, choices []string, bits int) (argspec.Value, error) {
	switch t {
	case argspec.TypeString, argspec.TypePath, argspec.TypeCustom, "":
		return argspec.TextValue(t, raw), nil
	case argspec.TypeInt:
		return parseInt(raw, bits)
	case argspec.TypeBool:
		b, ok := boolLiterals[raw]
		if !ok {
			return argspec.Value{}, argerr.Newf(argerr.KindTypeMismatch, "", raw,
				"'%s' is not a valid boolean", raw).WithValid(BoolLiterals())
		}
		return argspec.BoolValue(b), nil
	case argspec.TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
				return argspec.Value{}, argerr.Newf(argerr.KindOutOfRange, "", raw,
					"'%s' does not fit in a 64-bit float", raw)
			}
			return argspec.Value{}, argerr.Newf(argerr.KindTypeMismatch, "", raw,
				"'%s' is not a valid floating-point number", raw)
		}
		return argspec.FloatValue(f), nil
	case argspec.TypeChoice:
		for _, c := range choices {
			if c == raw {
				return argspec.TextValue(argspec.TypeChoice, raw), nil
			}
		}
		return argspec.Value{}, argerr.Newf(argerr.KindTypeMismatch, "", raw,
			"'%s' is not one of [%s]", raw, strings.Join(choices, ", ")).
			WithValid(choices).
			WithSuggestion(argerr.Suggest(raw, choices))
	default:
		return argspec.Value{}, argerr.Newf(argerr.KindTypeMismatch, "", raw, "unknown value type %q", t)
	}
}

func parseInt(raw string, bits int) (argspec.Value, error) {
	if bits == 0 {
		bits = 64
	}
	i, err := strconv.ParseInt(raw, 10, bits)
	if err == nil {
		return argspec.IntValue(i), nil
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		lo := -(int64(1) << (bits - 1))
		hi := int64(1)<<(bits-1) - 1
		return argspec.Value{}, argerr.Newf(argerr.KindOutOfRange, "", raw,
			"'%s' does not fit in a %d-bit integer", raw, bits).
			WithRange(strconv.FormatInt(lo, 10), strconv.FormatInt(hi, 10))
	}
	return argspec.Value{}, argerr.Newf(argerr.KindTypeMismatch, "", raw, "'%s' is not a valid integer", raw)
}

// rejection classifies a validator error: range failures are out-of-range,
// everything else is custom-rejected.
func rejection(arg *argspec.Argument, raw string, err error) error {
	var re *RangeError
	if errors.As(err, &re) {
		ve := argerr.New(argerr.KindOutOfRange, arg.ID, raw, err.Error()).WithRange(re.Min, re.Max)
		ve.Cause = err
		return ve
	}
	ve := argerr.New(argerr.KindCustomRejected, arg.ID, raw, err.Error())
	ve.Cause = err
	return ve
}
