// SPDX-License-Identifier: MPL-2.0

package argspec

import (
	"errors"
	"fmt"
)

const (
	// KindFlag is a boolean switch that takes no value token.
	KindFlag Kind = "flag"
	// KindOption is a named argument that takes a value.
	KindOption Kind = "option"
	// KindPositional is an argument bound by position.
	KindPositional Kind = "positional"
)

const (
	// ArityExactlyOne binds exactly one value.
	ArityExactlyOne Arity = "exactly-one"
	// ArityZeroOrOne binds at most one value.
	ArityZeroOrOne Arity = "zero-or-one"
	// ArityZeroOrMore binds any number of values, in first-seen order.
	ArityZeroOrMore Arity = "zero-or-more"
	// ArityOneOrMore binds at least one value, in first-seen order.
	ArityOneOrMore Arity = "one-or-more"
)

const (
	// TypeString accepts any text.
	TypeString ValueType = "string"
	// TypeInt is a base-10 signed integer of width Argument.IntBits.
	TypeInt ValueType = "int"
	// TypeBool accepts a fixed set of boolean literals.
	TypeBool ValueType = "bool"
	// TypePath is a filesystem path; existence is not checked.
	TypePath ValueType = "path"
	// TypeChoice is an exact, case-sensitive match against Argument.Choices.
	TypeChoice ValueType = "choice"
	// TypeFloat is a 64-bit floating-point number.
	TypeFloat ValueType = "float"
	// TypeCustom is text whose acceptance is decided entirely by Argument.Validators.
	TypeCustom ValueType = "custom"
)

var (
	// ErrInvalidKind is returned when a Kind value is not one of the defined kinds.
	ErrInvalidKind = errors.New("invalid argument kind")
	// ErrInvalidArity is returned when an Arity value is not one of the defined arities.
	ErrInvalidArity = errors.New("invalid arity")
	// ErrInvalidValueType is returned when a ValueType value is not one of the defined types.
	ErrInvalidValueType = errors.New("invalid value type")
)

type (
	// Kind is the lexical role of an argument.
	Kind string

	// Arity is how many values an argument may or must bind to.
	Arity string

	// ValueType is the type tag the coercer switches on.
	ValueType string

	// InvalidKindError is returned when a Kind value is not recognized.
	// It wraps ErrInvalidKind for errors.Is() compatibility.
	InvalidKindError struct {
		Value Kind
	}

	// InvalidArityError is returned when an Arity value is not recognized.
	// It wraps ErrInvalidArity for errors.Is() compatibility.
	InvalidArityError struct {
		Value Arity
	}

	// InvalidValueTypeError is returned when a ValueType value is not recognized.
	// It wraps ErrInvalidValueType for errors.Is() compatibility.
	InvalidValueTypeError struct {
		Value ValueType
	}
)

// Error implements the error interface for InvalidKindError.
func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid argument kind %q (valid: flag, option, positional)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidKindError) Unwrap() error {
	return ErrInvalidKind
}

// IsValid returns whether the Kind is one of the defined kinds,
// and a list of validation errors if it is not.
func (k Kind) IsValid() (bool, []error) {
	switch k {
	case KindFlag, KindOption, KindPositional:
		return true, nil
	default:
		return false, []error{&InvalidKindError{Value: k}}
	}
}

// String returns the string representation of the Kind.
func (k Kind) String() string { return string(k) }

// Error implements the error interface for InvalidArityError.
func (e *InvalidArityError) Error() string {
	return fmt.Sprintf("invalid arity %q (valid: exactly-one, zero-or-one, zero-or-more, one-or-more)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidArityError) Unwrap() error {
	return ErrInvalidArity
}

// IsValid returns whether the Arity is one of the defined arities,
// and a list of validation errors if it is not.
// Note: the zero value ("") is valid; Argument.GetArity resolves it per kind.
func (a Arity) IsValid() (bool, []error) {
	switch a {
	case ArityExactlyOne, ArityZeroOrOne, ArityZeroOrMore, ArityOneOrMore, "":
		return true, nil
	default:
		return false, []error{&InvalidArityError{Value: a}}
	}
}

// Min returns the minimum number of values the arity demands.
func (a Arity) Min() int {
	switch a {
	case ArityExactlyOne, ArityOneOrMore:
		return 1
	default:
		return 0
	}
}

// Unbounded reports whether the arity accepts any number of values.
func (a Arity) Unbounded() bool {
	return a == ArityZeroOrMore || a == ArityOneOrMore
}

// String returns the string representation of the Arity.
func (a Arity) String() string { return string(a) }

// Error implements the error interface for InvalidValueTypeError.
func (e *InvalidValueTypeError) Error() string {
	return fmt.Sprintf("invalid value type %q (valid: string, int, bool, path, choice, float, custom)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidValueTypeError) Unwrap() error {
	return ErrInvalidValueType
}

// IsValid returns whether the ValueType is one of the defined types,
// and a list of validation errors if it is not.
// Note: the zero value ("") is valid; Argument.GetType resolves it per kind.
func (t ValueType) IsValid() (bool, []error) {
	switch t {
	case TypeString, TypeInt, TypeBool, TypePath, TypeChoice, TypeFloat, TypeCustom, "":
		return true, nil
	default:
		return false, []error{&InvalidValueTypeError{Value: t}}
	}
}

// Numeric reports whether values of the type are numbers.
func (t ValueType) Numeric() bool {
	return t == TypeInt || t == TypeFloat
}

// String returns the string representation of the ValueType.
func (t ValueType) String() string { return string(t) }
