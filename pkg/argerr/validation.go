// SPDX-License-Identifier: MPL-2.0

package argerr

import (
	"errors"
	"fmt"
)

const (
	// KindUnknownArgument is an unrecognised flag or a surplus positional.
	KindUnknownArgument Kind = "unknown-argument"
	// KindMissingRequired is a required argument (or an option value) that no source supplied.
	KindMissingRequired Kind = "missing-required"
	// KindTypeMismatch is a raw value that does not parse as the declared type.
	KindTypeMismatch Kind = "type-mismatch"
	// KindOutOfRange is a value outside a declared range or the target integer width.
	KindOutOfRange Kind = "out-of-range"
	// KindCustomRejected is a value refused by a validator after type coercion.
	KindCustomRejected Kind = "custom-rejected"
	// KindDuplicateExclusive is a single-valued argument given twice, or two members of
	// one exclusive group given together.
	KindDuplicateExclusive Kind = "duplicate-exclusive"
	// KindAmbiguousSubcommand is a positional in selector position that names no subcommand.
	KindAmbiguousSubcommand Kind = "ambiguous-subcommand"
)

var (
	// ErrUnknownArgument is wrapped by ValidationErrors of kind KindUnknownArgument.
	ErrUnknownArgument = errors.New("unknown argument")
	// ErrMissingRequired is wrapped by ValidationErrors of kind KindMissingRequired.
	ErrMissingRequired = errors.New("missing required argument")
	// ErrTypeMismatch is wrapped by ValidationErrors of kind KindTypeMismatch.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrOutOfRange is wrapped by ValidationErrors of kind KindOutOfRange.
	ErrOutOfRange = errors.New("value out of range")
	// ErrCustomRejected is wrapped by ValidationErrors of kind KindCustomRejected.
	ErrCustomRejected = errors.New("value rejected")
	// ErrDuplicateExclusive is wrapped by ValidationErrors of kind KindDuplicateExclusive.
	ErrDuplicateExclusive = errors.New("conflicting arguments")
	// ErrAmbiguousSubcommand is wrapped by ValidationErrors of kind KindAmbiguousSubcommand.
	ErrAmbiguousSubcommand = errors.New("unrecognized subcommand")

	// ErrInvalidKind is returned when a Kind value is not one of the defined kinds.
	ErrInvalidKind = errors.New("invalid validation error kind")
)

type (
	// Kind classifies a ValidationError.
	Kind string

	// InvalidKindError is returned when a Kind value is not recognized.
	// It wraps ErrInvalidKind for errors.Is() compatibility.
	InvalidKindError struct {
		Value Kind
	}

	// ValidationError is a user-input failure found while parsing argv.
	//
	// Arg, Raw and Message are always safe to read; the remaining fields are
	// diagnostic extras that the reporter embeds when set.
	ValidationError struct {
		// Kind classifies the failure.
		Kind Kind
		// Arg is the identifier of the offending argument, if any.
		Arg string
		// Raw is the offending raw text (token or value), if any.
		Raw string
		// Message is a human-readable fragment describing the failure.
		Message string

		// Valid lists the accepted values (enumerated choices, known subcommands).
		Valid []string
		// Min and Max hold an inclusive range when Kind is KindOutOfRange and HasRange is set.
		Min, Max string
		// HasRange reports whether Min and Max are meaningful.
		HasRange bool
		// Suggestion is a close match for a misspelled flag or subcommand.
		Suggestion string
		// Usage is a synthesized usage line of the command level where the failure occurred.
		Usage string
		// Cause is the underlying validator error, if any.
		Cause error
	}
)

// Error implements the error interface for InvalidKindError.
func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid validation error kind %q", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidKindError) Unwrap() error {
	return ErrInvalidKind
}

// IsValid returns whether the Kind is one of the defined kinds,
// and a list of validation errors if it is not.
func (k Kind) IsValid() (bool, []error) {
	switch k {
	case KindUnknownArgument, KindMissingRequired, KindTypeMismatch, KindOutOfRange,
		KindCustomRejected, KindDuplicateExclusive, KindAmbiguousSubcommand:
		return true, nil
	default:
		return false, []error{&InvalidKindError{Value: k}}
	}
}

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// Sentinel returns the sentinel error associated with the kind, or nil for an unknown kind.
func (k Kind) Sentinel() error {
	switch k {
	case KindUnknownArgument:
		return ErrUnknownArgument
	case KindMissingRequired:
		return ErrMissingRequired
	case KindTypeMismatch:
		return ErrTypeMismatch
	case KindOutOfRange:
		return ErrOutOfRange
	case KindCustomRejected:
		return ErrCustomRejected
	case KindDuplicateExclusive:
		return ErrDuplicateExclusive
	case KindAmbiguousSubcommand:
		return ErrAmbiguousSubcommand
	default:
		return nil
	}
}

// New creates a ValidationError of the given kind.
func New(kind Kind, arg, raw, message string) *ValidationError {
	return &ValidationError{Kind: kind, Arg: arg, Raw: raw, Message: message}
}

// Newf creates a ValidationError with a formatted message.
func Newf(kind Kind, arg, raw, format string, a ...any) *ValidationError {
	return New(kind, arg, raw, fmt.Sprintf(format, a...))
}

// Error returns a concise single-line message. Use diag.Describe for the full report.
func (e *ValidationError) Error() string {
	if e.Arg != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Arg, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the kind sentinel and, when present, the validator cause.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.Sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// WithUsage sets the usage hint unless one is already present, and returns e.
// The innermost command level wins because it is recorded first.
func (e *ValidationError) WithUsage(usage string) *ValidationError {
	if e.Usage == "" {
		e.Usage = usage
	}
	return e
}

// WithValid records the accepted values and returns e.
func (e *ValidationError) WithValid(valid []string) *ValidationError {
	e.Valid = append([]string(nil), valid...)
	return e
}

// WithRange records an inclusive range and returns e.
func (e *ValidationError) WithRange(lo, hi string) *ValidationError {
	e.Min, e.Max, e.HasRange = lo, hi, true
	return e
}

// WithSuggestion records a did-you-mean candidate and returns e.
func (e *ValidationError) WithSuggestion(s string) *ValidationError {
	e.Suggestion = s
	return e
}

// As extracts a *ValidationError from err's chain.
func As(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
