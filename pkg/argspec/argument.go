// SPDX-License-Identifier: MPL-2.0

package argspec

import (
	"strings"
	"unicode"
)

type (
	// Validator further checks a value after type coercion succeeded.
	// Implementations must be pure and safe for concurrent use.
	Validator interface {
		Validate(v Value) error
	}

	// Argument is one declared argument of a schema.
	Argument struct {
		// ID identifies the argument in the BoundSet. Unique along every
		// root-to-leaf path of the command tree.
		ID string `json:"id"`
		// Kind is the lexical role (flag, option, positional).
		Kind Kind `json:"kind"`
		// Short is an optional single-character name (-v). Zero means none.
		Short rune `json:"-"`
		// Long is an optional word name (--verbose).
		Long string `json:"long,omitempty"`
		// Arity is how many values may bind (defaults per kind, see GetArity).
		Arity Arity `json:"arity,omitempty"`
		// Type is the value type tag (defaults per kind, see GetType).
		Type ValueType `json:"type,omitempty"`
		// Choices is the ordered variant set of a TypeChoice argument.
		Choices []string `json:"choices,omitempty"`
		// IntBits is the target integer width (8, 16, 32 or 64). Zero means 64.
		IntBits int `json:"int_bits,omitempty"`
		// Defaults holds the default raw values; nil means no default.
		Defaults []string `json:"defaults,omitempty"`
		// Env names the environment variable consulted when argv does not supply the argument.
		Env string `json:"env,omitempty"`
		// EnvDelimiter splits an environment value into several values for repeatable arguments.
		EnvDelimiter string `json:"env_delimiter,omitempty"`
		// Required demands a value from some source.
		Required bool `json:"required,omitempty"`
		// Global makes the argument visible at every level below the declaring schema.
		Global bool `json:"global,omitempty"`
		// Validators run in order after type coercion.
		Validators []Validator `json:"-"`
		// Description is help text; the engine only uses it for usage hints.
		Description string `json:"description,omitempty"`
		// ValueName is the placeholder shown in usage lines (defaults to the upper-cased ID).
		ValueName string `json:"value_name,omitempty"`
	}
)

// GetArity returns the effective arity: flags and options default to zero-or-one,
// positionals to exactly-one.
func (a *Argument) GetArity() Arity {
	if a.Arity != "" {
		return a.Arity
	}
	if a.Kind == KindPositional {
		return ArityExactlyOne
	}
	return ArityZeroOrOne
}

// GetType returns the effective type: flags are bool, everything else defaults to string.
func (a *Argument) GetType() ValueType {
	if a.Type != "" {
		return a.Type
	}
	if a.Kind == KindFlag {
		return TypeBool
	}
	return TypeString
}

// GetIntBits returns the effective integer width.
func (a *Argument) GetIntBits() int {
	if a.IntBits == 0 {
		return 64
	}
	return a.IntBits
}

// IsRepeatable reports whether values accumulate across occurrences.
func (a *Argument) IsRepeatable() bool {
	return a.GetArity().Unbounded()
}

// IsRequired reports whether the argument must end up with a value from some source.
func (a *Argument) IsRequired() bool {
	return a.Required || a.GetArity().Min() > 0
}

// TakesValue reports whether an occurrence on the command line consumes a value token.
func (a *Argument) TakesValue() bool {
	return a.Kind == KindOption
}

// HasDefault reports whether a default is declared.
func (a *Argument) HasDefault() bool {
	return len(a.Defaults) > 0
}

// Display returns the name used in messages: --long, -s or <ID>.
func (a *Argument) Display() string {
	switch {
	case a.Kind == KindPositional:
		return "<" + a.GetValueName() + ">"
	case a.Long != "":
		return "--" + a.Long
	case a.Short != 0:
		return "-" + string(a.Short)
	default:
		return a.ID
	}
}

// GetValueName returns the usage placeholder for the argument's value.
func (a *Argument) GetValueName() string {
	if a.ValueName != "" {
		return a.ValueName
	}
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return '_'
		}
		return r
	}, a.ID))
}

// EnvName derives an environment variable name from a prefix and an argument ID.
// Example: ("APP", "output-file") -> "APP_OUTPUT_FILE".
func EnvName(prefix, id string) string {
	name := strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, id))
	if prefix == "" {
		return name
	}
	return strings.TrimSuffix(prefix, "_") + "_" + name
}
