// SPDX-License-Identifier: MPL-2.0

package binder

import (
	"golang.org/x/exp/slices"

	"github.com/invowk/argbind/pkg/argspec"
)

const (
	// SourceCommandLine means the value came from argv.
	SourceCommandLine Source = iota + 1
	// SourceEnvironment means the value came from the argument's environment variable.
	SourceEnvironment
	// SourceDefault means the value is the declared default.
	SourceDefault
)

type (
	// Source is the provenance of a bound value. It is diagnostic metadata only.
	Source int

	// Bound is the typed result for one argument.
	Bound struct {
		// Arg is the declaration the values were bound for.
		Arg *argspec.Argument
		// Values holds one value for single-valued arguments, or every value in
		// first-seen order for repeatable ones.
		Values []argspec.Value
		// Source is where the values came from.
		Source Source
	}

	// BoundSet maps argument IDs to bound values and records the subcommand path taken.
	// Absent arguments have no entry. The engine keeps no reference to a returned BoundSet.
	BoundSet struct {
		values map[string]Bound
		order  []string
		path   []string
	}
)

// String returns the provenance name used in diagnostics.
func (s Source) String() string {
	switch s {
	case SourceCommandLine:
		return "command-line"
	case SourceEnvironment:
		return "environment"
	case SourceDefault:
		return "default"
	default:
		return "absent"
	}
}

func newBoundSet() *BoundSet {
	return &BoundSet{values: make(map[string]Bound)}
}

func (b *BoundSet) set(id string, bound Bound) {
	if _, exists := b.values[id]; !exists {
		b.order = append(b.order, id)
	}
	b.values[id] = bound
}

// Path returns the subcommand names selected, outermost first. Empty when none.
func (b *BoundSet) Path() []string {
	return slices.Clone(b.path)
}

// IDs returns the IDs of present arguments, root level first, in declaration order.
func (b *BoundSet) IDs() []string {
	return slices.Clone(b.order)
}

// Has reports whether the argument is present.
func (b *BoundSet) Has(id string) bool {
	_, ok := b.values[id]
	return ok
}

// Get returns the bound entry of an argument.
func (b *BoundSet) Get(id string) (Bound, bool) {
	bound, ok := b.values[id]
	if ok {
		bound.Values = slices.Clone(bound.Values)
	}
	return bound, ok
}

// Value returns the first value of an argument.
func (b *BoundSet) Value(id string) (argspec.Value, bool) {
	bound, ok := b.values[id]
	if !ok || len(bound.Values) == 0 {
		return argspec.Value{}, false
	}
	return bound.Values[0], true
}

// Values returns every value of an argument, in first-seen order.
func (b *BoundSet) Values(id string) []argspec.Value {
	return slices.Clone(b.values[id].Values)
}

// Source returns the provenance of an argument; zero when absent.
func (b *BoundSet) Source(id string) Source {
	return b.values[id].Source
}

// String returns the canonical text of the first value, or "" when absent.
func (b *BoundSet) String(id string) string {
	v, ok := b.Value(id)
	if !ok {
		return ""
	}
	return v.String()
}

// Strings returns the canonical text of every value.
func (b *BoundSet) Strings(id string) []string {
	vals := b.values[id].Values
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.String()
	}
	return out
}

// Int returns the first value as an integer, or 0 when absent.
func (b *BoundSet) Int(id string) int64 {
	v, _ := b.Value(id)
	return v.Int()
}

// Float returns the first value as a float, or 0 when absent.
func (b *BoundSet) Float(id string) float64 {
	v, _ := b.Value(id)
	return v.Float()
}

// Bool returns the first value as a boolean, or false when absent.
func (b *BoundSet) Bool(id string) bool {
	v, _ := b.Value(id)
	return v.Bool()
}

// Count returns how many true values a flag collected (-vvv yields 3).
// For non-boolean arguments it returns the number of values.
func (b *BoundSet) Count(id string) int {
	n := 0
	for _, v := range b.values[id].Values {
		if v.Type() != argspec.TypeBool || v.Bool() {
			n++
		}
	}
	return n
}
