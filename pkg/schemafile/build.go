// SPDX-License-Identifier: MPL-2.0

package schemafile

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/invowk/argbind/pkg/argerr"
	"github.com/invowk/argbind/pkg/argspec"
	"github.com/invowk/argbind/pkg/coerce"
	"github.com/invowk/argbind/pkg/router"
)

// Build converts the document into a validated schema. Problems in the file, whether
// they come from conversion or from schema validation, are returned as argerr.SchemaErrors.
func (d *Document) Build() (*argspec.Schema, error) {
	var errs argerr.SchemaErrors
	root := buildCommand(d.command(), d.Name, &errs)
	if err := errs.OrNil(); err != nil {
		return nil, err
	}
	if err := router.Validate(root); err != nil {
		return nil, err
	}
	return root, nil
}

// LoadSchema loads the file at path and builds it.
func LoadSchema(path string) (*argspec.Schema, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return doc.Build()
}

func buildCommand(c CommandDoc, where string, errs *argerr.SchemaErrors) *argspec.Schema {
	s := &argspec.Schema{
		Name:               c.Name,
		Description:        c.Description,
		SubcommandRequired: c.SubcommandRequired,
	}
	for _, group := range c.Exclusive {
		s.Exclusive = append(s.Exclusive, append([]string(nil), group...))
	}
	for _, a := range c.Args {
		s.Args = append(s.Args, buildArg(a, where, errs))
	}
	for _, child := range c.Commands {
		s.Commands = append(s.Commands, buildCommand(child, where+" "+child.Name, errs))
	}
	return s
}

func buildArg(a ArgDoc, where string, errs *argerr.SchemaErrors) argspec.Argument {
	field := where + " arg '" + a.ID + "'"
	fail := func(msg string) {
		*errs = append(*errs, argerr.SchemaError{Path: field, Message: msg})
	}

	arg := argspec.Argument{
		ID:           a.ID,
		Kind:         argspec.Kind(a.Kind),
		Long:         a.Long,
		Arity:        argspec.Arity(a.Arity),
		Type:         argspec.ValueType(a.Type),
		Choices:      a.Choices,
		IntBits:      a.IntBits,
		Defaults:     a.Defaults,
		Env:          a.Env,
		EnvDelimiter: a.EnvDelimiter,
		Required:     a.Required,
		Global:       a.Global,
		Description:  a.Description,
		ValueName:    a.ValueName,
	}

	if a.Short != "" {
		r, size := utf8.DecodeRuneInString(a.Short)
		if size != len(a.Short) {
			fail("short name must be a single character, got '" + a.Short + "'")
		}
		arg.Short = r
	}
	if arg.Kind != argspec.KindPositional && arg.Short == 0 && arg.Long == "" {
		arg.Long = arg.ID
	}
	if arg.Type == "" && len(arg.Choices) > 0 {
		arg.Type = argspec.TypeChoice
	}

	if a.Default != nil {
		if len(a.Defaults) > 0 {
			fail("declare either 'default' or 'defaults', not both")
		}
		arg.Defaults = []string{*a.Default}
	}

	if a.Min != nil || a.Max != nil {
		if !arg.GetType().Numeric() {
			fail("min/max need type 'int' or 'float', got '" + string(arg.GetType()) + "'")
		} else if v, problem := rangeValidator(arg.GetType(), a.Min, a.Max); problem != "" {
			fail(problem)
		} else {
			arg.Validators = append(arg.Validators, v)
		}
	}
	if a.Pattern != "" {
		p, err := coerce.Pattern(a.Pattern)
		if err != nil {
			fail(err.Error())
		} else {
			arg.Validators = append(arg.Validators, p)
		}
	}
	if a.DirExists {
		arg.Validators = append(arg.Validators, coerce.DirExists())
	}
	return arg
}

// rangeValidator builds an integer range for int arguments (bounds must be whole numbers)
// and a float range otherwise. A non-empty string reports a problem.
func rangeValidator(t argspec.ValueType, lo, hi *float64) (*coerce.RangeValidator, string) {
	if lo != nil && hi != nil && *lo > *hi {
		return nil, "min " + fmtFloat(*lo) + " is greater than max " + fmtFloat(*hi)
	}
	if t == argspec.TypeInt {
		for _, b := range []*float64{lo, hi} {
			if b == nil {
				continue
			}
			if *b != math.Trunc(*b) {
				return nil, "bound " + fmtFloat(*b) + " is not a whole number"
			}
			if *b >= math.MaxInt64 || *b < math.MinInt64 {
				return nil, "bound " + fmtFloat(*b) + " does not fit in a 64-bit integer"
			}
		}
		switch {
		case lo != nil && hi != nil:
			return coerce.Range(int64(*lo), int64(*hi)), ""
		case lo != nil:
			return coerce.AtLeast(int64(*lo)), ""
		default:
			return coerce.AtMost(int64(*hi)), ""
		}
	}
	switch {
	case lo != nil && hi != nil:
		return coerce.Range(*lo, *hi), ""
	case lo != nil:
		return coerce.AtLeast(*lo), ""
	default:
		return coerce.AtMost(*hi), ""
	}
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
