// SPDX-License-Identifier: MPL-2.0

// Package router resolves a subcommand path and binds every argument along it.
//
// Route walks the command tree one level at a time. At each level flags and options are
// matched against the level's own arguments plus the globals of every ancestor; the first
// positional naming a child selects it and the remaining tokens move down. Environment
// fallbacks, defaults, required checks and coercion run once, after the path is known.
package router

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/invowk/argbind/pkg/argerr"
	"github.com/invowk/argbind/pkg/argspec"
	"github.com/invowk/argbind/pkg/binder"
	"github.com/invowk/argbind/pkg/coerce"
	"github.com/invowk/argbind/pkg/diag"
	"github.com/invowk/argbind/pkg/lexer"
)

// Parse validates schema, tokenizes argv (without the program name) and routes it.
// Schema problems are returned as argerr.SchemaErrors; input problems as
// *argerr.ValidationError.
//
// Parse is meant for one-shot use. Validation re-coerces every default in the tree, so
// callers that bind more than one vector should call Validate once and then Route.
func Parse(schema *argspec.Schema, argv []string, lookup binder.LookupFunc) (*binder.BoundSet, error) {
	if err := Validate(schema); err != nil {
		return nil, err
	}
	return Route(schema, lexer.Tokenize(argv), lookup)
}

// Route binds tokens against schema, descending into subcommands. The schema is assumed
// valid; call Validate once at startup.
func Route(schema *argspec.Schema, tokens []lexer.Token, lookup binder.LookupFunc) (*binder.BoundSet, error) {
	if schema == nil {
		return nil, errors.New("router: nil schema")
	}

	s := binder.NewSession(lookup)
	var (
		inherited []*argspec.Argument
		path      []string
	)
	level := schema
	for {
		sel, err := s.Level(level, inherited, tokens, true)
		if err != nil {
			return nil, withUsage(err, schema, path)
		}
		if sel == binder.NoSelector {
			if level.HasCommands() && level.SubcommandRequired {
				ve := argerr.New(argerr.KindMissingRequired, "", "",
					"a subcommand is required but none was supplied").
					WithValid(level.CommandNames())
				return nil, withUsage(ve, schema, path)
			}
			break
		}

		name := tokens[sel].Value
		child, _ := level.Command(name)
		inherited = append(slices.Clone(inherited), level.Globals()...)
		path = append(path, name)
		s.Descend(name)
		tokens = tokens[sel+1:]
		level = child
	}

	bound, err := s.Finish()
	if err != nil {
		return nil, withUsage(err, schema, declaringPath(schema, path, err))
	}
	return bound, nil
}

// Validate checks the schema structure and that every declared default coerces to its
// argument's type and passes its validators.
func Validate(schema *argspec.Schema) error {
	if schema == nil {
		return errors.New("router: nil schema")
	}
	if err := schema.Validate(); err != nil {
		return err
	}

	var errs argerr.SchemaErrors
	schema.Walk(func(path []string, sc *argspec.Schema) {
		for i := range sc.Args {
			arg := &sc.Args[i]
			for _, d := range arg.Defaults {
				if _, err := coerce.Coerce(d, arg); err != nil {
					where := strings.Join(append([]string{schema.Name}, path...), " ")
					errs = append(errs, argerr.SchemaError{
						Path:    fmt.Sprintf("%s: argument %q: default", where, arg.ID),
						Message: err.Error(),
					})
				}
			}
		}
	})
	return errs.OrNil()
}

// withUsage attaches the usage hint of the command at path to a validation error.
func withUsage(err error, schema *argspec.Schema, path []string) error {
	if ve, ok := argerr.As(err); ok {
		ve.WithUsage(diag.Usage(schema, path))
	}
	return err
}

// declaringPath returns the prefix of path that ends at the level declaring the failing
// argument, or the whole path when the error names no argument.
func declaringPath(schema *argspec.Schema, path []string, err error) []string {
	ve, ok := argerr.As(err)
	if !ok || ve.Arg == "" {
		return path
	}
	level := schema
	for i := 0; ; i++ {
		if _, ok := level.Arg(ve.Arg); ok {
			return path[:i]
		}
		if i == len(path) {
			return path
		}
		child, ok := level.Command(path[i])
		if !ok {
			return path
		}
		level = child
	}
}
