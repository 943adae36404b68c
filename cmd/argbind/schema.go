// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"io/fs"

	"github.com/invowk/argbind/internal/issue"
	"github.com/invowk/argbind/pkg/argerr"
	"github.com/invowk/argbind/pkg/argspec"
	"github.com/invowk/argbind/pkg/schemafile"
)

// loadSchema loads and validates a schema file, classifying failures for display.
func (a *app) loadSchema(path string) (*argspec.Schema, error) {
	schema, err := schemafile.LoadSchema(path)
	if err == nil {
		a.logger.Debug("schema loaded", "path", path, "commands", countCommands(schema))
		if prefix := a.cfg.Parse.EnvPrefix; prefix != "" {
			applyEnvPrefix(schema, prefix)
		}
		return schema, nil
	}

	ec := issue.NewErrorContext().WithOperation("load schema")
	var schemaErrs argerr.SchemaErrors
	switch {
	case errors.Is(err, fs.ErrNotExist):
		ec.WithIssue(issue.SchemaNotFoundId).WithSuggestion("Check the schema file path")
	case errors.Is(err, schemafile.ErrUnsupportedFormat):
		ec.WithIssue(issue.UnsupportedFormatId).WithSuggestion("Rename the file to .cue, .toml or .hcl")
	case errors.As(err, &schemaErrs):
		ec.WithIssue(issue.SchemaInvalidId).WithSuggestion("Fix the problems listed above, then run 'argbind check' again")
	default:
		ec.WithIssue(issue.SchemaParseErrorId).WithSuggestion("Run with --verbose for guidance on the schema format")
	}
	return nil, ec.Wrap(err).BuildError()
}

// applyEnvPrefix gives every named argument without an environment variable the name
// derived from prefix and its ID.
func applyEnvPrefix(schema *argspec.Schema, prefix string) {
	schema.Walk(func(_ []string, sc *argspec.Schema) {
		for i := range sc.Args {
			arg := &sc.Args[i]
			if arg.Env == "" && arg.Kind != argspec.KindPositional {
				arg.Env = argspec.EnvName(prefix, arg.ID)
			}
		}
	})
}

func countCommands(schema *argspec.Schema) int {
	n := 0
	schema.Walk(func([]string, *argspec.Schema) { n++ })
	return n
}
