// SPDX-License-Identifier: MPL-2.0

// Package diag renders parse failures into human-readable text.
//
// Rendering is pure and deterministic: the same error always produces the same text, and
// colour or terminal handling is left to the caller.
package diag

import (
	"strings"

	"github.com/invowk/argbind/pkg/argerr"
	"github.com/invowk/argbind/pkg/argspec"
)

// Describe renders err as a multi-line report. A *argerr.ValidationError anywhere in the
// chain is expanded with the offending argument, the raw value, the accepted values or
// range, a suggestion and the usage hint. Other errors render as their message.
// A nil error renders as "".
func Describe(err error) string {
	if err == nil {
		return ""
	}
	ve, ok := argerr.As(err)
	if !ok {
		return "error: " + err.Error()
	}
	if ve == nil {
		return "error: invalid arguments"
	}

	var b strings.Builder
	b.WriteString("error[")
	b.WriteString(string(ve.Kind))
	b.WriteString("]: ")
	b.WriteString(ve.Message)
	b.WriteByte('\n')

	if ve.Arg != "" {
		detail(&b, "argument", ve.Arg)
	}
	if ve.Raw != "" {
		detail(&b, "value", "'"+ve.Raw+"'")
	}
	if len(ve.Valid) > 0 {
		detail(&b, "possible values", strings.Join(ve.Valid, ", "))
	}
	if ve.HasRange {
		detail(&b, "expected range", Range(ve.Min, ve.Max))
	}
	if ve.Suggestion != "" {
		b.WriteString("\n  tip: a similar ")
		b.WriteString(noun(ve.Kind))
		b.WriteString(" exists: '")
		b.WriteString(ve.Suggestion)
		b.WriteString("'\n")
	}
	if ve.Usage != "" {
		b.WriteByte('\n')
		b.WriteString(ve.Usage)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// Range formats an inclusive range where either bound may be open ("").
func Range(lo, hi string) string {
	switch {
	case lo != "" && hi != "":
		return lo + "..=" + hi
	case lo != "":
		return ">= " + lo
	case hi != "":
		return "<= " + hi
	default:
		return "any"
	}
}

func detail(b *strings.Builder, label, value string) {
	b.WriteString("  ")
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteByte('\n')
}

func noun(k argerr.Kind) string {
	switch k {
	case argerr.KindAmbiguousSubcommand:
		return "subcommand"
	case argerr.KindTypeMismatch:
		return "value"
	default:
		return "argument"
	}
}

// Usage synthesizes a one-line usage hint for the command at path, for example
// "usage: app build [OPTIONS] <TARGET>...". Unknown path elements are ignored from the
// first mismatch on.
func Usage(schema *argspec.Schema, path []string) string {
	if schema == nil {
		return ""
	}
	words := []string{"usage:", schema.Name}
	level := schema
	hasOptions := hasNamed(level.Args)
	for _, name := range path {
		child, ok := level.Command(name)
		if !ok {
			break
		}
		words = append(words, child.Name)
		level = child
		hasOptions = hasOptions || hasNamed(level.Args)
	}

	if hasOptions {
		words = append(words, "[OPTIONS]")
	}
	for _, p := range level.Positionals() {
		words = append(words, placeholder(p))
	}
	if level.HasCommands() {
		if level.SubcommandRequired {
			words = append(words, "<COMMAND>")
		} else {
			words = append(words, "[COMMAND]")
		}
	}
	return strings.Join(words, " ")
}

// hasNamed reports whether any flag or option is declared.
func hasNamed(args []argspec.Argument) bool {
	for i := range args {
		if args[i].Kind != argspec.KindPositional {
			return true
		}
	}
	return false
}

func placeholder(a *argspec.Argument) string {
	name := a.GetValueName()
	var s string
	if a.IsRequired() {
		s = "<" + name + ">"
	} else {
		s = "[" + name + "]"
	}
	if a.IsRepeatable() {
		s += "..."
	}
	return s
}
