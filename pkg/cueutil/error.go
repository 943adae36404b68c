// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

type (
	// Problem is one CUE error located by a JSON-style path such as "commands[0].args.port".
	Problem struct {
		Path    string
		Message string
	}

	// DecodeError lists every problem CUE reported for one file.
	DecodeError struct {
		File     string
		Problems []Problem
		cause    error
	}
)

// Error implements the error interface.
func (e *DecodeError) Error() string {
	lines := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		if p.Path != "" {
			lines[i] = p.Path + ": " + p.Message
		} else {
			lines[i] = p.Message
		}
	}
	if len(lines) == 1 {
		return e.File + ": " + lines[0]
	}
	return fmt.Sprintf("%s: validation failed:\n  %s", e.File, strings.Join(lines, "\n  "))
}

// Unwrap returns the underlying CUE error.
func (e *DecodeError) Unwrap() error {
	return e.cause
}

// FormatError converts a CUE error into a *DecodeError with one Problem per CUE error.
// Errors that are not CUE errors are wrapped with the file name.
func FormatError(err error, file string) error {
	if err == nil {
		return nil
	}
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return fmt.Errorf("%s: %w", file, err)
	}

	de := &DecodeError{File: file, cause: err}
	for _, e := range errs {
		path := JSONPath(cueerrors.Path(e))
		msg := e.Error()
		if path != "" && strings.HasPrefix(msg, path) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, path), ":"))
		}
		de.Problems = append(de.Problems, Problem{Path: path, Message: msg})
	}
	return de
}

// JSONPath renders a CUE selector path, writing numeric elements as indices:
// ["commands", "0", "args"] becomes "commands[0].args".
func JSONPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		if i > 0 && isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
