// SPDX-License-Identifier: MPL-2.0

package argerr

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidSchema is wrapped by every SchemaError.
var ErrInvalidSchema = errors.New("invalid schema")

type (
	// SchemaError is a structural problem in a schema declaration.
	SchemaError struct {
		// Path locates the problem, e.g. "app build arg 'target'".
		Path string
		// Message describes the problem.
		Message string
	}

	// SchemaErrors collects every structural problem found in one validation pass.
	SchemaErrors []SchemaError
)

// Error implements the error interface for SchemaError.
func (e SchemaError) Error() string {
	if e.Path != "" {
		return e.Path + ": " + e.Message
	}
	return e.Message
}

// Unwrap returns ErrInvalidSchema.
func (e SchemaError) Unwrap() error {
	return ErrInvalidSchema
}

// Error implements the error interface by joining all messages.
func (errs SchemaErrors) Error() string {
	switch len(errs) {
	case 0:
		return ""
	case 1:
		return errs[0].Error()
	}

	var b strings.Builder
	b.WriteString("schema has ")
	b.WriteString(strconv.Itoa(len(errs)))
	b.WriteString(" errors:")
	for _, e := range errs {
		b.WriteString("\n  - ")
		b.WriteString(e.Error())
	}
	return b.String()
}

// Unwrap returns ErrInvalidSchema so errors.Is works on the collection.
func (errs SchemaErrors) Unwrap() error {
	if len(errs) == 0 {
		return nil
	}
	return ErrInvalidSchema
}

// OrNil returns errs as an error, or nil when the collection is empty.
func (errs SchemaErrors) OrNil() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}
