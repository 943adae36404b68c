// SPDX-License-Identifier: MPL-2.0

package main

import "fmt"

const (
	exitFailure = 1
	// exitUsage is returned when the arguments under test do not match the schema.
	exitUsage = 2
)

// ExitError carries a process exit code through cobra's RunE.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the wrapped message, or a generic one.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}
