// SPDX-License-Identifier: MPL-2.0

// Package argerr defines the error taxonomy shared by every stage of the argument engine.
//
// Two families exist and are never mixed:
//
//   - SchemaError / SchemaErrors report a malformed schema. They are programmer errors and
//     must surface at startup, before any argv is parsed.
//   - ValidationError reports bad user input (unknown flag, missing value, wrong type, ...).
//     Parsing is fail-fast, so at most one ValidationError is returned per parse.
//
// Every ValidationError kind wraps a sentinel (ErrUnknownArgument, ErrMissingRequired, ...)
// so callers can branch with errors.Is without inspecting fields.
package argerr
