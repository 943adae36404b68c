// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and Markdown guidance for argbind's CLI.
//
// ActionableError carries the operation, the resource and remediation hints. Issue
// holds the longer Markdown help rendered with glamour when a command fails.
package issue
