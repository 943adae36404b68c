// SPDX-License-Identifier: MPL-2.0

// Package config loads argbind's own CLI settings.
//
// Settings come from defaults, an optional config.cue validated against the embedded
// #Config schema, and ARGBIND_* environment variables, in increasing precedence.
package config
