// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// FormatText prints one "id = value" line per bound argument.
	FormatText OutputFormat = "text"
	// FormatJSON prints the bound set as a JSON document.
	FormatJSON OutputFormat = "json"
	// FormatTOML prints the bound set as a TOML document.
	FormatTOML OutputFormat = "toml"

	// ColorAuto colors output only on terminals.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces colored output.
	ColorAlways ColorMode = "always"
	// ColorNever disables colored output.
	ColorNever ColorMode = "never"
)

var (
	// ErrInvalidOutputFormat is the sentinel wrapped by InvalidOutputFormatError.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidColorMode is the sentinel wrapped by InvalidColorModeError.
	ErrInvalidColorMode = errors.New("invalid color mode")
)

type (
	// OutputFormat selects how `argbind parse` prints results.
	OutputFormat string

	// ColorMode controls terminal styling.
	ColorMode string

	// InvalidOutputFormatError is returned for an unknown OutputFormat.
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// InvalidColorModeError is returned for an unknown ColorMode.
	InvalidColorModeError struct {
		Value ColorMode
	}

	// Config is the complete argbind CLI configuration.
	Config struct {
		Output OutputConfig `json:"output" mapstructure:"output"`
		UI     UIConfig     `json:"ui" mapstructure:"ui"`
		Parse  ParseConfig  `json:"parse" mapstructure:"parse"`
	}

	// OutputConfig configures result printing.
	OutputConfig struct {
		Format OutputFormat `json:"format" mapstructure:"format"`
	}

	// UIConfig configures terminal behavior.
	UIConfig struct {
		Verbose bool      `json:"verbose" mapstructure:"verbose"`
		Color   ColorMode `json:"color" mapstructure:"color"`
	}

	// ParseConfig configures how schemas are bound.
	ParseConfig struct {
		// EnvPrefix, when set, gives every argument without an env var the name
		// EnvName(EnvPrefix, id).
		EnvPrefix string `json:"env_prefix" mapstructure:"env_prefix"`
	}
)

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Format: FormatText},
		UI:     UIConfig{Color: ColorAuto},
	}
}

func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: text, json, toml)", e.Value)
}

func (e *InvalidOutputFormatError) Unwrap() error { return ErrInvalidOutputFormat }

// IsValid reports whether f is a known format.
func (f OutputFormat) IsValid() (bool, []error) {
	switch f {
	case FormatText, FormatJSON, FormatTOML:
		return true, nil
	default:
		return false, []error{&InvalidOutputFormatError{Value: f}}
	}
}

func (e *InvalidColorModeError) Error() string {
	return fmt.Sprintf("invalid color mode %q (valid: auto, always, never)", e.Value)
}

func (e *InvalidColorModeError) Unwrap() error { return ErrInvalidColorMode }

// IsValid reports whether m is a known mode.
func (m ColorMode) IsValid() (bool, []error) {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true, nil
	default:
		return false, []error{&InvalidColorModeError{Value: m}}
	}
}

// Validate checks values that may have bypassed the CUE schema through the environment.
func (c *Config) Validate() error {
	var errs []error
	if ok, fieldErrs := c.Output.Format.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if ok, fieldErrs := c.UI.Color.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	return errors.Join(errs...)
}
