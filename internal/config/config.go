// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"github.com/spf13/viper"

	"github.com/invowk/argbind/internal/issue"
	"github.com/invowk/argbind/pkg/cueutil"
)

const (
	// AppName is the application name.
	AppName = "argbind"
	// ConfigFileName is the config file name inside the config directory.
	ConfigFileName = "config.cue"
	// EnvPrefix prefixes environment overrides, e.g. ARGBIND_OUTPUT_FORMAT.
	EnvPrefix = "ARGBIND"
)

//go:embed config_schema.cue
var configSchema []byte

// ConfigDir returns the argbind configuration directory under the platform's user
// config root ($XDG_CONFIG_HOME, ~/Library/Application Support or %AppData%).
//
//nolint:revive // ConfigDir reads better than Dir at call sites
func ConfigDir() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(root, AppName), nil
}

// loadWithOptions loads configuration without touching package state. It returns the
// config file actually read, or "" when only defaults and the environment applied.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("output.format", string(defaults.Output.Format))
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.color", string(defaults.UI.Color))
	v.SetDefault("parse.env_prefix", defaults.Parse.EnvPrefix)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, explicit, err := resolvePath(opts)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		if !fileExists(path) {
			if explicit {
				return nil, "", issue.NewErrorContext().
					WithOperation("load configuration").
					WithResource(path).
					WithSuggestion("Verify the file path is correct").
					WithIssue(issue.ConfigLoadFailedId).
					Wrap(fmt.Errorf("config file not found: %s", path)).
					BuildError()
			}
			path = ""
		} else if err := loadCUEIntoViper(v, path); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the values match the #Config schema").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithSuggestion("Check " + EnvPrefix + "_* environment variables").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(err).
			BuildError()
	}
	return &cfg, path, nil
}

// resolvePath picks the config file: an explicit path, or config.cue in the config
// directory. explicit reports whether a missing file is an error.
func resolvePath(opts LoadOptions) (path string, explicit bool, err error) {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath, true, nil
	}
	dir := opts.ConfigDirPath
	if dir == "" {
		dir, err = ConfigDir()
		if err != nil {
			// No home directory: run on defaults and the environment.
			return "", false, nil //nolint:nilerr // a missing config root is not fatal
		}
	}
	return filepath.Join(dir, ConfigFileName), false, nil
}

// loadCUEIntoViper validates a CUE file against #Config and merges it into v.
// Fields are optional, so the unified value is checked with Concrete(false) and
// decoded to a map rather than a struct.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	unified, err := cueutil.Unify(configSchema, data, "#Config", path)
	if err != nil {
		return err
	}
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return cueutil.FormatError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return cueutil.FormatError(err, path)
	}
	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil && !info.IsDir()
}
