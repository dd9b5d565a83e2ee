package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	pcerrors "github.com/wexinc/profilecard/internal/errors"
	"github.com/wexinc/profilecard/internal/profile"
)

const (
	// DefaultConfigPath is the default path to the config file relative to the working directory.
	DefaultConfigPath = ".profilecard/config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "PROFILECARD"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	// Environment overrides are applied after decoding by applyEnvOverrides,
	// so a malformed variable is skipped instead of failing the decode.

	return &Loader{v: v}
}

// LoadConfig loads configuration from path, applies defaults, merges
// environment variables and validates the result.
//
// An empty path means DefaultConfigPath, and a missing default file is not
// an error: the built-in defaults and sample profile are used. A path the
// caller named explicitly must exist.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	cfg := NewConfig()

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := l.readInto(cfg, path); err != nil {
			return nil, err
		}
	case errors.Is(statErr, os.ErrNotExist) && !explicit:
		// Defaults only.
	case errors.Is(statErr, os.ErrNotExist):
		return nil, &LoadError{
			Path:    path,
			Message: "config file not found",
			Err:     pcerrors.ConfigNotFound(path),
		}
	default:
		return nil, &LoadError{Path: path, Message: "cannot access config file", Err: statErr}
	}

	l.applyEnvOverrides(cfg)

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

func (l *Loader) readInto(cfg *Config, path string) error {
	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return &LoadError{
			Path:    path,
			Message: "failed to read config file",
			Err:     pcerrors.ConfigParseError(path, err),
		}
	}

	// A profile in the file replaces the sample as a whole rather than
	// being merged field by field into it.
	if l.v.IsSet("profile") {
		cfg.Profile = profile.Record{}
	}

	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     pcerrors.ConfigParseError(path, err),
		}
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Values that fail to parse are ignored.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	// Animation settings
	if v := os.Getenv(EnvPrefix + "_ANIMATION_SPEED"); v != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			cfg.Animation.Speed = f
		}
	}
	if v := os.Getenv(EnvPrefix + "_ANIMATION_DISABLED"); v != "" {
		cfg.Animation.Disabled = parseBool(v)
	}

	// Profile settings
	if v := os.Getenv(EnvPrefix + "_PROFILE_NAME"); v != "" {
		cfg.Profile.Name = v
	}
	if v := os.Getenv(EnvPrefix + "_PROFILE_TITLE"); v != "" {
		cfg.Profile.Title = v
	}
	if v := os.Getenv(EnvPrefix + "_PROFILE_LOCATION"); v != "" {
		cfg.Profile.Location = v
	}

	// UI settings
	if v := os.Getenv(EnvPrefix + "_UI_ALT_SCREEN"); v != "" {
		cfg.UI.AltScreen = parseBool(v)
	}
	if v := os.Getenv(EnvPrefix + "_UI_MOUSE"); v != "" {
		cfg.UI.Mouse = parseBool(v)
	}

	// Log settings
	if v := os.Getenv(EnvPrefix + "_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_JSON"); v != "" {
		cfg.Log.JSON = parseBool(v)
	}
	if v := os.Getenv(EnvPrefix + "_HOOKS_ON_EDIT"); v != "" {
		cfg.Hooks.OnEdit = v
	}
	if v := os.Getenv(EnvPrefix + "_HOOKS_ON_CREATE"); v != "" {
		cfg.Hooks.OnCreate = v
	}
}

// parseBool parses a string as a boolean value.
// Returns true for "true", "1", "yes" (case-insensitive).
// Returns false for anything else.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// viperDecodeHook lets skills be written as a comma separated string as
// well as a YAML list, and durations as "30s".
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		trimSpaceHookFunc(),
	)
}

// trimSpaceHookFunc trims whitespace around elements produced by the
// comma split, so "Go, Rust" decodes to ["Go", "Rust"].
func trimSpaceHookFunc() mapstructure.DecodeHookFuncKind {
	return func(from, to reflect.Kind, data any) (any, error) {
		if from != reflect.Slice || to != reflect.Slice {
			return data, nil
		}
		items, ok := data.([]string)
		if !ok {
			return data, nil
		}
		out := make([]string, 0, len(items))
		for _, s := range items {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out, nil
	}
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, it uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// Save writes cfg as YAML to path, creating parent directories. An empty
// path means DefaultConfigPath.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
