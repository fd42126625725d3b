// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for the
// workbench.
//
// Configuration file location: ~/.workbench/config.toml, falling back to
// built-in defaults. Environment overrides are applied last.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/jeranaias/workbench-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete workbench configuration.
type Config struct {
	Version string `toml:"version" validate:"required"`

	UI      UIConfig      `toml:"ui"`
	Chat    ChatConfig    `toml:"chat"`
	Sandbox SandboxConfig `toml:"sandbox"`
	Logging LoggingConfig `toml:"logging"`
}

// UIConfig contains theme and rendering settings.
type UIConfig struct {
	// Theme is the default theme: "dark", "light", "system"
	Theme string `toml:"theme" validate:"oneof=dark light system"`
	// StorageKey is the preference key the selected theme is persisted under
	StorageKey string `toml:"storage_key" validate:"required,max=128"`
	// SmoothScroll animates transcript scrolling
	SmoothScroll bool `toml:"smooth_scroll"`
}

// ChatConfig contains transcript and composer settings.
type ChatConfig struct {
	// Placeholder is shown in the empty composer
	Placeholder string `toml:"placeholder" validate:"max=200"`
	// Seed opens the session with the demo conversation
	Seed bool `toml:"seed"`
	// CharLimit caps the draft length (0 = unlimited)
	CharLimit int `toml:"char_limit" validate:"gte=0,lte=100000"`
}

// SandboxConfig contains editor/preview surface settings.
type SandboxConfig struct {
	// Template selects the default file set: react-ts, react, vanilla, static
	Template string `toml:"template" validate:"oneof=react-ts react vanilla static"`
	// BundlerURL is displayed in the navigator; it is never contacted
	BundlerURL string `toml:"bundler_url" validate:"required,url"`
	// ExternalResources are extra script/style URLs listed by the preview
	ExternalResources []string `toml:"external_resources" validate:"dive,url"`
	// Dependencies are merged into the template's package.json
	Dependencies map[string]string `toml:"dependencies" validate:"dive,keys,required,endkeys,required"`
	// ShowLineNumbers renders a line number gutter in the editor
	ShowLineNumbers bool `toml:"show_line_numbers"`
	// WrapContent wraps long lines in the preview instead of truncating them
	WrapContent bool `toml:"wrap_content"`
	// DefaultTab is the tab shown on start: editor, preview
	DefaultTab string `toml:"default_tab" validate:"oneof=editor preview"`
}

// LoggingConfig contains log output settings.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn, error
	Level string `toml:"level" validate:"oneof=debug info warn error"`
	// File is the log file path (empty = ~/.workbench/workbench.log)
	File string `toml:"file"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		UI: UIConfig{
			Theme:        "dark",
			StorageKey:   "workbench-ui-theme",
			SmoothScroll: true,
		},

		Chat: ChatConfig{
			Placeholder: "Type your message...",
			Seed:        true,
			CharLimit:   0,
		},

		Sandbox: SandboxConfig{
			Template:          "react-ts",
			BundlerURL:        "http://localhost:8080",
			ExternalResources: []string{"https://cdn.tailwindcss.com"},
			Dependencies:      map[string]string{"react-markdown": "latest"},
			ShowLineNumbers:   true,
			WrapContent:       true,
			DefaultTab:        "editor",
		},

		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the workbench configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".workbench"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the default path. A missing file yields the
// defaults. A broken file also yields the defaults, together with the error
// so the caller can warn about it.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return finish(Default(), err)
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		return finish(Default(), nil)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		return finish(Default(), err)
	}
	return cfg, nil
}

// finish applies env overrides and defaults to a fallback config. loadErr is
// passed through for informational purposes.
func finish(cfg *Config, loadErr error) (*Config, error) {
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return cfg, errors.Join(loadErr, err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		// Bad env overrides: drop them rather than run with an invalid config.
		return Default(), errors.Join(loadErr, fmt.Errorf("invalid config: %w", err))
	}
	return cfg, loadErr
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Keys absent from the file keep their default values.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
	}

	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

const fileHeader = `# workbench configuration file
# Generated by workbench - edit with care
#
# The running workbench reloads this file on save.

`

// SaveTo writes the configuration to path atomically.
func SaveTo(cfg *Config, path string) error {
	data, err := cfg.Encode()
	if err != nil {
		return err
	}
	if err := util.AtomicWriteFile(path, append([]byte(fileHeader), data...), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Encode renders the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Fields returns the dotted field names that failed.
func (e ValidateErrors) Fields() []string {
	fields := make([]string, len(e))
	for i, err := range e {
		fields[i] = err.Field
	}
	return fields
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("toml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate validates the configuration and returns ValidateErrors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if err := structValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("failed to validate config: %w", err)
		}
		for _, fe := range verrs {
			errs = append(errs, ValidationError{
				Field:   fieldName(fe.Namespace()),
				Message: describe(fe),
			})
		}
	}

	// Only http(s) bundlers make sense in the navigator.
	if u, err := url.Parse(c.Sandbox.BundlerURL); err == nil && c.Sandbox.BundlerURL != "" {
		if u.Scheme != "http" && u.Scheme != "https" {
			errs = append(errs, ValidationError{
				Field:   "sandbox.bundler_url",
				Message: fmt.Sprintf("scheme must be http or https, got %q", u.Scheme),
			})
		}
	}

	if strings.ContainsAny(c.UI.StorageKey, " \t\n") {
		errs = append(errs, ValidationError{
			Field:   "ui.storage_key",
			Message: "must not contain whitespace",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// fieldName turns "Config.sandbox.external_resources[0]" into
// "sandbox.external_resources[0]".
func fieldName(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("invalid value '%v', must be one of: %s", fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url":
		return fmt.Sprintf("invalid URL '%v'", fe.Value())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// SetDefaults sets default values for any missing or zero-value fields.
// Booleans are left alone: false is a valid choice.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	c.UI.Theme = strings.ToLower(c.UI.Theme)
	if c.UI.StorageKey == "" {
		c.UI.StorageKey = defaults.UI.StorageKey
	}

	if c.Chat.Placeholder == "" {
		c.Chat.Placeholder = defaults.Chat.Placeholder
	}

	if c.Sandbox.Template == "" {
		c.Sandbox.Template = defaults.Sandbox.Template
	}
	c.Sandbox.Template = strings.ToLower(c.Sandbox.Template)
	if c.Sandbox.BundlerURL == "" {
		c.Sandbox.BundlerURL = defaults.Sandbox.BundlerURL
	}
	if c.Sandbox.DefaultTab == "" {
		c.Sandbox.DefaultTab = defaults.Sandbox.DefaultTab
	}
	if c.Sandbox.Dependencies == nil {
		c.Sandbox.Dependencies = make(map[string]string)
	}

	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	c.Logging.Level = strings.ToLower(c.Logging.Level)
}

// String returns the TOML form of the config for display.
func (c *Config) String() string {
	data, err := c.Encode()
	if err != nil {
		return err.Error()
	}
	return string(data)
}
