// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "WORKBENCH"

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// envOverrides lists the supported variables. Empty values leave the config
// untouched.
type envOverrides struct {
	Theme      string `envconfig:"THEME"`
	Template   string `envconfig:"TEMPLATE"`
	BundlerURL string `envconfig:"BUNDLER_URL"`
	LogLevel   string `envconfig:"LOG_LEVEL"`
	LogFile    string `envconfig:"LOG_FILE"`
}

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - WORKBENCH_THEME: overrides ui.theme
//   - WORKBENCH_TEMPLATE: overrides sandbox.template
//   - WORKBENCH_BUNDLER_URL: overrides sandbox.bundler_url
//   - WORKBENCH_LOG_LEVEL: overrides logging.level
//   - WORKBENCH_LOG_FILE: overrides logging.file
func (c *Config) ApplyEnvOverrides() error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("failed to read environment overrides: %w", err)
	}

	if env.Theme != "" {
		c.UI.Theme = env.Theme
	}
	if env.Template != "" {
		c.Sandbox.Template = env.Template
	}
	if env.BundlerURL != "" {
		c.Sandbox.BundlerURL = env.BundlerURL
	}
	if env.LogLevel != "" {
		c.Logging.Level = env.LogLevel
	}
	if env.LogFile != "" {
		c.Logging.File = env.LogFile
	}
	return nil
}

// EnvUsage returns the override variable names for help output.
func EnvUsage() []string {
	return []string{
		EnvPrefix + "_THEME",
		EnvPrefix + "_TEMPLATE",
		EnvPrefix + "_BUNDLER_URL",
		EnvPrefix + "_LOG_LEVEL",
		EnvPrefix + "_LOG_FILE",
	}
}
