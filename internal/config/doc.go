// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for the
// workbench.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - UIConfig: Theme id, preference storage key, scrolling
//   - ChatConfig: Composer placeholder, demo seed, draft limit
//   - SandboxConfig: Template, bundler URL, resources, dependencies
//   - Watcher: fsnotify-based hot reload of the config file
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Command-line flags (applied by the cli package)
//   - Environment variables (WORKBENCH_*)
//   - ~/.workbench/config.toml
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
//	}
//
// Watch for edits:
//
//	w, err := config.NewWatcher(path, config.DefaultDebounce, func(cfg *config.Config, err error) {
//	    program.Send(reloadMsg{cfg, err})
//	})
//	defer w.Close()
package config
