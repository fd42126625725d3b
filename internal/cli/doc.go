// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the workbench command tree.
//
// # Commands
//
//   - workbench: run the TUI
//   - workbench version: print version information
//   - workbench config show: print the effective configuration
//   - workbench config path: print the config file path
//   - workbench config init [--force]: write the default config file
//
// # Global Flags
//
//	--config, -c   Config file (default ~/.workbench/config.toml)
//	--theme        dark, light or system; also saved as the theme preference
//	--template     react-ts, react, vanilla or static
//	--verbose, -v  Debug logging
//	--no-seed      Start with an empty transcript
//
// Precedence is flags, then environment (WORKBENCH_*), then the config file,
// then built-in defaults.
package cli
