// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/workbench-tui/internal/config"
	"github.com/jeranaias/workbench-tui/internal/sandbox"
	"github.com/jeranaias/workbench-tui/internal/ui/styles"
)

// =============================================================================
// CONFIG COMMAND
// =============================================================================

func newConfigCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
		Long: `Inspect or create the config file.

Environment overrides: ` + strings.Join(config.EnvUsage(), ", "),
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, _, err := loadConfig(flags, cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), cfg.String())
				return err
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := configPath(flags)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
				return err
			},
		},
		newConfigInitCommand(flags),
	)
	return cmd
}

func newConfigInitCommand(flags *Flags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(flags)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
			}
			if err := config.SaveTo(config.Default(), path); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return err
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

// =============================================================================
// LOADING
// =============================================================================

func configPath(flags *Flags) (string, error) {
	if flags.ConfigPath != "" {
		return flags.ConfigPath, nil
	}
	return config.ConfigPath()
}

// loadConfig resolves the config file and applies the flag overrides. An
// explicit --config file must exist and parse. Problems with the default file
// only produce a warning on stderr.
func loadConfig(flags *Flags, stderr io.Writer) (*config.Config, string, error) {
	path, err := configPath(flags)
	if err != nil {
		return nil, "", err
	}

	var cfg *config.Config
	if flags.ConfigPath != "" {
		if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
			return nil, path, fmt.Errorf("config file not found: %s", path)
		}
		cfg, err = config.LoadFromPath(path)
		if err != nil {
			return nil, path, err
		}
	} else {
		cfg, err = config.Load()
		if err != nil {
			fmt.Fprintf(stderr, "Warning: %v (using defaults)\n", err)
		}
	}

	if err := applyFlags(cfg, flags); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// applyFlags overlays the command-line flags. Flags win over the file and
// the environment.
func applyFlags(cfg *config.Config, flags *Flags) error {
	if flags.Theme != "" {
		id, err := styles.ParseThemeID(flags.Theme)
		if err != nil {
			return fmt.Errorf("--theme: %w", err)
		}
		cfg.UI.Theme = id.String()
	}
	if flags.Template != "" {
		tmpl, err := sandbox.ParseTemplate(flags.Template)
		if err != nil {
			return fmt.Errorf("--template: %w", err)
		}
		cfg.Sandbox.Template = tmpl.String()
	}
	if flags.Verbose {
		cfg.Logging.Level = "debug"
	}
	if flags.NoSeed {
		cfg.Chat.Seed = false
	}
	return cfg.Validate()
}
