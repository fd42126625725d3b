// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeranaias/workbench-tui/internal/sandbox"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Flags holds the persistent flag values shared by every command.
type Flags struct {
	ConfigPath string
	Theme      string
	Template   string
	Verbose    bool
	NoSeed     bool
}

// NewRootCommand builds the command tree. Each call returns a fresh tree with
// its own flag state.
func NewRootCommand() *cobra.Command {
	flags := &Flags{}

	root := &cobra.Command{
		Use:   "workbench",
		Short: "Chat and code sandbox in one terminal",
		Long: `workbench is a two-pane terminal UI: a chat transcript with a composer on
the left, a file explorer, editor and preview on the right.

The config file is watched while the UI runs; saving it applies the change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, flags)
		},
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.ConfigPath, "config", "c", "", "Config file (default ~/.workbench/config.toml)")
	pf.StringVar(&flags.Theme, "theme", "", "Theme: dark, light, system")
	pf.StringVar(&flags.Template, "template", "", "Sandbox template: "+sandbox.TemplateNames())
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVar(&flags.NoSeed, "no-seed", false, "Start with an empty transcript")

	root.Version = Version
	root.SetVersionTemplate(versionTemplate())

	root.AddCommand(newVersionCommand())
	root.AddCommand(newConfigCommand(flags))
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func versionTemplate() string {
	return versionString() + "\n"
}

func versionString() string {
	if GitCommit != "unknown" && GitCommit != "" {
		return fmt.Sprintf("workbench %s\n  commit: %s\n  built:  %s", Version, GitCommit, BuildDate)
	}
	return fmt.Sprintf("workbench %s", Version)
}
