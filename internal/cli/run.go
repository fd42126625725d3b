// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/workbench-tui/internal/clipboard"
	"github.com/jeranaias/workbench-tui/internal/config"
	"github.com/jeranaias/workbench-tui/internal/logging"
	"github.com/jeranaias/workbench-tui/internal/model"
	"github.com/jeranaias/workbench-tui/internal/sandbox"
	"github.com/jeranaias/workbench-tui/internal/storage"
	"github.com/jeranaias/workbench-tui/internal/ui/chat"
	"github.com/jeranaias/workbench-tui/internal/ui/styles"
	"github.com/jeranaias/workbench-tui/internal/ui/workbench"
)

// =============================================================================
// TUI
// =============================================================================

func runTUI(cmd *cobra.Command, flags *Flags) error {
	stderr := cmd.ErrOrStderr()

	cfg, path, err := loadConfig(flags, stderr)
	if err != nil {
		return err
	}

	logger := newLogger(cfg, flags, stderr)
	defer func() { _ = logger.Sync() }()
	logger.Info("starting workbench",
		zap.String("version", Version),
		zap.String("config", path),
		zap.String("template", cfg.Sandbox.Template))

	var prefs styles.PreferenceStore
	if prefsPath, err := storage.DefaultPreferencesPath(); err != nil {
		logger.Warn("preferences unavailable", zap.Error(err))
	} else if p, err := storage.OpenPreferences(prefsPath); err != nil {
		fmt.Fprintf(stderr, "Warning: %v (theme choice will not be saved)\n", err)
		logger.Warn("preferences unavailable", zap.Error(err))
	} else {
		prefs = p
	}

	m, err := newModel(cfg, appDeps{
		Prefs:      prefs,
		Clipboard:  clipboard.Default(),
		Logger:     logger,
		ForceTheme: flags.Theme != "",
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	watcher, err := config.NewWatcher(path, config.DefaultDebounce, func(reloaded *config.Config, err error) {
		if err == nil {
			err = applyFlags(reloaded, flags)
		}
		if err != nil {
			reloaded = nil
		}
		p.Send(workbench.ConfigReloadedMsg{Config: reloaded, Err: err})
	})
	if err == nil {
		err = watcher.Start()
	}
	if err != nil {
		logger.Warn("config watcher disabled", zap.Error(err))
	} else {
		defer watcher.Close()
	}

	if _, err := p.Run(); err != nil {
		logger.Error("program exited with error", zap.Error(err))
		return fmt.Errorf("error running workbench: %w", err)
	}
	logger.Info("workbench exited")
	return nil
}

// newLogger opens the log file. A logger that cannot be built falls back to
// a no-op one, since the UI owns the terminal.
func newLogger(cfg *config.Config, flags *Flags, stderr io.Writer) *zap.Logger {
	dir, _ := config.ConfigDir()
	logger, err := logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Dir:     dir,
		Verbose: flags.Verbose,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v (logging disabled)\n", err)
		return logging.Nop()
	}
	return logger
}

// =============================================================================
// WIRING
// =============================================================================

// appDeps are the collaborators newModel does not derive from the config.
type appDeps struct {
	Prefs     styles.PreferenceStore
	Clipboard clipboard.Writer
	Logger    *zap.Logger
	// ForceTheme applies cfg.UI.Theme over a stored preference.
	ForceTheme bool
}

// newModel builds the root model from an effective config.
func newModel(cfg *config.Config, deps appDeps) (*workbench.Model, error) {
	logger := logging.OrNop(deps.Logger)

	themeID, err := styles.ParseThemeID(cfg.UI.Theme)
	if err != nil {
		return nil, err
	}
	provider := styles.NewProvider(themeID, cfg.UI.StorageKey, deps.Prefs)
	if deps.ForceTheme && provider.ID() != themeID {
		if _, err := provider.Set(themeID); err != nil {
			logger.Warn("theme preference not saved", zap.Error(err))
		}
	}

	surface, err := newSandbox(cfg, provider.Theme(), logger.Named("sandbox"))
	if err != nil {
		return nil, err
	}

	storeOpts := []model.StoreOption{}
	if cfg.Chat.Seed {
		storeOpts = append(storeOpts, model.WithSeed(model.SeedMessages()...))
	}

	return workbench.New(workbench.Options{
		Chat: chat.Options{
			Store:        model.NewStore(storeOpts...),
			Placeholder:  cfg.Chat.Placeholder,
			CharLimit:    cfg.Chat.CharLimit,
			SmoothScroll: cfg.UI.SmoothScroll,
			Clipboard:    deps.Clipboard,
			Logger:       logger.Named("chat"),
		},
		Sandbox:  surface,
		Provider: provider,
		Config:   cfg,
		Logger:   logger,
	}), nil
}

func newSandbox(cfg *config.Config, theme *styles.Theme, logger *zap.Logger) (*sandbox.Workspace, error) {
	tmpl, err := sandbox.ParseTemplate(cfg.Sandbox.Template)
	if err != nil {
		return nil, err
	}
	tab, err := sandbox.ParseTab(cfg.Sandbox.DefaultTab)
	if err != nil {
		return nil, err
	}

	opts := sandbox.DefaultOptions()
	opts.Template = tmpl
	opts.Theme = theme
	opts.Dependencies = cfg.Sandbox.Dependencies
	opts.ExternalResources = cfg.Sandbox.ExternalResources
	opts.BundlerURL = cfg.Sandbox.BundlerURL
	opts.ShowLineNumbers = cfg.Sandbox.ShowLineNumbers
	opts.WrapContent = cfg.Sandbox.WrapContent
	opts.DefaultTab = tab
	opts.Logger = logger

	ws, err := sandbox.New(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build sandbox: %w", err)
	}
	return ws, nil
}
