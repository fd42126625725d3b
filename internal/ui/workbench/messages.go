// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package workbench

import (
	"github.com/jeranaias/workbench-tui/internal/config"
)

// ConfigReloadedMsg is posted by the config watcher after the file changed.
// Err is set when the new file could not be loaded; Config is then nil.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}
