// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sandbox implements the code surface on the right of the workbench.
//
// A template contributes default files and dependencies, user files override
// them and package.json is composed from both. The Workspace shows the files
// in an explorer, edits them in a textarea with line numbers, and renders a
// preview (glamour for markdown, chroma for source) that only changes when
// the run key is pressed. The bundler URL and external resources are shown
// in the navigator and never contacted.
package sandbox
