// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.InfoLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"chatty", zapcore.InfoLevel, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseLevel(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOptions_Path(t *testing.T) {
	assert.Equal(t, filepath.Join("cfg", DefaultFileName), Options{Dir: "cfg"}.Path())
	assert.Equal(t, "custom.log", Options{Dir: "cfg", File: "custom.log"}.Path())
}

func TestNew_WritesJSONToFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := New(Options{Level: "info", Dir: filepath.Join(dir, "logs")})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("submitted", zap.Int("len", 3))
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "logs", DefaultFileName))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "submitted", entry["msg"])
	assert.Equal(t, "workbench", entry["logger"])
	assert.EqualValues(t, 3, entry["len"])
}

func TestNew_VerboseForcesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verbose.log")
	logger, err := New(Options{Level: "error", File: path, Verbose: true})
	require.NoError(t, err)

	logger.Debug("visible")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Options{Level: "loud", Dir: t.TempDir()})
	assert.Error(t, err)
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
	l := zap.NewExample()
	assert.Same(t, l, OrNop(l))
}
