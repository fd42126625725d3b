// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/jeranaias/workbench-tui/internal/clipboard"
	"github.com/jeranaias/workbench-tui/internal/model"
)

// =============================================================================
// ACTIONS
// =============================================================================

// Action is a per-message control.
type Action int

const (
	ActionCopy Action = iota
	ActionHelpful
	ActionNotHelpful
	ActionMore
	ActionReport
	ActionShare
)

// Label returns the rendered label of the action.
func (a Action) Label() string {
	switch a {
	case ActionCopy:
		return "Copy"
	case ActionHelpful:
		return "Helpful"
	case ActionNotHelpful:
		return "Not helpful"
	case ActionMore:
		return "⋯"
	case ActionReport:
		return "Report message"
	case ActionShare:
		return "Share message"
	default:
		return "?"
	}
}

// String returns the log name of the action.
func (a Action) String() string {
	switch a {
	case ActionCopy:
		return "copy"
	case ActionHelpful:
		return "helpful"
	case ActionNotHelpful:
		return "not_helpful"
	case ActionMore:
		return "more"
	case ActionReport:
		return "report"
	case ActionShare:
		return "share"
	default:
		return "unknown"
	}
}

var (
	rowActions  = []Action{ActionCopy, ActionHelpful, ActionNotHelpful, ActionMore}
	menuActions = []Action{ActionReport, ActionShare}
)

// ActionsFor returns the action row for msg. Only assistant messages have
// one; human messages get nil.
func ActionsFor(msg model.Message) []Action {
	if !msg.IsBot() {
		return nil
	}
	return append([]Action(nil), rowActions...)
}

// MenuActions returns the entries of the overflow menu.
func MenuActions() []Action {
	return append([]Action(nil), menuActions...)
}

// ActionLabels returns the labels of actions, in order.
func ActionLabels(actions []Action) []string {
	return lo.Map(actions, func(a Action, _ int) string {
		return a.Label()
	})
}

// =============================================================================
// ACTION SINK
// =============================================================================

// Feedback is a helpfulness rating.
type Feedback int

const (
	FeedbackHelpful Feedback = iota
	FeedbackNotHelpful
)

// String returns the string representation of the rating.
func (f Feedback) String() string {
	if f == FeedbackHelpful {
		return "helpful"
	}
	return "not_helpful"
}

// ActionSink receives feedback, report and share requests. None of them
// change the transcript.
type ActionSink interface {
	Feedback(msg model.Message, rating Feedback)
	Report(msg model.Message)
	Share(msg model.Message)
}

// logPreviewLen caps the content preview attached to sink log lines.
const logPreviewLen = 40

// LogSink is the default sink: it records each request at debug level.
type LogSink struct {
	Logger *zap.Logger
}

// NewLogSink creates a sink writing to logger.
func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{Logger: logger}
}

// Feedback logs the rating.
func (s *LogSink) Feedback(msg model.Message, rating Feedback) {
	s.Logger.Debug("feedback requested",
		zap.String("message_id", msg.ID),
		zap.String("preview", msg.Preview(logPreviewLen)),
		zap.Stringer("rating", rating))
}

// Report logs the request.
func (s *LogSink) Report(msg model.Message) {
	s.Logger.Debug("report requested",
		zap.String("message_id", msg.ID),
		zap.String("preview", msg.Preview(logPreviewLen)))
}

// Share logs the request.
func (s *LogSink) Share(msg model.Message) {
	s.Logger.Debug("share requested",
		zap.String("message_id", msg.ID),
		zap.String("preview", msg.Preview(logPreviewLen)))
}

// =============================================================================
// CLIPBOARD
// =============================================================================

// copyCmd writes the raw content of msg to the clipboard off the event loop.
func copyCmd(w clipboard.Writer, msg model.Message) tea.Cmd {
	id, content := msg.ID, msg.Content
	return func() tea.Msg {
		return CopyResultMsg{MessageID: id, Err: w.WriteText(content)}
	}
}
