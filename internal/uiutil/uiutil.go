// Package uiutil provides helpers for reporting status messages to the UI.
package uiutil

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
)

// DefaultTTL is how long a status message stays up when it sets no TTL.
const DefaultTTL = 5 * time.Second

func CmdHandler(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

func ReportError(err error) tea.Cmd {
	slog.Error("Error reported", "error", err)
	return CmdHandler(InfoMsg{
		Type: InfoTypeError,
		Msg:  err.Error(),
	})
}

type InfoType int

const (
	InfoTypeInfo InfoType = iota
	InfoTypeSuccess
	InfoTypeWarn
	InfoTypeError
)

func ReportInfo(info string) tea.Cmd {
	return CmdHandler(InfoMsg{
		Type: InfoTypeInfo,
		Msg:  info,
	})
}

func ReportSuccess(msg string) tea.Cmd {
	return CmdHandler(InfoMsg{
		Type: InfoTypeSuccess,
		Msg:  msg,
	})
}

func ReportWarn(warn string) tea.Cmd {
	return CmdHandler(InfoMsg{
		Type: InfoTypeWarn,
		Msg:  warn,
	})
}

// ClearStatusAfter clears the status message identified by id once its TTL
// has passed.
func ClearStatusAfter(id int, ttl time.Duration) tea.Cmd {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}

type (
	InfoMsg struct {
		Type InfoType
		Msg  string
		TTL  time.Duration
	}
	// ClearStatusMsg clears the status message with the matching ID. Newer
	// messages are left alone.
	ClearStatusMsg struct {
		ID int
	}
)
