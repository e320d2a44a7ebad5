package uiutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReportError(t *testing.T) {
	t.Parallel()

	msg := ReportError(errors.New("source went away"))()
	require.Equal(t, InfoMsg{Type: InfoTypeError, Msg: "source went away"}, msg)
}

func TestReportLevels(t *testing.T) {
	t.Parallel()

	require.Equal(t, InfoTypeInfo, ReportInfo("a")().(InfoMsg).Type)
	require.Equal(t, InfoTypeSuccess, ReportSuccess("b")().(InfoMsg).Type)
	require.Equal(t, InfoTypeWarn, ReportWarn("c")().(InfoMsg).Type)
}

func TestClearStatusAfter(t *testing.T) {
	t.Parallel()

	cmd := ClearStatusAfter(7, 1)
	require.Equal(t, ClearStatusMsg{ID: 7}, cmd())
}
