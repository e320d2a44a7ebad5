package log

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewHandlerWritesJSONToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "infinite.log")
	logger := slog.New(newHandler(path, slog.LevelDebug))
	logger.Debug("Page requested", "start", 20)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"Page requested"`)
	require.Contains(t, string(data), `"start":20`)
}

func TestNewHandlerRespectsLevel(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "infinite.log")
	handler := newHandler(path, slog.LevelInfo)
	require.False(t, handler.Enabled(t.Context(), slog.LevelDebug))
	require.True(t, handler.Enabled(t.Context(), slog.LevelWarn))
}

func TestRecoverPanicRunsCleanup(t *testing.T) {
	t.Parallel()

	var cleaned bool
	func() {
		defer RecoverPanic("test", func() { cleaned = true })
		panic("boom")
	}()
	require.True(t, cleaned)
}
