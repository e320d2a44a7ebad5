package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/infinite/internal/config"
	"github.com/charmbracelet/infinite/internal/source"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "infinite"}
	registerFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestApplyFlags(t *testing.T) {
	t.Parallel()

	t.Run("unset flags keep config", func(t *testing.T) {
		t.Parallel()
		cfg := config.Default()
		cfg.PageSize = 50
		require.NoError(t, applyFlags(newTestCmd(t), cfg))
		require.Equal(t, 50, cfg.PageSize)
		require.Equal(t, config.DefaultFetchDelay, cfg.Delay())
		require.Equal(t, config.SourceSynthetic, cfg.Source.Kind)
	})

	t.Run("synthetic", func(t *testing.T) {
		t.Parallel()
		cfg := config.Default()
		cmd := newTestCmd(t, "--page-size", "10", "--initial", "5", "--delay", "250ms", "--limit", "100", "-d")
		require.NoError(t, applyFlags(cmd, cfg))
		require.Equal(t, 10, cfg.PageSize)
		require.Equal(t, 5, cfg.InitialRows)
		require.Equal(t, 250*time.Millisecond, cfg.Delay())
		require.Equal(t, 100, cfg.Source.Limit)
		require.True(t, cfg.Debug)
	})

	t.Run("sqlite", func(t *testing.T) {
		t.Parallel()
		cfg := config.Default()
		cmd := newTestCmd(t, "--db", "app.db", "--table", "notes", "--column", "body", "--log-file", "-")
		require.NoError(t, applyFlags(cmd, cfg))
		require.Equal(t, config.SourceSQLite, cfg.Source.Kind)
		require.Equal(t, "app.db", cfg.Source.Path)
		require.Equal(t, "notes", cfg.Source.Table)
		require.Equal(t, "body", cfg.Source.Column)
		require.Equal(t, "-", cfg.LogFile)
		require.NoError(t, cfg.Validate())
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()
		cfg := config.Default()
		require.NoError(t, applyFlags(newTestCmd(t, "--file", "words.txt"), cfg))
		require.Equal(t, config.SourceFile, cfg.Source.Kind)
		require.Equal(t, "words.txt", cfg.Source.Path)
	})
}

func TestApplyFlagsRejectsShortFirstPage(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"--page-size", "50"},
		{"--initial", "0"},
		{"--initial", "5"},
	} {
		cfg := config.Default()
		require.NoError(t, applyFlags(newTestCmd(t, args...), cfg))
		require.ErrorContains(t, cfg.Validate(), "at least the page size", "args %v", args)
	}

	cfg := config.Default()
	require.NoError(t, applyFlags(newTestCmd(t, "--page-size", "50", "--initial", "50"), cfg))
	require.NoError(t, cfg.Validate())
}

func TestSeedRows(t *testing.T) {
	t.Parallel()

	t.Run("initial page", func(t *testing.T) {
		t.Parallel()
		rows, last, err := seedRows(context.Background(), source.NewSynthetic(0), 20)
		require.NoError(t, err)
		require.False(t, last)
		require.Equal(t, 20, rows.Len())
		require.Equal(t, "data : 1", rows.At(0))
		require.Equal(t, "data : 20", rows.At(19))
	})

	t.Run("source smaller than first page", func(t *testing.T) {
		t.Parallel()
		rows, last, err := seedRows(context.Background(), source.NewSynthetic(7), 20)
		require.NoError(t, err)
		require.True(t, last)
		require.Equal(t, 7, rows.Len())
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()
		src := source.NewSynthetic(0)
		rows, last, err := seedRows(context.Background(), src, 0)
		require.NoError(t, err)
		require.False(t, last)
		require.Zero(t, rows.Len())
		require.Zero(t, src.Fetches())
	})
}
