package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/infinite/internal/config"
	"github.com/charmbracelet/infinite/internal/log"
	"github.com/charmbracelet/infinite/internal/source"
	"github.com/charmbracelet/infinite/internal/ui/common"
	"github.com/charmbracelet/infinite/internal/ui/feed"
	"github.com/charmbracelet/infinite/internal/ui/model"
	"github.com/charmbracelet/infinite/internal/version"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func init() {
	registerFlags(rootCmd)
}

func registerFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Config file to read instead of the default one")
	cmd.Flags().Int("page-size", config.DefaultPageSize, "Rows requested per page")
	cmd.Flags().Int("initial", config.DefaultInitialRows, "Rows loaded before the screen opens")
	cmd.Flags().Duration("delay", config.DefaultFetchDelay, "Simulated latency of each page fetch")
	cmd.Flags().Int("limit", 0, "Total rows of the synthetic source, 0 for endless")
	cmd.Flags().String("file", "", "Read rows from a text file, one per line")
	cmd.Flags().String("db", "", "Read rows from a SQLite database")
	cmd.Flags().String("table", "", "Table to read with --db")
	cmd.Flags().String("column", "", "Column to read with --db")
	cmd.Flags().BoolP("debug", "d", false, "Debug")
	cmd.Flags().String("log-file", "", `Log file, or "-" for stderr`)
	cmd.MarkFlagsMutuallyExclusive("file", "db")
}

var rootCmd = &cobra.Command{
	Use:   "infinite",
	Short: "Scroll an endless list",
	Long: heredoc.Doc(`
		Infinite shows a list of rows and loads the next page whenever
		you scroll to the end of it.
		Rows come from a synthetic generator, a text file or a SQLite table.
	`),
	Example: heredoc.Doc(`
		# Endless synthetic rows, a new page every four seconds
		infinite

		# Read a file without artificial latency
		infinite --file words.txt --delay 0

		# Page through a SQLite table
		infinite --db app.db --table notes --column body
	`),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log.Setup(cfg.LogFile, cfg.Debug)

		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return errors.New("infinite needs a terminal to draw its list")
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer cancel()
		return run(ctx, cfg)
	},
}

// Execute runs the root command.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Version),
	); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration and applies the flags the user set on
// top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("page-size") {
		cfg.PageSize, err = flags.GetInt("page-size")
	}
	if err == nil && flags.Changed("initial") {
		cfg.InitialRows, err = flags.GetInt("initial")
	}
	if err == nil && flags.Changed("delay") {
		var d time.Duration
		d, err = flags.GetDuration("delay")
		cfg.FetchDelay = config.Duration(d)
	}
	if err == nil && flags.Changed("limit") {
		cfg.Source.Kind = config.SourceSynthetic
		cfg.Source.Limit, err = flags.GetInt("limit")
	}
	if err == nil && flags.Changed("file") {
		cfg.Source.Kind = config.SourceFile
		cfg.Source.Path, err = flags.GetString("file")
	}
	if err == nil && flags.Changed("db") {
		cfg.Source.Kind = config.SourceSQLite
		cfg.Source.Path, err = flags.GetString("db")
	}
	if err == nil && flags.Changed("table") {
		cfg.Source.Table, err = flags.GetString("table")
	}
	if err == nil && flags.Changed("column") {
		cfg.Source.Column, err = flags.GetString("column")
	}
	if err == nil && flags.Changed("debug") {
		cfg.Debug, err = flags.GetBool("debug")
	}
	if err == nil && flags.Changed("log-file") {
		cfg.LogFile, err = flags.GetString("log-file")
	}
	return err
}

func run(ctx context.Context, cfg *config.Config) error {
	src, closer, err := source.Open(ctx, cfg.Source)
	if err != nil {
		return fmt.Errorf("failed to open %s source: %w", cfg.Source.Kind, err)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close source", "error", err)
		}
	}()

	rows, last, err := seedRows(ctx, src, cfg.InitialRows)
	if err != nil {
		return fmt.Errorf("failed to load initial rows: %w", err)
	}
	slog.Info("Starting", "source", cfg.Source.Kind, "rows", rows.Len(), "page_size", cfg.PageSize, "delay", cfg.Delay())

	m := model.New(common.NewCommon(cfg), source.Delayed(src, cfg.Delay()), rows)
	defer m.Close()
	if last {
		m.Exhaust()
	}

	program := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}

// seedRows loads the first n rows straight from src, without the simulated
// latency. It reports whether src already ran out.
func seedRows(ctx context.Context, src source.Source, n int) (*feed.Rows, bool, error) {
	if n == 0 {
		return feed.NewRows(), false, nil
	}
	page, err := src.Fetch(ctx, 0, n)
	if err != nil {
		return nil, false, err
	}
	return feed.NewRows(page.Rows...), page.Last, nil
}
