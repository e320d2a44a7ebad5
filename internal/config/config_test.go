package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "infinite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := Default()
	require.Equal(t, 20, cfg.PageSize)
	require.Equal(t, 20, cfg.InitialRows)
	require.Equal(t, 4*time.Second, cfg.Delay())
	require.Equal(t, SourceSynthetic, cfg.Source.Kind)
	require.Zero(t, cfg.Source.Limit)
	require.Equal(t, filepath.Join("/tmp/xdg-data", "infinite", "logs", "infinite.log"), cfg.LogFile)
	require.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := writeConfig(t, `
page_size: 50
initial_rows: 60
fetch_delay: 250ms
source:
  kind: sqlite
  path: rows.db
  table: events
  column: title
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 50, cfg.PageSize)
	require.Equal(t, 60, cfg.InitialRows)
	require.Equal(t, 250*time.Millisecond, cfg.Delay())
	require.Equal(t, Source{Kind: SourceSQLite, Path: "rows.db", Table: "events", Column: "title"}, cfg.Source)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingDefaultFileIsFine(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultPageSize, cfg.PageSize)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := writeConfig(t, "fetch_delay: soon\n")
	_, err := Load(path)
	require.ErrorContains(t, err, "invalid duration")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvPageSize, "5")
	t.Setenv(EnvFetchDelay, "1s")
	t.Setenv(EnvLimit, "42")
	t.Setenv(EnvDebug, "true")

	path := writeConfig(t, "page_size: 50\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.PageSize)
	require.Equal(t, time.Second, cfg.Delay())
	require.Equal(t, 42, cfg.Source.Limit)
	require.True(t, cfg.Debug)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvPageSize, "twenty")

	_, err := Load("")
	require.ErrorContains(t, err, EnvPageSize)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero page size", func(c *Config) { c.PageSize = 0 }, "page size"},
		{"no initial rows", func(c *Config) { c.InitialRows = 0 }, "at least the page size 20, got 0"},
		{"initial rows below page size", func(c *Config) { c.PageSize = 50 }, "at least the page size 50, got 20"},
		{"negative delay", func(c *Config) { c.FetchDelay = Duration(-time.Second) }, "fetch delay"},
		{"negative limit", func(c *Config) { c.Source.Limit = -1 }, "source limit"},
		{"file without path", func(c *Config) { c.Source.Kind = SourceFile }, "requires a path"},
		{"sqlite without table", func(c *Config) {
			c.Source = Source{Kind: SourceSQLite, Path: "x.db"}
		}, "table and a column"},
		{"unknown kind", func(c *Config) { c.Source.Kind = "carrier-pigeon" }, "unknown source kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := &Config{PageSize: 20, InitialRows: 20, Source: Source{Kind: SourceSynthetic}}
			tt.mutate(cfg)
			require.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestValidate_InitialRowsCanExceedPageSize(t *testing.T) {
	t.Parallel()

	cfg := &Config{PageSize: 10, InitialRows: 35, Source: Source{Kind: SourceSynthetic}}
	require.NoError(t, cfg.Validate())
}

func TestDurationMarshal(t *testing.T) {
	t.Parallel()

	out, err := yaml.Marshal(struct {
		D Duration `yaml:"d"`
	}{D: Duration(1500 * time.Millisecond)})
	require.NoError(t, err)
	require.Equal(t, "d: 1.5s\n", string(out))
}
