package config

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvPageSize    = "INFINITE_PAGE_SIZE"
	EnvInitialRows = "INFINITE_INITIAL_ROWS"
	EnvFetchDelay  = "INFINITE_FETCH_DELAY"
	EnvSource      = "INFINITE_SOURCE"
	EnvSourcePath  = "INFINITE_SOURCE_PATH"
	EnvLimit       = "INFINITE_LIMIT"
	EnvDebug       = "INFINITE_DEBUG"
	EnvLogFile     = "INFINITE_LOG_FILE"
)

// Load builds a configuration from the defaults, the YAML file at path (or
// the default location when path is empty), a .env file in the working
// directory and the environment, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	path = cmp.Or(path, defaultConfigFile())
	if err := loadFile(cfg, path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	} else {
		slog.Debug("Loaded config file", "path", path)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvPageSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvPageSize, err)
		}
		cfg.PageSize = n
	}
	if v := os.Getenv(EnvInitialRows); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvInitialRows, err)
		}
		cfg.InitialRows = n
	}
	if v := os.Getenv(EnvFetchDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvFetchDelay, err)
		}
		cfg.FetchDelay = Duration(d)
	}
	if v := os.Getenv(EnvLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvLimit, err)
		}
		cfg.Source.Limit = n
	}
	if v := os.Getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvDebug, err)
		}
		cfg.Debug = b
	}
	if v := os.Getenv(EnvSource); v != "" {
		cfg.Source.Kind = SourceKind(v)
	}
	cfg.Source.Path = cmp.Or(os.Getenv(EnvSourcePath), cfg.Source.Path)
	cfg.LogFile = cmp.Or(os.Getenv(EnvLogFile), cfg.LogFile)
	return nil
}

// defaultConfigFile returns $XDG_CONFIG_HOME/infinite/infinite.yaml or the
// platform equivalent.
func defaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dir, err = xdg, nil
	}
	if err != nil {
		return appName + ".yaml"
	}
	return filepath.Join(dir, appName, appName+".yaml")
}

// defaultLogFile returns the path of the log file in the data directory.
func defaultLogFile() string {
	return filepath.Join(dataDir(), "logs", appName+".log")
}

func dataDir() string {
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, appName)
	}

	// for windows, it should be in `%LOCALAPPDATA%/infinite/`
	// for linux and macOS, it should be in `$HOME/.local/share/infinite/`
	if runtime.GOOS == "windows" {
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Local")
		}
		return filepath.Join(localAppData, appName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(home, ".local", "share", appName)
}
