// Package config holds the settings for the list screen and its data source.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const appName = "infinite"

// Defaults reproduce the original demo: pages of 20 synthetic rows arriving
// after four seconds.
const (
	DefaultPageSize    = 20
	DefaultInitialRows = 20
	DefaultFetchDelay  = 4 * time.Second
)

// SourceKind selects where rows come from.
type SourceKind string

const (
	SourceSynthetic SourceKind = "synthetic"
	SourceFile      SourceKind = "file"
	SourceSQLite    SourceKind = "sqlite"
)

// Duration is a time.Duration that reads and writes as a string such as "4s"
// in YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Source describes the data source.
type Source struct {
	Kind SourceKind `yaml:"kind"`
	// Path is the text file for SourceFile or the database for SourceSQLite.
	Path   string `yaml:"path,omitempty"`
	Table  string `yaml:"table,omitempty"`
	Column string `yaml:"column,omitempty"`
	// Limit caps the synthetic source. Zero means it never runs out.
	Limit int `yaml:"limit,omitempty"`
}

type Config struct {
	PageSize    int      `yaml:"page_size"`
	InitialRows int      `yaml:"initial_rows"`
	FetchDelay  Duration `yaml:"fetch_delay"`
	Source      Source   `yaml:"source"`
	Debug       bool     `yaml:"debug"`
	LogFile     string   `yaml:"log_file,omitempty"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		PageSize:    DefaultPageSize,
		InitialRows: DefaultInitialRows,
		FetchDelay:  Duration(DefaultFetchDelay),
		Source: Source{
			Kind:   SourceSynthetic,
			Table:  "entries",
			Column: "value",
		},
		LogFile: defaultLogFile(),
	}
}

// Delay returns the simulated fetch latency.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.FetchDelay)
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("page size must be positive, got %d", c.PageSize))
	}
	if c.InitialRows < 0 {
		errs = append(errs, fmt.Errorf("initial rows must not be negative, got %d", c.InitialRows))
	}
	// The list only asks for more once it holds a full page, so a shorter
	// first batch would leave the loading row spinning.
	if c.PageSize > 0 && c.InitialRows < c.PageSize {
		errs = append(errs, fmt.Errorf("initial rows must be at least the page size %d, got %d", c.PageSize, c.InitialRows))
	}
	if c.FetchDelay < 0 {
		errs = append(errs, fmt.Errorf("fetch delay must not be negative, got %s", c.Delay()))
	}
	switch c.Source.Kind {
	case SourceSynthetic:
		if c.Source.Limit < 0 {
			errs = append(errs, fmt.Errorf("source limit must not be negative, got %d", c.Source.Limit))
		}
	case SourceFile:
		if c.Source.Path == "" {
			errs = append(errs, errors.New("file source requires a path"))
		}
	case SourceSQLite:
		if c.Source.Path == "" {
			errs = append(errs, errors.New("sqlite source requires a database path"))
		}
		if c.Source.Table == "" || c.Source.Column == "" {
			errs = append(errs, errors.New("sqlite source requires a table and a column"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown source kind: %q", c.Source.Kind))
	}
	return errors.Join(errs...)
}
