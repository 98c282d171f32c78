package ics

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/samber/mo"
	"gopkg.in/yaml.v3"
)

// Config carries the settings a program using the library usually wants
// to expose: expansion cap, default zone and output format.
type Config struct {
	// MaxRows caps recurrence expansion.
	MaxRows int `yaml:"max_rows"`

	// DefaultZone is the IANA zone for new date-times. Empty means the
	// host zone.
	DefaultZone string `yaml:"default_zone"`

	// LineLength is the fold width in octets; 0 disables folding.
	LineLength int `yaml:"line_length"`

	// NewLine is "crlf" (default) or "lf".
	NewLine string `yaml:"newline"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built in defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxRows:    DefaultMaxRows,
		LineLength: 75,
		NewLine:    "crlf",
		LogLevel:   "info",
	}
}

// Normalize replaces missing or invalid values with defaults.
func (c *Config) Normalize() {
	if c.MaxRows <= 0 {
		c.MaxRows = DefaultMaxRows
	}
	if c.LineLength < 0 {
		c.LineLength = 75
	}
	switch strings.ToLower(c.NewLine) {
	case "crlf", "lf":
		c.NewLine = strings.ToLower(c.NewLine)
	default:
		c.NewLine = "crlf"
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(c.LogLevel)
	default:
		c.LogLevel = "info"
	}
}

// LoadConfig reads a YAML config from path. A missing file gives the
// defaults. ICAL_MAX_ROWS, ICAL_DEFAULT_ZONE and ICAL_LOG_LEVEL override the
// file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("%w: reading config: %v", ErrFile, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%w: parsing config %s: %v", ErrMalformedData, path, err)
			}
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("ICAL_MAX_ROWS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: ICAL_MAX_ROWS=%q", ErrBadParameters, v)
		}
		c.MaxRows = n
	}
	if v := os.Getenv("ICAL_DEFAULT_ZONE"); v != "" {
		c.DefaultZone = v
	}
	if v := os.Getenv("ICAL_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Serialization returns the output options described by c.
func (c *Config) Serialization() *SerializationConfiguration {
	nl := string(WithNewLineWindows)
	if c.NewLine == "lf" {
		nl = string(WithNewLineUnix)
	}
	return &SerializationConfiguration{
		MaxLength:         c.LineLength,
		PropertyMaxLength: c.LineLength,
		NewLine:           nl,
	}
}

// ExpansionLimit is the row cap as an Expand limit.
func (c *Config) ExpansionLimit() mo.Either[DateTime, int] {
	return MaxRows(c.MaxRows)
}

// Zone resolves DefaultZone, the host zone when it is empty.
func (c *Config) Zone() (*TimeZone, error) {
	if c.DefaultZone == "" {
		return HostTimeZone(), nil
	}
	return LoadTimeZone(c.DefaultZone)
}

// Level is LogLevel as a slog level.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
