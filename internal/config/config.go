// Package config loads the calculator settings.
//
// The settings file is HuJSON: JSON that may contain comments and trailing
// commas.
//
//	{
//		// log verbosity: debug, info, warn, error
//		"logLevel": "info",
//		"fractionDigits": 2,
//	}
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/tailscale/hujson"

	"github.com/fjl/countonme/internal/calc"
)

// MaxFractionDigits bounds the fractionDigits setting.
const MaxFractionDigits = 6

// Config holds the settings shared by the calculator frontends.
type Config struct {
	LogLevel       string `json:"logLevel"`
	FractionDigits *int   `json:"fractionDigits"`
}

// DefaultPath returns the location of the settings file below dir.
func DefaultPath(dir string) string {
	return filepath.Join(dir, "countonme", "config.hujson")
}

// Default returns the built-in settings.
func Default() *Config {
	cfg := new(Config)
	applyDefaults(cfg)
	return cfg
}

// Load reads the settings file at path. A missing file is not an error, the
// defaults are used instead.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	} else if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes settings from HuJSON.
func Parse(data []byte) (*Config, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(std, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	applyDefaults(&cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = zerolog.InfoLevel.String()
	}
	if cfg.FractionDigits == nil {
		n := calc.DefaultFractionDigits
		cfg.FractionDigits = &n
	}
}

func (cfg *Config) validate() error {
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid logLevel %q", cfg.LogLevel)
	}
	if n := *cfg.FractionDigits; n < 0 || n > MaxFractionDigits {
		return fmt.Errorf("fractionDigits %d out of range [0, %d]", n, MaxFractionDigits)
	}
	return nil
}

// Digits returns the number of fractional digits shown in results.
// The settings must come from Load, Parse or Default.
func (cfg *Config) Digits() int {
	return *cfg.FractionDigits
}

// Logger creates a console logger writing to w at the configured level.
func (cfg *Config) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		With().Timestamp().Logger().
		Level(level)
}

// AccumulatorOptions returns the calc options derived from the settings.
func (cfg *Config) AccumulatorOptions(log zerolog.Logger) []calc.Option {
	return []calc.Option{
		calc.WithLogger(log),
		calc.WithFractionDigits(cfg.Digits()),
	}
}
