// Package config loads capita settings from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/capita/store"
)

// Environment variables that override the file.
const (
	EnvDataDir  = "CAPITA_DATA_DIR"
	EnvBackend  = "CAPITA_BACKEND"
	EnvLogLevel = "CAPITA_LOG_LEVEL"
)

var (
	ErrInvalidBackend  = errors.New("invalid backend")
	ErrInvalidBudget   = errors.New("invalid default budget")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrEmptyDateFormat = errors.New("date format must not be empty")
)

// Config holds all capita configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Display DisplayConfig `toml:"display"`
	Report  ReportConfig  `toml:"report"`
}

// GeneralConfig holds storage and logging settings.
type GeneralConfig struct {
	DataDir       string `toml:"data_dir,omitempty"`
	Backend       string `toml:"backend"`
	DefaultBudget string `toml:"default_budget"`
	LogLevel      string `toml:"log_level"`
}

// DisplayConfig controls terminal output.
type DisplayConfig struct {
	CurrencySymbol string `toml:"currency_symbol"`
	DateFormat     string `toml:"date_format"`
}

// ReportConfig controls PDF export.
type ReportConfig struct {
	OutputDir      string `toml:"output_dir"`
	CurrencySymbol string `toml:"currency_symbol"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		General: GeneralConfig{
			Backend:       store.BackendJSON,
			DefaultBudget: store.DefaultBudget.String(),
			LogLevel:      "warn",
		},
		Display: DisplayConfig{
			CurrencySymbol: "₹",
			DateFormat:     "1/2/2006",
		},
		Report: ReportConfig{
			OutputDir:      ".",
			CurrencySymbol: "Rs.",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "capita")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "capita")
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultDataDir returns the XDG-compliant data directory.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "capita")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "capita")
}

// Load reads the config file at path, or Path() when empty, returning
// defaults if it doesn't exist.
func Load(path string) (Config, error) {
	if path == "" {
		path = Path()
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes cfg to path, or Path() when empty.
func Save(path string, cfg Config) error {
	if path == "" {
		path = Path()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists reports whether a config file exists at path, or Path() when empty.
func Exists(path string) bool {
	if path == "" {
		path = Path()
	}
	_, err := os.Stat(path)
	return err == nil
}

// ApplyEnv overrides settings with non-empty environment variables read
// through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvDataDir); v != "" {
		c.General.DataDir = v
	}
	if v := getenv(EnvBackend); v != "" {
		c.General.Backend = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.General.LogLevel = v
	}
}

// Validate checks the values that cannot be fixed up silently.
func (c Config) Validate() error {
	var errs []error

	if !slices.Contains(store.Backends, c.General.Backend) {
		errs = append(errs, fmt.Errorf("%w %q (expected one of %s)", ErrInvalidBackend, c.General.Backend, strings.Join(store.Backends, ", ")))
	}
	if _, err := c.Budget(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(c.Display.DateFormat) == "" {
		errs = append(errs, ErrEmptyDateFormat)
	}

	return errors.Join(errs...)
}

// DataDir returns the configured data directory or the XDG default.
func (c Config) DataDir() string {
	if c.General.DataDir != "" {
		return c.General.DataDir
	}
	return DefaultDataDir()
}

// Budget parses the default budget.
func (c Config) Budget() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(c.General.DefaultBudget))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w %q", ErrInvalidBudget, c.General.DefaultBudget)
	}
	return d, nil
}

// Level parses the log level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.General.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("%w %q", ErrInvalidLogLevel, c.General.LogLevel)
	}
	return level, nil
}
