package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[general]
backend = "sqlite"
default_budget = "1200.50"

[display]
currency_symbol = "$"
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.General.Backend)
	assert.Equal(t, "$", cfg.Display.CurrencySymbol)
	assert.Equal(t, "1/2/2006", cfg.Display.DateFormat)
	assert.Equal(t, "Rs.", cfg.Report.CurrencySymbol)

	budget, err := cfg.Budget()
	assert.NoError(t, err)
	assert.Equal(t, "1200.5", budget.String())
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	assert.NoError(t, os.WriteFile(path, []byte("[general\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capita", "config.toml")
	assert.False(t, Exists(path))

	cfg := Default()
	cfg.General.DataDir = "/var/lib/capita"
	cfg.Report.OutputDir = "reports"
	assert.NoError(t, Save(path, cfg))
	assert.True(t, Exists(path))

	got, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, cfg, got)
	assert.Equal(t, "/var/lib/capita", got.DataDir())
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvDataDir:  "/tmp/capita",
		EnvBackend:  "memory",
		EnvLogLevel: "",
	}

	cfg := Default()
	cfg.ApplyEnv(func(key string) string { return env[key] })

	assert.Equal(t, "/tmp/capita", cfg.General.DataDir)
	assert.Equal(t, "memory", cfg.General.Backend)
	assert.Equal(t, "warn", cfg.General.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "UnknownBackend", mutate: func(c *Config) { c.General.Backend = "redis" }, wantErr: ErrInvalidBackend},
		{name: "BadBudget", mutate: func(c *Config) { c.General.DefaultBudget = "lots" }, wantErr: ErrInvalidBudget},
		{name: "BadLogLevel", mutate: func(c *Config) { c.General.LogLevel = "loud" }, wantErr: ErrInvalidLogLevel},
		{name: "EmptyDateFormat", mutate: func(c *Config) { c.Display.DateFormat = " " }, wantErr: ErrEmptyDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.IsError(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestLevel(t *testing.T) {
	cfg := Default()
	level, err := cfg.Level()
	assert.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	cfg.General.LogLevel = "debug"
	level, err = cfg.Level()
	assert.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestDataDirFallsBackToXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	assert.Equal(t, filepath.Join("/xdg/data", "capita"), Default().DataDir())
}
