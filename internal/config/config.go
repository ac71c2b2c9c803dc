// Package config loads and saves salescast settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/model"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all salescast configuration.
type Config struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Defaults   DefaultsConfig   `toml:"defaults"`
	Guidance   GuidanceConfig   `toml:"guidance"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultsConfig holds the sample values that prefill the input form.
type DefaultsConfig struct {
	Revenue []float64 `toml:"revenue"`
	Profit  []float64 `toml:"profit"`
}

// GuidanceConfig holds the data entry guidelines used to flag suspicious input.
type GuidanceConfig struct {
	MinValue     float64 `toml:"min_value"`
	MaxValue     float64 `toml:"max_value"`
	MaxJumpRatio float64 `toml:"max_jump_ratio"`
}

// Rules converts the configured guidance into engine rules.
func (g GuidanceConfig) Rules() forecast.Guidance {
	return forecast.Guidance{
		MinValue:     g.MinValue,
		MaxValue:     g.MaxValue,
		MaxJumpRatio: g.MaxJumpRatio,
	}
}

// ConfigError reports an unusable config file.
type ConfigError struct {
	Path string
	Err  error
}

func (e ConfigError) Error() string { return fmt.Sprintf("config %s: %v", e.Path, e.Err) }

func (e ConfigError) Unwrap() error { return e.Err }

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Defaults: DefaultsConfig{
			Revenue: []float64{120000, 115000, 118000, 122000, 125000, 130000},
			Profit:  []float64{40000, 38000, 39000, 41000, 42000, 45000},
		},
		Guidance: GuidanceConfig{
			MinValue:     10_000,
			MaxValue:     200_000,
			MaxJumpRatio: 10,
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "salescast")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "salescast")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides (including a .env file in the working directory)
// are applied last.
func Load() (Config, error) {
	return LoadAt(Path())
}

// LoadAt is Load for an explicit config path.
func LoadAt(path string) (Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

// LoadFile reads a specific config file without environment overrides.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // config path is chosen by the local user
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, ConfigError{Path: path, Err: fmt.Errorf("reading config: %w", err)}
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), ConfigError{Path: path, Err: fmt.Errorf("parsing config: %w", err)}
	}

	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), ConfigError{Path: path, Err: err}
	}

	return cfg, nil
}

// Validate checks the sample series and guidance range.
func (c Config) Validate() error {
	if len(c.Defaults.Revenue) != model.Horizon {
		return fmt.Errorf("defaults.revenue must have %d values, got %d", model.Horizon, len(c.Defaults.Revenue))
	}
	if len(c.Defaults.Profit) != model.Horizon {
		return fmt.Errorf("defaults.profit must have %d values, got %d", model.Horizon, len(c.Defaults.Profit))
	}
	if c.Guidance.MaxValue > 0 && c.Guidance.MinValue > c.Guidance.MaxValue {
		return fmt.Errorf("guidance.min_value %.0f exceeds max_value %.0f", c.Guidance.MinValue, c.Guidance.MaxValue)
	}
	if c.Guidance.MaxJumpRatio < 0 {
		return fmt.Errorf("guidance.max_jump_ratio must not be negative")
	}
	return nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveFile(Path(), cfg)
}

// SaveFile writes the config to path, creating its directory.
func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // see LoadFile
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// applyEnv loads .env if present and applies SALESCAST_* overrides.
func applyEnv(cfg *Config) {
	// Missing .env is the common case.
	_ = godotenv.Load()

	if theme := os.Getenv("SALESCAST_THEME"); theme != "" {
		cfg.Appearance.Theme = theme
	}
}
