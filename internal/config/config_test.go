package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile_MissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if got := cfg.Defaults.Revenue[5]; got != 130000 {
		t.Errorf("Defaults.Revenue[5] = %.0f, want 130000", got)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := DefaultConfig()
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Guidance.MaxValue = 500_000
	if err := SaveFile(path, cfg); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config perm = %o, want 600", perm)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.Appearance.Theme != "tokyo-night" {
		t.Errorf("Theme = %q, want tokyo-night", got.Appearance.Theme)
	}
	if got.Guidance.MaxValue != 500_000 {
		t.Errorf("MaxValue = %.0f, want 500000", got.Guidance.MaxValue)
	}
}

func TestLoadFile_RejectsShortDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[defaults]\nrevenue = [1, 2, 3]\nprofit = [1, 2, 3, 4, 5, 6]\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path)
	var cerr ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v, want ConfigError", err)
	}
	if cerr.Path != path {
		t.Errorf("ConfigError.Path = %q, want %q", cerr.Path, path)
	}
}

func TestLoadFile_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[appearance\ntheme ="), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_EnvOverridesTheme(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SALESCAST_THEME", "terminal")
	t.Chdir(t.TempDir()) // no stray .env

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q, want terminal", cfg.Appearance.Theme)
	}
}

func TestLoadAt_ExplicitPathKeepsEnvOverrides(t *testing.T) {
	t.Setenv("SALESCAST_THEME", "terminal")
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "custom.toml")
	cfg := DefaultConfig()
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Guidance.MaxJumpRatio = 4
	if err := SaveFile(path, cfg); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	got, err := LoadAt(path)
	if err != nil {
		t.Fatalf("LoadAt: %v", err)
	}
	if got.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q, want env override terminal", got.Appearance.Theme)
	}
	if got.Guidance.MaxJumpRatio != 4 {
		t.Errorf("MaxJumpRatio = %v, want 4 from the file", got.Guidance.MaxJumpRatio)
	}
}

func TestGuidanceRules(t *testing.T) {
	r := DefaultConfig().Guidance.Rules()
	if r.MinValue != 10_000 || r.MaxValue != 200_000 || r.MaxJumpRatio != 10 {
		t.Errorf("Rules() = %+v", r)
	}
}
