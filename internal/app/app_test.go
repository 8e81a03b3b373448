package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pmodin/downpour/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestResolveConfig_FlagsBeatFileBeatsDefaults(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	writeFile(t, configPath, `
color = "red"
frequency_ms = 50
`)

	freq := 25
	cfg, err := resolveConfig(Options{
		ConfigPath: configPath,
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
		Overrides:  config.Overrides{FrequencyMS: &freq},
	})
	if err != nil {
		t.Fatalf("resolveConfig returned error: %v", err)
	}
	if cfg.FrequencyMS != 25 {
		t.Fatalf("FrequencyMS = %d, want flag value 25", cfg.FrequencyMS)
	}
	if cfg.Color != "red" {
		t.Fatalf("Color = %q, want file value %q", cfg.Color, "red")
	}
	if cfg.Direction != "bottom" {
		t.Fatalf("Direction = %q, want default %q", cfg.Direction, "bottom")
	}
}

func TestResolveConfig_SavedColorBeatsFileNotFlags(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	prefsPath := filepath.Join(dir, "prefs.toml")
	writeFile(t, configPath, `color = "red"`)
	writeFile(t, prefsPath, `color = "cyan"`)

	cfg, err := resolveConfig(Options{ConfigPath: configPath, PrefsPath: prefsPath})
	if err != nil {
		t.Fatalf("resolveConfig returned error: %v", err)
	}
	if cfg.Color != "cyan" {
		t.Fatalf("Color = %q, want remembered %q", cfg.Color, "cyan")
	}

	flagColor := "blue"
	cfg, err = resolveConfig(Options{
		ConfigPath: configPath,
		PrefsPath:  prefsPath,
		Overrides:  config.Overrides{Color: &flagColor},
	})
	if err != nil {
		t.Fatalf("resolveConfig returned error: %v", err)
	}
	if cfg.Color != "blue" {
		t.Fatalf("Color = %q, want flag %q", cfg.Color, "blue")
	}
}

func TestResolveConfig_IgnoresUnparseableSavedColor(t *testing.T) {
	dir := t.TempDir()
	prefsPath := filepath.Join(dir, "prefs.toml")
	writeFile(t, prefsPath, `color = "chartreuse"`)

	cfg, err := resolveConfig(Options{
		ConfigPath: filepath.Join(dir, "missing.toml"),
		PrefsPath:  prefsPath,
	})
	if err != nil {
		t.Fatalf("resolveConfig returned error: %v", err)
	}
	if cfg.Color != "default" {
		t.Fatalf("Color = %q, want default with unusable saved color", cfg.Color)
	}
}

func TestResolveConfig_RejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	freq := 0
	_, err := resolveConfig(Options{
		ConfigPath: filepath.Join(dir, "missing.toml"),
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
		Overrides:  config.Overrides{FrequencyMS: &freq},
	})
	if err == nil {
		t.Fatalf("resolveConfig accepted zero frequency")
	}
}
