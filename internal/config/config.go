package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the fixed animation options for one downpour run.
type Config struct {
	Color          string `toml:"color"`
	HighlightColor string `toml:"highlight_color"`
	HighlightLen   int    `toml:"highlight_length"`
	FrequencyMS    int    `toml:"frequency_ms"`
	Direction      string `toml:"direction"`
	Spaces         int    `toml:"spaces"`
}

// Overrides carries explicitly-set command line flags. Nil fields were not
// given on the command line and leave the config value alone, so zero stays
// a representable flag value (e.g. -spaces 0).
type Overrides struct {
	Color          *string
	HighlightColor *string
	HighlightLen   *int
	FrequencyMS    *int
	Direction      *string
	Spaces         *int
}

const defaultConfigPath = "~/.config/downpour/config.toml"

// Defaults returns the compiled-in configuration: terminal-default text,
// white three-character highlights, a 100ms frame period, toward-bottom
// motion and a single blank cell between messages.
func Defaults() Config {
	return Config{
		Color:          "default",
		HighlightColor: "white",
		HighlightLen:   3,
		FrequencyMS:    100,
		Direction:      "bottom",
		Spaces:         1,
	}
}

// Load locates and parses the downpour config file, falling back to
// defaults when it is missing. An empty path means the default location.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Color          *string `toml:"color"`
		HighlightColor *string `toml:"highlight_color"`
		HighlightLen   *int    `toml:"highlight_length"`
		FrequencyMS    *int    `toml:"frequency_ms"`
		Direction      *string `toml:"direction"`
		Spaces         *int    `toml:"spaces"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.Color != nil && strings.TrimSpace(*raw.Color) != "" {
		cfg.Color = strings.TrimSpace(*raw.Color)
	}
	if raw.HighlightColor != nil && strings.TrimSpace(*raw.HighlightColor) != "" {
		cfg.HighlightColor = strings.TrimSpace(*raw.HighlightColor)
	}
	if raw.HighlightLen != nil {
		cfg.HighlightLen = *raw.HighlightLen
	}
	if raw.FrequencyMS != nil {
		cfg.FrequencyMS = *raw.FrequencyMS
	}
	if raw.Direction != nil && strings.TrimSpace(*raw.Direction) != "" {
		cfg.Direction = strings.TrimSpace(*raw.Direction)
	}
	if raw.Spaces != nil {
		cfg.Spaces = *raw.Spaces
	}

	return cfg, nil
}

// Apply layers explicitly-set flags over the loaded configuration.
func (c Config) Apply(o Overrides) Config {
	if o.Color != nil {
		c.Color = *o.Color
	}
	if o.HighlightColor != nil {
		c.HighlightColor = *o.HighlightColor
	}
	if o.HighlightLen != nil {
		c.HighlightLen = *o.HighlightLen
	}
	if o.FrequencyMS != nil {
		c.FrequencyMS = *o.FrequencyMS
	}
	if o.Direction != nil {
		c.Direction = *o.Direction
	}
	if o.Spaces != nil {
		c.Spaces = *o.Spaces
	}
	return c
}

// Validate rejects value ranges the animation cannot run with. Color and
// direction names are validated where they are parsed into engine types.
func (c Config) Validate() error {
	if c.FrequencyMS <= 0 {
		return fmt.Errorf("frequency must be positive, got %d", c.FrequencyMS)
	}
	if c.HighlightLen < 0 {
		return fmt.Errorf("highlight length must not be negative, got %d", c.HighlightLen)
	}
	if c.Spaces < 0 {
		return fmt.Errorf("spaces must not be negative, got %d", c.Spaces)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
