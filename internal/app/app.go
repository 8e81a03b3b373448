// Package app wires configuration, input and the UI together for one
// downpour run.
package app

import (
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/pmodin/downpour/internal/config"
	"github.com/pmodin/downpour/internal/feed"
	"github.com/pmodin/downpour/internal/prefs"
	"github.com/pmodin/downpour/internal/rain"
	"github.com/pmodin/downpour/internal/ui"
)

// Options are the command line inputs.
type Options struct {
	ConfigPath string
	PrefsPath  string
	Overrides  config.Overrides
}

// Run resolves the configuration, starts the input feed on stdin and blocks
// in the UI until the animation ends or ctx is canceled.
func Run(ctx context.Context, opts Options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	base, err := rain.ParseColor(cfg.Color)
	if err != nil {
		return err
	}
	highlight, err := rain.ParseColor(cfg.HighlightColor)
	if err != nil {
		return err
	}
	mode, err := rain.ParseMode(cfg.Direction)
	if err != nil {
		return err
	}

	engine := &rain.Config{
		Base:         base,
		Highlight:    highlight,
		HighlightLen: cfg.HighlightLen,
	}
	seed := uint64(time.Now().UnixNano())
	field := rain.NewField(mode, engine, cfg.Spaces, rand.New(rand.NewPCG(seed, seed>>32)))

	return ui.Run(ctx, ui.Options{
		Field:     field,
		Engine:    engine,
		Feed:      feed.Start(os.Stdin),
		Period:    time.Duration(cfg.FrequencyMS) * time.Millisecond,
		PrefsPath: opts.PrefsPath,
	})
}

// resolveConfig layers the three option sources: compiled-in defaults, the
// config file, then explicitly-set flags. The color remembered from a
// previous run's cycle key sits between the file and the flags.
func resolveConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	if saved := prefs.Load(opts.PrefsPath); saved.Color != "" && opts.Overrides.Color == nil {
		// Prefs are best-effort: a saved color that no longer parses is
		// ignored rather than failing startup.
		if _, err := rain.ParseColor(saved.Color); err == nil {
			cfg.Color = saved.Color
		}
	}

	cfg = cfg.Apply(opts.Overrides)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
