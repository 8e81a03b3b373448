package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pmodin/downpour/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (optional)")
	color := flag.String("color", "", "text color: default, black, red, green, yellow, blue, magenta, cyan or white")
	highlightColor := flag.String("highlight-color", "", "color for the first characters of each message")
	highlightLength := flag.Int("highlight-length", 0, "number of highlighted characters per message")
	frequency := flag.Int("frequency", 0, "frame period in milliseconds")
	direction := flag.String("direction", "", "motion: top, bottom or spiral")
	spaces := flag.Int("spaces", 0, "blank cells between messages")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath}

	// Only flags the user actually set override the config file; flag.Visit
	// walks exactly those, so -spaces 0 still counts as an override.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "color":
			opts.Overrides.Color = color
		case "highlight-color":
			opts.Overrides.HighlightColor = highlightColor
		case "highlight-length":
			opts.Overrides.HighlightLen = highlightLength
		case "frequency":
			opts.Overrides.FrequencyMS = frequency
		case "direction":
			opts.Overrides.Direction = direction
		case "spaces":
			opts.Overrides.Spaces = spaces
		}
	})

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "downpour: %v\n", err)
		return 1
	}
	return 0
}
