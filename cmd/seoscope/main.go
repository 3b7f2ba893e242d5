package main

import (
	"flag"
	"os"

	"github.com/fatih/color"

	"seoscope/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	tickMS := flag.Int("tick", 0, "render tick interval in milliseconds (optional, defaults to 250)")
	flag.Parse()

	if flag.NArg() < 1 {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "Usage: seoscope <url>")
		color.New(color.FgCyan).Fprintln(os.Stderr, "Example: seoscope https://example.com")
		return 1
	}

	opts := app.Options{
		URL:        flag.Arg(0),
		ConfigPath: *configPath,
		TickMS:     *tickMS,
	}

	if err := app.Run(opts); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "seoscope: %v\n", err)
		return 1
	}
	return 0
}
