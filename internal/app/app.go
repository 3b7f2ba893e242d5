// Package app wires configuration, logging, the audit worker, and the UI
// into one run of the dashboard.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"seoscope/internal/audit"
	"seoscope/internal/config"
	"seoscope/internal/ui"
)

// Options configure the seoscope application.
type Options struct {
	URL        string
	ConfigPath string // empty uses ~/.config/seoscope/config.toml
	TickMS     int    // render tick override; zero uses config/default
}

// Run boots the dashboard and blocks until the user quits. The audit
// worker is fire-and-forget: quitting the UI does not interrupt an
// in-flight audit process.
func Run(opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.TickMS > 0 {
		cfg.TickMS = opts.TickMS
	}

	log := newLogger(cfg.LogFile)

	runner := audit.Runner{
		Command: cfg.Command,
		Depth:   cfg.Depth,
		Log:     log,
	}
	updates := runner.Start(opts.URL)

	return ui.Run(ui.Options{
		URL:        opts.URL,
		Updates:    updates,
		Config:     cfg,
		ConfigPath: opts.ConfigPath,
		Tick:       time.Duration(cfg.TickMS) * time.Millisecond,
	})
}

// newLogger builds a file-backed JSON logger. The dashboard owns the
// terminal, so diagnostics never go to stderr; when the log file cannot
// be opened, logging is discarded rather than failing the run.
func newLogger(path string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	log.SetOutput(io.Discard)

	if path == "" {
		return log
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log
	}
	log.SetOutput(file)
	return log
}
