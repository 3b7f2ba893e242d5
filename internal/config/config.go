// Package config loads seoscope settings from a TOML file with
// environment overrides, and persists the user's theme choice.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds everything seoscope needs for one run.
type Config struct {
	Command string `toml:"command"`  // audit executable
	Depth   string `toml:"depth"`    // subcommand selecting audit depth
	TickMS  int    `toml:"tick_ms"`  // render tick interval in milliseconds
	Theme   string `toml:"theme"`    // UI color theme name
	LogFile string `toml:"log_file"` // worker log destination, empty disables
}

const (
	defaultConfigPath = "~/.config/seoscope/config.toml"
	defaultLogFile    = "~/.local/state/seoscope/seoscope.log"
	defaultCommand    = "tinyseoai"
	defaultDepth      = "audit-ai"
	defaultTickMS     = 250
)

// Load reads the config at path (or the default location when empty).
// A missing file is not an error: defaults apply. Values from the
// environment, optionally seeded from an env file next to the config,
// override the file.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Command: defaultCommand,
		Depth:   defaultDepth,
		TickMS:  defaultTickMS,
		LogFile: mustExpand(defaultLogFile),
	}

	raw, err := os.ReadFile(resolved)
	switch {
	case err == nil:
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults stand
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	// An env file next to the config seeds the process environment but
	// never overrides variables already set.
	_ = godotenv.Load(filepath.Join(filepath.Dir(resolved), "env"))
	applyEnv(&cfg)

	cfg.Command = strings.TrimSpace(cfg.Command)
	if cfg.Command == "" {
		cfg.Command = defaultCommand
	}
	cfg.Depth = strings.TrimSpace(cfg.Depth)
	if cfg.Depth == "" {
		cfg.Depth = defaultDepth
	}
	if cfg.TickMS <= 0 {
		cfg.TickMS = defaultTickMS
	}
	if strings.TrimSpace(cfg.LogFile) != "" {
		cfg.LogFile = mustExpand(cfg.LogFile)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SEOSCOPE_COMMAND"); v != "" {
		cfg.Command = v
	}
	if v := os.Getenv("SEOSCOPE_DEPTH"); v != "" {
		cfg.Depth = v
	}
	if v := os.Getenv("SEOSCOPE_TICK_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.TickMS = ms
		}
	}
	if v := os.Getenv("SEOSCOPE_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
}

// SaveTheme rewrites the config file at path (default location when
// empty) with the current settings and the given theme. Used when the
// user cycles themes so the choice survives restarts.
func SaveTheme(path string, cfg Config, theme string) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	cfg.Theme = theme
	raw, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(resolved, raw, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
