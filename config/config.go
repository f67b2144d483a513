package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joeshaw/envdecode"
	"github.com/matthewfinger/solitaire-lightweight/game"
)

const (
	minWidth  = 270
	minHeight = 240
)

// Color modes for terminal output
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var ErrFnInvalid = func(field string, value interface{}) error {
	return fmt.Errorf("invalid %s: %v", field, value)
}

// Config represents the application configuration
type Config struct {
	Addr           string        `toml:"addr" env:"SOLITAIRE_ADDR"`
	DragMode       bool          `toml:"drag_mode" env:"SOLITAIRE_DRAG_MODE"`
	Seed           int64         `toml:"seed" env:"SOLITAIRE_SEED"`
	SessionIdle    time.Duration `toml:"session_idle" env:"SOLITAIRE_SESSION_IDLE"`
	Color          string        `toml:"color" env:"SOLITAIRE_COLOR"`
	AllowedOrigins []string      `toml:"allowed_origins"`
	Layout         Layout        `toml:"layout"`
}

// Layout is the table size the geometry is derived from
type Layout struct {
	Width  int `toml:"width" env:"SOLITAIRE_WIDTH"`
	Height int `toml:"height" env:"SOLITAIRE_HEIGHT"`
}

// Default returns the built-in configuration
func Default() *Config {
	l := game.DefaultLayout()
	return &Config{
		Addr:        ":8000",
		SessionIdle: 30 * time.Minute,
		Color:       ColorAuto,
		Layout:      Layout{Width: l.Width, Height: l.Height},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// FilePath returns the path to the default config file
func FilePath() string {
	return filepath.Join(GetXDGConfigHome(), "solitaire", "config.toml")
}

// Load builds the configuration from the defaults, the TOML file at path
// if it exists, then SOLITAIRE_* environment variables.
// An empty path means FilePath().
func Load(path string) (*Config, error) {
	if path == "" {
		path = FilePath()
	}

	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path as TOML, creating its directory
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

func (c *Config) Validate() error {
	if c.Layout.Width < minWidth {
		return ErrFnInvalid("layout width", c.Layout.Width)
	}
	if c.Layout.Height < minHeight {
		return ErrFnInvalid("layout height", c.Layout.Height)
	}
	if c.SessionIdle < 0 {
		return ErrFnInvalid("session idle timeout", c.SessionIdle)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return ErrFnInvalid("color mode", c.Color)
	}
	return nil
}

// GameLayout returns the table geometry for the configured size
func (c *Config) GameLayout() game.Layout {
	return game.NewLayout(c.Layout.Width, c.Layout.Height)
}
