// Package config loads the settings of the demo commands.
//
// Settings are layered: Defaults, then an optional YAML file, then DCDEMO_*
// environment variables. Commands apply their flags last.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, as in DCDEMO_SCENE or
// DCDEMO_LOG_LEVEL.
const EnvPrefix = "DCDEMO"

// ZoomConfig mirrors dyncanvas.ZoomConfig.
type ZoomConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	Level   float64 `yaml:"level" envconfig:"LEVEL"`
	Min     float64 `yaml:"min" envconfig:"MIN"`
	Max     float64 `yaml:"max" envconfig:"MAX"`
	Speed   float64 `yaml:"speed" envconfig:"SPEED"`
}

// LogConfig selects the log handler.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level" envconfig:"LEVEL"`
	// Format is text or json.
	Format string `yaml:"format" envconfig:"FORMAT"`
	// File enables a rotated log file next to stderr output.
	File       string `yaml:"file" envconfig:"FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb" envconfig:"MAX_SIZE_MB"`
	MaxBackups int    `yaml:"max_backups" envconfig:"MAX_BACKUPS"`
}

// Config holds every demo setting.
type Config struct {
	Scene      string     `yaml:"scene" envconfig:"SCENE"`
	Width      int        `yaml:"width" envconfig:"WIDTH"`
	Height     int        `yaml:"height" envconfig:"HEIGHT"`
	Frames     int        `yaml:"frames" envconfig:"FRAMES"`
	FPS        int        `yaml:"fps" envconfig:"FPS"`
	Background string     `yaml:"background" envconfig:"BACKGROUND"`
	Assets     string     `yaml:"assets" envconfig:"ASSETS"`
	Output     string     `yaml:"output" envconfig:"OUTPUT"`
	Zoom       ZoomConfig `yaml:"zoom" envconfig:"ZOOM"`
	Log        LogConfig  `yaml:"log" envconfig:"LOG"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Scene:      "drawing",
		Width:      800,
		Height:     600,
		Frames:     60,
		FPS:        60,
		Background: "white",
		Assets:     "assets",
		Output:     "frames",
		Zoom: ZoomConfig{
			Level: 1,
			Min:   0.1,
			Max:   10,
			Speed: 0.1,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load returns Defaults overlaid with the YAML file at path, when path is
// not empty, and then with the environment.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // config path comes from the command line
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("config: environment: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Frames < 0 {
		errs = append(errs, fmt.Errorf("config: frames %d is negative", c.Frames))
	}
	if c.FPS < 0 {
		errs = append(errs, fmt.Errorf("config: fps %d is negative", c.FPS))
	}
	if c.Zoom.Min < 0 || c.Zoom.Max < 0 {
		errs = append(errs, errors.New("config: zoom range must not be negative"))
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("config: unknown log format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
