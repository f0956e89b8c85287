package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	VisualRingSize  = 8192
	SmoothingFactor = 0.6

	// Panel toggle button
	ButtonWidth  = 120
	ButtonHeight = 32
	ButtonX      = 20
	ButtonY      = 36

	ColorShiftSpeed = 0.01
)

// Config holds every tunable of the effect. It is loaded once at startup
// and never modified afterwards.
type Config struct {
	Window  WindowConfig   `yaml:"window"`
	Circles CircleConfig   `yaml:"circles"`
	Regions []RegionConfig `yaml:"regions"`
	Media   MediaConfig    `yaml:"media"`
	AppName string         `yaml:"appName"` // gdata storage namespace
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// CircleConfig are the drifting circle tunables.
type CircleConfig struct {
	MaxPerContainer      int     `yaml:"maxPerContainer"`
	SizeMin              int     `yaml:"sizeMin"`     // pixels
	SizeMax              int     `yaml:"sizeMax"`     // pixels
	DurationMin          int     `yaml:"durationMin"` // seconds
	DurationMax          int     `yaml:"durationMax"` // seconds
	Fill                 string  `yaml:"fill"`        // #rrggbb or #rrggbbaa
	BlurRadius           float64 `yaml:"blurRadius"`
	EdgeOffsetMultiplier float64 `yaml:"edgeOffsetMultiplier"`
}

// RegionConfig places a container as a fraction of the window.
type RegionConfig struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type MediaConfig struct {
	Sources  []string `yaml:"sources"`
	Autoplay bool     `yaml:"autoplay"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Drift - Tab: panel, R: reset, Space: play/pause, Esc/Q: quit",
			TPS:    60,
		},
		Circles: CircleConfig{
			MaxPerContainer:      5,
			SizeMin:              150,
			SizeMax:              400,
			DurationMin:          8,
			DurationMax:          20,
			Fill:                 "#ffffff26",
			BlurRadius:           30,
			EdgeOffsetMultiplier: 1.5,
		},
		Regions: []RegionConfig{
			{Name: "hero", X: 0, Y: 0, Width: 1, Height: 0.6},
			{Name: "footer", X: 0, Y: 0.6, Width: 1, Height: 0.4},
		},
		Media: MediaConfig{
			Autoplay: true,
		},
		AppName: "drift",
	}
}

// Load reads a YAML config file over the defaults. A missing file is not an
// error: the defaults are returned as-is.
func Load(filePath string) (*Config, error) {
	cfg := Default()
	if filePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks ranges and region bounds.
func Validate(cfg *Config) error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be > 0, got %d", cfg.Window.TPS)
	}

	c := cfg.Circles
	if c.MaxPerContainer < 1 {
		return fmt.Errorf("circles.maxPerContainer must be >= 1, got %d", c.MaxPerContainer)
	}
	if c.SizeMin < 1 || c.SizeMin > c.SizeMax {
		return fmt.Errorf("circles size range [%d, %d] is invalid", c.SizeMin, c.SizeMax)
	}
	if c.DurationMin < 1 || c.DurationMin > c.DurationMax {
		return fmt.Errorf("circles duration range [%d, %d] is invalid", c.DurationMin, c.DurationMax)
	}
	if c.BlurRadius < 0 {
		return fmt.Errorf("circles.blurRadius must be >= 0, got %v", c.BlurRadius)
	}
	if c.EdgeOffsetMultiplier < 0 {
		return fmt.Errorf("circles.edgeOffsetMultiplier must be >= 0, got %v", c.EdgeOffsetMultiplier)
	}
	if _, err := ParseHexColor(c.Fill); err != nil {
		return fmt.Errorf("circles.fill: %w", err)
	}

	if len(cfg.Regions) == 0 {
		return fmt.Errorf("regions cannot be empty")
	}
	seen := make(map[string]bool)
	for _, r := range cfg.Regions {
		if r.Name == "" {
			return fmt.Errorf("region name cannot be empty")
		}
		if seen[r.Name] {
			return fmt.Errorf("duplicate region %q", r.Name)
		}
		seen[r.Name] = true
		if r.X < 0 || r.Y < 0 || r.Width <= 0 || r.Height <= 0 || r.X+r.Width > 1 || r.Y+r.Height > 1 {
			return fmt.Errorf("region %q must lie within the unit square", r.Name)
		}
	}
	return nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa". A missing alpha is opaque.
func ParseHexColor(s string) (color.NRGBA, error) {
	var c color.NRGBA
	switch len(s) {
	case 7:
		c.A = 0xff
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return color.NRGBA{}, fmt.Errorf("bad color %q: %w", s, err)
		}
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
			return color.NRGBA{}, fmt.Errorf("bad color %q: %w", s, err)
		}
	default:
		return color.NRGBA{}, fmt.Errorf("bad color %q: want #rrggbb or #rrggbbaa", s)
	}
	return c, nil
}
