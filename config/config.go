// Package config holds the declarative parameters of a scene build,
// decoded from YAML with sane defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WindowConfig sizes the main presentation target
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ShadowConfig parameterizes the default shadow caster
type ShadowConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Distance   float64 `yaml:"distance"`
	FOV        float64 `yaml:"fov"`
	BufferSize int     `yaml:"buffer_size"`
}

// FlickerConfig parameterizes the point-light flicker behavior
type FlickerConfig struct {
	Speed float64 `yaml:"speed"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

// LightsConfig parameterizes the point-light ring
type LightsConfig struct {
	// Ring is how many lights the composition actually places
	Ring int `yaml:"ring"`
	// RingTotal is the divisor for the angular step between lights.
	// Kept separate from Ring so a partial ring keeps the same spacing
	// and colors as the full one.
	RingTotal int           `yaml:"ring_total"`
	Radius    float64       `yaml:"radius"`
	Height    float64       `yaml:"height"`
	Distance  float64       `yaml:"distance"`
	Flicker   FlickerConfig `yaml:"flicker"`
}

// AudioConfig controls the audio layer lifecycle
type AudioConfig struct {
	Enabled bool   `yaml:"enabled"`
	Root    string `yaml:"root"`
}

// Config is the full scene build configuration
type Config struct {
	Window WindowConfig `yaml:"window"`
	Shadow ShadowConfig `yaml:"shadow"`
	Lights LightsConfig `yaml:"lights"`
	Audio  AudioConfig  `yaml:"audio"`
}

// Default returns the build parameters matching the reference scene
func Default() Config {
	return Config{
		Window: WindowConfig{Width: 1280, Height: 720},
		Shadow: ShadowConfig{
			Enabled:    true,
			Distance:   10.0,
			FOV:        60.0,
			BufferSize: 1024,
		},
		Lights: LightsConfig{
			Ring:      6,
			RingTotal: 6,
			Radius:    20.0,
			Height:    2.0,
			Distance:  10.0,
			Flicker:   FlickerConfig{Speed: 2.0, Min: 0.6, Max: 1.2},
		},
		Audio: AudioConfig{Enabled: true, Root: "sounds"},
	}
}

// Load reads a YAML config file over the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects parameters the scene build cannot honor
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window dimensions must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Shadow.Distance <= 0 {
		return fmt.Errorf("config: shadow distance must be positive, got %v", c.Shadow.Distance)
	}
	if c.Shadow.FOV <= 0 || c.Shadow.FOV >= 180 {
		return fmt.Errorf("config: shadow fov must be in (0, 180), got %v", c.Shadow.FOV)
	}
	if c.Shadow.BufferSize <= 0 {
		return fmt.Errorf("config: shadow buffer size must be positive, got %d", c.Shadow.BufferSize)
	}
	if c.Lights.Ring < 0 {
		return fmt.Errorf("config: ring light count cannot be negative, got %d", c.Lights.Ring)
	}
	if c.Lights.RingTotal < 1 {
		return fmt.Errorf("config: ring total must be at least 1, got %d", c.Lights.RingTotal)
	}
	if c.Lights.Distance <= 0 {
		return fmt.Errorf("config: light distance must be positive, got %v", c.Lights.Distance)
	}
	return nil
}
