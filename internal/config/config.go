package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	MinSize = 10
	MaxSize = 400
	// Speed is milliseconds per step before the algorithm multiplier.
	MinSpeed = 1
	MaxSpeed = 50

	DefaultSize           = 60
	DefaultSpeed          = 50
	DefaultBaseFrequency  = 200.0
	DefaultFrequencyScale = 5.0
	DefaultVolume         = 0.1
	DefaultSweepStrideMs  = 30
	DefaultTheme          = "cyberpunk"
)

type Config struct {
	Algorithm     string      `yaml:"algorithm"`
	ArraySize     int         `yaml:"array_size"`
	Speed         int         `yaml:"speed"`
	Seed          int64       `yaml:"seed"`
	Theme         string      `yaml:"theme"`
	Audio         AudioConfig `yaml:"audio"`
	SweepStrideMs int         `yaml:"sweep_stride_ms"`
}

type AudioConfig struct {
	Enabled        bool    `yaml:"enabled"`
	BaseFrequency  float64 `yaml:"base_frequency"`
	FrequencyScale float64 `yaml:"frequency_scale"`
	Volume         float64 `yaml:"volume"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: string(sorting.Bubble),
		ArraySize: DefaultSize,
		Speed:     DefaultSpeed,
		Theme:     DefaultTheme,
		Audio: AudioConfig{
			Enabled:        true,
			BaseFrequency:  DefaultBaseFrequency,
			FrequencyScale: DefaultFrequencyScale,
			Volume:         DefaultVolume,
		},
		SweepStrideMs: DefaultSweepStrideMs,
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over a copy of base; keys the file leaves out
// keep base's values. The result is validated.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve layers the defaults, the named preset and the file at path, in
// that order. Empty preset or path skips that layer.
func Resolve(preset, path string) (*Config, error) {
	cfg := DefaultConfig()
	if preset != "" {
		p, err := GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	if path != "" {
		return LoadOver(path, cfg)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := sorting.Parse(c.Algorithm); err != nil {
		return err
	}
	if c.ArraySize < MinSize || c.ArraySize > MaxSize {
		return fmt.Errorf("array_size %d not in [%d, %d]: %w", c.ArraySize, MinSize, MaxSize, ErrOutOfRange)
	}
	if c.Speed < MinSpeed || c.Speed > MaxSpeed {
		return fmt.Errorf("speed %d not in [%d, %d]: %w", c.Speed, MinSpeed, MaxSpeed, ErrOutOfRange)
	}
	if c.SweepStrideMs < 0 {
		return fmt.Errorf("sweep_stride_ms %d is negative: %w", c.SweepStrideMs, ErrOutOfRange)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume %g not in [0, 1]: %w", c.Audio.Volume, ErrOutOfRange)
	}
	if c.Audio.BaseFrequency < 0 || c.Audio.FrequencyScale < 0 {
		return fmt.Errorf("audio frequencies must be non-negative: %w", ErrOutOfRange)
	}
	return nil
}

// AlgorithmID returns the parsed algorithm, falling back to bubble when the
// field does not name one. Call Validate first to surface that case.
func (c *Config) AlgorithmID() sorting.ID {
	id, err := sorting.Parse(c.Algorithm)
	if err != nil {
		return sorting.Bubble
	}
	return id
}

func ClampSize(n int) int  { return clamp(n, MinSize, MaxSize) }
func ClampSpeed(s int) int { return clamp(s, MinSpeed, MaxSpeed) }

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
