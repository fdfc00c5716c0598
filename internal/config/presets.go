package config

import (
	"fmt"
	"maps"
	"slices"
)

var Presets = map[string]*Config{
	"classroom": {
		Algorithm: "insertion", ArraySize: 20, Speed: 50, Theme: "minimal",
		Audio:         AudioConfig{Enabled: true, BaseFrequency: 200, FrequencyScale: 5, Volume: 0.2},
		SweepStrideMs: 60,
	},
	"showcase": {
		Algorithm: "quick", ArraySize: 120, Speed: 10, Theme: "cyberpunk",
		Audio:         AudioConfig{Enabled: true, BaseFrequency: 200, FrequencyScale: 5, Volume: 0.25},
		SweepStrideMs: 30,
	},
	"stress": {
		Algorithm: "bubble", ArraySize: 400, Speed: 1, Theme: "retro",
		Audio:         AudioConfig{Enabled: false, BaseFrequency: 200, FrequencyScale: 5, Volume: 0.2},
		SweepStrideMs: 5,
	},
	"slowmo": {
		Algorithm: "merge", ArraySize: 30, Speed: 50, Theme: "ocean",
		Audio:         AudioConfig{Enabled: true, BaseFrequency: 150, FrequencyScale: 8, Volume: 0.2},
		SweepStrideMs: 80,
	},
	"crescendo": {
		Algorithm: "heap", ArraySize: 200, Speed: 6, Theme: "sunset",
		Audio:         AudioConfig{Enabled: true, BaseFrequency: 110, FrequencyScale: 4, Volume: 0.3},
		SweepStrideMs: 15,
	},
}

// GetPreset returns a copy so callers can override fields freely.
func GetPreset(name string) (*Config, error) {
	p, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	cfg := *p
	return &cfg, nil
}

func ListPresets() []string {
	return slices.Sorted(maps.Keys(Presets))
}
