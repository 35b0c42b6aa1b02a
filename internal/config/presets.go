package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"snappy": {
		Preview: PreviewConfig{TypingDelayMs: 600, TickIntervalMs: 8, CharsPerTick: 2},
		Reveal:  RevealConfig{Threshold: 0.05, SettleMs: 250},
		Theme:   DefaultTheme,
	},
	"calm": {
		Preview: PreviewConfig{TypingDelayMs: 2600, TickIntervalMs: 40, CharsPerTick: 1},
		Reveal:  RevealConfig{Threshold: 0.3, SettleMs: 1000},
		Theme:   "ocean",
	},
	"instant-reveal": {
		Preview: PreviewConfig{TypingDelayMs: 0, TickIntervalMs: 1, CharsPerTick: 64},
		Reveal:  RevealConfig{Threshold: 0, SettleMs: 0},
		Theme:   "minimal",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
