package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/chatflow/internal/preview"
	"github.com/san-kum/chatflow/internal/visibility"
)

const (
	DefaultTypingDelayMs  = 1800
	DefaultTickIntervalMs = 18
	DefaultCharsPerTick   = 1
	DefaultSettleMs       = 700
	DefaultTheme          = "violet"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Preview PreviewConfig `yaml:"preview"`
	Reveal  RevealConfig  `yaml:"reveal"`
	Theme   string        `yaml:"theme"`
	Content string        `yaml:"content,omitempty"`
}

// PreviewConfig times the hero chat preview. TypingDelayMs feeds both the
// phase timer and the reply's start delay.
type PreviewConfig struct {
	TypingDelayMs  int `yaml:"typing_delay_ms"`
	TickIntervalMs int `yaml:"tick_interval_ms"`
	CharsPerTick   int `yaml:"chars_per_tick"`
}

type RevealConfig struct {
	Threshold float64 `yaml:"threshold"`
	SettleMs  int     `yaml:"settle_ms"`
}

func DefaultConfig() *Config {
	return &Config{
		Preview: PreviewConfig{
			TypingDelayMs:  DefaultTypingDelayMs,
			TickIntervalMs: DefaultTickIntervalMs,
			CharsPerTick:   DefaultCharsPerTick,
		},
		Reveal: RevealConfig{
			Threshold: visibility.DefaultThreshold,
			SettleMs:  DefaultSettleMs,
		},
		Theme: DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
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

// Validate rejects settings that would stall or spin the animations.
func (c *Config) Validate() error {
	switch {
	case c.Preview.TickIntervalMs <= 0:
		return fmt.Errorf("%w: tick_interval_ms must be positive, got %d", ErrInvalidConfig, c.Preview.TickIntervalMs)
	case c.Preview.TypingDelayMs < 0:
		return fmt.Errorf("%w: typing_delay_ms must not be negative, got %d", ErrInvalidConfig, c.Preview.TypingDelayMs)
	case c.Preview.CharsPerTick < 1:
		return fmt.Errorf("%w: chars_per_tick must be at least 1, got %d", ErrInvalidConfig, c.Preview.CharsPerTick)
	case c.Reveal.Threshold < 0 || c.Reveal.Threshold > 1 || math.IsNaN(c.Reveal.Threshold):
		return fmt.Errorf("%w: threshold must be within [0, 1], got %v", ErrInvalidConfig, c.Reveal.Threshold)
	case c.Reveal.SettleMs < 0:
		return fmt.Errorf("%w: settle_ms must not be negative, got %d", ErrInvalidConfig, c.Reveal.SettleMs)
	}
	return nil
}

func (c *Config) PreviewOptions() preview.Options {
	return preview.Options{
		TypingDelay: time.Duration(c.Preview.TypingDelayMs) * time.Millisecond,
		Interval:    time.Duration(c.Preview.TickIntervalMs) * time.Millisecond,
		Step:        c.Preview.CharsPerTick,
	}
}

func (c *Config) Settle() time.Duration {
	return time.Duration(c.Reveal.SettleMs) * time.Millisecond
}
