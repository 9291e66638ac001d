package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if CHARTKIT_CONFIG is set
//  3. env (prefix CHARTKIT_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("CHARTKIT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: CHARTKIT_ROW_HEIGHT, CHARTKIT_LOG_LEVEL, ...
	// Map env keys like CHARTKIT_ROW_HEIGHT -> row_height (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("CHARTKIT_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "chartkit_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.RowHeight <= 0 {
		return fmt.Errorf("%w: row_height must be positive", ErrInvalidConfig)
	}
	if c.VirtualizeThreshold < 0 {
		return fmt.Errorf("%w: virtualize_threshold must not be negative", ErrInvalidConfig)
	}
	if c.OverscanBefore < 0 || c.OverscanTotal < c.OverscanBefore {
		return fmt.Errorf("%w: overscan_total must be at least overscan_before", ErrInvalidConfig)
	}
	if c.DebounceDelayMS < 0 {
		return fmt.Errorf("%w: debounce_delay_ms must not be negative", ErrInvalidConfig)
	}
	if c.LookupMaxResults <= 0 {
		return fmt.Errorf("%w: lookup_max_results must be positive", ErrInvalidConfig)
	}
	if c.SlotIntervalMinutes <= 0 {
		return fmt.Errorf("%w: slot_interval_minutes must be positive", ErrInvalidConfig)
	}
	return nil
}
