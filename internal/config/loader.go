package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if MUSHTI_CONFIG is set
//  3. env (prefix MUSHTI_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("MUSHTI_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: MUSHTI_ADDR, MUSHTI_TICK_MS, ...
	// Map env keys like MUSHTI_TICK_MS -> tick_ms (flat keys), preserving
	// underscores to match koanf tags on the struct.
	envProvider := env.Provider("MUSHTI_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "mushti_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.TickMs <= 0 {
		return nil, errors.New("tick_ms must be positive")
	}
	if cfg.CommitThreshold <= 0 {
		return nil, errors.New("commit_threshold must be positive")
	}
	return &cfg, nil
}
