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
//  2. file (YAML) if CHAMPS_CONFIG is set
//  3. env (prefix CHAMPS_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("CHAMPS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: CHAMPS_ADDR, CHAMPS_DATASET_PATH, ...
	// Map env keys like CHAMPS_DATASET_PATH -> dataset_path (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("CHAMPS_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "champs_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.MinTopClubs < 1:
		return nil, fmt.Errorf("%w: min_top_clubs must be positive", ErrInvalidConfig)
	case cfg.MaxTopClubs < cfg.MinTopClubs:
		return nil, fmt.Errorf("%w: max_top_clubs must be >= min_top_clubs", ErrInvalidConfig)
	case cfg.MaxUploadBytes <= 0:
		return nil, fmt.Errorf("%w: max_upload_bytes must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
