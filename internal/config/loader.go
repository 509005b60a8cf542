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

// Load builds a Config by layering defaults, optional file, and env
// vars. Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if MATURITY_CONFIG is set
//  3. env (prefix MATURITY_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("MATURITY_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: MATURITY_ADDR, MATURITY_MONGO_URI, ...
	// mapped to the struct's flat koanf keys (underscores preserved).
	envProvider := env.Provider("MATURITY_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "maturity_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.MongoURI == "" {
		return nil, errors.New("mongo_uri must not be empty")
	}
	return &cfg, nil
}
