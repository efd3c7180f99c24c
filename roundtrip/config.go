// SPDX-License-Identifier: MIT
// Package: replica/roundtrip

package roundtrip

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the environment-driven form of the Copier options.
type Config struct {
	Codec    string `env:"REPLICA_ROUNDTRIP_CODEC"     envDefault:"json"`
	MaxDepth int    `env:"REPLICA_ROUNDTRIP_MAX_DEPTH" envDefault:"64"`
}

// LoadConfigFromEnv reads Config from the environment, applying defaults.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("roundtrip: parse env: %w", err)
	}

	return cfg, nil
}

// NewFromConfig builds a Copier from cfg; opts are applied afterwards.
func NewFromConfig(cfg Config, opts ...Option) (*Copier, error) {
	codec, err := CodecByName(cfg.Codec)
	if err != nil {
		return nil, err
	}
	if cfg.MaxDepth < 1 {
		return nil, fmt.Errorf("%w: max depth %d < 1", ErrBadConfig, cfg.MaxDepth)
	}
	all := make([]Option, 0, len(opts)+2)
	all = append(all, WithCodec(codec), WithMaxDepth(cfg.MaxDepth))
	all = append(all, opts...)

	return New(all...), nil
}
