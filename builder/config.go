// SPDX-License-Identifier: MIT
// Package: brocs/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn       = DefaultIDFn  ("0","1","2",...)
//   • rng        = nil          (random constructors fail with ErrNeedRandSource)
//   • left/right = "L" / "R"    (CompleteBipartite only)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value, so constructors cannot leak changes to callers.
type builderConfig struct {
	idFn        IDFn
	rng         *rand.Rand
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig applies opts in order over the defaults; later options
// win. Empty partition prefixes fall back to the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
