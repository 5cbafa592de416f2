// SPDX-License-Identifier: MIT
// Package: ltlfsynth/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng = nil        (pure/deterministic unless seeded)
//   • env = ["a"]      environment atoms
//   • sys = ["b"]      system atoms

package builder

import (
	"math/rand"

	"github.com/katalvlaran/ltlfsynth/domain"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Atoms the random constructors draw worlds from.
	env []domain.Proposition
	sys []domain.Proposition
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng: nil,
		env: []domain.Proposition{"a"},
		sys: []domain.Proposition{"b"},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
