// SPDX-License-Identifier: MIT
// Package: ltlfsynth/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/ltlfsynth/domain"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPropositions sets the environment and system atoms used by RandomGame
// and reported by Domain. Panics if a proposition appears on both sides or
// if the total exceeds maxAtoms (the world count is 2^atoms).
func WithPropositions(env, sys []domain.Proposition) BuilderOption {
	if _, err := domain.NewPartitionedDomain(domain.NewPropositionSet(env...), domain.NewPropositionSet(sys...)); err != nil {
		panic("builder: WithPropositions: " + err.Error())
	}
	if len(env)+len(sys) > maxAtoms {
		panic("builder: WithPropositions: too many atoms")
	}
	e := append([]domain.Proposition(nil), env...)
	s := append([]domain.Proposition(nil), sys...)

	return func(c *builderConfig) {
		c.env = e
		c.sys = s
	}
}
