// SPDX-License-Identifier: MIT
// Package: ltlfsynth/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildRaw(bopts, cons...). Creates the automaton, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical automata.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ltlfsynth/automaton"
	"github.com/katalvlaran/ltlfsynth/domain"
	"github.com/katalvlaran/ltlfsynth/game"
)

// Constructor applies a deterministic automaton mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(a *game.RawAutomaton, cfg builderConfig) error

// BuildRaw creates a new raw possible-world automaton, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildRaw: %w".
func BuildRaw(bopts []BuilderOption, cons ...Constructor) (*game.RawAutomaton, error) {
	a := automaton.New[game.WorldLabel]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildRaw: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(a, cfg); err != nil {
			return nil, fmt.Errorf("BuildRaw: %w", err)
		}
	}

	return a, nil
}

// Domain returns the partitioned domain resolved from bopts (WithPropositions),
// the alphabet RandomGame draws its worlds from.
func Domain(bopts ...BuilderOption) (domain.PartitionedDomain, error) {
	cfg := newBuilderConfig(bopts...)

	return domain.NewPartitionedDomain(
		domain.NewPropositionSet(cfg.env...),
		domain.NewPropositionSet(cfg.sys...),
	)
}

// =============================================================================
// Factories - implemented in impl_*.go
// =============================================================================
//
// RandomGame(n, pTerminal)   complete deterministic automaton over all worlds of cfg atoms.
// UntilNext()                DFA of "(G a) U (X b)" over atoms {a, b}.
// Accepting()                one initial terminal state (the empty formula "true").
// Rejecting()                one initial non-terminal sink (the formula "false").
