// SPDX-License-Identifier: MIT
// Package: ltlfsynth/builder
//
// impl_random.go - implementation of RandomGame(n, pTerminal) constructor.
//
// Canonical model:
//   - States 0..n-1; state 0 is the single initial state.
//   - Each state is terminal independently with probability pTerminal.
//   - For every state and every world over env ∪ sys atoms, one transition to a
//     uniformly drawn target. The result is complete and deterministic.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewStates).
//   - 0 ≤ pTerminal ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n · 2^atoms) draws.
//
// Determinism:
//   - Terminal trials in state order, then target draws state-major, world-minor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ltlfsynth/automaton"
	"github.com/katalvlaran/ltlfsynth/domain"
	"github.com/katalvlaran/ltlfsynth/game"
)

const (
	methodRandomGame    = "RandomGame"
	minRandomGameStates = 1
	probMin             = 0.0
	probMax             = 1.0
)

// RandomGame returns a Constructor that samples a complete deterministic
// possible-world automaton with n states.
func RandomGame(n int, pTerminal float64) Constructor {
	return func(a *game.RawAutomaton, cfg builderConfig) error {
		if n < minRandomGameStates {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomGame, n, minRandomGameStates, ErrTooFewStates)
		}
		if pTerminal < probMin || pTerminal > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomGame, pTerminal, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomGame, ErrNeedRandSource)
		}

		rng := cfg.rng
		ids := make([]automaton.StateID, n)
		for i := 0; i < n; i++ {
			ids[i] = a.AddState(i == 0, rng.Float64() < pTerminal)
		}

		worlds := Worlds(append(append([]domain.Proposition(nil), cfg.env...), cfg.sys...)...)
		for i := 0; i < n; i++ {
			for _, w := range worlds {
				to := ids[rng.Intn(n)]
				if err := addWorld(a, methodRandomGame, ids[i], w, to); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
