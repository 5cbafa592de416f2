// SPDX-License-Identifier: MIT
// Package: ltlfsynth/builder
//
// helpers.go - world enumeration and guarded transition insertion.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ltlfsynth/automaton"
	"github.com/katalvlaran/ltlfsynth/domain"
	"github.com/katalvlaran/ltlfsynth/game"
)

// maxAtoms bounds the alphabet so 2^atoms worlds stay enumerable.
const maxAtoms = 10

// Worlds enumerates every possible world over atoms: all 2^n subsets, ordered
// by the bitmask over the sorted atoms ({}, {a}, {b}, {a, b}, ...).
func Worlds(atoms ...domain.Proposition) []domain.Interpretation {
	sorted := domain.NewPropositionSet(atoms...).Props() // sorted, deduplicated

	n := len(sorted)
	out := make([]domain.Interpretation, 0, 1<<n)
	for mask := 0; mask < 1<<n; mask++ {
		var props []domain.Proposition
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				props = append(props, sorted[i])
			}
		}
		out = append(out, domain.NewInterpretation(props...))
	}

	return out
}

// addWorld inserts from -world-> to, wrapping failures with the method name.
func addWorld(a *game.RawAutomaton, method string, from automaton.StateID, world domain.Interpretation, to automaton.StateID) error {
	if err := a.AddTransition(from, game.WorldOf(world), to); err != nil {
		return fmt.Errorf("%s: AddTransition(%d,%s,%d): %v: %w", method, from, world, to, err, ErrConstructFailed)
	}

	return nil
}
