// SPDX-License-Identifier: MIT
// Package: ltlfsynth/builder
//
// impl_trivial.go - Accepting() and Rejecting() single-state constructors.
//
// Accepting: one initial terminal state looping on every world over cfg atoms.
// Rejecting: one initial non-terminal state looping on every world over cfg atoms.

package builder

import (
	"github.com/katalvlaran/ltlfsynth/domain"
	"github.com/katalvlaran/ltlfsynth/game"
)

const (
	methodAccepting = "Accepting"
	methodRejecting = "Rejecting"
)

// Accepting returns a Constructor for the automaton of "true".
func Accepting() Constructor {
	return sink(methodAccepting, true)
}

// Rejecting returns a Constructor for the automaton of "false".
func Rejecting() Constructor {
	return sink(methodRejecting, false)
}

func sink(method string, terminal bool) Constructor {
	return func(a *game.RawAutomaton, cfg builderConfig) error {
		s := a.AddState(true, terminal)
		atoms := append(append([]domain.Proposition(nil), cfg.env...), cfg.sys...)
		for _, w := range Worlds(atoms...) {
			if err := addWorld(a, method, s, w, s); err != nil {
				return err
			}
		}

		return nil
	}
}
