// SPDX-License-Identifier: MIT
// Package: ltlfsynth/builder
//
// impl_until_next.go - implementation of UntilNext() constructor.
//
// Canonical model: the minimal DFA of "(G a) U (X b)" over atoms {a, b}.
//
//	q0       --a-->      q1a        q0 --!a--> q1n
//	q1a      --b-->      acc        q1a --a&!b--> aAll    q1a --!a&!b--> dead
//	q1n      --b-->      acc        q1n --!b-->   dead
//	aAll     --a&b-->    aAllAcc    aAll --a&!b--> aAll   aAll --!a--> dead
//	aAllAcc  --a-->      aAllAcc    aAllAcc --!a--> dead
//	acc, dead loop on every world.
//
// Terminal states: acc, aAllAcc. With env={a}, sys={b} the game is realizable:
// the system plays anything first, then b.
//
// Contract:
//   - Ignores cfg atoms; the alphabet is fixed to {a, b}.
//   - Complete and deterministic: exactly one transition per (state, world).

package builder

import (
	"github.com/katalvlaran/ltlfsynth/automaton"
	"github.com/katalvlaran/ltlfsynth/domain"
	"github.com/katalvlaran/ltlfsynth/game"
)

const methodUntilNext = "UntilNext"

// UntilNext returns a Constructor that adds the DFA of "(G a) U (X b)".
func UntilNext() Constructor {
	return func(a *game.RawAutomaton, _ builderConfig) error {
		q0 := a.AddState(true, false)
		q1a := a.AddState(false, false)
		q1n := a.AddState(false, false)
		acc := a.AddState(false, true)
		aAll := a.AddState(false, false)
		aAllAcc := a.AddState(false, true)
		dead := a.AddState(false, false)

		// next maps a world (has a, has b) to the target of each state.
		type edge struct {
			from automaton.StateID
			next func(hasA, hasB bool) automaton.StateID
		}
		edges := []edge{
			{q0, func(hasA, _ bool) automaton.StateID {
				if hasA {
					return q1a
				}
				return q1n
			}},
			{q1a, func(hasA, hasB bool) automaton.StateID {
				switch {
				case hasB:
					return acc
				case hasA:
					return aAll
				default:
					return dead
				}
			}},
			{q1n, func(_, hasB bool) automaton.StateID {
				if hasB {
					return acc
				}
				return dead
			}},
			{acc, func(_, _ bool) automaton.StateID { return acc }},
			{aAll, func(hasA, hasB bool) automaton.StateID {
				switch {
				case !hasA:
					return dead
				case hasB:
					return aAllAcc
				default:
					return aAll
				}
			}},
			{aAllAcc, func(hasA, _ bool) automaton.StateID {
				if hasA {
					return aAllAcc
				}
				return dead
			}},
			{dead, func(_, _ bool) automaton.StateID { return dead }},
		}

		for _, e := range edges {
			for _, w := range Worlds("a", "b") {
				to := e.next(w.Contains(domain.Proposition("a")), w.Contains(domain.Proposition("b")))
				if err := addWorld(a, methodUntilNext, e.from, w, to); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
