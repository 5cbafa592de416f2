package synth

import (
	"fmt"

	"github.com/katalvlaran/ltlfsynth/automaton"
	"github.com/katalvlaran/ltlfsynth/domain"
	"github.com/katalvlaran/ltlfsynth/game"
	"github.com/katalvlaran/ltlfsynth/strategy"
)

// Extract builds the strategy automaton of a realizable solution: one fresh
// state per winning state of g (flags kept), and the transitions (s, l, t) of
// g with s non-terminal, t winning and l.System() ∈ sol.Output[s]. Terminal
// states keep no outgoing transitions. The output function is re-keyed onto
// the fresh states.
//
// Errors:
//   - ErrGameNil: g is nil.
//   - ErrUnrealizable: sol is not realizable.
func Extract(g *game.Automaton, dom domain.PartitionedDomain, sol *Solution) (*strategy.Strategy, error) {
	if g == nil {
		return nil, ErrGameNil
	}
	if sol == nil || !sol.Realizable {
		return nil, ErrUnrealizable
	}

	// flags are read up front; Induce holds g's read lock while filtering.
	states := g.States()
	keepState := func(s automaton.State) bool { return sol.Winning.Contains(s.ID) }
	keepTransition := func(t automaton.Transition[domain.PartitionedInterpretation]) bool {
		return !states[t.From].Terminal && sol.Output.Has(t.From, t.Label.System())
	}

	sa, remap := automaton.Induce(g, keepState, keepTransition)
	st, err := strategy.New(sa, dom, sol.Output.Remap(remap))
	if err != nil {
		return nil, fmt.Errorf("synth: extract: %w", err)
	}

	return st, nil
}
