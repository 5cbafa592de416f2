// File: view.go
// Role: Non-mutating derived automata (induced sub-automaton, relabeling).
// Determinism:
//   - Kept states receive fresh IDs in ascending order of their source IDs.
// Concurrency:
//   - Read lock on the source; the result is a fresh automaton.

package automaton

import "fmt"

// Induce returns the sub-automaton of a induced by the states for which
// keepState returns true. A transition survives iff both endpoints are kept and
// keepTransition (nil means keep all) returns true. Kept states are renumbered
// densely and keep their Initial/Terminal flags.
//
// The second result maps every kept source StateID to its fresh StateID.
//
// Complexity: O(V + E).
func Induce[L Label](
	a *Automaton[L],
	keepState func(State) bool,
	keepTransition func(Transition[L]) bool,
) (*Automaton[L], map[StateID]StateID) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := New[L]()
	remap := make(map[StateID]StateID)
	for _, s := range a.states {
		if keepState(s) {
			remap[s.ID] = out.AddState(s.Initial, s.Terminal)
		}
	}

	for _, ts := range a.out {
		for _, t := range ts {
			from, okFrom := remap[t.From]
			to, okTo := remap[t.To]
			if !okFrom || !okTo {
				continue
			}
			if keepTransition != nil && !keepTransition(t) {
				continue
			}
			// endpoints come from out's own arena, AddTransition cannot fail
			_ = out.AddTransition(from, t.Label, to)
		}
	}

	return out, remap
}

// Relabel returns a copy of a with identical states and every transition label
// translated by fn. The first error returned by fn aborts the copy.
//
// Complexity: O(V + E) plus the cost of fn.
func Relabel[L Label, M Label](a *Automaton[L], fn func(Transition[L]) (M, error)) (*Automaton[M], error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := New[M]()
	for _, s := range a.states {
		out.AddState(s.Initial, s.Terminal)
	}
	for _, ts := range a.out {
		for _, t := range ts {
			label, err := fn(t)
			if err != nil {
				return nil, fmt.Errorf("relabel %d->%d: %w", t.From, t.To, err)
			}
			if err = out.AddTransition(t.From, label, t.To); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
