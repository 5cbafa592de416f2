// File: empty.go
// Role: Elimination of empty-trace (epsilon) transitions.

package automaton

// EliminateEmpty returns an automaton equivalent to a with no transition whose
// label satisfies isEmpty.
//
// Each state s keeps its ID and Initial flag, becomes Terminal if any state of
// its empty-closure is terminal, and inherits every labeled (non-empty)
// transition leaving its empty-closure. The input is not mutated.
//
// Complexity: O(V·(V + E)) in the worst case (one closure walk per state).
func EliminateEmpty[L Label](a *Automaton[L], isEmpty func(L) bool) *Automaton[L] {
	a.mu.RLock()
	defer a.mu.RUnlock()

	n := len(a.states)
	closures := make([][]StateID, n)
	for i := 0; i < n; i++ {
		closures[i] = a.emptyClosure(StateID(i), isEmpty)
	}

	out := New[L]()
	for _, s := range a.states {
		terminal := s.Terminal
		for _, c := range closures[s.ID] {
			terminal = terminal || a.states[c].Terminal
		}
		out.AddState(s.Initial, terminal)
	}
	for _, s := range a.states {
		for _, c := range closures[s.ID] {
			for _, t := range a.out[c] {
				if isEmpty(t.Label) {
					continue
				}
				_ = out.AddTransition(s.ID, t.Label, t.To)
			}
		}
	}

	return out
}

// emptyClosure lists s and every state reachable from s through empty
// transitions only, in discovery order. Caller holds mu.
func (a *Automaton[L]) emptyClosure(s StateID, isEmpty func(L) bool) []StateID {
	seen := map[StateID]bool{s: true}
	order := []StateID{s}
	for i := 0; i < len(order); i++ {
		for _, t := range a.out[order[i]] {
			if isEmpty(t.Label) && !seen[t.To] {
				seen[t.To] = true
				order = append(order, t.To)
			}
		}
	}

	return order
}
