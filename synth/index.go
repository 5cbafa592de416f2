package synth

import (
	"sort"

	"github.com/katalvlaran/ltlfsynth/automaton"
	"github.com/katalvlaran/ltlfsynth/domain"
	"github.com/katalvlaran/ltlfsynth/game"
)

// TransitionIndex is the flat (state, system move) → arrival states table of a
// game automaton. Per state, moves are sorted by canonical key and each move's
// targets are deduplicated and ascending. It is read-only after BuildIndex.
type TransitionIndex struct {
	moves   [][]domain.Interpretation
	targets [][][]automaton.StateID
}

// BuildIndex groups the transitions of g by source state and system move.
// Complexity: O(V + E log E).
func BuildIndex(g *game.Automaton) *TransitionIndex {
	n := g.StateCount()
	idx := &TransitionIndex{
		moves:   make([][]domain.Interpretation, n),
		targets: make([][][]automaton.StateID, n),
	}

	for s := 0; s < n; s++ {
		byKey := make(map[string]int)
		var moves []domain.Interpretation
		var targets []map[automaton.StateID]struct{}
		for _, t := range g.Delta(automaton.StateID(s)) {
			y := t.Label.System()
			i, ok := byKey[y.Key()]
			if !ok {
				i = len(moves)
				byKey[y.Key()] = i
				moves = append(moves, y)
				targets = append(targets, make(map[automaton.StateID]struct{}))
			}
			targets[i][t.To] = struct{}{}
		}

		order := make([]int, len(moves))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool { return moves[order[a]].Key() < moves[order[b]].Key() })

		idx.moves[s] = make([]domain.Interpretation, len(moves))
		idx.targets[s] = make([][]automaton.StateID, len(moves))
		for pos, i := range order {
			idx.moves[s][pos] = moves[i]
			ts := make([]automaton.StateID, 0, len(targets[i]))
			for to := range targets[i] {
				ts = append(ts, to)
			}
			sort.Slice(ts, func(a, b int) bool { return ts[a] < ts[b] })
			idx.targets[s][pos] = ts
		}
	}

	return idx
}

// StateCount returns the number of indexed states.
func (ix *TransitionIndex) StateCount() int { return len(ix.moves) }

// Moves returns the system moves available at s, sorted by key.
func (ix *TransitionIndex) Moves(s automaton.StateID) []domain.Interpretation {
	if !ix.has(s) {
		return nil
	}

	return append([]domain.Interpretation(nil), ix.moves[s]...)
}

// Targets returns every state reachable from s when the system plays y,
// whatever the environment does. ok is false if s has no transition with y.
func (ix *TransitionIndex) Targets(s automaton.StateID, y domain.Interpretation) (targets []automaton.StateID, ok bool) {
	if !ix.has(s) {
		return nil, false
	}
	k := y.Key()
	i := sort.Search(len(ix.moves[s]), func(i int) bool { return ix.moves[s][i].Key() >= k })
	if i == len(ix.moves[s]) || ix.moves[s][i].Key() != k {
		return nil, false
	}

	return append([]automaton.StateID(nil), ix.targets[s][i]...), true
}

func (ix *TransitionIndex) has(s automaton.StateID) bool {
	return s >= 0 && int(s) < len(ix.moves)
}
