// Package dfs provides topological sort on automata.
//
// TopologicalSort computes a linear ordering of states such that for every
// transition u→v, u appears before v. Self-loops count as cycles.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ltlfsynth/automaton"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context. nil has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	next  func(automaton.StateID) []automaton.StateID
	opts  topoOptions
	state []int               // 0=White,1=Gray,2=Black
	order []automaton.StateID // post-order
}

// TopologicalSort computes a topological ordering of all states of a.
// If a is nil, returns ErrAutomatonNil; if a has a cycle, ErrCycleDetected
// naming a state on it.
func TopologicalSort[L automaton.Label](a *automaton.Automaton[L], options ...TopoOption) ([]automaton.StateID, error) {
	// 1. Validate
	if a == nil {
		return nil, ErrAutomatonNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	n := a.StateCount()
	sorter := &topoSorter{
		next:  successorsOf(a),
		opts:  opts,
		state: make([]int, n),
		order: make([]automaton.StateID, 0, n),
	}
	// 4. Drive DFS from every unvisited state
	for s := 0; s < n; s++ {
		if sorter.state[s] == White {
			if err := sorter.visit(automaton.StateID(s)); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id automaton.StateID) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w: through state %d", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	for _, to := range t.next(id) {
		if err := t.visit(to); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
