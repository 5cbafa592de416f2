// Package dfs implements depth-first search (single-source and forest) on
// automaton.Automaton, following transitions regardless of label.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/ltlfsynth/automaton"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	next func(automaton.StateID) []automaton.StateID // successors, label-free
	opts DFSOptions
	res  *DFSResult
}

// successorsOf returns the label-free successor function of a, in
// transition insertion order with duplicates removed.
func successorsOf[L automaton.Label](a *automaton.Automaton[L]) func(automaton.StateID) []automaton.StateID {
	return func(s automaton.StateID) []automaton.StateID {
		seen := make(map[automaton.StateID]bool)
		var out []automaton.StateID
		for _, t := range a.Delta(s) {
			if !seen[t.To] {
				seen[t.To] = true
				out = append(out, t.To)
			}
		}
		return out
	}
}

// DFS performs depth-first search on a. With WithFullTraversal it covers
// every state; otherwise it starts only from start.
// Returns DFSResult or error if aborted by context or hook.
func DFS[L automaton.Label](a *automaton.Automaton[L], start automaton.StateID, opts ...Option) (*DFSResult, error) {
	// 1. Validate input
	if a == nil {
		return nil, ErrAutomatonNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !a.HasState(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartStateNotFound, start)
	}

	// 4. Initialize result with capacity hint
	n := a.StateCount()
	res := &DFSResult{
		Order:   make([]automaton.StateID, 0, n),
		Depth:   make(map[automaton.StateID]int, n),
		Parent:  make(map[automaton.StateID]automaton.StateID, n),
		Visited: make(map[automaton.StateID]bool, n),
	}
	w := &dfsWalker{next: successorsOf(a), opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for s := 0; s < n; s++ {
			if !res.Visited[automaton.StateID(s)] {
				if err := w.traverse(automaton.StateID(s), 0); err != nil {
					return res, err
				}
			}
		}
	} else if err := w.traverse(start, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits id at the given depth, recursing to successors.
func (w *dfsWalker) traverse(id automaton.StateID, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	// 5. Explore successors
	for _, nid := range w.next(id) {
		if w.opts.FilterSuccessor != nil && !w.opts.FilterSuccessor(id, nid) {
			continue
		}
		if !w.res.Visited[nid] {
			w.res.Parent[nid] = id
			if err := w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}

	// 7. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}
