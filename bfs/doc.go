// Package bfs provides breadth-first search over an automaton.Automaton,
// returning transition-count distances, parent links, and visit order.
//
// What
//
//   - Explore states in non-decreasing distance from a set of start states.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from state → distance (transitions) from the nearest start
//   - Parent: map from state → its predecessor in the BFS forest
//   - Supports functional hooks at two stages:
//   - OnEnqueue (before a state is enqueued)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual transitions via WithFilterTransition.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Reachability pruning: the game builder copies only the states reachable
//     from the initial state, so the fixpoint never scans dead weight.
//   - Shortest witnesses: PathTo reconstructs a minimal run to any reached state.
//
// Determinism
//
//	Start states are seeded in the given order and successors are enqueued in
//	transition insertion order, so the visit sequence is fully reproducible.
//
// Complexity (V = |States|, E = |Transitions|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(a, a.Initials(),
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	)
//
// Errors
//
//   - ErrAutomatonNil        if the automaton pointer is nil.
//   - ErrStartStateNotFound  if a start state does not exist.
//   - ErrOptionViolation     if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
//   - ctx.Err() when the context is cancelled.
package bfs
