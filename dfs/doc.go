// Package dfs implements depth-first search traversal and topological sort
// on an automaton.Automaton. Transitions are followed regardless of label.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre- and post-order hooks, cancellation via
//     context.Context, depth limiting, successor filtering and forest mode.
//   - TopologicalSort: orders the states of an acyclic automaton, returning
//     ErrCycleDetected otherwise. Strategy automata are acyclic, which is
//     what bounds the length of a winning play.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrAutomatonNil         automaton pointer is nil
//   - ErrStartStateNotFound   start state not in automaton
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
