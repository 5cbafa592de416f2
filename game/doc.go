// Package game turns the possible-world automaton of a specification into the
// game automaton that synthesis is played on.
//
// The upstream automaton reads one possible world (the flat set of true atoms)
// per step; its transitions are labeled with WorldLabel, a tagged union of a
// possible world and the empty-trace marker. Build converts it in three steps,
// never mutating the input:
//
//  1. EliminateEmpty: drop empty-trace transitions (automaton.EliminateEmpty).
//  2. Prune: keep only the states reachable from the initial state (bfs), copied
//     into a fresh automaton, isomorphic up to renumbering to the reachable
//     subgraph of the input.
//  3. Relabel: split every world into a domain.PartitionedInterpretation. An
//     atom declared on neither side fails with domain.ErrUndeclared, which
//     guards against formulas referencing atoms outside the declared domain.
//
// The result is an Automaton (automaton.Automaton[domain.PartitionedInterpretation])
// with exactly one initial state. The upstream automaton must already be
// deterministic over its alphabet; no determinization is performed.
package game
