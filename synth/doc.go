// Package synth decides realizability of a game automaton and extracts a
// winning strategy.
//
// The system wins a play if it reaches a terminal state. Each turn the system
// commits to a move y (an interpretation of its propositions); the environment
// answers with x; the game moves along the transition labeled (x, y).
//
// Pipeline:
//
//	raw ──game.Build──▶ game ──BuildIndex──▶ TransitionIndex ──Solve──▶ Solution ──Extract──▶ strategy.Strategy
//
// Solve is the attractor least fixpoint of the terminal states: a state is
// winning if some y leads only to winning states whatever x is. Every such y
// is kept in the OutputFunction, so the strategy player may choose among them.
// A state with no transitions for y is not constrained by y; completeness of
// the upstream automaton is the caller's contract.
//
// New wraps the pipeline; IsRealizable and StrategyGenerator answer the two
// questions callers ask.
package synth
