// Package ltlfsynth synthesizes controllers for reactive systems specified in
// LTL over finite traces.
//
// What is ltlfsynth?
//
//	An engine for two-player games on a deterministic automaton. The
//	environment and the system alternate moves; the system wins when the
//	finite play reaches an accepting state. Given the automaton of a formula
//	and a partition of its atoms, ltlfsynth decides whether the system can
//	always win and, if it can, builds a strategy and plays it turn by turn.
//
// Packages:
//
//	domain/     propositions, interpretations and the env/system partition
//	automaton/  generic labeled automaton store, empty-trace elimination, DOT export
//	bfs/, dfs/  reachability, depth-first traversal and topological sort
//	game/       raw possible-world automaton → pruned game automaton
//	synth/      transition index, attractor fixpoint, strategy extraction, facade
//	strategy/   immutable strategy, selection policies and the turn-by-turn Player
//	builder/    constructors of raw automata (worked example, random games)
//	cmd/        the ltlfsynth command: solve, play, dot, gen
//
// Quick start:
//
//	s, err := synth.New(ctx, raw, dom)
//	if err != nil { ... }
//	if !s.IsRealizable() { ... }
//	p, _ := s.StrategyGenerator()
//	out, _ := p.FirstMove()
//	for !out.Success() {
//		out, err = p.Step(nextEnvironmentMove())
//	}
//
// The formula-to-automaton translation happens upstream; ltlfsynth consumes
// its automaton.
package ltlfsynth
