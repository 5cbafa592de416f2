// Package builder provides reusable “functional‐options”‐style constructors
// for raw possible-world automata: the input the game package turns into a
// two-player game. It centralizes seeding, alphabet selection and validation
// so solver and strategy tests share one deterministic source of fixtures.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG and the environment/system atoms.
//     – WithSeed, WithRand, WithPropositions.
//   - Constructors (Constructor implementations):
//     – RandomGame(n, p):  complete deterministic automaton, terminal w.p. p.
//     – UntilNext():       DFA of "(G a) U (X b)" over {a, b}.
//     – Accepting():       single terminal state ("true").
//     – Rejecting():       single non-terminal sink ("false").
//   - Helpers:
//     – Worlds:            all 2^n possible worlds over a set of atoms.
//     – Domain:            the partitioned domain matching the options.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order yield identical automata.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Sentinel runtime errors (ErrTooFewStates, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with the method name.
//
// See individual function documentation for detailed contracts.
package builder
