// Package automaton provides a thread-safe, in-memory finite automaton over an
// arbitrary label alphabet, with the elementary operations synthesis relies on.
//
// An Automaton[L] is a set of states (dense StateID indexes into an arena, each
// carrying Initial and Terminal flags) plus a labeled transition relation
// (from, label, to). Labels are compared through their canonical Key(), so any
// value type with a stable Key can serve as an alphabet letter.
//
// Core Methods:
//
//	// Construction
//	New[L]() *Automaton[L]                                 // O(1)
//	AddState(initial, terminal bool) StateID               // O(1)
//	AddTransition(from StateID, label L, to StateID) error // O(1) amortized
//
//	// Query
//	States() []State               // ascending StateID
//	Delta(s StateID) []Transition  // insertion order
//	Transitions() []Transition     // by source, then insertion order
//	Initials() / Initial()         // Initial() requires exactly one
//	Terminals() []StateID
//	Step(s, label) []StateID       // all arrival states
//	StepOne(s, label) (StateID, error) // exactly one arrival, else ErrNondeterministic
//
//	// Transformations (the input is never mutated)
//	Induce(a, keepState, keepTransition)   // sub-automaton, fresh StateIDs
//	Relabel(a, fn)                         // same states, new alphabet
//	EliminateEmpty(a, isEmpty)             // drop empty-trace transitions
//	WriteDOT(w, a, name)                   // Graphviz export
//
// Concurrency:
//
//	Every method takes the automaton's RWMutex; queries share the read lock, so
//	any number of goroutines may Step one shared automaton concurrently.
//
// Determinism:
//
//	States are enumerated by ascending StateID and transitions in insertion
//	order, so every derived automaton and every log line is reproducible.
//
// Errors:
//
//	ErrStateNotFound     - a StateID outside the arena.
//	ErrInconsistent      - root of internal-consistency faults (contract violations
//	                       of an upstream automaton); never recoverable.
//	ErrNondeterministic  - a step with zero or several arrival states.
//	ErrNoInitial         - the automaton does not have exactly one initial state.
package automaton
