package automaton

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for automaton operations.
var (
	// ErrStateNotFound indicates an operation referenced a state outside the arena.
	ErrStateNotFound = errors.New("automaton: state not found")

	// ErrInconsistent is the root of internal-consistency faults. It signals a
	// malformed upstream automaton or a bug in a transformation, never a user
	// condition.
	ErrInconsistent = errors.New("automaton: internal consistency fault")

	// ErrNondeterministic indicates a step with zero or several arrival states.
	ErrNondeterministic = fmt.Errorf("%w: step is not deterministic", ErrInconsistent)

	// ErrNoInitial indicates that the automaton does not have exactly one initial state.
	ErrNoInitial = fmt.Errorf("%w: expected exactly one initial state", ErrInconsistent)
)

// StateID identifies a state within its Automaton. IDs are dense, starting at 0.
type StateID int

// Label is a letter of the automaton's alphabet. Two labels are the same letter
// iff their keys are equal.
type Label interface {
	Key() string
}

// State is the identity of a state plus its acceptance flags.
type State struct {
	// ID is the index of the state in its automaton.
	ID StateID

	// Initial marks a start state.
	Initial bool

	// Terminal marks an accepting state: traces ending here are accepted.
	Terminal bool
}

// Transition is one labeled edge From→To.
type Transition[L Label] struct {
	From  StateID
	Label L
	To    StateID
}

// Automaton is a labeled finite automaton.
//
// mu guards every field. arrivals caches, per source state, the arrival states
// of each label key so Step is O(1) in the number of outgoing transitions.
type Automaton[L Label] struct {
	mu sync.RWMutex

	states []State
	out    [][]Transition[L]

	// arrivals[from][label.Key()] = arrival states in insertion order
	arrivals []map[string][]StateID

	transitionCount int
}

// New creates an empty Automaton.
// Complexity: O(1)
func New[L Label]() *Automaton[L] {
	return &Automaton[L]{}
}
