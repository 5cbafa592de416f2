// File: methods.go
// Role: State and transition lifecycle, queries, and the deterministic single step.
// Determinism:
//   - States() enumerates by ascending StateID.
//   - Delta() and Step() preserve insertion order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package automaton

import "fmt"

// AddState appends a fresh state and returns its ID.
// Complexity: O(1) amortized.
func (a *Automaton[L]) AddState(initial, terminal bool) StateID {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := StateID(len(a.states))
	a.states = append(a.states, State{ID: id, Initial: initial, Terminal: terminal})
	a.out = append(a.out, nil)
	a.arrivals = append(a.arrivals, make(map[string][]StateID))

	return id
}

// AddTransition inserts (from, label, to). Re-adding an identical transition is
// a no-op; the relation is a set.
//
// Errors:
//   - ErrStateNotFound: if from or to is outside the arena.
//
// Complexity: O(k) where k is the number of arrivals already recorded for
// (from, label), normally 1.
func (a *Automaton[L]) AddTransition(from StateID, label L, to StateID) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.has(from) {
		return fmt.Errorf("%w: from=%d", ErrStateNotFound, from)
	}
	if !a.has(to) {
		return fmt.Errorf("%w: to=%d", ErrStateNotFound, to)
	}

	key := label.Key()
	for _, t := range a.arrivals[from][key] {
		if t == to {
			return nil // already present
		}
	}
	a.arrivals[from][key] = append(a.arrivals[from][key], to)
	a.out[from] = append(a.out[from], Transition[L]{From: from, Label: label, To: to})
	a.transitionCount++

	return nil
}

// has reports whether id is inside the arena. Caller holds mu.
func (a *Automaton[L]) has(id StateID) bool {
	return id >= 0 && int(id) < len(a.states)
}

// HasState reports whether id names a state of a.
func (a *Automaton[L]) HasState(id StateID) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.has(id)
}

// State returns the state with the given ID.
func (a *Automaton[L]) State(id StateID) (State, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if !a.has(id) {
		return State{}, fmt.Errorf("%w: %d", ErrStateNotFound, id)
	}

	return a.states[id], nil
}

// States returns every state by ascending ID. The slice is a copy.
func (a *Automaton[L]) States() []State {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]State, len(a.states))
	copy(out, a.states)

	return out
}

// StateCount returns the number of states.
func (a *Automaton[L]) StateCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.states)
}

// TransitionCount returns the number of transitions.
func (a *Automaton[L]) TransitionCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.transitionCount
}

// Delta returns the outgoing transitions of s in insertion order.
// An unknown state has no transitions.
func (a *Automaton[L]) Delta(s StateID) []Transition[L] {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if !a.has(s) {
		return nil
	}
	out := make([]Transition[L], len(a.out[s]))
	copy(out, a.out[s])

	return out
}

// Transitions returns all transitions grouped by ascending source state.
func (a *Automaton[L]) Transitions() []Transition[L] {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]Transition[L], 0, a.transitionCount)
	for _, ts := range a.out {
		out = append(out, ts...)
	}

	return out
}

// Initials returns the IDs of every initial state, ascending.
func (a *Automaton[L]) Initials() []StateID {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var out []StateID
	for _, s := range a.states {
		if s.Initial {
			out = append(out, s.ID)
		}
	}

	return out
}

// Initial returns the single initial state.
//
// Errors:
//   - ErrNoInitial: zero or several initial states.
func (a *Automaton[L]) Initial() (StateID, error) {
	ids := a.Initials()
	if len(ids) != 1 {
		return 0, fmt.Errorf("%w: found %d", ErrNoInitial, len(ids))
	}

	return ids[0], nil
}

// Terminals returns the IDs of every terminal state, ascending.
func (a *Automaton[L]) Terminals() []StateID {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var out []StateID
	for _, s := range a.states {
		if s.Terminal {
			out = append(out, s.ID)
		}
	}

	return out
}

// IsTerminal reports whether s is a terminal state. Unknown states are not.
func (a *Automaton[L]) IsTerminal(s StateID) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.has(s) && a.states[s].Terminal
}

// IsInitial reports whether s is an initial state. Unknown states are not.
func (a *Automaton[L]) IsInitial(s StateID) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.has(s) && a.states[s].Initial
}

// Step returns every state reachable from s by one transition labeled label.
// The result is empty when no such transition exists.
func (a *Automaton[L]) Step(s StateID, label L) []StateID {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if !a.has(s) {
		return nil
	}
	arr := a.arrivals[s][label.Key()]
	out := make([]StateID, len(arr))
	copy(out, arr)

	return out
}

// StepOne is the deterministic single step: it requires exactly one arrival state.
//
// Errors:
//   - ErrStateNotFound: s is outside the arena.
//   - ErrNondeterministic: zero or several arrival states.
func (a *Automaton[L]) StepOne(s StateID, label L) (StateID, error) {
	if !a.HasState(s) {
		return 0, fmt.Errorf("%w: %d", ErrStateNotFound, s)
	}
	arr := a.Step(s, label)
	if len(arr) != 1 {
		return 0, fmt.Errorf("%w: state %d on %q has %d arrival states", ErrNondeterministic, s, label.Key(), len(arr))
	}

	return arr[0], nil
}
