// Package bfs provides tunable options and error definitions
// for breadth-first search over an automaton.Automaton.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/ltlfsynth/automaton"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartStateNotFound is returned when a start state is absent.
	ErrStartStateNotFound = errors.New("bfs: start state not found")

	// ErrAutomatonNil is returned if a nil automaton pointer is passed.
	ErrAutomatonNil = errors.New("bfs: automaton is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a state is enqueued, before visiting.
	// Receives the state and its depth from the nearest start state.
	OnEnqueue func(id automaton.StateID, depth int)

	// OnVisit is called when visiting a state. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id automaton.StateID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterTransition can skip a transition curr→next by returning false.
	FilterTransition func(curr, next automaton.StateID) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all transitions followed)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:              context.Background(),
		OnEnqueue:        func(automaton.StateID, int) {},
		OnVisit:          func(automaton.StateID, int) error { return nil },
		MaxDepth:         0,
		FilterTransition: func(_, _ automaton.StateID) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id automaton.StateID, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id automaton.StateID, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterTransition skips transitions when fn returns false.
func WithFilterTransition(fn func(curr, next automaton.StateID) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterTransition = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: states visited, in visit sequence.
//   - Depth: state → distance (in transitions) from the nearest start state.
//   - Parent: state → its predecessor in the BFS forest (start states have none).
type BFSResult struct {
	Order  []automaton.StateID
	Depth  map[automaton.StateID]int
	Parent map[automaton.StateID]automaton.StateID
}

// Reached reports whether id was visited.
func (r *BFSResult) Reached(id automaton.StateID) bool {
	_, ok := r.Depth[id]

	return ok
}

// PathTo reconstructs the path from its start state to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest automaton.StateID) ([]automaton.StateID, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	// build reversed path
	path := []automaton.StateID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
