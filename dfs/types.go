// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, successor
// filtering and full-automaton (forest) traversal.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/ltlfsynth/automaton"
)

// VertexState represents the DFS visitation state of a state.
const (
	White = iota // White: the state has not been visited yet.
	Gray         // Gray: the state is in the recursion stack (visiting).
	Black        // Black: the state and all its descendants have been fully explored.
)

var (
	// ErrAutomatonNil is returned when a nil automaton is passed to DFS or
	// TopologicalSort.
	ErrAutomatonNil = errors.New("dfs: automaton is nil")

	// ErrStartStateNotFound indicates that the start state does not exist.
	ErrStartStateNotFound = errors.New("dfs: start state not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(a, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a state (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id automaton.StateID) error

	// OnExit, if non-nil, is invoked after all descendants of a state
	// have been explored (post-order), before appending to result.Order.
	OnExit func(id automaton.StateID) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start state. Default is -1 (no limit).
	MaxDepth int

	// FilterSuccessor, if non-nil, is called for each successor before recursing.
	// Return true to traverse into it, false to skip it.
	FilterSuccessor func(from, to automaton.StateID) bool

	// FullTraversal, if true, runs DFS from every unvisited state,
	// covering unreachable parts (forest traversal). Default is false.
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No hooks
//   - No depth limit (MaxDepth = -1)
//   - No filtering
//   - Single-source traversal
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. nil keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id automaton.StateID) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id automaton.StateID) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit (0 = start state only).
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterSuccessor skips successors for which fn returns false.
func WithFilterSuccessor(fn func(from, to automaton.StateID) bool) Option {
	return func(o *DFSOptions) {
		o.FilterSuccessor = fn
	}
}

// WithFullTraversal restarts DFS from each unvisited state.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records states in the sequence they finished (post-order).
	Order []automaton.StateID

	// Depth maps each state to its discovery depth from its tree root.
	Depth map[automaton.StateID]int

	// Parent maps each state to the state it was first discovered from.
	// Roots have no entry.
	Parent map[automaton.StateID]automaton.StateID

	// Visited flags which states were reached.
	Visited map[automaton.StateID]bool
}
