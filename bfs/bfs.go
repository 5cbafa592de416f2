// Package bfs provides breadth-first search over an automaton.Automaton,
// returning transition-count distances, parent links, and visit order.
//
// BFS explores states in increasing distance from a set of start states,
// with optional hooks, depth limiting, and transition filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ltlfsynth/automaton"
)

// queueItem pairs a state with its BFS depth.
type queueItem struct {
	id    automaton.StateID
	depth int
}

// successors is the slice of the automaton BFS needs; it keeps the walker
// independent of the label type.
type successors func(automaton.StateID) []automaton.StateID

// walker encapsulates mutable BFS state.
type walker struct {
	next    successors
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[automaton.StateID]bool
	res     *BFSResult
}

// BFS runs breadth-first search on a starting from every state in starts,
// applying any number of functional Options. Start states are visited at
// depth 0 in the given order.
// Returns ErrAutomatonNil or ErrStartStateNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS[L automaton.Label](a *automaton.Automaton[L], starts []automaton.StateID, opts ...Option) (*BFSResult, error) {
	if a == nil {
		return nil, ErrAutomatonNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start states
	for _, s := range starts {
		if !a.HasState(s) {
			return nil, fmt.Errorf("%w: %d", ErrStartStateNotFound, s)
		}
	}

	n := a.StateCount()
	w := &walker{
		next: func(s automaton.StateID) []automaton.StateID {
			delta := a.Delta(s)
			out := make([]automaton.StateID, len(delta))
			for i, t := range delta {
				out[i] = t.To
			}
			return out
		},
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[automaton.StateID]bool, n),
		res: &BFSResult{
			Order:  make([]automaton.StateID, 0, n),
			Depth:  make(map[automaton.StateID]int, n),
			Parent: make(map[automaton.StateID]automaton.StateID, n),
		},
	}

	// Seed queue with start states (no parent)
	for _, s := range starts {
		if !w.visited[s] {
			w.enqueue(s, 0)
		}
	}

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(id automaton.StateID, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueSuccessors(item)
	}

	return nil
}

// visit records the state in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueSuccessors applies filtering and MaxDepth and enqueues each unseen
// successor, recording its parent.
func (w *walker) enqueueSuccessors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nxt := range w.next(item.id) {
		if w.visited[nxt] || !w.opts.FilterTransition(item.id, nxt) {
			continue
		}
		w.res.Parent[nxt] = item.id
		w.enqueue(nxt, nextDepth)
	}
}
