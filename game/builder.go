package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/ltlfsynth/automaton"
	"github.com/katalvlaran/ltlfsynth/bfs"
	"github.com/katalvlaran/ltlfsynth/domain"
)

// Build converts the raw possible-world automaton into the game automaton for
// dom. The input is not mutated; the result is a fresh automaton.
//
// Errors:
//   - ErrAutomatonNil: raw is nil.
//   - domain.ErrUndeclared: a world mentions an atom outside dom.
//   - automaton.ErrNoInitial: the reachable automaton has no single initial state.
//   - ctx.Err(): cancelled during pruning.
func Build(raw *RawAutomaton, dom domain.PartitionedDomain, opts ...Option) (*Automaton, error) {
	if raw == nil {
		return nil, ErrAutomatonNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1) empty-trace elimination
	flat := automaton.EliminateEmpty(raw, WorldLabel.IsEmpty)

	// 2) reachability pruning
	pruned, err := Prune(o.Ctx, flat)
	if err != nil {
		return nil, err
	}
	if _, err = pruned.Initial(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	// 3) partition every world
	g, err := automaton.Relabel(pruned, func(t automaton.Transition[WorldLabel]) (domain.PartitionedInterpretation, error) {
		return dom.Partition(t.Label.World())
	})
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	o.Logger.Debug("game automaton built",
		slog.Int("raw_states", raw.StateCount()),
		slog.Int("reachable_states", g.StateCount()),
		slog.Int("transitions", g.TransitionCount()),
		slog.Int("terminals", len(g.Terminals())),
	)

	return g, nil
}

// Prune returns the sub-automaton of a reachable from its initial states,
// renumbered densely. a is not mutated.
func Prune[L automaton.Label](ctx context.Context, a *automaton.Automaton[L]) (*automaton.Automaton[L], error) {
	res, err := bfs.BFS(a, a.Initials(), bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("game: prune: %w", err)
	}
	out, _ := automaton.Induce(a, func(s automaton.State) bool { return res.Reached(s.ID) }, nil)

	return out, nil
}
