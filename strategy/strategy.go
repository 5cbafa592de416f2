package strategy

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/ltlfsynth/automaton"
	"github.com/katalvlaran/ltlfsynth/bfs"
	"github.com/katalvlaran/ltlfsynth/dfs"
	"github.com/katalvlaran/ltlfsynth/domain"
	"github.com/katalvlaran/ltlfsynth/game"
)

// Strategy is a winning strategy: the strategy automaton, its domain and the
// output function over its states. It is never mutated after New, so any
// number of Players may share it.
type Strategy struct {
	automaton *game.Automaton
	domain    domain.PartitionedDomain
	output    OutputFunction
	initial   automaton.StateID

	horizonOnce sync.Once
	horizon     int
	horizonErr  error
}

// New wraps a strategy automaton. Every state of out must exist in a and every
// move must be a system move of dom.
//
// Errors:
//   - automaton.ErrNoInitial: a has no single initial state.
//   - automaton.ErrStateNotFound: out names an unknown state.
//   - domain.ErrDomain: a move sets a non-system proposition.
func New(a *game.Automaton, dom domain.PartitionedDomain, out OutputFunction) (*Strategy, error) {
	start, err := a.Initial()
	if err != nil {
		return nil, fmt.Errorf("strategy: %w", err)
	}
	for _, s := range out.States() {
		if !a.HasState(s) {
			return nil, fmt.Errorf("strategy: output function: %w: %d", automaton.ErrStateNotFound, s)
		}
		for _, y := range out.moves[s] {
			if err = dom.ValidateSystemMove(y); err != nil {
				return nil, fmt.Errorf("strategy: state %d: %w", s, err)
			}
		}
	}

	return &Strategy{automaton: a, domain: dom, output: out, initial: start}, nil
}

// Automaton returns the strategy automaton. Callers must not mutate it.
func (s *Strategy) Automaton() *game.Automaton { return s.automaton }

// Domain returns the partitioned domain.
func (s *Strategy) Domain() domain.PartitionedDomain { return s.domain }

// Output returns the output function.
func (s *Strategy) Output() OutputFunction { return s.output }

// Initial returns the initial strategy state.
func (s *Strategy) Initial() automaton.StateID { return s.initial }

// Horizon returns the largest number of Steps any play needs before Won,
// counted from FirstMove. A strategy whose initial state is terminal has
// horizon 0. The result is computed once.
//
// Extracted strategies are acyclic. A hand-built automaton with a cycle gives
// an error wrapping dfs.ErrCycleDetected.
func (s *Strategy) Horizon() (int, error) {
	s.horizonOnce.Do(func() {
		s.horizon, s.horizonErr = longestPath(s.automaton, s.initial)
	})

	return s.horizon, s.horizonErr
}

// longestPath is the longest transition count from start in a, ignoring
// transitions out of terminal states since play ends there.
func longestPath(a *game.Automaton, start automaton.StateID) (int, error) {
	states := a.States()
	play, remap := automaton.Induce(a,
		func(automaton.State) bool { return true },
		func(t automaton.Transition[domain.PartitionedInterpretation]) bool { return !states[t.From].Terminal },
	)
	if _, err := dfs.TopologicalSort(play); err != nil {
		return 0, fmt.Errorf("strategy: horizon: %w", err)
	}

	// acyclic, so every successor is finished before its predecessor exits
	h := make([]int, play.StateCount())
	_, err := dfs.DFS(play, remap[start], dfs.WithOnExit(func(s automaton.StateID) error {
		for _, t := range play.Delta(s) {
			h[s] = max(h[s], h[t.To]+1)
		}
		return nil
	}))
	if err != nil {
		return 0, fmt.Errorf("strategy: horizon: %w", err)
	}

	return h[remap[start]], nil
}

// errReached stops the shortest-win search at the first terminal.
var errReached = errors.New("strategy: terminal reached")

// ShortestWin returns the states of a shortest play from the initial state to
// a terminal one, as if the environment cooperated. The play takes
// len(path)-1 Steps, never more than Horizon.
func (s *Strategy) ShortestWin() ([]automaton.StateID, error) {
	h, err := s.Horizon()
	if err != nil {
		return nil, err
	}
	states := s.automaton.States()
	goal := s.initial
	res, err := bfs.BFS(s.automaton, []automaton.StateID{s.initial},
		bfs.WithMaxDepth(h),
		bfs.WithFilterTransition(func(curr, _ automaton.StateID) bool { return !states[curr].Terminal }),
		bfs.WithOnVisit(func(id automaton.StateID, _ int) error {
			if states[id].Terminal {
				goal = id
				return errReached
			}
			return nil
		}),
	)
	switch {
	case errors.Is(err, errReached):
		return res.PathTo(goal)
	case err != nil:
		return nil, fmt.Errorf("strategy: shortest win: %w", err)
	}

	return nil, fmt.Errorf("strategy: shortest win: %w: no terminal state reachable", automaton.ErrInconsistent)
}

// NewPlayer returns a fresh cursor over s in state NotStarted.
func (s *Strategy) NewPlayer(opts ...Option) *Player {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Player{strategy: s, opts: o, state: NotStarted, current: s.initial}
}

// Option configures a Player.
type Option func(*Options)

// Options holds Player parameters.
type Options struct {
	// Policy chooses among winning moves. Default FirstMatch.
	Policy Policy

	// Logger receives one Debug record per turn.
	Logger *slog.Logger
}

// DefaultOptions returns FirstMatch and slog.Default().
func DefaultOptions() Options {
	return Options{Policy: FirstMatch(), Logger: slog.Default()}
}

// WithPolicy sets the move selection policy; nil keeps the default.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		if p != nil {
			o.Policy = p
		}
	}
}

// WithLogger sets the logger; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
