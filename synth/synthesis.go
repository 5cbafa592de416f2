package synth

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ltlfsynth/domain"
	"github.com/katalvlaran/ltlfsynth/game"
	"github.com/katalvlaran/ltlfsynth/strategy"
)

// Synthesis is one solved (automaton, domain) pair. It is immutable after New.
type Synthesis struct {
	domain   domain.PartitionedDomain
	game     *game.Automaton
	index    *TransitionIndex
	solution *Solution
	strategy *strategy.Strategy
}

// New runs the whole pipeline once: game construction, indexing, the
// fixpoint and, when realizable, strategy extraction.
//
// Errors:
//   - domain.ErrUndeclared: WithSignature names an atom outside dom, or raw
//     reads one.
//   - any error of game.Build or Solve.
func New(ctx context.Context, raw *game.RawAutomaton, dom domain.PartitionedDomain, opts ...Option) (*Synthesis, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if o.Signature != nil {
		if err = dom.ValidateSignature(*o.Signature); err != nil {
			return nil, fmt.Errorf("synth: %w", err)
		}
	}

	g, err := game.Build(raw, dom, game.WithContext(ctx), game.WithLogger(o.Logger))
	if err != nil {
		return nil, err
	}
	idx := BuildIndex(g)
	sol, err := Solve(ctx, g, idx, opts...)
	if err != nil {
		return nil, err
	}

	s := &Synthesis{domain: dom, game: g, index: idx, solution: sol}
	if sol.Realizable {
		if s.strategy, err = Extract(g, dom, sol); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// IsRealizable reports whether the system has a winning strategy.
func (s *Synthesis) IsRealizable() bool { return s.solution.Realizable }

// StrategyGenerator returns a fresh Player over the shared strategy.
// It fails with ErrUnrealizable when there is none.
func (s *Synthesis) StrategyGenerator(opts ...strategy.Option) (*strategy.Player, error) {
	if s.strategy == nil {
		return nil, ErrUnrealizable
	}

	return s.strategy.NewPlayer(opts...), nil
}

// Strategy returns the strategy, or nil when unrealizable.
func (s *Synthesis) Strategy() *strategy.Strategy { return s.strategy }

// Game returns the game automaton.
func (s *Synthesis) Game() *game.Automaton { return s.game }

// Index returns the transition index of the game.
func (s *Synthesis) Index() *TransitionIndex { return s.index }

// Solution returns the fixpoint result.
func (s *Synthesis) Solution() *Solution { return s.solution }

// Domain returns the partitioned domain.
func (s *Synthesis) Domain() domain.PartitionedDomain { return s.domain }
