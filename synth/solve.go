package synth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ltlfsynth/automaton"
	"github.com/katalvlaran/ltlfsynth/domain"
	"github.com/katalvlaran/ltlfsynth/game"
	"github.com/katalvlaran/ltlfsynth/strategy"
)

// Solve computes the system's attractor of the terminal states of g.
//
// Winning starts as the terminal states. Each scan evaluates every
// non-winning state against a frozen snapshot of Winning: a state joins the
// frontier if some system move y sends every environment answer into Winning
// (idx.Targets(s, y) ⊆ Winning), and every such y is recorded in Output. The
// frontier is merged at the end of the scan, so all evaluations of one scan
// read the same snapshot. Solve stops when a scan adds nothing.
//
// idx may be nil, in which case it is built from g.
//
// Errors:
//   - ErrGameNil: g is nil.
//   - ErrOptionViolation: an invalid option.
//   - automaton.ErrNoInitial: g has no single initial state.
//   - automaton.ErrInconsistent: idx does not describe g.
//   - ErrBudgetExceeded: more than MaxIterations scans were needed.
//   - ctx.Err(): cancelled between scans.
//
// Complexity: O(V · (V + E)) worst case; each scan is O(V + E) and there are
// at most V scans.
func Solve(ctx context.Context, g *game.Automaton, idx *TransitionIndex, opts ...Option) (*Solution, error) {
	if g == nil {
		return nil, ErrGameNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if idx == nil {
		idx = BuildIndex(g)
	}
	n := g.StateCount()
	if idx.StateCount() != n {
		return nil, fmt.Errorf("%w: index has %d states, game has %d", automaton.ErrInconsistent, idx.StateCount(), n)
	}
	initial, err := g.Initial()
	if err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}

	winning := newWinningSet(n)
	for _, s := range g.Terminals() {
		winning.add(s)
	}
	output := make(map[automaton.StateID][]domain.Interpretation)
	sol := &Solution{Initial: initial}

	for {
		if o.MaxIterations > 0 && sol.Iterations >= o.MaxIterations {
			return nil, fmt.Errorf("%w: %d scans, %d winning of %d", ErrBudgetExceeded, sol.Iterations, winning.Len(), n)
		}
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		sol.Iterations++

		var candidates []automaton.StateID
		for s := 0; s < n; s++ {
			if !winning.in[s] {
				candidates = append(candidates, automaton.StateID(s))
			}
		}

		moves, err := scan(ctx, idx, winning, candidates, o.Workers)
		if err != nil {
			return nil, err
		}

		var frontier []automaton.StateID
		for i, s := range candidates {
			if len(moves[i]) > 0 {
				frontier = append(frontier, s)
				output[s] = moves[i]
			}
		}
		o.Logger.Debug("synth: scan",
			slog.Int("iteration", sol.Iterations),
			slog.Int("candidates", len(candidates)),
			slog.Int("frontier", len(frontier)),
			slog.Int("winning", winning.Len()),
		)
		if len(frontier) == 0 {
			break
		}
		for _, s := range frontier {
			winning.add(s)
		}
		sol.Frontiers = append(sol.Frontiers, frontier)
	}

	sol.Winning = winning
	sol.Output = strategy.NewOutputFunction(output)
	sol.Realizable = winning.Contains(initial)
	o.Logger.Info("synth: solved",
		slog.Bool("realizable", sol.Realizable),
		slog.Int("iterations", sol.Iterations),
		slog.Int("winning", winning.Len()),
		slog.Int("states", n),
	)

	return sol, nil
}

// scan evaluates every candidate against winning, which it only reads.
// moves[i] holds the winning moves of candidates[i]. With workers > 1 the
// candidates are split into contiguous chunks, one goroutine each; every
// goroutine writes only its own slots.
func scan(ctx context.Context, idx *TransitionIndex, winning WinningSet, candidates []automaton.StateID, workers int) ([][]domain.Interpretation, error) {
	moves := make([][]domain.Interpretation, len(candidates))
	eval := func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			ys, err := winningMoves(idx, winning, candidates[i])
			if err != nil {
				return err
			}
			moves[i] = ys
		}
		return nil
	}

	if workers <= 1 || len(candidates) < 2 {
		return moves, eval(0, len(candidates))
	}

	grp, gctx := errgroup.WithContext(ctx)
	chunk := (len(candidates) + workers - 1) / workers
	for lo := 0; lo < len(candidates); lo += chunk {
		lo, hi := lo, min(lo+chunk, len(candidates))
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return eval(lo, hi)
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return moves, nil
}

// winningMoves lists the moves y of s with idx.Targets(s, y) ⊆ winning.
func winningMoves(idx *TransitionIndex, winning WinningSet, s automaton.StateID) ([]domain.Interpretation, error) {
	var out []domain.Interpretation
	for i, y := range idx.moves[s] {
		safe := true
		for _, t := range idx.targets[s][i] {
			if int(t) < 0 || int(t) >= len(winning.in) {
				return nil, fmt.Errorf("%w: state %d move %s targets unknown state %d", automaton.ErrInconsistent, s, y, t)
			}
			if !winning.in[t] {
				safe = false
				break
			}
		}
		if safe {
			out = append(out, y)
		}
	}

	return out, nil
}
