package strategy

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/ltlfsynth/automaton"
	"github.com/katalvlaran/ltlfsynth/domain"
)

// Sentinel errors for strategy play.
var (
	// ErrProtocol indicates Step was called before FirstMove.
	ErrProtocol = errors.New("strategy: FirstMove must be called first")

	// ErrNoMove indicates a non-terminal strategy state without a recorded
	// winning move: the output function does not cover the automaton.
	ErrNoMove = fmt.Errorf("%w: no winning move recorded", automaton.ErrInconsistent)
)

// ProtocolState is the phase of a Player.
type ProtocolState int

const (
	// NotStarted: FirstMove has not been called since construction or Reset.
	NotStarted ProtocolState = iota
	// AwaitingEnvironment: a system move is promised, Step expects the environment's answer.
	AwaitingEnvironment
	// Won: a terminal state was reached. Absorbing.
	Won
)

// String returns the phase name.
func (s ProtocolState) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case AwaitingEnvironment:
		return "awaiting-environment"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("ProtocolState(%d)", int(s))
	}
}

// Output is what a Player emits per turn: either the Won sentinel or the
// system move it commits to.
type Output struct {
	Won  bool
	Move domain.Interpretation
}

// Success reports whether o is the Won sentinel.
func (o Output) Success() bool { return o.Won }

func (o Output) String() string {
	if o.Won {
		return "success"
	}

	return o.Move.String()
}

// OutputFunction maps each state to the system moves that keep play inside
// the winning region. It is immutable once built; moves per state are sorted
// by canonical key and deduplicated.
type OutputFunction struct {
	moves map[automaton.StateID][]domain.Interpretation
}

// NewOutputFunction copies m into an OutputFunction. States with no moves are dropped.
func NewOutputFunction(m map[automaton.StateID][]domain.Interpretation) OutputFunction {
	out := OutputFunction{moves: make(map[automaton.StateID][]domain.Interpretation, len(m))}
	for s, ys := range m {
		if len(ys) == 0 {
			continue
		}
		out.moves[s] = canonicalMoves(ys)
	}

	return out
}

// canonicalMoves sorts by key and removes duplicates, on a copy.
func canonicalMoves(ys []domain.Interpretation) []domain.Interpretation {
	cp := append([]domain.Interpretation(nil), ys...)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Key() < cp[j].Key() })
	uniq := cp[:0]
	for _, y := range cp {
		if len(uniq) > 0 && y.Key() == uniq[len(uniq)-1].Key() {
			continue
		}
		uniq = append(uniq, y)
	}

	return uniq
}

// Moves returns the winning moves of s, sorted by key. The slice is a copy.
func (f OutputFunction) Moves(s automaton.StateID) []domain.Interpretation {
	return append([]domain.Interpretation(nil), f.moves[s]...)
}

// Has reports whether y is a recorded move of s.
func (f OutputFunction) Has(s automaton.StateID, y domain.Interpretation) bool {
	k := y.Key()
	for _, m := range f.moves[s] {
		if m.Key() == k {
			return true
		}
	}

	return false
}

// States returns the states with at least one move, ascending.
func (f OutputFunction) States() []automaton.StateID {
	out := make([]automaton.StateID, 0, len(f.moves))
	for s := range f.moves {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Len returns the number of states with at least one move.
func (f OutputFunction) Len() int { return len(f.moves) }

// Remap returns the output function re-keyed through remap. States missing
// from remap are dropped.
func (f OutputFunction) Remap(remap map[automaton.StateID]automaton.StateID) OutputFunction {
	out := OutputFunction{moves: make(map[automaton.StateID][]domain.Interpretation, len(f.moves))}
	for s, ys := range f.moves {
		if to, ok := remap[s]; ok {
			out.moves[to] = ys
		}
	}

	return out
}
