package strategy

import (
	"math/rand"

	"github.com/katalvlaran/ltlfsynth/automaton"
	"github.com/katalvlaran/ltlfsynth/domain"
)

// Policy picks one system move among the winning moves of a state. moves is
// never empty and is sorted by canonical key.
//
// A policy that carries state may also implement Reset() so that
// Player.Reset replays the same choices.
type Policy interface {
	Select(state automaton.StateID, moves []domain.Interpretation) domain.Interpretation
}

type resetter interface {
	Reset()
}

type firstMatch struct{}

func (firstMatch) Select(_ automaton.StateID, moves []domain.Interpretation) domain.Interpretation {
	return moves[0]
}

// FirstMatch picks the move with the lowest canonical key. It is the default.
func FirstMatch() Policy { return firstMatch{} }

type seededRandom struct {
	seed int64
	rng  *rand.Rand
}

func (p *seededRandom) Select(_ automaton.StateID, moves []domain.Interpretation) domain.Interpretation {
	return moves[p.rng.Intn(len(moves))]
}

func (p *seededRandom) Reset() {
	p.rng = rand.New(rand.NewSource(p.seed))
}

// SeededRandom picks uniformly with a private RNG. Reset reseeds it, so a
// reset player repeats its choices. Do not share one instance across players.
func SeededRandom(seed int64) Policy {
	return &seededRandom{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

type priority struct {
	less func(a, b domain.Interpretation) bool
}

func (p priority) Select(_ automaton.StateID, moves []domain.Interpretation) domain.Interpretation {
	best := moves[0]
	for _, y := range moves[1:] {
		if p.less(y, best) {
			best = y
		}
	}

	return best
}

// Priority picks the least move under less; ties keep key order.
// A nil less behaves like FirstMatch.
func Priority(less func(a, b domain.Interpretation) bool) Policy {
	if less == nil {
		return firstMatch{}
	}

	return priority{less: less}
}

// FewestTrue prefers moves that set the fewest system propositions.
func FewestTrue(a, b domain.Interpretation) bool { return a.Len() < b.Len() }
