package synth

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/ltlfsynth/automaton"
	"github.com/katalvlaran/ltlfsynth/domain"
	"github.com/katalvlaran/ltlfsynth/strategy"
)

// Sentinel errors for synthesis.
var (
	// ErrGameNil is returned when Solve or Extract receives a nil game.
	ErrGameNil = errors.New("synth: game automaton is nil")

	// ErrUnrealizable is returned when a strategy is requested for a game the
	// system cannot win.
	ErrUnrealizable = errors.New("synth: specification is unrealizable")

	// ErrBudgetExceeded is returned when the fixpoint did not converge within
	// WithMaxIterations scans.
	ErrBudgetExceeded = errors.New("synth: iteration budget exceeded")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("synth: invalid option supplied")
)

// WinningSet is the set of states from which the system can force a terminal
// state. Membership is O(1).
type WinningSet struct {
	in []bool
	n  int
}

func newWinningSet(size int) WinningSet {
	return WinningSet{in: make([]bool, size)}
}

func (w *WinningSet) add(s automaton.StateID) {
	if !w.in[s] {
		w.in[s] = true
		w.n++
	}
}

// Contains reports whether s is winning.
func (w WinningSet) Contains(s automaton.StateID) bool {
	return s >= 0 && int(s) < len(w.in) && w.in[s]
}

// Len returns the number of winning states.
func (w WinningSet) Len() int { return w.n }

// States returns the winning states, ascending.
func (w WinningSet) States() []automaton.StateID {
	out := make([]automaton.StateID, 0, w.n)
	for i, ok := range w.in {
		if ok {
			out = append(out, automaton.StateID(i))
		}
	}

	return out
}

// Solution is the result of Solve.
type Solution struct {
	// Winning is the attractor of the terminal states.
	Winning WinningSet

	// Output maps every non-terminal winning state to all of its winning moves.
	Output strategy.OutputFunction

	// Realizable is Winning.Contains(Initial).
	Realizable bool

	// Initial is the initial state of the game.
	Initial automaton.StateID

	// Iterations counts fixpoint scans, including the final empty one.
	Iterations int

	// Frontiers lists the states added by each non-empty scan, ascending.
	Frontiers [][]automaton.StateID
}

// Option configures Solve and New.
type Option func(*Options)

// Options holds solver and facade parameters.
type Options struct {
	// Workers is the number of goroutines scanning each iteration. 1 is sequential.
	Workers int

	// MaxIterations bounds the number of scans; 0 means unbounded.
	MaxIterations int

	// Logger receives per-iteration Debug records and the Info verdict.
	Logger *slog.Logger

	// Signature, when set, lists the atoms of the formula; New rejects
	// atoms outside the domain.
	Signature *domain.PropositionSet

	err error
}

// DefaultOptions returns a sequential, unbounded solver logging to slog.Default().
func DefaultOptions() Options {
	return Options{Workers: 1, Logger: slog.Default()}
}

// WithWorkers sets the scan parallelism. n < 1 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMaxIterations bounds the number of scans. n < 0 is an ErrOptionViolation.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max iterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
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

// WithSignature declares the atoms the formula mentions.
func WithSignature(props ...domain.Proposition) Option {
	return func(o *Options) {
		sig := domain.NewPropositionSet(props...)
		o.Signature = &sig
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
