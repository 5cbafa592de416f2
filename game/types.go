package game

import (
	"context"
	"errors"
	"log/slog"

	"github.com/katalvlaran/ltlfsynth/automaton"
	"github.com/katalvlaran/ltlfsynth/domain"
)

// ErrAutomatonNil is returned when Build receives a nil automaton.
var ErrAutomatonNil = errors.New("game: automaton is nil")

// emptyKey is the key of the empty-trace marker. Possible-world keys never
// start with a NUL byte.
const emptyKey = "\x00empty"

// WorldLabel labels one step of the upstream automaton: either a possible
// world or the empty-trace marker.
type WorldLabel struct {
	empty bool
	world domain.Interpretation
}

// World returns the label of the possible world in which exactly props are true.
func World(props ...domain.Proposition) WorldLabel {
	return WorldLabel{world: domain.NewInterpretation(props...)}
}

// WorldOf wraps an existing interpretation as a possible-world label.
func WorldOf(world domain.Interpretation) WorldLabel {
	return WorldLabel{world: world}
}

// EmptyTrace returns the empty-trace marker.
func EmptyTrace() WorldLabel {
	return WorldLabel{empty: true}
}

// IsEmpty reports whether l is the empty-trace marker.
func (l WorldLabel) IsEmpty() bool { return l.empty }

// World returns the possible world; the zero interpretation for the marker.
func (l WorldLabel) World() domain.Interpretation { return l.world }

// Key implements automaton.Label.
func (l WorldLabel) Key() string {
	if l.empty {
		return emptyKey
	}

	return l.world.Key()
}

// String renders the world, or "ε" for the marker.
func (l WorldLabel) String() string {
	if l.empty {
		return "ε"
	}

	return l.world.String()
}

// RawAutomaton is the upstream automaton over possible worlds.
type RawAutomaton = automaton.Automaton[WorldLabel]

// Automaton is the game automaton over partitioned interpretations.
type Automaton = automaton.Automaton[domain.PartitionedInterpretation]

// Option configures Build.
type Option func(*Options)

// Options holds Build parameters.
type Options struct {
	// Ctx allows cancellation of the reachability walk.
	Ctx context.Context

	// Logger receives Debug records about each build step.
	Logger *slog.Logger
}

// DefaultOptions returns background context and slog.Default().
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Logger: slog.Default()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
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
