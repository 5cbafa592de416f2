package strategy

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/ltlfsynth/automaton"
	"github.com/katalvlaran/ltlfsynth/domain"
)

// Player is one play of a Strategy: a cursor into the shared strategy
// automaton plus the promised system move. A Player is not safe for
// concurrent use; run one Player per goroutine.
type Player struct {
	strategy *Strategy
	opts     Options

	state    ProtocolState
	current  automaton.StateID
	promised domain.Interpretation
}

// FirstMove starts (or restarts) play from the initial state and emits the
// first system move, or the Won sentinel if the initial state is terminal.
// Calling it mid-play is the same as Reset followed by FirstMove.
func (p *Player) FirstMove() (Output, error) {
	p.Reset()
	s := p.strategy
	if s.automaton.IsTerminal(s.initial) {
		p.state = Won
		p.opts.Logger.Debug("strategy: won at start", slog.Int("state", int(s.initial)))
		return Output{Won: true}, nil
	}

	y, err := p.choose(s.initial)
	if err != nil {
		return Output{}, err
	}
	p.promised = y
	p.state = AwaitingEnvironment
	p.opts.Logger.Debug("strategy: first move",
		slog.Int("state", int(s.initial)),
		slog.String("move", y.String()),
	)

	return Output{Move: y}, nil
}

// Step answers the environment move env. It combines env with the promised
// system move, advances the cursor by exactly one transition and emits the
// next system move or Won.
//
// Errors leave the Player unchanged:
//   - ErrProtocol: FirstMove was not called.
//   - domain.ErrDomain: env sets a system or undeclared proposition.
//   - automaton.ErrInconsistent: the step has zero or several arrival states,
//     or the arrival has no recorded move.
//
// In state Won, Step returns Won for any input, valid or not.
func (p *Player) Step(env domain.Interpretation) (Output, error) {
	switch p.state {
	case NotStarted:
		return Output{}, ErrProtocol
	case Won:
		return Output{Won: true}, nil
	}

	s := p.strategy
	if err := s.domain.ValidateEnvironmentMove(env); err != nil {
		return Output{}, fmt.Errorf("strategy: environment move %s: %w", env, err)
	}
	label, err := domain.NewPartitionedInterpretation(env, p.promised)
	if err != nil {
		return Output{}, fmt.Errorf("strategy: %w", err)
	}
	next, err := s.automaton.StepOne(p.current, label)
	if err != nil {
		return Output{}, fmt.Errorf("strategy: %w", err)
	}

	if s.automaton.IsTerminal(next) {
		p.current, p.promised, p.state = next, domain.Interpretation{}, Won
		p.opts.Logger.Debug("strategy: won", slog.Int("state", int(next)), slog.String("env", env.String()))
		return Output{Won: true}, nil
	}

	y, err := p.choose(next)
	if err != nil {
		return Output{}, err
	}
	p.current, p.promised = next, y
	p.opts.Logger.Debug("strategy: step",
		slog.Int("state", int(next)),
		slog.String("env", env.String()),
		slog.String("move", y.String()),
	)

	return Output{Move: y}, nil
}

// choose applies the policy to the winning moves of state.
func (p *Player) choose(state automaton.StateID) (domain.Interpretation, error) {
	moves := p.strategy.output.moves[state]
	if len(moves) == 0 {
		return domain.Interpretation{}, fmt.Errorf("%w: state %d", ErrNoMove, state)
	}

	return p.opts.Policy.Select(state, append([]domain.Interpretation(nil), moves...)), nil
}

// Reset rewinds to NotStarted at the initial state, drops the promised move
// and resets the policy if it supports it.
func (p *Player) Reset() {
	p.state = NotStarted
	p.current = p.strategy.initial
	p.promised = domain.Interpretation{}
	if r, ok := p.opts.Policy.(resetter); ok {
		r.Reset()
	}
}

// BatchSteps applies Step to each move in order. On failure it returns the
// outputs produced so far and the error; earlier steps are not rolled back.
func (p *Player) BatchSteps(moves []domain.Interpretation) ([]Output, error) {
	outs := make([]Output, 0, len(moves))
	for i, m := range moves {
		o, err := p.Step(m)
		if err != nil {
			return outs, fmt.Errorf("strategy: batch step %d: %w", i, err)
		}
		outs = append(outs, o)
	}

	return outs, nil
}

// State returns the protocol phase.
func (p *Player) State() ProtocolState { return p.state }

// Current returns the strategy state the cursor is on.
func (p *Player) Current() automaton.StateID { return p.current }

// Promised returns the system move committed for the current turn, if any.
func (p *Player) Promised() (domain.Interpretation, bool) {
	return p.promised, p.state == AwaitingEnvironment
}

// Strategy returns the shared strategy the player runs.
func (p *Player) Strategy() *Strategy { return p.strategy }
