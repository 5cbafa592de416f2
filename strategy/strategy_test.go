package strategy_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ltlfsynth/automaton"
	"github.com/katalvlaran/ltlfsynth/builder"
	"github.com/katalvlaran/ltlfsynth/dfs"
	"github.com/katalvlaran/ltlfsynth/domain"
	"github.com/katalvlaran/ltlfsynth/game"
	"github.com/katalvlaran/ltlfsynth/strategy"
	"github.com/katalvlaran/ltlfsynth/synth"
)

var (
	none = domain.NewInterpretation()
	a    = domain.NewInterpretation("a")
	b    = domain.NewInterpretation("b")
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// untilNext returns the strategy of "(G a) U (X b)", env={a}, sys={b}.
func untilNext(t *testing.T) *strategy.Strategy {
	t.Helper()
	raw, err := builder.BuildRaw(nil, builder.UntilNext())
	require.NoError(t, err)
	dom, err := builder.Domain()
	require.NoError(t, err)
	s, err := synth.New(context.Background(), raw, dom, synth.WithLogger(quiet()))
	require.NoError(t, err)
	require.True(t, s.IsRealizable())
	return s.Strategy()
}

func label(t *testing.T, env, sys domain.Interpretation) domain.PartitionedInterpretation {
	t.Helper()
	l, err := domain.NewPartitionedInterpretation(env, sys)
	require.NoError(t, err)
	return l
}

func TestOutputFunction(t *testing.T) {
	f := strategy.NewOutputFunction(map[automaton.StateID][]domain.Interpretation{
		2: {b, none, b},
		0: {none},
		5: nil,
	})
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []automaton.StateID{0, 2}, f.States())
	assert.Equal(t, []domain.Interpretation{none, b}, f.Moves(2))
	assert.True(t, f.Has(2, b))
	assert.False(t, f.Has(0, b))
	assert.Empty(t, f.Moves(5))

	r := f.Remap(map[automaton.StateID]automaton.StateID{2: 1})
	assert.Equal(t, []automaton.StateID{1}, r.States())
}

func TestPlayer_UntilNext(t *testing.T) {
	st := untilNext(t)
	p := st.NewPlayer(strategy.WithLogger(quiet()))
	assert.Equal(t, strategy.NotStarted, p.State())

	out, err := p.FirstMove()
	require.NoError(t, err)
	assert.False(t, out.Success())
	assert.True(t, out.Move.Equal(none))
	assert.Equal(t, strategy.AwaitingEnvironment, p.State())
	promised, ok := p.Promised()
	assert.True(t, ok)
	assert.True(t, promised.Equal(none))

	out, err = p.Step(a)
	require.NoError(t, err)
	assert.True(t, out.Move.Equal(b))

	out, err = p.Step(none)
	require.NoError(t, err)
	assert.True(t, out.Success())
	assert.Equal(t, strategy.Won, p.State())
	_, ok = p.Promised()
	assert.False(t, ok)
}

func TestPlayer_OutputsStayInDomain(t *testing.T) {
	st := untilNext(t)
	dom := st.Domain()
	for _, env := range [][]domain.Interpretation{{none, none}, {a, a}, {a, none}, {none, a}} {
		p := st.NewPlayer(strategy.WithLogger(quiet()))
		out, err := p.FirstMove()
		require.NoError(t, err)
		require.NoError(t, dom.ValidateSystemMove(out.Move))
		outs, err := p.BatchSteps(env)
		require.NoError(t, err)
		for _, o := range outs {
			if !o.Success() {
				assert.NoError(t, dom.ValidateSystemMove(o.Move))
			}
		}
		assert.Equal(t, strategy.Won, p.State(), "env %v", env)
	}
}

func TestPlayer_StepBeforeFirstMove(t *testing.T) {
	p := untilNext(t).NewPlayer()
	_, err := p.Step(a)
	assert.True(t, errors.Is(err, strategy.ErrProtocol))
	assert.Equal(t, strategy.NotStarted, p.State())
}

func TestPlayer_RejectedInputKeepsCursor(t *testing.T) {
	p := untilNext(t).NewPlayer(strategy.WithLogger(quiet()))
	_, err := p.FirstMove()
	require.NoError(t, err)
	_, err = p.Step(a)
	require.NoError(t, err)

	cur := p.Current()
	promised, _ := p.Promised()

	_, err = p.Step(b)
	assert.True(t, errors.Is(err, domain.ErrSystemProposition))
	assert.True(t, errors.Is(err, domain.ErrDomain))

	_, err = p.Step(domain.NewInterpretation("zz"))
	assert.True(t, errors.Is(err, domain.ErrUndeclared))

	assert.Equal(t, cur, p.Current())
	again, _ := p.Promised()
	assert.True(t, promised.Equal(again))
	assert.Equal(t, strategy.AwaitingEnvironment, p.State())
}

func TestPlayer_WonIsAbsorbing(t *testing.T) {
	p := untilNext(t).NewPlayer(strategy.WithLogger(quiet()))
	_, err := p.FirstMove()
	require.NoError(t, err)
	_, err = p.BatchSteps([]domain.Interpretation{a, a})
	require.NoError(t, err)
	require.Equal(t, strategy.Won, p.State())
	cur := p.Current()

	for _, in := range []domain.Interpretation{none, a, b, domain.NewInterpretation("zz")} {
		out, err := p.Step(in)
		require.NoError(t, err)
		assert.True(t, out.Success())
		assert.Equal(t, cur, p.Current())
	}
}

func TestPlayer_ResetRoundTrip(t *testing.T) {
	st := untilNext(t)
	for _, policy := range []func() strategy.Policy{
		strategy.FirstMatch,
		func() strategy.Policy { return strategy.SeededRandom(9) },
	} {
		fresh := st.NewPlayer(strategy.WithPolicy(policy()), strategy.WithLogger(quiet()))
		want, err := fresh.FirstMove()
		require.NoError(t, err)

		p := st.NewPlayer(strategy.WithPolicy(policy()), strategy.WithLogger(quiet()))
		_, err = p.FirstMove()
		require.NoError(t, err)
		_, err = p.BatchSteps([]domain.Interpretation{a, none})
		require.NoError(t, err)

		p.Reset()
		assert.Equal(t, strategy.NotStarted, p.State())
		assert.Equal(t, st.Initial(), p.Current())
		got, err := p.FirstMove()
		require.NoError(t, err)
		assert.Equal(t, want.String(), got.String())

		// FirstMove mid-play restarts as well
		_, err = p.Step(a)
		require.NoError(t, err)
		got, err = p.FirstMove()
		require.NoError(t, err)
		assert.Equal(t, want.String(), got.String())
		assert.Equal(t, st.Initial(), p.Current())
	}
}

func TestPlayer_BatchStepsStopsOnError(t *testing.T) {
	p := untilNext(t).NewPlayer(strategy.WithLogger(quiet()))
	_, err := p.FirstMove()
	require.NoError(t, err)

	outs, err := p.BatchSteps([]domain.Interpretation{a, b, none})
	assert.True(t, errors.Is(err, domain.ErrDomain))
	require.Len(t, outs, 1)
	assert.True(t, outs[0].Move.Equal(b))
	// the first step is kept
	assert.Equal(t, strategy.AwaitingEnvironment, p.State())
	assert.NotEqual(t, p.Strategy().Initial(), p.Current())
}

func TestPlayer_Determinism(t *testing.T) {
	st := untilNext(t)
	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := st.NewPlayer(strategy.WithLogger(quiet()))
			first, _ := p.FirstMove()
			second, _ := p.Step(a)
			results[i] = fmt.Sprintf("%s|%s|%d", first, second, p.Current())
		}(i)
	}
	wg.Wait()
	for _, r := range results[1:] {
		assert.Equal(t, results[0], r)
	}
}

func TestPolicies(t *testing.T) {
	moves := []domain.Interpretation{none, domain.NewInterpretation("x", "y"), domain.NewInterpretation("y")}

	assert.True(t, strategy.FirstMatch().Select(0, moves).Equal(none))

	most := strategy.Priority(func(x, y domain.Interpretation) bool { return x.Len() > y.Len() })
	assert.Equal(t, "{x, y}", most.Select(0, moves).String())
	assert.True(t, strategy.Priority(strategy.FewestTrue).Select(0, moves).Equal(none))
	assert.True(t, strategy.Priority(nil).Select(0, moves).Equal(none))

	r1, r2 := strategy.SeededRandom(3), strategy.SeededRandom(3)
	for i := 0; i < 10; i++ {
		assert.Equal(t, r1.Select(0, moves).Key(), r2.Select(0, moves).Key())
	}
}

func TestPlayer_TerminalInitialWinsAtOnce(t *testing.T) {
	raw, err := builder.BuildRaw(nil, builder.Accepting())
	require.NoError(t, err)
	dom, err := builder.Domain()
	require.NoError(t, err)
	g, err := game.Build(raw, dom)
	require.NoError(t, err)

	st, err := strategy.New(g, dom, strategy.NewOutputFunction(nil))
	require.NoError(t, err)
	p := st.NewPlayer()
	out, err := p.FirstMove()
	require.NoError(t, err)
	assert.True(t, out.Success())
	assert.Equal(t, "success", out.String())
	assert.Equal(t, strategy.Won, p.State())
}

func TestPlayer_InconsistentAutomaton(t *testing.T) {
	dom, err := builder.Domain()
	require.NoError(t, err)

	// two arrivals on the same label
	g := automaton.New[domain.PartitionedInterpretation]()
	s0 := g.AddState(true, false)
	s1 := g.AddState(false, true)
	s2 := g.AddState(false, true)
	require.NoError(t, g.AddTransition(s0, label(t, a, b), s1))
	require.NoError(t, g.AddTransition(s0, label(t, a, b), s2))

	st, err := strategy.New(g, dom, strategy.NewOutputFunction(map[automaton.StateID][]domain.Interpretation{s0: {b}}))
	require.NoError(t, err)
	p := st.NewPlayer(strategy.WithLogger(quiet()))
	_, err = p.FirstMove()
	require.NoError(t, err)

	_, err = p.Step(a)
	assert.True(t, errors.Is(err, automaton.ErrNondeterministic))
	assert.True(t, errors.Is(err, automaton.ErrInconsistent))
	assert.Equal(t, s0, p.Current())

	// no arrival at all
	_, err = p.Step(none)
	assert.True(t, errors.Is(err, automaton.ErrInconsistent))
	assert.Equal(t, s0, p.Current())
}

func TestPlayer_MissingMove(t *testing.T) {
	dom, err := builder.Domain()
	require.NoError(t, err)
	g := automaton.New[domain.PartitionedInterpretation]()
	g.AddState(true, false)

	st, err := strategy.New(g, dom, strategy.NewOutputFunction(nil))
	require.NoError(t, err)
	_, err = st.NewPlayer().FirstMove()
	assert.True(t, errors.Is(err, strategy.ErrNoMove))
	assert.True(t, errors.Is(err, automaton.ErrInconsistent))
}

func TestNew_Errors(t *testing.T) {
	dom, err := builder.Domain()
	require.NoError(t, err)

	g := automaton.New[domain.PartitionedInterpretation]()
	_, err = strategy.New(g, dom, strategy.NewOutputFunction(nil))
	assert.True(t, errors.Is(err, automaton.ErrNoInitial))

	g.AddState(true, false)
	_, err = strategy.New(g, dom, strategy.NewOutputFunction(map[automaton.StateID][]domain.Interpretation{4: {b}}))
	assert.True(t, errors.Is(err, automaton.ErrStateNotFound))

	_, err = strategy.New(g, dom, strategy.NewOutputFunction(map[automaton.StateID][]domain.Interpretation{0: {a}}))
	assert.True(t, errors.Is(err, domain.ErrDomain))
}

func TestStrategy_Horizon(t *testing.T) {
	h, err := untilNext(t).Horizon()
	require.NoError(t, err)
	assert.Equal(t, 2, h)

	raw, err := builder.BuildRaw(nil, builder.Accepting())
	require.NoError(t, err)
	dom, err := builder.Domain()
	require.NoError(t, err)
	g, err := game.Build(raw, dom)
	require.NoError(t, err)
	st, err := strategy.New(g, dom, strategy.NewOutputFunction(nil))
	require.NoError(t, err)
	h, err = st.Horizon()
	require.NoError(t, err)
	assert.Equal(t, 0, h)
	path, err := st.ShortestWin()
	require.NoError(t, err)
	assert.Equal(t, []automaton.StateID{st.Initial()}, path)
}

func TestStrategy_ShortestWin(t *testing.T) {
	st := untilNext(t)
	path, err := st.ShortestWin()
	require.NoError(t, err)
	require.Len(t, path, 3)
	assert.Equal(t, st.Initial(), path[0])
	assert.True(t, st.Automaton().IsTerminal(path[2]))

	// no terminal at all
	dom, err := builder.Domain()
	require.NoError(t, err)
	g := automaton.New[domain.PartitionedInterpretation]()
	s0 := g.AddState(true, false)
	s1 := g.AddState(false, false)
	require.NoError(t, g.AddTransition(s0, label(t, a, b), s1))
	st, err = strategy.New(g, dom, strategy.NewOutputFunction(nil))
	require.NoError(t, err)
	_, err = st.ShortestWin()
	assert.True(t, errors.Is(err, automaton.ErrInconsistent))
}

func TestStrategy_HorizonCycle(t *testing.T) {
	dom, err := builder.Domain()
	require.NoError(t, err)
	g := automaton.New[domain.PartitionedInterpretation]()
	s0 := g.AddState(true, false)
	s1 := g.AddState(false, false)
	require.NoError(t, g.AddTransition(s0, label(t, a, b), s1))
	require.NoError(t, g.AddTransition(s1, label(t, a, b), s0))

	st, err := strategy.New(g, dom, strategy.NewOutputFunction(nil))
	require.NoError(t, err)
	_, err = st.Horizon()
	assert.True(t, errors.Is(err, dfs.ErrCycleDetected))
	_, again := st.Horizon()
	assert.Equal(t, err, again)
}

func TestProtocolState_String(t *testing.T) {
	assert.Equal(t, "not-started", strategy.NotStarted.String())
	assert.Equal(t, "awaiting-environment", strategy.AwaitingEnvironment.String())
	assert.Equal(t, "won", strategy.Won.String())
}
