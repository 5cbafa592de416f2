package automaton_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ltlfsynth/automaton"
)

// sym is a minimal single-letter alphabet for tests.
type sym string

func (s sym) Key() string { return string(s) }

// buildABC creates 0 -a-> 1 -b-> 2 with 0 initial and 2 terminal.
func buildABC(t *testing.T) *automaton.Automaton[sym] {
	t.Helper()
	a := automaton.New[sym]()
	s0 := a.AddState(true, false)
	s1 := a.AddState(false, false)
	s2 := a.AddState(false, true)
	require.NoError(t, a.AddTransition(s0, "a", s1))
	require.NoError(t, a.AddTransition(s1, "b", s2))

	return a
}

func TestAutomaton_AddAndQuery(t *testing.T) {
	a := buildABC(t)

	assert.Equal(t, 3, a.StateCount())
	assert.Equal(t, 2, a.TransitionCount())
	assert.Equal(t, []automaton.StateID{0}, a.Initials())
	assert.Equal(t, []automaton.StateID{2}, a.Terminals())
	assert.True(t, a.IsInitial(0))
	assert.True(t, a.IsTerminal(2))
	assert.False(t, a.IsTerminal(99))

	init, err := a.Initial()
	require.NoError(t, err)
	assert.Equal(t, automaton.StateID(0), init)

	st, err := a.State(2)
	require.NoError(t, err)
	assert.Equal(t, automaton.State{ID: 2, Terminal: true}, st)

	_, err = a.State(7)
	assert.ErrorIs(t, err, automaton.ErrStateNotFound)
}

func TestAutomaton_AddTransitionErrors(t *testing.T) {
	a := automaton.New[sym]()
	s := a.AddState(true, false)
	assert.ErrorIs(t, a.AddTransition(s, "x", 5), automaton.ErrStateNotFound)
	assert.ErrorIs(t, a.AddTransition(-1, "x", s), automaton.ErrStateNotFound)
}

func TestAutomaton_DuplicateTransitionIsNoop(t *testing.T) {
	a := buildABC(t)
	require.NoError(t, a.AddTransition(0, "a", 1))
	assert.Equal(t, 2, a.TransitionCount())
	assert.Len(t, a.Delta(0), 1)
}

func TestAutomaton_Step(t *testing.T) {
	a := buildABC(t)

	assert.Equal(t, []automaton.StateID{1}, a.Step(0, "a"))
	assert.Empty(t, a.Step(0, "b"))

	got, err := a.StepOne(0, "a")
	require.NoError(t, err)
	assert.Equal(t, automaton.StateID(1), got)

	// No arrival is a determinism fault.
	_, err = a.StepOne(0, "b")
	assert.ErrorIs(t, err, automaton.ErrNondeterministic)
	assert.ErrorIs(t, err, automaton.ErrInconsistent)

	// Two arrivals on the same letter as well.
	require.NoError(t, a.AddTransition(0, "a", 2))
	_, err = a.StepOne(0, "a")
	assert.ErrorIs(t, err, automaton.ErrNondeterministic)

	_, err = a.StepOne(42, "a")
	assert.ErrorIs(t, err, automaton.ErrStateNotFound)
}

func TestAutomaton_InitialRequiresExactlyOne(t *testing.T) {
	a := automaton.New[sym]()
	_, err := a.Initial()
	assert.ErrorIs(t, err, automaton.ErrNoInitial)

	a.AddState(true, false)
	a.AddState(true, false)
	_, err = a.Initial()
	assert.ErrorIs(t, err, automaton.ErrNoInitial)
	assert.ErrorIs(t, err, automaton.ErrInconsistent)
}

func TestInduce(t *testing.T) {
	a := buildABC(t)
	require.NoError(t, a.AddTransition(1, "c", 0))

	sub, remap := automaton.Induce(a,
		func(s automaton.State) bool { return s.ID != 0 },
		nil,
	)
	assert.Equal(t, 2, sub.StateCount())
	assert.Equal(t, map[automaton.StateID]automaton.StateID{1: 0, 2: 1}, remap)
	// 1 -b-> 2 survives, 0 -a-> 1 and 1 -c-> 0 do not.
	want := []automaton.Transition[sym]{{From: 0, Label: "b", To: 1}}
	if diff := cmp.Diff(want, sub.Transitions()); diff != "" {
		t.Errorf("Induce transitions mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, sub.IsTerminal(1))
	assert.Empty(t, sub.Initials())

	// Transition filter.
	filtered, _ := automaton.Induce(a,
		func(automaton.State) bool { return true },
		func(tr automaton.Transition[sym]) bool { return tr.Label != "c" },
	)
	assert.Equal(t, 2, filtered.TransitionCount())

	// Source untouched.
	assert.Equal(t, 3, a.TransitionCount())
}

type upper string

func (u upper) Key() string { return string(u) }

func TestRelabel(t *testing.T) {
	a := buildABC(t)
	out, err := automaton.Relabel(a, func(tr automaton.Transition[sym]) (upper, error) {
		return upper("X" + tr.Label), nil
	})
	require.NoError(t, err)
	assert.Equal(t, a.States(), out.States())
	assert.Equal(t, []automaton.StateID{1}, out.Step(0, "Xa"))

	_, err = automaton.Relabel(a, func(tr automaton.Transition[sym]) (upper, error) {
		return "", automaton.ErrInconsistent
	})
	assert.ErrorIs(t, err, automaton.ErrInconsistent)
}

func TestEliminateEmpty(t *testing.T) {
	// 0 -ε-> 1 -a-> 2, 1 -ε-> 3(terminal)
	a := automaton.New[sym]()
	s0 := a.AddState(true, false)
	s1 := a.AddState(false, false)
	s2 := a.AddState(false, false)
	s3 := a.AddState(false, true)
	require.NoError(t, a.AddTransition(s0, "", s1))
	require.NoError(t, a.AddTransition(s1, "a", s2))
	require.NoError(t, a.AddTransition(s1, "", s3))

	out := automaton.EliminateEmpty(a, func(l sym) bool { return l == "" })

	for _, tr := range out.Transitions() {
		assert.NotEqual(t, sym(""), tr.Label)
	}
	assert.Equal(t, []automaton.StateID{s2}, out.Step(s0, "a"), "0 inherits 1's labeled transition")
	assert.True(t, out.IsTerminal(s0), "0 reaches a terminal through empty transitions")
	assert.True(t, out.IsTerminal(s1))
	assert.False(t, out.IsTerminal(s2))
	assert.Equal(t, 3, a.TransitionCount(), "input not mutated")
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, automaton.WriteDOT(&buf, buildABC(t), "abc"))
	dot := buf.String()
	assert.Contains(t, dot, `digraph "abc"`)
	assert.Contains(t, dot, "s2 [label=\"2\", shape=doublecircle];")
	assert.Contains(t, dot, "start0 -> s0;")
	assert.Contains(t, dot, `s0 -> s1 [label="a"];`)
}

// TestConcurrentStep ensures many readers can step one shared automaton.
func TestConcurrentStep(t *testing.T) {
	a := buildABC(t)
	const readers = 64
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			s, err := a.StepOne(0, "a")
			assert.NoError(t, err)
			s, err = a.StepOne(s, "b")
			assert.NoError(t, err)
			assert.True(t, a.IsTerminal(s))
		}()
	}
	wg.Wait()
}
