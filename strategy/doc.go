// Package strategy plays a synthesized winning strategy turn by turn.
//
// A Strategy is immutable: the strategy automaton (only winning states, only
// transitions consistent with a winning move), the partitioned domain and an
// OutputFunction. Many Players may run against one Strategy at once; each
// Player owns only its cursor, its promised move and its Policy.
//
// Protocol:
//
//	NotStarted ──FirstMove──▶ AwaitingEnvironment ──Step(env)──▶ AwaitingEnvironment
//	     │                            │
//	     └──FirstMove (terminal)──▶ Won ◀──Step(env) (terminal)──┘
//
// Won is absorbing: Step returns the Won sentinel for any input. Reset returns
// to NotStarted from anywhere. Input is validated before the cursor moves, so
// a rejected Step leaves the Player exactly as it was.
//
// Which winning move is played is a Policy: FirstMatch (default, lowest
// canonical key), SeededRandom or Priority (FewestTrue is a ready ordering).
//
// Horizon reports the longest play the strategy can face, in Steps. Strategy
// automata are acyclic, so every play reaches Won within that bound.
package strategy
