package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/ltlfsynth/automaton"
	"github.com/katalvlaran/ltlfsynth/bfs"
)

// ExampleBFS_shortestRun finds the fewest-transition run to a terminal state.
// Two routes lead from 0 to the terminal 4: 0→1→2→4 and 0→3→4.
func ExampleBFS_shortestRun() {
	a := automaton.New[sym]()
	for i := 0; i < 5; i++ {
		a.AddState(i == 0, i == 4)
	}
	for _, e := range [][2]automaton.StateID{{0, 1}, {1, 2}, {2, 4}, {0, 3}, {3, 4}} {
		_ = a.AddTransition(e[0], "x", e[1])
	}

	res, err := bfs.BFS(a, a.Initials())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(4)
	fmt.Println(res.Order)
	fmt.Println(path)
	// Output:
	// [0 1 3 2 4]
	// [0 3 4]
}
