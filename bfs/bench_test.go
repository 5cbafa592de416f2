package bfs_test

import (
	"testing"

	"github.com/katalvlaran/ltlfsynth/automaton"
	"github.com/katalvlaran/ltlfsynth/bfs"
)

// BenchmarkBFS_Chain measures BFS on a linear chain automaton of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	a := chain(b, N)

	b.ReportAllocs()
	b.SetBytes(int64(2*N - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(a, []automaton.StateID{0})
	}
}
