package synth_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/ltlfsynth/synth"
)

func BenchmarkSolve(b *testing.B) {
	quiet := synth.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	g, _ := randomGame(b, 42, 500, 0.02)
	idx := synth.BuildIndex(g)

	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := synth.Solve(context.Background(), g, idx, quiet, synth.WithWorkers(workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkBuildIndex(b *testing.B) {
	g, _ := randomGame(b, 42, 500, 0.02)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		synth.BuildIndex(g)
	}
}
