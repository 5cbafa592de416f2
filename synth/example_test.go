package synth_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/ltlfsynth/builder"
	"github.com/katalvlaran/ltlfsynth/domain"
	"github.com/katalvlaran/ltlfsynth/synth"
)

// ExampleNew_untilNext plays "(G a) U (X b)" with the environment owning a
// and the system owning b.
func ExampleNew_untilNext() {
	raw, _ := builder.BuildRaw(nil, builder.UntilNext())
	dom, _ := domain.NewPartitionedDomain(domain.NewPropositionSet("a"), domain.NewPropositionSet("b"))
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := synth.New(context.Background(), raw, dom, synth.WithLogger(quiet))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("realizable:", s.IsRealizable())

	p, _ := s.StrategyGenerator()
	out, _ := p.FirstMove()
	fmt.Println("first:", out)
	out, _ = p.Step(domain.NewInterpretation("a"))
	fmt.Println("after {a}:", out)
	out, _ = p.Step(domain.NewInterpretation())
	fmt.Println("after {}:", out)
	// Output:
	// realizable: true
	// first: {}
	// after {a}: {b}
	// after {}: success
}
