package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ltlfsynth/automaton"
	"github.com/katalvlaran/ltlfsynth/builder"
	"github.com/katalvlaran/ltlfsynth/domain"
	"github.com/katalvlaran/ltlfsynth/internal/config"
	"github.com/katalvlaran/ltlfsynth/internal/specfile"
	"github.com/katalvlaran/ltlfsynth/strategy"
	"github.com/katalvlaran/ltlfsynth/synth"
)

// cli carries the resolved settings shared by every subcommand.
type cli struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd(cfg config.Config) *cobra.Command {
	c := &cli{cfg: cfg}

	root := &cobra.Command{
		Use:           "ltlfsynth",
		Short:         "Reactive synthesis for LTLf specifications",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.cfg.Validate(); err != nil {
				return err
			}
			level, _ := config.ParseLevel(c.cfg.LogLevel)
			c.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&c.cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	pf.IntVar(&c.cfg.Workers, "workers", cfg.Workers, "goroutines per fixpoint scan")
	pf.IntVar(&c.cfg.MaxIterations, "max-iterations", cfg.MaxIterations, "fixpoint scan budget (0 = unbounded)")

	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Decide realizability of a problem file",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runSolve,
	}

	playCmd := &cobra.Command{
		Use:   "play [file]",
		Short: "Play the strategy; one environment move per stdin line (comma-separated atoms)",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runPlay,
	}
	playCmd.Flags().StringVar(&c.cfg.Policy, "policy", cfg.Policy, "move selection: first, random or fewest")
	playCmd.Flags().Int64Var(&c.cfg.Seed, "seed", cfg.Seed, "seed for the random policy")

	var strategyOnly bool
	dotCmd := &cobra.Command{
		Use:   "dot [file]",
		Short: "Write the game (or strategy) automaton as Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDot(cmd, args, strategyOnly)
		},
	}
	dotCmd.Flags().BoolVar(&strategyOnly, "strategy", false, "write the strategy automaton instead of the game")

	var states int
	var pTerminal float64
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a random complete problem file over env {a} and sys {b}",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runGen(cmd, states, pTerminal)
		},
	}
	genCmd.Flags().IntVar(&states, "states", 8, "number of states")
	genCmd.Flags().Float64Var(&pTerminal, "p-terminal", 0.2, "probability that a state is terminal")
	genCmd.Flags().Int64Var(&c.cfg.Seed, "seed", cfg.Seed, "generator seed")

	root.AddCommand(solveCmd, playCmd, dotCmd, genCmd)

	return root
}

// synthesize loads path and runs the pipeline.
func (c *cli) synthesize(ctx context.Context, path string) (*synth.Synthesis, error) {
	f, err := specfile.Load(path)
	if err != nil {
		return nil, err
	}
	dom, err := f.Domain()
	if err != nil {
		return nil, err
	}
	raw, err := f.Raw()
	if err != nil {
		return nil, err
	}

	opts := []synth.Option{
		synth.WithLogger(c.logger),
		synth.WithWorkers(c.cfg.Workers),
		synth.WithMaxIterations(c.cfg.MaxIterations),
	}
	if sig := f.SignatureProps(); sig != nil {
		opts = append(opts, synth.WithSignature(sig...))
	}

	return synth.New(ctx, raw, dom, opts...)
}

func (c *cli) runSolve(cmd *cobra.Command, args []string) error {
	s, err := c.synthesize(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	sol := s.Solution()

	if s.IsRealizable() {
		color.New(color.FgGreen, color.Bold).Fprintln(out, "realizable")
	} else {
		color.New(color.FgRed, color.Bold).Fprintln(out, "unrealizable")
	}
	fmt.Fprintf(out, "domain:     %s\n", s.Domain())
	fmt.Fprintf(out, "states:     %d\n", s.Game().StateCount())
	fmt.Fprintf(out, "winning:    %d\n", sol.Winning.Len())
	fmt.Fprintf(out, "iterations: %d\n", sol.Iterations)
	if !s.IsRealizable() {
		return nil
	}
	h, err := s.Strategy().Horizon()
	if err != nil {
		return err
	}
	path, err := s.Strategy().ShortestWin()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "horizon:    %d\n", h)
	fmt.Fprintf(out, "fastest:    %d\n", len(path)-1)

	return nil
}

func (c *cli) runPlay(cmd *cobra.Command, args []string) error {
	s, err := c.synthesize(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !s.IsRealizable() {
		color.New(color.FgRed).Fprintln(out, "unrealizable: no strategy to play")
		return synth.ErrUnrealizable
	}

	policy := strategy.FirstMatch()
	switch c.cfg.Policy {
	case config.PolicyRandom:
		policy = strategy.SeededRandom(c.cfg.Seed)
	case config.PolicyFewest:
		policy = strategy.Priority(strategy.FewestTrue)
	}
	p, err := s.StrategyGenerator(strategy.WithPolicy(policy), strategy.WithLogger(c.logger))
	if err != nil {
		return err
	}

	first, err := p.FirstMove()
	if err != nil {
		return err
	}
	printOutput(out, first)

	in := cmd.InOrStdin()
	prompt := func() {}
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		errOut := cmd.ErrOrStderr()
		prompt = func() { fmt.Fprint(errOut, "environment> ") }
	}

	return playLines(in, out, p, prompt)
}

// playLines feeds each stdin line to p until Won or EOF. prompt runs before
// every read.
func playLines(in io.Reader, out io.Writer, p *strategy.Player, prompt func()) error {
	sc := bufio.NewScanner(in)
	for p.State() != strategy.Won {
		prompt()
		if !sc.Scan() {
			break
		}
		env := parseMove(sc.Text())
		o, err := p.Step(env)
		if err != nil {
			color.New(color.FgYellow).Fprintf(out, "rejected %s: %v\n", env, err)
			continue
		}
		printOutput(out, o)
	}

	return sc.Err()
}

func printOutput(w io.Writer, o strategy.Output) {
	if o.Success() {
		color.New(color.FgGreen, color.Bold).Fprintln(w, "success")
		return
	}
	fmt.Fprintf(w, "system: %s\n", o.Move)
}

// parseMove reads "a, c" as {a, c}; a blank line is the empty move.
func parseMove(line string) domain.Interpretation {
	var props []domain.Proposition
	for _, f := range strings.Split(line, ",") {
		if f = strings.TrimSpace(f); f != "" {
			props = append(props, domain.Proposition(f))
		}
	}

	return domain.NewInterpretation(props...)
}

func (c *cli) runDot(cmd *cobra.Command, args []string, strategyOnly bool) error {
	s, err := c.synthesize(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !strategyOnly {
		return automaton.WriteDOT(cmd.OutOrStdout(), s.Game(), "game")
	}
	if s.Strategy() == nil {
		return synth.ErrUnrealizable
	}

	return automaton.WriteDOT(cmd.OutOrStdout(), s.Strategy().Automaton(), "strategy")
}

func (c *cli) runGen(cmd *cobra.Command, states int, pTerminal float64) error {
	opts := []builder.BuilderOption{builder.WithSeed(c.cfg.Seed)}
	raw, err := builder.BuildRaw(opts, builder.RandomGame(states, pTerminal))
	if err != nil {
		return err
	}
	dom, err := builder.Domain(opts...)
	if err != nil {
		return err
	}

	return specfile.FromAutomaton(raw, dom).Encode(cmd.OutOrStdout())
}
