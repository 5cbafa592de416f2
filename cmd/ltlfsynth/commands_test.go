package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ltlfsynth/internal/config"
)

const (
	untilNextFile    = "../../internal/specfile/testdata/until_next.yaml"
	unrealizableFile = "../../internal/specfile/testdata/unrealizable.yaml"
)

func defaults() config.Config {
	return config.Config{LogLevel: "error", Policy: config.PolicyFirst, Seed: 1, Workers: 1}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(defaults())
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolve(t *testing.T) {
	out, err := run(t, "", "solve", untilNextFile)
	require.NoError(t, err)
	assert.Contains(t, out, "realizable")
	assert.NotContains(t, out, "unrealizable")
	assert.Contains(t, out, "iterations: 3")
	assert.Contains(t, out, "winning:    5")
	assert.Contains(t, out, "horizon:    2")
	assert.Contains(t, out, "fastest:    2")

	out, err = run(t, "", "solve", unrealizableFile, "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "unrealizable")
}

func TestSolve_Budget(t *testing.T) {
	_, err := run(t, "", "solve", untilNextFile, "--max-iterations", "1")
	assert.Error(t, err)
}

func TestPlay(t *testing.T) {
	out, err := run(t, "a\nb\n\n", "play", untilNextFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "system: {}", lines[0])
	assert.Equal(t, "system: {b}", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "rejected {b}"))
	assert.Equal(t, "success", lines[3])

	_, err = run(t, "", "play", unrealizableFile)
	assert.Error(t, err)
}

func TestPlay_RandomPolicy(t *testing.T) {
	out, err := run(t, "a\n\n", "play", untilNextFile, "--policy", "random", "--seed", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "success\n"))
}

func TestPlay_FewestPolicy(t *testing.T) {
	out, err := run(t, "a\n\n", "play", untilNextFile, "--policy", "fewest")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "system: {}\n"))
	assert.True(t, strings.HasSuffix(out, "success\n"))

	_, err = run(t, "", "play", untilNextFile, "--policy", "greedy")
	assert.Error(t, err)
}

func TestDot(t *testing.T) {
	out, err := run(t, "", "dot", untilNextFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph \"game\" {"))

	out, err = run(t, "", "dot", untilNextFile, "--strategy")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph \"strategy\" {"))

	_, err = run(t, "", "dot", unrealizableFile, "--strategy")
	assert.Error(t, err)
}

func TestGen(t *testing.T) {
	out, err := run(t, "", "gen", "--states", "4", "--seed", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "environment:")
	assert.Contains(t, out, "name: s3")

	again, err := run(t, "", "gen", "--states", "4", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestParseMove(t *testing.T) {
	assert.Equal(t, "{}", parseMove("").String())
	assert.Equal(t, "{a, c}", parseMove(" c, a ,").String())
}
