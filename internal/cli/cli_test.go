package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlarea/builder"
	"github.com/katalvlaran/lvlarea/geom"
	"github.com/katalvlaran/lvlarea/internal/config"
	"github.com/katalvlaran/lvlarea/internal/logging"
	"github.com/katalvlaran/lvlarea/internal/pointio"
)

const sixPoints = "1, 1\n1, 6\n8, 3\n3, 4\n5, 5\n8, 9\n"

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSolve_File(t *testing.T) {
	path := writeFile(t, "points.txt", sixPoints)
	out, _, err := run(t, "", "solve", path, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "largest finite area: 17 (owner (5,5))\n", out)
}

func TestSolve_Stdin(t *testing.T) {
	out, _, err := run(t, sixPoints, "solve", "-", "--workers", "3", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "largest finite area: 17 (owner (5,5))\n", out)

	out, _, err = run(t, "0, 0\n1, 1\n", "solve", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "no finite region\n", out)
}

func TestSolve_Stats(t *testing.T) {
	out, _, err := run(t, sixPoints, "solve", "--stats", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "points: 6\n")
	assert.Contains(t, out, "box: (1,1)-(8,9)\n")
	assert.Contains(t, out, "cells: 72\n")
	assert.Contains(t, out, "finite owners: 2\n")
	assert.Contains(t, out, "infinite owners: 4\n")
	assert.Contains(t, out, "run id: ")
}

func TestSolve_MetricsAndTrace(t *testing.T) {
	out, errOut, err := run(t, sixPoints, "solve", "--metrics", "--trace", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, `lvlarea_runs_total{outcome="found"} 1`)
	assert.Contains(t, out, "lvlarea_last_largest_area 17")
	assert.Contains(t, errOut, `"Name": "region.sweep"`)
}

func TestSolve_Logs(t *testing.T) {
	_, errOut, err := run(t, sixPoints, "solve", "--log-level", "info", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"sweep finished"`)
	assert.Contains(t, errOut, `"run_id":`)
}

func TestLoggingFromEnv(t *testing.T) {
	t.Setenv(logging.EnvLevel, "error")
	_, errOut, err := run(t, sixPoints, "solve")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "sweep finished")

	t.Setenv(logging.EnvLevel, "info")
	t.Setenv(logging.EnvFormat, "json")
	_, errOut, err = run(t, sixPoints, "solve")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"sweep finished"`)

	// The config file beats the environment, flags beat both.
	cfgPath := writeFile(t, "lvlarea.yaml", "logging:\n  level: error\n")
	_, errOut, err = run(t, sixPoints, "solve", "--config", cfgPath)
	require.NoError(t, err)
	assert.NotContains(t, errOut, "sweep finished")

	_, errOut, err = run(t, sixPoints, "solve", "--config", cfgPath, "--log-level", "info", "--log-format", "text")
	require.NoError(t, err)
	assert.Contains(t, errOut, "msg=\"sweep finished\"")

	t.Setenv(logging.EnvLevel, "loud")
	_, _, err = run(t, sixPoints, "solve")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSolve_BoxTooLarge(t *testing.T) {
	_, _, err := run(t, "0, 0\n4294967295, 4294967295\n", "solve", "--log-level", "error")
	assert.ErrorIs(t, err, geom.ErrBoxTooLarge)

	_, _, err = run(t, "0, 0\n9223372036854775807, 9223372036854775807\n", "render", "--log-level", "error")
	assert.ErrorIs(t, err, geom.ErrBoxTooLarge)
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := run(t, "# nothing here\n", "solve", "--log-level", "error")
	assert.ErrorIs(t, err, geom.ErrEmptyInput)

	_, _, err = run(t, "1, 1\nnope\n", "solve", "--log-level", "error")
	assert.ErrorIs(t, err, pointio.ErrMalformedRecord)

	_, _, err = run(t, sixPoints, "solve", "--workers=-1")
	assert.ErrorContains(t, err, "--workers")

	_, _, err = run(t, "", "solve", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigFile(t *testing.T) {
	cfgPath := writeFile(t, "lvlarea.yaml", "solver:\n  workers: 2\n  padding: 1\nlogging:\n  level: error\n")
	out, _, err := run(t, sixPoints, "solve", "--stats", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "largest finite area: 17 (owner (5,5))\n")
	assert.Contains(t, out, "box: (0,0)-(9,10)\n")

	// Flags override the file.
	out, _, err = run(t, sixPoints, "solve", "--stats", "--config", cfgPath, "--padding", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "box: (1,1)-(8,9)\n")

	bad := writeFile(t, "bad.yaml", "solver:\n  workers: -4\n")
	_, _, err = run(t, sixPoints, "solve", "--config", bad)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, sixPoints, "solve", "--log-level", "loud")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRender(t *testing.T) {
	out, _, err := run(t, sixPoints, "render", "--no-legend", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"Aaaa.ccc\n"+
		"aaddeccc\n"+
		"adddeccC\n"+
		".dDdeecc\n"+
		"b.deEeec\n"+
		"Bb.eeee.\n"+
		"bb.eeeff\n"+
		"bb.eefff\n"+
		"bb.ffffF\n", out)

	out, _, err = run(t, sixPoints, "render", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "E (5,5) area 17 largest\n")
	assert.True(t, strings.HasSuffix(out, "largest finite area: 17 (owner (5,5))\n"))
}

func TestGenerate(t *testing.T) {
	out, _, err := run(t, "", "generate", "--kind", "lattice", "--cols", "2", "--rows", "1", "--step", "10", "--origin", "1,2")
	require.NoError(t, err)
	assert.Equal(t, "1, 2\n11, 2\n", out)

	out, _, err = run(t, "", "generate", "--kind", "diagonal", "--n", "3", "--step", "2")
	require.NoError(t, err)
	assert.Equal(t, "0, 0\n2, 2\n4, 4\n", out)

	first, _, err := run(t, "", "generate", "--n", "5", "--seed", "42", "--width", "20", "--height", "20")
	require.NoError(t, err)
	second, _, err := run(t, "", "generate", "--n", "5", "--seed", "42", "--width", "20", "--height", "20")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	pts, err := pointio.Parse(strings.NewReader(first))
	require.NoError(t, err)
	assert.Len(t, pts, 5)

	_, _, err = run(t, "", "generate", "--kind", "spiral")
	assert.ErrorContains(t, err, "unknown --kind")

	_, _, err = run(t, "", "generate", "--kind", "random", "--n", "0")
	assert.ErrorIs(t, err, builder.ErrTooFewPoints)

	_, _, err = run(t, "", "generate", "--origin=-1,0")
	assert.ErrorIs(t, err, pointio.ErrNegativeCoordinate)
}

func TestGenerateThenSolve(t *testing.T) {
	// A 3x3 lattice has exactly one finite region: the 3x3 block around the centre point.
	points, _, err := run(t, "", "generate", "--kind", "lattice", "--cols", "3", "--rows", "3", "--step", "4")
	require.NoError(t, err)
	out, _, err := run(t, points, "solve", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "largest finite area: 9 (owner (4,4))\n", out)
}
