package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"reversi/experiments/metrics"
)

func execute(args ...string) error {
	root := Root()
	root.SetArgs(args)
	return root.Execute()
}

func TestCompareCommand(t *testing.T) {
	out := t.TempDir()

	err := execute("compare", "--positions", "2", "--depth", "2", "--size", "6", "--plies", "10", "--heuristic", "tactical", "--out", out)
	require.NoError(t, err)

	runs, err := os.ReadDir(filepath.Join(out, "compare"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.FileExists(t, filepath.Join(out, "compare", runs[0].Name(), "comparison_records.parquet"))
}

func TestCompareCommandRejectsHeuristic(t *testing.T) {
	require.Error(t, execute("compare", "--heuristic", "mobility"))
}

func TestMatchCommand(t *testing.T) {
	require.NoError(t, execute("match", "--size", "6", "--green-depth", "1", "--red-algorithm", "NegaMax", "--red-difficulty", "Easy", "--starting", "red"))
	require.Error(t, execute("match", "--green-algorithm", "Expectimax"))
	require.Error(t, execute("match", "--starting", "Blue"))
}

func TestExperimentCommand(t *testing.T) {
	setup := []byte(`
name: tiny
board_size: 6
agents:
  - {id: 1, algorithm: MinMax, depth: 1}
  - {id: 2, algorithm: AlphaBeta, depth: 1}
matchups:
  - {green: 1, red: 2}
`)
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	require.NoError(t, os.WriteFile(path, setup, 0644))
	out := t.TempDir()

	require.NoError(t, execute("experiment", path, "--out", out, "--games", "2", "--format", "csv"))

	runs, err := os.ReadDir(filepath.Join(out, "tiny"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.FileExists(t, filepath.Join(out, "tiny", runs[0].Name(), "game_records.csv"))

	require.Error(t, execute("experiment", filepath.Join(out, "missing.yaml")))
	require.Error(t, execute("experiment", path, "--out", out, "--format", "xml"))
}

func TestParseFormats(t *testing.T) {
	formats, err := parseFormats("Parquet")
	require.NoError(t, err)
	require.Equal(t, []metrics.Format{metrics.Parquet}, formats)

	formats, err = parseFormats("both")
	require.NoError(t, err)
	require.Len(t, formats, 2)
}

func TestLoadSetupBuiltIn(t *testing.T) {
	setup, err := loadSetup("difficulty")
	require.NoError(t, err)
	require.Equal(t, "difficulty", setup.Name)

	setup.Games = 1 // Must not leak into the built-in table
	again, err := loadSetup("difficulty")
	require.NoError(t, err)
	require.NotEqual(t, 1, again.Games)
}
