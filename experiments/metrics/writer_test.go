package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	start := time.Date(2024, 11, 5, 10, 0, 0, 0, time.UTC)
	games := []GameRecord{
		{ID: 1, Green: 1, Red: 2, GameMetric: GameMetric{StartingPlayer: "Green", Winner: "Red", GreenPieces: 20, RedPieces: 44, StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, TotalMoves: 60}},
		{ID: 2, Green: 2, Red: 1, GameMetric: GameMetric{StartingPlayer: "Red", GreenPieces: 32, RedPieces: 32, StartTime: start, EndTime: start, TotalMoves: 59, Passes: 1}},
	}
	moves := []MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: "Green", Move: "(2,4)", SearchMetric: SearchMetric{Algorithm: "NegaMax", Heuristic: "UniformWeighting", Depth: 3, Expansions: 21, Comparisons: 40}}},
	}

	t.Run("csv and parquet by default", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "test")
		require.NoError(t, err)

		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Algorithm: "MinMax"}, {ID: 2, Algorithm: "AlphaBeta", Difficulty: "Hard"}}))
		require.NoError(t, w.WriteGameRecords(games))
		require.NoError(t, w.WriteMoveRecords(moves))
		require.NoError(t, w.WriteComparisonRecords(nil))

		for _, name := range []string{"agent_configs", "game_records", "move_records", "comparison_records"} {
			require.FileExists(t, filepath.Join(w.Dir(), name+".csv"))
			require.FileExists(t, filepath.Join(w.Dir(), name+".parquet"))
		}

		f, err := os.Open(filepath.Join(w.Dir(), "game_records.csv"))
		require.NoError(t, err)
		defer f.Close()
		lines, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, lines, 3, "Header plus one line per game")
		require.Equal(t, "winner", lines[0][4])
		require.Equal(t, "Red", lines[1][4])
		require.Equal(t, "", lines[2][4], "Draws have no winner")
		require.Equal(t, "1s", lines[1][11])
	})

	t.Run("parquet rows read back", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "test", Parquet)
		require.NoError(t, err)

		require.NoError(t, w.WriteMoveRecords(moves))
		require.NoFileExists(t, filepath.Join(w.Dir(), "move_records.csv"))

		rows, err := parquet.ReadFile[moveRow](filepath.Join(w.Dir(), "move_records.parquet"))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, "(2,4)", rows[0].Move)
		require.Equal(t, int64(21), rows[0].Expansions)
		require.Equal(t, int32(3), rows[0].Depth)
	})
}
