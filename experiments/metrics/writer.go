package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

type Format int

const (
	CSV Format = iota
	Parquet
)

// Writer stores experiment records under a fresh directory, once per format.
type Writer struct {
	baseDir string
	formats []Format
}

// NewWriter creates root/name/<timestamp>. Without formats, records are written
// as both CSV and Parquet.
func NewWriter(root, name string, formats ...Format) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	if len(formats) == 0 {
		formats = []Format{CSV, Parquet}
	}
	return &Writer{
		baseDir: baseDir,
		formats: formats,
	}, nil
}

// Dir is the directory the records are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "algorithm", "heuristic", "difficulty", "depth", "goroutines"}
	rows := make([]agentConfigRow, len(configs))
	for i, c := range configs {
		rows[i] = agentConfigRow{
			ID:         int64(c.ID),
			Algorithm:  c.Algorithm,
			Heuristic:  c.Heuristic,
			Difficulty: c.Difficulty,
			Depth:      int32(c.Depth),
			Goroutines: int32(c.Goroutines),
		}
	}
	return write(w, "agent_configs", header, rows, func(r agentConfigRow) []string {
		return []string{
			strconv.FormatInt(r.ID, 10),
			r.Algorithm,
			r.Heuristic,
			r.Difficulty,
			strconv.Itoa(int(r.Depth)),
			strconv.Itoa(int(r.Goroutines)),
		}
	})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "green", "red", "starting_player", "winner", "green_pieces", "red_pieces", "total_moves", "passes", "start_time", "end_time", "duration"}
	rows := make([]gameRow, len(records))
	for i, r := range records {
		rows[i] = gameRow{
			ID:             int64(r.ID),
			Green:          int64(r.Green),
			Red:            int64(r.Red),
			StartingPlayer: r.StartingPlayer,
			Winner:         r.Winner,
			GreenPieces:    int32(r.GreenPieces),
			RedPieces:      int32(r.RedPieces),
			TotalMoves:     int32(r.TotalMoves),
			Passes:         int32(r.Passes),
			StartNs:        r.StartTime.UnixNano(),
			EndNs:          r.EndTime.UnixNano(),
			DurationNs:     int64(r.Duration),
		}
	}
	return write(w, "game_records", header, rows, func(r gameRow) []string {
		return []string{
			strconv.FormatInt(r.ID, 10),
			strconv.FormatInt(r.Green, 10),
			strconv.FormatInt(r.Red, 10),
			r.StartingPlayer,
			r.Winner,
			strconv.Itoa(int(r.GreenPieces)),
			strconv.Itoa(int(r.RedPieces)),
			strconv.Itoa(int(r.TotalMoves)),
			strconv.Itoa(int(r.Passes)),
			time.Unix(0, r.StartNs).UTC().Format(time.RFC3339Nano),
			time.Unix(0, r.EndNs).UTC().Format(time.RFC3339Nano),
			time.Duration(r.DurationNs).String(),
		}
	})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "algorithm", "heuristic", "depth", "goroutines", "expansions", "comparisons", "duration"}
	rows := make([]moveRow, len(records))
	for i, r := range records {
		rows[i] = moveRow{
			Game:        int64(r.Game),
			Step:        int32(r.Step),
			Player:      r.Player,
			Move:        r.Move,
			Algorithm:   r.Algorithm,
			Heuristic:   r.Heuristic,
			Depth:       int32(r.Depth),
			Goroutines:  int32(r.Goroutines),
			Expansions:  r.Expansions,
			Comparisons: r.Comparisons,
			DurationNs:  int64(r.Duration),
		}
	}
	return write(w, "move_records", header, rows, func(r moveRow) []string {
		return []string{
			strconv.FormatInt(r.Game, 10),
			strconv.Itoa(int(r.Step)),
			r.Player,
			r.Move,
			r.Algorithm,
			r.Heuristic,
			strconv.Itoa(int(r.Depth)),
			strconv.Itoa(int(r.Goroutines)),
			strconv.FormatInt(r.Expansions, 10),
			strconv.FormatInt(r.Comparisons, 10),
			time.Duration(r.DurationNs).String(),
		}
	})
}

func (w *Writer) WriteComparisonRecords(records []ComparisonRecord) error {
	header := []string{"position", "algorithm", "heuristic", "depth", "move", "agrees_with_minmax", "expansions", "comparisons", "duration"}
	rows := make([]comparisonRow, len(records))
	for i, r := range records {
		rows[i] = comparisonRow{
			Position:         int64(r.Position),
			Algorithm:        r.Algorithm,
			Heuristic:        r.Heuristic,
			Depth:            int32(r.Depth),
			Move:             r.Move,
			AgreesWithMinMax: r.AgreesWithMinMax,
			Expansions:       r.Expansions,
			Comparisons:      r.Comparisons,
			DurationNs:       int64(r.Duration),
		}
	}
	return write(w, "comparison_records", header, rows, func(r comparisonRow) []string {
		return []string{
			strconv.FormatInt(r.Position, 10),
			r.Algorithm,
			r.Heuristic,
			strconv.Itoa(int(r.Depth)),
			r.Move,
			strconv.FormatBool(r.AgreesWithMinMax),
			strconv.FormatInt(r.Expansions, 10),
			strconv.FormatInt(r.Comparisons, 10),
			time.Duration(r.DurationNs).String(),
		}
	})
}

func write[Row any](w *Writer, name string, header []string, rows []Row, format func(Row) []string) error {
	for _, f := range w.formats {
		var err error
		switch f {
		case CSV:
			err = writeCSV(filepath.Join(w.baseDir, name+".csv"), header, rows, format)
		case Parquet:
			err = writeParquet(filepath.Join(w.baseDir, name+".parquet"), rows)
		default:
			err = fmt.Errorf("unknown format %d", int(f))
		}
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}

func writeCSV[Row any](path string, header []string, rows []Row, format func(Row) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		err = writer.Write(format(row))
		if err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeParquet[Row any](path string, rows []Row) error {
	err := parquet.WriteFile(path, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
	)
	if err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}
	return nil
}
