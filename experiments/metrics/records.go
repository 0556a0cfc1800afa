package metrics

import "time"

// AgentConfig describes one bot taking part in an experiment. Difficulty, when
// set, takes precedence over Depth.
type AgentConfig struct {
	ID         int    `yaml:"id"`
	Algorithm  string `yaml:"algorithm"`
	Heuristic  string `yaml:"heuristic,omitempty"`
	Difficulty string `yaml:"difficulty,omitempty"`
	Depth      int    `yaml:"depth,omitempty"`
	Goroutines int    `yaml:"goroutines,omitempty"`
}

type GameRecord struct {
	ID    int
	Green int // AgentConfig.ID
	Red   int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// ComparisonRecord is one algorithm's answer on one shared position.
type ComparisonRecord struct {
	Position         int
	Algorithm        string
	Heuristic        string
	Depth            int
	Move             string
	AgreesWithMinMax bool
	Expansions       int64
	Comparisons      int64
	Duration         time.Duration
}

type agentConfigRow struct {
	ID         int64  `parquet:"id"`
	Algorithm  string `parquet:"algorithm,dict"`
	Heuristic  string `parquet:"heuristic,dict"`
	Difficulty string `parquet:"difficulty,dict"`
	Depth      int32  `parquet:"depth"`
	Goroutines int32  `parquet:"goroutines"`
}

type gameRow struct {
	ID             int64  `parquet:"id"`
	Green          int64  `parquet:"green"`
	Red            int64  `parquet:"red"`
	StartingPlayer string `parquet:"starting_player,dict"`
	Winner         string `parquet:"winner,dict"`
	GreenPieces    int32  `parquet:"green_pieces"`
	RedPieces      int32  `parquet:"red_pieces"`
	TotalMoves     int32  `parquet:"total_moves"`
	Passes         int32  `parquet:"passes"`
	StartNs        int64  `parquet:"start_ns"`
	EndNs          int64  `parquet:"end_ns"`
	DurationNs     int64  `parquet:"duration_ns"`
}

type moveRow struct {
	Game        int64  `parquet:"game"`
	Step        int32  `parquet:"step"`
	Player      string `parquet:"player,dict"`
	Move        string `parquet:"move"`
	Algorithm   string `parquet:"algorithm,dict"`
	Heuristic   string `parquet:"heuristic,dict"`
	Depth       int32  `parquet:"depth"`
	Goroutines  int32  `parquet:"goroutines"`
	Expansions  int64  `parquet:"expansions"`
	Comparisons int64  `parquet:"comparisons"`
	DurationNs  int64  `parquet:"duration_ns"`
}

type comparisonRow struct {
	Position         int64  `parquet:"position"`
	Algorithm        string `parquet:"algorithm,dict"`
	Heuristic        string `parquet:"heuristic,dict"`
	Depth            int32  `parquet:"depth"`
	Move             string `parquet:"move"`
	AgreesWithMinMax bool   `parquet:"agrees_with_minmax"`
	Expansions       int64  `parquet:"expansions"`
	Comparisons      int64  `parquet:"comparisons"`
	DurationNs       int64  `parquet:"duration_ns"`
}
