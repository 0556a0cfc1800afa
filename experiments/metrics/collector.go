package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes one top-level bot search.
type SearchMetric struct {
	Algorithm   string
	Heuristic   string
	Depth       int // 0 means unbounded
	Goroutines  int
	Duration    time.Duration
	Expansions  int64
	Comparisons int64
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" on a draw
	GreenPieces    int
	RedPieces      int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

// Collector accumulates search counters. It is safe for concurrent use.
type Collector interface {
	Start(algorithm, heuristic string, depth, goroutines int)
	AddExpansion()
	AddComparison()
	Complete() SearchMetric
}

type collector struct {
	algorithm   string
	heuristic   string
	depth       int
	goroutines  int
	startTime   time.Time
	expansions  atomic.Int64
	comparisons atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(algorithm, heuristic string, depth, goroutines int) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.heuristic = heuristic
	m.depth = depth
	m.goroutines = goroutines
	m.expansions.Store(0)
	m.comparisons.Store(0)
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) AddComparison() {
	m.comparisons.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm:   m.algorithm,
		Heuristic:   m.heuristic,
		Depth:       m.depth,
		Goroutines:  m.goroutines,
		Duration:    time.Since(m.startTime),
		Expansions:  m.expansions.Load(),
		Comparisons: m.comparisons.Load(),
	}
}
