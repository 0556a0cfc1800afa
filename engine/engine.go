package engine

import "reversi/experiments/metrics"

type Engine interface {
	// Run plays a game until neither side can move
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
