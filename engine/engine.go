package engine

import (
	"hex/experiments/metrics"
	"hex/game"
)

type Engine interface {
	// Run plays a game until a player connects both edges
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

var _ Engine = (*LocalEngine)(nil)
