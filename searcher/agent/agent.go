package agent

import (
	"hex/experiments/metrics"
	"hex/game"
)

type Agent interface {
	// FindMove returns the move player makes on board and the search metrics
	// (if collected) from finding it. The board must not be modified.
	FindMove(board *game.Board, player game.Player) (game.Position, metrics.SearchMetric, error)
}
