package agent

import (
	"hex/experiments/metrics"
	"hex/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rand *rand.Rand
}

// NewRandomAgent returns a baseline agent playing uniformly random legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rand: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board *game.Board, player game.Player) (game.Position, metrics.SearchMetric, error) {
	moves := board.EmptyCells()
	if len(moves) == 0 {
		return game.Position{}, metrics.SearchMetric{}, game.ErrNoAvailableMoves
	}
	return moves[a.rand.Intn(len(moves))], metrics.SearchMetric{Candidates: len(moves)}, nil
}
