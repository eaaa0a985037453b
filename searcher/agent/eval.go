package agent

import (
	"hex/experiments/metrics"
	"hex/game"
	"hex/searcher"
)

type evaluationAgent struct {
	options []searcher.Option
}

// NewEvaluationAgent returns an agent playing the Monte Carlo best move.
func NewEvaluationAgent(options ...searcher.Option) Agent {
	return evaluationAgent{options: options}
}

func (a evaluationAgent) FindMove(board *game.Board, player game.Player) (game.Position, metrics.SearchMetric, error) {
	options := append([]searcher.Option{searcher.WithMetrics(metrics.NewCollector())}, a.options...)
	mc := searcher.NewMonteCarlo(board, player, player.Opponent(), options...)

	candidates, metric, err := mc.Evaluate()
	if err != nil {
		return game.Position{}, metric, err
	}
	return searcher.Best(candidates).Position, metric, nil
}
