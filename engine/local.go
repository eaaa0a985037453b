package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"hex/experiments/metrics"
	"hex/game"
	"hex/meta"
	"hex/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	Board  *game.Board
	Agents map[game.Player]agent.Agent
	// Display receives the rendered board after every move. Nil disables it.
	Display io.Writer
}

func NewLocalEngine(board *game.Board, blue, red agent.Agent) *LocalEngine {
	if board == nil {
		panic("board must not be nil")
	}
	if blue == nil || red == nil {
		panic("need an agent for each player")
	}
	return &LocalEngine{
		Board: board,
		Agents: map[game.Player]agent.Agent{
			game.Blue: blue,
			game.Red:  red,
		},
	}
}

// Run executes the game loop until a winner is found: ask the agent of the
// player to move for a move, apply it, check for a winner.
func (e *LocalEngine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:             uuid.NewString(),
		Size:           e.Board.Size(),
		StartingPlayer: e.Board.First().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("game %s: %s is starting on a %dx%d board", gameMetric.ID, e.Board.First(), e.Board.Size(), e.Board.Size())
	e.display()

	step := 1
	for {
		if ended, winner := e.Board.CheckWin(); ended {
			gameMetric.Winner = winner.String()
			gameMetric.EndTime = time.Now()
			gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
			gameMetric.TotalMoves = step - 1
			log.Info().Msgf("game %s over after %d moves, winner: %s", gameMetric.ID, gameMetric.TotalMoves, winner)
			return winner, gameMetric, moveMetrics, nil
		}
		if e.Board.Full() {
			return game.Empty, gameMetric, moveMetrics, game.ErrInvariantViolation
		}

		player := e.Board.ToMove()
		move, metric, err := e.turn(player)
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("turn %d (%s): %w", step, player, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Row:          move.Row,
			Col:          move.Col,
			SearchMetric: metric,
		})
		log.Debug().Msgf("turn %d: %s plays %s", step, player, move)

		e.display()
		step++
	}
}

// turn asks the player's agent for moves until one is legal.
func (e *LocalEngine) turn(player game.Player) (game.Position, metrics.SearchMetric, error) {
	a := e.Agents[player]
	for attempt := 0; attempt < meta.MAX_INVALID_MOVES; attempt++ {
		move, metric, err := a.FindMove(e.Board, player)
		if err != nil {
			return game.Position{}, metric, err
		}

		_, err = e.Board.ApplyMove(move.Row, move.Col, player)
		if errors.Is(err, game.ErrInvalidMove) {
			log.Warn().Err(err).Msgf("%s tried %s", player, move)
			if e.Display != nil {
				fmt.Fprintf(e.Display, "Invalid move %s, try again\n", move)
			}
			continue
		}
		if err != nil {
			return game.Position{}, metric, err
		}
		return move, metric, nil
	}
	return game.Position{}, metrics.SearchMetric{}, fmt.Errorf("%w: %d rejected moves in a row", game.ErrInvalidMove, meta.MAX_INVALID_MOVES)
}

func (e *LocalEngine) display() {
	if e.Display == nil {
		return
	}
	if err := e.Board.Display(e.Display); err != nil {
		log.Warn().Err(err).Msg("failed to display board")
	}
}
