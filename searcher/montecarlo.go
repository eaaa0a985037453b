package searcher

import (
	"fmt"
	"sync"
	"time"

	"hex/experiments/metrics"
	"hex/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// seedStride spreads per-candidate seeds apart (2^64 / golden ratio).
const seedStride = 0x9E3779B97F4A7C15

// MonteCarlo estimates, for every empty cell, the probability that the AI
// wins after playing there, by filling copies of the board at random.
type MonteCarlo struct {
	board      *game.Board
	ai         game.Player
	human      game.Player
	trials     int
	goroutines int
	seed       uint64
	seeded     bool
	parity     Parity
	metrics    metrics.Collector
}

// NewMonteCarlo snapshots board for evaluation on behalf of ai.
func NewMonteCarlo(board *game.Board, ai, human game.Player, options ...Option) *MonteCarlo {
	if board == nil {
		panic("board must not be nil")
	}
	if ai == game.Empty || ai.Opponent() != human {
		panic(fmt.Sprintf("ai and human must be opposite colours, got %s and %s", ai, human))
	}

	m := &MonteCarlo{
		board: board.Copy(),
		ai:    ai,
		human: human,
	}
	defaults(m)
	for _, option := range options {
		option(m)
	}
	return m
}

// BestMove returns the candidate with the highest estimated win probability.
func (m *MonteCarlo) BestMove() (game.Position, error) {
	candidates, _, err := m.Evaluate()
	if err != nil {
		return game.Position{}, err
	}
	return Best(candidates).Position, nil
}

// Best returns the first candidate with the maximum probability. Candidates
// from Evaluate are in ascending (row, col) order, which fixes tie-breaking.
func Best(candidates []Candidate) Candidate {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Probability > best.Probability {
			best = c
		}
	}
	return best
}

// Evaluate runs the configured number of playouts for every empty cell and
// returns the candidates in ascending (row, col) order. It returns only after
// every playout has finished.
func (m *MonteCarlo) Evaluate() ([]Candidate, metrics.SearchMetric, error) {
	moves := m.board.EmptyCells()
	if len(moves) == 0 {
		return nil, metrics.SearchMetric{}, game.ErrNoAvailableMoves
	}

	seed := m.seed
	if !m.seeded {
		seed = uint64(time.Now().UnixNano())
	}
	goroutines := min(m.goroutines, len(moves))
	next := m.fillStart()

	m.metrics.Start(goroutines, m.trials, len(moves))

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	candidates := make([]Candidate, len(moves))
	errs := make([]error, len(moves))

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range task {
				// One stream per candidate keeps results independent of scheduling.
				r := rand.New(rand.NewSource(seed + uint64(idx)*seedStride))
				candidates[idx], errs[idx] = m.evaluate(moves, idx, next, r)
			}
		}()
	}
	wg.Wait()

	metric := m.metrics.Complete()
	for _, err := range errs {
		if err != nil {
			log.Error().Err(err).Msg("monte carlo evaluation failed")
			return nil, metric, err
		}
	}

	log.Debug().Msgf("evaluated %d candidates with %d trials each for %s in %s",
		len(moves), m.trials, m.ai, metric.Duration)
	return candidates, metric, nil
}

// fillStart returns the colour that places the first random stone after the
// candidate.
func (m *MonteCarlo) fillStart() game.Player {
	if m.parity == AIFirstParity {
		return m.ai
	}
	// The candidate is stone number Stones()+1; the next one follows it.
	if (m.board.Stones()+1)%2 == 0 {
		return m.board.First()
	}
	return m.board.First().Opponent()
}

func (m *MonteCarlo) evaluate(moves []game.Position, idx int, next game.Player, r *rand.Rand) (Candidate, error) {
	move := moves[idx]
	rest := make([]game.Position, 0, len(moves)-1)
	rest = append(rest, moves[:idx]...)
	rest = append(rest, moves[idx+1:]...)
	order := make([]game.Position, len(rest))

	wins := 0
	for trial := 0; trial < m.trials; trial++ {
		b := m.board.Copy()
		if err := b.Place(move.Row, move.Col, m.ai); err != nil {
			return Candidate{}, err
		}

		copy(order, rest)
		winner, err := playout(b, order, next, r)
		if err != nil {
			return Candidate{}, fmt.Errorf("candidate %s trial %d: %w", move, trial, err)
		}
		m.metrics.AddPlayout()

		if winner == m.ai {
			wins++
		}
	}

	return Candidate{
		Position:    move,
		Wins:        wins,
		Trials:      m.trials,
		Probability: float64(wins) / float64(m.trials),
	}, nil
}

// playout shuffles the empty cells, fills them alternating colours starting
// with next, and returns the winner of the full board.
func playout(b *game.Board, empty []game.Position, next game.Player, r *rand.Rand) (game.Player, error) {
	r.Shuffle(len(empty), func(i, j int) {
		empty[i], empty[j] = empty[j], empty[i]
	})

	player := next
	for _, pos := range empty {
		if err := b.Place(pos.Row, pos.Col, player); err != nil {
			return game.Empty, err
		}
		player = player.Opponent()
	}

	ended, winner := b.CheckWin()
	if !ended {
		return game.Empty, fmt.Errorf("%w: random fill of %d cells", game.ErrInvariantViolation, len(empty))
	}
	return winner, nil
}
