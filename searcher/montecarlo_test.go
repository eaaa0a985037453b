package searcher

import (
	"math"
	"testing"

	"hex/experiments/metrics"
	"hex/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newBoard(t *testing.T, size int) *game.Board {
	t.Helper()
	b, err := game.NewBoard(size, game.Blue, game.Blue, game.Red)
	require.NoError(t, err)
	return b
}

// fillExcept places alternating stones everywhere except the skipped cells.
func fillExcept(t *testing.T, b *game.Board, skip ...game.Position) {
	t.Helper()
	player := game.Blue
	for _, pos := range b.EmptyCells() {
		if containsPosition(skip, pos) {
			continue
		}
		require.NoError(t, b.Place(pos.Row, pos.Col, player))
		player = player.Opponent()
	}
}

func containsPosition(positions []game.Position, pos game.Position) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}

func TestBestMove(t *testing.T) {
	t.Run("single empty cell is always chosen", func(t *testing.T) {
		for _, trials := range []int{1, 7, 1000} {
			b := newBoard(t, 3)
			fillExcept(t, b, game.Position{Row: 1, Col: 1})

			mc := NewMonteCarlo(b, game.Blue, game.Red, WithTrials(trials), WithSeed(1))
			move, err := mc.BestMove()

			require.NoError(t, err)
			require.Equal(t, game.Position{Row: 1, Col: 1}, move)
		}
	})

	t.Run("full board returns no available moves", func(t *testing.T) {
		b := newBoard(t, 3)
		fillExcept(t, b)

		mc := NewMonteCarlo(b, game.Red, game.Blue, WithTrials(10))
		_, err := mc.BestMove()

		require.ErrorIs(t, err, game.ErrNoAvailableMoves)
	})

	t.Run("ties go to the lowest (row, col)", func(t *testing.T) {
		b := newBoard(t, 3)
		// Blue already owns column 0, so every candidate wins every playout
		require.NoError(t, b.Place(0, 0, game.Blue))
		require.NoError(t, b.Place(1, 0, game.Blue))
		require.NoError(t, b.Place(2, 0, game.Blue))
		require.NoError(t, b.Place(0, 1, game.Red))

		mc := NewMonteCarlo(b, game.Blue, game.Red, WithTrials(20), WithSeed(3))
		candidates, _, err := mc.Evaluate()
		require.NoError(t, err)
		for _, c := range candidates {
			require.Equal(t, 1.0, c.Probability)
		}

		move, err := mc.BestMove()

		require.NoError(t, err)
		require.Equal(t, game.Position{Row: 0, Col: 2}, move)
	})

	t.Run("finds the immediate winning move", func(t *testing.T) {
		b, err := game.NewBoard(5, game.Blue, game.Blue, game.Red)
		require.NoError(t, err)
		for r := 0; r < 5; r++ {
			if r != 2 {
				require.NoError(t, b.Place(r, 2, game.Blue))
			}
		}
		// Red blocks every other way through row 2
		for _, c := range []int{0, 1, 3, 4} {
			require.NoError(t, b.Place(2, c, game.Red))
		}

		mc := NewMonteCarlo(b, game.Blue, game.Red, WithTrials(200), WithSeed(11))
		move, err := mc.BestMove()

		require.NoError(t, err)
		require.Equal(t, game.Position{Row: 2, Col: 2}, move)
	})

	t.Run("does not modify the board", func(t *testing.T) {
		b := newBoard(t, 4)
		_, err := b.ApplyMove(1, 2, game.Blue)
		require.NoError(t, err)
		cells, stones, phase := b.Cells(), b.Stones(), b.Phase()

		mc := NewMonteCarlo(b, game.Red, game.Blue, WithTrials(50), WithSeed(5))
		_, err = mc.BestMove()

		require.NoError(t, err)
		require.Equal(t, cells, b.Cells())
		require.Equal(t, stones, b.Stones())
		require.Equal(t, phase, b.Phase())
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("candidates come in ascending order with probabilities in [0,1]", func(t *testing.T) {
		b := newBoard(t, 4)
		_, err := b.ApplyMove(0, 0, game.Blue)
		require.NoError(t, err)

		mc := NewMonteCarlo(b, game.Red, game.Blue, WithTrials(30), WithSeed(9))
		candidates, _, err := mc.Evaluate()

		require.NoError(t, err)
		require.Len(t, candidates, 15)
		for i, c := range candidates {
			require.Equal(t, b.EmptyCells()[i], c.Position)
			require.Equal(t, 30, c.Trials)
			require.InDelta(t, float64(c.Wins)/30, c.Probability, 1e-12)
			require.GreaterOrEqual(t, c.Probability, 0.0)
			require.LessOrEqual(t, c.Probability, 1.0)
		}
	})

	t.Run("same seed gives the same estimates regardless of goroutines", func(t *testing.T) {
		b := newBoard(t, 5)

		sequential, _, err := NewMonteCarlo(b, game.Blue, game.Red, WithTrials(40), WithSeed(42), WithGoroutines(1)).Evaluate()
		require.NoError(t, err)
		parallel, _, err := NewMonteCarlo(b, game.Blue, game.Red, WithTrials(40), WithSeed(42), WithGoroutines(8)).Evaluate()
		require.NoError(t, err)
		again, _, err := NewMonteCarlo(b, game.Blue, game.Red, WithTrials(40), WithSeed(42), WithGoroutines(8)).Evaluate()
		require.NoError(t, err)

		require.Equal(t, sequential, parallel)
		require.Equal(t, parallel, again)
	})

	t.Run("collects playout metrics", func(t *testing.T) {
		b := newBoard(t, 3)

		mc := NewMonteCarlo(b, game.Blue, game.Red, WithTrials(25), WithGoroutines(4), WithMetrics(metrics.NewCollector()))
		_, metric, err := mc.Evaluate()

		require.NoError(t, err)
		require.Equal(t, 9, metric.Candidates)
		require.Equal(t, 25, metric.Trials)
		require.Equal(t, 4, metric.Goroutines)
		require.Equal(t, 9*25, metric.Playouts)
	})

	t.Run("symmetric cells of an empty board score alike", func(t *testing.T) {
		const trials = 4000
		b := newBoard(t, 3)

		mc := NewMonteCarlo(b, game.Blue, game.Red, WithTrials(trials), WithSeed(2024))
		candidates, _, err := mc.Evaluate()
		require.NoError(t, err)

		byPos := make(map[game.Position]float64, len(candidates))
		for _, c := range candidates {
			byPos[c.Position] = c.Probability
		}
		// Rotating the board by 180 degrees maps (r,c) to (2-r,2-c) and
		// preserves both players' goals.
		tolerance := 5 * math.Sqrt(2*0.25/trials)
		for _, c := range candidates {
			mirror := game.Position{Row: 2 - c.Row, Col: 2 - c.Col}
			require.InDelta(t, c.Probability, byPos[mirror], tolerance,
				"%s and %s should have similar win probabilities", c.Position, mirror)
		}
	})
}

func TestFillStart(t *testing.T) {
	t.Run("true parity continues alternation after the candidate", func(t *testing.T) {
		b := newBoard(t, 3)

		mc := NewMonteCarlo(b, game.Blue, game.Red)
		require.Equal(t, game.Red, mc.fillStart(), "Blue plays stone 1, Red stone 2")

		_, err := b.ApplyMove(0, 0, game.Blue)
		require.NoError(t, err)
		mc = NewMonteCarlo(b, game.Red, game.Blue)
		require.Equal(t, game.Blue, mc.fillStart(), "Red plays stone 2, Blue stone 3")
	})

	t.Run("ai-first parity always starts with the ai", func(t *testing.T) {
		b := newBoard(t, 3)
		_, err := b.ApplyMove(0, 0, game.Blue)
		require.NoError(t, err)

		mc := NewMonteCarlo(b, game.Red, game.Blue, WithParity(AIFirstParity))

		require.Equal(t, game.Red, mc.fillStart())
	})
}

func TestPlayout(t *testing.T) {
	t.Run("fills every cell alternately and reports the winner", func(t *testing.T) {
		b := newBoard(t, 5)
		empty := b.EmptyCells()
		r := rand.New(rand.NewSource(1))

		winner, err := playout(b, empty, game.Red, r)

		require.NoError(t, err)
		require.True(t, b.Full())
		require.True(t, b.Connected(winner))
		require.False(t, b.Connected(winner.Opponent()))

		blue, red := 0, 0
		for _, c := range b.Cells() {
			if c.Owner == game.Blue {
				blue++
			} else {
				red++
			}
		}
		require.Equal(t, 13, red, "Red starts the fill of 25 cells")
		require.Equal(t, 12, blue)
	})
}

func TestNewMonteCarlo(t *testing.T) {
	t.Run("panics when ai and human share a colour", func(t *testing.T) {
		b := newBoard(t, 3)

		require.Panics(t, func() {
			NewMonteCarlo(b, game.Blue, game.Blue)
		})
		require.Panics(t, func() {
			NewMonteCarlo(b, game.Empty, game.Red)
		})
	})

	t.Run("ignores non-positive trials and goroutines", func(t *testing.T) {
		b := newBoard(t, 3)

		mc := NewMonteCarlo(b, game.Blue, game.Red, WithTrials(0), WithGoroutines(-1))

		require.Equal(t, 1000, mc.trials)
		require.Equal(t, 8, mc.goroutines)
	})
}

func TestBest(t *testing.T) {
	t.Run("first maximum wins", func(t *testing.T) {
		candidates := []Candidate{
			{Position: game.Position{Row: 0, Col: 0}, Probability: 0.2},
			{Position: game.Position{Row: 0, Col: 1}, Probability: 0.7},
			{Position: game.Position{Row: 1, Col: 0}, Probability: 0.7},
			{Position: game.Position{Row: 1, Col: 1}, Probability: 0.1},
		}

		require.Equal(t, game.Position{Row: 0, Col: 1}, Best(candidates).Position)
	})
}
