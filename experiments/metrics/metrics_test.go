package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts playouts from many goroutines", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, 10, 9)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 250; j++ {
					c.AddPlayout()
				}
			}()
		}
		wg.Wait()

		metric := c.Complete()
		require.Equal(t, 1000, metric.Playouts)
		require.Equal(t, 4, metric.Goroutines)
		require.Equal(t, 10, metric.Trials)
		require.Equal(t, 9, metric.Candidates)
	})

	t.Run("start resets the playout count", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 1, 1)
		c.AddPlayout()
		c.Start(1, 1, 1)

		require.Equal(t, 0, c.Complete().Playouts)
	})

	t.Run("dummy collector reports nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(4, 10, 9)
		c.AddPlayout()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	readCSV := func(t *testing.T, path string) [][]string {
		t.Helper()
		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		records, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		return records
	}

	t.Run("writes each record set under a fresh run directory", func(t *testing.T) {
		outDir := t.TempDir()
		w1, err := NewWriter(outDir, "trials")
		require.NoError(t, err)
		w2, err := NewWriter(outDir, "trials")
		require.NoError(t, err)
		require.NotEqual(t, w1.Dir(), w2.Dir())
		require.Equal(t, filepath.Join(outDir, "trials"), filepath.Dir(w1.Dir()))

		require.NoError(t, w1.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: "montecarlo", Trials: 1000, Goroutines: 8}}))
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		require.NoError(t, w1.WriteGameRecords([]GameRecord{{
			Agent1: 1,
			Agent2: 2,
			GameMetric: GameMetric{
				ID: "g1", Size: 5, StartingPlayer: "Blue", Winner: "Red",
				StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, TotalMoves: 17,
			},
		}}))
		require.NoError(t, w1.WriteMoveRecords([]MoveRecord{{
			Game: "g1",
			MoveMetric: MoveMetric{
				Step: 1, Player: "Blue", Row: 2, Col: 3,
				SearchMetric: SearchMetric{Goroutines: 8, Trials: 1000, Candidates: 25, Playouts: 25000, Duration: time.Millisecond},
			},
		}}))

		require.Equal(t, [][]string{
			{"id", "kind", "trials", "goroutines"},
			{"1", "montecarlo", "1000", "8"},
		}, readCSV(t, filepath.Join(w1.Dir(), "agent_configs.csv")))

		games := readCSV(t, filepath.Join(w1.Dir(), "game_records.csv"))
		require.Len(t, games, 2)
		require.Equal(t, []string{"g1", "1", "2", "5", "Blue", "Red", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "17"}, games[1])

		moves := readCSV(t, filepath.Join(w1.Dir(), "move_records.csv"))
		require.Len(t, moves, 2)
		require.Equal(t, []string{"g1", "1", "Blue", "2", "3", "8", "1000", "25", "25000", "1ms"}, moves[1])
	})
}
