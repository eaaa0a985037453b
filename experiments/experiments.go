package experiments

import (
	"fmt"
	"time"

	"hex/engine"
	"hex/experiments/metrics"
	"hex/game"
	"hex/searcher"
	"hex/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Summary struct {
	Dir   string // Directory holding the CSV files
	Games []metrics.GameRecord
	Wins  map[int]int // Agent ID -> games won
}

// Run plays every match-up Games times, alternating which agent moves first,
// and stores agent configs, game records and move records as CSV.
func Run(cfg *Config) (*Summary, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	wins := make(map[int]int)

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	count := 0
	for mi, matchup := range cfg.MatchUps {
		config1, _ := cfg.agent(matchup[0])
		config2, _ := cfg.agent(matchup[1])

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(cfg.MatchUps), config1, config2)

		for i := 0; i < cfg.Games; i++ {
			first, second := config1, config2
			if i%2 == 1 {
				first, second = config2, config1
			}

			gameSeed := seed + uint64(count)*2
			blue := newAgent(first, gameSeed)
			red := newAgent(second, gameSeed+1)

			winner, gameMetric, moveMetrics, err := runGame(cfg.Size, blue, red)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++

			winnerID := second.ID
			if winner == game.Blue {
				winnerID = first.ID
			}
			wins[winnerID]++

			gameRecords = append(gameRecords, metrics.GameRecord{
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: agent %d (%s)", mi+1, len(cfg.MatchUps), i+1, winnerID, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(cfg.MatchUps))
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return &Summary{Dir: writer.Dir(), Games: gameRecords, Wins: wins}, nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(size int, blue, red agent.Agent) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	board, err := game.NewBoard(size, game.Blue, game.Blue, game.Red)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}
	e := engine.NewLocalEngine(board, blue, red)
	return e.Run()
}

func newAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	if config.Kind == KindRandom {
		return agent.NewRandomAgent(seed)
	}

	options := []searcher.Option{searcher.WithSeed(seed)}
	if config.Trials > 0 {
		options = append(options, searcher.WithTrials(config.Trials))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	return agent.NewEvaluationAgent(options...)
}
