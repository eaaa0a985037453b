package searcher

import (
	"hex/experiments/metrics"
	"hex/game"
	"hex/meta"
)

// Parity selects which colour fills first after the candidate stone.
type Parity int

const (
	// TrueParity continues strict alternation from the real game: the colour
	// after the candidate is derived from the snapshot's stone count.
	TrueParity Parity = iota
	// AIFirstParity always starts the random fill with the AI's colour.
	AIFirstParity
)

func (p Parity) String() string {
	if p == AIFirstParity {
		return "ai-first"
	}
	return "true"
}

type Option func(m *MonteCarlo)

// Candidate is a legal move with its estimated chance of winning.
type Candidate struct {
	game.Position
	Wins        int
	Trials      int
	Probability float64
}

func WithTrials(trials int) Option {
	return func(m *MonteCarlo) {
		if trials > 0 {
			m.trials = trials
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(m *MonteCarlo) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

// WithSeed makes evaluation reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MonteCarlo) {
		m.seed = seed
		m.seeded = true
	}
}

func WithParity(parity Parity) Option {
	return func(m *MonteCarlo) {
		m.parity = parity
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(m *MonteCarlo) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

func defaults(m *MonteCarlo) {
	m.trials = meta.TRIALS
	m.goroutines = meta.GO_ROUTINES
	m.parity = TrueParity
	m.metrics = metrics.NewDummyCollector()
}
