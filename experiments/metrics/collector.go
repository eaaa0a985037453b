package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Trials     int // Playouts per candidate
	Candidates int
	Playouts   int
	Duration   time.Duration
}

type MoveMetric struct {
	Step   int
	Player string
	Row    int
	Col    int
	SearchMetric
}

type GameMetric struct {
	ID             string
	Size           int
	StartingPlayer string
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(goroutines, trials, candidates int)
	AddPlayout()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	trials     int
	candidates int
	startTime  time.Time
	playouts   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, trials, candidates int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.trials = trials
	m.candidates = candidates
	m.playouts.Store(0)
}

func (m *collector) AddPlayout() {
	m.playouts.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Trials:     m.trials,
		Candidates: m.candidates,
		Playouts:   int(m.playouts.Load()),
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, trials, candidates int) {}
func (m *dummyCollector) AddPlayout()                              {}
func (m *dummyCollector) Complete() SearchMetric                   { return SearchMetric{} }
