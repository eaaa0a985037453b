package experiments

import (
	"fmt"
	"os"

	"hex/experiments/metrics"
	"hex/meta"

	"gopkg.in/yaml.v3"
)

const (
	KindMonteCarlo = "montecarlo"
	KindRandom     = "random"
)

// Config describes a set of match-ups between agents, read from YAML:
//
//	name: strength
//	size: 5
//	games: 20
//	seed: 42
//	out_dir: experiments
//	agents:
//	  - {id: 1, kind: montecarlo, trials: 100, goroutines: 4}
//	  - {id: 2, kind: random}
//	matchups:
//	  - [1, 2]
type Config struct {
	Name     string                `yaml:"name"`
	Size     int                   `yaml:"size"`
	Games    int                   `yaml:"games"` // Per match up
	Seed     uint64                `yaml:"seed"`  // 0 seeds from the clock
	OutDir   string                `yaml:"out_dir"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	MatchUps [][]int               `yaml:"matchups"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read experiment config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{
		Name:   "strength",
		Size:   7,
		Games:  10,
		OutDir: "experiments",
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse experiment config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) agent(id int) (metrics.AgentConfig, bool) {
	for _, a := range c.Agents {
		if a.ID == id {
			return a, true
		}
	}
	return metrics.AgentConfig{}, false
}

func (c *Config) validate() error {
	if c.Size < meta.MIN_SIZE || c.Size > meta.MAX_SIZE {
		return fmt.Errorf("size %d not in [%d,%d]", c.Size, meta.MIN_SIZE, meta.MAX_SIZE)
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}

	seen := make(map[int]bool, len(c.Agents))
	for _, a := range c.Agents {
		if seen[a.ID] {
			return fmt.Errorf("duplicate agent id %d", a.ID)
		}
		seen[a.ID] = true
		switch a.Kind {
		case KindMonteCarlo:
			if a.Trials < 0 || a.Goroutines < 0 {
				return fmt.Errorf("agent %d: trials and goroutines must not be negative", a.ID)
			}
		case KindRandom:
		default:
			return fmt.Errorf("agent %d: unknown kind %q", a.ID, a.Kind)
		}
	}

	if len(c.MatchUps) == 0 {
		return fmt.Errorf("no match-ups configured")
	}
	for i, m := range c.MatchUps {
		if len(m) != 2 {
			return fmt.Errorf("match-up %d: expected two agent ids, got %v", i+1, m)
		}
		for _, id := range m {
			if !seen[id] {
				return fmt.Errorf("match-up %d: unknown agent id %d", i+1, id)
			}
		}
	}
	return nil
}
