package optimizer

import "fmt"

// Config holds every tunable of the memetic algorithm. Zero values are not
// usable; start from DefaultConfig and adjust.
type Config struct {
	PopulationSize int `json:"population_size"`
	MaxGenerations int `json:"max_generations"`

	SwapCrossoverProb  float64 `json:"swap_crossover_prob"`
	BlendCrossoverProb float64 `json:"blend_crossover_prob"`

	ProductionMutationProb float64 `json:"production_mutation_prob"`
	WorkforceMutationProb  float64 `json:"workforce_mutation_prob"`

	TournamentSize int `json:"tournament_size"`

	ProductionSearchAttempts    int `json:"production_search_attempts"`
	WorkforceSearchNeighborhood int `json:"workforce_search_neighborhood"`

	RandomSeed int64 `json:"random_seed"`

	// ReportInterval controls how often the progress observer fires, in
	// generations. Generations 1 and MaxGenerations always report.
	ReportInterval int `json:"report_interval"`
}

// DefaultConfig returns the standard parameter set.
func DefaultConfig() Config {
	return Config{
		PopulationSize:              60,
		MaxGenerations:              200,
		SwapCrossoverProb:           0.6,
		BlendCrossoverProb:          0.7,
		ProductionMutationProb:      0.1,
		WorkforceMutationProb:       0.1,
		TournamentSize:              2,
		ProductionSearchAttempts:    10,
		WorkforceSearchNeighborhood: 3,
		RandomSeed:                  42,
		ReportInterval:              10,
	}
}

// FastConfig trades solution quality for runtime.
func FastConfig() Config {
	cfg := DefaultConfig()
	cfg.PopulationSize = 30
	cfg.MaxGenerations = 100
	cfg.ProductionSearchAttempts = 5
	cfg.ReportInterval = 20
	return cfg
}

// ThoroughConfig searches longer and harder.
func ThoroughConfig() Config {
	cfg := DefaultConfig()
	cfg.PopulationSize = 100
	cfg.MaxGenerations = 300
	cfg.ProductionSearchAttempts = 30
	cfg.ReportInterval = 15
	return cfg
}

// Validate checks every parameter range.
func (c Config) Validate() error {
	if c.PopulationSize <= 1 {
		return fmt.Errorf("population size must be > 1, got %d", c.PopulationSize)
	}
	if c.MaxGenerations <= 0 {
		return fmt.Errorf("max generations must be > 0, got %d", c.MaxGenerations)
	}
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"swap crossover probability", c.SwapCrossoverProb},
		{"blend crossover probability", c.BlendCrossoverProb},
		{"production mutation probability", c.ProductionMutationProb},
		{"workforce mutation probability", c.WorkforceMutationProb},
	} {
		if p.value < 0 || p.value > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %g", p.name, p.value)
		}
	}
	if c.TournamentSize < 2 {
		return fmt.Errorf("tournament size must be >= 2, got %d", c.TournamentSize)
	}
	if c.ProductionSearchAttempts < 0 {
		return fmt.Errorf("production search attempts must be >= 0, got %d", c.ProductionSearchAttempts)
	}
	if c.WorkforceSearchNeighborhood < 0 {
		return fmt.Errorf("workforce search neighborhood must be >= 0, got %d", c.WorkforceSearchNeighborhood)
	}
	if c.ReportInterval < 1 {
		return fmt.Errorf("report interval must be >= 1, got %d", c.ReportInterval)
	}
	return nil
}
