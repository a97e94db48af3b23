// Package config resolves run options for the planner CLI. Precedence,
// lowest to highest: built-in defaults, JSON config file, environment
// variables (optionally loaded from a .env file by the caller).
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/shiraori39/multi-objective-production-planning-lsga/internal/optimizer"
)

// envOverrides mirrors optimizer.Config with pointer fields so that only
// variables actually present in the environment override the layers below.
type envOverrides struct {
	PopulationSize              *int     `env:"LSGA_POPULATION_SIZE"`
	MaxGenerations              *int     `env:"LSGA_MAX_GENERATIONS"`
	SwapCrossoverProb           *float64 `env:"LSGA_SWAP_CROSSOVER_PROB"`
	BlendCrossoverProb          *float64 `env:"LSGA_BLEND_CROSSOVER_PROB"`
	ProductionMutationProb      *float64 `env:"LSGA_PRODUCTION_MUTATION_PROB"`
	WorkforceMutationProb       *float64 `env:"LSGA_WORKFORCE_MUTATION_PROB"`
	TournamentSize              *int     `env:"LSGA_TOURNAMENT_SIZE"`
	ProductionSearchAttempts    *int     `env:"LSGA_PRODUCTION_SEARCH_ATTEMPTS"`
	WorkforceSearchNeighborhood *int     `env:"LSGA_WORKFORCE_SEARCH_NEIGHBORHOOD"`
	RandomSeed                  *int64   `env:"LSGA_RANDOM_SEED"`
	ReportInterval              *int     `env:"LSGA_REPORT_INTERVAL"`
}

// LoadAlgorithmConfig layers a JSON file and environment overrides on top
// of the base configuration. The JSON file is optional (empty path skips
// it); environment overrides always apply. The resolved configuration is
// validated before being returned.
func LoadAlgorithmConfig(base optimizer.Config, path string) (optimizer.Config, error) {
	cfg := base

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return cfg, fmt.Errorf("parse environment overrides: %w", err)
	}
	applyOverrides(&cfg, overrides)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyOverrides(cfg *optimizer.Config, o envOverrides) {
	if o.PopulationSize != nil {
		cfg.PopulationSize = *o.PopulationSize
	}
	if o.MaxGenerations != nil {
		cfg.MaxGenerations = *o.MaxGenerations
	}
	if o.SwapCrossoverProb != nil {
		cfg.SwapCrossoverProb = *o.SwapCrossoverProb
	}
	if o.BlendCrossoverProb != nil {
		cfg.BlendCrossoverProb = *o.BlendCrossoverProb
	}
	if o.ProductionMutationProb != nil {
		cfg.ProductionMutationProb = *o.ProductionMutationProb
	}
	if o.WorkforceMutationProb != nil {
		cfg.WorkforceMutationProb = *o.WorkforceMutationProb
	}
	if o.TournamentSize != nil {
		cfg.TournamentSize = *o.TournamentSize
	}
	if o.ProductionSearchAttempts != nil {
		cfg.ProductionSearchAttempts = *o.ProductionSearchAttempts
	}
	if o.WorkforceSearchNeighborhood != nil {
		cfg.WorkforceSearchNeighborhood = *o.WorkforceSearchNeighborhood
	}
	if o.RandomSeed != nil {
		cfg.RandomSeed = *o.RandomSeed
	}
	if o.ReportInterval != nil {
		cfg.ReportInterval = *o.ReportInterval
	}
}
