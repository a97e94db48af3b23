package reporting

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shiraori39/multi-objective-production-planning-lsga/internal/optimizer"
	"github.com/shiraori39/multi-objective-production-planning-lsga/internal/planning"
)

type jsonSolution struct {
	Cost        float64 `json:"cost"`
	Instability float64 `json:"instability"`
	Production  [][]int `json:"production"`
	Workforce   []int   `json:"workforce"`
}

type jsonResult struct {
	Generations int                        `json:"generations"`
	Evaluations int                        `json:"evaluations"`
	DurationMS  int64                      `json:"duration_ms"`
	Archive     []jsonSolution             `json:"archive"`
	History     [][]planning.ObjectivePoint `json:"history,omitempty"`
}

// WriteResultJSON writes the full result, including chromosomes, as
// indented JSON. History is included when withHistory is set.
func WriteResultJSON(res *optimizer.Result, path string, withHistory bool) error {
	if err := EnsureParentDir(path); err != nil {
		return err
	}

	out := jsonResult{
		Generations: res.Generations,
		Evaluations: res.Evaluations,
		DurationMS:  res.Duration.Milliseconds(),
		Archive:     make([]jsonSolution, len(res.Archive)),
	}
	for i, sol := range res.Archive {
		out.Archive[i] = jsonSolution{
			Cost:        sol.Cost,
			Instability: sol.Instability,
			Production:  sol.Chromosome.Production,
			Workforce:   sol.Chromosome.Workforce,
		}
	}
	if withHistory {
		out.History = res.History
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
