package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shiraori39/multi-objective-production-planning-lsga/internal/planning"
)

// instanceFile is the JSON schema for an externally supplied problem
// instance.
type instanceFile struct {
	NumProducts         int       `json:"num_products"`
	NumPeriods          int       `json:"num_periods"`
	Demand              [][]int   `json:"demand"`
	ProductionCapacity  [][]int   `json:"production_capacity"`
	InventoryCapacity   []int     `json:"inventory_capacity"`
	UnitProductionCost  []float64 `json:"unit_production_cost"`
	UnitInventoryCost   []float64 `json:"unit_inventory_cost"`
	HireCost            float64   `json:"hire_cost"`
	FireCost            float64   `json:"fire_cost"`
	Wage                float64   `json:"wage"`
	ProductionPerWorker []int     `json:"production_per_worker"`
	MinWorkers          int       `json:"min_workers"`
	MaxWorkers          int       `json:"max_workers"`
	InitialWorkers      int       `json:"initial_workers"`
}

// LoadInstance reads a problem instance from a JSON file and validates it.
// An empty path returns the built-in default instance.
func LoadInstance(path string) (*planning.ProblemInstance, error) {
	if path == "" {
		return planning.DefaultInstance(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read instance file %s: %w", path, err)
	}
	var f instanceFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse instance file %s: %w", path, err)
	}

	inst, err := planning.NewProblemInstance(planning.ProblemInstance{
		NumProducts:         f.NumProducts,
		NumPeriods:          f.NumPeriods,
		Demand:              f.Demand,
		ProductionCapacity:  f.ProductionCapacity,
		InventoryCapacity:   f.InventoryCapacity,
		UnitProductionCost:  f.UnitProductionCost,
		UnitInventoryCost:   f.UnitInventoryCost,
		HireCost:            f.HireCost,
		FireCost:            f.FireCost,
		Wage:                f.Wage,
		ProductionPerWorker: f.ProductionPerWorker,
		MinWorkers:          f.MinWorkers,
		MaxWorkers:          f.MaxWorkers,
		InitialWorkers:      f.InitialWorkers,
	})
	if err != nil {
		return nil, fmt.Errorf("instance file %s: %w", path, err)
	}
	return inst, nil
}
