package planning

import "fmt"

// ProblemInstance holds the static data of an aggregate production planning
// problem: demand and capacity tables per product and period, cost rates and
// workforce bounds. Instances are validated once at construction and treated
// as read-only afterwards.
type ProblemInstance struct {
	NumProducts int
	NumPeriods  int

	Demand             [][]int // [product][period]
	ProductionCapacity [][]int // [product][period]
	InventoryCapacity  []int   // [product]

	UnitProductionCost []float64 // [product]
	UnitInventoryCost  []float64 // [product]

	HireCost float64
	FireCost float64
	Wage     float64

	ProductionPerWorker []int // [product]

	MinWorkers     int
	MaxWorkers     int
	InitialWorkers int
}

// NewProblemInstance validates all array shapes and workforce ordering and
// returns the instance. It fails fast on any mismatch; the optimizer never
// re-checks these invariants.
func NewProblemInstance(inst ProblemInstance) (*ProblemInstance, error) {
	if inst.NumProducts <= 0 || inst.NumPeriods <= 0 {
		return nil, fmt.Errorf("problem dimensions must be positive, got %d products x %d periods",
			inst.NumProducts, inst.NumPeriods)
	}
	if err := checkMatrix("demand", inst.Demand, inst.NumProducts, inst.NumPeriods); err != nil {
		return nil, err
	}
	if err := checkMatrix("production capacity", inst.ProductionCapacity, inst.NumProducts, inst.NumPeriods); err != nil {
		return nil, err
	}
	if len(inst.InventoryCapacity) != inst.NumProducts {
		return nil, fmt.Errorf("inventory capacity has %d entries, want %d", len(inst.InventoryCapacity), inst.NumProducts)
	}
	if len(inst.UnitProductionCost) != inst.NumProducts {
		return nil, fmt.Errorf("unit production cost has %d entries, want %d", len(inst.UnitProductionCost), inst.NumProducts)
	}
	if len(inst.UnitInventoryCost) != inst.NumProducts {
		return nil, fmt.Errorf("unit inventory cost has %d entries, want %d", len(inst.UnitInventoryCost), inst.NumProducts)
	}
	if len(inst.ProductionPerWorker) != inst.NumProducts {
		return nil, fmt.Errorf("production per worker has %d entries, want %d", len(inst.ProductionPerWorker), inst.NumProducts)
	}
	if inst.MinWorkers > inst.MaxWorkers {
		return nil, fmt.Errorf("min workers %d exceeds max workers %d", inst.MinWorkers, inst.MaxWorkers)
	}
	if inst.InitialWorkers < inst.MinWorkers || inst.InitialWorkers > inst.MaxWorkers {
		return nil, fmt.Errorf("initial workers %d outside [%d, %d]", inst.InitialWorkers, inst.MinWorkers, inst.MaxWorkers)
	}
	return &inst, nil
}

func checkMatrix(name string, m [][]int, rows, cols int) error {
	if len(m) != rows {
		return fmt.Errorf("%s has %d rows, want %d", name, len(m), rows)
	}
	for i, row := range m {
		if len(row) != cols {
			return fmt.Errorf("%s row %d has %d columns, want %d", name, i, len(row), cols)
		}
	}
	return nil
}

// DefaultInstance returns the reference 10-product, 12-period planning
// problem used by the CLI and the end-to-end tests.
func DefaultInstance() *ProblemInstance {
	const periods = 12

	demand := [][]int{
		{20160, 19824, 19152, 22848, 20377, 21504, 19824, 25872, 20832, 21168, 20832, 19152},
		{19824, 20160, 19152, 21168, 22809, 20496, 20160, 25536, 20832, 21168, 20832, 19488},
		{23184, 20448, 18432, 20304, 21456, 21024, 20016, 25056, 21456, 20880, 20160, 19440},
		{20160, 19584, 19296, 20448, 21312, 20592, 20160, 25344, 21456, 20448, 20592, 19440},
		{12888, 13472, 13448, 14600, 14720, 14120, 13528, 13312, 14816, 14256, 14128, 13368},
		{13464, 13472, 12872, 15176, 14144, 14696, 12952, 13312, 14816, 14832, 14128, 13368},
		{384, 0, 384, 384, 384, 0, 0, 0, 384, 0, 384, 384},
		{0, 384, 384, 384, 384, 0, 0, 0, 384, 0, 384, 384},
		{1280, 1626, 1280, 1370, 1626, 1626, 1370, 1370, 1716, 1460, 1280, 1220},
		{1658, 1530, 1234, 1568, 1710, 1632, 1440, 1478, 1658, 1170, 1280, 1600},
	}

	capacityRow := func(perShift int) []int {
		row := make([]int, periods)
		for t := range row {
			row[t] = perShift * 6
		}
		return row
	}
	capacity := [][]int{
		capacityRow(3700), capacityRow(3700), capacityRow(3700), capacityRow(3700),
		capacityRow(2400), capacityRow(2400),
		capacityRow(500), capacityRow(500),
		capacityRow(1200), capacityRow(1200),
	}

	inst, err := NewProblemInstance(ProblemInstance{
		NumProducts:        10,
		NumPeriods:         periods,
		Demand:             demand,
		ProductionCapacity: capacity,
		InventoryCapacity:  []int{2000, 1500, 1200, 1800, 1400, 1100, 2100, 1900, 1000, 9000},
		UnitProductionCost: []float64{5.0, 6.0, 4.5, 5.5, 6.2, 4.8, 5.8, 6.1, 4.2, 5.3},
		UnitInventoryCost:  []float64{0.5, 0.5, 0.4, 0.4, 0.6, 0.6, 0.5, 0.5, 0.4, 0.4},
		HireCost:           50.0,
		FireCost:           80.0,
		Wage:               1000.0,
		ProductionPerWorker: []int{
			10, 18, 15, 19, 17, 14, 21, 20, 13, 12,
		},
		MinWorkers:     0,
		MaxWorkers:     50,
		InitialWorkers: 5,
	})
	if err != nil {
		// The default dataset is internally consistent; a validation failure
		// here is a programming error.
		panic(err)
	}
	return inst
}
