package planning

// infeasibilityPenaltyRate prices each unit of backlog or inventory
// overflow into the cost objective instead of rejecting the chromosome.
const infeasibilityPenaltyRate = 1000.0

// CostBreakdown itemizes the components of the cost objective Z1.
type CostBreakdown struct {
	Production float64 `json:"production"`
	Holding    float64 `json:"holding"`
	Penalty    float64 `json:"penalty"`
	Wages      float64 `json:"wages"`
	HireFire   float64 `json:"hire_fire"`
}

// Total returns the summed cost objective.
func (b CostBreakdown) Total() float64 {
	return b.Production + b.Holding + b.Penalty + b.Wages + b.HireFire
}

// Evaluator computes both objectives for a chromosome. Evaluation is pure:
// it reads the instance and the chromosome and has no side effects, so two
// calls on the same chromosome return identical values.
type Evaluator struct {
	inst *ProblemInstance
}

// NewEvaluator returns an evaluator bound to the given instance.
func NewEvaluator(inst *ProblemInstance) *Evaluator {
	return &Evaluator{inst: inst}
}

// Evaluate returns (Z1, Z2): total cost and workforce instability.
func (e *Evaluator) Evaluate(c Chromosome) (float64, float64) {
	return e.Cost(c), e.Instability(c)
}

// Cost computes the cost objective Z1.
func (e *Evaluator) Cost(c Chromosome) float64 {
	return e.Breakdown(c).Total()
}

// Breakdown computes Z1 with its components itemized. The inventory
// simulation runs chronologically with an asymmetric clamp: a shortfall is
// penalized and then zeroed (backlog is not carried), while an overflow is
// penalized but left in the running total so it propagates into later
// periods. This asymmetry is part of the objective definition.
func (e *Evaluator) Breakdown(c Chromosome) CostBreakdown {
	inst := e.inst
	var b CostBreakdown

	for i := 0; i < inst.NumProducts; i++ {
		for t := 0; t < inst.NumPeriods; t++ {
			b.Production += inst.UnitProductionCost[i] * float64(c.Production[i][t])
		}
	}

	inv := make([]int, inst.NumProducts)
	for t := 0; t < inst.NumPeriods; t++ {
		for i := 0; i < inst.NumProducts; i++ {
			inv[i] += c.Production[i][t] - inst.Demand[i][t]
			if inv[i] < 0 {
				b.Penalty += infeasibilityPenaltyRate * float64(-inv[i])
				inv[i] = 0
			}
			if inv[i] > inst.InventoryCapacity[i] {
				b.Penalty += infeasibilityPenaltyRate * float64(inv[i]-inst.InventoryCapacity[i])
			}
			b.Holding += inst.UnitInventoryCost[i] * float64(inv[i])
		}
	}

	prev := inst.InitialWorkers
	for t := 0; t < inst.NumPeriods; t++ {
		b.Wages += float64(c.Workforce[t]) * inst.Wage
		if c.Workforce[t] > prev {
			b.HireFire += float64(c.Workforce[t]-prev) * inst.HireCost
		} else {
			b.HireFire += float64(prev-c.Workforce[t]) * inst.FireCost
		}
		prev = c.Workforce[t]
	}

	return b
}

// Instability computes the workforce instability objective Z2: the sum of
// absolute period-to-period workforce changes, starting from the initial
// workforce level.
func (e *Evaluator) Instability(c Chromosome) float64 {
	prev := e.inst.InitialWorkers
	total := 0
	for _, w := range c.Workforce {
		d := w - prev
		if d < 0 {
			d = -d
		}
		total += d
		prev = w
	}
	return float64(total)
}

// CreateSolution evaluates the chromosome and wraps it into a Solution.
func (e *Evaluator) CreateSolution(c Chromosome) Solution {
	z1, z2 := e.Evaluate(c)
	return Solution{Chromosome: c, Cost: z1, Instability: z2}
}
