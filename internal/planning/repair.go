package planning

// Repairer biases chromosomes toward feasibility. Repair is a bounded
// best-effort pass: production and workforce end up inside their bounds,
// but residual backlog may remain when capacity is insufficient. The
// evaluator's penalties price whatever infeasibility is left.
type Repairer struct {
	inst *ProblemInstance
}

// NewRepairer returns a repairer bound to the given instance.
func NewRepairer(inst *ProblemInstance) *Repairer {
	return &Repairer{inst: inst}
}

// Repair returns a repaired copy of the chromosome. The input is never
// modified.
func (r *Repairer) Repair(c Chromosome) Chromosome {
	out := c.Clone()
	r.clampProduction(out.Production)
	r.repairInventory(out.Production)
	r.clampWorkforce(out.Workforce)
	return out
}

func (r *Repairer) clampProduction(p [][]int) {
	for i := 0; i < r.inst.NumProducts; i++ {
		for t := 0; t < r.inst.NumPeriods; t++ {
			if p[i][t] < 0 {
				p[i][t] = 0
			}
			if cap := r.inst.ProductionCapacity[i][t]; p[i][t] > cap {
				p[i][t] = cap
			}
		}
	}
}

// repairInventory walks periods forward once per product, shrinking the
// current period's production when the running inventory would overflow and
// growing it (within capacity headroom) when it would go negative. No
// backtracking: earlier periods are never revisited.
func (r *Repairer) repairInventory(p [][]int) {
	inst := r.inst
	inv := make([]int, inst.NumProducts)

	for t := 0; t < inst.NumPeriods; t++ {
		for i := 0; i < inst.NumProducts; i++ {
			inv[i] += p[i][t] - inst.Demand[i][t]

			if inv[i] > inst.InventoryCapacity[i] {
				excess := inv[i] - inst.InventoryCapacity[i]
				reduction := min(excess, p[i][t])
				p[i][t] -= reduction
				inv[i] -= reduction
			}

			if inv[i] < 0 {
				need := -inv[i]
				headroom := inst.ProductionCapacity[i][t] - p[i][t]
				addition := min(need, headroom)
				p[i][t] += addition
				inv[i] += addition
			}
		}
	}
}

func (r *Repairer) clampWorkforce(w []int) {
	for t := range w {
		if w[t] < r.inst.MinWorkers {
			w[t] = r.inst.MinWorkers
		}
		if w[t] > r.inst.MaxWorkers {
			w[t] = r.inst.MaxWorkers
		}
	}
}
