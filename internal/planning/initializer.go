package planning

import "math/rand"

// Initializer produces the starting population. Production is built
// greedily, chasing demand given the running inventory; workforce is drawn
// uniformly within bounds. Every chromosome is passed through repair, which
// guarantees correct shapes and bounds but not full feasibility.
type Initializer struct {
	inst   *ProblemInstance
	repair *Repairer
	rng    *rand.Rand
}

// NewInitializer returns an initializer using the given repairer and random
// engine.
func NewInitializer(inst *ProblemInstance, repair *Repairer, rng *rand.Rand) *Initializer {
	return &Initializer{inst: inst, repair: repair, rng: rng}
}

// Initialize creates n repaired chromosomes.
func (in *Initializer) Initialize(n int) []Chromosome {
	population := make([]Chromosome, 0, n)
	for len(population) < n {
		c := Chromosome{
			Production: in.randomProduction(),
			Workforce:  in.randomWorkforce(),
		}
		population = append(population, in.repair.Repair(c))
	}
	return population
}

func (in *Initializer) randomWorkforce() []int {
	inst := in.inst
	w := make([]int, inst.NumPeriods)
	span := inst.MaxWorkers - inst.MinWorkers + 1
	for t := range w {
		w[t] = inst.MinWorkers + in.rng.Intn(span)
	}
	return w
}

func (in *Initializer) randomProduction() [][]int {
	inst := in.inst
	p := make([][]int, inst.NumProducts)
	for i := range p {
		p[i] = make([]int, inst.NumPeriods)
	}
	inv := make([]int, inst.NumProducts)

	for t := 0; t < inst.NumPeriods; t++ {
		for i := 0; i < inst.NumProducts; i++ {
			need := inst.Demand[i][t] - inv[i]
			if need < 0 {
				need = 0
			}
			capacity := inst.ProductionCapacity[i][t]

			var units int
			if need > capacity {
				units = capacity
			} else {
				units = need + in.rng.Intn(capacity-need+1)
			}

			p[i][t] = units
			inv[i] += units - inst.Demand[i][t]

			// Trim surplus above inventory capacity, but never below what
			// this period's demand required.
			if inv[i] > inst.InventoryCapacity[i] {
				excess := inv[i] - inst.InventoryCapacity[i]
				trim := min(excess, p[i][t]-need)
				p[i][t] -= trim
				inv[i] -= trim
			}
		}
	}
	return p
}
