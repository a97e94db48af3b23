package optimizer

import (
	"math/rand"

	"github.com/shiraori39/multi-objective-production-planning-lsga/internal/planning"
)

// improvementEpsilon is the minimum strict improvement a local-search move
// must achieve to be accepted. Equal or worse candidates are never taken.
const improvementEpsilon = 1e-6

// costRegressionFactor bounds how much cost the workforce search may give
// back in exchange for better stability.
const costRegressionFactor = 1.02

// productionShiftDeltas are the unit amounts tried when moving production
// between two periods of one product.
var productionShiftDeltas = [...]int{5, 10, -5, -10}

// ProductionSearch performs a randomized best-improvement search on the
// production matrix: each attempt picks a product row and two distinct
// periods and tries shifting a few fixed amounts of production between
// them, keeping any shift that strictly lowers cost. The running best is
// carried across attempts and never reset.
type ProductionSearch struct {
	inst     *planning.ProblemInstance
	eval     *planning.Evaluator
	attempts int
	rng      *rand.Rand
}

// NewProductionSearch returns a production shift search with the given
// number of attempts.
func NewProductionSearch(inst *planning.ProblemInstance, eval *planning.Evaluator, attempts int, rng *rand.Rand) *ProductionSearch {
	return &ProductionSearch{inst: inst, eval: eval, attempts: attempts, rng: rng}
}

// Improve implements LocalSearch.
func (s *ProductionSearch) Improve(c planning.Chromosome) planning.Chromosome {
	best := c.Clone()
	bestCost := s.eval.Cost(best)

	for attempt := 0; attempt < s.attempts; attempt++ {
		i := s.rng.Intn(s.inst.NumProducts)
		t1 := s.rng.Intn(s.inst.NumPeriods)
		t2 := s.rng.Intn(s.inst.NumPeriods)
		if t1 == t2 {
			continue
		}

		for _, delta := range productionShiftDeltas {
			from := best.Production[i][t1] - delta
			to := best.Production[i][t2] + delta
			if from < 0 || to < 0 {
				continue
			}
			if from > s.inst.ProductionCapacity[i][t1] || to > s.inst.ProductionCapacity[i][t2] {
				continue
			}

			candidate := best.Clone()
			candidate.Production[i][t1] = from
			candidate.Production[i][t2] = to

			if cost := s.eval.Cost(candidate); cost < bestCost-improvementEpsilon {
				best = candidate
				bestCost = cost
			}
		}
	}
	return best
}

// WorkforceSearch sweeps every period and every nonzero delta within the
// neighborhood, accepting a move only when instability strictly improves
// and cost stays within the allowed regression bound of the running best.
// The sweep is deterministic; no randomness is involved.
type WorkforceSearch struct {
	inst         *planning.ProblemInstance
	eval         *planning.Evaluator
	neighborhood int
}

// NewWorkforceSearch returns a workforce neighborhood search.
func NewWorkforceSearch(inst *planning.ProblemInstance, eval *planning.Evaluator, neighborhood int) *WorkforceSearch {
	return &WorkforceSearch{inst: inst, eval: eval, neighborhood: neighborhood}
}

// Improve implements LocalSearch.
func (s *WorkforceSearch) Improve(c planning.Chromosome) planning.Chromosome {
	best := c.Clone()
	bestCost, bestInstability := s.eval.Evaluate(best)

	for t := 0; t < s.inst.NumPeriods; t++ {
		for delta := -s.neighborhood; delta <= s.neighborhood; delta++ {
			if delta == 0 {
				continue
			}

			w := best.Workforce[t] + delta
			if w < s.inst.MinWorkers {
				w = s.inst.MinWorkers
			}
			if w > s.inst.MaxWorkers {
				w = s.inst.MaxWorkers
			}

			candidate := best.Clone()
			candidate.Workforce[t] = w

			cost, instability := s.eval.Evaluate(candidate)
			if instability < bestInstability-improvementEpsilon && cost <= bestCost*costRegressionFactor {
				best = candidate
				bestCost = cost
				bestInstability = instability
			}
		}
	}
	return best
}
