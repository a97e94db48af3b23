package optimizer

import (
	"errors"
	"math"
	"math/rand"

	"github.com/shiraori39/multi-objective-production-planning-lsga/internal/planning"
)

// Crossover produces two offspring chromosomes from two parents. Operators
// never alias parent data: offspring always own fresh arrays.
type Crossover interface {
	Mate(parent1, parent2 planning.Chromosome) (planning.Chromosome, planning.Chromosome)
}

// Mutation returns a mutated copy of a chromosome.
type Mutation interface {
	Mutate(c planning.Chromosome) planning.Chromosome
}

// Selection picks one solution from a population.
type Selection interface {
	Select(population []planning.Solution) (planning.Solution, error)
}

// LocalSearch refines a chromosome, returning the improved (or original)
// copy.
type LocalSearch interface {
	Improve(c planning.Chromosome) planning.Chromosome
}

// ErrEmptyPopulation is returned when selection is asked to pick from an
// empty population.
var ErrEmptyPopulation = errors.New("optimizer: selection from empty population")

// SwapCrossover exchanges the parents' production values at two random
// periods of one random product row. Workforce vectors are untouched.
type SwapCrossover struct {
	inst *planning.ProblemInstance
	rng  *rand.Rand
}

// NewSwapCrossover returns a positional-swap crossover operator.
func NewSwapCrossover(inst *planning.ProblemInstance, rng *rand.Rand) *SwapCrossover {
	return &SwapCrossover{inst: inst, rng: rng}
}

// Mate implements Crossover.
func (x *SwapCrossover) Mate(parent1, parent2 planning.Chromosome) (planning.Chromosome, planning.Chromosome) {
	child1 := parent1.Clone()
	child2 := parent2.Clone()

	i := x.rng.Intn(x.inst.NumProducts)
	t1 := x.rng.Intn(x.inst.NumPeriods)
	t2 := x.rng.Intn(x.inst.NumPeriods)

	child1.Production[i][t1], child2.Production[i][t1] = child2.Production[i][t1], child1.Production[i][t1]
	child1.Production[i][t2], child2.Production[i][t2] = child2.Production[i][t2], child1.Production[i][t2]

	return child1, child2
}

// BlendCrossover builds offspring as rounded arithmetic combinations of the
// parents. A single weight alpha is drawn per mating and applied to every
// cell of both the production matrix and the workforce vector; the second
// child uses the swapped weights.
type BlendCrossover struct {
	inst *planning.ProblemInstance
	rng  *rand.Rand
}

// NewBlendCrossover returns an arithmetic-blend crossover operator.
func NewBlendCrossover(inst *planning.ProblemInstance, rng *rand.Rand) *BlendCrossover {
	return &BlendCrossover{inst: inst, rng: rng}
}

// Mate implements Crossover.
func (x *BlendCrossover) Mate(parent1, parent2 planning.Chromosome) (planning.Chromosome, planning.Chromosome) {
	alpha := x.rng.Float64()

	blend := func(a, b int) (int, int) {
		return roundBlend(alpha, a, b), roundBlend(alpha, b, a)
	}

	child1 := parent1.Clone()
	child2 := parent2.Clone()

	for i := 0; i < x.inst.NumProducts; i++ {
		for t := 0; t < x.inst.NumPeriods; t++ {
			child1.Production[i][t], child2.Production[i][t] = blend(parent1.Production[i][t], parent2.Production[i][t])
		}
	}
	for t := 0; t < x.inst.NumPeriods; t++ {
		child1.Workforce[t], child2.Workforce[t] = blend(parent1.Workforce[t], parent2.Workforce[t])
	}

	return child1, child2
}

func roundBlend(alpha float64, a, b int) int {
	v := alpha*float64(a) + (1-alpha)*float64(b)
	return int(math.Round(v))
}

// ProductionMutation replaces one random production cell with a uniform
// random value within that cell's capacity.
type ProductionMutation struct {
	inst *planning.ProblemInstance
	rng  *rand.Rand
}

// NewProductionMutation returns a production mutation operator.
func NewProductionMutation(inst *planning.ProblemInstance, rng *rand.Rand) *ProductionMutation {
	return &ProductionMutation{inst: inst, rng: rng}
}

// Mutate implements Mutation.
func (m *ProductionMutation) Mutate(c planning.Chromosome) planning.Chromosome {
	out := c.Clone()
	i := m.rng.Intn(m.inst.NumProducts)
	t := m.rng.Intn(m.inst.NumPeriods)
	if capacity := m.inst.ProductionCapacity[i][t]; capacity > 0 {
		out.Production[i][t] = m.rng.Intn(capacity + 1)
	}
	return out
}

// WorkforceMutation replaces one random period's workforce with a uniform
// random value within the workforce bounds.
type WorkforceMutation struct {
	inst *planning.ProblemInstance
	rng  *rand.Rand
}

// NewWorkforceMutation returns a workforce mutation operator.
func NewWorkforceMutation(inst *planning.ProblemInstance, rng *rand.Rand) *WorkforceMutation {
	return &WorkforceMutation{inst: inst, rng: rng}
}

// Mutate implements Mutation.
func (m *WorkforceMutation) Mutate(c planning.Chromosome) planning.Chromosome {
	out := c.Clone()
	t := m.rng.Intn(m.inst.NumPeriods)
	out.Workforce[t] = m.inst.MinWorkers + m.rng.Intn(m.inst.MaxWorkers-m.inst.MinWorkers+1)
	return out
}

// TournamentSelection samples candidates without replacement and compares
// them by Pareto dominance. With two candidates, the dominator wins and a
// non-dominated pair is broken uniformly at random. With more than two,
// the winner is drawn uniformly from the candidates' non-dominated subset.
type TournamentSelection struct {
	size int
	rng  *rand.Rand
}

// NewTournamentSelection returns a tournament of the given size (minimum 2).
func NewTournamentSelection(size int, rng *rand.Rand) *TournamentSelection {
	if size < 2 {
		size = 2
	}
	return &TournamentSelection{size: size, rng: rng}
}

// Select implements Selection.
func (s *TournamentSelection) Select(population []planning.Solution) (planning.Solution, error) {
	if len(population) == 0 {
		return planning.Solution{}, ErrEmptyPopulation
	}

	k := min(s.size, len(population))
	perm := s.rng.Perm(len(population))
	candidates := make([]planning.Solution, k)
	for i := 0; i < k; i++ {
		candidates[i] = population[perm[i]]
	}

	if k == 1 {
		return candidates[0], nil
	}
	if k == 2 {
		a, b := candidates[0], candidates[1]
		switch {
		case a.Dominates(b):
			return a, nil
		case b.Dominates(a):
			return b, nil
		default:
			if s.rng.Intn(2) == 0 {
				return a, nil
			}
			return b, nil
		}
	}

	nondominated := localNondominated(candidates)
	return nondominated[s.rng.Intn(len(nondominated))], nil
}

func localNondominated(candidates []planning.Solution) []planning.Solution {
	var out []planning.Solution
	for i, c := range candidates {
		dominated := false
		for j, other := range candidates {
			if i != j && other.Dominates(c) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, c)
		}
	}
	return out
}
