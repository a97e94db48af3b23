package optimizer

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shiraori39/multi-objective-production-planning-lsga/internal/planning"
)

// ProgressFunc observes the evolving front-0 of the combined pool. It is
// invoked after the generation's bookkeeping is done and must not be relied
// on by the loop itself: a nil callback changes nothing about the search.
type ProgressFunc func(generation int, front []planning.ObjectivePoint)

// Result is the output of a run: the final archive, its objective
// coordinates, and the per-generation front-0 history.
type Result struct {
	Archive     []planning.Solution
	Points      []planning.ObjectivePoint
	History     [][]planning.ObjectivePoint
	Generations int
	Evaluations int
	Duration    time.Duration
}

// Optimizer drives the memetic generational loop: tournament mating with
// two crossover operators, mutation, repair, production-then-workforce
// local search, NSGA-II environmental selection, and a persistent Pareto
// archive fed from the combined parent+offspring pool.
//
// The loop is fully sequential and deterministic for a fixed seed: a single
// rand.Rand instance is threaded through every stochastic operator.
type Optimizer struct {
	inst *planning.ProblemInstance
	cfg  Config
	rng  *rand.Rand

	eval        *planning.Evaluator
	repair      *planning.Repairer
	initializer *planning.Initializer

	swapCrossover  Crossover
	blendCrossover Crossover
	productionMut  Mutation
	workforceMut   Mutation
	selection      Selection
	prodSearch     LocalSearch
	workSearch     LocalSearch

	archive  *Archive
	history  [][]planning.ObjectivePoint
	progress ProgressFunc

	evaluations int
}

// New builds an optimizer for the given instance and configuration. The
// progress callback may be nil.
func New(inst *planning.ProblemInstance, cfg Config, progress ProgressFunc) (*Optimizer, error) {
	if inst == nil {
		return nil, fmt.Errorf("optimizer: nil problem instance")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("optimizer: invalid config: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.RandomSeed))
	eval := planning.NewEvaluator(inst)
	repair := planning.NewRepairer(inst)

	return &Optimizer{
		inst:           inst,
		cfg:            cfg,
		rng:            rng,
		eval:           eval,
		repair:         repair,
		initializer:    planning.NewInitializer(inst, repair, rng),
		swapCrossover:  NewSwapCrossover(inst, rng),
		blendCrossover: NewBlendCrossover(inst, rng),
		productionMut:  NewProductionMutation(inst, rng),
		workforceMut:   NewWorkforceMutation(inst, rng),
		selection:      NewTournamentSelection(cfg.TournamentSize, rng),
		prodSearch:     NewProductionSearch(inst, eval, cfg.ProductionSearchAttempts, rng),
		workSearch:     NewWorkforceSearch(inst, eval, cfg.WorkforceSearchNeighborhood),
		archive:        NewArchive(),
		progress:       progress,
	}, nil
}

// Run executes the generational loop to completion or until ctx is
// cancelled at a generation boundary. On cancellation it returns the
// partial result alongside the context error.
func (o *Optimizer) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	population := o.evaluateAll(o.initializer.Initialize(o.cfg.PopulationSize))

	generations := 0
	for gen := 1; gen <= o.cfg.MaxGenerations; gen++ {
		if err := ctx.Err(); err != nil {
			return o.result(generations, start), err
		}

		offspring, err := o.reproduce(population)
		if err != nil {
			return o.result(generations, start), err
		}
		for i := range offspring {
			offspring[i] = o.workSearch.Improve(o.prodSearch.Improve(offspring[i]))
		}

		combined := append(append([]planning.Solution{}, population...), o.evaluateAll(offspring)...)
		population = SelectSurvivors(combined, o.cfg.PopulationSize)

		front := NondominatedFronts(combined)[0]
		for _, sol := range front {
			o.archive.Update(sol)
		}

		coords := make([]planning.ObjectivePoint, len(front))
		for i, sol := range front {
			coords[i] = sol.Point()
		}
		o.history = append(o.history, coords)
		generations = gen

		if o.progress != nil && (gen == 1 || gen == o.cfg.MaxGenerations || gen%o.cfg.ReportInterval == 0) {
			o.progress(gen, coords)
		}
	}

	return o.result(generations, start), nil
}

// reproduce generates exactly PopulationSize offspring chromosomes by
// repeated matings. Both crossover operators may fire on one mating; when
// the blend fires after the swap, its children replace the swap's. Each
// child is mutated independently and repaired. A surplus second child of
// the last mating is dropped.
func (o *Optimizer) reproduce(population []planning.Solution) ([]planning.Chromosome, error) {
	offspring := make([]planning.Chromosome, 0, o.cfg.PopulationSize)

	for len(offspring) < o.cfg.PopulationSize {
		parent1, err := o.selection.Select(population)
		if err != nil {
			return nil, err
		}
		parent2, err := o.selection.Select(population)
		if err != nil {
			return nil, err
		}

		child1 := parent1.Chromosome.Clone()
		child2 := parent2.Chromosome.Clone()

		if o.rng.Float64() < o.cfg.SwapCrossoverProb {
			child1, child2 = o.swapCrossover.Mate(parent1.Chromosome, parent2.Chromosome)
		}
		if o.rng.Float64() < o.cfg.BlendCrossoverProb {
			child1, child2 = o.blendCrossover.Mate(parent1.Chromosome, parent2.Chromosome)
		}

		if o.rng.Float64() < o.cfg.ProductionMutationProb {
			child1 = o.productionMut.Mutate(child1)
		}
		if o.rng.Float64() < o.cfg.ProductionMutationProb {
			child2 = o.productionMut.Mutate(child2)
		}
		if o.rng.Float64() < o.cfg.WorkforceMutationProb {
			child1 = o.workforceMut.Mutate(child1)
		}
		if o.rng.Float64() < o.cfg.WorkforceMutationProb {
			child2 = o.workforceMut.Mutate(child2)
		}

		offspring = append(offspring, o.repair.Repair(child1))
		if len(offspring) < o.cfg.PopulationSize {
			offspring = append(offspring, o.repair.Repair(child2))
		}
	}
	return offspring, nil
}

func (o *Optimizer) evaluateAll(chromosomes []planning.Chromosome) []planning.Solution {
	solutions := make([]planning.Solution, len(chromosomes))
	for i, c := range chromosomes {
		solutions[i] = o.eval.CreateSolution(c)
	}
	o.evaluations += len(chromosomes)
	return solutions
}

func (o *Optimizer) result(generations int, start time.Time) *Result {
	archive := o.archive.Sorted()
	points := make([]planning.ObjectivePoint, len(archive))
	for i, sol := range archive {
		points[i] = sol.Point()
	}
	return &Result{
		Archive:     archive,
		Points:      points,
		History:     o.history,
		Generations: generations,
		Evaluations: o.evaluations,
		Duration:    time.Since(start),
	}
}

// Archive exposes the persistent archive, mainly for inspection in tests.
func (o *Optimizer) Archive() *Archive {
	return o.archive
}
