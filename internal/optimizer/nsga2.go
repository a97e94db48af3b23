package optimizer

import (
	"math"
	"sort"

	"github.com/shiraori39/multi-objective-production-planning-lsga/internal/planning"
)

// NondominatedFronts partitions the population into Pareto fronts. Front 0
// holds the solutions dominated by nobody; successive fronts are peeled by
// decrementing dominator counters. Every solution lands in exactly one
// front, and traversal order within a front follows population order.
//
// Solutions are tracked by their dense index into the population, so no
// per-solution lookup ever rescans the slice.
func NondominatedFronts(population []planning.Solution) [][]planning.Solution {
	n := len(population)
	if n == 0 {
		return nil
	}

	dominates := make([][]int, n) // ids dominated by i
	domCount := make([]int, n)    // number of ids dominating i

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if population[i].Dominates(population[j]) {
				dominates[i] = append(dominates[i], j)
			} else if population[j].Dominates(population[i]) {
				domCount[i]++
			}
		}
	}

	var fronts [][]planning.Solution
	var current []int
	for i := 0; i < n; i++ {
		if domCount[i] == 0 {
			current = append(current, i)
		}
	}

	for len(current) > 0 {
		front := make([]planning.Solution, len(current))
		for k, id := range current {
			front[k] = population[id]
		}
		fronts = append(fronts, front)

		var next []int
		for _, id := range current {
			for _, dominated := range dominates[id] {
				domCount[dominated]--
				if domCount[dominated] == 0 {
					next = append(next, dominated)
				}
			}
		}
		current = next
	}
	return fronts
}

// CrowdingDistances computes the crowding distance of each front member,
// indexed parallel to the front. Boundary members per objective get +Inf;
// interior members accumulate the normalized span between their neighbors.
// An objective whose range within the front is zero contributes nothing.
func CrowdingDistances(front []planning.Solution) []float64 {
	n := len(front)
	distances := make([]float64, n)
	if n == 0 {
		return distances
	}

	objectives := [2]func(planning.Solution) float64{
		func(s planning.Solution) float64 { return s.Cost },
		func(s planning.Solution) float64 { return s.Instability },
	}

	order := make([]int, n)
	for _, objective := range objectives {
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return objective(front[order[a]]) < objective(front[order[b]])
		})

		distances[order[0]] = math.Inf(1)
		distances[order[n-1]] = math.Inf(1)

		lo := objective(front[order[0]])
		hi := objective(front[order[n-1]])
		if hi == lo {
			continue
		}
		for k := 1; k < n-1; k++ {
			prev := objective(front[order[k-1]])
			next := objective(front[order[k+1]])
			distances[order[k]] += (next - prev) / (hi - lo)
		}
	}
	return distances
}

// SelectSurvivors performs NSGA-II environmental selection: whole fronts
// are taken by increasing rank while they fit; the front that would
// overflow is truncated by descending crowding distance, with ties broken
// stably by traversal order.
func SelectSurvivors(population []planning.Solution, targetSize int) []planning.Solution {
	if targetSize <= 0 {
		return nil
	}

	survivors := make([]planning.Solution, 0, targetSize)
	for _, front := range NondominatedFronts(population) {
		if len(survivors)+len(front) <= targetSize {
			survivors = append(survivors, front...)
			continue
		}

		remaining := targetSize - len(survivors)
		distances := CrowdingDistances(front)
		order := make([]int, len(front))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return distances[order[a]] > distances[order[b]]
		})
		for _, id := range order[:remaining] {
			survivors = append(survivors, front[id])
		}
		break
	}
	return survivors
}
