package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shiraori39/multi-objective-production-planning-lsga/internal/planning"
)

func TestProductionSearch_NeverRegresses(t *testing.T) {
	inst := testInstance(t)
	eval := planning.NewEvaluator(inst)
	search := NewProductionSearch(inst, eval, 20, newTestRand())

	// Deliberately lopsided plan: everything early, nothing late.
	in := planning.NewChromosome([][]int{{20, 20, 0}, {10, 10, 0}}, []int{2, 2, 2})
	want := in.Clone()
	before := eval.Cost(in)

	out := search.Improve(in)

	assert.LessOrEqual(t, eval.Cost(out), before+improvementEpsilon)
	assert.True(t, in.Equal(want))

	for i := range out.Production {
		for tt, units := range out.Production[i] {
			assert.GreaterOrEqual(t, units, 0)
			assert.LessOrEqual(t, units, inst.ProductionCapacity[i][tt])
		}
	}
	// Only production moves; the workforce vector is out of scope.
	assert.Equal(t, in.Workforce, out.Workforce)
}

func TestProductionSearch_ZeroAttemptsIsIdentity(t *testing.T) {
	inst := testInstance(t)
	eval := planning.NewEvaluator(inst)
	search := NewProductionSearch(inst, eval, 0, newTestRand())

	in, _ := testParents()
	out := search.Improve(in)
	assert.True(t, out.Equal(in))
}

func TestWorkforceSearch_ImprovesStabilityWithinCostBound(t *testing.T) {
	inst := testInstance(t)
	eval := planning.NewEvaluator(inst)
	search := NewWorkforceSearch(inst, eval, 3)

	// Jagged staffing: plenty of instability to smooth out.
	in := planning.NewChromosome([][]int{{10, 5, 8}, {4, 6, 2}}, []int{0, 9, 1})
	want := in.Clone()
	_, instabilityBefore := eval.Evaluate(in)

	out := search.Improve(in)
	_, instabilityAfter := eval.Evaluate(out)

	assert.Less(t, instabilityAfter, instabilityBefore)
	assert.True(t, in.Equal(want))

	for _, w := range out.Workforce {
		assert.GreaterOrEqual(t, w, inst.MinWorkers)
		assert.LessOrEqual(t, w, inst.MaxWorkers)
	}
	// Production is out of scope for this search.
	assert.Equal(t, in.Production, out.Production)
}

func TestWorkforceSearch_Deterministic(t *testing.T) {
	inst := testInstance(t)
	eval := planning.NewEvaluator(inst)
	search := NewWorkforceSearch(inst, eval, 3)

	in := planning.NewChromosome([][]int{{10, 5, 8}, {4, 6, 2}}, []int{0, 9, 1})
	first := search.Improve(in)
	second := search.Improve(in)
	assert.True(t, first.Equal(second))
}

func TestWorkforceSearch_ZeroNeighborhoodIsIdentity(t *testing.T) {
	inst := testInstance(t)
	eval := planning.NewEvaluator(inst)
	search := NewWorkforceSearch(inst, eval, 0)

	in, _ := testParents()
	out := search.Improve(in)
	assert.True(t, out.Equal(in))
}
