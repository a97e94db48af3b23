package planning

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

// testInstance returns a small 2-product, 3-period instance with
// hand-checkable numbers.
func testInstance(t *testing.T) *ProblemInstance {
	t.Helper()
	inst, err := NewProblemInstance(ProblemInstance{
		NumProducts:         2,
		NumPeriods:          3,
		Demand:              [][]int{{10, 5, 8}, {4, 6, 2}},
		ProductionCapacity:  [][]int{{20, 20, 20}, {10, 10, 10}},
		InventoryCapacity:   []int{5, 3},
		UnitProductionCost:  []float64{2.0, 3.0},
		UnitInventoryCost:   []float64{0.5, 1.0},
		HireCost:            10.0,
		FireCost:            20.0,
		Wage:                100.0,
		ProductionPerWorker: []int{1, 1},
		MinWorkers:          0,
		MaxWorkers:          10,
		InitialWorkers:      2,
	})
	require.NoError(t, err)
	return inst
}

func TestNewProblemInstance_RejectsBadShapes(t *testing.T) {
	base := func() ProblemInstance {
		return ProblemInstance{
			NumProducts:         2,
			NumPeriods:          3,
			Demand:              [][]int{{10, 5, 8}, {4, 6, 2}},
			ProductionCapacity:  [][]int{{20, 20, 20}, {10, 10, 10}},
			InventoryCapacity:   []int{5, 3},
			UnitProductionCost:  []float64{2.0, 3.0},
			UnitInventoryCost:   []float64{0.5, 1.0},
			ProductionPerWorker: []int{1, 1},
			MinWorkers:          0,
			MaxWorkers:          10,
			InitialWorkers:      2,
		}
	}

	ok := base()
	_, err := NewProblemInstance(ok)
	require.NoError(t, err)

	short := base()
	short.Demand = [][]int{{10, 5, 8}}
	_, err = NewProblemInstance(short)
	assert.Error(t, err)

	ragged := base()
	ragged.ProductionCapacity = [][]int{{20, 20}, {10, 10, 10}}
	_, err = NewProblemInstance(ragged)
	assert.Error(t, err)

	costs := base()
	costs.UnitProductionCost = []float64{2.0}
	_, err = NewProblemInstance(costs)
	assert.Error(t, err)

	bounds := base()
	bounds.MinWorkers = 5
	bounds.MaxWorkers = 3
	_, err = NewProblemInstance(bounds)
	assert.Error(t, err)

	initial := base()
	initial.InitialWorkers = 11
	_, err = NewProblemInstance(initial)
	assert.Error(t, err)

	dims := base()
	dims.NumProducts = 0
	_, err = NewProblemInstance(dims)
	assert.Error(t, err)
}

func TestDefaultInstance_Valid(t *testing.T) {
	inst := DefaultInstance()
	assert.Equal(t, 10, inst.NumProducts)
	assert.Equal(t, 12, inst.NumPeriods)
	assert.Len(t, inst.Demand, 10)
	assert.Len(t, inst.Demand[0], 12)
}

func TestChromosome_CloneIsIndependent(t *testing.T) {
	original := NewChromosome([][]int{{1, 2}, {3, 4}}, []int{5, 6})
	clone := original.Clone()
	require.True(t, original.Equal(clone))

	clone.Production[0][0] = 99
	clone.Workforce[1] = 99
	assert.Equal(t, 1, original.Production[0][0])
	assert.Equal(t, 6, original.Workforce[1])
	assert.False(t, original.Equal(clone))
}

func TestNewChromosome_CopiesInput(t *testing.T) {
	p := [][]int{{1, 2}, {3, 4}}
	w := []int{5, 6}
	c := NewChromosome(p, w)

	p[0][0] = 42
	w[0] = 42
	assert.Equal(t, 1, c.Production[0][0])
	assert.Equal(t, 5, c.Workforce[0])
}

func TestDominance(t *testing.T) {
	a := Solution{Cost: 10, Instability: 5}
	b := Solution{Cost: 12, Instability: 5}
	c := Solution{Cost: 12, Instability: 4}

	assert.True(t, a.Dominates(b))
	assert.False(t, b.Dominates(a))

	// a and c trade off objectives, neither dominates.
	assert.False(t, a.Dominates(c))
	assert.False(t, c.Dominates(a))

	// Irreflexive: equal objectives never dominate.
	twin := Solution{Cost: 10, Instability: 5}
	assert.False(t, a.Dominates(twin))
	assert.False(t, twin.Dominates(a))
}

func TestEvaluator_ExactCost(t *testing.T) {
	inst := testInstance(t)
	eval := NewEvaluator(inst)

	// Production matches demand exactly; inventory stays at zero.
	c := NewChromosome([][]int{{10, 5, 8}, {4, 6, 2}}, []int{2, 3, 1})

	z1, z2 := eval.Evaluate(c)
	// production 2*23 + 3*12 = 82, wages 600, hire 10, fire 40.
	assert.InDelta(t, 732.0, z1, 1e-9)
	assert.InDelta(t, 3.0, z2, 1e-9)

	b := eval.Breakdown(c)
	assert.InDelta(t, 82.0, b.Production, 1e-9)
	assert.InDelta(t, 0.0, b.Holding, 1e-9)
	assert.InDelta(t, 0.0, b.Penalty, 1e-9)
	assert.InDelta(t, 600.0, b.Wages, 1e-9)
	assert.InDelta(t, 50.0, b.HireFire, 1e-9)
}

func TestEvaluator_ShortfallPenaltyClampsBacklog(t *testing.T) {
	inst := testInstance(t)
	eval := NewEvaluator(inst)

	// No production at all: every period's full demand is penalized, and
	// the shortfall is not carried into the next period.
	c := NewChromosome([][]int{{0, 0, 0}, {0, 0, 0}}, []int{0, 0, 0})

	b := eval.Breakdown(c)
	assert.InDelta(t, 35000.0, b.Penalty, 1e-9) // 1000*(10+5+8+4+6+2)
	assert.InDelta(t, 0.0, b.Holding, 1e-9)
	assert.InDelta(t, 40.0, b.HireFire, 1e-9) // firing both initial workers
	assert.InDelta(t, 2.0, eval.Instability(c), 1e-9)
}

func TestEvaluator_ExcessInventoryCarriesForward(t *testing.T) {
	inst := testInstance(t)
	eval := NewEvaluator(inst)

	// Product 0 overshoots in period 0: inventory reaches 10 against a
	// capacity of 5. The overflow is penalized but kept, so period 1
	// starts from 10, not 5.
	c := NewChromosome([][]int{{20, 0, 3}, {4, 6, 2}}, []int{2, 2, 2})

	b := eval.Breakdown(c)
	assert.InDelta(t, 5000.0, b.Penalty, 1e-9)
	// holding: 0.5*10 (t0) + 0.5*5 (t1) + 0 (t2)
	assert.InDelta(t, 7.5, b.Holding, 1e-9)
	assert.InDelta(t, 5689.5, b.Total(), 1e-9)
	assert.InDelta(t, 0.0, eval.Instability(c), 1e-9)
}

func TestEvaluator_IsPure(t *testing.T) {
	inst := testInstance(t)
	eval := NewEvaluator(inst)
	c := NewChromosome([][]int{{7, 0, 13}, {9, 1, 2}}, []int{4, 0, 9})

	z1a, z2a := eval.Evaluate(c)
	z1b, z2b := eval.Evaluate(c)
	assert.Equal(t, z1a, z1b)
	assert.Equal(t, z2a, z2b)
}

func TestRepair_BoundsArbitraryInput(t *testing.T) {
	inst := testInstance(t)
	repair := NewRepairer(inst)

	c := NewChromosome([][]int{{-50, 999, 3}, {11, -1, 40}}, []int{-5, 99, 3})
	out := repair.Repair(c)

	for i := 0; i < inst.NumProducts; i++ {
		for p := 0; p < inst.NumPeriods; p++ {
			assert.GreaterOrEqual(t, out.Production[i][p], 0)
			assert.LessOrEqual(t, out.Production[i][p], inst.ProductionCapacity[i][p])
		}
	}
	for _, w := range out.Workforce {
		assert.GreaterOrEqual(t, w, inst.MinWorkers)
		assert.LessOrEqual(t, w, inst.MaxWorkers)
	}

	// Input untouched.
	assert.Equal(t, -50, c.Production[0][0])
	assert.Equal(t, -5, c.Workforce[0])
}

func TestRepair_ReducesExcessInventoryForward(t *testing.T) {
	inst := testInstance(t)
	repair := NewRepairer(inst)

	c := NewChromosome([][]int{{20, 20, 20}, {4, 6, 2}}, []int{2, 2, 2})
	out := repair.Repair(c)

	// Product 0 demand is 10/5/8 with inventory capacity 5: each period's
	// production is trimmed so the running inventory stays at the cap.
	assert.Equal(t, []int{15, 5, 8}, out.Production[0])
}

func TestRepair_FillsBacklogWithinCapacity(t *testing.T) {
	inst := testInstance(t)
	repair := NewRepairer(inst)

	c := NewChromosome([][]int{{0, 0, 0}, {0, 0, 0}}, []int{2, 2, 2})
	out := repair.Repair(c)

	assert.Equal(t, []int{10, 5, 8}, out.Production[0])
	assert.Equal(t, []int{4, 6, 2}, out.Production[1])
}

func TestInitializer_ShapesAndBounds(t *testing.T) {
	inst := testInstance(t)
	repair := NewRepairer(inst)
	init := NewInitializer(inst, repair, newTestRand())

	population := init.Initialize(17)
	require.Len(t, population, 17)

	for _, c := range population {
		require.Len(t, c.Production, inst.NumProducts)
		for i := range c.Production {
			require.Len(t, c.Production[i], inst.NumPeriods)
			for p, units := range c.Production[i] {
				assert.GreaterOrEqual(t, units, 0)
				assert.LessOrEqual(t, units, inst.ProductionCapacity[i][p])
			}
		}
		require.Len(t, c.Workforce, inst.NumPeriods)
		for _, w := range c.Workforce {
			assert.GreaterOrEqual(t, w, inst.MinWorkers)
			assert.LessOrEqual(t, w, inst.MaxWorkers)
		}
	}
}
