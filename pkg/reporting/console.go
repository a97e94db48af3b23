package reporting

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/shiraori39/multi-objective-production-planning-lsga/internal/optimizer"
	"github.com/shiraori39/multi-objective-production-planning-lsga/internal/planning"
)

// ConsoleReporter renders run results as tables on a writer.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a console reporter writing to out.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// PrintSummary renders the Pareto archive: one row per solution, ascending
// by cost, with the workforce profile condensed to min/max.
func (r *ConsoleReporter) PrintSummary(res *optimizer.Result) {
	fmt.Fprintf(r.out, "Pareto archive: %d solutions, %d generations, %d evaluations, %s\n",
		len(res.Archive), res.Generations, res.Evaluations, res.Duration.Round(1e6))

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.AppendHeader(table.Row{"#", "Cost (Z1)", "Instability (Z2)", "Workers min", "Workers max"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	for i, sol := range res.Archive {
		lo, hi := workforceRange(sol.Chromosome.Workforce)
		t.AppendRow(table.Row{
			i + 1,
			fmt.Sprintf("%.2f", sol.Cost),
			fmt.Sprintf("%.0f", sol.Instability),
			lo,
			hi,
		})
	}
	t.Render()
}

// PrintPlan renders one solution in detail: the cost breakdown, the
// workforce vector, and per-product production totals against demand.
func (r *ConsoleReporter) PrintPlan(inst *planning.ProblemInstance, sol planning.Solution) {
	eval := planning.NewEvaluator(inst)
	b := eval.Breakdown(sol.Chromosome)

	fmt.Fprintf(r.out, "Plan detail: Z1=%.2f Z2=%.0f\n", sol.Cost, sol.Instability)
	fmt.Fprintf(r.out, "  production %.2f | holding %.2f | penalty %.2f | wages %.2f | hire/fire %.2f\n",
		b.Production, b.Holding, b.Penalty, b.Wages, b.HireFire)

	wt := table.NewWriter()
	wt.SetOutputMirror(r.out)
	header := table.Row{"Period"}
	row := table.Row{"Workers"}
	for t := 0; t < inst.NumPeriods; t++ {
		header = append(header, t+1)
		row = append(row, sol.Chromosome.Workforce[t])
	}
	wt.AppendHeader(header)
	wt.AppendRow(row)
	wt.Render()

	pt := table.NewWriter()
	pt.SetOutputMirror(r.out)
	pt.AppendHeader(table.Row{"Product", "Total demand", "Total production"})
	for i := 0; i < inst.NumProducts; i++ {
		demand, produced := 0, 0
		for t := 0; t < inst.NumPeriods; t++ {
			demand += inst.Demand[i][t]
			produced += sol.Chromosome.Production[i][t]
		}
		pt.AppendRow(table.Row{i + 1, demand, produced})
	}
	pt.Render()
}

func workforceRange(w []int) (int, int) {
	if len(w) == 0 {
		return 0, 0
	}
	lo, hi := w[0], w[0]
	for _, v := range w[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
