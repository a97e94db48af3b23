package optimizer

import (
	"sort"

	"github.com/shiraori39/multi-objective-production-planning-lsga/internal/planning"
)

// Archive holds every non-dominated solution discovered over a run. It
// grows by insertion and shrinks only by dominance pruning; it is never
// cleared. Members are unique by (chromosome, objectives).
type Archive struct {
	solutions []planning.Solution
}

// NewArchive returns an empty archive.
func NewArchive() *Archive {
	return &Archive{}
}

// Update offers a candidate to the archive and reports whether it was
// inserted. Exact duplicates and dominated candidates are rejected; on
// insertion, members the candidate dominates are removed.
func (a *Archive) Update(candidate planning.Solution) bool {
	for _, existing := range a.solutions {
		if existing.Equal(candidate) {
			return false
		}
	}
	for _, existing := range a.solutions {
		if existing.Dominates(candidate) {
			return false
		}
	}

	kept := a.solutions[:0]
	for _, existing := range a.solutions {
		if !candidate.Dominates(existing) {
			kept = append(kept, existing)
		}
	}
	a.solutions = append(kept, candidate)
	return true
}

// Len returns the number of archived solutions.
func (a *Archive) Len() int {
	return len(a.solutions)
}

// Sorted returns a snapshot of the archive ascending by cost, stable on
// ties.
func (a *Archive) Sorted() []planning.Solution {
	out := make([]planning.Solution, len(a.solutions))
	copy(out, a.solutions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Cost < out[j].Cost
	})
	return out
}
