package planning

// ObjectivePoint is a (cost, instability) coordinate in objective space.
type ObjectivePoint struct {
	Cost        float64 `json:"cost"`
	Instability float64 `json:"instability"`
}

// Solution pairs a chromosome with its evaluated objectives. Solutions are
// treated as immutable once created.
type Solution struct {
	Chromosome  Chromosome
	Cost        float64 // Z1
	Instability float64 // Z2
}

// Point returns the solution's objective coordinates.
func (s Solution) Point() ObjectivePoint {
	return ObjectivePoint{Cost: s.Cost, Instability: s.Instability}
}

// Dominates reports whether s Pareto-dominates other under minimization:
// no worse in both objectives and strictly better in at least one. The
// relation is strict, so a solution never dominates an objective-identical
// one.
func (s Solution) Dominates(other Solution) bool {
	return s.Cost <= other.Cost && s.Instability <= other.Instability &&
		(s.Cost < other.Cost || s.Instability < other.Instability)
}

// Equal reports whether both solutions carry the same objectives and the
// same chromosome.
func (s Solution) Equal(other Solution) bool {
	return s.Cost == other.Cost && s.Instability == other.Instability &&
		s.Chromosome.Equal(other.Chromosome)
}
