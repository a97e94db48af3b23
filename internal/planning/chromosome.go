package planning

// Chromosome encodes one candidate plan: a production matrix (units per
// product per period) and a workforce vector (workers per period). A
// chromosome owns its arrays; NewChromosome and Clone always deep-copy so
// individuals never alias each other's data.
type Chromosome struct {
	Production [][]int // [product][period]
	Workforce  []int   // [period]
}

// NewChromosome builds a chromosome from the given arrays, copying both.
func NewChromosome(production [][]int, workforce []int) Chromosome {
	return Chromosome{
		Production: copyMatrix(production),
		Workforce:  copyVector(workforce),
	}
}

// Clone returns an independent deep copy.
func (c Chromosome) Clone() Chromosome {
	return NewChromosome(c.Production, c.Workforce)
}

// Equal reports elementwise equality of both arrays.
func (c Chromosome) Equal(other Chromosome) bool {
	if len(c.Production) != len(other.Production) || len(c.Workforce) != len(other.Workforce) {
		return false
	}
	for i := range c.Production {
		if len(c.Production[i]) != len(other.Production[i]) {
			return false
		}
		for t := range c.Production[i] {
			if c.Production[i][t] != other.Production[i][t] {
				return false
			}
		}
	}
	for t := range c.Workforce {
		if c.Workforce[t] != other.Workforce[t] {
			return false
		}
	}
	return true
}

func copyMatrix(m [][]int) [][]int {
	out := make([][]int, len(m))
	for i, row := range m {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}
	return out
}

func copyVector(v []int) []int {
	out := make([]int, len(v))
	copy(out, v)
	return out
}
