package sat

// Formula is a 3-CNF formula over variables 1..N. The three literals of
// clause k are A[k], B[k], C[k] in signed DIMACS form. The columns are
// 1-based: index 0 is unused. Clauses narrower than three literals are
// represented by duplicating the preceding literal, so every clause can be
// iterated as a triple.
type Formula struct {
	N int
	M int
	A []int
	B []int
	C []int
}

// NewFormula returns an empty formula over n variables. Clauses are added
// with AddClause.
func NewFormula(n int) *Formula {
	return &Formula{
		N: n,
		A: []int{0},
		B: []int{0},
		C: []int{0},
	}
}

// AddClause appends the clause (a, b, c) to the formula.
func (f *Formula) AddClause(a, b, c int) {
	f.A = append(f.A, a)
	f.B = append(f.B, b)
	f.C = append(f.C, c)
	f.M++
}

// Clause returns the k-th clause (1-based).
func (f *Formula) Clause(k int) (int, int, int) {
	return f.A[k], f.B[k], f.C[k]
}
