package sat

// Options configures a solver.
type Options struct {
	// RecordHistory keeps a per-iteration trace of the assignment size and
	// the head/front literals. Off by default: the history grows with the
	// number of main-loop iterations.
	RecordHistory bool

	// PairSwap enables the pair-swap normalization of the opposite
	// adjacency. Disabling it does not affect correctness, only the order
	// in which the unit finder inspects pair sides (and with it the work
	// counter).
	PairSwap bool
}

var DefaultOptions = Options{
	PairSwap: true,
}

// Solver decides satisfiability of one 3-CNF formula by backtracking search
// over a growing partial assignment. The clause columns and both adjacency
// indexes are built once and immutable during search; lambda and the state
// memo are the only mutable state. A Solver is single-use per Run: Run
// resets lambda, the restart headers, the memo, and the statistics, so two
// runs from the same starting literal are identical.
type Solver struct {
	n int
	m int

	formula *Formula
	adj     [][]Lit
	adjOpp  [][]Lit

	lambda *lambda
	header []bool
	memo   *stateDB
	units  *unitQueue

	opts Options

	Stats Stats
}

func NewDefaultSolver(f *Formula) *Solver {
	return NewSolver(f, DefaultOptions)
}

func NewSolver(f *Formula, opts Options) *Solver {
	adj, adjOpp := buildAdjacency(f, opts.PairSwap)
	return &Solver{
		n:       f.N,
		m:       f.M,
		formula: f,
		adj:     adj,
		adjOpp:  adjOpp,
		lambda:  newLambda(f.N),
		header:  make([]bool, 2*f.N+1),
		memo:    newStateDB(),
		units:   newUnitQueue(f.N),
		opts:    opts,
	}
}

func (s *Solver) NumVariables() int { return s.n }
func (s *Solver) NumClauses() int   { return s.m }

// MDBSize returns the number of distinct assignment states visited by the
// last run.
func (s *Solver) MDBSize() int { return s.memo.size() }

// Run searches for a satisfying assignment rooted at the given starting
// literal. When the root's subtree is exhausted the search restarts from
// the next unused header literal; Run returns NonSat once all 2n headers
// have been consumed without completing an assignment.
func (s *Solver) Run(start Lit) Status {
	s.reset()

	xk := start
	s.header[start] = true
	s.lambda.add(start)
	flip := false

	for s.lambda.size() < s.n && (s.lambda.size() > 0 || s.incrementHeader(&xk)) {
		workBefore := s.Stats.Work

		// Advance the candidate cyclically past assigned variables.
		for s.lambda.contains(xk) || s.lambda.contains(xk.Opposite(s.n)) {
			xk = Lit(int(xk)%(2*s.n) + 1)
		}
		s.lambda.add(xk)

		ok := s.saveState() && s.getAllUnits()
		if !ok || (s.lambda.size() == s.n && !s.Certify()) {
			flip = !flip
			s.lambda.remove(xk)
			xk = xk.Opposite(s.n)
			if !flip {
				// Both polarities failed: undo the previous decision.
				s.lambda.popBack()
				if s.lambda.size() == 1 {
					lone, _ := s.lambda.front()
					s.header[lone] = true
					s.header[lone.Opposite(s.n)] = true
				}
			}
		} else {
			s.saveState()
			flip = false
		}

		s.recordIteration(xk, workBefore)
	}

	if s.lambda.size() == s.n && s.Certify() {
		return Sat
	}
	return NonSat
}

func (s *Solver) reset() {
	s.lambda.reset()
	for i := range s.header {
		s.header[i] = false
	}
	s.memo = newStateDB()
	s.units.clear()
	s.Stats = Stats{}
}

// incrementHeader picks the next unused restart root, marks it used, and
// seeds lambda with it. It returns false when all 2n roots have been used.
func (s *Solver) incrementHeader(xk *Lit) bool {
	for l := Lit(1); int(l) <= 2*s.n; l++ {
		if !s.header[l] {
			s.header[l] = true
			*xk = l
			s.lambda.add(l)
			return true
		}
	}
	return false
}

// saveState memoizes the current assignment and reports whether it is new.
// A revisited state is a conflict for progress purposes: the subtree below
// it has already been explored.
func (s *Solver) saveState() bool {
	s.Stats.Work += float64(s.lambda.size())
	return s.memo.save(s.lambda.literals())
}

func (s *Solver) recordIteration(head Lit, workBefore float64) {
	s.Stats.addLoopWork(s.Stats.Work - workBefore)
	s.Stats.MainLoops++
	if !s.opts.RecordHistory {
		return
	}
	front, _ := s.lambda.front()
	s.Stats.LambdaSizes = append(s.Stats.LambdaSizes, s.lambda.size())
	s.Stats.Heads = append(s.Stats.Heads, head)
	s.Stats.Fronts = append(s.Stats.Fronts, front)
}

// Assignment returns the current assignment in signed form, ordered by
// variable. Unassigned variables are skipped, so after a Sat run the slice
// has exactly one entry per variable.
func (s *Solver) Assignment() []int {
	out := make([]int, 0, s.lambda.size())
	for v := 1; v <= s.n; v++ {
		switch {
		case s.lambda.contains(Lit(v)):
			out = append(out, v)
		case s.lambda.contains(Lit(v + s.n)):
			out = append(out, -v)
		}
	}
	return out
}

// TrueVariables returns the variables assigned true, in increasing order.
func (s *Solver) TrueVariables() []int {
	out := []int{}
	for v := 1; v <= s.n; v++ {
		if s.lambda.contains(Lit(v)) {
			out = append(out, v)
		}
	}
	return out
}

// SatisfyingLiteral returns, for clause k, one of its literals satisfied by
// the current assignment, or 0 if none is.
func (s *Solver) SatisfyingLiteral(k int) int {
	a, b, c := s.formula.Clause(k)
	for _, signed := range []int{a, b, c} {
		if s.lambda.contains(Encode(signed, s.n)) {
			return signed
		}
	}
	return 0
}
