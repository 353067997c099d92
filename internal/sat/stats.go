package sat

import "math"

// loopWorkDecay controls the smoothing of the per-iteration work average.
// Iterations late in a run dominate: deep assignments make every state save
// and adjacency scan cost more, and the smoothed figure should reflect the
// regime the run ended in rather than its cheap opening moves.
const loopWorkDecay = 0.95

// Stats accumulates the work estimates and call counts of one solver run.
// Work is not wall time: it grows by |lambda| at each state save and by the
// size of the scanned adjacency list in the propagation primitives.
type Stats struct {
	Work float64

	MainLoops        int64
	FindUnitsCalls   int64
	GetUnitsCalls    int64
	GetOppUnitsCalls int64

	loopWork float64

	// Per-iteration history, populated only when Options.RecordHistory is
	// set: the assignment size, the candidate literal, and the assignment's
	// front literal at the end of each main-loop iteration.
	LambdaSizes []int
	Heads       []Lit
	Fronts      []Lit
}

// addLoopWork folds the work spent by one main-loop iteration into the
// smoothed per-loop average. The first iteration seeds the average.
func (st *Stats) addLoopWork(w float64) {
	if st.MainLoops == 0 {
		st.loopWork = w
		return
	}
	st.loopWork = loopWorkDecay*st.loopWork + w*(1-loopWorkDecay)
}

// ComplexityOrder reports the empirical exponent log_n(Work). It is a
// diagnostic, not a bound.
func (st *Stats) ComplexityOrder(n int) float64 {
	return logOrder(st.Work, n)
}

// MainLoopOrder reports log_n of the number of main-loop iterations.
func (st *Stats) MainLoopOrder(n int) float64 {
	return logOrder(float64(st.MainLoops), n)
}

// WorkPerLoop reports the smoothed work spent per main-loop iteration.
func (st *Stats) WorkPerLoop() float64 {
	return st.loopWork
}

func logOrder(w float64, n int) float64 {
	if n < 2 || w < 1 {
		return 0
	}
	return math.Log(w) / math.Log(float64(n))
}
