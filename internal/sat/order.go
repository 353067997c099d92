package sat

import (
	"github.com/rhartert/yagh"
)

// StartOrder ranks candidate starting literals by how often they occur in
// the formula, most frequent first. The batch runner drains it to pick
// restart roots: frequent literals constrain more clauses and tend to reach
// a verdict with less work. Ties pop in literal order.
type StartOrder struct {
	heap *yagh.IntMap[float64]
}

// NewStartOrder builds the order for all 2n literals of f. Literals that
// never occur are still ranked (last), so draining the order visits every
// possible root exactly once.
func NewStartOrder(f *Formula) *StartOrder {
	n := f.N
	counts := make([]int, 2*n+1)
	for k := 1; k <= f.M; k++ {
		a, b, c := f.Clause(k)
		counts[Encode(a, n)]++
		counts[Encode(b, n)]++
		counts[Encode(c, n)]++
	}

	heap := yagh.New[float64](2*n + 1)
	for l := 1; l <= 2*n; l++ {
		heap.Put(l, -float64(counts[l]))
	}
	return &StartOrder{heap: heap}
}

// Next pops the next starting literal. It returns false when all literals
// have been handed out.
func (so *StartOrder) Next() (Lit, bool) {
	entry, ok := so.heap.Pop()
	if !ok {
		return 0, false
	}
	return Lit(entry.Elem), true
}
