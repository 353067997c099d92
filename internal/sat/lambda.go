package sat

// lambda is the solver's partial assignment: an ordered sequence of encoded
// literals with a constant-time membership mask. The search driver appends
// candidates at the back while unit propagation prepends forced literals at
// the front.
//
// Invariants: no literal appears twice, and a literal and its opposite are
// never both present (the propagators treat either situation as a conflict
// before it can be committed).
type lambda struct {
	seq []Lit
	in  []bool // indexed by Lit, 1..2n
}

func newLambda(n int) *lambda {
	return &lambda{
		seq: make([]Lit, 0, n),
		in:  make([]bool, 2*n+1),
	}
}

func (la *lambda) size() int {
	return len(la.seq)
}

func (la *lambda) contains(l Lit) bool {
	return la.in[l]
}

// add appends l at the back of the sequence.
func (la *lambda) add(l Lit) {
	la.seq = append(la.seq, l)
	la.in[l] = true
}

// pushFront inserts l at the front of the sequence.
func (la *lambda) pushFront(l Lit) {
	la.seq = append(la.seq, 0)
	copy(la.seq[1:], la.seq)
	la.seq[0] = l
	la.in[l] = true
}

// remove deletes the first occurrence of l, preserving the order of the
// remaining literals. It returns false if l is not present.
func (la *lambda) remove(l Lit) bool {
	if !la.in[l] {
		return false
	}
	for i, x := range la.seq {
		if x == l {
			la.seq = append(la.seq[:i], la.seq[i+1:]...)
			break
		}
	}
	la.in[l] = false
	return true
}

// popBack removes and returns the last literal of the sequence.
func (la *lambda) popBack() (Lit, bool) {
	if len(la.seq) == 0 {
		return 0, false
	}
	l := la.seq[len(la.seq)-1]
	la.seq = la.seq[:len(la.seq)-1]
	la.in[l] = false
	return l, true
}

// front returns the first literal of the sequence.
func (la *lambda) front() (Lit, bool) {
	if len(la.seq) == 0 {
		return 0, false
	}
	return la.seq[0], true
}

// snapshot returns a copy of the current sequence. The copy is independent
// from the live state and can be handed back to restore.
func (la *lambda) snapshot() []Lit {
	snap := make([]Lit, len(la.seq))
	copy(snap, la.seq)
	return snap
}

// restore resets the assignment to a previously taken snapshot.
func (la *lambda) restore(snap []Lit) {
	for _, l := range la.seq {
		la.in[l] = false
	}
	la.seq = la.seq[:0]
	for _, l := range snap {
		la.seq = append(la.seq, l)
		la.in[l] = true
	}
}

// reset empties the assignment.
func (la *lambda) reset() {
	for _, l := range la.seq {
		la.in[l] = false
	}
	la.seq = la.seq[:0]
}

// literals exposes the live sequence. Callers must not mutate it.
func (la *lambda) literals() []Lit {
	return la.seq
}
