package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRun_singleVariable(t *testing.T) {
	f := formulaOf(1, [3]int{1, 1, 1})
	s := NewDefaultSolver(f)

	if got := s.Run(1); got != Sat {
		t.Fatalf("Run(1): want SAT, got %s", got)
	}
	if diff := cmp.Diff([]int{1}, s.Assignment()); diff != "" {
		t.Errorf("Assignment(): mismatch (-want, +got):\n%s", diff)
	}
}

func TestRun_tautologyClause(t *testing.T) {
	f := formulaOf(1, [3]int{1, -1, 1})

	for root := Lit(1); root <= 2; root++ {
		s := NewDefaultSolver(f)
		if got := s.Run(root); got != Sat {
			t.Errorf("Run(%d): want SAT for a tautology, got %s", root, got)
		}
	}
}

func TestRun_contradiction(t *testing.T) {
	f := formulaOf(1, [3]int{1, 1, 1}, [3]int{-1, -1, -1})

	for root := Lit(1); root <= 2; root++ {
		s := NewDefaultSolver(f)
		if got := s.Run(root); got != NonSat {
			t.Errorf("Run(%d): want NON-SAT, got %s", root, got)
		}
	}
}

func TestRun_twoClausesManyModels(t *testing.T) {
	f := formulaOf(3, [3]int{1, 2, 3}, [3]int{-1, -2, -3})

	for root := Lit(1); int(root) <= 6; root++ {
		s := NewDefaultSolver(f)
		if got := s.Run(root); got != Sat {
			t.Fatalf("Run(%d): want SAT, got %s", root, got)
		}
		if !CertifyAssignment(f, s.lambda.literals()) {
			t.Errorf("Run(%d): assignment %v does not satisfy the formula",
				root, s.Assignment())
		}
	}
}

func TestRun_trivialSat(t *testing.T) {
	f := formulaOf(3, [3]int{1, 2, 3}, [3]int{-1, -2, 3})
	s := NewDefaultSolver(f)

	if got := s.Run(3); got != Sat {
		t.Fatalf("Run(3): want SAT, got %s", got)
	}
	if diff := cmp.Diff([]int{3}, s.TrueVariables()); diff != "" {
		t.Errorf("TrueVariables(): mismatch (-want, +got):\n%s", diff)
	}
}

func TestRun_forcedChain(t *testing.T) {
	f := formulaOf(2, [3]int{1, 2, 2}, [3]int{-1, 2, 2})

	for root := Lit(1); int(root) <= 4; root++ {
		s := NewDefaultSolver(f)
		if got := s.Run(root); got != Sat {
			t.Fatalf("Run(%d): want SAT, got %s", root, got)
		}
		if !s.lambda.contains(2) {
			t.Errorf("Run(%d): want 2 in the assignment, got %v", root, s.Assignment())
		}
	}
}

func TestRun_pigeonholeUnsat(t *testing.T) {
	f := formulaOf(2,
		[3]int{1, 1, 1},
		[3]int{-1, -1, -1},
		[3]int{2, 2, 2},
		[3]int{-2, -2, -2},
	)

	for root := Lit(1); int(root) <= 4; root++ {
		s := NewDefaultSolver(f)
		if got := s.Run(root); got != NonSat {
			t.Errorf("Run(%d): want NON-SAT, got %s", root, got)
		}
	}
}

func TestRun_polarityFlipRecovery(t *testing.T) {
	// Positive 3 satisfies every clause but is not forced ({1, 2, -3} is a
	// model too); starting from -3 must still end in a certified assignment.
	f := formulaOf(3,
		[3]int{1, 2, 3},
		[3]int{-1, 2, 3},
		[3]int{1, -2, 3},
	)
	s := NewDefaultSolver(f)

	if got := s.Run(Encode(-3, 3)); got != Sat {
		t.Fatalf("Run(-3): want SAT, got %s", got)
	}
	if !CertifyAssignment(f, s.lambda.literals()) {
		t.Errorf("Run(-3): assignment %v does not satisfy the formula", s.Assignment())
	}
}

func TestRun_deterministic(t *testing.T) {
	f := formulaOf(3,
		[3]int{1, 2, 3},
		[3]int{-1, 2, 3},
		[3]int{1, -2, 3},
	)

	s1 := NewDefaultSolver(f)
	s2 := NewDefaultSolver(f)
	status1 := s1.Run(Encode(-3, 3))
	status2 := s2.Run(Encode(-3, 3))

	if status1 != status2 {
		t.Fatalf("Run(): want identical status, got %s and %s", status1, status2)
	}
	if s1.Stats.Work != s2.Stats.Work {
		t.Errorf("Run(): want identical work counters, got %f and %f",
			s1.Stats.Work, s2.Stats.Work)
	}
	if diff := cmp.Diff(s1.Assignment(), s2.Assignment()); diff != "" {
		t.Errorf("Run(): assignment mismatch (-want, +got):\n%s", diff)
	}
}

func TestRun_statsAccumulate(t *testing.T) {
	f := formulaOf(3,
		[3]int{1, 2, 3},
		[3]int{-1, 2, 3},
		[3]int{1, -2, 3},
	)
	s := NewSolver(f, Options{RecordHistory: true, PairSwap: true})

	s.Run(Encode(-3, 3))

	if s.Stats.MainLoops == 0 {
		t.Error("Stats.MainLoops: want > 0")
	}
	if s.Stats.Work <= 0 {
		t.Error("Stats.Work: want > 0")
	}
	if s.MDBSize() == 0 {
		t.Error("MDBSize(): want > 0")
	}
	if got := len(s.Stats.LambdaSizes); got != int(s.Stats.MainLoops) {
		t.Errorf("Stats.LambdaSizes: want one entry per iteration (%d), got %d",
			s.Stats.MainLoops, got)
	}
	if s.Stats.ComplexityOrder(3) < 0 {
		t.Error("ComplexityOrder(): want >= 0")
	}
}

func TestCertifyAssignment(t *testing.T) {
	f := formulaOf(3,
		[3]int{1, 1, 1},
		[3]int{2, 2, 2},
		[3]int{3, 3, 3},
	)
	n := 3

	good := []Lit{1, 2, 3}
	if !CertifyAssignment(f, good) {
		t.Fatal("CertifyAssignment(): want true for a known-good assignment")
	}

	// Flipping any single literal must break certification.
	for i := range good {
		flipped := make([]Lit, len(good))
		copy(flipped, good)
		flipped[i] = flipped[i].Opposite(n)
		if CertifyAssignment(f, flipped) {
			t.Errorf("CertifyAssignment(): want false with literal %d flipped", good[i])
		}
	}
}

func TestCertifyAssignment_rejectsIncomplete(t *testing.T) {
	f := formulaOf(2, [3]int{1, 2, 2})

	if CertifyAssignment(f, []Lit{1}) {
		t.Error("CertifyAssignment(): want false for an incomplete assignment")
	}
}

func TestCertifyAssignment_rejectsInconsistent(t *testing.T) {
	f := formulaOf(2, [3]int{1, 2, 2})

	if CertifyAssignment(f, []Lit{1, 3}) {
		t.Error("CertifyAssignment(): want false when a literal and its opposite are both assigned")
	}
}

func TestRun_resetBetweenRuns(t *testing.T) {
	f := formulaOf(2, [3]int{1, 2, 2}, [3]int{-1, 2, 2})
	s := NewDefaultSolver(f)

	first := s.Run(1)
	firstWork := s.Stats.Work
	second := s.Run(1)

	if first != second {
		t.Errorf("Run(): want identical status after reset, got %s and %s", first, second)
	}
	if s.Stats.Work != firstWork {
		t.Errorf("Run(): want identical work after reset, got %f and %f",
			firstWork, s.Stats.Work)
	}
}
