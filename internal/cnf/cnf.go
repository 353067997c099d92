// Package cnf loads DIMACS CNF files into 3-CNF formulas.
package cnf

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rhartert/dimacs"

	"github.com/danvoicu1/nanosat/internal/sat"
)

// Load parses the DIMACS CNF file at path and returns it as a 3-CNF
// formula. Files ending in .gz are transparently decompressed.
//
// Clauses with one or two literals are padded to a degenerate triple by
// duplicating the preceding literal; clauses with more than three literals
// are rejected.
func Load(path string) (*sat.Formula, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open instance %q", path)
	}
	defer file.Close()

	rc := io.ReadCloser(file)
	if strings.HasSuffix(path, ".gz") {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, errors.Wrapf(err, "read instance %q", path)
		}
		defer rc.Close()
	}

	return Read(rc)
}

// Read parses a DIMACS CNF stream into a 3-CNF formula.
func Read(r io.Reader) (*sat.Formula, error) {
	b := &builder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, errors.Wrap(err, "parse instance")
	}
	if b.formula == nil {
		return nil, errors.New("parse instance: missing \"p cnf\" header")
	}
	return b.formula, nil
}

// builder implements dimacs.Builder.
type builder struct {
	formula *sat.Formula
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return errors.Errorf("problem type %q is not supported", problem)
	}
	if nVars < 1 {
		return errors.Errorf("invalid variable count %d", nVars)
	}
	b.formula = sat.NewFormula(nVars)
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

func (b *builder) Clause(tmpClause []int) error {
	if b.formula == nil {
		return errors.New("clause before \"p cnf\" header")
	}

	lits := make([]int, 0, 3)
	for _, l := range tmpClause {
		if l == 0 {
			break // tolerated trailing terminator
		}
		if v := abs(l); v > b.formula.N {
			return errors.Errorf("literal %d out of range 1..%d", l, b.formula.N)
		}
		lits = append(lits, l)
	}

	switch len(lits) {
	case 0:
		return errors.New("empty clause")
	case 1, 2:
		// Short clauses become degenerate triples by duplicating the
		// preceding literal.
		for len(lits) < 3 {
			lits = append(lits, lits[len(lits)-1])
		}
	case 3:
	default:
		return errors.Errorf("clause has %d literals, want at most 3", len(lits))
	}

	b.formula.AddClause(lits[0], lits[1], lits[2])
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
