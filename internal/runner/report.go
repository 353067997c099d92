package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/danvoicu1/nanosat/internal/sat"
)

func (r *Runner) printTableHeader() {
	fmt.Fprintf(r.out, "%-24s %6s %10s %12s %10s %8s\n",
		"FILE", "ROOT", "ORDER", "CPU(MS)", "MDB", "STATUS")
}

func (r *Runner) printTableRow(name string, n int, res runResult) {
	fmt.Fprintf(r.out, "%-24s %6d %10.3f %12.3f %10d %8s\n",
		name,
		res.root.Signed(n),
		res.stats.ComplexityOrder(n),
		float64(res.elapsed.Microseconds())/1000,
		res.mdbSize,
		res.status,
	)
}

// writeResultFile writes results_dir/<formula>.txt. For a satisfiable
// formula the clause list is reordered so that the first column holds a
// satisfying literal per clause, followed by a runtime footer. Otherwise a
// single NON SAT line is written.
func (r *Runner) writeResultFile(name string, formula *sat.Formula, agg *aggregate) error {
	if err := os.MkdirAll(r.opts.ResultsDir, 0o755); err != nil {
		return errors.Wrap(err, "create results dir")
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	path := filepath.Join(r.opts.ResultsDir, base+".txt")
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create result file")
	}
	defer file.Close()

	if agg.first == nil {
		fmt.Fprintf(file, "NON SAT,%s,%d,%.3f\n",
			name,
			agg.last.root.Signed(formula.N),
			float64(agg.last.elapsed.Microseconds())/1000,
		)
		return nil
	}

	res := agg.first
	for k := 1; k <= formula.M; k++ {
		a, b, c := formula.Clause(k)
		hit := res.solver.SatisfyingLiteral(k)
		switch hit {
		case b:
			a, b = b, a
		case c:
			a, c = c, a
		}
		fmt.Fprintf(file, "%d %d %d\n", a, b, c)
	}
	fmt.Fprintf(file, "runtime_ms,%.3f\n", float64(res.elapsed.Microseconds())/1000)
	return nil
}

func joinInts(vs []int, sep string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
