// Package runner drives the solver over formula files and reports results
// to the console, a statistics CSV, and per-formula result files.
package runner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/danvoicu1/nanosat/internal/cnf"
	"github.com/danvoicu1/nanosat/internal/sat"
)

// Options configures a batch run.
type Options struct {
	// Exhaustive tries all 2n starting literals per formula instead of
	// stopping at the first SAT result.
	Exhaustive bool

	// StopOnFail pauses for user input after every NON-SAT run.
	StopOnFail bool

	// Record writes a per-iteration trace CSV for every run.
	Record bool

	// PrintSolution prints the positive-polarity solution to the console.
	PrintSolution bool

	// ResultsDir receives the per-formula result files. Created on demand.
	ResultsDir string

	// CSVFile is the path of the per-run statistics CSV. If empty, a
	// timestamped results_*.csv in the working directory is used.
	CSVFile string
}

// Runner processes formula files sequentially. Formulas share no state:
// every run gets a fresh solver, so the memo, assignment, and headers are
// reset between runs.
type Runner struct {
	opts Options
	log  *logrus.Logger
	out  io.Writer
	in   io.Reader

	csv *statsCSV
}

func New(opts Options, log *logrus.Logger, out io.Writer, in io.Reader) *Runner {
	if opts.ResultsDir == "" {
		opts.ResultsDir = "results_dir"
	}
	if opts.CSVFile == "" {
		opts.CSVFile = fmt.Sprintf("results_%s.csv", time.Now().Format("20060102_150405"))
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	if out == nil {
		out = os.Stdout
	}
	if in == nil {
		in = os.Stdin
	}
	return &Runner{opts: opts, log: log, out: out, in: in}
}

// Run dispatches on the argument: anything containing "all" (case
// insensitive) processes every *.cnf file in the working directory,
// anything else is a single formula file.
func (r *Runner) Run(arg string) error {
	defer r.closeCSV()
	if strings.Contains(strings.ToLower(arg), "all") {
		return r.runAll(".")
	}
	return r.runFile(arg)
}

// runAll processes every *.cnf file in dir, in name order. A malformed
// formula aborts that formula only.
func (r *Runner) runAll(dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.cnf"))
	if err != nil {
		return errors.Wrapf(err, "list instances in %q", dir)
	}
	if len(files) == 0 {
		return errors.Errorf("no *.cnf files in %q", dir)
	}
	sort.Strings(files)

	for _, file := range files {
		if err := r.runFile(file); err != nil {
			r.log.WithError(err).Errorf("skipping %s", file)
		}
	}
	return nil
}

// runFile solves one formula file. Starting literals are tried most
// frequent first; unless Exhaustive is set, the first SAT result stops the
// root loop.
func (r *Runner) runFile(path string) error {
	formula, err := cnf.Load(path)
	if err != nil {
		return err
	}

	r.log.WithFields(logrus.Fields{
		"instance":  path,
		"variables": formula.N,
		"clauses":   formula.M,
	}).Info("solving")

	name := filepath.Base(path)
	order := sat.NewStartOrder(formula)
	agg := newAggregate()

	r.printTableHeader()
	for {
		root, ok := order.Next()
		if !ok {
			break
		}

		res := r.runOnce(formula, name, root)
		agg.add(res)

		if res.status == sat.Sat && !r.opts.Exhaustive {
			break
		}
		if res.status != sat.Sat && r.opts.StopOnFail {
			r.pause()
		}
	}

	if err := r.writeResultFile(name, formula, agg); err != nil {
		r.log.WithError(err).Warn("could not write result file")
	}

	r.log.WithFields(logrus.Fields{
		"instance":       name,
		"runs":           agg.runs,
		"solutions":      len(agg.solutions),
		"min_complexity": agg.minOrder,
		"max_complexity": agg.maxOrder,
	}).Info("done")
	return nil
}

// runResult carries everything the reporters need from one solver run.
type runResult struct {
	root     sat.Lit
	status   sat.Status
	elapsed  time.Duration
	mdbSize  int
	stats    sat.Stats
	solution []int      // signed assignment, nil when NON-SAT
	solver   *sat.Solver
}

func (r *Runner) runOnce(formula *sat.Formula, name string, root sat.Lit) runResult {
	solver := sat.NewSolver(formula, sat.Options{
		RecordHistory: r.opts.Record,
		PairSwap:      true,
	})

	start := time.Now()
	status := solver.Run(root)
	elapsed := time.Since(start)

	res := runResult{
		root:    root,
		status:  status,
		elapsed: elapsed,
		mdbSize: solver.MDBSize(),
		stats:   solver.Stats,
		solver:  solver,
	}
	if status == sat.Sat {
		res.solution = solver.Assignment()
	}

	r.printTableRow(name, formula.N, res)
	if r.opts.PrintSolution && status == sat.Sat {
		fmt.Fprintf(r.out, "v %s\n", joinInts(solver.TrueVariables(), " "))
	}

	// Reporting is best effort: a full disk must not abort the search.
	if err := r.writeCSVRow(name, formula, res); err != nil {
		r.log.WithError(err).Warn("could not record statistics")
	}
	if r.opts.Record {
		if err := r.writeTrace(name, formula.N, res); err != nil {
			r.log.WithError(err).Warn("could not record trace")
		}
	}
	return res
}

// pause blocks until the user presses enter.
func (r *Runner) pause() {
	fmt.Fprint(r.out, "NON-SAT result, press enter to continue...")
	reader := bufio.NewReader(r.in)
	_, _ = reader.ReadString('\n')
}

// aggregate accumulates per-formula results across roots.
type aggregate struct {
	runs      int
	minOrder  float64
	maxOrder  float64
	first     *runResult
	last      runResult
	solutions map[string]bool
}

func newAggregate() *aggregate {
	return &aggregate{solutions: map[string]bool{}}
}

func (a *aggregate) add(res runResult) {
	a.last = res
	order := res.stats.ComplexityOrder(res.solver.NumVariables())
	if a.runs == 0 || order < a.minOrder {
		a.minOrder = order
	}
	if a.runs == 0 || order > a.maxOrder {
		a.maxOrder = order
	}
	a.runs++

	if res.status != sat.Sat {
		return
	}
	if a.first == nil {
		cp := res
		a.first = &cp
	}
	a.solutions[joinInts(res.solution, " ")] = true
}
