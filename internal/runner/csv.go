package runner

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/danvoicu1/nanosat/internal/sat"
)

var csvHeader = []string{
	"FileName", "n", "m", "BaseLiteral", "CPUms", "ComplexityOrder",
	"TotalWork", "MainLoopOrder", "WorkPerLoop",
	"GetOppUnitsCalls", "GetUnitsCalls", "FindUnitsCalls", "Solution",
}

// statsCSV appends one row per solver run to the statistics CSV.
type statsCSV struct {
	file   *os.File
	writer *csv.Writer
}

func openStatsCSV(path string) (*statsCSV, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create statistics CSV")
	}
	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		file.Close()
		return nil, errors.Wrap(err, "write statistics CSV")
	}
	return &statsCSV{file: file, writer: w}, nil
}

func (c *statsCSV) write(row []string) error {
	if err := c.writer.Write(row); err != nil {
		return errors.Wrap(err, "write statistics CSV")
	}
	c.writer.Flush()
	return c.writer.Error()
}

func (c *statsCSV) close() {
	if c == nil {
		return
	}
	c.writer.Flush()
	c.file.Close()
}

// writeCSVRow records one solver run. The CSV is opened lazily so that an
// invocation that fails before the first run leaves no empty file behind.
func (r *Runner) writeCSVRow(name string, formula *sat.Formula, res runResult) error {
	if r.csv == nil {
		c, err := openStatsCSV(r.opts.CSVFile)
		if err != nil {
			return err
		}
		r.csv = c
	}

	n := formula.N
	st := res.stats
	return r.csv.write([]string{
		name,
		strconv.Itoa(n),
		strconv.Itoa(formula.M),
		strconv.Itoa(res.root.Signed(n)),
		fmt.Sprintf("%.3f", float64(res.elapsed.Microseconds())/1000),
		fmt.Sprintf("%.4f", st.ComplexityOrder(n)),
		fmt.Sprintf("%.0f", st.Work),
		fmt.Sprintf("%.4f", st.MainLoopOrder(n)),
		fmt.Sprintf("%.2f", st.WorkPerLoop()),
		strconv.FormatInt(st.GetOppUnitsCalls, 10),
		strconv.FormatInt(st.GetUnitsCalls, 10),
		strconv.FormatInt(st.FindUnitsCalls, 10),
		joinInts(res.solution, " "),
	})
}

func (r *Runner) closeCSV() {
	r.csv.close()
	r.csv = nil
}

// writeTrace records the per-iteration history of one run: the assignment
// size and the head/front literals at the end of each main-loop iteration.
func (r *Runner) writeTrace(name string, n int, res runResult) error {
	if err := os.MkdirAll(r.opts.ResultsDir, 0o755); err != nil {
		return errors.Wrap(err, "create results dir")
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	path := filepath.Join(r.opts.ResultsDir,
		fmt.Sprintf("%s_%d_trace.csv", base, res.root.Signed(n)))
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create trace file")
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"Iteration", "LambdaSize", "Head", "Front"}); err != nil {
		return errors.Wrap(err, "write trace file")
	}
	for i, size := range res.stats.LambdaSizes {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(size),
			strconv.Itoa(res.stats.Heads[i].Signed(n)),
			strconv.Itoa(res.stats.Fronts[i].Signed(n)),
		}
		if err := w.Write(row); err != nil {
			return errors.Wrap(err, "write trace file")
		}
	}
	w.Flush()
	return errors.Wrap(w.Error(), "write trace file")
}
