package main

import (
	"os"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/danvoicu1/nanosat/internal/runner"
)

var flagExhaustive = pflag.Bool(
	"exh",
	false,
	"try all 2n starting literals per formula instead of stopping at the first SAT",
)

var flagStopOnFail = pflag.Bool(
	"stp",
	false,
	"wait for user input after every NON-SAT result",
)

var flagRecord = pflag.Bool(
	"rec",
	false,
	"record per-iteration statistics to a per-run CSV",
)

var flagPrintSolution = pflag.Bool(
	"sol",
	false,
	"print the positive-polarity solution to the console",
)

var flagDebug = pflag.Bool(
	"debug",
	false,
	"use debug log level",
)

var flagCPUProfile = pflag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = pflag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

func main() {
	pflag.Parse()

	log := logrus.New()
	if *flagDebug {
		log.SetLevel(logrus.DebugLevel)
	}

	if pflag.NArg() == 0 || pflag.Arg(0) == "" {
		log.Fatal("missing instance file (or \"all\")")
	}

	if *flagCPUProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	r := runner.New(runner.Options{
		Exhaustive:    *flagExhaustive,
		StopOnFail:    *flagStopOnFail,
		Record:        *flagRecord,
		PrintSolution: *flagPrintSolution,
	}, log, os.Stdout, os.Stdin)

	if err := r.Run(pflag.Arg(0)); err != nil {
		log.Fatal(err)
	}

	if *flagMemProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
