package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/probgen/heredity/pkg/cpt"
	"github.com/probgen/heredity/pkg/inference"
	"github.com/probgen/heredity/pkg/logging"
	"github.com/probgen/heredity/pkg/metrics"
	"github.com/probgen/heredity/pkg/pedigree"
	"github.com/probgen/heredity/pkg/report"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: heredity [flags] data.csv")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Computes exact posterior gene and trait distributions for every person")
	fmt.Fprintln(os.Stderr, "in a pedigree CSV (columns: name, mother, father, trait).")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func main() {
	os.Exit(run())
}

func run() int {
	cptFile := flag.String("cpt", "", "YAML file overriding the built-in probability tables")
	workers := flag.Int("workers", 1, "Number of enumeration workers")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	showMetrics := flag.Bool("metrics", false, "Log a metrics summary after the run")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		return 1
	}
	path := flag.Arg(0)

	logger := logging.DefaultLogger().With(
		logging.Component("heredity"),
		logging.RunID(uuid.NewString()),
	)
	if *verbose {
		logger.SetLevel(logging.DebugLevel)
	}
	reg := metrics.NewRegistry()

	tables := cpt.Default()
	if *cptFile != "" {
		var err error
		tables, err = cpt.Load(*cptFile)
		if err != nil {
			logger.Error("failed to load probability tables", logging.Path(*cptFile), logging.Error(err))
			return 1
		}
		logger.Info("loaded probability table overrides", logging.Path(*cptFile))
	}

	ped, err := pedigree.LoadFile(path)
	if err != nil {
		reg.RecordLoad("error")
		reg.RecordLoadError(loadErrorKind(err))
		logger.Error("failed to load pedigree", logging.Path(path), logging.Error(err))
		return 1
	}
	reg.RecordLoad("ok")
	logger.Info("loaded pedigree",
		logging.Path(path),
		logging.People(ped.Len()),
		logging.Int("founders", len(ped.Founders())))

	res, err := inference.Run(ped, inference.Options{
		Tables:  tables,
		Workers: *workers,
		Logger:  logger,
		Metrics: reg,
	})
	if err != nil {
		logger.Error("inference failed", logging.Error(err))
		return 1
	}

	if err := report.Write(os.Stdout, ped, res); err != nil {
		logger.Error("failed to write report", logging.Error(err))
		return 1
	}

	if *showMetrics {
		logger.Info("metrics summary", reg.Summary()...)
	}
	return 0
}

// loadErrorKind maps a load failure onto a metric label.
func loadErrorKind(err error) string {
	switch {
	case errors.Is(err, pedigree.ErrUnknownParent):
		return "unknown_parent"
	case errors.Is(err, pedigree.ErrSingleParent):
		return "single_parent"
	case errors.Is(err, pedigree.ErrDuplicateName):
		return "duplicate_name"
	case errors.Is(err, pedigree.ErrAncestryCycle):
		return "ancestry_cycle"
	case errors.Is(err, pedigree.ErrTooManyPeople):
		return "too_many_people"
	case errors.Is(err, pedigree.ErrInvalidRecord):
		return "invalid_record"
	case errors.Is(err, pedigree.ErrMissingColumn), errors.Is(err, pedigree.ErrEmptyInput):
		return "bad_header"
	default:
		return "io"
	}
}
