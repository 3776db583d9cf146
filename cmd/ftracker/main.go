package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"example.com/ftracker/internal/config"
	"example.com/ftracker/internal/domain"
)

type sensorPackage struct {
	workoutType string
	data        []float64
}

var packages = []sensorPackage{
	{domain.WorkoutSwimming, []float64{720, 1, 80, 25, 40}},
	{domain.WorkoutRunning, []float64{15000, 1, 75}},
	{domain.WorkoutWalking, []float64{9000, 1, 75, 180}},
}

func main() {
	cfg := config.Load()
	logger := log.New(os.Stderr, "[ftracker] ", log.LstdFlags)

	locale, err := domain.ParseLocale(cfg.ReportLocale)
	if err != nil {
		logger.Printf("%v, falling back to %s", err, domain.LocaleEN)
		locale = domain.LocaleEN
	}

	if failed := run(os.Stdout, logger, locale, packages); failed > 0 {
		os.Exit(1)
	}
}

// run prints one summary line per package and returns how many packages failed.
func run(w io.Writer, logger *log.Logger, locale domain.Locale, pkgs []sensorPackage) int {
	failed := 0
	for _, pkg := range pkgs {
		training, err := domain.ReadPackage(pkg.workoutType, pkg.data)
		if err != nil {
			logger.Printf("read package %s: %v", pkg.workoutType, err)
			failed++
			continue
		}
		info, err := domain.ShowTrainingInfo(training)
		if err != nil {
			logger.Printf("summarize %s: %v", pkg.workoutType, err)
			failed++
			continue
		}
		fmt.Fprintln(w, info.MessageIn(locale))
	}
	return failed
}
