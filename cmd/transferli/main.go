// Command transferli transfers ions from the negative electrode of a
// simulated electrochemical cell to the best insertion site on the
// positive electrode's hexagonal lattice.
//
// It reads the run's density profile and structure snapshot from the
// working directory (names derived from -system, -settings and -t0),
// writes a diagnostic report and one relocated-ion snapshot per
// transferable ion.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/andthum/transfer-Li/transfer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "transferli:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		system     = flag.String("system", "", "name of the simulated system (required)")
		settings   = flag.String("settings", "", "simulation-settings tag used in file names")
		t0         = flag.Int("t0", -1, "snapshot time in ns (required)")
		paramsFile = flag.String("params", "", "optional YAML parameter file, merged over the defaults")
		plotFile   = flag.String("plot", "", "optional top-view diagnostic PNG of the selection")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	p := transfer.DefaultParams()
	if *paramsFile != "" {
		var err error
		if p, err = transfer.LoadParams(*paramsFile); err != nil {
			return err
		}
	}
	// Flags win over the parameter file.
	if *system != "" {
		p.System = *system
	}
	if *settings != "" {
		p.Settings = *settings
	}
	if *t0 >= 0 {
		p.T0 = *t0
	}
	if *plotFile != "" {
		p.PlotFile = *plotFile
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum, err := transfer.Run(ctx, log, p)
	if err != nil {
		return err
	}

	log.Info("transfer done",
		"ions", len(sum.Ions),
		"insertion_point", sum.Result.Best,
		"report", sum.ReportFile,
		"snapshots", len(sum.SnapshotFiles))
	return nil
}
