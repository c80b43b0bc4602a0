// Command hexroute is thin CLI glue around the optimizer package: it
// loads a board/company/trains/bonuses fixture from YAML and prints the
// optimal route assignment, or exits non-zero with the error. No
// editing, no rendering, no persistence — glue only.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/railcore/hexroute/config"
	"github.com/railcore/hexroute/optimizer"
)

var (
	fixturePath = flag.String("fixture", "", "Path to a YAML run fixture (required)")
	workers     = flag.Int("workers", 0, "Worker pool size (0 = GOMAXPROCS)")
	verbose     = flag.Bool("verbose", false, "Print per-train route detail")
)

func main() {
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -fixture flag is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fixture, err := config.LoadFixture(*fixturePath)
	if err != nil {
		return fmt.Errorf("loading fixture: %w", err)
	}

	board, criteria, trains, bonuses, err := config.Build(fixture)
	if err != nil {
		return fmt.Errorf("building fixture: %w", err)
	}

	ctx := context.Background()
	start := time.Now()

	var opts []optimizer.Option
	if *workers > 0 {
		opts = append(opts, optimizer.WithWorkers(*workers))
	}

	result, err := optimizer.Optimize(ctx, board, fixture.Company, trains, bonuses, criteria, opts...)
	if err != nil {
		return fmt.Errorf("optimize: %w", err)
	}

	elapsed := time.Since(start)
	fmt.Printf("Best assignment for %s: revenue %d (in %v)\n", fixture.Company, result.TotalRevenue, elapsed)
	if *verbose {
		for _, tr := range result.PerTrain {
			if tr.Route == nil {
				fmt.Printf("  %s: unused\n", tr.Train.Name)
				continue
			}
			fmt.Printf("  %s: %d stops, revenue %d\n", tr.Train.Name, len(tr.Route.Stops), tr.Route.Revenue)
		}
	}

	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: hexroute -fixture <fixture.yaml> [options]")
	fmt.Fprintln(os.Stderr, "  -workers int   worker pool size (0 = GOMAXPROCS)")
	fmt.Fprintln(os.Stderr, "  -verbose       print per-train route detail")
}
