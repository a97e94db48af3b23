package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/shiraori39/multi-objective-production-planning-lsga/internal/monitoring"
	"github.com/shiraori39/multi-objective-production-planning-lsga/internal/optimizer"
	"github.com/shiraori39/multi-objective-production-planning-lsga/internal/planning"
	"github.com/shiraori39/multi-objective-production-planning-lsga/pkg/config"
	"github.com/shiraori39/multi-objective-production-planning-lsga/pkg/reporting"
)

func main() {
	var (
		configFile   = flag.String("config", "", "Path to algorithm config JSON (optional)")
		instanceFile = flag.String("instance", "", "Path to problem instance JSON (default: built-in dataset)")
		preset       = flag.String("preset", "", "Config preset: fast or thorough (ignored when -config is set)")
		seed         = flag.Int64("seed", 0, "Random seed override (0 keeps the configured seed)")
		generations  = flag.Int("generations", 0, "Max generations override (0 keeps the configured value)")
		population   = flag.Int("population", 0, "Population size override (0 keeps the configured value)")
		outputDir    = flag.String("output-dir", "", "Directory for result files (default: results/<timestamp>)")
		writeCSV     = flag.Bool("csv", false, "Write the Pareto front to front.csv")
		writeXLSX    = flag.Bool("xlsx", false, "Write a result workbook to result.xlsx")
		writeJSON    = flag.Bool("json", false, "Write the full result to result.json")
		withHistory  = flag.Bool("history", false, "Include per-generation front history in the JSON output")
		showPlan     = flag.Bool("plan", false, "Print the lowest-cost plan in detail")
		metricsAddr  = flag.String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
		quiet        = flag.Bool("quiet", false, "Suppress per-generation progress logging")
	)
	flag.Parse()

	// .env is optional; missing file is not an error.
	_ = godotenv.Load()

	base := optimizer.DefaultConfig()
	switch *preset {
	case "":
	case "fast":
		base = optimizer.FastConfig()
	case "thorough":
		base = optimizer.ThoroughConfig()
	default:
		log.Fatalf("Unknown preset %q (want fast or thorough)", *preset)
	}

	cfg, err := config.LoadAlgorithmConfig(base, *configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.RandomSeed = *seed
	}
	if *generations != 0 {
		cfg.MaxGenerations = *generations
	}
	if *population != 0 {
		cfg.PopulationSize = *population
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	inst, err := config.LoadInstance(*instanceFile)
	if err != nil {
		log.Fatalf("Failed to load problem instance: %v", err)
	}
	log.Printf("Problem: %d products x %d periods | population %d, %d generations, seed %d",
		inst.NumProducts, inst.NumPeriods, cfg.PopulationSize, cfg.MaxGenerations, cfg.RandomSeed)

	health := monitoring.NewHealthChecker()
	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", monitoring.NewMetricsHandler())
		mux.Handle("/health", health)
		go func() {
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				log.Printf("Metrics server stopped: %v", err)
			}
		}()
	}

	progress := func(gen int, front []planning.ObjectivePoint) {
		lowestCost, lowestInstability := frontBest(front)
		monitoring.RecordGeneration(len(front), lowestCost, lowestInstability)
		health.RecordGeneration(gen)
		if !*quiet {
			log.Printf("Gen %4d: front=%d, best Z1=%.2f, best Z2=%.0f",
				gen, len(front), lowestCost, lowestInstability)
		}
	}

	opt, err := optimizer.New(inst, cfg, progress)
	if err != nil {
		log.Fatalf("Failed to build optimizer: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := opt.Run(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Fatalf("Run failed: %v", err)
		}
		log.Printf("Interrupted after %d generations, reporting partial results", res.Generations)
	}
	monitoring.AddEvaluations(res.Evaluations)
	health.MarkFinished()

	console := reporting.NewConsoleReporter(os.Stdout)
	console.PrintSummary(res)
	if *showPlan && len(res.Archive) > 0 {
		console.PrintPlan(inst, res.Archive[0])
	}

	if *writeCSV || *writeXLSX || *writeJSON {
		dir := *outputDir
		if dir == "" {
			dir = reporting.DefaultOutputDir()
		}
		if *writeCSV {
			path := filepath.Join(dir, "front.csv")
			if err := reporting.WriteFrontCSV(res, path); err != nil {
				log.Fatalf("Failed to write CSV: %v", err)
			}
			log.Printf("Wrote %s", path)
		}
		if *writeXLSX {
			path := filepath.Join(dir, "result.xlsx")
			if err := reporting.NewExcelReporter().WriteWorkbook(inst, res, path); err != nil {
				log.Fatalf("Failed to write workbook: %v", err)
			}
			log.Printf("Wrote %s", path)
		}
		if *writeJSON {
			path := filepath.Join(dir, "result.json")
			if err := reporting.WriteResultJSON(res, path, *withHistory); err != nil {
				log.Fatalf("Failed to write JSON: %v", err)
			}
			log.Printf("Wrote %s", path)
		}
	}
}

func frontBest(front []planning.ObjectivePoint) (float64, float64) {
	if len(front) == 0 {
		return 0, 0
	}
	lowestCost, lowestInstability := front[0].Cost, front[0].Instability
	for _, p := range front[1:] {
		if p.Cost < lowestCost {
			lowestCost = p.Cost
		}
		if p.Instability < lowestInstability {
			lowestInstability = p.Instability
		}
	}
	return lowestCost, lowestInstability
}
