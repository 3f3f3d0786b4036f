package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/evaluator"
	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/scanlog"
	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/validate"
	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/zeros"
)

// #region main

func main() {
	zerosPath := flag.String("zeros", envOr("ZEROS_PRIMARY", "zeros.txt"), "primary reference file (one zero per line)")
	extraPath := flag.String("extra", os.Getenv("ZEROS_EXTRA"), "supplementary reference file, skipped when absent")
	dbPath := flag.String("db", envOr("SCANLOG_DB", "scanlog.db"), "path to the scan log database")
	addr := flag.String("addr", envOr("ORACLE_ADDR", "localhost:50051"), "evaluation service address")
	local := flag.Bool("local", false, "use the in-process Riemann-Siegel evaluator instead of the service")
	sample := flag.Int("sample", 50, "number of repository entries to re-check")
	tolerance := flag.Float64("tolerance", 1e-6, "maximum |zeta| accepted at a stored zero")
	precision := flag.Int("precision", 30, "decimal precision requested from the evaluator")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall validation deadline")
	flag.Parse()

	repo := zeros.NewRepository()
	sources := []zeros.Source{{Path: *zerosPath}}
	if *extraPath != "" {
		sources = append(sources, zeros.Source{Path: *extraPath, Supplementary: true})
	}
	if _, err := repo.Load(sources); err != nil {
		log.Fatalf("failed to load reference files: %v", err)
	}

	var eval evaluator.Evaluator
	if *local {
		eval = evaluator.Local{}
	} else {
		client, err := evaluator.NewOracleClient(*addr)
		if err != nil {
			log.Fatalf("failed to connect to evaluation service at %s: %v", *addr, err)
		}
		defer client.Close()
		eval = client
	}

	store, err := scanlog.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("failed to open scan log: %v", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	harness := validate.NewHarness(repo, eval, validate.Config{
		SampleSize: *sample,
		Tolerance:  *tolerance,
		Precision:  *precision,
	})
	report := harness.Run(ctx)
	if err := store.RecordValidation(report); err != nil {
		log.Printf("record validation: %v", err)
	}

	fmt.Printf("Sampled:    %d\n", report.Sampled)
	fmt.Printf("Mismatches: %d\n", len(report.Mismatches))
	fmt.Printf("Faults:     %d\n", len(report.Faults))
	for _, m := range report.Mismatches {
		fmt.Printf("  mismatch t=%.9f |zeta|=%.3e\n", m.Position, m.Magnitude)
	}
	for _, f := range report.Faults {
		fmt.Printf("  fault t=%.9f: %s\n", f.Position, f.Reason)
	}

	if !report.AllPassed {
		os.Exit(1)
	}
	fmt.Println("All sampled entries confirmed.")
}

// #endregion main

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
