package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/classify"
	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/evaluator"
	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/fracture"
	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/scan"
	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/scanlog"
	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/validate"
	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/zeros"
)

// meanSpacingWindow and searchStartFactor seed the default search start:
// just shy of one mean gap past the last known zero.
const (
	meanSpacingWindow = 100
	searchStartFactor = 0.9
)

// #region main

func main() {
	zerosPath := flag.String("zeros", envOr("ZEROS_PRIMARY", "zeros.txt"), "primary reference file (one zero per line)")
	extraPath := flag.String("extra", os.Getenv("ZEROS_EXTRA"), "supplementary reference file, skipped when absent")
	dbPath := flag.String("db", envOr("SCANLOG_DB", "scanlog.db"), "path to the scan log database")
	addr := flag.String("addr", envOr("ORACLE_ADDR", "localhost:50051"), "evaluation service address")
	local := flag.Bool("local", false, "use the in-process Riemann-Siegel evaluator instead of the service")
	mode := flag.String("mode", "verify", "scan mode: verify or search")
	start := flag.Float64("start", math.NaN(), "first position to evaluate (default: derived from the repository)")
	count := flag.Int("count", 100, "number of positions to evaluate")
	step := flag.Float64("step", 1.0, "spacing between consecutive positions")
	epsilon := flag.Float64("epsilon", 1e-10, "anomaly threshold on |zeta(0.5+it)|")
	precision := flag.Int("precision", 50, "decimal precision requested from the evaluator")
	preValidate := flag.Bool("validate", false, "re-check a repository sample before scanning")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall scan deadline")
	flag.Parse()

	repo := zeros.NewRepository()
	sources := []zeros.Source{{Path: *zerosPath}}
	if *extraPath != "" {
		sources = append(sources, zeros.Source{Path: *extraPath, Supplementary: true})
	}
	report, err := repo.Load(sources)
	if err != nil {
		log.Fatalf("failed to load reference files: %v", err)
	}
	fmt.Printf("Repository: %d zeros (%d deduped, %d malformed lines)\n",
		report.Total, report.Deduped, report.MalformedTotal())

	eval, closeEval, err := buildEvaluator(*local, *addr)
	if err != nil {
		log.Fatalf("failed to build evaluator: %v", err)
	}
	defer closeEval()

	store, err := scanlog.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("failed to open scan log: %v", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *preValidate {
		harness := validate.NewHarness(repo, eval, validate.DefaultConfig())
		vr := harness.Run(ctx)
		if err := store.RecordValidation(vr); err != nil {
			log.Printf("record validation: %v", err)
		}
		if !vr.AllPassed {
			log.Fatalf("repository sample failed validation: %d mismatches, %d faults",
				len(vr.Mismatches), len(vr.Faults))
		}
		fmt.Printf("Validation: %d/%d sampled entries confirmed\n", vr.Sampled, vr.Sampled)
	}

	req := scan.Request{
		Count:     *count,
		Step:      *step,
		Epsilon:   *epsilon,
		Mode:      classify.Mode(*mode),
		Precision: *precision,
	}
	if !math.IsNaN(*start) {
		s := *start
		req.Start = &s
	} else if req.Mode == classify.ModeSearch {
		if s, ok := searchStart(repo); ok {
			req.Start = &s
		}
	}

	engine := scan.NewEngine(repo, eval, fracture.DefaultConfig())
	result, err := engine.Scan(ctx, req)
	if err != nil {
		log.Fatalf("scan failed: %v", err)
	}
	if err := store.RecordScan(result); err != nil {
		log.Printf("record scan: %v", err)
	}

	printResult(result)
	if result.Termination == scan.TerminationFractured {
		os.Exit(1)
	}
}

// #endregion main

// #region helpers

func buildEvaluator(local bool, addr string) (evaluator.Evaluator, func(), error) {
	if local {
		return evaluator.Local{}, func() {}, nil
	}
	client, err := evaluator.NewOracleClient(addr)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { client.Close() }, nil
}

// searchStart places the scan just before the next expected zero,
// one mean gap (scaled down) past the last known one.
func searchStart(repo *zeros.Repository) (float64, bool) {
	max, ok := repo.MaxKnown()
	if !ok {
		return 0, false
	}
	spacing, ok := repo.MeanSpacing(meanSpacingWindow)
	if !ok {
		return 0, false
	}
	return max + spacing*searchStartFactor, true
}

func printResult(res scan.Result) {
	summary := scan.Summarize(res)
	fmt.Printf("\nRun %s (%s)\n", res.RunID, res.Mode)
	fmt.Printf("  Positions:   %d evaluated of %d requested\n", summary.Evaluated, summary.Requested)
	fmt.Printf("  Flags:       %d (rate %.4f)\n", summary.Flags, summary.FlagRate)
	fmt.Printf("  Faults:      %d\n", summary.Faults)
	fmt.Printf("  Termination: %s\n", summary.Termination)
	if res.AbortCause != "" {
		fmt.Printf("  Abort cause: %s\n", res.AbortCause)
	}
	for _, f := range res.Flags {
		fmt.Printf("  flag t=%.9f |zeta|=%.3e\n", f.Position, f.Magnitude)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
