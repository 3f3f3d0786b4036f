package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/evaluator"
	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/manifest"
	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/zeros"
)

// defaultStartIndex is the ordinal of the first zero in the stock
// reference files, so exported records line up with the global numbering.
const defaultStartIndex = 3685252

// #region main

func main() {
	zerosPath := flag.String("zeros", envOr("ZEROS_PRIMARY", "zeros.txt"), "primary reference file (one zero per line)")
	extraPath := flag.String("extra", os.Getenv("ZEROS_EXTRA"), "supplementary reference file, skipped when absent")
	out := flag.String("out", "zeros_manifest.json", "manifest output path")
	startIndex := flag.Int64("start-index", defaultStartIndex, "ordinal of the first repository entry")
	extend := flag.Int("extend", 0, "append N further zeros fetched from the evaluation service")
	addr := flag.String("addr", envOr("ORACLE_ADDR", "localhost:50051"), "evaluation service address")
	precision := flag.Int("precision", 50, "decimal precision for fetched zeros")
	check := flag.String("check", "", "verify an existing manifest instead of exporting")
	flag.Parse()

	if *check != "" {
		runCheck(*check)
		return
	}

	repo := zeros.NewRepository()
	sources := []zeros.Source{{Path: *zerosPath}}
	if *extraPath != "" {
		sources = append(sources, zeros.Source{Path: *extraPath, Supplementary: true})
	}
	if _, err := repo.Load(sources); err != nil {
		log.Fatalf("failed to load reference files: %v", err)
	}

	records := manifest.Build(repo.Values(), *startIndex)

	if *extend > 0 {
		extra, err := fetchZeros(*addr, *startIndex+int64(len(records)), *extend, *precision)
		if err != nil {
			log.Fatalf("failed to extend manifest: %v", err)
		}
		records = append(records, extra...)
	}

	if err := manifest.WriteFile(*out, records); err != nil {
		log.Fatalf("failed to write manifest: %v", err)
	}
	fmt.Printf("Wrote %d records to %s (indices %d..%d)\n",
		len(records), *out, *startIndex, *startIndex+int64(len(records))-1)
}

// #endregion main

// #region check

func runCheck(path string) {
	records, err := manifest.ReadFile(path)
	if err != nil {
		log.Fatalf("failed to read manifest: %v", err)
	}
	bad := manifest.Verify(records)
	if len(bad) > 0 {
		for _, idx := range bad {
			fmt.Fprintf(os.Stderr, "hash mismatch at record %d\n", idx)
		}
		os.Exit(1)
	}
	fmt.Printf("%d records verified in %s\n", len(records), path)
}

// #endregion check

// #region fetch

// fetchZeros asks the service for count consecutive zeros starting at firstIndex.
func fetchZeros(addr string, firstIndex int64, count, precision int) ([]manifest.Record, error) {
	client, err := evaluator.NewOracleClient(addr)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	records := make([]manifest.Record, 0, count)
	for i := 0; i < count; i++ {
		index := firstIndex + int64(i)
		position, err := client.ZeroByIndex(ctx, index, precision)
		if err != nil {
			return nil, fmt.Errorf("fetch zero %d: %w", index, err)
		}
		records = append(records, manifest.Record{
			Index:            index,
			RealPart:         0.5,
			ImaginaryPart:    position,
			VerificationHash: manifest.HashValue(position),
		})
	}
	return records, nil
}

// #endregion fetch

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
