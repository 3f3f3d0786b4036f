package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/scanlog"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to the scan log database")
	last := flag.Int("last", 20, "show N most recent runs")
	runID := flag.String("run", "", "show the flags of a single run")
	validations := flag.Bool("validations", false, "list validation runs instead of scans")
	jsonOut := flag.Bool("json", false, "output as JSON instead of a table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/scanlog.db [--last N] [--run id] [--validations] [--json]")
		os.Exit(2)
	}

	store, err := scanlog.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case *runID != "":
		err = runFlagsMode(store, *runID, *jsonOut)
	case *validations:
		err = runValidationsMode(store, *last, *jsonOut)
	default:
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

func runListMode(store *scanlog.Store, last int, jsonOut bool) error {
	runs, err := store.ListRuns(last)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}
	if jsonOut {
		return printJSON(runs)
	}

	fmt.Printf("%-10s  %-6s  %12s  %6s  %5s  %5s  %-16s  %s\n",
		"Run", "Mode", "Start", "Eval", "Flags", "Anom", "Termination", "Time")
	for _, r := range runs {
		fmt.Printf("%-10s  %-6s  %12.4f  %6d  %5d  %5d  %-16s  %s\n",
			shortID(r.RunID), r.Mode, r.Start, r.Evaluated, r.FlagCount,
			r.AnomalyCount, r.Termination, r.CreatedAt.Format("2006-01-02T15:04:05Z"))
		if r.AbortCause != "" {
			fmt.Printf("%-10s  cause: %s\n", "", r.AbortCause)
		}
	}
	return nil
}

// #endregion list-mode

// #region flags-mode

func runFlagsMode(store *scanlog.Store, runID string, jsonOut bool) error {
	flags, err := store.FlagsForRun(runID)
	if err != nil {
		return err
	}
	if len(flags) == 0 {
		fmt.Fprintln(os.Stderr, "no flags recorded for run")
		return nil
	}
	if jsonOut {
		return printJSON(flags)
	}

	fmt.Printf("%-6s  %16s  %12s\n", "Mode", "Position", "Magnitude")
	for _, f := range flags {
		fmt.Printf("%-6s  %16.9f  %12.3e\n", f.Mode, f.Position, f.Magnitude)
	}
	return nil
}

// #endregion flags-mode

// #region validations-mode

func runValidationsMode(store *scanlog.Store, last int, jsonOut bool) error {
	recs, err := store.ListValidations(last)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintln(os.Stderr, "no validation runs found")
		return nil
	}
	if jsonOut {
		return printJSON(recs)
	}

	fmt.Printf("%7s  %10s  %6s  %-6s  %s\n", "Sampled", "Mismatches", "Faults", "Passed", "Time")
	for _, r := range recs {
		fmt.Printf("%7d  %10d  %6d  %-6v  %s\n",
			r.Sampled, r.Mismatches, r.Faults, r.AllPassed,
			r.CreatedAt.Format("2006-01-02T15:04:05Z"))
	}
	return nil
}

// #endregion validations-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
