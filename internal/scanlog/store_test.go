package scanlog

import (
	"testing"

	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/classify"
	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/scan"
	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/validate"
)

// #region helpers

func setupStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleResult(runID string) scan.Result {
	return scan.Result{
		RunID:     runID,
		Mode:      classify.ModeVerify,
		Start:     6.0,
		Step:      1.0,
		Requested: 10,
		Evaluated: 4,
		Flags: []scan.Flag{
			{Position: 6.0, Magnitude: 5.0, Mode: classify.ModeVerify},
			{Position: 7.0, Magnitude: 4.2, Mode: classify.ModeVerify},
		},
		Faults:       []scan.Fault{{Position: 8.0, Reason: "did not converge"}},
		AnomalyCount: 2,
		Termination:  scan.TerminationCompleted,
	}
}

// #endregion helpers

// #region scan-tests

func TestRecordAndListScanRun(t *testing.T) {
	store := setupStore(t)

	if err := store.RecordScan(sampleResult("run-1")); err != nil {
		t.Fatalf("record scan: %v", err)
	}

	runs, err := store.ListRuns(10)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}

	run := runs[0]
	if run.RunID != "run-1" {
		t.Errorf("expected run-1, got %q", run.RunID)
	}
	if run.Mode != "verify" || run.Termination != "completed" {
		t.Errorf("unexpected run fields: %+v", run)
	}
	if run.FlagCount != 2 {
		t.Errorf("expected 2 flags counted, got %d", run.FlagCount)
	}
	if run.Evaluated != 4 || run.AnomalyCount != 2 {
		t.Errorf("unexpected counters: %+v", run)
	}
	if run.CreatedAt.IsZero() {
		t.Error("expected created_at set")
	}
}

func TestFlagsForRunPreserveScanOrder(t *testing.T) {
	store := setupStore(t)
	if err := store.RecordScan(sampleResult("run-1")); err != nil {
		t.Fatalf("record scan: %v", err)
	}

	flags, err := store.FlagsForRun("run-1")
	if err != nil {
		t.Fatalf("flags for run: %v", err)
	}
	if len(flags) != 2 {
		t.Fatalf("expected 2 flags, got %d", len(flags))
	}
	if flags[0].Position != 6.0 || flags[1].Position != 7.0 {
		t.Errorf("flags out of scan order: %+v", flags)
	}
	if flags[0].Magnitude != 5.0 {
		t.Errorf("expected magnitude 5.0, got %v", flags[0].Magnitude)
	}
}

func TestRecordAbortedRunKeepsCause(t *testing.T) {
	store := setupStore(t)

	res := sampleResult("run-2")
	res.Termination = scan.TerminationAborted
	res.AbortCause = "precision must be >= 1"
	if err := store.RecordScan(res); err != nil {
		t.Fatalf("record scan: %v", err)
	}

	runs, err := store.ListRuns(1)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if runs[0].AbortCause != "precision must be >= 1" {
		t.Errorf("expected abort cause persisted, got %q", runs[0].AbortCause)
	}
}

// #endregion scan-tests

// #region validation-tests

func TestRecordValidation(t *testing.T) {
	store := setupStore(t)

	report := validate.Report{
		AllPassed: false,
		Sampled:   50,
		Mismatches: []validate.Mismatch{
			{Position: 21.0, Magnitude: 0.5},
		},
	}
	if err := store.RecordValidation(report); err != nil {
		t.Fatalf("record validation: %v", err)
	}

	recs, err := store.ListValidations(5)
	if err != nil {
		t.Fatalf("list validations: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Sampled != 50 || recs[0].Mismatches != 1 || recs[0].AllPassed {
		t.Errorf("unexpected record: %+v", recs[0])
	}
}

// #endregion validation-tests
