package validate

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/evaluator"
	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/zeros"
)

// #region helpers

type stubEvaluator struct {
	fn    func(position float64) (float64, error)
	calls []float64
}

func (s *stubEvaluator) Evaluate(_ context.Context, position float64, _ int) (float64, error) {
	s.calls = append(s.calls, position)
	return s.fn(position)
}

func makeRepo(t *testing.T, values ...float64) *zeros.Repository {
	t.Helper()
	var content string
	for _, v := range values {
		content += strconv.FormatFloat(v, 'g', -1, 64) + "\n"
	}
	path := filepath.Join(t.TempDir(), "zeros.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write repo file: %v", err)
	}
	repo := zeros.NewRepository()
	if len(values) > 0 {
		if _, err := repo.Load([]zeros.Source{{Path: path}}); err != nil {
			t.Fatalf("load repo: %v", err)
		}
	}
	return repo
}

// #endregion helpers

// #region harness-tests

func TestValidateAllPass(t *testing.T) {
	repo := makeRepo(t, 14.1, 21.0, 25.0, 30.4, 32.9)
	eval := &stubEvaluator{fn: func(float64) (float64, error) { return 1e-9, nil }}
	h := NewHarness(repo, eval, Config{SampleSize: 3, Tolerance: 1e-6, Precision: 30})

	report := h.Run(context.Background())

	if !report.AllPassed {
		t.Fatal("expected all passed")
	}
	if report.Sampled != 3 {
		t.Errorf("expected 3 sampled, got %d", report.Sampled)
	}
	if len(report.Mismatches) != 0 {
		t.Errorf("expected no mismatches, got %d", len(report.Mismatches))
	}
}

func TestValidateReportsMismatch(t *testing.T) {
	repo := makeRepo(t, 14.1, 21.0, 25.0)
	eval := &stubEvaluator{fn: func(position float64) (float64, error) {
		if position == 21.0 {
			return 0.5, nil // stored reference is not actually a near-zero
		}
		return 1e-9, nil
	}}
	h := NewHarness(repo, eval, Config{SampleSize: 3, Tolerance: 1e-6, Precision: 30})

	report := h.Run(context.Background())

	if report.AllPassed {
		t.Fatal("expected failure")
	}
	if len(report.Mismatches) != 1 {
		t.Fatalf("expected 1 mismatch, got %d", len(report.Mismatches))
	}
	if report.Mismatches[0].Position != 21.0 {
		t.Errorf("expected mismatch at 21.0, got %v", report.Mismatches[0].Position)
	}
	if report.Mismatches[0].Magnitude != 0.5 {
		t.Errorf("expected observed magnitude 0.5, got %v", report.Mismatches[0].Magnitude)
	}
}

func TestValidateNeverAbortsEarly(t *testing.T) {
	repo := makeRepo(t, 1.0, 2.0, 3.0, 4.0, 5.0)
	eval := &stubEvaluator{fn: func(float64) (float64, error) { return 9.0, nil }}
	h := NewHarness(repo, eval, Config{SampleSize: 5, Tolerance: 1e-6, Precision: 30})

	report := h.Run(context.Background())

	if report.Sampled != 5 {
		t.Errorf("every sampled position must be checked, got %d", report.Sampled)
	}
	if len(report.Mismatches) != 5 {
		t.Errorf("expected 5 mismatches, got %d", len(report.Mismatches))
	}
}

func TestValidateCoversFullRange(t *testing.T) {
	vals := make([]float64, 100)
	for i := range vals {
		vals[i] = float64(i + 10)
	}
	repo := makeRepo(t, vals...)
	eval := &stubEvaluator{fn: func(float64) (float64, error) { return 0, nil }}
	h := NewHarness(repo, eval, Config{SampleSize: 10, Tolerance: 1e-6, Precision: 30})

	h.Run(context.Background())

	if len(eval.calls) != 10 {
		t.Fatalf("expected 10 evaluations, got %d", len(eval.calls))
	}
	if eval.calls[0] != 10 {
		t.Errorf("sample must include the first entry, got %v", eval.calls[0])
	}
	if eval.calls[len(eval.calls)-1] != 109 {
		t.Errorf("sample must include the last entry, got %v", eval.calls[len(eval.calls)-1])
	}
}

func TestValidateRecordsEvaluationFaults(t *testing.T) {
	repo := makeRepo(t, 14.1, 21.0)
	eval := &stubEvaluator{fn: func(position float64) (float64, error) {
		return 0, &evaluator.EvalError{Position: position, Reason: "did not converge"}
	}}
	h := NewHarness(repo, eval, Config{SampleSize: 2, Tolerance: 1e-6, Precision: 30})

	report := h.Run(context.Background())

	if report.AllPassed {
		t.Fatal("faults must fail the report")
	}
	if len(report.Faults) != 2 {
		t.Errorf("expected 2 faults, got %d", len(report.Faults))
	}
	if report.Sampled != 2 {
		t.Errorf("faults must not stop sampling, got %d", report.Sampled)
	}
}

func TestValidateEmptyRepository(t *testing.T) {
	repo := makeRepo(t)
	eval := &stubEvaluator{fn: func(float64) (float64, error) { return 0, nil }}
	h := NewHarness(repo, eval, DefaultConfig())

	report := h.Run(context.Background())

	if !report.AllPassed || report.Sampled != 0 {
		t.Errorf("empty repository validates trivially, got %+v", report)
	}
	if len(eval.calls) != 0 {
		t.Errorf("no evaluations expected, got %d", len(eval.calls))
	}
}

// #endregion harness-tests
