package validate

import (
	"context"
	"log"
	"math"

	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/evaluator"
	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/zeros"
)

// #region harness

// Harness re-evaluates a sample of the repository's own entries and checks
// that the evaluator agrees the stored references are near-zeros. It never
// touches any fracture monitor: validation is diagnostic, not a breaker.
type Harness struct {
	repo   *zeros.Repository
	eval   evaluator.Evaluator
	config Config
}

// NewHarness creates a harness with the given configuration.
func NewHarness(repo *zeros.Repository, eval evaluator.Evaluator, config Config) *Harness {
	return &Harness{repo: repo, eval: eval, config: config}
}

// Run samples evenly across the full loaded range (first, middle and last
// entries all covered) and evaluates each sampled position. Evaluation
// failures are recorded as faults and count against AllPassed.
func (h *Harness) Run(ctx context.Context) Report {
	values := h.repo.Values()
	report := Report{AllPassed: true}
	if len(values) == 0 || h.config.SampleSize <= 0 {
		return report
	}

	for _, idx := range sampleIndices(len(values), h.config.SampleSize) {
		position := values[idx]
		report.Sampled++

		magnitude, err := h.eval.Evaluate(ctx, position, h.config.Precision)
		if err != nil {
			report.Faults = append(report.Faults, Fault{Position: position, Reason: err.Error()})
			report.AllPassed = false
			continue
		}
		if magnitude >= h.config.Tolerance {
			report.Mismatches = append(report.Mismatches, Mismatch{
				Position:  position,
				Magnitude: magnitude,
			})
			report.AllPassed = false
		}
	}

	log.Printf("[VALIDATE] sampled=%d mismatches=%d faults=%d passed=%v",
		report.Sampled, len(report.Mismatches), len(report.Faults), report.AllPassed)
	return report
}

// #endregion harness

// #region sampling

// sampleIndices returns up to sampleSize unique indices spread evenly
// over [0, n), always including both endpoints when n > 1.
func sampleIndices(n, sampleSize int) []int {
	if sampleSize >= n {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	if sampleSize == 1 {
		return []int{0}
	}

	out := make([]int, 0, sampleSize)
	last := -1
	for i := 0; i < sampleSize; i++ {
		idx := int(math.Round(float64(i) * float64(n-1) / float64(sampleSize-1)))
		if idx == last {
			continue
		}
		out = append(out, idx)
		last = idx
	}
	return out
}

// #endregion sampling
