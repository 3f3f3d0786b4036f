package scan

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/classify"
	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/evaluator"
	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/fracture"
	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/zeros"
)

// #region engine

// Engine drives a bounded, strictly sequential scan over candidate
// positions: evaluate, classify, count, stop on threshold. The repository
// is read-only during scans; all mutable state is scoped to one Scan call.
type Engine struct {
	repo        *zeros.Repository
	eval        evaluator.Evaluator
	fractureCfg fracture.Config
}

// NewEngine creates a fully wired engine.
func NewEngine(repo *zeros.Repository, eval evaluator.Evaluator, fractureCfg fracture.Config) *Engine {
	return &Engine{
		repo:        repo,
		eval:        eval,
		fractureCfg: fractureCfg,
	}
}

// #endregion engine

// #region scan

// Scan visits count positions ascending from the start in fixed steps,
// evaluating each exactly once. Per-position evaluation faults are recorded
// and skipped; a non-retriable fault aborts. In verify mode the fracture
// monitor halts the scan once anomalies exceed its threshold; in search
// mode it only counts (many candidates is not a fault).
func (e *Engine) Scan(ctx context.Context, req Request) (Result, error) {
	if err := validate(req); err != nil {
		return Result{Phase: PhaseIdle}, err
	}

	start, err := e.resolveStart(req)
	if err != nil {
		return Result{Phase: PhaseIdle}, err
	}

	monitor := fracture.NewMonitor(e.fractureCfg)
	result := Result{
		RunID:       uuid.New().String(),
		Mode:        req.Mode,
		Start:       start,
		Step:        req.Step,
		Requested:   req.Count,
		Termination: TerminationCompleted,
		Phase:       PhaseScanning,
	}

	log.Printf("[SCAN] run=%s mode=%s start=%.6f count=%d step=%g epsilon=%.2e threshold=%.2f",
		result.RunID, req.Mode, start, req.Count, req.Step, req.Epsilon, e.fractureCfg.Threshold())

	for i := 0; i < req.Count; i++ {
		position := start + float64(i)*req.Step
		result.Evaluated++

		magnitude, err := e.eval.Evaluate(ctx, position, req.Precision)
		if err != nil {
			result.Faults = append(result.Faults, Fault{Position: position, Reason: err.Error()})
			if evaluator.IsNonRetriable(err) {
				result.Termination = TerminationAborted
				result.AbortCause = err.Error()
				result.AnomalyCount = monitor.Count()
				result.Phase = PhaseCompleted
				log.Printf("[SCAN] run=%s aborted at t=%.6f: %v", result.RunID, position, err)
				return result, nil
			}
			log.Printf("[SCAN] run=%s fault at t=%.6f, skipping: %v", result.RunID, position, err)
			continue
		}

		flagged := classify.Classify(magnitude, req.Epsilon, req.Mode) == classify.Flagged
		if flagged {
			result.Flags = append(result.Flags, Flag{
				Position:  position,
				Magnitude: magnitude,
				Mode:      req.Mode,
			})
		}

		if monitor.Observe(flagged) == fracture.SignalFracture && req.Mode == classify.ModeVerify {
			result.Termination = TerminationFractured
			result.AnomalyCount = monitor.Count()
			result.Phase = PhaseHaltedThreshold
			log.Printf("[SCAN] run=%s fractured at t=%.6f: %d anomalies > %.2f",
				result.RunID, position, monitor.Count(), e.fractureCfg.Threshold())
			return result, nil
		}
	}

	result.AnomalyCount = monitor.Count()
	result.Phase = PhaseCompleted
	log.Printf("[SCAN] run=%s completed: evaluated=%d flags=%d faults=%d",
		result.RunID, result.Evaluated, len(result.Flags), len(result.Faults))
	return result, nil
}

// #endregion scan

// #region helpers

func validate(req Request) error {
	if req.Count <= 0 {
		return &ConfigError{Msg: "count must be > 0"}
	}
	if req.Step <= 0 {
		return &ConfigError{Msg: "step must be > 0"}
	}
	if req.Epsilon <= 0 {
		return &ConfigError{Msg: "epsilon must be > 0"}
	}
	if !req.Mode.Valid() {
		return &ConfigError{Msg: "unknown mode " + string(req.Mode)}
	}
	return nil
}

func (e *Engine) resolveStart(req Request) (float64, error) {
	if req.Start != nil {
		return *req.Start, nil
	}
	max, ok := e.repo.MaxKnown()
	if !ok {
		return 0, &ConfigError{Msg: "no start position and repository is empty"}
	}
	return max + req.Step, nil
}

// #endregion helpers
