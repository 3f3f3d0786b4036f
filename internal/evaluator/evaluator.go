package evaluator

import (
	"context"
	"errors"
	"fmt"
)

// #region interface

// Evaluator computes |zeta(0.5 + it)| at a position on the critical line.
// Implementations are pure for a fixed precision and may block for
// non-trivial wall-clock time; callers evaluate each position at most once.
type Evaluator interface {
	Evaluate(ctx context.Context, position float64, precision int) (float64, error)
}

// #endregion interface

// #region eval-error

// EvalError reports a failed evaluation at one position. Retriable faults
// are skipped by the scan loop; non-retriable ones indicate a configuration
// fault and abort the whole scan.
type EvalError struct {
	Position     float64
	Reason       string
	NonRetriable bool
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluate t=%.6f: %s", e.Position, e.Reason)
}

// IsNonRetriable reports whether err carries a non-retriable evaluation fault.
func IsNonRetriable(err error) bool {
	var ee *EvalError
	return errors.As(err, &ee) && ee.NonRetriable
}

// #endregion eval-error
