package scan

import (
	"github.com/cjgrahamlxm-code/JGraha40969-lex-hilbert-polya-proof/internal/classify"
)

// #region termination

// Termination is the reason a scan stopped.
type Termination string

const (
	// TerminationCompleted: all requested positions were visited.
	TerminationCompleted Termination = "completed"
	// TerminationFractured: the fracture monitor tripped mid-scan.
	TerminationFractured Termination = "fractured"
	// TerminationAborted: a non-retriable evaluation fault stopped the scan.
	TerminationAborted Termination = "aborted"
)

// #endregion termination

// #region phase

// Phase is the engine's state within one scan invocation.
type Phase string

const (
	PhaseIdle            Phase = "idle"
	PhaseScanning        Phase = "scanning"
	PhaseHaltedThreshold Phase = "halted_threshold"
	PhaseCompleted       Phase = "completed"
)

// #endregion phase

// #region request

// Request describes one traversal. Start may be nil, in which case the
// scan begins one step past the repository's maximum known value.
type Request struct {
	Start     *float64
	Count     int
	Step      float64
	Epsilon   float64
	Mode      classify.Mode
	Precision int
}

// DefaultRequest returns the canonical verify-mode parameters.
func DefaultRequest() Request {
	return Request{
		Count:     100,
		Step:      1.0,
		Epsilon:   1e-10,
		Mode:      classify.ModeVerify,
		Precision: 50,
	}
}

// #endregion request

// #region flag

// Flag is one classified anomaly, write-once, in scan order.
// Verify mode: magnitude unexpectedly large. Search mode: unexpectedly small.
type Flag struct {
	Position  float64
	Magnitude float64
	Mode      classify.Mode
}

// #endregion flag

// #region fault

// Fault records a recoverable evaluation failure at one position.
type Fault struct {
	Position float64
	Reason   string
}

// #endregion fault

// #region result

// Result is the structured outcome of one scan invocation.
// Evaluated counts positions handed to the evaluator, including ones
// that came back with a recoverable fault.
type Result struct {
	RunID        string
	Mode         classify.Mode
	Start        float64
	Step         float64
	Requested    int
	Evaluated    int
	Flags        []Flag
	Faults       []Fault
	AnomalyCount int
	Termination  Termination
	AbortCause   string
	Phase        Phase
}

// #endregion result

// #region config-error

// ConfigError is an invocation-level misconfiguration: surfaced before any
// evaluation begins, no partial result.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "scan config: " + e.Msg
}

// #endregion config-error

// #region summary

// Summary provides aggregate stats for reporting.
type Summary struct {
	Requested   int
	Evaluated   int
	Flags       int
	Faults      int
	FlagRate    float64
	Termination Termination
}

// Summarize computes aggregate stats from a scan result.
func Summarize(res Result) Summary {
	s := Summary{
		Requested:   res.Requested,
		Evaluated:   res.Evaluated,
		Flags:       len(res.Flags),
		Faults:      len(res.Faults),
		Termination: res.Termination,
	}
	if res.Evaluated > 0 {
		s.FlagRate = float64(len(res.Flags)) / float64(res.Evaluated)
	}
	return s
}

// #endregion summary
