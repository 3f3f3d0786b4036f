package validate

// #region config

// Config holds the sampling shape for a validation run. Tolerance is
// coarser than any scan epsilon, absorbing cross-source precision noise
// in the reference data.
type Config struct {
	SampleSize int
	Tolerance  float64
	Precision  int
}

// DefaultConfig returns the canonical validation parameters.
func DefaultConfig() Config {
	return Config{
		SampleSize: 50,
		Tolerance:  1e-6,
		Precision:  30,
	}
}

// #endregion config

// #region mismatch

// Mismatch is one sampled reference position whose evaluated magnitude
// exceeded the validation tolerance.
type Mismatch struct {
	Position  float64
	Magnitude float64
}

// #endregion mismatch

// #region fault

// Fault records an evaluation failure at a sampled position.
type Fault struct {
	Position float64
	Reason   string
}

// #endregion fault

// #region report

// Report is the aggregate outcome of one validation run. Every sampled
// position is checked; the harness never aborts early.
type Report struct {
	AllPassed  bool
	Sampled    int
	Mismatches []Mismatch
	Faults     []Fault
}

// #endregion report
