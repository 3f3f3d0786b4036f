package classify

// #region mode

// Mode selects what counts as anomalous for a scan.
type Mode string

const (
	// ModeVerify expects near-zero magnitudes; a large magnitude is the anomaly.
	ModeVerify Mode = "verify"
	// ModeSearch expects non-trivial magnitudes; a near-zero one is the signal.
	ModeSearch Mode = "search"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeVerify || m == ModeSearch
}

// #endregion mode

// #region outcome

// Outcome is the classification of one evaluated magnitude.
type Outcome string

const (
	Flagged Outcome = "flagged"
	Clear   Outcome = "clear"
)

// #endregion outcome

// #region classify

// Classify decides whether a magnitude is anomalous under the given mode.
// Strict inequality in both directions: magnitude == epsilon is Clear.
func Classify(magnitude, epsilon float64, mode Mode) Outcome {
	switch mode {
	case ModeVerify:
		if magnitude > epsilon {
			return Flagged
		}
	case ModeSearch:
		if magnitude < epsilon {
			return Flagged
		}
	}
	return Clear
}

// #endregion classify
