package scanlog

import "time"

// #region run-record

// RunRecord is one persisted scan run, as read back from the log.
type RunRecord struct {
	RunID        string    `json:"run_id"`
	Mode         string    `json:"mode"`
	Start        float64   `json:"start"`
	Step         float64   `json:"step"`
	Requested    int       `json:"requested"`
	Evaluated    int       `json:"evaluated"`
	FlagCount    int       `json:"flag_count"`
	AnomalyCount int       `json:"anomaly_count"`
	Termination  string    `json:"termination"`
	AbortCause   string    `json:"abort_cause,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// #endregion run-record

// #region flag-record

// FlagRecord is one persisted anomaly flag.
type FlagRecord struct {
	RunID     string  `json:"run_id"`
	Position  float64 `json:"position"`
	Magnitude float64 `json:"magnitude"`
	Mode      string  `json:"mode"`
}

// #endregion flag-record

// #region validation-record

// ValidationRecord is one persisted validation run summary.
type ValidationRecord struct {
	Sampled    int       `json:"sampled"`
	Mismatches int       `json:"mismatches"`
	Faults     int       `json:"faults"`
	AllPassed  bool      `json:"all_passed"`
	CreatedAt  time.Time `json:"created_at"`
}

// #endregion validation-record
