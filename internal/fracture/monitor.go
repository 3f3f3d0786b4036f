package fracture

// #region monitor

// Monitor is a circuit breaker counting anomalies within one scan.
// State is scoped to a single traversal: callers build a fresh monitor
// per scan call and discard it when the scan returns.
type Monitor struct {
	config    Config
	count     int
	fractured bool
}

// NewMonitor creates a monitor with the given threshold configuration.
func NewMonitor(config Config) *Monitor {
	return &Monitor{config: config}
}

// Observe records one classification result. A clear observation never
// changes state. A flagged one increments the anomaly count; once the
// count exceeds the derived threshold the monitor latches fractured.
func (m *Monitor) Observe(flagged bool) Signal {
	if !flagged {
		if m.fractured {
			return SignalFracture
		}
		return SignalContinue
	}

	m.count++
	if float64(m.count) > m.config.Threshold() {
		m.fractured = true
	}
	if m.fractured {
		return SignalFracture
	}
	return SignalContinue
}

// Count returns the anomalies observed so far.
func (m *Monitor) Count() int {
	return m.count
}

// Fractured reports whether the breaker has tripped.
func (m *Monitor) Fractured() bool {
	return m.fractured
}

// #endregion monitor
