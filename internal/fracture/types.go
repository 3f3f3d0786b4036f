package fracture

import "math"

// #region signal

// Signal is the monitor's answer after observing one classification.
type Signal string

const (
	SignalContinue Signal = "continue"
	SignalFracture Signal = "fracture"
)

// #endregion signal

// #region config

// Config holds the threshold shape for the fracture monitor.
// Threshold = GoldenRatio * GrowthFactor; neither is hardwired.
type Config struct {
	GoldenRatio  float64
	GrowthFactor float64
}

// DefaultConfig returns the canonical threshold shape: phi * 2.07 ≈ 3.35,
// so the fourth anomaly in a scan trips the breaker.
func DefaultConfig() Config {
	return Config{
		GoldenRatio:  (1 + math.Sqrt(5)) / 2,
		GrowthFactor: 2.07,
	}
}

// Threshold returns the derived anomaly-count threshold.
func (c Config) Threshold() float64 {
	return c.GoldenRatio * c.GrowthFactor
}

// #endregion config
