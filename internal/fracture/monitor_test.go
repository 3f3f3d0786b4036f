package fracture

import (
	"math"
	"testing"
)

func TestDefaultThreshold(t *testing.T) {
	got := DefaultConfig().Threshold()
	want := (1 + math.Sqrt(5)) / 2 * 2.07
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected threshold %v, got %v", want, got)
	}
	if got <= 3.3 || got >= 3.4 {
		t.Errorf("default threshold out of documented range: %v", got)
	}
}

func TestFractureOnFourthAnomaly(t *testing.T) {
	m := NewMonitor(DefaultConfig())

	for i := 1; i <= 3; i++ {
		if sig := m.Observe(true); sig != SignalContinue {
			t.Fatalf("anomaly %d: expected continue, got %s", i, sig)
		}
	}
	if m.Fractured() {
		t.Fatal("monitor must not be fractured at 3 anomalies")
	}

	if sig := m.Observe(true); sig != SignalFracture {
		t.Fatalf("expected fracture on 4th anomaly, got %s", sig)
	}
	if !m.Fractured() {
		t.Error("monitor must latch fractured")
	}
	if m.Count() != 4 {
		t.Errorf("expected count 4, got %d", m.Count())
	}
}

func TestClearObservationsDoNotAdvance(t *testing.T) {
	m := NewMonitor(DefaultConfig())

	for i := 0; i < 100; i++ {
		if sig := m.Observe(false); sig != SignalContinue {
			t.Fatalf("clear observation %d: expected continue, got %s", i, sig)
		}
	}
	if m.Count() != 0 {
		t.Errorf("expected count 0, got %d", m.Count())
	}
}

func TestFractureLatches(t *testing.T) {
	m := NewMonitor(DefaultConfig())
	for i := 0; i < 4; i++ {
		m.Observe(true)
	}

	if sig := m.Observe(false); sig != SignalFracture {
		t.Errorf("fractured monitor must keep signaling fracture, got %s", sig)
	}
}

func TestCustomThreshold(t *testing.T) {
	// Threshold 0.5: the very first anomaly trips the breaker.
	m := NewMonitor(Config{GoldenRatio: 0.5, GrowthFactor: 1.0})
	if sig := m.Observe(true); sig != SignalFracture {
		t.Fatalf("expected immediate fracture with threshold 0.5, got %s", sig)
	}
}

func TestFreshMonitorStartsClean(t *testing.T) {
	first := NewMonitor(DefaultConfig())
	for i := 0; i < 4; i++ {
		first.Observe(true)
	}

	second := NewMonitor(DefaultConfig())
	if second.Fractured() || second.Count() != 0 {
		t.Error("fracture state must not leak between monitors")
	}
}
