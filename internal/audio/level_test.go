package audio

import "testing"

func TestMeterStaysInUnitRange(t *testing.T) {
	m := NewMeter(30)
	for range 200 {
		if got := m.Step(5); got < 0 || got > 1 {
			t.Fatalf("level %v escaped [0, 1]", got)
		}
	}
	for range 200 {
		if got := m.Step(-3); got < 0 || got > 1 {
			t.Fatalf("level %v escaped [0, 1]", got)
		}
	}
}

func TestMeterApproachesTarget(t *testing.T) {
	m := NewMeter(30)
	var last float64
	for range 300 {
		last = m.Step(1)
	}
	if last < 0.9 {
		t.Fatalf("expected meter to settle near 1, got %v", last)
	}

	for range 300 {
		last = m.Step(0)
	}
	if last > 0.1 {
		t.Fatalf("expected meter to relax near 0, got %v", last)
	}
}
