package band

import (
	"math"
	"testing"
)

func TestNewLatticeStartsAtBaseSpread(t *testing.T) {
	l := NewLattice()
	for i := 0; i < Points; i++ {
		if got := l.Spread(i); got != baseSpread {
			t.Fatalf("sample %d: expected base spread %v, got %v", i, baseSpread, got)
		}
	}
}

func TestSmoothingMatchesClosedForm(t *testing.T) {
	// A pointer parked exactly on a sample makes that sample's target the
	// full 80; the filter then follows v_k = T - (T-v0)*(1-rate)^k.
	const target = baseSpread + bonusSpread
	for _, k := range []int{1, 5, 10, 50} {
		l := NewLattice()
		for range k {
			l.Step(SampleX(25), 0, 0)
		}
		want := target - (target-baseSpread)*math.Pow(1-smoothing, float64(k))
		if got := l.Spread(25); math.Abs(got-want) > 1e-9 {
			t.Fatalf("after %d frames: expected %v, got %v", k, want, got)
		}
	}
}

func TestSpreadNeverDropsBelowBase(t *testing.T) {
	l := NewLattice()
	positions := []float64{0, 500, 1000, -250, 1250, 333.3}
	for frame := 0; frame < 400; frame++ {
		l.Step(positions[frame%len(positions)], 0, 0)
		for i := 0; i < Points; i++ {
			if got := l.Spread(i); got < baseSpread-1e-9 {
				t.Fatalf("frame %d sample %d: spread %v below base", frame, i, got)
			}
		}
	}
}

func TestSpreadBoundedAtSteadyState(t *testing.T) {
	l := NewLattice()
	for range 1000 {
		l.Step(500, 0, 0)
	}
	for i := 0; i < Points; i++ {
		got := l.Spread(i)
		if got < baseSpread-1e-9 || got > baseSpread+bonusSpread+1e-9 {
			t.Fatalf("sample %d: steady-state spread %v outside [20, 80]", i, got)
		}
	}
}

func TestCenterPointerIsSymmetric(t *testing.T) {
	l := NewLattice()
	for range 200 {
		l.Step(500, 0, 0)
	}
	for i := 0; i <= Segments/2; i++ {
		a, b := l.Spread(i), l.Spread(Segments-i)
		if math.Abs(a-b) > 1e-9 {
			t.Fatalf("samples %d and %d: expected equal spread, got %v and %v", i, Segments-i, a, b)
		}
	}
	if l.Spread(25) <= l.Spread(10) {
		t.Fatalf("expected center sample widest, got center %v vs %v", l.Spread(25), l.Spread(10))
	}
}

func TestBaseCurveShape(t *testing.T) {
	l := NewLattice()
	set := l.Step(500, 0, 0)

	if got := set.Point(25).Y; math.Abs(got-480) > 1e-9 {
		t.Fatalf("expected apex y 480 at center, got %v", got)
	}
	if got := set.Point(0).Y; math.Abs(got-180) > 1e-9 {
		t.Fatalf("expected edge y 180 at x=0, got %v", got)
	}
	if got := set.Point(Segments).Y; math.Abs(got-180) > 1e-9 {
		t.Fatalf("expected edge y 180 at x=1000, got %v", got)
	}
	for i := 0; i <= Segments/2; i++ {
		a, b := set.Point(i).Y, set.Point(Segments-i).Y
		if math.Abs(a-b) > 1e-9 {
			t.Fatalf("trend not symmetric at %d/%d: %v vs %v", i, Segments-i, a, b)
		}
	}
}

func TestDriveWidensUniformly(t *testing.T) {
	// Pointer far outside the domain so its influence is negligible; a full
	// drive term should settle every sample near base+boost.
	l := NewLattice()
	for range 1000 {
		l.Step(-1e9, 1, 0)
	}
	want := baseSpread + boostSpread
	for i := 0; i < Points; i++ {
		if got := l.Spread(i); math.Abs(got-want) > 1e-6 {
			t.Fatalf("sample %d: expected drive-widened spread %v, got %v", i, want, got)
		}
	}
}

func TestSampleXSpansDomain(t *testing.T) {
	if got := SampleX(0); got != 0 {
		t.Fatalf("expected first sample at 0, got %v", got)
	}
	if got := SampleX(Segments); got != DomainWidth {
		t.Fatalf("expected last sample at %v, got %v", DomainWidth, got)
	}
	if got := SampleX(1); math.Abs(got-20) > 1e-9 {
		t.Fatalf("expected 20 logical units per segment, got %v", got)
	}
}
