package band

import (
	"math"
	"strings"
	"testing"
)

func TestPathIsMoveThenLines(t *testing.T) {
	l := NewLattice()
	set := l.Step(500, 0, 0)

	for _, id := range AllCurves {
		d := set.Path(id)
		if !strings.HasPrefix(d, "M ") {
			t.Fatalf("%s: path does not start with move-to: %q", id, d[:12])
		}
		if got := strings.Count(d, " L "); got != Segments {
			t.Fatalf("%s: expected %d line-to commands, got %d", id, Segments, got)
		}
	}
}

func TestCurveOffsets(t *testing.T) {
	p := Point{X: 100, Y: 300, Spread: 50}
	cases := []struct {
		id   CurveID
		want float64
	}{
		{CurveMain, 0},
		{CurveTop, -50},
		{CurveBottom, 50},
		{CurveModel, -25},
	}
	for _, tc := range cases {
		if got := curveOffset(tc.id, p); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("%s: expected offset %v, got %v", tc.id, tc.want, got)
		}
	}
}

func TestPathAppliesOffsets(t *testing.T) {
	l := NewLattice()
	set := l.Step(500, 0, 0)
	p := set.Point(0)

	first := func(id CurveID) string {
		d := set.Path(id)
		end := strings.Index(d, " L ")
		return strings.TrimPrefix(d[:end], "M ")
	}

	if got, want := first(CurveMain), coord(p.X)+","+coord(p.Y); got != want {
		t.Fatalf("main: expected first point %q, got %q", want, got)
	}
	if got, want := first(CurveTop), coord(p.X)+","+coord(p.Y-p.Spread); got != want {
		t.Fatalf("top: expected first point %q, got %q", want, got)
	}
	if got, want := first(CurveBottom), coord(p.X)+","+coord(p.Y+p.Spread); got != want {
		t.Fatalf("bottom: expected first point %q, got %q", want, got)
	}
	if got, want := first(CurveModel), coord(p.X)+","+coord(p.Y-p.Spread*0.3-10); got != want {
		t.Fatalf("model: expected first point %q, got %q", want, got)
	}
}

func TestCurveIDString(t *testing.T) {
	names := map[CurveID]string{
		CurveMain:   "main",
		CurveTop:    "top",
		CurveBottom: "bottom",
		CurveModel:  "model",
	}
	for id, want := range names {
		if got := id.String(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}
