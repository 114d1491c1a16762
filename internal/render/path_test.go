package render

import "testing"

func TestParsePath(t *testing.T) {
	pts := ParsePath("M 0.0,180.0 L 20.0,175.5 L 40.0,171.2")
	if len(pts) != 3 {
		t.Fatalf("expected 3 points, got %d", len(pts))
	}
	if pts[0] != (Pt{X: 0, Y: 180}) {
		t.Fatalf("unexpected first point: %+v", pts[0])
	}
	if pts[2] != (Pt{X: 40, Y: 171.2}) {
		t.Fatalf("unexpected last point: %+v", pts[2])
	}
}

func TestParsePathEmpty(t *testing.T) {
	if pts := ParsePath(""); len(pts) != 0 {
		t.Fatalf("expected no points for empty path, got %d", len(pts))
	}
}

func TestParsePathStopsAtGarbage(t *testing.T) {
	pts := ParsePath("M 1.0,2.0 L banana L 5.0,6.0")
	if len(pts) != 1 {
		t.Fatalf("expected parse to stop at malformed token, got %d points", len(pts))
	}

	if pts := ParsePath("M 1.0,nope"); len(pts) != 0 {
		t.Fatalf("expected no points for unparseable pair, got %d", len(pts))
	}
}
