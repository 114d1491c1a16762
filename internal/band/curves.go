package band

import (
	"strconv"
	"strings"
)

// CurveID identifies one of the four curves published every frame.
type CurveID int

const (
	// CurveMain is the trend line itself.
	CurveMain CurveID = iota
	// CurveTop and CurveBottom are the envelope, offset symmetrically from
	// the trend by the local spread.
	CurveTop
	CurveBottom
	// CurveModel is the secondary line riding just above the trend at a
	// fraction of the spread.
	CurveModel
)

// AllCurves lists the published curves in a stable order.
var AllCurves = []CurveID{CurveMain, CurveTop, CurveBottom, CurveModel}

func (id CurveID) String() string {
	switch id {
	case CurveMain:
		return "main"
	case CurveTop:
		return "top"
	case CurveBottom:
		return "bottom"
	case CurveModel:
		return "model"
	}
	return "unknown"
}

// Point is one lattice sample: a position on the trend curve plus the
// smoothed band half-width at that x.
type Point struct {
	X      float64
	Y      float64
	Spread float64
}

// CurveSet is a single frame's samples. The four curves are vertical offsets
// of the same 51 points, so only the points are stored and offsets are
// applied at serialization time.
type CurveSet struct {
	points [Points]Point
}

// Point returns sample i of the frame.
func (s *CurveSet) Point(i int) Point {
	return s.points[i]
}

func curveOffset(id CurveID, p Point) float64 {
	switch id {
	case CurveTop:
		return -p.Spread
	case CurveBottom:
		return p.Spread
	case CurveModel:
		return -p.Spread*0.3 - 10
	}
	return 0
}

// Path serializes curve id as an SVG-style path string: a move-to on the
// first sample, then a line-to per sample in index order. Segments are
// straight; smoothing happens in time, not space.
func (s *CurveSet) Path(id CurveID) string {
	var b strings.Builder
	b.Grow(Points * 16)
	for i := range s.points {
		p := s.points[i]
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(coord(p.X))
		b.WriteByte(',')
		b.WriteString(coord(p.Y + curveOffset(id, p)))
	}
	return b.String()
}

// coord keeps one decimal; finer precision is invisible at any plausible
// raster size and bloats every frame's strings.
func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
