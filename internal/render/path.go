package render

import (
	"strconv"
	"strings"
)

// Pt is a parsed path vertex in logical coordinates.
type Pt struct {
	X float64
	Y float64
}

// ParsePath decodes an "M x,y L x,y …" path string back into its vertices.
// It is deliberately forgiving: the first token that does not scan as a
// command or coordinate pair ends the polyline, so a malformed path degrades
// to drawing less rather than failing the frame.
func ParsePath(d string) []Pt {
	fields := strings.Fields(d)
	pts := make([]Pt, 0, len(fields))
	for _, f := range fields {
		if f == "M" || f == "L" {
			continue
		}
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return pts
		}
		x, errX := strconv.ParseFloat(xs, 64)
		y, errY := strconv.ParseFloat(ys, 64)
		if errX != nil || errY != nil {
			return pts
		}
		pts = append(pts, Pt{X: x, Y: y})
	}
	return pts
}
