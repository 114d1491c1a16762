package band

import "math"

// Logical canvas the curves are authored in. All band geometry lives in this
// space; rasterizers map it onto whatever surface they own.
const (
	DomainWidth  = 1000.0
	DomainHeight = 600.0

	// Segments is the number of straight spans the horizontal domain is cut
	// into; the lattice has Segments+1 sample positions.
	Segments = 50
	Points   = Segments + 1
)

// Band shape parameters.
const (
	baseSpread  = 20.0  // resting half-width
	bonusSpread = 60.0  // extra half-width directly under the pointer
	boostSpread = 40.0  // extra half-width at full external drive level
	falloff     = 150.0 // Gaussian falloff radius around the pointer
	smoothing   = 0.08  // per-frame low-pass coefficient

	apexY      = 480.0
	curveDepth = 300.0
	shapeExp   = 2.2
)

// Lattice holds the smoothed spread value at each of the 51 sample
// positions. It is the band's only state that survives across frames; Step
// mutates it in place.
type Lattice struct {
	spread [Points]float64
}

// NewLattice returns a lattice at rest, every sample at the base spread.
func NewLattice() *Lattice {
	l := &Lattice{}
	for i := range l.spread {
		l.spread[i] = baseSpread
	}
	return l
}

// SampleX returns the logical x position of lattice index i.
func SampleX(i int) float64 {
	return DomainWidth / Segments * float64(i)
}

// baseY is the resting trend curve: symmetric about the domain center,
// peaking at apexY and easing down to apexY-curveDepth at both edges. The
// 2.2 exponent flattens the apex slightly relative to a parabola.
func baseY(x float64) float64 {
	norm := (x - DomainWidth/2) / (DomainWidth / 2)
	return apexY - curveDepth*math.Pow(math.Abs(norm), shapeExp)
}

// Step advances the lattice one frame and returns the frame's samples.
//
// pointerX is the pointer position in logical coordinates. drive is an
// additional normalized widening term in [0, 1] applied uniformly across the
// lattice (zero when nothing external is driving the band). now is the frame
// time in seconds since the loop started, reserved for time-based drift; the
// geometry does not consume it yet.
//
// Each sample chases its target through a fixed-rate low-pass filter, so the
// spread never overshoots and stays at or above the base spread at all
// times.
func (l *Lattice) Step(pointerX, drive, now float64) CurveSet {
	_ = now // reserved

	var set CurveSet
	for i := range l.spread {
		x := SampleX(i)
		dist := math.Abs(x - pointerX)
		influence := math.Exp(-(dist * dist) / (falloff * falloff))
		target := baseSpread + influence*bonusSpread + drive*boostSpread
		l.spread[i] += (target - l.spread[i]) * smoothing
		set.points[i] = Point{X: x, Y: baseY(x), Spread: l.spread[i]}
	}
	return set
}

// Spread returns the current smoothed spread at lattice index i.
func (l *Lattice) Spread(i int) float64 {
	return l.spread[i]
}
