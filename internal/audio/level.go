package audio

import "github.com/charmbracelet/harmonica"

// Meter smooths the instantaneous signal level with a spring so the band
// swells and relaxes instead of tracking every transient. Not safe for
// concurrent use; the frame loop is its only caller.
type Meter struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewMeter returns a meter tuned for the given frame rate.
func NewMeter(fps int) *Meter {
	return &Meter{spring: harmonica.NewSpring(harmonica.FPS(fps), 5.0, 0.9)}
}

// Step advances the spring toward target and returns the smoothed level,
// clamped to [0, 1].
func (m *Meter) Step(target float64) float64 {
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, clamp01(target))
	return clamp01(m.pos)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
