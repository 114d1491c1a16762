package pointer

import (
	"math"
	"sync/atomic"
)

// Cell holds the most recently observed pointer position. Input events
// overwrite it, the frame step reads it once per frame. Both coordinates are
// packed into a single word so a reader never sees x and y from different
// events; beyond that there is no ordering guarantee — last write wins and
// stale reads are fine.
type Cell struct {
	packed atomic.Uint64
}

// Store records a new pointer position.
func (c *Cell) Store(x, y float64) {
	hi := uint64(math.Float32bits(float32(x)))
	lo := uint64(math.Float32bits(float32(y)))
	c.packed.Store(hi<<32 | lo)
}

// Load returns the last stored position. The zero Cell reads as (0, 0).
func (c *Cell) Load() (x, y float64) {
	v := c.packed.Load()
	x = float64(math.Float32frombits(uint32(v >> 32)))
	y = float64(math.Float32frombits(uint32(v)))
	return x, y
}
