package audio

import "sync"

// Ring keeps the most recent PCM samples. The playback goroutine pushes,
// the frame loop reads; both are cheap enough that a plain mutex is fine.
type Ring struct {
	mu  sync.Mutex
	buf []int16
	w   int
	n   int
}

// NewRing returns a ring holding up to capacity samples.
func NewRing(capacity int) *Ring {
	return &Ring{buf: make([]int16, capacity)}
}

// Push appends samples, overwriting the oldest when full.
func (r *Ring) Push(samples []int16) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range samples {
		r.buf[r.w] = s
		r.w = (r.w + 1) % len(r.buf)
	}
	r.n += len(samples)
	if r.n > len(r.buf) {
		r.n = len(r.buf)
	}
}

// Recent returns up to n of the most recent samples, oldest first.
func (r *Ring) Recent(n int) []int16 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n > r.n {
		n = r.n
	}
	if n == 0 {
		return nil
	}
	out := make([]int16, n)
	start := (r.w - n + len(r.buf)) % len(r.buf)
	for i := range n {
		out[i] = r.buf[(start+i)%len(r.buf)]
	}
	return out
}
