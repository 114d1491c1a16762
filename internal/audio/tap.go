package audio

import (
	"encoding/binary"
	"io"
	"sync"
)

// tapReader sits between the decoder and the output device: it counts bytes
// for the position readout and mirrors the PCM stream into a ring so the
// frame loop can measure the signal level of what is playing right now.
type tapReader struct {
	src  io.Reader
	ring *Ring

	mu    sync.Mutex
	pos   int64
	carry byte
	odd   bool
}

func (t *tapReader) Read(p []byte) (int, error) {
	n, err := t.src.Read(p)
	if n > 0 {
		t.mu.Lock()
		t.pos += int64(n)
		t.mu.Unlock()
		t.tap(p[:n])
	}
	return n, err
}

// tap converts the chunk to samples, holding a dangling byte across calls so
// sample boundaries survive arbitrary read sizes.
func (t *tapReader) tap(b []byte) {
	var samples []int16
	if t.odd {
		samples = append(samples, int16(uint16(t.carry)|uint16(b[0])<<8))
		b = b[1:]
		t.odd = false
	}
	for len(b) >= 2 {
		samples = append(samples, int16(binary.LittleEndian.Uint16(b)))
		b = b[2:]
	}
	if len(b) == 1 {
		t.carry = b[0]
		t.odd = true
	}
	if len(samples) > 0 {
		t.ring.Push(samples)
	}
}

// Pos returns total bytes handed to the output device so far.
func (t *tapReader) Pos() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pos
}
