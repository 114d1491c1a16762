package ui

import "sync/atomic"

// Viewport shares the terminal size between the UI goroutine, which learns
// it from resize messages, and the engine goroutine, which reads it every
// frame to map the pointer into the logical domain. Packed into one word so
// readers never see a half-applied resize.
type Viewport struct {
	dims atomic.Uint64
}

// NewViewport returns a viewport that reads as 0×0 until the first resize.
func NewViewport() *Viewport {
	return &Viewport{}
}

// Set records the terminal size.
func (v *Viewport) Set(w, h int) {
	v.dims.Store(uint64(uint32(w))<<32 | uint64(uint32(h)))
}

// Size returns the last recorded terminal size.
func (v *Viewport) Size() (w, h int) {
	d := v.dims.Load()
	return int(uint32(d >> 32)), int(uint32(d))
}
