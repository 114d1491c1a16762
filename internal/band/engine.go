package band

import (
	"sync"
	"time"

	"github.com/olivier-w/ribbon/internal/pointer"
)

// DefaultInterval is the frame period when the config leaves it zero.
const DefaultInterval = time.Second / 30

// Scheduler is the host's next-frame primitive. Schedule arranges for fn to
// run once after d and returns a cancel func. The engine never has more than
// one frame pending.
type Scheduler interface {
	Schedule(d time.Duration, fn func(now time.Time)) (cancel func())
}

type timerScheduler struct{}

func (timerScheduler) Schedule(d time.Duration, fn func(time.Time)) func() {
	t := time.AfterFunc(d, func() { fn(time.Now()) })
	return func() { t.Stop() }
}

// Config wires an Engine.
type Config struct {
	// Cursor is the shared last-pointer-position cell. Nil reads as (0, 0).
	Cursor *pointer.Cell

	// Renderer receives the four path strings each frame. A nil renderer is
	// skipped silently; the step still runs so the lattice keeps evolving.
	Renderer Renderer

	// Level, when set, supplies an extra normalized widening term in [0, 1]
	// read once per frame (the audio-reactive drive).
	Level func() float64

	// Viewport reports the host surface size in the cursor's coordinate
	// space, read once per frame to map pointer x into the logical domain.
	Viewport func() (w, h int)

	Interval  time.Duration
	Scheduler Scheduler
}

// Engine owns the frame loop: read inputs, step the lattice, publish the
// four paths, reschedule. It never reports errors; anything missing is
// skipped and picked up again next frame.
type Engine struct {
	cfg     Config
	lattice *Lattice
	epoch   time.Time

	mu      sync.Mutex
	cancel  func()
	stopped bool
	frozen  bool
}

// NewEngine returns an engine ready to Start. Zero-value config fields get
// defaults; only the renderer and cursor are genuinely optional.
func NewEngine(cfg Config) *Engine {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = timerScheduler{}
	}
	return &Engine{cfg: cfg, lattice: NewLattice()}
}

// Start schedules the first frame. Starting twice, or starting after Stop,
// is a no-op.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped || e.cancel != nil {
		return
	}
	e.epoch = time.Now()
	e.cancel = e.cfg.Scheduler.Schedule(e.cfg.Interval, e.frame)
}

// Stop cancels the pending frame and marks the engine done. Frames run under
// the engine lock, so once Stop returns no publish is in flight and nothing
// will be rescheduled.
func (e *Engine) Stop() {
	e.mu.Lock()
	cancel := e.cancel
	e.cancel = nil
	e.stopped = true
	e.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// SetFrozen pauses or resumes stepping without tearing the loop down. Frames
// keep ticking while frozen so resuming is immediate.
func (e *Engine) SetFrozen(frozen bool) {
	e.mu.Lock()
	e.frozen = frozen
	e.mu.Unlock()
}

func (e *Engine) frame(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return
	}
	if !e.frozen {
		e.step(now)
	}
	e.cancel = e.cfg.Scheduler.Schedule(e.cfg.Interval, e.frame)
}

// step runs one frame: map the pointer into the logical domain, advance the
// lattice, publish the four curves. Called with the engine lock held.
func (e *Engine) step(now time.Time) {
	w := 0
	if e.cfg.Viewport != nil {
		w, _ = e.cfg.Viewport()
	}
	if w <= 0 {
		// Degenerate host surface; avoid dividing by it.
		w = 1
	}

	var px float64
	if e.cfg.Cursor != nil {
		px, _ = e.cfg.Cursor.Load()
	}
	logicalX := px / float64(w) * DomainWidth

	var drive float64
	if e.cfg.Level != nil {
		drive = e.cfg.Level()
	}

	set := e.lattice.Step(logicalX, drive, now.Sub(e.epoch).Seconds())

	r := e.cfg.Renderer
	if r == nil {
		return
	}
	for _, id := range AllCurves {
		r.Publish(id, set.Path(id))
	}
}
