package audio

import (
	"math"
	"os"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// ringSamples is about a third of a second of stereo audio at 44.1 kHz,
// plenty for a level readout.
const ringSamples = 1 << 15

// levelWindow is how many recent samples feed the RMS measurement.
const levelWindow = 2048

var (
	otoCtx     *oto.Context
	otoOnce    sync.Once
	otoInitErr error
)

// initOto creates the process-wide output context. oto allows one context
// per process, so the first opened file pins the format; ribbon plays a
// single file per run, which makes that a non-issue.
func initOto(sampleRate, channels int) (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		otoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return otoCtx, otoInitErr
}

// Player decodes and plays one audio file while exposing the live signal
// level of whatever is currently coming out of the speakers.
type Player struct {
	file     *os.File
	src      pcmSource
	tap      *tapReader
	out      *oto.Player
	duration time.Duration
	bytesSec float64

	mu     sync.Mutex
	volume float64
	paused bool
	closed bool
	done   chan struct{}
}

// Open starts playback of the file at path.
func Open(path string) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	src, err := openSource(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	ctx, err := initOto(src.SampleRate(), src.Channels())
	if err != nil {
		f.Close()
		return nil, err
	}

	bytesSec := float64(src.SampleRate() * src.Channels() * 2)
	p := &Player{
		file:     f,
		src:      src,
		tap:      &tapReader{src: src, ring: NewRing(ringSamples)},
		duration: time.Duration(float64(src.Length()) / bytesSec * float64(time.Second)),
		bytesSec: bytesSec,
		volume:   0.8,
		done:     make(chan struct{}),
	}

	p.out = ctx.NewPlayer(p.tap)
	p.out.SetVolume(p.volume)
	p.out.Play()

	go p.monitor()
	return p, nil
}

// monitor polls for the end of the stream and closes Done.
func (p *Player) monitor() {
	total := p.src.Length()
	if total <= 0 {
		return
	}
	for {
		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			return
		}
		paused := p.paused
		p.mu.Unlock()

		if !paused && p.tap.Pos() >= total {
			close(p.done)
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// Done closes when the track has played out.
func (p *Player) Done() <-chan struct{} {
	return p.done
}

// Level is the RMS of the most recent playback window, scaled into [0, 1].
// Safe to call from the frame loop at any rate.
func (p *Player) Level() float64 {
	if p.Paused() {
		return 0
	}
	samples := p.tap.ring.Recent(levelWindow)
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		v := float64(s) / 32768
		sum += v * v
	}
	rms := math.Sqrt(sum / float64(len(samples)))
	return clamp01(rms * 2.8)
}

// TogglePause flips between playing and paused.
func (p *Player) TogglePause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paused {
		p.out.Play()
	} else {
		p.out.Pause()
	}
	p.paused = !p.paused
}

// Paused reports whether playback is paused.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// Position is the playback position so far.
func (p *Player) Position() time.Duration {
	return time.Duration(float64(p.tap.Pos()) / p.bytesSec * float64(time.Second))
}

// Duration is the track length, zero when the source cannot tell.
func (p *Player) Duration() time.Duration {
	return p.duration
}

// Volume returns the current volume in [0, 1].
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// AdjustVolume nudges the volume by delta, clamped to [0, 1].
func (p *Player) AdjustVolume(delta float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = clamp01(p.volume + delta)
	p.out.SetVolume(p.volume)
}

// Close stops playback and releases the file. Safe to call twice.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.out.Pause()
	p.file.Close()
}
