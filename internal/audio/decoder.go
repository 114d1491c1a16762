package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

// pcmSource yields interleaved 16-bit LE PCM at the source sample rate.
// Playback here is linear start-to-finish, so sources only need to read.
type pcmSource interface {
	io.Reader
	SampleRate() int
	Channels() int
	// Length is the total output size in bytes, 0 when unknown.
	Length() int64
}

// SupportedExts lists the playable file extensions.
var SupportedExts = []string{".mp3", ".wav", ".flac", ".ogg"}

// IsSupportedExt reports whether ext (with leading dot, any case) is playable.
func IsSupportedExt(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range SupportedExts {
		if ext == e {
			return true
		}
	}
	return false
}

// openSource picks a decoder by file extension.
func openSource(f *os.File) (pcmSource, error) {
	switch ext := strings.ToLower(filepath.Ext(f.Name())); ext {
	case ".mp3":
		return newMP3Source(f)
	case ".wav":
		return newWAVSource(f)
	case ".flac":
		return newFLACSource(f)
	case ".ogg":
		return newOGGSource(f)
	default:
		return nil, fmt.Errorf("unsupported format %s (supported: %s)", ext, strings.Join(SupportedExts, " "))
	}
}

// --- MP3 ---

type mp3Source struct {
	dec *mp3.Decoder
}

func newMP3Source(f *os.File) (*mp3Source, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("decoding MP3: %w", err)
	}
	return &mp3Source{dec: dec}, nil
}

func (s *mp3Source) Read(p []byte) (int, error) { return s.dec.Read(p) }
func (s *mp3Source) SampleRate() int            { return s.dec.SampleRate() }
func (s *mp3Source) Channels() int              { return 2 }
func (s *mp3Source) Length() int64              { return s.dec.Length() }

// --- WAV ---

type wavSource struct {
	file       *os.File
	buf        []byte
	totalBytes int64
	sampleRate int
	channels   int
	bitDepth   int
}

func newWAVSource(f *os.File) (*wavSource, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file")
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("reading WAV PCM data: %w", err)
	}

	channels := int(dec.NumChans)
	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("unsupported WAV bit depth %d", bitDepth)
	}
	srcFrame := int64(channels) * int64(bitDepth) / 8
	frames := dec.PCMLen() / srcFrame

	return &wavSource{
		file:       f,
		sampleRate: int(dec.SampleRate),
		channels:   channels,
		bitDepth:   bitDepth,
		totalBytes: frames * int64(channels) * 2,
	}, nil
}

func (s *wavSource) Read(p []byte) (int, error) {
	if len(s.buf) > 0 {
		n := copy(p, s.buf)
		s.buf = s.buf[n:]
		return n, nil
	}

	srcBytes := s.bitDepth / 8
	want := len(p) / 2
	if want == 0 {
		want = 1
	}
	src := make([]byte, want*srcBytes)
	n, err := io.ReadFull(s.file, src)
	samples := n / srcBytes
	if samples == 0 {
		if err == nil || err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return 0, err
	}

	raw := make([]byte, samples*2)
	for i := 0; i < samples; i++ {
		off := i * srcBytes
		var v int
		switch s.bitDepth {
		case 8:
			// 8-bit WAV is unsigned
			v = (int(src[off]) - 128) << 8
		case 16:
			v = int(int16(binary.LittleEndian.Uint16(src[off:])))
		case 24:
			u := int32(src[off]) | int32(src[off+1])<<8 | int32(src[off+2])<<16
			if u&0x800000 != 0 {
				u |= ^0xFFFFFF
			}
			v = int(u >> 8)
		case 32:
			v = int(int32(binary.LittleEndian.Uint32(src[off:])) >> 16)
		}
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(int16(clampSample(v))))
	}

	written := copy(p, raw)
	if written < len(raw) {
		s.buf = raw[written:]
	}
	if err == io.ErrUnexpectedEOF {
		err = nil // partial read converted; EOF surfaces next call
	}
	return written, err
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Length() int64   { return s.totalBytes }

// --- FLAC ---

type flacSource struct {
	stream     *flac.Stream
	buf        []byte
	totalBytes int64
	sampleRate int
	channels   int
	bps        int
}

func newFLACSource(f *os.File) (*flacSource, error) {
	stream, err := flac.New(f)
	if err != nil {
		return nil, fmt.Errorf("decoding FLAC: %w", err)
	}
	info := stream.Info
	channels := int(info.NChannels)
	return &flacSource{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   channels,
		bps:        int(info.BitsPerSample),
		totalBytes: int64(info.NSamples) * int64(channels) * 2,
	}, nil
}

func (s *flacSource) Read(p []byte) (int, error) {
	if len(s.buf) > 0 {
		n := copy(p, s.buf)
		s.buf = s.buf[n:]
		return n, nil
	}

	frame, err := s.stream.ParseNext()
	if err != nil {
		return 0, err
	}

	nSamples := int(frame.Subframes[0].NSamples)
	raw := make([]byte, nSamples*s.channels*2)
	for i := 0; i < nSamples; i++ {
		for ch := 0; ch < s.channels; ch++ {
			v := int(frame.Subframes[ch].Samples[i])
			switch {
			case s.bps > 16:
				v >>= s.bps - 16
			case s.bps < 16:
				v <<= 16 - s.bps
			}
			binary.LittleEndian.PutUint16(raw[(i*s.channels+ch)*2:], uint16(int16(clampSample(v))))
		}
	}

	written := copy(p, raw)
	if written < len(raw) {
		s.buf = raw[written:]
	}
	return written, nil
}

func (s *flacSource) SampleRate() int { return s.sampleRate }
func (s *flacSource) Channels() int   { return s.channels }
func (s *flacSource) Length() int64   { return s.totalBytes }

// --- OGG Vorbis ---

type oggSource struct {
	reader     *oggvorbis.Reader
	buf        []byte
	totalBytes int64
}

func newOGGSource(f *os.File) (*oggSource, error) {
	reader, err := oggvorbis.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decoding OGG: %w", err)
	}
	return &oggSource{
		reader:     reader,
		totalBytes: reader.Length() * int64(reader.Channels()) * 2,
	}, nil
}

func (s *oggSource) Read(p []byte) (int, error) {
	if len(s.buf) > 0 {
		n := copy(p, s.buf)
		s.buf = s.buf[n:]
		return n, nil
	}

	samples := make([]float32, len(p)/2)
	if len(samples) == 0 {
		samples = make([]float32, 1)
	}
	n, err := s.reader.Read(samples)
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}

	raw := make([]byte, n*2)
	for i := 0; i < n; i++ {
		f := samples[i]
		if f > 1 {
			f = 1
		} else if f < -1 {
			f = -1
		}
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(int16(f*32767)))
	}

	written := copy(p, raw)
	if written < len(raw) {
		s.buf = raw[written:]
	}
	return written, nil
}

func (s *oggSource) SampleRate() int { return s.reader.SampleRate() }
func (s *oggSource) Channels() int   { return s.reader.Channels() }
func (s *oggSource) Length() int64   { return s.totalBytes }

func clampSample(v int) int {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return v
}
