package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/olivier-w/ribbon/internal/band"
)

// SVGWriter is a band.Renderer that keeps the latest path per curve and can
// emit the frame as a standalone SVG document in the 1000×600 logical space
// the curves are authored in.
type SVGWriter struct {
	mu    sync.Mutex
	paths map[band.CurveID]string
}

// NewSVGWriter returns an empty writer.
func NewSVGWriter() *SVGWriter {
	return &SVGWriter{paths: make(map[band.CurveID]string)}
}

// Publish stores the latest path for a curve.
func (s *SVGWriter) Publish(id band.CurveID, d string) {
	s.mu.Lock()
	s.paths[id] = d
	s.mu.Unlock()
}

type strokeStyle struct {
	color   string
	width   float64
	opacity float64
	dash    string
}

var strokes = map[band.CurveID]strokeStyle{
	band.CurveMain:   {color: "#6366f1", width: 2.5, opacity: 1},
	band.CurveTop:    {color: "#818cf8", width: 1.2, opacity: 0.45},
	band.CurveBottom: {color: "#818cf8", width: 1.2, opacity: 0.45},
	band.CurveModel:  {color: "#f472b6", width: 1.5, opacity: 0.8, dash: "6 5"},
}

// WriteTo emits the current frame. Curves that have not been published yet
// are simply absent from the document.
func (s *SVGWriter) WriteTo(w io.Writer) (int64, error) {
	s.mu.Lock()
	paths := make(map[band.CurveID]string, len(s.paths))
	for id, d := range s.paths {
		paths[id] = d
	}
	s.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %d %d\">\n",
		int(band.DomainWidth), int(band.DomainHeight))
	for _, id := range drawOrder {
		d, ok := paths[id]
		if !ok || d == "" {
			continue
		}
		st := strokes[id]
		fmt.Fprintf(&b, "  <path d=%q fill=\"none\" stroke=%q stroke-width=\"%g\" stroke-opacity=\"%g\"",
			d, st.color, st.width, st.opacity)
		if st.dash != "" {
			fmt.Fprintf(&b, " stroke-dasharray=%q", st.dash)
		}
		b.WriteString("/>\n")
	}
	b.WriteString("</svg>\n")

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
