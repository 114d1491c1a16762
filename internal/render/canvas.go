package render

import (
	"math"
	"strings"
	"sync"

	"github.com/olivier-w/ribbon/internal/band"
)

// Canvas is a band.Renderer that rasterizes the published curves into
// Unicode braille cells (2×4 dots per cell). Publishes arrive on the engine
// goroutine and Render runs on the UI goroutine, so the path table is
// locked; rasterization itself works on a snapshot.
type Canvas struct {
	mu    sync.Mutex
	paths map[band.CurveID]string
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{paths: make(map[band.CurveID]string)}
}

// Publish stores the latest path for a curve, replacing the previous frame's.
func (c *Canvas) Publish(id band.CurveID, path string) {
	c.mu.Lock()
	c.paths[id] = path
	c.mu.Unlock()
}

// drawOrder puts the main curve last so it wins the cell color where curves
// overlap.
var drawOrder = []band.CurveID{band.CurveBottom, band.CurveTop, band.CurveModel, band.CurveMain}

// Braille dot layout: bit offset by (dot column, dot row) within a cell.
var dotBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Render rasterizes the latest frame onto a width×height cell grid.
func (c *Canvas) Render(width, height int) string {
	if width < 4 || height < 2 {
		return ""
	}

	c.mu.Lock()
	paths := make(map[band.CurveID]string, len(c.paths))
	for id, d := range c.paths {
		paths[id] = d
	}
	c.mu.Unlock()

	dotCols := width * 2
	dotRows := height * 4

	pattern := make([][]uint8, height)
	owner := make([][]uint8, height) // 1+index into drawOrder, 0 = empty
	for r := range height {
		pattern[r] = make([]uint8, width)
		owner[r] = make([]uint8, width)
	}

	plot := func(dc, dr int, ord uint8) {
		if dc < 0 || dc >= dotCols || dr < 0 || dr >= dotRows {
			return
		}
		pattern[dr/4][dc/2] |= 1 << dotBits[dc%2][dr%4]
		owner[dr/4][dc/2] = ord
	}

	for ord, id := range drawOrder {
		pts := ParsePath(paths[id])
		if len(pts) < 2 {
			continue
		}
		px, py := toDot(pts[0], dotCols, dotRows)
		for _, p := range pts[1:] {
			x, y := toDot(p, dotCols, dotRows)
			plotLine(plot, px, py, x, y, uint8(ord+1))
			px, py = x, y
		}
	}

	var out strings.Builder
	color := newANSIState()
	for r := range height {
		if r > 0 {
			out.WriteByte('\n')
		}
		for col := range width {
			pat := pattern[r][col]
			if pat == 0 {
				out.WriteByte(' ')
				continue
			}
			if rgb, ok := cellColor(owner[r][col], col, width); ok {
				color.set(&out, rgb)
			}
			out.WriteRune(rune(0x2800 + int(pat)))
		}
		color.reset(&out)
	}
	return out.String()
}

// toDot maps a logical-space point onto the dot grid. Logical y grows
// downward like the terminal's rows, so no flip is needed.
func toDot(p Pt, dotCols, dotRows int) (int, int) {
	x := int(math.Round(p.X / band.DomainWidth * float64(dotCols-1)))
	y := int(math.Round(p.Y / band.DomainHeight * float64(dotRows-1)))
	return x, y
}

// cellColor picks the color of the topmost curve through a cell, ramping hue
// left to right like the source graphic's gradient stroke.
func cellColor(ord uint8, col, width int) (RGB, bool) {
	if ord == 0 || int(ord) > len(drawOrder) {
		return RGB{}, false
	}
	den := width - 1
	if den < 1 {
		den = 1
	}
	t := float64(col) / float64(den)
	switch drawOrder[ord-1] {
	case band.CurveMain:
		return rgbFromHSV(0.55+0.2*t, 0.65, 0.95), true
	case band.CurveModel:
		return rgbFromHSV(0.9, 0.55, 0.85), true
	default:
		return rgbFromHSV(0.58+0.2*t, 0.5, 0.45), true
	}
}

// plotLine walks a Bresenham segment, handing each dot to plot.
func plotLine(plot func(dc, dr int, ord uint8), x0, y0, x1, y1 int, ord uint8) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		plot(x0, y0, ord)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
