package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/ribbon/internal/audio"
	"github.com/olivier-w/ribbon/internal/band"
	"github.com/olivier-w/ribbon/internal/pointer"
	"github.com/olivier-w/ribbon/internal/render"
	"github.com/olivier-w/ribbon/internal/ui"
)

func main() {
	snapshotPath := flag.String("snapshot", "", "render headlessly and write an SVG to this path")
	frames := flag.Int("frames", 90, "frames to settle before a headless snapshot")
	flag.Parse()

	if *snapshotPath != "" {
		if err := writeHeadlessSnapshot(*snapshotPath, *frames); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var player *audio.Player
	var meta audio.Metadata
	if path := flag.Arg(0); path != "" {
		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if info.IsDir() {
			fmt.Fprintf(os.Stderr, "Error: %s is a directory\n", path)
			os.Exit(1)
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !audio.IsSupportedExt(ext) {
			fmt.Fprintf(os.Stderr, "Error: unsupported format %s (supported: %s)\n",
				ext, strings.Join(audio.SupportedExts, " "))
			os.Exit(1)
		}

		meta = audio.ReadMetadata(path)
		player, err = audio.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error starting playback: %v\n", err)
			os.Exit(1)
		}
		defer player.Close()
	}

	cursor := new(pointer.Cell)
	view := ui.NewViewport()
	canvas := render.NewCanvas()
	svg := render.NewSVGWriter()

	cfg := band.Config{
		Cursor:   cursor,
		Renderer: band.Tee(canvas, svg),
		Viewport: view.Size,
	}
	if player != nil {
		meter := audio.NewMeter(30)
		// The meter lives on the engine goroutine; Level is its only caller.
		cfg.Level = func() float64 { return meter.Step(player.Level()) }
	}
	engine := band.NewEngine(cfg)

	model := ui.New(ui.Params{
		Engine: engine,
		Canvas: canvas,
		SVG:    svg,
		Cursor: cursor,
		View:   view,
		Player: player,
		Meta:   meta,
	})

	engine.Start()
	defer engine.Stop()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeHeadlessSnapshot settles the band for a fixed number of frames with
// the pointer parked at the domain center, then writes the frame as SVG.
func writeHeadlessSnapshot(path string, frames int) error {
	if frames < 1 {
		frames = 1
	}
	lattice := band.NewLattice()
	var set band.CurveSet
	for i := range frames {
		set = lattice.Step(band.DomainWidth/2, 0, float64(i)/30)
	}

	svg := render.NewSVGWriter()
	for _, id := range band.AllCurves {
		svg.Publish(id, set.Path(id))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := svg.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
