package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/ribbon/internal/band"
	"github.com/olivier-w/ribbon/internal/pointer"
	"github.com/olivier-w/ribbon/internal/render"
)

func newTestModel() Model {
	cursor := new(pointer.Cell)
	view := NewViewport()
	canvas := render.NewCanvas()
	svg := render.NewSVGWriter()
	engine := band.NewEngine(band.Config{
		Cursor:   cursor,
		Renderer: band.Tee(canvas, svg),
		Viewport: view.Size,
	})
	return New(Params{
		Engine: engine,
		Canvas: canvas,
		SVG:    svg,
		Cursor: cursor,
		View:   view,
	})
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMouseMotionUpdatesPointerCell(t *testing.T) {
	m := newTestModel()
	next, _ := m.handleMsg(tea.MouseMsg{X: 42, Y: 7, Action: tea.MouseActionMotion})

	x, y := next.cursor.Load()
	if x != 42 || y != 7 {
		t.Fatalf("expected cursor (42, 7), got (%v, %v)", x, y)
	}
}

func TestWindowSizeUpdatesSharedViewport(t *testing.T) {
	m := newTestModel()
	next, _ := m.handleMsg(tea.WindowSizeMsg{Width: 120, Height: 40})

	if next.width != 120 || next.height != 40 {
		t.Fatalf("expected model size 120×40, got %d×%d", next.width, next.height)
	}
	if w, h := next.view.Size(); w != 120 || h != 40 {
		t.Fatalf("expected shared viewport 120×40, got %d×%d", w, h)
	}
}

func TestQuitStopsEngineAndQuits(t *testing.T) {
	m := newTestModel()
	next, cmd := m.handleMsg(key("q"))

	if !next.quitting {
		t.Fatal("expected quitting state")
	}
	if cmd == nil {
		t.Fatal("expected quit command sequence")
	}
	if next.View() != "" {
		t.Fatal("expected empty view while quitting")
	}
}

func TestSpaceTogglesFreeze(t *testing.T) {
	m := newTestModel()
	next, _ := m.handleMsg(key(" "))
	if !next.frozen {
		t.Fatal("expected frozen after space")
	}
	next, _ = next.handleMsg(key(" "))
	if next.frozen {
		t.Fatal("expected unfrozen after second space")
	}
}

func TestFrameMsgReschedulesRedraw(t *testing.T) {
	m := newTestModel()
	_, cmd := m.handleMsg(frameMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected the next redraw tick to be scheduled")
	}
}

func TestSnapshotDoneMsgSetsTransientStatus(t *testing.T) {
	m := newTestModel()
	next, _ := m.handleMsg(snapshotDoneMsg{name: "ribbon-x.svg"})
	if !strings.Contains(next.saveMsg, "ribbon-x.svg") {
		t.Fatalf("expected save message to name the file, got %q", next.saveMsg)
	}

	// The message ages out on a later frame tick.
	next.saveMsgTime = time.Now().Add(-6 * time.Second)
	next, _ = next.handleMsg(frameMsg(time.Now()))
	if next.saveMsg != "" {
		t.Fatalf("expected save message to expire, got %q", next.saveMsg)
	}
}

func TestPlaybackEndedQuits(t *testing.T) {
	m := newTestModel()
	next, cmd := m.handleMsg(playbackEndedMsg{})
	if !next.quitting {
		t.Fatal("expected playback end to quit")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestViewShowsHelpAndHeader(t *testing.T) {
	m := newTestModel()
	m, _ = m.handleMsg(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	if !strings.Contains(view, "ribbon") {
		t.Fatal("expected header in view")
	}
	if !strings.Contains(view, "q quit") {
		t.Fatal("expected help line in view")
	}
}
