package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/ribbon/internal/audio"
	"github.com/olivier-w/ribbon/internal/band"
	"github.com/olivier-w/ribbon/internal/pointer"
	"github.com/olivier-w/ribbon/internal/render"
)

// Params wires the model to the pieces main constructs.
type Params struct {
	Engine *band.Engine
	Canvas *render.Canvas
	SVG    *render.SVGWriter
	Cursor *pointer.Cell
	View   *Viewport

	// Player is nil in pointer-only mode.
	Player *audio.Player
	Meta   audio.Metadata
}

// Model is the Bubbletea model for the ribbon TUI. It owns presentation
// only: the engine animates on its own goroutine and the redraw tick just
// pulls the canvas's latest frame.
type Model struct {
	engine *band.Engine
	canvas *render.Canvas
	svg    *render.SVGWriter
	cursor *pointer.Cell
	view   *Viewport

	player *audio.Player
	meta   audio.Metadata
	prog   progress.Model

	width    int
	height   int
	frozen   bool
	quitting bool

	elapsed  time.Duration
	duration time.Duration
	volume   float64
	paused   bool

	saveMsg     string
	saveMsgTime time.Time
}

// New creates the model. The engine must already be wired to the canvas and
// SVG writer via the pointer cell and viewport passed here.
func New(p Params) Model {
	m := Model{
		engine: p.Engine,
		canvas: p.Canvas,
		svg:    p.SVG,
		cursor: p.Cursor,
		view:   p.View,
		player: p.Player,
		meta:   p.Meta,
	}
	if p.Player != nil {
		m.duration = p.Player.Duration()
		m.volume = p.Player.Volume()
		m.prog = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{frameCmd(), tea.SetWindowTitle("ribbon")}
	if m.player != nil {
		cmds = append(cmds, checkDone(m.player))
	}
	return tea.Batch(cmds...)
}

func checkDone(p *audio.Player) tea.Cmd {
	return func() tea.Msg {
		<-p.Done()
		return playbackEndedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.cursor.Store(float64(msg.X), float64(msg.Y))
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Set(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		if m.player != nil {
			m.elapsed = m.player.Position()
			m.paused = m.player.Paused()
			m.volume = m.player.Volume()
		}
		if m.saveMsg != "" && time.Since(m.saveMsgTime) > 5*time.Second {
			m.saveMsg = ""
		}
		return m, frameCmd()

	case snapshotDoneMsg:
		if msg.err != nil {
			m.saveMsg = fmt.Sprintf("Snapshot failed: %v", msg.err)
		} else {
			m.saveMsg = fmt.Sprintf("Saved %s", msg.name)
		}
		m.saveMsgTime = time.Now()
		return m, nil

	case playbackEndedMsg:
		return m.shutdown()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if isQuit(msg) {
		return m.shutdown()
	}
	switch msg.String() {
	case " ":
		m.frozen = !m.frozen
		m.engine.SetFrozen(m.frozen)
	case "s":
		svg := m.svg
		name := fmt.Sprintf("ribbon-%s.svg", time.Now().Format("20060102-150405"))
		return m, func() tea.Msg {
			return snapshotDoneMsg{name: name, err: writeSnapshot(svg, name)}
		}
	case "p":
		if m.player != nil {
			m.player.TogglePause()
			m.paused = m.player.Paused()
		}
	case "+", "=":
		if m.player != nil {
			m.player.AdjustVolume(0.05)
			m.volume = m.player.Volume()
		}
	case "-", "_":
		if m.player != nil {
			m.player.AdjustVolume(-0.05)
			m.volume = m.player.Volume()
		}
	}
	return m, nil
}

// shutdown tears the session down in order: stop the frame loop so nothing
// publishes anymore, then release audio, then hand control back to the
// terminal.
func (m Model) shutdown() (Model, tea.Cmd) {
	m.quitting = true
	m.engine.Stop()
	if m.player != nil {
		m.player.Close()
	}
	return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
}

func writeSnapshot(svg *render.SVGWriter, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err := svg.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w := m.width
	if w < 30 {
		w = 60
	}
	h := m.height
	if h < 10 {
		h = 20
	}

	canvasRows := h - 5
	if m.player != nil {
		canvasRows--
	}
	if m.saveMsg != "" {
		canvasRows--
	}

	var b strings.Builder
	b.WriteString("  " + headerStyle.Render("ribbon") + "\n")
	b.WriteString(m.canvas.Render(w, canvasRows))
	b.WriteString("\n")
	b.WriteString("  " + m.statusLine(w) + "\n")
	if m.player != nil {
		b.WriteString("  " + m.trackLine(w) + "\n")
	}
	if m.saveMsg != "" {
		b.WriteString("  " + helpStyle.Render(m.saveMsg) + "\n")
	}
	b.WriteString("  " + helpStyle.Render(helpText(m.player != nil)) + "\n")
	return b.String()
}

func (m Model) statusLine(w int) string {
	if m.player == nil {
		state := "flowing"
		if m.frozen {
			state = "frozen"
		}
		return statusStyle.Render(state)
	}

	title := titleStyle.Render(m.meta.Title)
	if m.meta.Artist != "" {
		title += "  " + artistStyle.Render(m.meta.Artist)
	}
	state := "▶"
	if m.paused {
		state = "❚❚"
	}
	if m.frozen {
		state += " frozen"
	}
	return fmt.Sprintf("%s  %s  %s", title, statusStyle.Render(state),
		statusStyle.Render(fmt.Sprintf("vol %d%%", int(m.volume*100))))
}

func (m Model) trackLine(w int) string {
	elapsedStr := timeStyle.Render(formatDuration(m.elapsed))
	durationStr := timeStyle.Render(formatDuration(m.duration))

	barWidth := w - len(formatDuration(m.elapsed)) - len(formatDuration(m.duration)) - 10
	if barWidth < 10 {
		barWidth = 10
	}
	prog := m.prog
	prog.Width = barWidth

	var ratio float64
	if m.duration > 0 {
		ratio = float64(m.elapsed) / float64(m.duration)
	}
	if ratio > 1 {
		ratio = 1
	}
	return fmt.Sprintf("%s %s %s", elapsedStr, prog.ViewAs(ratio), durationStr)
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
