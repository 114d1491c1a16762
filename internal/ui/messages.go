package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type frameMsg time.Time
type playbackEndedMsg struct{}
type snapshotDoneMsg struct {
	name string
	err  error
}

// redrawInterval paces View refreshes. The engine runs its own frame loop
// and publishes straight to the canvas; this tick only pulls the latest
// raster onto the screen.
const redrawInterval = 33 * time.Millisecond

func frameCmd() tea.Cmd {
	return tea.Tick(redrawInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
