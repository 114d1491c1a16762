package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func helpText(hasAudio bool) string {
	s := "move mouse to stir  space freeze  s snapshot"
	if hasAudio {
		s += "  p pause  +/- volume"
	}
	s += "  q quit"
	return s
}
