package main

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func helpText(curves bool) string {
	s := "←/→ scroll  ↑/↓ lines  ,/. frame  +/- zoom  f fit  e expand  tab "
	if curves {
		s += "dope sheet"
	} else {
		s += "curves"
	}
	return s + "  q quit"
}
