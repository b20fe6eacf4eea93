package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"sonarguard/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, source string, armed bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"A", "rm/disarm"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	state := ""
	if armed {
		state = StyleArmed.Render("ARMED")
	} else {
		state = StyleDisarmed.Render("DISARMED")
	}

	sourceInfo := StyleMenuLabel.Render(fmt.Sprintf("Sensor: %s", source))

	left := StyleMenuKey.Render(title) + menu
	right := state + "  " + sourceInfo + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleMenuBar.Width(width).Render(left + padding + right)
}
