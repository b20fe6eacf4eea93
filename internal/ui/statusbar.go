package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, armed bool, ticks int, farMM, nearMM int) string {
	state := ""
	if armed {
		state = StyleArmed.Render("[ARMED]")
	} else {
		state = StyleDisarmed.Render("[DISARMED]")
	}

	info := fmt.Sprintf(" Ticks: %d  Zone: %d-%d mm", ticks, nearMM, farMM)

	content := state + StyleStatusBar.Foreground(ColorGreen).Render(info)

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding)
}
