package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the gauge panel and detail panel horizontally, with
// menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, gaugePanel, detailPanel, statusBar string, width int) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, gaugePanel, detailPanel)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
