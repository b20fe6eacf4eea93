package ui

import "github.com/charmbracelet/lipgloss"

// Console color palette
var (
	ColorGreen     = lipgloss.Color("#00CC33")
	ColorBright    = lipgloss.Color("#00FF41")
	ColorMidGreen  = lipgloss.Color("#008F11")
	ColorDimGreen  = lipgloss.Color("#004A0A")
	ColorAlarmRed  = lipgloss.Color("#FF3300")
	ColorAmber     = lipgloss.Color("#FFAA00")
	ColorReadyCyan = lipgloss.Color("#00FFAA")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorGreen).
			Padding(0, 1)

	StyleArmed = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleDisarmed = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#00AA22"))

	StylePanelAlarm = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAlarmRed)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorMidGreen)

	StyleValue = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleReadyLamp = lipgloss.NewStyle().
			Foreground(ColorReadyCyan).
			Bold(true)

	StyleAlarmLamp = lipgloss.NewStyle().
			Foreground(ColorAlarmRed).
			Bold(true)

	StyleLampOff = lipgloss.NewStyle().
			Foreground(ColorDimGreen)

	StyleRule = lipgloss.NewStyle().
			Foreground(ColorMidGreen)

	StyleLog = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleLogDim = lipgloss.NewStyle().
			Foreground(ColorDimGreen)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimGreen)
)
