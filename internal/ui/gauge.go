package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sonarguard/internal/alarm"
	"sonarguard/internal/sensor"
)

// RenderGaugePanel renders the main proximity panel: the distance readout,
// the NEAR..FAR gauge bar, the virtual lamps, and the alarm beacon. The
// border turns red while a target is in the attention zone.
func RenderGaugePanel(width, height int, st alarm.Status, ease float64, ready, alarmOn bool, toneHz, farMM, nearMM int) string {
	innerW := width - 4
	if innerW < 24 {
		innerW = 24
	}

	title := StylePanelTitle.Render("PROXIMITY")
	sep := StyleRule.Render(strings.Repeat("-", innerW))

	lines := []string{title, sep, ""}

	dist := "--- "
	zone := StyleLampOff.Render("NO ECHO")
	if st.DistanceMM != sensor.Invalid {
		dist = fmt.Sprintf("%d mm", st.DistanceMM)
		if st.InRange {
			zone = StyleAlarmLamp.Render("IN ZONE")
		} else {
			zone = StyleReadyLamp.Render("CLEAR")
		}
	}

	lines = append(lines,
		StyleLabel.Render("  Distance  ")+StyleValue.Render(dist),
		StyleLabel.Render("  Zone      ")+zone,
		"",
	)

	barW := innerW - 14
	if barW < 10 {
		barW = 10
	}
	lines = append(lines, "  "+StyleLabel.Render("NEAR ")+renderGaugeBar(ease, barW)+StyleLabel.Render(" FAR"))
	lines = append(lines, "  "+StyleHelp.Render(fmt.Sprintf("%d mm%s%d mm", nearMM, strings.Repeat(" ", max(1, barW-4)), farMM)))
	lines = append(lines, "")

	lines = append(lines, "  "+renderLamps(ready, alarmOn, toneHz))
	lines = append(lines, "")
	lines = append(lines, renderBeacon(innerW, alarmOn))

	for len(lines) < height-2 {
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")
	border := StylePanelBorder
	if st.InRange {
		border = StylePanelAlarm
	}
	return border.Width(width - 2).Height(height - 2).Render(content)
}

// renderGaugeBar fills left-to-right with rising proximity: full bar at NEAR,
// empty at FAR.
func renderGaugeBar(ease float64, width int) string {
	filled := int(math.Round(ease * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	color := ColorGreen
	if ease > 0.66 {
		color = ColorAlarmRed
	} else if ease > 0.25 {
		color = ColorAmber
	}

	filledPart := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("|", filled))
	emptyPart := StyleLampOff.Render(strings.Repeat("-", width-filled))
	return StyleHelp.Render("[") + filledPart + emptyPart + StyleHelp.Render("]")
}

func renderLamps(ready, alarmOn bool, toneHz int) string {
	readyLamp := StyleLampOff.Render("( ) READY")
	if ready {
		readyLamp = StyleReadyLamp.Render("(*) READY")
	}

	alarmLamp := StyleLampOff.Render("( ) ALARM")
	if alarmOn {
		alarmLamp = StyleAlarmLamp.Render("(*) ALARM")
	}

	tone := StyleLampOff.Render("tone off")
	if toneHz > 0 {
		tone = StyleValue.Render(fmt.Sprintf("tone %d Hz", toneHz))
	}

	return readyLamp + "   " + alarmLamp + "   " + tone
}

// renderBeacon draws a block strip that flashes with the alarm ON phase.
func renderBeacon(width int, on bool) string {
	strip := strings.Repeat("#", width-4)
	if on {
		return "  " + StyleAlarmLamp.Render(strip)
	}
	return "  " + StyleLampOff.Render(strings.Repeat(".", width-4))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
