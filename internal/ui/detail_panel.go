package ui

import (
	"fmt"
	"strings"

	"sonarguard/internal/alarm"
	"sonarguard/internal/sensor"
)

// RenderDetailPanel renders the cadence and smoothing detail: the current
// cadence parameters, the raw smoothing window, a distance sparkline, and
// the tail of the status stream.
func RenderDetailPanel(width, height int, cad alarm.Cadence, window []int, history []int, log []string) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	title := StylePanelTitle.Render("CADENCE")
	sep := StyleRule.Render(strings.Repeat("-", innerW))

	lines := []string{title, sep, ""}

	fields := []struct{ label, value string }{
		{"Period", fmt.Sprintf("%d ms", cad.PeriodMS)},
		{"On/Off", fmt.Sprintf("%d / %d ms", cad.OnMS, cad.OffMS)},
		{"Tone", fmt.Sprintf("%d Hz", cad.ToneHz)},
	}
	for _, f := range fields {
		lines = append(lines, StyleLabel.Render(fmt.Sprintf("  %-8s", f.label))+StyleValue.Render(f.value))
	}

	lines = append(lines, "", StyleLabel.Render("  Window  ")+renderWindow(window), "")

	if len(history) > 0 {
		sparkW := innerW - 4
		if sparkW < 10 {
			sparkW = 10
		}
		lines = append(lines, StyleLabel.Render("  Distance history:"))
		lines = append(lines, "  "+StyleLog.Render(renderSparkline(history, sparkW)))
		lines = append(lines, "")
	}

	lines = append(lines, StyleLabel.Render("  Status stream:"), sep)

	// Tail of the log, newest at the bottom, filling the remaining rows.
	logSpace := height - 2 - len(lines)
	if logSpace < 1 {
		logSpace = 1
	}
	start := 0
	if len(log) > logSpace {
		start = len(log) - logSpace
	}
	for _, l := range log[start:] {
		if len(l) > innerW {
			l = l[:innerW]
		}
		lines = append(lines, StyleLogDim.Render("  "+l))
	}

	for len(lines) < height-2 {
		lines = append(lines, "")
	}
	if len(lines) > height-2 {
		lines = lines[:height-2]
	}

	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}

// renderWindow shows the raw smoothing slots oldest-first, with a dot for a
// dropout slot.
func renderWindow(window []int) string {
	parts := make([]string, 0, len(window))
	for _, v := range window {
		if v == sensor.Invalid {
			parts = append(parts, StyleLampOff.Render("·"))
		} else {
			parts = append(parts, StyleValue.Render(fmt.Sprintf("%d", v)))
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// renderSparkline compresses recent distances into one line. Dropouts render
// as spaces.
func renderSparkline(values []int, width int) string {
	chars := []byte{'_', '.', '-', '~', '^'}

	minV, maxV := 0, 0
	seen := false
	for _, v := range values {
		if v == sensor.Invalid {
			continue
		}
		if !seen || v < minV {
			minV = v
		}
		if !seen || v > maxV {
			maxV = v
		}
		seen = true
	}
	if !seen {
		return ""
	}

	rng := maxV - minV
	if rng < 1 {
		rng = 1
	}

	start := 0
	if len(values) > width {
		start = len(values) - width
	}

	var sb strings.Builder
	for i := start; i < len(values); i++ {
		if values[i] == sensor.Invalid {
			sb.WriteByte(' ')
			continue
		}
		idx := (values[i] - minV) * (len(chars) - 1) / rng
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		sb.WriteByte(chars[idx])
	}

	return sb.String()
}
