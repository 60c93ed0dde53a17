package tui

import (
	"fmt"
	"math"
	"strings"
	"time"
)

func fmtDuration(d time.Duration) string {
	if d < 0 {
		return "--"
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	if m > 0 {
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// fmtSeconds renders a duration as seconds with one decimal, e.g. "2.4s".
func fmtSeconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundPercent rounds half away from zero so 99.5 shows as 100.
func roundPercent(p float64) int {
	return clamp(int(math.Round(p)), 0, 100)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// renderProgressBar draws a visual bar like ████░░░░  45%
func (m Model) renderProgressBar(pct float64, width int) string {
	if width < 8 {
		width = 8
	}
	barW := width - 5 // leave room for " XXX%"
	if barW < 4 {
		barW = 4
	}
	p := roundPercent(pct)
	filled := barW * p / 100
	empty := barW - filled

	bar := m.styles.BarFill.Render(strings.Repeat("█", filled)) +
		m.styles.BarEmpty.Render(strings.Repeat("░", empty))
	return bar + m.styles.Label.UnsetBold().Render(fmt.Sprintf(" %3d%%", p))
}
