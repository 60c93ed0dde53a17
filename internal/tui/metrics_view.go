package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"agenthub/internal/catalog"
)

var metricIcons = map[string]string{
	"clock":    "⏱",
	"target":   "🎯",
	"users":    "👥",
	"alert":    "⚠",
	"bolt":     "⚡",
	"activity": "📶",
}

// renderMetrics draws the KPI tiles two per row.
func (m Model) renderMetrics(w int) string {
	header := m.styles.PanelTitle.Render("📊 Performance Analytics") + "\n" +
		m.styles.Muted.Render("Real-time metrics and KPIs for your AI agent system")

	tileW := (w - 4) / 2
	var rows []string
	metrics := m.catalog.Metrics
	for i := 0; i < len(metrics); i += 2 {
		row := []string{m.renderMetric(metrics[i], tileW)}
		if i+1 < len(metrics) {
			row = append(row, m.renderMetric(metrics[i+1], tileW))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Panel.Width(w).Render(header),
		strings.Join(rows, "\n"))
}

func (m Model) renderMetric(k catalog.Metric, w int) string {
	icon := metricIcons[k.Icon]
	trend := "↘"
	trendStyle := m.styles.Warn
	if k.Trend == "up" {
		trend = "↗"
		trendStyle = m.styles.Good
	}

	title := icon + " " + m.styles.Label.Render(k.Title) + "  " + m.healthStyle(k.Status).Render(k.Status)
	value := m.styles.Title.Render(k.Value) + "  " + trendStyle.Render(trend+" "+k.Change)
	foot := m.styles.Muted.Render(k.Description) + "\n" + m.styles.Muted.Render("Target: "+k.Target)

	return m.styles.Card.Width(w).Render(title + "\n" + value + "\n" + foot)
}
