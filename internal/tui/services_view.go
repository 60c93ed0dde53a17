package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"agenthub/internal/catalog"
)

func (m Model) healthStyle(status string) lipgloss.Style {
	switch status {
	case "healthy", "excellent":
		return m.styles.Good
	case "warning", "good":
		return m.styles.Warn
	case "error":
		return m.styles.Bad
	default:
		return m.styles.Muted
	}
}

func healthIcon(status string) string {
	switch status {
	case "healthy":
		return "✓"
	case "warning":
		return "⚠"
	case "error":
		return "✗"
	default:
		return "•"
	}
}

var serviceIcons = map[string]string{
	"cpu":      "🧠",
	"trend":    "📈",
	"bolt":     "⚡",
	"disk":     "💾",
	"shield":   "🛡",
	"database": "🗄",
}

// renderServices draws the summary cards and the service tiles.
func (m Model) renderServices(w int) string {
	c := m.catalog
	cardW := (w - 6) / 3
	card := m.styles.Card.Width(cardW)

	summary := lipgloss.JoinHorizontal(lipgloss.Top,
		card.Render(m.styles.Muted.Render("Monthly Cost")+"\n"+m.styles.Label.Render(c.TotalCost().String())),
		card.Render(m.styles.Muted.Render("Healthy Services")+"\n"+m.styles.Good.Render(fmt.Sprintf("%d/%d", c.HealthyCount(), len(c.Services)))),
		card.Render(m.styles.Muted.Render("Avg Usage")+"\n"+m.styles.Label.Render(fmt.Sprintf("%d%%", c.AverageUsage()))),
	)

	var b strings.Builder
	b.WriteString(m.styles.PanelTitle.Render("☁ Cloud Services Status") + "\n")
	for _, s := range c.Services {
		b.WriteString(m.renderService(s, w-4) + "\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		summary,
		m.styles.Panel.Width(w).Render(strings.TrimRight(b.String(), "\n")))
}

func (m Model) renderService(s catalog.Service, w int) string {
	icon := serviceIcons[s.Icon]
	if icon == "" {
		icon = "☁"
	}
	status := m.healthStyle(s.Status).Render(healthIcon(s.Status) + " " + s.Status)
	title := fmt.Sprintf("%s %s  %s  %s", icon, m.styles.Label.Render(s.Name), status, m.styles.Muted.Render(s.Cost.String()))
	usage := m.styles.Muted.Render("Usage ") + m.renderProgressBar(float64(s.Usage), 24)
	stats := m.styles.Muted.Render(fmt.Sprintf("req %s  lat %s  err %s",
		s.Metrics.Requests, s.Metrics.Latency, s.Metrics.Errors))

	return lipgloss.NewStyle().Width(w).Render(title + "\n  " +
		m.styles.Muted.Render(s.Description) + "\n  " +
		usage + "   " + stats)
}
