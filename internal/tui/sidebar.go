package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderSidebar shows the agent overview card and the service health dots.
func (m Model) renderSidebar(w int) string {
	ov := m.catalog.Overview
	inner := w - 4

	row := func(label, value string) string {
		gap := max(inner-lipgloss.Width(label)-lipgloss.Width(value), 1)
		return m.styles.Muted.Render(label) + strings.Repeat(" ", gap) + value
	}

	overview := strings.Join([]string{
		m.styles.PanelTitle.Render("Agent Overview"),
		row("Active Agents", m.styles.Good.Render(fmt.Sprintf("%d", ov.ActiveAgents))),
		row("Tasks Completed", m.styles.Accent.Render(fmt.Sprintf("%d", ov.TasksCompleted))),
		row("Avg Response Time", m.styles.Label.Render(ov.AvgResponse)),
		row("Success Rate", m.styles.Good.Render(ov.SuccessRate)),
	}, "\n")

	dots := []string{m.styles.PanelTitle.Render("Services")}
	for _, s := range m.catalog.Sidebar {
		dots = append(dots, row(s.Name, m.healthStyle(s.Status).Render("●")))
	}

	panel := m.styles.Panel.Width(w - 2)
	return lipgloss.JoinVertical(lipgloss.Left,
		panel.Render(overview),
		panel.Render(strings.Join(dots, "\n")))
}
