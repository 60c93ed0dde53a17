package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"agenthub/internal/execution"
)

func categoryIcon(c execution.Category) string {
	switch c {
	case execution.CategoryAPI:
		return "🔍"
	case execution.CategoryDatabase:
		return "🗄"
	case execution.CategoryComputation:
		return "🧮"
	case execution.CategoryCloudService:
		return "☁"
	default:
		return "🔧"
	}
}

func stateIcon(s execution.State) string {
	switch s {
	case execution.StateCompleted:
		return "✓"
	case execution.StateRunning:
		return "▶"
	case execution.StateFailed:
		return "✗"
	case execution.StateQueued:
		return "◷"
	default:
		return "?"
	}
}

func (m Model) stateStyle(s execution.State) lipgloss.Style {
	switch s {
	case execution.StateCompleted:
		return m.styles.Completed
	case execution.StateRunning:
		return m.styles.Running
	case execution.StateFailed:
		return m.styles.Failed
	default:
		return m.styles.Queued
	}
}

// renderExecutions draws the tool execution monitor.
func (m Model) renderExecutions(w int) string {
	execs := m.board.Snapshot()

	var b strings.Builder
	b.WriteString(m.styles.PanelTitle.Render("🔧 Tool Execution Monitor") + "\n")
	b.WriteString(m.styles.Muted.Render("Real-time monitoring of agent tool usage and API integrations") + "\n\n")

	if len(execs) == 0 {
		b.WriteString(m.styles.Muted.Render("No tool executions. Press 'n' to invoke a tool."))
		return m.styles.Panel.Width(w).Render(b.String())
	}

	cState, cProg, cStart, cDur := 12, 22, 10, 9
	cName := max(w-cState-cProg-cStart-cDur-12, 16)

	header := fmt.Sprintf("   %-*s %-*s %-*s %-*s %-*s",
		cName, "TOOL", cState, "STATUS", cProg, "PROGRESS", cStart, "STARTED", cDur, "DURATION")
	b.WriteString(m.styles.Label.Underline(true).Render(header) + "\n")

	for i, e := range execs {
		st := m.stateStyle(e.State).Render(fmt.Sprintf("%-*s", cState, stateIcon(e.State)+" "+string(e.State)))
		dur := "--"
		if _, ok := e.DurationMs(); ok {
			dur = fmtSeconds(e.Duration)
		} else if e.State == execution.StateRunning {
			dur = m.styles.Muted.Render(fmt.Sprintf("%-*s", cDur, fmtDuration(m.now().Sub(e.StartedAt))))
		}
		line := fmt.Sprintf(" %s %-*s %s %s %-*s %-*s",
			categoryIcon(e.Category),
			cName, truncate(e.Name, cName),
			st,
			m.renderProgressBar(e.Progress, cProg),
			cStart, e.StartedAt.Format("15:04:05"),
			cDur, dur)
		if i == m.cursor {
			line = m.styles.Selected.Width(w - 2).Render(line)
		}
		b.WriteString(line + "\n")

		switch {
		case e.Result != "":
			b.WriteString("     " + m.styles.Completed.Render("▸ "+e.Result) + "\n")
		case e.Error != "":
			b.WriteString("     " + m.styles.Failed.Render("! "+e.Error) + "\n")
		}
	}

	return m.styles.Panel.Width(w).Render(strings.TrimRight(b.String(), "\n"))
}
