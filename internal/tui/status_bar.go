package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"agenthub/internal/execution"
)

// renderStatusBar shows execution counts and the last tracker tick.
func (m Model) renderStatusBar(w int) string {
	counts := m.board.Counts()

	parts := []string{
		fmt.Sprintf("Executions: %d", m.board.Len()),
		m.styles.Queued.Render(fmt.Sprintf("◷%d queued", counts[execution.StateQueued])),
		m.styles.Running.Render(fmt.Sprintf("▶%d running", counts[execution.StateRunning])),
		m.styles.Completed.Render(fmt.Sprintf("✓%d done", counts[execution.StateCompleted])),
		m.styles.Failed.Render(fmt.Sprintf("✗%d failed", counts[execution.StateFailed])),
		fmt.Sprintf("ticks %d", m.totalTicks),
	}
	left := strings.Join(parts, "  │  ")
	right := m.styles.Muted.Render("⟳ " + m.lastTick.Format("15:04:05"))

	gap := w - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	return m.styles.StatusBar.Width(w - 2).Render(left + strings.Repeat(" ", gap) + right)
}
