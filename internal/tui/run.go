package tui

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"agenthub/internal/execution"
	"agenthub/internal/tick"
)

// Run starts the dashboard in the alternate screen and blocks until it exits.
func Run(opts Options) error {
	model, err := New(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if m, ok := finalModel.(Model); ok {
		m.log.Debug("dashboard exited", "timers_released", m.Stopped(), "executions", m.board.Len())
	}
	return nil
}

// RenderFrame renders one deterministic frame of the given tab. It backs the
// --screenshot flag.
func RenderFrame(opts Options, tab Tab, width, height, ticks int) (string, error) {
	start := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	clock := &tick.Manual{Now: start}
	opts.Provider = clock
	opts.Now = func() time.Time { return clock.Now }
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(42))
	}
	if opts.Source == nil {
		opts.Source = execution.NewRandSource(42, execution.MaxIncrement)
	}

	m, err := New(opts)
	if err != nil {
		return "", err
	}
	m.loading = false
	m.width = width
	m.height = height
	m.help.Width = width
	m.layout()

	for i := 0; i < ticks; i++ {
		clock.Now = clock.Now.Add(m.cfg.TickInterval)
		m.advance(clock.Now)
	}
	m.setTab(tab)
	m.refreshChat()
	out := m.View()
	m.stop()
	return out, nil
}
