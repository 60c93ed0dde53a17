package tui

import (
	"fmt"
	"strings"
)

// Tab is one of the dashboard's main panels.
type Tab int

const (
	TabChat Tab = iota
	TabTools
	TabServices
	TabMetrics
	tabCount
)

func (t Tab) String() string {
	return [...]string{"Agent Chat", "Tool Execution", "Cloud Services", "Performance"}[t]
}

func (t Tab) Icon() string {
	return [...]string{"💬", "🔧", "☁", "📊"}[t]
}

func (t Tab) next() Tab { return (t + 1) % tabCount }
func (t Tab) prev() Tab { return (t + tabCount - 1) % tabCount }

// tabFromKey maps "1".."4" to a tab.
func tabFromKey(k string) (Tab, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] >= '1'+byte(tabCount) {
		return 0, false
	}
	return Tab(k[0] - '1'), true
}

// ParseTab accepts a tab number "1".."4".
func ParseTab(s string) (Tab, error) {
	t, ok := tabFromKey(s)
	if !ok {
		return 0, fmt.Errorf("unknown tab %q: want 1-%d", s, tabCount)
	}
	return t, nil
}

func (m Model) renderTabs(w int) string {
	var tabs []string
	for t := TabChat; t < tabCount; t++ {
		label := t.Icon() + " " + t.String()
		if t == m.tab {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(label))
		}
	}
	return m.styles.TabBar.Width(w).Render(strings.Join(tabs, " "))
}
