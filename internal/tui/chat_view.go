package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"agenthub/internal/conversation"
)

func (m Model) roleLabel(r conversation.Role) string {
	switch r {
	case conversation.RoleUser:
		return m.styles.UserLabel.Render("You")
	case conversation.RoleAgent:
		return m.styles.AgentLabel.Render("🤖 Agent")
	default:
		return m.styles.SystemLabel.Render("System")
	}
}

// renderTranscript lays out every message for the chat viewport.
func (m Model) renderTranscript(w int) string {
	if w < 20 {
		w = 20
	}
	body := lipgloss.NewStyle().Width(w - 2).PaddingLeft(2)

	var blocks []string
	for _, msg := range m.transcript.Messages() {
		var b strings.Builder
		b.WriteString(m.roleLabel(msg.Role) + " " + m.styles.Muted.Render(msg.Timestamp.Format("15:04:05")) + "\n")
		if msg.Role == conversation.RoleSystem {
			b.WriteString(body.Inherit(m.styles.SystemLabel).Render(msg.Content))
		} else {
			b.WriteString(body.Render(msg.Content))
		}
		if len(msg.Tools) > 0 {
			var badges []string
			for _, t := range msg.Tools {
				badges = append(badges, m.styles.ToolBadge.Render(t))
			}
			b.WriteString("\n  " + strings.Join(badges, " "))
		}
		if msg.Reasoning != "" {
			b.WriteString("\n" + body.Inherit(m.styles.Reasoning).Render("Reasoning: "+msg.Reasoning))
		}
		blocks = append(blocks, b.String())
	}
	if m.transcript.Processing() {
		blocks = append(blocks, m.roleLabel(conversation.RoleAgent)+" "+m.spinner.View()+m.styles.Muted.Render(" thinking..."))
	}
	return strings.Join(blocks, "\n\n")
}

// renderChat draws the conversation panel with its input line.
func (m Model) renderChat(w int) string {
	var b strings.Builder
	b.WriteString(m.styles.PanelTitle.Render("💬 Agent Conversation") + "\n")
	b.WriteString(m.styles.Muted.Render("Interact with your simulated AI agent") + "\n\n")
	b.WriteString(m.chat.View() + "\n")
	b.WriteString(m.styles.Input.Width(w - 4).Render(m.input.View()))
	return m.styles.Panel.Width(w).Render(b.String())
}
