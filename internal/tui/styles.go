package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Tokyo Night palette.
var (
	colorTitle   = lipgloss.Color("#7aa2f7")
	colorRunning = lipgloss.Color("#e0af68")
	colorDone    = lipgloss.Color("#9ece6a")
	colorQueued  = lipgloss.Color("#7dcfff")
	colorError   = lipgloss.Color("#f7768e")
	colorBorder  = lipgloss.Color("#3b4261")
	colorFg      = lipgloss.Color("#c0caf5")
	colorDim     = lipgloss.Color("#565f89")
	colorSelBg   = lipgloss.Color("#283457")
	colorAccent  = lipgloss.Color("#bb9af7")
	colorBar     = lipgloss.Color("#9ece6a")
	colorBarBg   = lipgloss.Color("#1a1b26")
)

// Styles holds every style the dashboard renders with.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabBar      lipgloss.Style

	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
	Card       lipgloss.Style
	Selected   lipgloss.Style

	// Tool execution states
	Queued    lipgloss.Style
	Running   lipgloss.Style
	Completed lipgloss.Style
	Failed    lipgloss.Style

	// Chat
	UserLabel   lipgloss.Style
	AgentLabel  lipgloss.Style
	SystemLabel lipgloss.Style
	ToolBadge   lipgloss.Style
	Reasoning   lipgloss.Style
	Input       lipgloss.Style

	StatusBar lipgloss.Style
	Notice    lipgloss.Style

	BarFill  lipgloss.Style
	BarEmpty lipgloss.Style

	Label  lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
	Good   lipgloss.Style
	Warn   lipgloss.Style
	Bad    lipgloss.Style
}

// NewStyles creates the style set using the given renderer.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(colorTitle),
		Subtitle: r.NewStyle().
			Foreground(colorDim),
		Header: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2),

		TabActive: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2),
		TabInactive: r.NewStyle().
			Foreground(colorDim).
			Padding(0, 2),
		TabBar: r.NewStyle().
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorBorder),

		Panel: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
		PanelTitle: r.NewStyle().
			Bold(true).
			Foreground(colorFg),
		Card: r.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
		Selected: r.NewStyle().
			Background(colorSelBg),

		Queued:    r.NewStyle().Foreground(colorQueued),
		Running:   r.NewStyle().Foreground(colorRunning),
		Completed: r.NewStyle().Foreground(colorDone),
		Failed:    r.NewStyle().Foreground(colorError),

		UserLabel: r.NewStyle().
			Foreground(colorTitle).
			Bold(true),
		AgentLabel: r.NewStyle().
			Foreground(colorAccent).
			Bold(true),
		SystemLabel: r.NewStyle().
			Foreground(colorDim).
			Italic(true),
		ToolBadge: r.NewStyle().
			Foreground(colorQueued).
			Background(colorBarBg).
			Padding(0, 1),
		Reasoning: r.NewStyle().
			Foreground(colorDim).
			Italic(true),
		Input: r.NewStyle().
			BorderTop(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorBorder),

		StatusBar: r.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorBorder).
			BorderTop(true).
			Padding(0, 1),
		Notice: r.NewStyle().
			Foreground(colorRunning),

		BarFill:  r.NewStyle().Foreground(colorBar),
		BarEmpty: r.NewStyle().Foreground(colorBarBg),

		Label:  r.NewStyle().Bold(true).Foreground(colorFg),
		Muted:  r.NewStyle().Foreground(colorDim),
		Accent: r.NewStyle().Foreground(colorAccent),
		Good:   r.NewStyle().Foreground(colorDone),
		Warn:   r.NewStyle().Foreground(colorRunning),
		Bad:    r.NewStyle().Foreground(colorError),
	}
}
