package tui

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"agenthub/internal/agent"
	"agenthub/internal/catalog"
	"agenthub/internal/config"
	"agenthub/internal/conversation"
	"agenthub/internal/execution"
	"agenthub/internal/logger"
	"agenthub/internal/tick"
)

const (
	loopTracker = "tracker"
	loopStatus  = "status"
	timerReply  = "reply"
	timerLoad   = "loading"

	sidebarWidth = 30
	defaultWidth = 140
)

// Options wires the dashboard's collaborators. Zero values fall back to
// production defaults.
type Options struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Logger   logger.Logger
	Provider tick.Provider
	// Source drives progress increments. Defaults to a RandSource seeded from Config.
	Source execution.Source
	// Rand picks agent statuses and simulated tool names.
	Rand *rand.Rand
	Now  func() time.Time
	// Renderer is the Lip Gloss renderer used for styling. If nil, the
	// default renderer is used.
	Renderer *lipgloss.Renderer
}

// Model is the root BubbleTea model for the dashboard.
type Model struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	log     logger.Logger
	now     func() time.Time
	rng     *rand.Rand
	styles  Styles

	board      *execution.Board
	transcript *conversation.Transcript
	rotator    *agent.Rotator
	status     agent.Status

	trackerLoop tick.Loop
	statusLoop  tick.Loop
	replyTimer  tick.Timer
	loadTimer   tick.Timer
	startCmds   []tea.Cmd

	spinner spinner.Model
	help    help.Model
	chat    viewport.Model
	input   textinput.Model

	tab        Tab
	cursor     int
	loading    bool
	width      int
	height     int
	lastTick   time.Time
	totalTicks int
	notice     string
	quitting   bool
}

// New builds the dashboard and starts its timers. The returned model must be
// handed to a tea.Program (or driven through Update) for the timers to fire.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	cat := opts.Catalog
	if cat == nil {
		var err error
		if cat, err = catalog.Default(); err != nil {
			return Model{}, err
		}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	provider := opts.Provider
	if provider == nil {
		provider = tick.Real{}
	}
	seed := cfg.SeedOrNow(now())
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(seed))
	}
	src := opts.Source
	if src == nil {
		src = execution.NewRandSource(seed, cfg.MaxIncrement)
	}
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := NewStyles(r)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = r.NewStyle().Foreground(colorTitle)

	ti := textinput.New()
	ti.Placeholder = "Ask your AI agent anything..."
	ti.CharLimit = 2000
	ti.Prompt = "› "
	ti.Focus()

	start := now()
	m := Model{
		cfg:        cfg,
		catalog:    cat,
		log:        log,
		now:        now,
		rng:        rng,
		styles:     styles,
		board:      execution.NewBoard(execution.NewTracker(src), execution.Seed(start), cfg.Retention),
		transcript: conversation.NewTranscript(conversation.Seed(start)),
		rotator:    agent.NewRotator(rng),
		status:     agent.StatusActive,
		spinner:    sp,
		help:       help.New(),
		chat:       viewport.New(defaultWidth-sidebarWidth-4, 12),
		input:      ti,
		loading:    cfg.LoadingDelay > 0,
		width:      defaultWidth,
		lastTick:   start,
		replyTimer: tick.NewTimer(timerReply, provider),
		loadTimer:  tick.NewTimer(timerLoad, provider),
	}

	var cmd tea.Cmd
	m.trackerLoop, cmd = tick.NewLoop(loopTracker, cfg.TickInterval, provider).Start()
	m.startCmds = append(m.startCmds, cmd)
	m.statusLoop, cmd = tick.NewLoop(loopStatus, cfg.StatusInterval, provider).Start()
	m.startCmds = append(m.startCmds, cmd)
	if m.loading {
		m.loadTimer, cmd = m.loadTimer.Arm(cfg.LoadingDelay)
		m.startCmds = append(m.startCmds, cmd)
	}
	m.layout()
	m.refreshChat()

	log.Info("dashboard started", "executions", m.board.Len(), "tick", cfg.TickInterval, "seed", seed)
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(append([]tea.Cmd{m.spinner.Tick}, m.startCmds...)...)
}

// Executions returns the current execution snapshot.
func (m Model) Executions() []execution.ToolExecution { return m.board.Snapshot() }

// Messages returns the current conversation.
func (m Model) Messages() []conversation.Message { return m.transcript.Messages() }

// Stopped reports whether every timer has been released.
func (m Model) Stopped() bool {
	return !m.trackerLoop.Active() && !m.statusLoop.Active() && !m.replyTimer.Pending() && !m.loadTimer.Pending()
}

// stop releases every timer so no tick reaches the model after teardown.
func (m *Model) stop() {
	m.trackerLoop = m.trackerLoop.Stop()
	m.statusLoop = m.statusLoop.Stop()
	m.replyTimer = m.replyTimer.Cancel()
	m.loadTimer = m.loadTimer.Cancel()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		m.refreshChat()
		return m, nil

	case tick.Msg:
		return m.handleTick(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.transcript.Processing() {
			m.refreshChat()
		}
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.tab == TabChat {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleTick(msg tick.Msg) (tea.Model, tea.Cmd) {
	if ok, next := m.trackerLoop.Accept(msg); ok {
		m.advance(msg.Time)
		return m, next
	}
	if ok, next := m.statusLoop.Accept(msg); ok {
		prev := m.status
		m.status = m.rotator.Next()
		if prev != m.status {
			m.log.Debug("agent status changed", "from", prev, "to", m.status)
		}
		return m, next
	}
	var fired bool
	if m.replyTimer, fired = m.replyTimer.Fire(msg); fired {
		m.deliverReply(msg.Time)
		return m, nil
	}
	if m.loadTimer, fired = m.loadTimer.Fire(msg); fired {
		m.loading = false
	}
	return m, nil
}

// advance runs one tracker tick and logs the executions it finished.
func (m *Model) advance(now time.Time) {
	for _, e := range m.board.Tick(now) {
		m.log.Info("tool execution finished", "id", e.ID, "name", e.Name, "state", e.State, "duration", e.Duration)
	}
	m.lastTick = now
	m.totalTicks++
	m.cursor = clamp(m.cursor, 0, max(m.board.Len()-1, 0))
}

func (m *Model) deliverReply(now time.Time) {
	reply, err := m.transcript.Deliver(now)
	if err != nil {
		m.log.Warn("reply timer fired without a pending message", "err", err)
		return
	}
	for _, name := range reply.Tools {
		e := m.board.Enqueue(name, execution.CategoryCloudService, now)
		m.log.Debug("tool execution queued", "id", e.ID, "name", e.Name)
	}
	m.log.Info("agent replied", "id", reply.ID, "tools", len(reply.Tools))
	m.refreshChat()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.ForceQuit):
		return m.quit()
	case key.Matches(msg, keys.NextTab):
		m.setTab(m.tab.next())
		return m, nil
	case key.Matches(msg, keys.PrevTab):
		m.setTab(m.tab.prev())
		return m, nil
	}

	if m.tab == TabChat {
		return m.handleChatKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m.quit()
	case key.Matches(msg, keys.Jump):
		if t, ok := tabFromKey(msg.String()); ok {
			m.setTab(t)
		}
	case key.Matches(msg, keys.Refresh):
		m.advance(m.now())
	case m.tab != TabTools:
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < m.board.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Invoke):
		m.invokeTool()
	case key.Matches(msg, keys.Fail):
		m.failSelected()
	}
	return m, nil
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Send):
		return m.send()
	case key.Matches(msg, keys.Scroll):
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) send() (tea.Model, tea.Cmd) {
	msg, err := m.transcript.Send(m.input.Value(), m.now())
	switch {
	case errors.Is(err, conversation.ErrEmptyMessage):
		return m, nil
	case errors.Is(err, conversation.ErrBusy):
		m.notice = "Agent is still processing the previous message"
		return m, nil
	case err != nil:
		m.notice = err.Error()
		return m, nil
	}
	m.notice = ""
	m.input.Reset()
	m.log.Info("message sent", "id", msg.ID, "chars", len(msg.Content))
	m.refreshChat()

	var cmd tea.Cmd
	m.replyTimer, cmd = m.replyTimer.Arm(m.cfg.ReplyDelay)
	return m, cmd
}

// simulatedTools is the pool the invoke key draws from.
var simulatedTools = []struct {
	name     string
	category execution.Category
}{
	{"CloudWatch Logs Insights", execution.CategoryCloudService},
	{"S3 Bucket Inventory", execution.CategoryCloudService},
	{"DynamoDB Capacity Scan", execution.CategoryDatabase},
	{"RDS Slow Query Report", execution.CategoryDatabase},
	{"Pricing API Lookup", execution.CategoryAPI},
	{"GitHub Deploy History", execution.CategoryAPI},
	{"Anomaly Detection Model", execution.CategoryComputation},
	{"Reserved Capacity Forecast", execution.CategoryComputation},
}

func (m *Model) invokeTool() {
	t := simulatedTools[m.rng.Intn(len(simulatedTools))]
	e := m.board.Enqueue(t.name, t.category, m.now())
	m.cursor = m.board.Len() - 1
	m.notice = "Queued " + e.Name
	m.log.Info("tool execution queued", "id", e.ID, "name", e.Name, "category", e.Category)
}

func (m *Model) failSelected() {
	execs := m.board.Snapshot()
	if m.cursor >= len(execs) {
		return
	}
	target := execs[m.cursor]
	failed, err := m.board.Fail(target.ID, "Tool raised an error: upstream service timed out", m.now())
	if err != nil {
		m.notice = "Cannot fail " + target.Name + ": " + string(target.State)
		m.log.Debug("fail rejected", "id", target.ID, "err", err)
		return
	}
	m.notice = "Failed " + failed.Name
	m.log.Warn("tool execution failed", "id", failed.ID, "name", failed.Name, "duration", failed.Duration)
	m.cursor = clamp(m.cursor, 0, max(m.board.Len()-1, 0))
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.stop()
	m.log.Info("dashboard stopped", "ticks", m.totalTicks)
	return m, tea.Quit
}

func (m *Model) setTab(t Tab) {
	m.tab = t
	m.notice = ""
	if t == TabChat {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// layout sizes the chat viewport and input to the main panel.
func (m *Model) layout() {
	w := m.mainWidth()
	m.input.Width = w - 4
	h := 12
	if m.height > 0 {
		h = max(m.height-14, 6)
	}
	m.chat.Width = w
	m.chat.Height = h
}

func (m Model) mainWidth() int {
	w := m.width
	if w == 0 {
		w = defaultWidth
	}
	return w - sidebarWidth - 4
}

func (m *Model) refreshChat() {
	m.chat.SetContent(m.renderTranscript(m.chat.Width))
	m.chat.GotoBottom()
}

// View renders the whole dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	w := m.width
	if w == 0 {
		w = defaultWidth
	}

	if m.loading {
		s := lipgloss.NewStyle().
			Width(w).Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorTitle)
		return s.Render(m.spinner.View() + "  Connecting to agent orchestration layer...")
	}

	var main string
	switch m.tab {
	case TabChat:
		main = m.renderChat(m.mainWidth())
	case TabTools:
		main = m.renderExecutions(m.mainWidth())
	case TabServices:
		main = m.renderServices(m.mainWidth())
	case TabMetrics:
		main = m.renderMetrics(m.mainWidth())
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSidebar(sidebarWidth),
		lipgloss.NewStyle().PaddingLeft(1).Render(main))

	sections := []string{
		m.renderHeader(w),
		m.renderTabs(w),
		body,
	}
	if m.notice != "" {
		sections = append(sections, m.styles.Notice.Render(" "+m.notice))
	}
	sections = append(sections, m.renderStatusBar(w))

	helpStyle := lipgloss.NewStyle().Foreground(colorDim).Width(w).Align(lipgloss.Center)
	sections = append(sections, helpStyle.Render(m.help.View(tabKeys{tab: m.tab})))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader(w int) string {
	title := m.styles.Title.Render("⚡ AI Agent Hub")
	sub := m.styles.Subtitle.Render("Simulated Bedrock & SageMaker AI agent")
	badge := lipgloss.NewStyle().
		Foreground(m.status.Color()).
		Bold(true).
		Render("● " + m.status.String())
	clock := m.styles.Muted.Render(m.now().Format("15:04:05"))

	left := title + "  " + sub
	right := badge + "  " + clock
	gap := w - lipgloss.Width(left) - lipgloss.Width(right) - 8
	if gap < 1 {
		gap = 1
	}
	return m.styles.Header.Width(w - 2).Render(left + strings.Repeat(" ", gap) + right)
}
