// Package tick schedules the periodic and one-shot timers that drive the
// dashboard, behind a Provider so tests never wait on the wall clock.
package tick

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Provider turns a delay into a BubbleTea command that later yields a message.
type Provider interface {
	After(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd
}

// Real schedules through tea.Tick.
type Real struct{}

func (Real) After(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return tea.Tick(d, fn)
}

// Manual fires immediately with a clock it advances by each requested delay.
// It is meant for tests and single-frame renders.
type Manual struct {
	Now time.Time
}

func (m *Manual) After(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		m.Now = m.Now.Add(d)
		return fn(m.Now)
	}
}

// Msg is delivered when a loop or timer fires.
type Msg struct {
	ID   string
	Tag  int
	Time time.Time
}

// Loop is a restartable periodic timer. Only the message carrying the
// current tag is honoured, so a stopped loop never fires again even if a
// tick was already in flight.
type Loop struct {
	id       string
	period   time.Duration
	provider Provider
	tag      int
	active   bool
}

func NewLoop(id string, period time.Duration, provider Provider) Loop {
	return Loop{id: id, period: period, provider: provider}
}

func (l Loop) ID() string { return l.id }
func (l Loop) Period() time.Duration { return l.period }
func (l Loop) Active() bool { return l.active }

// Start activates the loop and schedules its first tick.
func (l Loop) Start() (Loop, tea.Cmd) {
	l.tag++
	l.active = true
	return l, l.schedule()
}

// Stop deactivates the loop and invalidates any pending tick.
func (l Loop) Stop() Loop {
	l.tag++
	l.active = false
	return l
}

// Accept reports whether msg is this loop's current tick and, if so,
// returns the command for the next one.
func (l Loop) Accept(msg Msg) (bool, tea.Cmd) {
	if !l.active || msg.ID != l.id || msg.Tag != l.tag {
		return false, nil
	}
	return true, l.schedule()
}

func (l Loop) schedule() tea.Cmd {
	id, tag := l.id, l.tag
	return l.provider.After(l.period, func(t time.Time) tea.Msg {
		return Msg{ID: id, Tag: tag, Time: t}
	})
}

// Timer is a one-shot timer with the same cancellation rules as Loop.
type Timer struct {
	id       string
	provider Provider
	tag      int
	pending  bool
}

func NewTimer(id string, provider Provider) Timer {
	return Timer{id: id, provider: provider}
}

func (t Timer) Pending() bool { return t.pending }

// Arm schedules the timer to fire after d, replacing any pending firing.
func (t Timer) Arm(d time.Duration) (Timer, tea.Cmd) {
	t.tag++
	t.pending = true
	id, tag := t.id, t.tag
	return t, t.provider.After(d, func(now time.Time) tea.Msg {
		return Msg{ID: id, Tag: tag, Time: now}
	})
}

// Cancel drops any pending firing.
func (t Timer) Cancel() Timer {
	t.tag++
	t.pending = false
	return t
}

// Fire reports whether msg is the pending firing, and disarms the timer if so.
func (t Timer) Fire(msg Msg) (Timer, bool) {
	if !t.pending || msg.ID != t.id || msg.Tag != t.tag {
		return t, false
	}
	t.pending = false
	return t, true
}
