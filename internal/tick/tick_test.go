package tick

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestLoopTicksUntilStopped(t *testing.T) {
	clock := &Manual{Now: t0}
	loop := NewLoop("tracker", time.Second, clock)
	assert.False(t, loop.Active())

	loop, cmd := loop.Start()
	require.NotNil(t, cmd)
	msg := cmd().(Msg)
	assert.Equal(t, "tracker", msg.ID)
	assert.Equal(t, t0.Add(time.Second), msg.Time)

	ok, next := loop.Accept(msg)
	require.True(t, ok)
	require.NotNil(t, next)
	msg = next().(Msg)
	assert.Equal(t, t0.Add(2*time.Second), msg.Time)

	loop = loop.Stop()
	ok, next = loop.Accept(msg)
	assert.False(t, ok)
	assert.Nil(t, next)
}

func TestLoopIgnoresStaleAndForeignTicks(t *testing.T) {
	clock := &Manual{Now: t0}
	loop := NewLoop("tracker", time.Second, clock)

	loop, cmd := loop.Start()
	stale := cmd().(Msg)

	loop = loop.Stop()
	loop, cmd = loop.Start()
	fresh := cmd().(Msg)

	ok, _ := loop.Accept(stale)
	assert.False(t, ok)
	ok, _ = loop.Accept(Msg{ID: "status", Tag: fresh.Tag})
	assert.False(t, ok)
	ok, _ = loop.Accept(fresh)
	assert.True(t, ok)
}

func TestTimerFiresOnce(t *testing.T) {
	clock := &Manual{Now: t0}
	timer := NewTimer("reply", clock)

	timer, cmd := timer.Arm(2 * time.Second)
	assert.True(t, timer.Pending())
	msg := cmd().(Msg)
	assert.Equal(t, t0.Add(2*time.Second), msg.Time)

	timer, fired := timer.Fire(msg)
	assert.True(t, fired)
	assert.False(t, timer.Pending())

	_, fired = timer.Fire(msg)
	assert.False(t, fired)
}

func TestTimerCancel(t *testing.T) {
	timer := NewTimer("reply", &Manual{Now: t0})
	timer, cmd := timer.Arm(time.Second)
	msg := cmd().(Msg)

	timer = timer.Cancel()
	_, fired := timer.Fire(msg)
	assert.False(t, fired)
}

func TestRealProviderReturnsCommand(t *testing.T) {
	assert.NotNil(t, Real{}.After(time.Millisecond, func(time.Time) tea.Msg { return nil }))
}
