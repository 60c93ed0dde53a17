package execution

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource replays increments in order, repeating the last one.
type fixedSource struct {
	steps []float64
	calls int
}

func (f *fixedSource) Increment() float64 {
	i := f.calls
	if i >= len(f.steps) {
		i = len(f.steps) - 1
	}
	f.calls++
	return f.steps[i]
}

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func running(progress float64) ToolExecution {
	return ToolExecution{ID: "r", Name: "query", Category: CategoryDatabase, State: StateRunning, Progress: progress, StartedAt: t0}
}

func TestAdvanceQueuedStartsRunning(t *testing.T) {
	tr := NewTracker(&fixedSource{steps: []float64{10}})
	out := tr.Advance([]ToolExecution{New("calc", CategoryComputation, t0)}, t0.Add(time.Second))

	require.Len(t, out, 1)
	assert.Equal(t, StateRunning, out[0].State)
	assert.Equal(t, StartProgress, out[0].Progress)
	assert.Empty(t, out[0].Result)
	assert.Empty(t, out[0].Error)
}

func TestAdvanceCompletesAfterThreeTicks(t *testing.T) {
	src := &fixedSource{steps: []float64{40, 40, 40}}
	tr := NewTracker(src)
	execs := []ToolExecution{running(0)}

	wantProgress := []float64{40, 80, 100}
	for tick, want := range wantProgress {
		now := t0.Add(time.Duration(tick+1) * time.Second)
		execs = tr.Advance(execs, now)
		assert.Equal(t, want, execs[0].Progress, "tick %d", tick+1)
		if tick < 2 {
			assert.Equal(t, StateRunning, execs[0].State)
			_, ok := execs[0].DurationMs()
			assert.False(t, ok)
		}
	}

	e := execs[0]
	assert.Equal(t, StateCompleted, e.State)
	assert.Equal(t, CompletionMessage, e.Result)
	assert.Empty(t, e.Error)
	ms, ok := e.DurationMs()
	require.True(t, ok)
	assert.Equal(t, int64(3000), ms)
	assert.Equal(t, 3, src.calls)
}

func TestAdvanceTerminalIsNoop(t *testing.T) {
	completed := running(0)
	completed.State = StateCompleted
	completed.Progress = 100
	completed.Duration = 2 * time.Second
	completed.Result = CompletionMessage

	failed := running(30)
	failed.State = StateFailed
	failed.Duration = time.Second
	failed.Error = "throttled"

	src := &fixedSource{steps: []float64{7}}
	tr := NewTracker(src)
	in := []ToolExecution{completed, failed}
	out := in
	for i := 0; i < 5; i++ {
		out = tr.Advance(out, t0.Add(time.Hour))
	}

	assert.Equal(t, in, out)
	assert.Zero(t, src.calls)
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	tr := NewTracker(&fixedSource{steps: []float64{10}})
	in := []ToolExecution{running(20), New("calc", CategoryComputation, t0)}
	_ = tr.Advance(in, t0)

	assert.Equal(t, 20.0, in[0].Progress)
	assert.Equal(t, StateQueued, in[1].State)
}

func TestAdvanceProgressMonotonicWithRandSource(t *testing.T) {
	tr := NewTracker(NewRandSource(42, MaxIncrement))
	execs := []ToolExecution{running(0), running(50), New("api", CategoryAPI, t0)}

	for tick := 1; tick <= 40; tick++ {
		next := tr.Advance(execs, t0.Add(time.Duration(tick)*time.Second))
		for i := range next {
			prev, cur := execs[i], next[i]
			assert.GreaterOrEqual(t, cur.Progress, prev.Progress)
			assert.LessOrEqual(t, cur.Progress, 100.0)
			if prev.State == StateRunning {
				assert.LessOrEqual(t, cur.Progress-prev.Progress, MaxIncrement)
			}
			if prev.State.Terminal() {
				assert.Equal(t, prev, cur)
			}
			assert.Equal(t, cur.State == StateCompleted, cur.Progress == 100)
		}
		execs = next
	}
	for _, e := range execs {
		assert.Equal(t, StateCompleted, e.State)
	}
}

func TestDurationSetOnce(t *testing.T) {
	tr := NewTracker(&fixedSource{steps: []float64{60}})
	execs := []ToolExecution{running(50)}

	execs = tr.Advance(execs, t0.Add(1500*time.Millisecond))
	require.Equal(t, StateCompleted, execs[0].State)
	first := execs[0].Duration

	execs = tr.Advance(execs, t0.Add(time.Minute))
	assert.Equal(t, first, execs[0].Duration)
	assert.Equal(t, 1500*time.Millisecond, first)
}

func TestRandSourceBounds(t *testing.T) {
	src := NewRandSource(7, 0)
	for i := 0; i < 1000; i++ {
		v := src.Increment()
		assert.Greater(t, v, 0.0)
		assert.LessOrEqual(t, v, MaxIncrement)
	}
}

func TestFail(t *testing.T) {
	tests := []struct {
		name    string
		exec    ToolExecution
		wantErr []error
	}{
		{name: "running", exec: running(30)},
		{name: "queued", exec: New("calc", CategoryComputation, t0), wantErr: []error{ErrNotRunning}},
		{
			name:    "completed",
			exec:    ToolExecution{State: StateCompleted, Progress: 100, Result: CompletionMessage},
			wantErr: []error{ErrNotRunning, ErrTerminal},
		},
		{
			name:    "failed",
			exec:    ToolExecution{State: StateFailed, Error: "boom"},
			wantErr: []error{ErrNotRunning, ErrTerminal},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Fail(tt.exec, "upstream timeout", t0.Add(4*time.Second))
			if len(tt.wantErr) > 0 {
				require.Error(t, err)
				for _, want := range tt.wantErr {
					assert.True(t, errors.Is(err, want), "want %v in %v", want, err)
				}
				assert.Equal(t, tt.exec, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StateFailed, got.State)
			assert.Equal(t, "upstream timeout", got.Error)
			assert.Empty(t, got.Result)
			assert.Equal(t, 30.0, got.Progress)
			assert.Equal(t, 4*time.Second, got.Duration)
		})
	}
}
