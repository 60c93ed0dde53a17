package execution

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedShape(t *testing.T) {
	seed := Seed(t0)
	require.Len(t, seed, 3)

	assert.Equal(t, StateCompleted, seed[0].State)
	assert.Equal(t, 100.0, seed[0].Progress)
	assert.NotEmpty(t, seed[0].Result)
	assert.Equal(t, StateRunning, seed[1].State)
	assert.Equal(t, 65.0, seed[1].Progress)
	assert.Equal(t, StateQueued, seed[2].State)

	ids := map[string]bool{}
	for _, e := range seed {
		ids[e.ID] = true
	}
	assert.Len(t, ids, 3)
}

func TestBoardTickReportsFinished(t *testing.T) {
	b := NewBoard(NewTracker(&fixedSource{steps: []float64{40}}), Seed(t0), 0)

	finished := b.Tick(t0.Add(time.Second))
	require.Len(t, finished, 1)
	assert.Equal(t, "Lambda Performance Query", finished[0].Name)
	assert.Equal(t, 46*time.Second, finished[0].Duration)

	snap := b.Snapshot()
	assert.Equal(t, StateRunning, snap[2].State)
	assert.Equal(t, StartProgress, snap[2].Progress)

	assert.Empty(t, b.Tick(t0.Add(2*time.Second)))
}

func TestBoardSnapshotIsCopy(t *testing.T) {
	b := NewBoard(NewTracker(&fixedSource{steps: []float64{1}}), Seed(t0), 0)
	snap := b.Snapshot()
	snap[0].Name = "changed"
	assert.NotEqual(t, "changed", b.Snapshot()[0].Name)
}

func TestBoardEnqueueAndFail(t *testing.T) {
	b := NewBoard(NewTracker(&fixedSource{steps: []float64{10}}), nil, 0)
	e := b.Enqueue("Bedrock Claude", CategoryCloudService, t0)
	assert.Equal(t, StateQueued, e.State)
	assert.Equal(t, 1, b.Len())

	_, err := b.Fail(e.ID, "boom", t0)
	assert.ErrorIs(t, err, ErrNotRunning)

	b.Tick(t0.Add(time.Second))
	failed, err := b.Fail(e.ID, "boom", t0.Add(2*time.Second))
	require.NoError(t, err)
	assert.Equal(t, StateFailed, failed.State)
	assert.Equal(t, StateFailed, b.Snapshot()[0].State)

	_, err = b.Fail("missing", "boom", t0)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, map[State]int{StateFailed: 1}, b.Counts())
}

func TestBoardRetentionEvictsOldestTerminal(t *testing.T) {
	seed := []ToolExecution{
		{ID: "a", State: StateCompleted, Progress: 100, Result: CompletionMessage},
		{ID: "b", State: StateRunning, Progress: 90, StartedAt: t0},
		{ID: "c", State: StateFailed, Error: "boom"},
		{ID: "d", State: StateQueued, StartedAt: t0},
	}
	b := NewBoard(NewTracker(&fixedSource{steps: []float64{15}}), seed, 2)

	b.Tick(t0.Add(time.Second))

	var ids []string
	for _, e := range b.Snapshot() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"b", "c", "d"}, ids)
	assert.Equal(t, 2, b.Counts()[StateCompleted]+b.Counts()[StateFailed])
}

func TestBoardRetentionDisabled(t *testing.T) {
	seed := []ToolExecution{
		{ID: "a", State: StateCompleted, Progress: 100, Result: CompletionMessage},
		{ID: "b", State: StateFailed, Error: "boom"},
	}
	b := NewBoard(NewTracker(&fixedSource{steps: []float64{1}}), seed, 0)
	b.Tick(t0)
	assert.Equal(t, 2, b.Len())
}
