package execution

import (
	"fmt"
	"time"
)

// Board owns the execution collection shown on the dashboard. It is not safe
// for concurrent use; the UI loop is its only writer.
type Board struct {
	tracker   *Tracker
	execs     []ToolExecution
	retention int
}

// NewBoard creates a board holding seed. retention caps how many terminal
// executions are kept; 0 keeps them all.
func NewBoard(tracker *Tracker, seed []ToolExecution, retention int) *Board {
	execs := make([]ToolExecution, len(seed))
	copy(execs, seed)
	return &Board{tracker: tracker, execs: execs, retention: retention}
}

// Snapshot returns a copy of the collection in insertion order.
func (b *Board) Snapshot() []ToolExecution {
	out := make([]ToolExecution, len(b.execs))
	copy(out, b.execs)
	return out
}

func (b *Board) Len() int { return len(b.execs) }

// Tick advances every execution and returns the ones that finished on this tick.
func (b *Board) Tick(now time.Time) []ToolExecution {
	next := b.tracker.Advance(b.execs, now)
	var finished []ToolExecution
	for i := range next {
		if next[i].State.Terminal() && !b.execs[i].State.Terminal() {
			finished = append(finished, next[i])
		}
	}
	b.execs = next
	b.evict()
	return finished
}

// Enqueue appends a new queued execution and returns it.
func (b *Board) Enqueue(name string, category Category, now time.Time) ToolExecution {
	e := New(name, category, now)
	b.execs = append(b.execs, e)
	return e
}

// Fail injects a failure into the running execution with the given id.
func (b *Board) Fail(id, reason string, now time.Time) (ToolExecution, error) {
	for i := range b.execs {
		if b.execs[i].ID != id {
			continue
		}
		failed, err := Fail(b.execs[i], reason, now)
		if err != nil {
			return b.execs[i], err
		}
		b.execs[i] = failed
		b.evict()
		return failed, nil
	}
	return ToolExecution{}, fmt.Errorf("fail %s: %w", id, ErrNotFound)
}

// Counts returns the number of executions in each state.
func (b *Board) Counts() map[State]int {
	counts := make(map[State]int, 4)
	for _, e := range b.execs {
		counts[e.State]++
	}
	return counts
}

// evict drops the oldest terminal executions beyond the retention cap.
func (b *Board) evict() {
	if b.retention <= 0 {
		return
	}
	terminal := 0
	for _, e := range b.execs {
		if e.State.Terminal() {
			terminal++
		}
	}
	drop := terminal - b.retention
	if drop <= 0 {
		return
	}
	kept := make([]ToolExecution, 0, len(b.execs)-drop)
	for _, e := range b.execs {
		if drop > 0 && e.State.Terminal() {
			drop--
			continue
		}
		kept = append(kept, e)
	}
	b.execs = kept
}
