package execution

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const (
	// StartProgress is the progress a queued execution starts running at.
	StartProgress = 5.0
	// MaxIncrement bounds a single tick's progress increase.
	MaxIncrement = 15.0
	// CompletionMessage is recorded as the result of every completed execution.
	CompletionMessage = "Process completed successfully"
)

var (
	ErrNotRunning = errors.New("execution is not running")
	ErrTerminal   = errors.New("execution already finished")
	ErrNotFound   = errors.New("execution not found")
)

// Source yields the progress increment for one tick of a running execution.
// Values must lie in (0, MaxIncrement].
type Source interface {
	Increment() float64
}

// RandSource draws increments uniformly from (0, Max].
type RandSource struct {
	rng *rand.Rand
	max float64
}

// NewRandSource returns a Source seeded with seed. A non-positive max uses MaxIncrement.
func NewRandSource(seed int64, max float64) *RandSource {
	if max <= 0 || max > MaxIncrement {
		max = MaxIncrement
	}
	return &RandSource{rng: rand.New(rand.NewSource(seed)), max: max}
}

func (s *RandSource) Increment() float64 {
	// Float64 is in [0,1); flipping it keeps zero out of the range.
	return s.max * (1 - s.rng.Float64())
}

// Tracker advances tool executions through their lifecycle one tick at a time.
type Tracker struct {
	src Source
}

func NewTracker(src Source) *Tracker {
	return &Tracker{src: src}
}

// Advance returns the collection after one tick at time now. The input is not modified.
func (t *Tracker) Advance(execs []ToolExecution, now time.Time) []ToolExecution {
	out := make([]ToolExecution, len(execs))
	for i, e := range execs {
		out[i] = t.step(e, now)
	}
	return out
}

func (t *Tracker) step(e ToolExecution, now time.Time) ToolExecution {
	switch e.State {
	case StateQueued:
		e.State = StateRunning
		e.Progress = StartProgress
	case StateRunning:
		if e.Progress >= 100 {
			return e
		}
		next := e.Progress + t.src.Increment()
		if next < 100 {
			e.Progress = next
			return e
		}
		e.Progress = 100
		e.State = StateCompleted
		e.Duration = now.Sub(e.StartedAt)
		e.Result = CompletionMessage
	}
	return e
}

// Fail moves a running execution to failed with reason as its error.
func Fail(e ToolExecution, reason string, now time.Time) (ToolExecution, error) {
	if e.State.Terminal() {
		return e, fmt.Errorf("fail %s: %w: %w", e.ID, ErrNotRunning, ErrTerminal)
	}
	if e.State != StateRunning {
		return e, fmt.Errorf("fail %s (%s): %w", e.ID, e.State, ErrNotRunning)
	}
	e.State = StateFailed
	e.Duration = now.Sub(e.StartedAt)
	e.Error = reason
	return e, nil
}
