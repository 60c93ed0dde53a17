package execution

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies what kind of work a tool execution performs.
type Category string

const (
	CategoryAPI          Category = "api"
	CategoryDatabase     Category = "database"
	CategoryComputation  Category = "computation"
	CategoryCloudService Category = "cloud_service"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryAPI, CategoryDatabase, CategoryComputation, CategoryCloudService}

// State is the lifecycle position of a tool execution.
type State string

const (
	StateQueued    State = "queued"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

// Terminal reports whether no further transitions can leave s.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}

// ToolExecution is one simulated unit of tool or API work.
type ToolExecution struct {
	ID        string
	Name      string
	Category  Category
	State     State
	Progress  float64 // 0-100
	StartedAt time.Time
	Duration  time.Duration // zero until terminal
	Result    string
	Error     string
}

// New creates a queued execution started at now.
func New(name string, category Category, now time.Time) ToolExecution {
	return ToolExecution{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  category,
		State:     StateQueued,
		StartedAt: now,
	}
}

// DurationMs returns the elapsed time in milliseconds and whether it is set.
func (e ToolExecution) DurationMs() (int64, bool) {
	if !e.State.Terminal() {
		return 0, false
	}
	return e.Duration.Milliseconds(), true
}

// Seed returns the executions the dashboard starts with.
func Seed(now time.Time) []ToolExecution {
	return []ToolExecution{
		{
			ID:        uuid.NewString(),
			Name:      "CloudWatch Metrics Analysis",
			Category:  CategoryCloudService,
			State:     StateCompleted,
			Progress:  100,
			StartedAt: now.Add(-5 * time.Minute),
			Duration:  2400 * time.Millisecond,
			Result:    "Analyzed 847 data points, identified 3 optimization opportunities",
		},
		{
			ID:        uuid.NewString(),
			Name:      "Lambda Performance Query",
			Category:  CategoryDatabase,
			State:     StateRunning,
			Progress:  65,
			StartedAt: now.Add(-45 * time.Second),
		},
		New("Cost Optimization Calculator", CategoryComputation, now),
	}
}
