package agent

import (
	"math/rand"

	"github.com/charmbracelet/lipgloss"
)

// Status is the headline state of the agent shown in the dashboard header.
type Status int

const (
	StatusActive Status = iota
	StatusProcessing
	StatusIdle
	StatusError
)

var (
	colorActive     = lipgloss.Color("#9ece6a")
	colorProcessing = lipgloss.Color("#e0af68")
	colorIdle       = lipgloss.Color("#565f89")
	colorError      = lipgloss.Color("#f7768e")
)

func (s Status) String() string {
	return [...]string{"Active", "Processing", "Idle", "Error"}[s]
}

func (s Status) Color() lipgloss.Color {
	return [...]lipgloss.Color{colorActive, colorProcessing, colorIdle, colorError}[s]
}

// Intn is the subset of *rand.Rand the rotator needs.
type Intn interface {
	Intn(n int) int
}

// rotation excludes StatusError: the simulation never reports a faulted agent.
var rotation = []Status{StatusActive, StatusProcessing, StatusIdle}

// Rotator picks the next simulated agent status.
type Rotator struct {
	rng Intn
}

func NewRotator(rng Intn) *Rotator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Rotator{rng: rng}
}

func (r *Rotator) Next() Status {
	return rotation[r.rng.Intn(len(rotation))]
}
