package conversation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser   Role = "user"
	RoleAgent  Role = "agent"
	RoleSystem Role = "system"
)

var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrBusy           = errors.New("agent is still processing the previous message")
	ErrNothingPending = errors.New("no reply pending")
)

// Message is one entry in the agent conversation.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
	Tools     []string
	Reasoning string
}

// Reply is the scripted agent answer to every user message.
var Reply = Message{
	Role:      RoleAgent,
	Content:   "I'm processing your request using Amazon Bedrock's reasoning capabilities. Let me analyze the data and provide you with actionable insights.",
	Tools:     []string{"Bedrock Claude", "SageMaker AI", "AWS API"},
	Reasoning: "Analyzing user request, gathering relevant data from AWS services, applying machine learning models for optimization recommendations.",
}

// Transcript holds the conversation and whether a reply is outstanding.
type Transcript struct {
	messages   []Message
	processing bool
}

func NewTranscript(seed []Message) *Transcript {
	msgs := make([]Message, len(seed))
	copy(msgs, seed)
	return &Transcript{messages: msgs}
}

// Messages returns a copy of the transcript in order.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Transcript) Len() int { return len(t.messages) }

// Processing reports whether the agent owes a reply.
func (t *Transcript) Processing() bool { return t.processing }

// Send appends a user message and marks the agent as processing.
func (t *Transcript) Send(text string, now time.Time) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmptyMessage
	}
	if t.processing {
		return Message{}, ErrBusy
	}
	msg := Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Content:   text,
		Timestamp: now,
	}
	t.messages = append(t.messages, msg)
	t.processing = true
	return msg, nil
}

// Deliver appends the scripted agent reply for the pending message.
func (t *Transcript) Deliver(now time.Time) (Message, error) {
	if !t.processing {
		return Message{}, ErrNothingPending
	}
	msg := Reply
	msg.ID = uuid.NewString()
	msg.Timestamp = now
	msg.Tools = append([]string(nil), Reply.Tools...)
	t.messages = append(t.messages, msg)
	t.processing = false
	return msg, nil
}

// Seed returns the opening conversation, back-dated from now.
func Seed(now time.Time) []Message {
	return []Message{
		{
			ID:        uuid.NewString(),
			Role:      RoleSystem,
			Content:   "AWS AI Agent initialized with Bedrock and SageMaker AI connectivity.",
			Timestamp: now.Add(-5 * time.Minute),
		},
		{
			ID:        uuid.NewString(),
			Role:      RoleUser,
			Content:   "Analyze the performance metrics from our Lambda functions and suggest optimizations.",
			Timestamp: now.Add(-4 * time.Minute),
		},
		{
			ID:   uuid.NewString(),
			Role: RoleAgent,
			Content: "I'll analyze your Lambda performance metrics. Based on the data from CloudWatch, I found several optimization opportunities:\n\n" +
				"1. Memory allocation can be optimized for functions with < 50% utilization\n" +
				"2. Cold start times can be reduced by implementing provisioned concurrency\n" +
				"3. Three functions show timeout patterns that suggest async operations could be optimized",
			Timestamp: now.Add(-3 * time.Minute),
			Tools:     []string{"CloudWatch API", "Lambda Analytics", "Cost Calculator"},
			Reasoning: "Analyzed CloudWatch metrics, identified patterns in execution times and memory usage, cross-referenced with cost optimization best practices.",
		},
	}
}
