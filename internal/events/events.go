// Package events publishes roster change facts to Kafka for downstream consumers.
package events

import (
	"context"
	"time"
)

const (
	// TypeStudentSignedUp marks a student joining an activity roster.
	TypeStudentSignedUp = "roster.signed_up"
	// TypeStudentUnregistered marks a student leaving an activity roster.
	TypeStudentUnregistered = "roster.unregistered"
)

// StudentSignedUp is the payload emitted after a signup is committed.
type StudentSignedUp struct {
	EventID         string    `json:"event_id"`
	Activity        string    `json:"activity"`
	Email           string    `json:"email"`
	RosterSize      int       `json:"roster_size"`
	MaxParticipants int       `json:"max_participants"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// StudentUnregistered is the payload emitted after an unregistration is committed.
type StudentUnregistered struct {
	EventID         string    `json:"event_id"`
	Activity        string    `json:"activity"`
	Email           string    `json:"email"`
	RosterSize      int       `json:"roster_size"`
	MaxParticipants int       `json:"max_participants"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// Event couples a roster fact with its stream routing metadata. PartitionKey
// is the activity name so one activity's history stays ordered within a
// single partition.
type Event struct {
	Type         string
	PartitionKey string
	Payload      any
}

// Publisher delivers roster events to the event stream.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NoopPublisher drops every event. It stands in when no brokers are configured.
type NoopPublisher struct{}

// Publish implements Publisher.
func (NoopPublisher) Publish(context.Context, Event) error { return nil }
