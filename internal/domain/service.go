// Package domain defines the business logic for the activity directory service.
package domain

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/mattOd80/skills-getting-started-with-github-copilot/internal/events"
	"github.com/mattOd80/skills-getting-started-with-github-copilot/internal/observability"
)

var (
	// ErrActivityNotFound is returned when no activity exists under the given name.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered is returned when the student is already on the roster.
	ErrAlreadyRegistered = errors.New("student already signed up")
	// ErrNotRegistered is returned when the student is not on the roster.
	ErrNotRegistered = errors.New("student not signed up")
)

// Directory captures the operations a roster store must provide. List returns
// activities in directory order; both mutations return the post-change
// snapshot of the affected activity.
type Directory interface {
	List(ctx context.Context) ([]Activity, error)
	AddParticipant(ctx context.Context, activityName, email string) (Activity, error)
	RemoveParticipant(ctx context.Context, activityName, email string) (Activity, error)
}

// Service orchestrates signup workflows on top of a Directory.
type Service struct {
	directory Directory
	publisher events.Publisher
}

// NewService constructs a Service. A nil publisher disables roster events.
func NewService(directory Directory, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Service{directory: directory, publisher: publisher}
}

// ListActivities returns a snapshot of every activity in directory order.
func (s *Service) ListActivities(ctx context.Context) ([]Activity, error) {
	return s.directory.List(ctx)
}

// SignUp adds a student email to the activity roster and emits roster.signed_up.
func (s *Service) SignUp(ctx context.Context, activityName, email string) error {
	activity, err := s.directory.AddParticipant(ctx, activityName, email)
	if err != nil {
		return err
	}

	observability.RecordSignup(activity.Name, len(activity.Participants))
	s.emit(ctx, events.Event{
		Type:         events.TypeStudentSignedUp,
		PartitionKey: activity.Name,
		Payload: events.StudentSignedUp{
			EventID:         uuid.NewString(),
			Activity:        activity.Name,
			Email:           email,
			RosterSize:      len(activity.Participants),
			MaxParticipants: activity.MaxParticipants,
			OccurredAt:      time.Now().UTC(),
		},
	})
	return nil
}

// Unregister removes a student email from the activity roster and emits
// roster.unregistered.
func (s *Service) Unregister(ctx context.Context, activityName, email string) error {
	activity, err := s.directory.RemoveParticipant(ctx, activityName, email)
	if err != nil {
		return err
	}

	observability.RecordUnregistration(activity.Name, len(activity.Participants))
	s.emit(ctx, events.Event{
		Type:         events.TypeStudentUnregistered,
		PartitionKey: activity.Name,
		Payload: events.StudentUnregistered{
			EventID:         uuid.NewString(),
			Activity:        activity.Name,
			Email:           email,
			RosterSize:      len(activity.Participants),
			MaxParticipants: activity.MaxParticipants,
			OccurredAt:      time.Now().UTC(),
		},
	})
	return nil
}

// emit delivers the event best effort. The roster mutation is already
// committed, so a stream outage must not surface to the caller.
func (s *Service) emit(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("roster event publish failed (event_type=%s, activity=%s): %v", event.Type, event.PartitionKey, err)
	}
}
