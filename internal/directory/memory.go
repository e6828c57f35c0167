// Package directory provides the activity roster stores.
package directory

import (
	"context"
	"sync"

	"github.com/mattOd80/skills-getting-started-with-github-copilot/internal/domain"
)

// InMemoryDirectory keeps the activity roster in process memory. It is the
// default store and seeds itself with the school's catalog on construction.
// A single directory-wide mutex guards all state.
type InMemoryDirectory struct {
	mu     sync.RWMutex
	names  []string
	byName map[string]*domain.Activity
}

// NewInMemoryDirectory constructs a directory populated with the seed catalog.
func NewInMemoryDirectory() *InMemoryDirectory {
	d := &InMemoryDirectory{byName: make(map[string]*domain.Activity)}
	d.seed()
	return d
}

func (d *InMemoryDirectory) seed() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, activity := range seedActivities() {
		record := activity
		d.names = append(d.names, record.Name)
		d.byName[record.Name] = &record
	}
}

// List returns a snapshot of every activity in seed order.
func (d *InMemoryDirectory) List(ctx context.Context) ([]domain.Activity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]domain.Activity, 0, len(d.names))
	for _, name := range d.names {
		out = append(out, snapshot(d.byName[name]))
	}
	return out, nil
}

// AddParticipant appends email to the activity roster unless it is already present.
func (d *InMemoryDirectory) AddParticipant(ctx context.Context, activityName, email string) (domain.Activity, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	record, ok := d.byName[activityName]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	for _, participant := range record.Participants {
		if participant == email {
			return domain.Activity{}, domain.ErrAlreadyRegistered
		}
	}

	record.Participants = append(record.Participants, email)
	return snapshot(record), nil
}

// RemoveParticipant removes email from the activity roster, preserving the
// order of the remaining participants.
func (d *InMemoryDirectory) RemoveParticipant(ctx context.Context, activityName, email string) (domain.Activity, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	record, ok := d.byName[activityName]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	for i, participant := range record.Participants {
		if participant == email {
			record.Participants = append(record.Participants[:i], record.Participants[i+1:]...)
			return snapshot(record), nil
		}
	}
	return domain.Activity{}, domain.ErrNotRegistered
}

// snapshot copies a record so callers never alias directory state.
func snapshot(record *domain.Activity) domain.Activity {
	out := *record
	out.Participants = make([]string, len(record.Participants))
	copy(out.Participants, record.Participants)
	return out
}
