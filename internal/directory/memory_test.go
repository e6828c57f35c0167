package directory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/mattOd80/skills-getting-started-with-github-copilot/internal/domain"
)

func TestSeedCatalog(t *testing.T) {
	store := NewInMemoryDirectory()

	activities, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(activities) != 9 {
		t.Fatalf("expected 9 seeded activities got %d", len(activities))
	}
	if activities[0].Name != "Chess Club" {
		t.Fatalf("expected Chess Club first got %q", activities[0].Name)
	}
	if activities[8].Name != "Science Club" {
		t.Fatalf("expected Science Club last got %q", activities[8].Name)
	}

	chess := activities[0]
	if chess.MaxParticipants != 12 {
		t.Fatalf("unexpected max participants %d", chess.MaxParticipants)
	}
	if len(chess.Participants) != 2 || chess.Participants[0] != "michael@mergington.edu" {
		t.Fatalf("unexpected seed roster %v", chess.Participants)
	}
}

func TestAddParticipant(t *testing.T) {
	store := NewInMemoryDirectory()

	activity, err := store.AddParticipant(context.Background(), "Math Team", "pythagoras@mergington.edu")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(activity.Participants) != 3 {
		t.Fatalf("expected 3 participants got %v", activity.Participants)
	}
	if activity.Participants[2] != "pythagoras@mergington.edu" {
		t.Fatalf("new participant not appended: %v", activity.Participants)
	}

	activities, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, listed := range activities {
		if listed.Name == "Math Team" && len(listed.Participants) != 3 {
			t.Fatalf("listing does not reflect the signup: %v", listed.Participants)
		}
	}
}

func TestAddParticipantUnknownActivity(t *testing.T) {
	store := NewInMemoryDirectory()

	_, err := store.AddParticipant(context.Background(), "Underwater Basket Weaving", "student@mergington.edu")
	if !errors.Is(err, domain.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound got %v", err)
	}
}

func TestAddParticipantDuplicate(t *testing.T) {
	store := NewInMemoryDirectory()

	_, err := store.AddParticipant(context.Background(), "Chess Club", "daniel@mergington.edu")
	if !errors.Is(err, domain.ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered got %v", err)
	}
}

func TestRemoveParticipant(t *testing.T) {
	store := NewInMemoryDirectory()

	activity, err := store.RemoveParticipant(context.Background(), "Programming Class", "emma@mergington.edu")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(activity.Participants) != 1 || activity.Participants[0] != "sophia@mergington.edu" {
		t.Fatalf("unexpected roster after removal: %v", activity.Participants)
	}
}

func TestRemoveParticipantPreservesOrder(t *testing.T) {
	store := NewInMemoryDirectory()
	ctx := context.Background()

	for _, email := range []string{"a@mergington.edu", "b@mergington.edu", "c@mergington.edu"} {
		if _, err := store.AddParticipant(ctx, "Art Studio", email); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	activity, err := store.RemoveParticipant(ctx, "Art Studio", "b@mergington.edu")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	want := []string{"amelia@mergington.edu", "lucas@mergington.edu", "a@mergington.edu", "c@mergington.edu"}
	if len(activity.Participants) != len(want) {
		t.Fatalf("unexpected roster %v", activity.Participants)
	}
	for i := range want {
		if activity.Participants[i] != want[i] {
			t.Fatalf("order not preserved: got %v want %v", activity.Participants, want)
		}
	}
}

func TestRemoveParticipantNotRegistered(t *testing.T) {
	store := NewInMemoryDirectory()

	_, err := store.RemoveParticipant(context.Background(), "Chess Club", "ghost@mergington.edu")
	if !errors.Is(err, domain.ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered got %v", err)
	}
}

func TestRemoveParticipantUnknownActivity(t *testing.T) {
	store := NewInMemoryDirectory()

	_, err := store.RemoveParticipant(context.Background(), "Underwater Basket Weaving", "student@mergington.edu")
	if !errors.Is(err, domain.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound got %v", err)
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	store := NewInMemoryDirectory()
	ctx := context.Background()

	activities, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	activities[0].Participants[0] = "tampered@mergington.edu"

	again, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if again[0].Participants[0] != "michael@mergington.edu" {
		t.Fatalf("stored roster mutated through a snapshot: %v", again[0].Participants)
	}
}

func TestConcurrentSignups(t *testing.T) {
	store := NewInMemoryDirectory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("student%02d@mergington.edu", i)
			if _, err := store.AddParticipant(ctx, "Gym Class", email); err != nil {
				t.Errorf("add %s failed: %v", email, err)
			}
		}(i)
	}
	wg.Wait()

	activities, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, activity := range activities {
		if activity.Name == "Gym Class" && len(activity.Participants) != 34 {
			t.Fatalf("expected 34 participants got %d", len(activity.Participants))
		}
	}
}

func TestConcurrentDuplicateSignups(t *testing.T) {
	store := NewInMemoryDirectory()
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.AddParticipant(ctx, "Soccer Club", "keeper@mergington.edu")
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
				return
			}
			if !errors.Is(err, domain.ErrAlreadyRegistered) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Fatalf("expected exactly one winning signup got %d", successes)
	}
}
