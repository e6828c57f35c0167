package directory

import (
	"github.com/mattOd80/skills-getting-started-with-github-copilot/internal/domain"
)

// seedActivities returns the school's initial extracurricular catalog. The
// directory lists activities in this order, so the order here is part of the
// API contract.
func seedActivities() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Soccer Club",
			Description:     "Team soccer practice and friendly matches",
			Schedule:        "Tuesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"liam@mergington.edu", "ava@mergington.edu"},
		},
		{
			Name:            "Track and Field",
			Description:     "Running, jumping, and throwing events training",
			Schedule:        "Thursdays, 3:45 PM - 5:15 PM",
			MaxParticipants: 25,
			Participants:    []string{"noah@mergington.edu", "mia@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Explore drawing, painting, and mixed media techniques",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"amelia@mergington.edu", "lucas@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Acting workshops and stage production practice",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"harper@mergington.edu", "elijah@mergington.edu"},
		},
		{
			Name:            "Math Team",
			Description:     "Problem-solving practice and competition prep",
			Schedule:        "Thursdays, 4:00 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"isabella@mergington.edu", "james@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Hands-on experiments and STEM challenges",
			Schedule:        "Wednesdays, 4:00 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"charlotte@mergington.edu", "benjamin@mergington.edu"},
		},
	}
}
