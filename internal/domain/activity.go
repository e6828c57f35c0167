package domain

// Activity is one extracurricular offering in the school directory. Name is
// the unique identifier and never changes after seeding. MaxParticipants is
// advertised capacity only and is not enforced. Participants holds student
// emails in signup order.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}
