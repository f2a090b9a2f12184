package domain

// Feedback is a visitor-submitted rating for a doctor.
type Feedback struct {
	ID       int64
	Name     string
	Email    string
	Phone    string
	Doctor   string
	Rating   int
	Comments string
}
