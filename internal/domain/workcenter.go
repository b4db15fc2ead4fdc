package domain

// WorkCenter is a named resource line that work orders are scheduled
// against. Centers are created at bootstrap and immutable afterwards;
// identity is the ID.
type WorkCenter struct {
	ID   string
	Name string
}
