package domain

import "errors"

var (
	// ErrEndBeforeStart is returned when a draft's end date precedes its start date.
	ErrEndBeforeStart = errors.New("end date must not be before start date")

	// ErrOverlap is returned when a draft's interval conflicts with an
	// existing work order on the same work center.
	ErrOverlap = errors.New("schedule overlaps an existing work order on this work center")
)
