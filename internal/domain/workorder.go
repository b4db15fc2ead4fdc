package domain

// WorkOrderStatus is the lifecycle state of a work order. The core does not
// enforce transition rules; any status may be set by the editing surface.
type WorkOrderStatus string

const (
	StatusOpen       WorkOrderStatus = "open"
	StatusInProgress WorkOrderStatus = "in-progress"
	StatusComplete   WorkOrderStatus = "complete"
	StatusBlocked    WorkOrderStatus = "blocked"
)

// Valid reports whether s is one of the known statuses.
func (s WorkOrderStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusComplete, StatusBlocked:
		return true
	}
	return false
}

// WorkOrder is a named, time-boxed task assigned to exactly one work center.
// StartDate <= EndDate is enforced by the editing surface before a work
// order reaches the store; the store only re-checks overlap.
type WorkOrder struct {
	ID           string
	WorkCenterID string
	Status       WorkOrderStatus
	Name         string
	StartDate    Date
	EndDate      Date
}

// Overlaps reports whether the closed interval [start, end] intersects the
// work order's own interval, treating dates as instants at UTC midnight.
// Touching endpoints count: an order ending on day N conflicts with one
// starting on day N.
func (w WorkOrder) Overlaps(start, end Date) bool {
	return start.Compare(w.EndDate) <= 0 && end.Compare(w.StartDate) >= 0
}
