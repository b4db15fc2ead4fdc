package ports

import (
	"context"

	"work-scheduler-service/internal/domain"
)

// Port: a boundary for reading and mutating the scheduled work collections.
//
// The in-memory adapter never fails, but the contract carries errors so that
// other backings remain possible without changing callers.
type ScheduleRepository interface {
	// Return all work centers in insertion order.
	ListWorkCenters(ctx context.Context) ([]domain.WorkCenter, error)
	// Return all work orders in insertion order.
	ListWorkOrders(ctx context.Context) ([]domain.WorkOrder, error)
	// Return the work orders assigned to one work center, insertion order.
	ListWorkOrdersForCenter(ctx context.Context, workCenterID string) ([]domain.WorkOrder, error)
	// Append a work order. Callers must supply a fresh id; no duplicate
	// check is performed.
	AddWorkOrder(ctx context.Context, order domain.WorkOrder) error
	// Replace the work order with a matching id, preserving its position.
	// Silently a no-op when the id is unknown (intentional idempotence,
	// pending product review).
	UpdateWorkOrder(ctx context.Context, order domain.WorkOrder) error
	// Remove the work order with a matching id; no-op when absent.
	DeleteWorkOrder(ctx context.Context, id string) error
	// Report whether [start, end] intersects any work order on the given
	// work center, excluding the order whose id equals excludeID (pass ""
	// to exclude nothing). Closed-interval semantics: touching endpoints
	// conflict.
	CheckOverlap(ctx context.Context, workCenterID string, start, end domain.Date, excludeID string) (bool, error)
}
