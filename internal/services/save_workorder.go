package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"work-scheduler-service/internal/domain"
	"work-scheduler-service/internal/ports"
)

// DefaultDurationDays is the span given to a draft submitted without an
// end date (a click on the grid proposes only a start).
const DefaultDurationDays = 7

// WorkOrderDraft is a candidate work order from the editing surface.
// Field presence is the caller's responsibility; the core checks only date
// ordering and overlap. An empty ID means create mode: a fresh id is
// minted at save time. A non-empty ID means edit mode: identity is
// preserved and the overlap check excludes the order itself.
type WorkOrderDraft struct {
	ID           string
	WorkCenterID string
	Status       domain.WorkOrderStatus
	Name         string
	StartDate    domain.Date
	EndDate      domain.Date
}

// SaveWorkOrder validates a draft against the current schedule and commits
// it to the repository.
//
// Returns domain.ErrEndBeforeStart or domain.ErrOverlap when validation
// fails; both are recoverable and meant to be surfaced to the user.
func SaveWorkOrder(ctx context.Context, repo ports.ScheduleRepository, draft WorkOrderDraft) (domain.WorkOrder, error) {
	endDate := draft.EndDate
	if endDate.IsZero() {
		endDate = draft.StartDate.AddDays(DefaultDurationDays)
	}

	if endDate.Before(draft.StartDate) {
		return domain.WorkOrder{}, domain.ErrEndBeforeStart
	}

	overlap, err := repo.CheckOverlap(ctx, draft.WorkCenterID, draft.StartDate, endDate, draft.ID)
	if err != nil {
		return domain.WorkOrder{}, fmt.Errorf("save work order: check overlap: %w", err)
	}
	if overlap {
		return domain.WorkOrder{}, domain.ErrOverlap
	}

	status := draft.Status
	if status == "" {
		status = domain.StatusOpen
	}

	order := domain.WorkOrder{
		ID:           draft.ID,
		WorkCenterID: draft.WorkCenterID,
		Status:       status,
		Name:         draft.Name,
		StartDate:    draft.StartDate,
		EndDate:      endDate,
	}

	if order.ID == "" {
		order.ID = NewWorkOrderID()
		if err := repo.AddWorkOrder(ctx, order); err != nil {
			return domain.WorkOrder{}, fmt.Errorf("save work order: add: %w", err)
		}
		return order, nil
	}

	if err := repo.UpdateWorkOrder(ctx, order); err != nil {
		return domain.WorkOrder{}, fmt.Errorf("save work order: update %s: %w", order.ID, err)
	}
	return order, nil
}

// NewWorkOrderID mints a unique work-order id.
func NewWorkOrderID() string {
	return "wo-" + uuid.NewString()
}
