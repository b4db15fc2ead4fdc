package dto

import "work-scheduler-service/internal/domain"

// SaveWorkOrderRequest is a work-order draft from the editing surface.
// Field presence is validated here, before the core is invoked; the core
// itself only checks date ordering and overlap. endDate may be omitted in
// create mode, in which case the saved order spans the default duration.
type SaveWorkOrderRequest struct {
	Name         string `json:"name" validate:"required"`
	WorkCenterID string `json:"workCenterId" validate:"required"`
	Status       string `json:"status" validate:"omitempty,oneof=open in-progress complete blocked"`
	StartDate    string `json:"startDate" validate:"required"`
	EndDate      string `json:"endDate" validate:"omitempty"`
}

type ListWorkCentersResponse struct {
	WorkCenters []domain.WorkCenterDocument `json:"workCenters"`
}

type ListWorkOrdersResponse struct {
	WorkOrders []domain.WorkOrderDocument `json:"workOrders"`
}
