package seed

import "work-scheduler-service/internal/domain"

// Demo returns the built-in demo schedule: five work centers and eight
// work orders at fixed day offsets around today, so the grid always has
// bars near the window anchor regardless of when the server starts.
// Offsets use the local calendar day rule (see domain.DateOf).
func Demo(today domain.Date) File {
	center := func(id, name string) domain.WorkCenterDocument {
		return domain.NewWorkCenterDocument(domain.WorkCenter{ID: id, Name: name})
	}
	order := func(id, centerID, name string, status domain.WorkOrderStatus, startOffset, endOffset int) domain.WorkOrderDocument {
		return domain.NewWorkOrderDocument(domain.WorkOrder{
			ID:           id,
			WorkCenterID: centerID,
			Status:       status,
			Name:         name,
			StartDate:    today.AddDays(startOffset),
			EndDate:      today.AddDays(endOffset),
		})
	}

	return File{
		WorkCenters: []domain.WorkCenterDocument{
			center("wc-1", "Extrusion Line A"),
			center("wc-2", "CNC Machine 1"),
			center("wc-3", "Assembly Station"),
			center("wc-4", "Quality Control"),
			center("wc-5", "Packaging Line"),
		},
		WorkOrders: []domain.WorkOrderDocument{
			order("wo-1", "wc-1", "Order #1001", domain.StatusComplete, -5, -2),
			order("wo-2", "wc-1", "Order #1002", domain.StatusInProgress, -1, 3),
			order("wo-3", "wc-2", "Order #2001", domain.StatusOpen, 0, 4),
			order("wo-4", "wc-3", "Order #3001", domain.StatusBlocked, -3, 0),
			order("wo-5", "wc-3", "Order #3002", domain.StatusOpen, 2, 6),
			order("wo-6", "wc-4", "Order #4001", domain.StatusInProgress, -2, 1),
			order("wo-7", "wc-5", "Order #5001", domain.StatusComplete, -10, -5),
			order("wo-8", "wc-5", "Order #5002", domain.StatusOpen, -2, 5),
		},
	}
}
