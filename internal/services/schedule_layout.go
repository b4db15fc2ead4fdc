package services

import (
	"context"
	"fmt"
	"time"

	"work-scheduler-service/internal/domain"
	"work-scheduler-service/internal/platform/obs"
	"work-scheduler-service/internal/ports"
	"work-scheduler-service/internal/timeline"
)

// ScheduleBar is one work order with its computed pixel placement.
type ScheduleBar struct {
	Order    domain.WorkOrder
	Position timeline.BarPosition
}

// ScheduleRow is one work center with the bars scheduled on it.
type ScheduleRow struct {
	Center domain.WorkCenter
	Bars   []ScheduleBar
}

// ScheduleLayout is everything a display shell needs to draw the grid:
// axis metadata plus one row per work center in insertion order.
type ScheduleLayout struct {
	Zoom           timeline.Zoom
	Window         timeline.Window
	Columns        []timeline.Column
	ColumnWidth    float64
	MsPerColumn    int64
	ContainerWidth float64
	NowOffset      float64
	Rows           []ScheduleRow
}

// BuildScheduleLayout composes the timeline engine with the schedule
// store: it computes the window and columns for (zoom, now), then places
// every work order on its work center's row.
//
// Bars are not clamped to the window. Orders outside it get off-screen
// coordinates; the shell scrolls rather than clips.
func BuildScheduleLayout(ctx context.Context, repo ports.ScheduleRepository, zoom timeline.Zoom, now time.Time) (layout *ScheduleLayout, err error) {
	defer obs.Time(ctx, "schedule.BuildLayout")(&err)

	window := timeline.ComputeWindow(zoom, now)
	columns := timeline.Columns(window, zoom, now)

	centers, err := repo.ListWorkCenters(ctx)
	if err != nil {
		return nil, fmt.Errorf("build schedule layout: list work centers: %w", err)
	}

	rows := make([]ScheduleRow, 0, len(centers))
	for _, center := range centers {
		orders, err := repo.ListWorkOrdersForCenter(ctx, center.ID)
		if err != nil {
			return nil, fmt.Errorf("build schedule layout: list work orders for %s: %w", center.ID, err)
		}

		bars := make([]ScheduleBar, 0, len(orders))
		for _, order := range orders {
			bars = append(bars, ScheduleBar{
				Order:    order,
				Position: timeline.PositionBar(order.StartDate.UTC(), order.EndDate.UTC(), window, zoom),
			})
		}

		rows = append(rows, ScheduleRow{Center: center, Bars: bars})
	}

	return &ScheduleLayout{
		Zoom:           zoom,
		Window:         window,
		Columns:        columns,
		ColumnWidth:    timeline.ColumnWidth(zoom),
		MsPerColumn:    timeline.MsPerColumn(zoom),
		ContainerWidth: timeline.ContainerWidth(len(columns), zoom),
		NowOffset:      timeline.Offset(now, window, zoom),
		Rows:           rows,
	}, nil
}
