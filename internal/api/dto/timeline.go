package dto

import (
	"time"

	"work-scheduler-service/internal/domain"
)

type WindowResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type ColumnResponse struct {
	Instant   time.Time `json:"instant"`
	Label     string    `json:"label"`
	IsWeekend bool      `json:"isWeekend"`
	IsCurrent bool      `json:"isCurrent"`
}

// TimelineResponse is the axis metadata a display shell needs to draw the
// date header and size its scroll container.
type TimelineResponse struct {
	Zoom           string           `json:"zoom"`
	Window         WindowResponse   `json:"window"`
	ColumnWidth    float64          `json:"columnWidth"`
	MsPerColumn    int64            `json:"msPerColumn"`
	ContainerWidth float64          `json:"containerWidth"`
	NowOffset      float64          `json:"nowOffset"`
	Columns        []ColumnResponse `json:"columns"`
}

type BarResponse struct {
	WorkOrder domain.WorkOrderDocument `json:"workOrder"`
	Left      float64                  `json:"left"`
	Width     float64                  `json:"width"`
}

type RowResponse struct {
	WorkCenter domain.WorkCenterDocument `json:"workCenter"`
	Bars       []BarResponse             `json:"bars"`
}

// LayoutResponse is the full grid: axis metadata plus one row per work
// center with positioned bars.
type LayoutResponse struct {
	TimelineResponse
	Rows []RowResponse `json:"rows"`
}

// LocateResponse inverse-maps a pixel offset: the exact instant under the
// pointer, its calendar date (the candidate start for a new order), and
// the column the offset snaps to.
type LocateResponse struct {
	Instant     time.Time `json:"instant"`
	Date        string    `json:"date"`
	ColumnIndex int       `json:"columnIndex"`
	SnappedLeft float64   `json:"snappedLeft"`
}
