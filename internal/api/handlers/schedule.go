package handlers

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"work-scheduler-service/internal/api/dto"
	"work-scheduler-service/internal/domain"
	"work-scheduler-service/internal/ports"
	"work-scheduler-service/internal/services"
	"work-scheduler-service/internal/timeline"
)

// ScheduleHandler serves the display shell: axis metadata, the full grid
// layout, and the pixel-to-instant inverse map.
//
// Every endpoint accepts an optional now=RFC3339 query parameter so that
// responses are reproducible; absent it, the injected clock is used. The
// timeline engine itself never reads a wall clock.
type ScheduleHandler struct {
	Repo  ports.ScheduleRepository
	Clock ports.Clock
}

func (h *ScheduleHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	zoom, now, ok := h.axisParams(w, r)
	if !ok {
		return
	}

	window := timeline.ComputeWindow(zoom, now)
	columns := timeline.Columns(window, zoom, now)

	writeJSON(w, r, http.StatusOK, axisResponse(zoom, window, columns, now))
}

func (h *ScheduleHandler) Layout(w http.ResponseWriter, r *http.Request) {
	zoom, now, ok := h.axisParams(w, r)
	if !ok {
		return
	}

	layout, err := services.BuildScheduleLayout(r.Context(), h.Repo, zoom, now)
	if err != nil {
		slog.Error("build schedule layout failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.LayoutResponse{
		TimelineResponse: axisResponse(zoom, layout.Window, layout.Columns, now),
		Rows:             make([]dto.RowResponse, 0, len(layout.Rows)),
	}
	for _, row := range layout.Rows {
		bars := make([]dto.BarResponse, 0, len(row.Bars))
		for _, bar := range row.Bars {
			bars = append(bars, dto.BarResponse{
				WorkOrder: domain.NewWorkOrderDocument(bar.Order),
				Left:      bar.Position.Left,
				Width:     bar.Position.Width,
			})
		}
		res.Rows = append(res.Rows, dto.RowResponse{
			WorkCenter: domain.NewWorkCenterDocument(row.Center),
			Bars:       bars,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Locate turns a pointer offset into a candidate start date: the exact
// instant under x, its local calendar date, and the snapped column.
func (h *ScheduleHandler) Locate(w http.ResponseWriter, r *http.Request) {
	zoom, now, ok := h.axisParams(w, r)
	if !ok {
		return
	}

	x, err := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		writeError(w, r, http.StatusBadRequest, "x must be a pixel offset")
		return
	}

	window := timeline.ComputeWindow(zoom, now)
	instant := timeline.InstantAt(x, window, zoom)

	width := timeline.ColumnWidth(zoom)
	colIndex := int(math.Floor(x / width))

	writeJSON(w, r, http.StatusOK, dto.LocateResponse{
		Instant:     instant,
		Date:        domain.DateOf(instant).String(),
		ColumnIndex: colIndex,
		SnappedLeft: float64(colIndex) * width,
	})
}

// axisParams parses the zoom and now query parameters shared by all
// schedule endpoints. On failure it writes the error response and returns
// ok=false.
func (h *ScheduleHandler) axisParams(w http.ResponseWriter, r *http.Request) (timeline.Zoom, time.Time, bool) {
	zoomParam := r.URL.Query().Get("zoom")
	if zoomParam == "" {
		zoomParam = string(timeline.ZoomDay)
	}
	zoom, err := timeline.ParseZoom(zoomParam)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "zoom must be one of hour, day, week, month")
		return "", time.Time{}, false
	}

	now := h.Clock.Now()
	if nowParam := r.URL.Query().Get("now"); nowParam != "" {
		parsed, err := time.Parse(time.RFC3339, nowParam)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "now must be RFC3339")
			return "", time.Time{}, false
		}
		now = parsed
	}

	return zoom, now, true
}

func axisResponse(zoom timeline.Zoom, window timeline.Window, columns []timeline.Column, now time.Time) dto.TimelineResponse {
	res := dto.TimelineResponse{
		Zoom:           string(zoom),
		Window:         dto.WindowResponse{Start: window.Start, End: window.End},
		ColumnWidth:    timeline.ColumnWidth(zoom),
		MsPerColumn:    timeline.MsPerColumn(zoom),
		ContainerWidth: timeline.ContainerWidth(len(columns), zoom),
		NowOffset:      timeline.Offset(now, window, zoom),
		Columns:        make([]dto.ColumnResponse, 0, len(columns)),
	}
	for _, c := range columns {
		res.Columns = append(res.Columns, dto.ColumnResponse{
			Instant:   c.Start,
			Label:     c.Label,
			IsWeekend: c.Weekend,
			IsCurrent: c.Current,
		})
	}
	return res
}
