package timeline

import "time"

// Window half-widths per zoom level. Fixed by contract, named for tests.
const (
	HourWindowHours = 24
	DayWindowDays   = 14
	WeekWindowDays  = 60
	MonthWindowDays = 180
)

// Window is the [Start, End] instant range generated for the timeline.
// It is derived from (zoom, now) and never persisted.
type Window struct {
	Start time.Time
	End   time.Time
}

// ComputeWindow returns the visible range anchored at now.
//
// Hour zoom floors now to the start of its hour and spans +/-24 hours;
// the other zooms floor to local midnight and span the per-zoom day count.
// Day offsets use calendar arithmetic, so the window edges stay aligned to
// local midnight across DST transitions.
func ComputeWindow(zoom Zoom, now time.Time) Window {
	if zoom == ZoomHour {
		anchor := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location())
		return Window{
			Start: anchor.Add(-HourWindowHours * time.Hour),
			End:   anchor.Add(HourWindowHours * time.Hour),
		}
	}

	anchor := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	days := DayWindowDays
	switch zoom {
	case ZoomWeek:
		days = WeekWindowDays
	case ZoomMonth:
		days = MonthWindowDays
	}

	return Window{
		Start: anchor.AddDate(0, 0, -days),
		End:   anchor.AddDate(0, 0, days),
	}
}
