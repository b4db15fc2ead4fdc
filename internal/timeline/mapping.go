package timeline

import "time"

// Per-column pixel widths. Presentation constants, but load-bearing: the
// inverse mapping divides by them, so they must be exact.
const (
	HourColumnWidth  = 60
	DayColumnWidth   = 50
	WeekColumnWidth  = 20
	MonthColumnWidth = 5
)

const (
	msPerHour = 3_600_000
	msPerDay  = 86_400_000
)

// ColumnWidth returns the pixel width of one column at the given zoom.
func ColumnWidth(zoom Zoom) float64 {
	switch zoom {
	case ZoomHour:
		return HourColumnWidth
	case ZoomWeek:
		return WeekColumnWidth
	case ZoomMonth:
		return MonthColumnWidth
	default:
		return DayColumnWidth
	}
}

// MsPerColumn returns the time span one column represents, in
// milliseconds. Week and month columns are still daily steps rendered
// narrower: width compresses, time-per-column does not.
func MsPerColumn(zoom Zoom) int64 {
	if zoom == ZoomHour {
		return msPerHour
	}
	return msPerDay
}

// PxPerMs is the single scale factor shared by both mapping directions.
func PxPerMs(zoom Zoom) float64 {
	return ColumnWidth(zoom) / float64(MsPerColumn(zoom))
}

// BarPosition is a bar's horizontal placement in pixels.
type BarPosition struct {
	Left  float64
	Width float64
}

// PositionBar maps an instant interval onto the pixel axis. Positions are
// not clamped to the window: intervals outside it produce off-screen
// coordinates, which the shell scrolls rather than clips.
func PositionBar(start, end time.Time, w Window, zoom Zoom) BarPosition {
	scale := PxPerMs(zoom)
	return BarPosition{
		Left:  millis(start.Sub(w.Start)) * scale,
		Width: millis(end.Sub(start)) * scale,
	}
}

// InstantAt inverse-maps a pixel offset back to a calendar instant. Used
// to turn a pointer position into a candidate start date.
func InstantAt(x float64, w Window, zoom Zoom) time.Time {
	ms := x / PxPerMs(zoom)
	return w.Start.Add(time.Duration(ms * float64(time.Millisecond)))
}

// ContainerWidth is the full pixel width of the generated axis.
func ContainerWidth(columnCount int, zoom Zoom) float64 {
	return float64(columnCount) * ColumnWidth(zoom)
}

// Offset returns the pixel position of an instant within the window, e.g.
// for centering the shell's scroll position on now.
func Offset(t time.Time, w Window, zoom Zoom) float64 {
	return millis(t.Sub(w.Start)) * PxPerMs(zoom)
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
