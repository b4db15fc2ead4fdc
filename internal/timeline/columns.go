package timeline

import (
	"fmt"
	"strconv"
	"time"
)

// MaxColumns caps column generation as a runaway-loop guard. When the cap
// is hit the sequence is truncated silently (documented limitation).
const MaxColumns = 1000

// Column is one discrete tick (hour or day) on the timeline axis.
type Column struct {
	Start   time.Time
	Label   string
	Weekend bool
	Current bool
}

// Columns generates the tick sequence for a window: starting at
// window.Start, stepping by one hour (hour zoom) or one calendar day
// (all other zooms), inclusive of window.End.
func Columns(w Window, zoom Zoom, now time.Time) []Column {
	cols := make([]Column, 0, 64)

	cur := w.Start
	for !cur.After(w.End) && len(cols) < MaxColumns {
		cols = append(cols, Column{
			Start:   cur,
			Label:   Label(cur, zoom),
			Weekend: IsWeekend(cur, zoom),
			Current: IsCurrent(cur, zoom, now),
		})

		if zoom == ZoomHour {
			// Calendar-hour step, normalized across day boundaries.
			cur = time.Date(cur.Year(), cur.Month(), cur.Day(), cur.Hour()+1, 0, 0, 0, cur.Location())
		} else {
			cur = cur.AddDate(0, 0, 1)
		}
	}

	return cols
}

// Label formats a column header. Week and month zooms label sparsely:
// "Wk n" on Mondays only, short month name on the 1st only.
func Label(t time.Time, zoom Zoom) string {
	switch zoom {
	case ZoomHour:
		return t.Format("3 PM")
	case ZoomDay:
		return strconv.Itoa(t.Day())
	case ZoomWeek:
		if t.Weekday() == time.Monday {
			_, week := t.ISOWeek()
			return fmt.Sprintf("Wk %d", week)
		}
		return ""
	default:
		if t.Day() == 1 {
			return t.Format("Jan")
		}
		return ""
	}
}

// IsWeekend reports Saturday/Sunday columns. Hour zoom never flags
// weekends to keep the dense axis quiet.
func IsWeekend(t time.Time, zoom Zoom) bool {
	if zoom == ZoomHour {
		return false
	}
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsCurrent reports whether the column contains now: same calendar day and
// hour at hour zoom, same calendar day otherwise.
func IsCurrent(t time.Time, zoom Zoom, now time.Time) bool {
	sameDay := t.Year() == now.Year() && t.Month() == now.Month() && t.Day() == now.Day()
	if zoom == ZoomHour {
		return sameDay && t.Hour() == now.Hour()
	}
	return sameDay
}
