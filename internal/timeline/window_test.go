package timeline

import (
	"testing"
	"time"
)

func TestComputeWindowDayZoom(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	w := ComputeWindow(ZoomDay, now)

	wantStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, time.June, 29, 0, 0, 0, 0, time.UTC)
	if !w.Start.Equal(wantStart) {
		t.Fatalf("start = %v, want %v", w.Start, wantStart)
	}
	if !w.End.Equal(wantEnd) {
		t.Fatalf("end = %v, want %v", w.End, wantEnd)
	}
}

func TestComputeWindowFloorsToMidnight(t *testing.T) {
	// A mid-afternoon now must anchor to local midnight for day-based zooms.
	now := time.Date(2025, time.June, 15, 16, 45, 12, 0, time.UTC)

	for _, zoom := range []Zoom{ZoomDay, ZoomWeek, ZoomMonth} {
		w := ComputeWindow(zoom, now)
		if w.Start.Hour() != 0 || w.Start.Minute() != 0 {
			t.Errorf("%s: start %v not aligned to midnight", zoom, w.Start)
		}
	}
}

func TestComputeWindowHourZoom(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 35, 0, 0, time.UTC)

	w := ComputeWindow(ZoomHour, now)

	wantStart := time.Date(2025, time.June, 14, 10, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, time.June, 16, 10, 0, 0, 0, time.UTC)
	if !w.Start.Equal(wantStart) || !w.End.Equal(wantEnd) {
		t.Fatalf("window = [%v, %v], want [%v, %v]", w.Start, w.End, wantStart, wantEnd)
	}
}

func TestComputeWindowSpans(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		zoom Zoom
		days int
	}{
		{ZoomDay, DayWindowDays},
		{ZoomWeek, WeekWindowDays},
		{ZoomMonth, MonthWindowDays},
	}
	for _, tc := range cases {
		w := ComputeWindow(tc.zoom, now)
		if got := int(w.End.Sub(w.Start).Hours() / 24); got != 2*tc.days {
			t.Errorf("%s: span = %d days, want %d", tc.zoom, got, 2*tc.days)
		}
	}
}

func TestParseZoom(t *testing.T) {
	for _, s := range []string{"hour", "day", "week", "month"} {
		if _, err := ParseZoom(s); err != nil {
			t.Errorf("ParseZoom(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseZoom("year"); err == nil {
		t.Fatal("ParseZoom accepted unknown level")
	}
}
