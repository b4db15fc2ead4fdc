package timeline

import (
	"math"
	"testing"
	"time"
)

func TestColumnWidths(t *testing.T) {
	cases := []struct {
		zoom Zoom
		want float64
	}{
		{ZoomHour, 60},
		{ZoomDay, 50},
		{ZoomWeek, 20},
		{ZoomMonth, 5},
	}
	for _, tc := range cases {
		if got := ColumnWidth(tc.zoom); got != tc.want {
			t.Errorf("%s: width = %v, want %v", tc.zoom, got, tc.want)
		}
	}
}

func TestMsPerColumn(t *testing.T) {
	if got := MsPerColumn(ZoomHour); got != 3_600_000 {
		t.Fatalf("hour = %d, want 3600000", got)
	}
	// Week and month columns compress width, not time: still one day each.
	for _, zoom := range []Zoom{ZoomDay, ZoomWeek, ZoomMonth} {
		if got := MsPerColumn(zoom); got != 86_400_000 {
			t.Fatalf("%s = %d, want 86400000", zoom, got)
		}
	}
}

func TestPositionBarDayZoom(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	w := ComputeWindow(ZoomDay, now) // starts June 1

	start := time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 25, 0, 0, 0, 0, time.UTC)

	pos := PositionBar(start, end, w, ZoomDay)
	if pos.Left != 19*50 {
		t.Fatalf("left = %v, want %v", pos.Left, 19*50)
	}
	if pos.Width != 5*50 {
		t.Fatalf("width = %v, want %v", pos.Width, 5*50)
	}
}

func TestPositionBarOutsideWindowNotClamped(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	w := ComputeWindow(ZoomDay, now)

	// An interval before the window gets a negative left; the shell
	// scrolls, it does not clip.
	start := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.May, 3, 0, 0, 0, 0, time.UTC)

	pos := PositionBar(start, end, w, ZoomDay)
	if pos.Left >= 0 {
		t.Fatalf("left = %v, want negative for pre-window interval", pos.Left)
	}
	if pos.Width != 2*50 {
		t.Fatalf("width = %v, want %v", pos.Width, 2*50)
	}
}

func TestMappingRoundTrip(t *testing.T) {
	now := time.Date(2025, time.June, 15, 13, 0, 0, 0, time.UTC)

	starts := []time.Time{
		time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 15, 7, 30, 0, 0, time.UTC),
		time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC),
	}

	for _, zoom := range []Zoom{ZoomHour, ZoomDay, ZoomWeek, ZoomMonth} {
		w := ComputeWindow(zoom, now)
		for _, start := range starts {
			pos := PositionBar(start, start.AddDate(0, 0, 4), w, zoom)
			back := InstantAt(pos.Left, w, zoom)

			if diff := math.Abs(float64(back.Sub(start))); diff > float64(time.Millisecond) {
				t.Errorf("%s: round trip of %v drifted by %v", zoom, start, back.Sub(start))
			}
		}
	}
}

func TestInstantAtZeroIsWindowStart(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	w := ComputeWindow(ZoomWeek, now)

	if got := InstantAt(0, w, ZoomWeek); !got.Equal(w.Start) {
		t.Fatalf("InstantAt(0) = %v, want window start %v", got, w.Start)
	}
}

func TestInstantAtOneColumn(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	// One column width advances exactly one column's time span.
	w := ComputeWindow(ZoomDay, now)
	got := InstantAt(ColumnWidth(ZoomDay), w, ZoomDay)
	if want := w.Start.Add(24 * time.Hour); !got.Equal(want) {
		t.Fatalf("InstantAt(one day column) = %v, want %v", got, want)
	}

	w = ComputeWindow(ZoomHour, now)
	got = InstantAt(ColumnWidth(ZoomHour), w, ZoomHour)
	if want := w.Start.Add(time.Hour); !got.Equal(want) {
		t.Fatalf("InstantAt(one hour column) = %v, want %v", got, want)
	}
}

func TestContainerWidth(t *testing.T) {
	if got := ContainerWidth(29, ZoomDay); got != 1450 {
		t.Fatalf("container width = %v, want 1450", got)
	}
}

func TestOffsetOfNow(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	w := ComputeWindow(ZoomDay, now)

	// Now sits 14 days into the window.
	if got := Offset(now, w, ZoomDay); got != 14*50 {
		t.Fatalf("offset = %v, want %v", got, 14*50)
	}
}

func TestPxPerMsMatchesRatio(t *testing.T) {
	for _, zoom := range []Zoom{ZoomHour, ZoomDay, ZoomWeek, ZoomMonth} {
		want := ColumnWidth(zoom) / float64(MsPerColumn(zoom))
		if got := PxPerMs(zoom); got != want {
			t.Errorf("%s: PxPerMs = %v, want %v", zoom, got, want)
		}
	}
}
