package timeline

import "fmt"

// Zoom is the granularity of the timeline axis. It controls the window
// size, the column step and the pixel scale.
type Zoom string

const (
	ZoomHour  Zoom = "hour"
	ZoomDay   Zoom = "day"
	ZoomWeek  Zoom = "week"
	ZoomMonth Zoom = "month"
)

// ParseZoom converts a wire value into a Zoom.
func ParseZoom(s string) (Zoom, error) {
	switch Zoom(s) {
	case ZoomHour, ZoomDay, ZoomWeek, ZoomMonth:
		return Zoom(s), nil
	}
	return "", fmt.Errorf("parse zoom: unknown level %q", s)
}
