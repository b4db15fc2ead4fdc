package clock

import "time"

// System is the real wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always reports the same instant. Handler tests use it to make
// timeline responses deterministic without threading a now parameter.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time { return f.Instant }
