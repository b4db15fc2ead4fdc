package ports

import "time"

// Contract for obtaining the current instant. Timeline computations take
// "now" explicitly; only the edges of the system consult a Clock.
type Clock interface {
	Now() time.Time
}
