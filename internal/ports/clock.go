package ports

import "time"

// Clock readings from time.Now carry the monotonic clock, so Sub between two
// of them is immune to wall-clock steps.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
