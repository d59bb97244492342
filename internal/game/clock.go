package game

import "time"

// Clock is the time source the loop samples once per tick.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// time.Now carries a monotonic reading, so Sub is immune to wall-clock jumps.
func (systemClock) Now() time.Time { return time.Now() }
