// Package timing provides delta-time helpers for frame-rate independent
// game logic: a clamped frame timer, cooldowns, animations and easing
// functions.
package timing

import "time"

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// Now returns the current time using the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}
