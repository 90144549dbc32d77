package service

import "time"

// Clock supplies the current time so creation stamps stay testable.
type Clock func() time.Time

// SystemClock is the production clock.
func SystemClock() time.Time { return time.Now() }
