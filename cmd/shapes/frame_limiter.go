package main

import "time"

const spinWindow = 200 * time.Microsecond

// FrameLimiter paces the loop to a frame cap
type FrameLimiter struct {
	next time.Time
}

// NewFrameLimiter creates a frame limiter
func NewFrameLimiter() *FrameLimiter {
	return &FrameLimiter{}
}

// Wait blocks until the next frame is due. A limit of 0 or less disables
// pacing. Sleeps most of the interval and spins the last few microseconds.
func (f *FrameLimiter) Wait(limit int) {
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)
	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// resync after a hitch instead of rushing to catch up
	if time.Since(f.next) > target {
		f.next = time.Now()
	}
}
