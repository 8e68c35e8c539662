package anim

import "time"

// DefaultFPS is the refresh rate reported by display links that haven't been
// told otherwise.
const DefaultFPS = 60

// A DisplayLink calls a function on every frame until stopped or until its
// duration has elapsed.
type DisplayLink struct {
	// FPS is the refresh rate of the display the link is synchronized with.
	FPS float64

	fn       func(now time.Time)
	start    time.Time
	duration time.Duration
	active   bool
}

// Start (re)starts the link at now. It runs for at least d; the frame on
// which the elapsed time exceeds d is the last one. Start returns the refresh
// rate.
func (l *DisplayLink) Start(now time.Time, d time.Duration, fn func(now time.Time)) float64 {
	l.fn = fn
	l.start = now
	l.duration = d
	l.active = true
	return l.fps()
}

func (l *DisplayLink) Stop() {
	l.active = false
	l.fn = nil
}

func (l *DisplayLink) Active() bool { return l.active }

// Tick delivers a frame.
func (l *DisplayLink) Tick(now time.Time) {
	if !l.active {
		return
	}
	fn := l.fn
	if now.Sub(l.start) > l.duration {
		l.Stop()
	}
	fn(now)
}

func (l *DisplayLink) fps() float64 {
	if l.FPS <= 0 {
		return DefaultFPS
	}
	return l.FPS
}
