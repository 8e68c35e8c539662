package anim

import (
	"math"
	"testing"
	"time"
)

const ms = time.Millisecond

func TestAnimatorRunsToEnd(t *testing.T) {
	a := Animator{Duration: 100 * ms}
	var value float64
	var ended []Position
	a.AddAnimation(func(r float64) { value = 10 * r })
	a.AddCompletion(func(pos Position) { ended = append(ended, pos) })

	start := time.Unix(0, 0)
	a.Start()
	if !a.Tick(start) {
		t.Fatalf("animator stopped on first tick")
	}
	a.Tick(start.Add(50 * ms))
	if math.Abs(value-5) > 1e-9 {
		t.Errorf("value halfway = %v, want 5", value)
	}
	if a.Tick(start.Add(100 * ms)) {
		t.Errorf("animator still running after its duration")
	}
	if value != 10 {
		t.Errorf("final value = %v, want 10", value)
	}
	if len(ended) != 1 || ended[0] != End {
		t.Errorf("completions = %v, want [end]", ended)
	}
	if a.State() != Inactive {
		t.Errorf("state after completion = %v, want inactive", a.State())
	}
}

func TestAnimatorScrubAndReverse(t *testing.T) {
	a := Animator{Duration: 200 * ms}
	var value float64
	var ended []Position
	a.AddAnimation(func(r float64) { value = r })
	a.AddCompletion(func(pos Position) { ended = append(ended, pos) })

	a.SetFraction(0.5)
	if a.State() != Active || a.Running() {
		t.Fatalf("scrubbed animator: state %v, running %t; want active and paused", a.State(), a.Running())
	}
	a.SetFraction(1.5)
	if a.Fraction() != 1 {
		t.Errorf("fraction = %v, want it clamped to 1", a.Fraction())
	}
	a.SetFraction(0.5)

	if got := a.Remaining(); got != 100*ms {
		t.Errorf("remaining forward = %v, want 100ms", got)
	}
	a.SetReversed(true)
	if got := a.Remaining(); got != 100*ms {
		t.Errorf("remaining reversed = %v, want 100ms", got)
	}

	start := time.Unix(0, 0)
	a.Start()
	a.Tick(start)
	a.Tick(start.Add(50 * ms))
	if math.Abs(a.Fraction()-0.25) > 1e-9 {
		t.Errorf("fraction = %v, want 0.25", a.Fraction())
	}
	a.Tick(start.Add(120 * ms))
	if value != 0 {
		t.Errorf("value after reversing = %v, want 0", value)
	}
	if len(ended) != 1 || ended[0] != Start {
		t.Errorf("completions = %v, want [start]", ended)
	}
}

func TestAnimatorPauseResume(t *testing.T) {
	a := Animator{Duration: 100 * ms}
	var value float64
	a.AddAnimation(func(r float64) { value = r })

	start := time.Unix(0, 0)
	a.Start()
	a.Tick(start)
	a.Tick(start.Add(30 * ms))
	a.Pause()
	if a.Tick(start.Add(90 * ms)) {
		t.Errorf("paused animator advanced")
	}
	if math.Abs(value-0.3) > 1e-9 {
		t.Errorf("value while paused = %v, want 0.3", value)
	}
	a.Start()
	a.Tick(start.Add(100 * ms))
	a.Tick(start.Add(110 * ms))
	if math.Abs(value-0.4) > 1e-9 {
		t.Errorf("value after resuming = %v, want 0.4", value)
	}
}

func TestAnimatorStopFinish(t *testing.T) {
	a := Animator{Duration: 100 * ms}
	var value float64
	var ended []Position
	a.AddAnimation(func(r float64) { value = r })
	a.AddCompletion(func(pos Position) { ended = append(ended, pos) })

	a.SetFraction(0.4)
	a.Stop(false)
	if a.State() != Stopped {
		t.Fatalf("state = %v, want stopped", a.State())
	}
	a.Finish(Current)
	if value != 0.4 {
		t.Errorf("value = %v, want 0.4", value)
	}
	if len(ended) != 1 || ended[0] != Current {
		t.Errorf("completions = %v, want [current]", ended)
	}

	// finishing an inactive animator does nothing
	a.Finish(End)
	if len(ended) != 1 {
		t.Errorf("Finish on an inactive animator ran completions")
	}

	a.AddCompletion(func(pos Position) { ended = append(ended, pos) })
	a.SetFraction(0.2)
	a.Stop(true)
	if a.State() != Inactive || len(ended) != 1 {
		t.Errorf("Stop(true): state %v, completions %v", a.State(), ended)
	}
}

func TestAnimatorEase(t *testing.T) {
	a := Animator{Duration: 100 * ms, Ease: EaseIn(2)}
	var value float64
	a.AddAnimation(func(r float64) { value = r })
	a.SetFraction(0.5)
	if value != 0.25 {
		t.Errorf("eased value = %v, want 0.25", value)
	}
}

func TestDisplayLink(t *testing.T) {
	var l DisplayLink
	var frames int
	start := time.Unix(0, 0)
	if fps := l.Start(start, 50*ms, func(time.Time) { frames++ }); fps != DefaultFPS {
		t.Errorf("fps = %v, want %v", fps, DefaultFPS)
	}
	for i := 1; i <= 10; i++ {
		l.Tick(start.Add(time.Duration(i) * 16 * ms))
	}
	// 16, 32, 48 are within the duration; 64 is the last frame.
	if frames != 4 {
		t.Errorf("got %d frames, want 4", frames)
	}
	if l.Active() {
		t.Errorf("link still active after its duration")
	}

	l.FPS = 120
	if fps := l.Start(start, time.Second, func(time.Time) { frames++ }); fps != 120 {
		t.Errorf("fps = %v, want 120", fps)
	}
	l.Stop()
	l.Tick(start.Add(16 * ms))
	if frames != 4 {
		t.Errorf("stopped link delivered a frame")
	}
}
