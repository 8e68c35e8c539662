// Package anim provides a property animator whose progress can be scrubbed,
// paused, reversed and resumed, and a display link that calls back once per
// frame. Neither starts goroutines: both advance only when ticked by the
// frame loop, on the goroutine that owns the UI.
package anim

import (
	"fmt"
	"time"
)

// Position identifies where an animation ended.
type Position uint8

const (
	// End means the animation reached its end values.
	End Position = iota
	// Start means the animation was reversed back to its start values.
	Start
	// Current means the animation was stopped where it was.
	Current
)

func (pos Position) String() string {
	switch pos {
	case End:
		return "end"
	case Start:
		return "start"
	case Current:
		return "current"
	default:
		return fmt.Sprintf("Position(%d)", pos)
	}
}

type State uint8

const (
	// Inactive animators have no animations in flight. This is the state
	// before the first call to Start or SetFraction, and after completion.
	Inactive State = iota
	// Active animators are either running or paused.
	Active
	// Stopped animators have been stopped without finishing and await a
	// call to Finish.
	Stopped
)

func (s State) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// An Animator interpolates properties over a duration. Animations are
// functions that receive the eased ratio between start and end values and
// set the properties accordingly.
//
// The fraction is always measured from the start values: reversing an
// animator makes it run back toward 0, it doesn't change the meaning of the
// fraction.
type Animator struct {
	Duration time.Duration
	// Ease defaults to Linear.
	Ease EasingFunction

	animations  []func(ratio float64)
	completions []func(Position)

	state    State
	running  bool
	reversed bool
	fraction float64

	// Set by Start.
	startedAt     time.Time
	startFraction float64
}

func (a *Animator) State() State { return a.state }

// Running reports whether the animator advances when ticked.
func (a *Animator) Running() bool { return a.running }

func (a *Animator) Reversed() bool { return a.reversed }

// SetReversed sets the direction of the animation. Changing the direction of
// a running animator takes effect from its current fraction.
func (a *Animator) SetReversed(b bool) {
	if a.reversed == b {
		return
	}
	a.reversed = b
	if a.running {
		a.startFraction = a.fraction
		a.startedAt = time.Time{}
	}
}

// Fraction returns the fraction of the animation that has completed.
func (a *Animator) Fraction() float64 { return a.fraction }

// AddAnimation registers an animation. Animations added to an active
// animator start at the current fraction.
func (a *Animator) AddAnimation(fn func(ratio float64)) {
	a.animations = append(a.animations, fn)
	if a.state == Active {
		fn(a.ease(a.fraction))
	}
}

// AddCompletion registers a function to call once the animation finishes.
func (a *Animator) AddCompletion(fn func(Position)) {
	a.completions = append(a.completions, fn)
}

// SetFraction scrubs the animation. It pauses a running animator.
func (a *Animator) SetFraction(f float64) {
	if a.state == Stopped {
		return
	}
	a.state = Active
	a.running = false
	a.fraction = min(1, max(0, f))
	a.apply()
}

// Start runs the animation from its current fraction, toward 1, or toward 0
// if reversed. Time starts counting at the first call to Tick.
func (a *Animator) Start() {
	if a.state == Stopped {
		return
	}
	a.state = Active
	a.running = true
	a.startedAt = time.Time{}
	a.startFraction = a.fraction
	a.apply()
}

// Pause stops the animation in place, leaving it active.
func (a *Animator) Pause() {
	if a.state == Stopped {
		return
	}
	if a.state == Inactive {
		a.state = Active
		a.apply()
	}
	a.running = false
}

// Stop stops the animation at its current values. If withoutFinishing is
// set the animator becomes inactive immediately and no completions run;
// otherwise it awaits Finish.
func (a *Animator) Stop(withoutFinishing bool) {
	if a.state == Inactive {
		return
	}
	a.running = false
	if withoutFinishing {
		a.reset()
		return
	}
	a.state = Stopped
}

// Finish completes a stopped animator at pos and runs its completions.
func (a *Animator) Finish(pos Position) {
	if a.state != Stopped {
		return
	}
	a.finish(pos)
}

func (a *Animator) finish(pos Position) {
	switch pos {
	case End:
		a.fraction = 1
		a.apply()
	case Start:
		a.fraction = 0
		a.apply()
	}
	completions := a.completions
	a.reset()
	for _, fn := range completions {
		fn(pos)
	}
}

func (a *Animator) reset() {
	a.state = Inactive
	a.running = false
	a.reversed = false
	a.fraction = 0
	a.animations = nil
	a.completions = nil
}

// Remaining returns how long the animator needs to reach its target from its
// current fraction.
func (a *Animator) Remaining() time.Duration {
	if a.reversed {
		return time.Duration(float64(a.Duration) * a.fraction)
	}
	return time.Duration(float64(a.Duration) * (1 - a.fraction))
}

// Tick advances a running animator to now. It reports whether the animator
// is still running afterwards.
func (a *Animator) Tick(now time.Time) bool {
	if !a.running {
		return false
	}
	if a.startedAt.IsZero() {
		a.startedAt = now
	}
	var delta float64
	if a.Duration > 0 {
		delta = float64(now.Sub(a.startedAt)) / float64(a.Duration)
	} else {
		delta = 1
	}
	if a.reversed {
		a.fraction = max(0, a.startFraction-delta)
		if a.fraction == 0 {
			a.finish(Start)
			return false
		}
	} else {
		a.fraction = min(1, a.startFraction+delta)
		if a.fraction == 1 {
			a.finish(End)
			return false
		}
	}
	a.apply()
	return true
}

func (a *Animator) ease(f float64) float64 {
	if a.Ease == nil {
		return f
	}
	return a.Ease(f)
}

func (a *Animator) apply() {
	r := a.ease(a.fraction)
	for _, fn := range a.animations {
		fn(r)
	}
}
