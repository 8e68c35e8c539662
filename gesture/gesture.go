// Package gesture recognizes single-pointer pans and reports them as a stream
// of phases, each carrying the cumulative translation and the current velocity
// of the pointer.
package gesture

import (
	"fmt"
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"golang.org/x/exp/slices"
	"golang.org/x/mobile/event/touch"
)

// velocityWindow is how far back samples are considered when estimating the
// release velocity.
const velocityWindow = 100 * time.Millisecond

// maxSamples bounds the number of samples kept for velocity estimation.
const maxSamples = 20

type Phase uint8

const (
	// PhaseBegan is reported once the pointer has moved past the slop.
	PhaseBegan Phase = iota
	// PhaseChanged is reported for every further movement.
	PhaseChanged
	// PhaseEnded is reported when the pointer is released.
	PhaseEnded
	// PhaseCancelled is reported when the system cancels the pointer.
	PhaseCancelled
)

func (ph Phase) String() string {
	switch ph {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Phase(%d)", ph)
	}
}

// PanEvent describes one phase of a pan. Positions and vectors are in the
// coordinate space the events were delivered in, usually the window's.
type PanEvent struct {
	Phase    Phase
	Position f32.Point
	// Translation is the pointer's displacement since it was pressed.
	Translation f32.Point
	// Velocity is in pixels per second.
	Velocity f32.Point
}

type sample struct {
	pos f32.Point
	t   time.Duration
}

// Pan detects pan gestures of a single pointer.
type Pan struct {
	// Slop is the distance the pointer has to travel before the pan begins.
	Slop float32

	// pressed tracks whether the pointer is pressed.
	pressed bool
	// dragging tracks whether the pan has begun.
	dragging bool
	// pid is the pointer.ID of the tracked pointer.
	pid pointer.ID
	// seq is the touch.Sequence of the tracked x/mobile touch.
	seq     touch.Sequence
	start   f32.Point
	samples []sample
}

// Add the handler to the operation list to receive pointer events.
func (p *Pan) Add(ops *op.Ops) {
	pointer.InputOp{
		Tag:   p,
		Kinds: pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
	}.Add(ops)
}

// Dragging returns whether a pan is in progress.
func (p *Pan) Dragging() bool {
	return p.dragging
}

// Update processes pointer events and returns the resulting pan events.
func (p *Pan) Update(q event.Queue) []PanEvent {
	var events []PanEvent
	for _, evt := range q.Events(p) {
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}
		if ev, ok := p.pointer(e); ok {
			events = append(events, ev)
		}
	}
	return events
}

func (p *Pan) pointer(e pointer.Event) (PanEvent, bool) {
	switch e.Kind {
	case pointer.Press:
		if p.pressed {
			return PanEvent{}, false
		}
		if e.Source == pointer.Mouse && e.Buttons&pointer.ButtonPrimary == 0 {
			return PanEvent{}, false
		}
		p.pid = e.PointerID
		p.press(e.Position, e.Time)
	case pointer.Drag:
		if !p.pressed || e.PointerID != p.pid {
			return PanEvent{}, false
		}
		return p.move(e.Position, e.Time)
	case pointer.Release:
		if !p.pressed || e.PointerID != p.pid {
			return PanEvent{}, false
		}
		return p.release(e.Position, e.Time)
	case pointer.Cancel:
		return p.cancel()
	}
	return PanEvent{}, false
}

func (p *Pan) press(pos f32.Point, t time.Duration) {
	p.pressed = true
	p.dragging = false
	p.start = pos
	p.samples = append(p.samples[:0], sample{pos, t})
}

func (p *Pan) move(pos f32.Point, t time.Duration) (PanEvent, bool) {
	p.record(pos, t)
	tr := pos.Sub(p.start)
	if !p.dragging {
		if abs(tr.X) <= p.Slop && abs(tr.Y) <= p.Slop {
			return PanEvent{}, false
		}
		p.dragging = true
		return PanEvent{Phase: PhaseBegan, Position: pos, Translation: tr, Velocity: p.velocity()}, true
	}
	return PanEvent{Phase: PhaseChanged, Position: pos, Translation: tr, Velocity: p.velocity()}, true
}

func (p *Pan) release(pos f32.Point, t time.Duration) (PanEvent, bool) {
	p.record(pos, t)
	wasDragging := p.dragging
	p.pressed = false
	p.dragging = false
	if !wasDragging {
		// A press and release without movement is a click, not a pan.
		return PanEvent{}, false
	}
	return PanEvent{Phase: PhaseEnded, Position: pos, Translation: pos.Sub(p.start), Velocity: p.velocity()}, true
}

func (p *Pan) cancel() (PanEvent, bool) {
	wasDragging := p.dragging
	p.pressed = false
	p.dragging = false
	if !wasDragging {
		return PanEvent{}, false
	}
	var last f32.Point
	if n := len(p.samples); n > 0 {
		last = p.samples[n-1].pos
	}
	return PanEvent{Phase: PhaseCancelled, Position: last, Translation: last.Sub(p.start)}, true
}

func (p *Pan) record(pos f32.Point, t time.Duration) {
	if len(p.samples) == maxSamples {
		p.samples = slices.Delete(p.samples, 0, 1)
	}
	p.samples = append(p.samples, sample{pos, t})
}

// velocity estimates the pointer velocity from the samples within
// velocityWindow of the most recent one.
func (p *Pan) velocity() f32.Point {
	if len(p.samples) < 2 {
		return f32.Point{}
	}
	last := p.samples[len(p.samples)-1]
	first := last
	for i := len(p.samples) - 2; i >= 0; i-- {
		s := p.samples[i]
		if last.t-s.t > velocityWindow {
			break
		}
		first = s
	}
	dt := float32((last.t - first.t).Seconds())
	if dt <= 0 {
		return f32.Point{}
	}
	return last.pos.Sub(first.pos).Div(dt)
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
