package gesture

import (
	"time"

	"gioui.org/f32"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/touch"
)

// now is replaced in tests.
var now = time.Now

// epoch is the reference point for timestamps of x/mobile events, which
// don't carry their own.
var epoch = now()

// Filter feeds an x/mobile touch or mouse event to the recognizer, for hosts
// built on golang.org/x/mobile rather than Gio. Only the first touch sequence
// and the left mouse button are tracked. Other events are ignored.
func (p *Pan) Filter(e interface{}) (PanEvent, bool) {
	t := now().Sub(epoch)
	switch e := e.(type) {
	case touch.Event:
		pos := f32.Pt(e.X, e.Y)
		switch e.Type {
		case touch.TypeBegin:
			if p.pressed {
				return PanEvent{}, false
			}
			p.seq = e.Sequence
			p.press(pos, t)
		case touch.TypeMove:
			if p.pressed && e.Sequence == p.seq {
				return p.move(pos, t)
			}
		case touch.TypeEnd:
			if p.pressed && e.Sequence == p.seq {
				return p.release(pos, t)
			}
		}
	case mouse.Event:
		if e.Button != mouse.ButtonLeft && e.Button != mouse.ButtonNone {
			return PanEvent{}, false
		}
		pos := f32.Pt(e.X, e.Y)
		switch e.Direction {
		case mouse.DirPress:
			if p.pressed || e.Button != mouse.ButtonLeft {
				return PanEvent{}, false
			}
			p.press(pos, t)
		case mouse.DirNone:
			if p.pressed {
				return p.move(pos, t)
			}
		case mouse.DirRelease:
			if p.pressed {
				return p.release(pos, t)
			}
		}
	}
	return PanEvent{}, false
}
