package dragger

import (
	"fmt"

	"honnef.co/go/dragger/view"

	"gioui.org/f32"
)

type EventKind uint8

const (
	// Started is sent when a transition between the anchors begins, by
	// gesture or by Travel.
	Started EventKind = iota
	// Updated reports the progress of a transition, while dragging and while
	// the transition settles.
	Updated
	// Cancelled is sent once the element is back at the anchor it started
	// from.
	Cancelled
	// Completed is sent once the element has arrived at its destination
	// anchor.
	Completed
	// Recovered is sent when a gesture interrupts a running transition.
	Recovered
	FreeStarted
	FreeUpdated
	FreeCancelled
	// FreeEnded carries the release velocity.
	FreeEnded
)

func (k EventKind) String() string {
	switch k {
	case Started:
		return "started"
	case Updated:
		return "updated"
	case Cancelled:
		return "cancelled"
	case Completed:
		return "completed"
	case Recovered:
		return "recovered"
	case FreeStarted:
		return "free-started"
	case FreeUpdated:
		return "free-updated"
	case FreeCancelled:
		return "free-cancelled"
	case FreeEnded:
		return "free-ended"
	default:
		return fmt.Sprintf("EventKind(%d)", k)
	}
}

// Event is delivered to observers. State and Progress are only meaningful for
// the two-view kinds, Velocity only for FreeEnded.
type Event struct {
	Kind    EventKind
	Dragger *Dragger
	Element *view.Element

	State TravelState
	// Progress is in [0, 1], measured from the anchor the transition started
	// at.
	Progress float64

	// Velocity is in pixels per second, in the drag surface's coordinate
	// space.
	Velocity f32.Point
}

// Observer receives the events of a Dragger. Events are delivered
// synchronously, after the dragger's state has been updated.
type Observer interface {
	DraggerEvent(ev Event)
}

type ObserverFunc func(ev Event)

func (fn ObserverFunc) DraggerEvent(ev Event) { fn(ev) }
