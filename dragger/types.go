package dragger

import (
	"errors"
	"fmt"
	"weak"

	"honnef.co/go/dragger/container"
	"honnef.co/go/dragger/geom"
	"honnef.co/go/dragger/view"
)

var (
	ErrNoElement     = errors.New("dragger: no element")
	ErrMissingAnchor = errors.New("dragger: missing anchor container")
	ErrNoSurface     = errors.New("dragger: no drag surface")
	ErrNotTwoViews   = errors.New("dragger: not configured with two views")
)

// TravelState names the anchor a transition is headed for.
type TravelState uint8

const (
	Forwards TravelState = iota
	Backwards
)

func (s TravelState) String() string {
	switch s {
	case Forwards:
		return "forwards"
	case Backwards:
		return "backwards"
	default:
		return fmt.Sprintf("TravelState(%d)", s)
	}
}

func (s TravelState) opposite() TravelState {
	switch s {
	case Forwards:
		return Backwards
	case Backwards:
		return Forwards
	default:
		panic("unreachable")
	}
}

// AnimationKind selects how the dragged element is moved.
type AnimationKind uint8

const (
	// Transform animates the element's transform, leaving its frame alone
	// until the transition settles.
	Transform AnimationKind = iota
	// Frame animates the element's frame.
	Frame
)

func (k AnimationKind) String() string {
	switch k {
	case Transform:
		return "transform"
	case Frame:
		return "frame"
	default:
		return fmt.Sprintf("AnimationKind(%d)", k)
	}
}

// An Anchor is a place the dragged element can rest at: a rectangle in the
// coordinate space of Container.
type Anchor struct {
	Container *view.Element
	Frame     geom.Rect
}

// TwoViews configures a dragger to move its element between two anchors.
type TwoViews struct {
	Backwards Anchor
	Forwards  Anchor
	// Surface overrides the element transitions happen in. It defaults to
	// the lowest common ancestor of the two containers.
	Surface container.Option[*view.Element]
	Axis    geom.Axis
	Kind    AnimationKind
}

func (tv TwoViews) validate() error {
	if tv.Backwards.Container == nil {
		return fmt.Errorf("backwards anchor: %w", ErrMissingAnchor)
	}
	if tv.Forwards.Container == nil {
		return fmt.Errorf("forwards anchor: %w", ErrMissingAnchor)
	}
	if s, ok := tv.Surface.Get(); ok && s == nil {
		return fmt.Errorf("surface override: %w", ErrNoSurface)
	}
	return nil
}

// anchorRef is an Anchor that doesn't keep its container alive.
type anchorRef struct {
	container weak.Pointer[view.Element]
	frame     geom.Rect
}

func makeAnchorRef(a Anchor) anchorRef {
	return anchorRef{
		container: weak.Make(a.Container),
		frame:     a.Frame,
	}
}

func (a anchorRef) get() (Anchor, bool) {
	c := a.container.Value()
	if c == nil {
		return Anchor{}, false
	}
	return Anchor{Container: c, Frame: a.frame}, true
}

// twoViewsRef is the configuration of a two-view dragger, without keeping
// any elements alive.
type twoViewsRef struct {
	backwards anchorRef
	forwards  anchorRef
	surface   weak.Pointer[view.Element]
}

func makeTwoViewsRef(tv TwoViews) twoViewsRef {
	ref := twoViewsRef{
		backwards: makeAnchorRef(tv.Backwards),
		forwards:  makeAnchorRef(tv.Forwards),
	}
	if s, ok := tv.Surface.Get(); ok {
		ref.surface = weak.Make(s)
	}
	return ref
}
