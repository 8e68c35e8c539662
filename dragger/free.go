package dragger

import (
	"time"
	"weak"

	"honnef.co/go/dragger/geom"
	"honnef.co/go/dragger/gesture"
	"honnef.co/go/dragger/view"

	"gioui.org/f32"
)

// freeDrag lets the element follow the pointer anywhere on a surface.
type freeDrag struct {
	d   *Dragger
	cfg config

	element weak.Pointer[view.Element]
	surface weak.Pointer[view.Element]

	dragging bool
	// last is the previous translation, in the surface's coordinate space.
	last f32.Point
	// beginFrame is the element's frame in the surface when the drag began.
	beginFrame geom.Rect
}

func newFreeDrag(d *Dragger, el, surface *view.Element, cfg config) *freeDrag {
	return &freeDrag{
		d:       d,
		cfg:     cfg,
		element: weak.Make(el),
		surface: weak.Make(surface),
	}
}

func (h *freeDrag) animating() bool { return false }

func (h *freeDrag) tick(time.Time) {}

func (h *freeDrag) travelState() (TravelState, bool) { return 0, false }

func (h *freeDrag) handlePan(ev gesture.PanEvent) {
	el := h.element.Value()
	surf := h.surface.Value()
	if el == nil || surf == nil {
		h.d.log().Debug("ignoring pan: element or surface is gone")
		return
	}
	root := surf.Root()
	pos, ok := root.ConvertVector(ev.Translation, surf)
	if !ok {
		return
	}
	defer func() { h.last = pos }()

	switch ev.Phase {
	case gesture.PhaseBegan:
		if el.Parent() != surf {
			fr, ok := el.FrameIn(surf)
			if !ok {
				h.d.log().Debug("ignoring pan: element isn't in the surface's tree")
				return
			}
			surf.AddChild(el)
			el.Frame = fr
		}
		h.beginFrame = el.Frame
		h.dragging = true
		h.d.emit(Event{Kind: FreeStarted, Element: el})

	case gesture.PhaseChanged:
		if !h.dragging {
			return
		}
		delta := pos.Sub(h.last)
		switch h.cfg.kind {
		case Transform:
			el.Transform = el.Transform.Offset(delta)
		case Frame:
			el.Frame = el.Frame.Add(delta)
		default:
			panic("unreachable")
		}
		h.d.emit(Event{Kind: FreeUpdated, Element: el})

	case gesture.PhaseCancelled:
		if !h.dragging {
			return
		}
		h.dragging = false
		switch h.cfg.kind {
		case Transform:
			el.Transform = f32.Affine2D{}
		case Frame:
			el.Frame = h.beginFrame
		}
		h.d.emit(Event{Kind: FreeCancelled, Element: el})

	case gesture.PhaseEnded:
		if !h.dragging {
			return
		}
		h.dragging = false
		if h.cfg.kind == Transform {
			bake(el)
		}
		v, _ := root.ConvertVector(ev.Velocity, surf)
		h.d.emit(Event{Kind: FreeEnded, Element: el, Velocity: v})
	}
}

// bake moves the translation of el's transform into its frame.
func bake(el *view.Element) {
	_, _, ox, _, _, oy := el.Transform.Elems()
	el.Frame = el.Frame.Add(f32.Pt(ox, oy))
	el.Transform = f32.Affine2D{}
}

func (h *freeDrag) teardown() {
	if !h.dragging {
		return
	}
	h.dragging = false
	if el := h.element.Value(); el != nil && h.cfg.kind == Transform {
		bake(el)
	}
}
