package dragger

import (
	"time"
	"weak"

	"honnef.co/go/dragger/anim"
	"honnef.co/go/dragger/geom"
	"honnef.co/go/dragger/gesture"
	"honnef.co/go/dragger/view"

	"gioui.org/f32"
)

// session is the state of one transition, from its start until it settles.
type session struct {
	ancestor   weak.Pointer[view.Element]
	travelUnit float32
	// lastPos is the most recent gesture translation along the axis, in the
	// ancestor's coordinate space.
	lastPos float32
	state   TravelState
}

// twoViews moves an element between two anchors, tracking pan gestures and
// settling with an animation.
type twoViews struct {
	d   *Dragger
	cfg config

	element   weak.Pointer[view.Element]
	backwards anchorRef
	forwards  anchorRef
	surface   weak.Pointer[view.Element]

	animator anim.Animator
	link     anim.DisplayLink
	session  *session
	// extra is added to the animator's fraction when reporting progress
	// during settling, so that reports lead the animation slightly.
	extra float64

	// The state of the most recent transition.
	state    TravelState
	hasState bool
}

func newTwoViews(d *Dragger, el *view.Element, tv twoViewsRef, cfg config) *twoViews {
	h := &twoViews{
		d:         d,
		cfg:       cfg,
		element:   weak.Make(el),
		backwards: tv.backwards,
		forwards:  tv.forwards,
		surface:   tv.surface,
	}
	h.animator.Duration = cfg.duration
	h.animator.Ease = cfg.curve
	h.link.FPS = cfg.fps
	return h
}

func (h *twoViews) anchor(s TravelState) anchorRef {
	switch s {
	case Forwards:
		return h.forwards
	case Backwards:
		return h.backwards
	default:
		panic("unreachable")
	}
}

// ancestor returns the element transitions happen in.
func (h *twoViews) ancestor() *view.Element {
	if s := h.surface.Value(); s != nil {
		return s
	}
	return view.CommonAncestor(h.backwards.container.Value(), h.forwards.container.Value())
}

func (h *twoViews) animating() bool {
	return h.animator.Running() || h.link.Active()
}

func (h *twoViews) travelState() (TravelState, bool) {
	if h.session != nil {
		return h.session.state, true
	}
	return h.state, h.hasState
}

func (h *twoViews) tick(now time.Time) {
	h.link.Tick(now)
	h.animator.Tick(now)
}

func (h *twoViews) handlePan(ev gesture.PanEvent) {
	switch ev.Phase {
	case gesture.PhaseBegan:
		h.begin(ev)
	case gesture.PhaseChanged:
		h.changed(ev)
	case gesture.PhaseEnded:
		h.ended(ev)
	case gesture.PhaseCancelled:
		h.cancel()
	}
}

// along projects a vector in root coordinates onto the axis in the ancestor's
// coordinate space.
func (h *twoViews) along(v f32.Point, ancestor *view.Element) (float32, bool) {
	v, ok := ancestor.Root().ConvertVector(v, ancestor)
	if !ok {
		return 0, false
	}
	return h.cfg.axis.Along(v), true
}

func (h *twoViews) begin(ev gesture.PanEvent) {
	if h.session != nil {
		h.recover(ev)
		return
	}

	log := h.d.log()
	el := h.element.Value()
	if el == nil || el.Parent() == nil {
		log.Debug("ignoring pan: element is gone or detached")
		return
	}
	to := Backwards
	if el.Parent() == h.backwards.container.Value() {
		to = Forwards
	}
	anc := h.ancestor()
	if anc == nil {
		log.Debug("ignoring pan: anchors have no common ancestor")
		return
	}
	pos, _ := h.along(ev.Translation, anc)
	h.prepare(to, anc, pos)
}

// recover takes over the open transition, whether it is animating, paused,
// or hasn't moved yet.
func (h *twoViews) recover(ev gesture.PanEvent) {
	s := h.session
	h.link.Stop()
	h.extra = 0
	h.animator.SetReversed(false)
	h.animator.Pause()
	if anc := s.ancestor.Value(); anc != nil {
		if pos, ok := h.along(ev.Translation, anc); ok {
			s.lastPos = pos
		}
	}
	if el := h.element.Value(); el != nil {
		h.d.emit(Event{Kind: Recovered, Element: el, State: s.state, Progress: h.animator.Fraction()})
	}
}

func (h *twoViews) changed(ev gesture.PanEvent) {
	s := h.session
	if s == nil {
		return
	}
	el := h.element.Value()
	anc := s.ancestor.Value()
	if el == nil || anc == nil {
		return
	}
	pos, ok := h.along(ev.Translation, anc)
	if !ok {
		return
	}
	if s.travelUnit == 0 {
		s.lastPos = pos
		return
	}
	progress := clampProgress(h.animator.Fraction() + float64((pos-s.lastPos)/s.travelUnit))
	s.lastPos = pos
	h.d.emit(Event{Kind: Updated, Element: el, State: s.state, Progress: progress})
	h.animator.SetFraction(progress)
}

func (h *twoViews) ended(ev gesture.PanEvent) {
	s := h.session
	if s == nil {
		return
	}
	var v float32
	if anc := s.ancestor.Value(); anc != nil {
		v, _ = h.along(ev.Velocity, anc)
	}
	if shouldComplete(s.travelUnit, v, h.animator.Fraction(), h.cfg.velocityTrigger, h.cfg.completionFraction) {
		h.complete()
	} else {
		h.cancel()
	}
}

// prepare starts a transition toward state in ancestor. The element is moved
// into the ancestor without changing where it appears, and the animation
// from its current frame to the destination anchor is registered but not
// started.
func (h *twoViews) prepare(to TravelState, ancestor *view.Element, pos float32) bool {
	log := h.d.log()
	el := h.element.Value()
	bw, ok1 := h.backwards.get()
	fw, ok2 := h.forwards.get()
	if el == nil || !ok1 || !ok2 {
		log.Debug("not starting transition: element or anchor container is gone")
		return false
	}
	unit, ok := travelUnit(bw, fw, ancestor, h.cfg.axis, to)
	if !ok {
		log.Debug("not starting transition: anchors aren't in the ancestor's tree")
		return false
	}
	if unit == 0 {
		log.Debug("transition has zero travel unit, drag samples will be ignored", "axis", h.cfg.axis)
	}
	start, ok := el.FrameIn(ancestor)
	if !ok {
		log.Debug("not starting transition: element isn't in the ancestor's tree")
		return false
	}
	dst := fw
	if to == Backwards {
		dst = bw
	}
	end, ok := dst.Container.ConvertRect(dst.Frame, ancestor)
	if !ok {
		return false
	}

	s := &session{
		ancestor:   weak.Make(ancestor),
		travelUnit: unit,
		lastPos:    pos,
		state:      to,
	}
	h.session = s
	h.extra = 0
	h.animator.SetReversed(false)

	if el.Parent() != ancestor {
		ancestor.AddChild(el)
	}
	el.Frame = start
	el.Transform = f32.Affine2D{}

	elw := h.element
	switch h.cfg.kind {
	case Transform:
		target := affineTransform(start, end)
		h.animator.AddAnimation(func(r float64) {
			if el := elw.Value(); el != nil {
				el.Transform = geom.LerpAffine(f32.Affine2D{}, target, r)
			}
		})
	case Frame:
		h.animator.AddAnimation(func(r float64) {
			if el := elw.Value(); el != nil {
				el.Frame = geom.LerpRect(start, end, r)
			}
		})
	default:
		panic("unreachable")
	}
	h.animator.AddCompletion(h.settle(s))

	h.d.emit(Event{Kind: Started, Element: el, State: to})
	return true
}

// settle returns the completion handler of s. It parks the element at the
// anchor the animation ended at.
func (h *twoViews) settle(s *session) func(anim.Position) {
	return func(pos anim.Position) {
		var kind EventKind
		var at anchorRef
		switch pos {
		case anim.End:
			kind = Completed
			at = h.anchor(s.state)
		case anim.Start:
			kind = Cancelled
			at = h.anchor(s.state.opposite())
		default:
			h.d.log().Warn("ignoring animation outcome", "position", pos, "state", s.state)
			return
		}

		h.link.Stop()
		h.extra = 0
		if h.session == s {
			h.session = nil
		}
		h.state, h.hasState = s.state, true

		el := h.element.Value()
		if el == nil {
			return
		}
		el.Transform = f32.Affine2D{}
		if c := at.container.Value(); c != nil {
			c.AddChild(el)
			el.Frame = at.frame
		}
		h.d.emit(Event{Kind: kind, Element: el, State: s.state})
	}
}

// startLink starts the display link that reports progress while the animator
// settles over d, and sets extra to spread correction, the progress the
// animator still has to make, over the frames of d.
func (h *twoViews) startLink(d time.Duration, correction float64) {
	h.link.Stop()
	fps := h.link.Start(h.d.now(), d, h.frame)
	h.extra = 0
	if secs := d.Seconds(); secs > 0 {
		h.extra = correction / secs / fps * h.cfg.lagCompensation
	}
}

func (h *twoViews) frame(time.Time) {
	s := h.session
	if s == nil || !h.animator.Running() {
		return
	}
	el := h.element.Value()
	if el == nil {
		return
	}
	h.d.emit(Event{
		Kind:     Updated,
		Element:  el,
		State:    s.state,
		Progress: clampProgress(h.animator.Fraction() + h.extra),
	})
}

// complete animates the transition to its destination.
func (h *twoViews) complete() {
	if h.session == nil {
		return
	}
	f := h.animator.Fraction()
	h.startLink(time.Duration(float64(h.cfg.duration)*(1-f)), 1-f)
	h.animator.SetReversed(false)
	h.animator.Start()
}

// cancel animates the transition back to where it started.
func (h *twoViews) cancel() {
	if h.session == nil {
		return
	}
	f := h.animator.Fraction()
	h.startLink(time.Duration(float64(h.cfg.duration)*f), -f)
	h.animator.SetReversed(true)
	h.animator.Start()
}

func (h *twoViews) travel(to TravelState, animated bool) {
	h.resolve()
	anc := h.ancestor()
	if anc == nil {
		h.d.log().Debug("ignoring travel: anchors have no common ancestor", "to", to)
		return
	}
	if el := h.element.Value(); el == nil || el.Parent() == nil {
		h.d.log().Debug("ignoring travel: element is gone or detached", "to", to)
		return
	}
	if !h.prepare(to, anc, 0) {
		return
	}
	if animated {
		h.startLink(h.cfg.duration, 1)
		h.animator.Start()
	} else {
		h.animator.SetFraction(1)
		h.animator.Stop(false)
		h.animator.Finish(anim.End)
	}
}

// resolve finishes any transition in flight at its destination.
func (h *twoViews) resolve() {
	h.link.Stop()
	if h.session != nil && h.animator.State() == anim.Inactive {
		// The session hasn't received a drag sample yet.
		h.animator.SetFraction(0)
	}
	if h.animator.State() != anim.Inactive {
		h.animator.Stop(false)
		h.animator.Finish(anim.End)
	}
	h.session = nil
	h.extra = 0
}

func (h *twoViews) teardown() {
	h.resolve()
}
