// Package dragger moves an element of a view tree by dragging it, either
// between two anchors with an interruptible, reversible animation, or freely
// across a surface.
//
// A Dragger doesn't own any elements. It is fed pan gestures with HandlePan
// and frame times with Tick, all on the goroutine that owns the tree.
package dragger

import (
	"fmt"
	"log/slog"
	"time"
	"weak"

	"honnef.co/go/dragger/anim"
	"honnef.co/go/dragger/container"
	"honnef.co/go/dragger/geom"
	"honnef.co/go/dragger/gesture"
	"honnef.co/go/dragger/view"
)

const (
	DefaultDuration           = 500 * time.Millisecond
	DefaultVelocityTrigger    = 200
	DefaultCompletionFraction = 0.33333
	// DefaultLagCompensation scales the extra progress added to reports
	// during settling. Reports run ahead of the animator by about this many
	// frames' worth of progress.
	DefaultLagCompensation = 2
)

type config struct {
	axis     geom.Axis
	kind     AnimationKind
	duration time.Duration
	curve    anim.EasingFunction
	// Releases faster than this, in pixels per second, decide the outcome
	// by their direction.
	velocityTrigger float32
	// Slower releases complete the transition if it has progressed at least
	// this far.
	completionFraction float64
	lagCompensation    float64
	fps                float64
}

type handler interface {
	handlePan(ev gesture.PanEvent)
	tick(now time.Time)
	animating() bool
	travelState() (TravelState, bool)
	teardown()
}

// A Dragger drags a single element. The zero value is not usable, use New.
type Dragger struct {
	element  weak.Pointer[view.Element]
	observer Observer
	logger   *slog.Logger
	now      func() time.Time
	cfg      config

	twoViews container.Option[twoViewsRef]
	surface  weak.Pointer[view.Element]

	handler handler
}

type Option func(d *Dragger)

func WithObserver(o Observer) Option {
	return func(d *Dragger) { d.observer = o }
}

func WithDuration(dur time.Duration) Option {
	return func(d *Dragger) { d.cfg.duration = dur }
}

// WithVelocityTrigger sets the release speed, in pixels per second, above
// which the direction of a release decides whether a transition completes.
func WithVelocityTrigger(v float32) Option {
	return func(d *Dragger) { d.cfg.velocityTrigger = v }
}

// WithCompletionFraction sets the progress at or above which slow releases
// complete a transition.
func WithCompletionFraction(f float64) Option {
	return func(d *Dragger) { d.cfg.completionFraction = f }
}

// WithCurve sets the easing of settle animations.
func WithCurve(fn anim.EasingFunction) Option {
	return func(d *Dragger) { d.cfg.curve = fn }
}

// WithClock sets the function used to read the current time when settle
// animations start. It should agree with the times passed to Tick.
func WithClock(now func() time.Time) Option {
	return func(d *Dragger) { d.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(d *Dragger) { d.logger = l }
}

// WithFPS sets the refresh rate progress reports during settling are spread
// over.
func WithFPS(fps float64) Option {
	return func(d *Dragger) { d.cfg.fps = fps }
}

func WithLagCompensation(f float64) Option {
	return func(d *Dragger) { d.cfg.lagCompensation = f }
}

// New returns a dragger for el. It does nothing until configured with
// SetTwoViews or SetFreeDrag.
func New(el *view.Element, opts ...Option) *Dragger {
	d := &Dragger{
		element: weak.Make(el),
		now:     time.Now,
		cfg: config{
			axis:               geom.Horizontal,
			kind:               Transform,
			duration:           DefaultDuration,
			velocityTrigger:    DefaultVelocityTrigger,
			completionFraction: DefaultCompletionFraction,
			lagCompensation:    DefaultLagCompensation,
			fps:                anim.DefaultFPS,
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dragger) log() *slog.Logger {
	if d.logger != nil {
		return d.logger
	}
	return Logger()
}

func (d *Dragger) emit(ev Event) {
	ev.Dragger = d
	d.log().Debug("dragger event", "kind", ev.Kind, "element", ev.Element, "state", ev.State, "progress", ev.Progress)
	if d.observer != nil {
		d.observer.DraggerEvent(ev)
	}
}

// Element returns the dragged element, or nil if it has been collected.
func (d *Dragger) Element() *view.Element { return d.element.Value() }

// install replaces the active handler according to the current
// configuration.
func (d *Dragger) install() {
	if d.handler != nil {
		d.handler.teardown()
		d.handler = nil
	}
	el := d.element.Value()
	if el == nil {
		return
	}
	if tv, ok := d.twoViews.Get(); ok {
		d.handler = newTwoViews(d, el, tv, d.cfg)
	} else if s := d.surface.Value(); s != nil {
		d.handler = newFreeDrag(d, el, s, d.cfg)
	}
}

// SetTwoViews makes the dragger move its element between two anchors. Any
// transition in flight is finished first.
func (d *Dragger) SetTwoViews(tv TwoViews) error {
	if d.element.Value() == nil {
		return ErrNoElement
	}
	if err := tv.validate(); err != nil {
		return err
	}
	d.cfg.axis = tv.Axis
	d.cfg.kind = tv.Kind
	d.twoViews = container.Some(makeTwoViewsRef(tv))
	d.surface = weak.Pointer[view.Element]{}
	d.install()
	return nil
}

// SetFreeDrag makes the dragger move its element freely across surface.
func (d *Dragger) SetFreeDrag(surface *view.Element) error {
	if d.element.Value() == nil {
		return ErrNoElement
	}
	if surface == nil {
		return ErrNoSurface
	}
	d.twoViews = container.None[twoViewsRef]()
	d.surface = weak.Make(surface)
	d.install()
	return nil
}

// SetAnchorFrames changes the rectangles of both anchors, keeping their
// containers.
func (d *Dragger) SetAnchorFrames(backwards, forwards geom.Rect) error {
	tv, ok := d.twoViews.Get()
	if !ok {
		return ErrNotTwoViews
	}
	tv.backwards.frame = backwards
	tv.forwards.frame = forwards
	d.twoViews = container.Some(tv)
	d.install()
	return nil
}

func (d *Dragger) SetAxis(axis geom.Axis) {
	d.cfg.axis = axis
	d.install()
}

func (d *Dragger) SetKind(kind AnimationKind) {
	d.cfg.kind = kind
	d.install()
}

func (d *Dragger) SetDuration(dur time.Duration) {
	d.cfg.duration = dur
	d.install()
}

func (d *Dragger) SetThresholds(velocity float32, fraction float64) {
	d.cfg.velocityTrigger = velocity
	d.cfg.completionFraction = fraction
	d.install()
}

func (d *Dragger) Axis() geom.Axis { return d.cfg.axis }

func (d *Dragger) Kind() AnimationKind { return d.cfg.kind }

func (d *Dragger) Duration() time.Duration { return d.cfg.duration }

// Travel moves the element to the anchor for state, animated over the
// configured duration or immediately. A transition in flight is finished
// first. Travel fails if the dragger isn't configured with two views.
func (d *Dragger) Travel(to TravelState, animated bool) error {
	h, ok := d.handler.(*twoViews)
	if !ok {
		return fmt.Errorf("travel to %s: %w", to, ErrNotTwoViews)
	}
	h.travel(to, animated)
	return nil
}

// HandlePan feeds a pan gesture to the dragger. Translation and velocity are
// in the coordinate space of the root of the element's tree.
func (d *Dragger) HandlePan(ev gesture.PanEvent) {
	if d.handler != nil {
		d.handler.handlePan(ev)
	}
}

// Tick advances settle animations to now.
func (d *Dragger) Tick(now time.Time) {
	if d.handler != nil {
		d.handler.tick(now)
	}
}

// Animating reports whether the dragger needs further calls to Tick.
func (d *Dragger) Animating() bool {
	return d.handler != nil && d.handler.animating()
}

// TravelState returns the state of the current or most recent transition.
func (d *Dragger) TravelState() (TravelState, bool) {
	if d.handler == nil {
		return 0, false
	}
	return d.handler.travelState()
}

// Close finishes any transition in flight and detaches the dragger from its
// element. It is safe to call Close more than once.
func (d *Dragger) Close() {
	if d.handler != nil {
		d.handler.teardown()
		d.handler = nil
	}
	d.twoViews = container.None[twoViewsRef]()
	d.surface = weak.Pointer[view.Element]{}
}
