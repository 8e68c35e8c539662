// Command dragdemo shows a square that can be dragged out of its container to
// fill the window and back, or dragged around freely.
//
// Keys: M switches between the two modes, A changes the drag axis, K changes
// how the square is animated, and Space moves the square to the other anchor.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"

	mycolor "honnef.co/go/dragger/color"
	"honnef.co/go/dragger/dragger"
	"honnef.co/go/dragger/geom"
	"honnef.co/go/dragger/gesture"
	"honnef.co/go/dragger/layout"
	"honnef.co/go/dragger/view"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
)

var (
	fDuration = flag.Duration("duration", dragger.DefaultDuration, "duration of settle animations")
	fVelocity = flag.Float64("velocity", dragger.DefaultVelocityTrigger, "release speed in px/s above which the release direction decides")
	fFraction = flag.Float64("fraction", dragger.DefaultCompletionFraction, "progress at which slow releases complete")
	fVerbose  = flag.Bool("v", false, "log dragger events")
)

var (
	colorBackground = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	colorContainer  = color.NRGBA{0xD3, 0xD3, 0xD3, 0xFF}
	colorBorder     = color.NRGBA{0x8E, 0x8E, 0x93, 0xFF}
	colorContent    = color.NRGBA{0x00, 0x00, 0x00, 0xFF}
	colorText       = color.NRGBA{0x00, 0x00, 0x00, 0xFF}
)

// The container fades toward containerEmpty as the square leaves it.
var (
	containerFull  = mycolor.FromNRGBA(colorContainer)
	containerEmpty = mycolor.FromNRGBA(color.NRGBA{0x5E, 0x81, 0xAC, 0xFF})
)

// contentFrame is the square's frame while it rests in the container.
var contentFrame = geom.XYWH(0, 0, 100, 100)

type demo struct {
	root      *view.Element
	container *view.Element
	content   *view.Element

	pan     gesture.Pan
	ignored bool
	d       *dragger.Dragger

	free bool
	axis geom.Axis
	kind dragger.AnimationKind

	lastEvent dragger.Event
	size      image.Point

	shaper *text.Shaper
}

func newDemo() *demo {
	dm := &demo{
		root:      view.New("window", geom.Rect{}),
		container: view.New("container", geom.XYWH(40, 80, 300, 300)),
		content:   view.New("content", contentFrame),
		axis:      geom.Vertical,
		kind:      dragger.Frame,
		shaper:    text.NewShaper(gofont.Collection()),
	}
	dm.root.Fill = colorBackground
	dm.container.Fill = colorContainer
	dm.content.Fill = colorContent
	dm.root.Input = &dm.pan
	dm.root.AddChild(dm.container)
	dm.container.AddChild(dm.content)

	dm.d = dragger.New(dm.content,
		dragger.WithObserver(dragger.ObserverFunc(dm.event)),
		dragger.WithDuration(*fDuration),
		dragger.WithVelocityTrigger(float32(*fVelocity)),
		dragger.WithCompletionFraction(*fFraction),
	)
	return dm
}

func (dm *demo) event(ev dragger.Event) {
	dm.lastEvent = ev

	var out float64
	switch ev.Kind {
	case dragger.Updated:
		out = ev.Progress
		if ev.State == dragger.Backwards {
			out = 1 - out
		}
	case dragger.Completed, dragger.Cancelled:
		if dm.content.Parent() == dm.container {
			out = 0
		} else {
			out = 1
		}
	case dragger.FreeStarted:
		out = 0
	default:
		return
	}
	dm.container.Fill = mycolor.Mix(containerFull, containerEmpty, out).NRGBA()
}

// configure installs the drag mode selected by the user.
func (dm *demo) configure() {
	var err error
	if dm.free {
		dm.d.SetKind(dm.kind)
		err = dm.d.SetFreeDrag(dm.root)
	} else {
		err = dm.d.SetTwoViews(dragger.TwoViews{
			Backwards: dragger.Anchor{Container: dm.container, Frame: contentFrame},
			Forwards:  dragger.Anchor{Container: dm.root, Frame: dm.root.Bounds()},
			Axis:      dm.axis,
			Kind:      dm.kind,
		})
	}
	if err != nil {
		slog.Error("couldn't configure dragger", "err", err)
	}
}

// resize adapts the forwards anchor to the window size.
func (dm *demo) resize(sz image.Point) {
	if sz == dm.size {
		return
	}
	dm.size = sz
	dm.root.Frame = geom.XYWH(0, 0, float32(sz.X), float32(sz.Y))
	if dm.free {
		return
	}
	dm.d.SetAnchorFrames(contentFrame, dm.root.Bounds())
	if dm.content.Parent() == dm.root {
		dm.d.Travel(dragger.Forwards, true)
	}
}

func (dm *demo) toggleTravel() {
	to := dragger.Forwards
	if dm.content.Parent() != dm.container {
		to = dragger.Backwards
	}
	if err := dm.d.Travel(to, true); err != nil {
		slog.Info("can't travel", "err", err)
	}
}

// handlePan forwards gestures that start on the square to the dragger.
func (dm *demo) handlePan(ev gesture.PanEvent) {
	if ev.Phase == gesture.PhaseBegan {
		dm.ignored = !dm.d.Animating() && !dm.hit(ev.Position)
	}
	if dm.ignored {
		return
	}
	dm.d.HandlePan(ev)
}

func (dm *demo) hit(p f32.Point) bool {
	r, ok := dm.content.Parent().ConvertRect(dm.content.VisualFrame(), dm.root)
	if !ok {
		return false
	}
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

func (dm *demo) Layout(gtx layout.Context) layout.Dimensions {
	dm.resize(gtx.Constraints.Max)
	for _, ev := range gtx.Events(dm) {
		if ev, ok := ev.(key.Event); ok && ev.State == key.Press {
			switch ev.Name {
			case "M":
				dm.free = !dm.free
				dm.configure()
			case "A":
				if dm.axis == geom.Horizontal {
					dm.axis = geom.Vertical
				} else {
					dm.axis = geom.Horizontal
				}
				dm.d.SetAxis(dm.axis)
			case "K":
				if dm.kind == dragger.Transform {
					dm.kind = dragger.Frame
				} else {
					dm.kind = dragger.Transform
				}
				dm.d.SetKind(dm.kind)
			case key.NameSpace:
				dm.toggleTravel()
			}
		}
	}
	for _, ev := range dm.pan.Update(gtx.Queue) {
		dm.handlePan(ev)
	}
	dm.d.Tick(gtx.Now)

	key.InputOp{Tag: dm, Keys: "M|A|K|" + key.NameSpace}.Add(gtx.Ops)
	key.FocusOp{Tag: dm}.Add(gtx.Ops)

	dm.root.Layout(gtx)
	dm.container.Outline(gtx, 2, colorBorder)
	layout.UniformInset(8).Layout(gtx, dm.layoutStatus)

	if dm.d.Animating() {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func (dm *demo) layoutStatus(gtx layout.Context) layout.Dimensions {
	mode := "two views"
	if dm.free {
		mode = "free"
	}
	state := "none"
	if st, ok := dm.d.TravelState(); ok {
		state = st.String()
	}
	rows := [][2]string{
		{"mode", mode},
		{"axis", dm.axis.String()},
		{"kind", dm.kind.String()},
		{"state", state},
		{"event", dm.lastEvent.Kind.String()},
		{"progress", fmt.Sprintf("%.3f", dm.lastEvent.Progress)},
	}
	if dm.lastEvent.Dragger == nil {
		rows[4][1] = "none"
	}

	grid := layout.StatusGrid{ColumnPadding: gtx.Dp(8)}
	return grid.Layout(gtx, len(rows), 2, func(gtx layout.Context, row, col int) layout.Dimensions {
		return dm.label(gtx, rows[row][col])
	})
}

func (dm *demo) label(gtx layout.Context, txt string) layout.Dimensions {
	m := op.Record(gtx.Ops)
	paint.ColorOp{Color: colorText}.Add(gtx.Ops)
	mat := m.Stop()
	return widget.Label{MaxLines: 1}.Layout(gtx, dm.shaper, font.Font{}, unit.Sp(14), txt, mat)
}

func run(w *app.Window) error {
	dm := newDemo()
	dm.configure()

	var ops op.Ops
	for {
		e := <-w.Events()
		switch ev := e.(type) {
		case system.DestroyEvent:
			return ev.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, ev)
			dm.Layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *fVerbose {
		level = slog.LevelDebug
	}
	dragger.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	go func() {
		w := app.NewWindow(app.Title("dragdemo"), app.Size(unit.Dp(800), unit.Dp(600)))
		err := run(w)
		if err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
