package view

import (
	"context"
	"image/color"
	rtrace "runtime/trace"

	"honnef.co/go/dragger/clip"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
)

type Inputter interface {
	Add(ops *op.Ops)
}

// Layout paints e and its subtree. The operation list's current transform is
// taken to be e's parent coordinate space.
func (e *Element) Layout(gtx layout.Context) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "view.Element.Layout").End()

	defer op.Affine(e.local()).Push(gtx.Ops).Pop()
	e.paint(gtx)
	for _, c := range e.children {
		c.Layout(gtx)
	}
	return layout.Dimensions{Size: e.Frame.Size().Round()}
}

func (e *Element) paint(gtx layout.Context) {
	r := clip.FRect{Max: e.Frame.Size()}
	if e.Fill.A != 0 {
		paint.FillShape(gtx.Ops, e.Fill, r.Op(gtx.Ops))
	}
	if e.Input != nil {
		stack := r.Op(gtx.Ops).Push(gtx.Ops)
		e.Input.Add(gtx.Ops)
		stack.Pop()
	}
}

// Outline strokes the inside of e's bounds. Unlike Layout, it expects the
// operation list's current transform to be the space e's root is laid out in.
func (e *Element) Outline(gtx layout.Context, width float32, col color.NRGBA) {
	defer op.Affine(e.transformFromRoot()).Push(gtx.Ops).Pop()
	paint.FillShape(gtx.Ops, col, clip.RectangularOutline{
		Rect:  clip.FRect{Max: e.Frame.Size()},
		Width: width,
	}.Op(gtx.Ops))
}

// transformFromRoot maps e's coordinate space to the space its root is laid
// out in.
func (e *Element) transformFromRoot() f32.Affine2D {
	var t f32.Affine2D
	for n := e; n != nil; n = n.parent {
		t = n.local().Mul(t)
	}
	return t
}
