// Package clip builds clip operations for float rectangles, which Gio's own
// clip.Rect cannot express.
package clip

import (
	"honnef.co/go/dragger/geom"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
)

type FRect struct {
	Min f32.Point
	Max f32.Point
}

func FromRect(r geom.Rect) FRect {
	return FRect{Min: r.Min, Max: r.Max}
}

func (r FRect) Path(ops *op.Ops) clip.PathSpec {
	var p clip.Path
	p.Begin(ops)
	r.IntoPath(&p, false)
	return p.End()
}

// IntoPath appends r's outline to p, clockwise or, if reverse is set,
// counter-clockwise.
func (r FRect) IntoPath(p *clip.Path, reverse bool) {
	p.MoveTo(r.Min)
	if reverse {
		p.LineTo(f32.Pt(r.Min.X, r.Max.Y))
		p.LineTo(r.Max)
		p.LineTo(f32.Pt(r.Max.X, r.Min.Y))
	} else {
		p.LineTo(f32.Pt(r.Max.X, r.Min.Y))
		p.LineTo(r.Max)
		p.LineTo(f32.Pt(r.Min.X, r.Max.Y))
	}
	p.LineTo(r.Min)
}

func (r FRect) Op(ops *op.Ops) clip.Op {
	return clip.Outline{Path: r.Path(ops)}.Op()
}

// RectangularOutline is the border of a rectangle, drawn inside of it.
type RectangularOutline struct {
	Rect  FRect
	Width float32
}

func (out RectangularOutline) Op(ops *op.Ops) clip.Op {
	var p clip.Path
	p.Begin(ops)
	out.Rect.IntoPath(&p, false)
	inner := FRect{
		Min: out.Rect.Min.Add(f32.Pt(out.Width, out.Width)),
		Max: out.Rect.Max.Sub(f32.Pt(out.Width, out.Width)),
	}
	inner.IntoPath(&p, true)
	p.Close()

	return clip.Outline{Path: p.End()}.Op()
}
