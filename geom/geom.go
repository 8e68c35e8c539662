// Package geom implements the float geometry shared by the element tree and
// the drag handlers: rectangles, axis projections, and center-relative affine
// transforms.
package geom

import (
	"fmt"

	"gioui.org/f32"
	"golang.org/x/exp/constraints"
	"honnef.co/go/stuff/math/mathutil"
)

// Rect is an axis-aligned rectangle in float coordinates. Max is exclusive,
// like image.Rectangle.
type Rect struct {
	Min f32.Point
	Max f32.Point
}

// XYWH returns the rectangle with origin (x, y) and size (w, h).
func XYWH(x, y, w, h float32) Rect {
	return Rect{
		Min: f32.Pt(x, y),
		Max: f32.Pt(x+w, y+h),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("{%g,%g %gx%g}", r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

func (r Rect) Dx() float32 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float32 { return r.Max.Y - r.Min.Y }

func (r Rect) Size() f32.Point { return r.Max.Sub(r.Min) }

func (r Rect) Center() f32.Point {
	return f32.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
}

// Add translates r by p.
func (r Rect) Add(p f32.Point) Rect {
	return Rect{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// WithSize returns a rectangle with r's origin and the given size.
func (r Rect) WithSize(sz f32.Point) Rect {
	return Rect{Min: r.Min, Max: r.Min.Add(sz)}
}

// Bounds returns the smallest rectangle containing all points.
func Bounds(pts ...f32.Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}

// Axis is the screen dimension a gesture is measured along.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", a)
	}
}

// Along returns p's component along the axis.
func (a Axis) Along(p f32.Point) float32 {
	switch a {
	case Horizontal:
		return p.X
	case Vertical:
		return p.Y
	default:
		panic("unreachable")
	}
}

// Clamp01 limits p to [0, 1].
func Clamp01[T constraints.Float](p T) T {
	return min(1, max(0, p))
}

// CenterTransform returns the transform that maps from onto to, applied about
// from's center: independent x/y scaling by to.Size/from.Size followed by a
// translation of the centers. Degenerate source sizes keep a scale of 1.
func CenterTransform(from, to Rect) f32.Affine2D {
	sx, sy := float32(1), float32(1)
	if from.Dx() != 0 {
		sx = to.Dx() / from.Dx()
	}
	if from.Dy() != 0 {
		sy = to.Dy() / from.Dy()
	}
	return f32.Affine2D{}.
		Scale(f32.Point{}, f32.Pt(sx, sy)).
		Offset(to.Center().Sub(from.Center()))
}

// TransformRect returns the visual bounds of r when t is applied about r's
// center.
func TransformRect(r Rect, t f32.Affine2D) Rect {
	if t == (f32.Affine2D{}) {
		return r
	}
	c := r.Center()
	h := r.Size().Mul(0.5)
	corners := [4]f32.Point{
		f32.Pt(-h.X, -h.Y),
		f32.Pt(h.X, -h.Y),
		f32.Pt(h.X, h.Y),
		f32.Pt(-h.X, h.Y),
	}
	for i, p := range corners {
		corners[i] = t.Transform(p).Add(c)
	}
	return Bounds(corners[:]...)
}

// LerpRect interpolates between two rectangles.
func LerpRect(a, b Rect, ratio float64) Rect {
	return Rect{
		Min: f32.Pt(mathutil.Lerp(a.Min.X, b.Min.X, ratio), mathutil.Lerp(a.Min.Y, b.Min.Y, ratio)),
		Max: f32.Pt(mathutil.Lerp(a.Max.X, b.Max.X, ratio), mathutil.Lerp(a.Max.Y, b.Max.Y, ratio)),
	}
}

// LerpAffine interpolates the elements of two transforms. It is exact at
// ratio 0 and 1 and suitable for translate+scale transforms.
func LerpAffine(a, b f32.Affine2D, ratio float64) f32.Affine2D {
	switch ratio {
	case 0:
		return a
	case 1:
		return b
	}
	asx, ahx, aox, ahy, asy, aoy := a.Elems()
	bsx, bhx, box, bhy, bsy, boy := b.Elems()
	return f32.NewAffine2D(
		mathutil.Lerp(asx, bsx, ratio),
		mathutil.Lerp(ahx, bhx, ratio),
		mathutil.Lerp(aox, box, ratio),
		mathutil.Lerp(ahy, bhy, ratio),
		mathutil.Lerp(asy, bsy, ratio),
		mathutil.Lerp(aoy, boy, ratio),
	)
}
