// Package view implements a small retained element tree. Elements have a
// frame in their parent's coordinate space and an optional transform applied
// about their center. The tree supports reparenting, conversion of points and
// rectangles between any two elements sharing a root, and rendering with Gio.
package view

import (
	"fmt"
	"image/color"

	"honnef.co/go/dragger/geom"

	"gioui.org/f32"
	"golang.org/x/exp/slices"
)

type Element struct {
	Name string
	// Frame is the element's untransformed rectangle in its parent's
	// coordinate space.
	Frame geom.Rect
	// Transform is applied about the center of Frame. The zero value is the
	// identity.
	Transform f32.Affine2D
	// NoConvert marks containers that lay out their children themselves, such
	// as stacks. They are never chosen as a common ancestor.
	NoConvert bool

	Fill color.NRGBA
	// Input, if set, is added to the operation list while the element's area
	// is clipped, so that it receives pointer input for the element.
	Input Inputter

	parent   *Element
	children []*Element
}

func New(name string, frame geom.Rect) *Element {
	return &Element{Name: name, Frame: frame}
}

func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s%v", e.Name, e.Frame)
}

func (e *Element) Parent() *Element { return e.parent }

// Children returns the element's children, back to front. The slice must not
// be modified.
func (e *Element) Children() []*Element { return e.children }

// AddChild moves c to the front of e's children, removing it from its previous
// parent. c's frame is not adjusted.
func (e *Element) AddChild(c *Element) {
	if c == e {
		panic("element cannot be its own child")
	}
	if e.IsDescendant(c) {
		panic(fmt.Sprintf("adding %s to %s would create a cycle", c.Name, e.Name))
	}
	c.RemoveFromParent()
	c.parent = e
	e.children = append(e.children, c)
}

func (e *Element) RemoveFromParent() {
	if e.parent == nil {
		return
	}
	p := e.parent
	if i := slices.Index(p.children, e); i != -1 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	e.parent = nil
}

// IsDescendant reports whether e is of or lies below it in the tree.
func (e *Element) IsDescendant(of *Element) bool {
	for n := e; n != nil; n = n.parent {
		if n == of {
			return true
		}
	}
	return false
}

func (e *Element) Root() *Element {
	n := e
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Bounds returns the element's rectangle in its own coordinate space.
func (e *Element) Bounds() geom.Rect {
	return geom.Rect{Max: e.Frame.Size()}
}

// VisualFrame returns the element's on-screen rectangle in its parent's
// coordinate space, with the transform applied.
func (e *Element) VisualFrame() geom.Rect {
	return geom.TransformRect(e.Frame, e.Transform)
}

// local maps points in e's coordinate space to its parent's.
func (e *Element) local() f32.Affine2D {
	half := e.Frame.Size().Mul(0.5)
	return e.Transform.
		Mul(f32.Affine2D{}.Offset(half.Mul(-1))).
		Offset(e.Frame.Center())
}

func (e *Element) toParent(p f32.Point) f32.Point {
	if e.Transform == (f32.Affine2D{}) {
		return p.Add(e.Frame.Min)
	}
	return e.local().Transform(p)
}

func (e *Element) fromParent(p f32.Point) f32.Point {
	if e.Transform == (f32.Affine2D{}) {
		return p.Sub(e.Frame.Min)
	}
	return e.local().Invert().Transform(p)
}

// path returns the chain from e up to and including the root.
func (e *Element) path() []*Element {
	var out []*Element
	for n := e; n != nil; n = n.parent {
		out = append(out, n)
	}
	return out
}

// ConvertPoint converts p from e's coordinate space to to's. It reports false
// if the two elements are not part of the same tree.
func (e *Element) ConvertPoint(p f32.Point, to *Element) (f32.Point, bool) {
	if e == to {
		return p, true
	}
	up := e.path()
	down := to.path()
	if up[len(up)-1] != down[len(down)-1] {
		return f32.Point{}, false
	}
	// Strip the shared part of both chains so that we only convert through
	// the lowest common element.
	for len(up) > 0 && len(down) > 0 && up[len(up)-1] == down[len(down)-1] {
		up = up[:len(up)-1]
		down = down[:len(down)-1]
	}
	for _, n := range up {
		p = n.toParent(p)
	}
	for i := len(down) - 1; i >= 0; i-- {
		p = down[i].fromParent(p)
	}
	return p, true
}

// ConvertRect converts r from e's coordinate space to to's. If transforms are
// involved the result is the bounding box of the converted corners.
func (e *Element) ConvertRect(r geom.Rect, to *Element) (geom.Rect, bool) {
	corners := [4]f32.Point{r.Min, f32.Pt(r.Max.X, r.Min.Y), r.Max, f32.Pt(r.Min.X, r.Max.Y)}
	for i, p := range corners {
		q, ok := e.ConvertPoint(p, to)
		if !ok {
			return geom.Rect{}, false
		}
		corners[i] = q
	}
	return geom.Bounds(corners[:]...), true
}

// ConvertVector converts a displacement, such as a gesture translation or
// velocity, from e's coordinate space to to's.
func (e *Element) ConvertVector(v f32.Point, to *Element) (f32.Point, bool) {
	o, ok := e.ConvertPoint(f32.Point{}, to)
	if !ok {
		return f32.Point{}, false
	}
	p, _ := e.ConvertPoint(v, to)
	return p.Sub(o), true
}

// FrameIn returns e's untransformed frame converted to the coordinate space of
// to.
func (e *Element) FrameIn(to *Element) (geom.Rect, bool) {
	if e.parent == nil {
		return geom.Rect{}, false
	}
	return e.parent.ConvertRect(e.Frame, to)
}

// CommonAncestor returns the lowest element on a's ancestor chain, a included,
// that has b as a descendant, skipping elements marked NoConvert. It returns
// nil if there is no such element.
func CommonAncestor(a, b *Element) *Element {
	if a == nil || b == nil {
		return nil
	}
	for n := a; n != nil; n = n.parent {
		if b.IsDescendant(n) && !n.NoConvert {
			return n
		}
	}
	return nil
}
