package view

import (
	"testing"

	"honnef.co/go/dragger/geom"

	"gioui.org/f32"
)

// tree builds
//
//	root (0,0 800x600)
//	├── left (10,20 300x300)
//	│   └── item (5,5 100x100)
//	└── stack (400,0 400x600, NoConvert)
//	    └── right (0,100 200x200)
func tree() (root, left, item, stack, right *Element) {
	root = New("root", geom.XYWH(0, 0, 800, 600))
	left = New("left", geom.XYWH(10, 20, 300, 300))
	item = New("item", geom.XYWH(5, 5, 100, 100))
	stack = New("stack", geom.XYWH(400, 0, 400, 600))
	stack.NoConvert = true
	right = New("right", geom.XYWH(0, 100, 200, 200))
	root.AddChild(left)
	left.AddChild(item)
	root.AddChild(stack)
	stack.AddChild(right)
	return
}

func TestAddChildReparents(t *testing.T) {
	root, left, item, _, right := tree()
	right.AddChild(item)
	if item.Parent() != right {
		t.Errorf("item parent = %v, want %v", item.Parent(), right)
	}
	if len(left.Children()) != 0 {
		t.Errorf("left still has children %v", left.Children())
	}
	if !item.IsDescendant(root) {
		t.Errorf("item should be a descendant of root")
	}
	if item.IsDescendant(left) {
		t.Errorf("item should no longer be a descendant of left")
	}

	item.RemoveFromParent()
	if item.Parent() != nil || len(right.Children()) != 0 {
		t.Errorf("RemoveFromParent left item attached")
	}
	// removing twice is harmless
	item.RemoveFromParent()
}

func TestAddChildCycle(t *testing.T) {
	root, left, _, _, _ := tree()
	defer func() {
		if recover() == nil {
			t.Errorf("adding an ancestor as a child did not panic")
		}
	}()
	left.AddChild(root)
}

func TestConvert(t *testing.T) {
	root, left, item, _, right := tree()

	tests := []struct {
		from, to *Element
		in, want geom.Rect
	}{
		{left, root, item.Frame, geom.XYWH(15, 25, 100, 100)},
		{root, left, geom.XYWH(15, 25, 100, 100), item.Frame},
		{left, right, item.Frame, geom.XYWH(-385, -75, 100, 100)},
		{item, item, geom.XYWH(1, 2, 3, 4), geom.XYWH(1, 2, 3, 4)},
	}
	for _, tt := range tests {
		got, ok := tt.from.ConvertRect(tt.in, tt.to)
		if !ok {
			t.Errorf("converting %v from %s to %s failed", tt.in, tt.from.Name, tt.to.Name)
			continue
		}
		if got != tt.want {
			t.Errorf("converting %v from %s to %s = %v, want %v", tt.in, tt.from.Name, tt.to.Name, got, tt.want)
		}
	}

	if fr, ok := item.FrameIn(root); !ok || fr != geom.XYWH(15, 25, 100, 100) {
		t.Errorf("item.FrameIn(root) = %v, %t", fr, ok)
	}

	other := New("other", geom.XYWH(0, 0, 10, 10))
	if _, ok := other.ConvertRect(geom.XYWH(0, 0, 1, 1), root); ok {
		t.Errorf("conversion between separate trees succeeded")
	}
}

func TestConvertThroughTransform(t *testing.T) {
	root, left, item, _, _ := tree()
	// Scale left by 2 about its center (160,170 in root space).
	left.Transform = f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(2, 2))

	got, ok := left.ConvertPoint(f32.Pt(150, 150), root)
	if !ok || got != f32.Pt(160, 170) {
		t.Errorf("center of scaled element maps to %v, want (160, 170)", got)
	}
	got, _ = left.ConvertPoint(f32.Pt(0, 0), root)
	if got != f32.Pt(-140, -130) {
		t.Errorf("origin of scaled element maps to %v, want (-140, -130)", got)
	}
	back, _ := root.ConvertPoint(got, left)
	if back != (f32.Point{}) {
		t.Errorf("round trip gives %v, want origin", back)
	}

	v, _ := item.ConvertVector(f32.Pt(10, 0), root)
	if v != f32.Pt(20, 0) {
		t.Errorf("vector through scaled parent = %v, want (20, 0)", v)
	}
}

func TestCommonAncestor(t *testing.T) {
	root, left, item, stack, right := tree()

	tests := []struct {
		a, b, want *Element
	}{
		{left, right, root},
		{item, left, left},
		{left, item, left},
		{right, stack, root},
		{item, item, item},
		{nil, item, nil},
	}
	for _, tt := range tests {
		if got := CommonAncestor(tt.a, tt.b); got != tt.want {
			t.Errorf("CommonAncestor(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}

	other := New("other", geom.XYWH(0, 0, 10, 10))
	if got := CommonAncestor(item, other); got != nil {
		t.Errorf("CommonAncestor across trees = %v, want nil", got)
	}
}

func TestVisualFrame(t *testing.T) {
	_, _, item, _, _ := tree()
	item.Transform = geom.CenterTransform(item.Frame, geom.XYWH(105, 5, 100, 100))
	if got := item.VisualFrame(); got != geom.XYWH(105, 5, 100, 100) {
		t.Errorf("VisualFrame = %v", got)
	}
	if item.Frame != geom.XYWH(5, 5, 100, 100) {
		t.Errorf("transform modified the stored frame: %v", item.Frame)
	}
}
