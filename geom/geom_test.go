package geom

import (
	"math"
	"testing"

	"gioui.org/f32"
)

func TestClamp01(t *testing.T) {
	inputs := []float64{math.Inf(-1), -1e9, -1, -0.0001, 0, 0.25, 0.5, 1, 1.0001, 7, math.Inf(1)}
	for _, in := range inputs {
		got := Clamp01(in)
		if got < 0 || got > 1 {
			t.Errorf("Clamp01(%v) = %v, want value in [0, 1]", in, got)
		}
		if again := Clamp01(got); again != got {
			t.Errorf("Clamp01(Clamp01(%v)) = %v, want %v", in, again, got)
		}
	}
	for _, in := range []float32{0, 0.3, 1} {
		if got := Clamp01(in); got != in {
			t.Errorf("Clamp01(%v) = %v, want it unchanged", in, got)
		}
	}
}

func TestRect(t *testing.T) {
	r := XYWH(300, 0, 100, 50)
	if r.Dx() != 100 || r.Dy() != 50 {
		t.Errorf("size of %v = %vx%v, want 100x50", r, r.Dx(), r.Dy())
	}
	if c := r.Center(); c != f32.Pt(350, 25) {
		t.Errorf("center of %v = %v, want (350, 25)", r, c)
	}
	if got := r.Add(f32.Pt(-300, 10)); got != XYWH(0, 10, 100, 50) {
		t.Errorf("translated rect = %v, want %v", got, XYWH(0, 10, 100, 50))
	}
	if !XYWH(1, 1, 0, 5).Empty() {
		t.Errorf("zero width rect should be empty")
	}
	if got := Bounds(f32.Pt(3, -1), f32.Pt(-2, 4), f32.Pt(0, 0)); got != (Rect{Min: f32.Pt(-2, -1), Max: f32.Pt(3, 4)}) {
		t.Errorf("Bounds = %v", got)
	}
}

func TestAxisAlong(t *testing.T) {
	p := f32.Pt(3, -4)
	if got := Horizontal.Along(p); got != 3 {
		t.Errorf("Horizontal.Along(%v) = %v, want 3", p, got)
	}
	if got := Vertical.Along(p); got != -4 {
		t.Errorf("Vertical.Along(%v) = %v, want -4", p, got)
	}
}

func TestCenterTransform(t *testing.T) {
	tests := []struct {
		from, to Rect
	}{
		{XYWH(0, 0, 100, 100), XYWH(300, 0, 100, 100)},
		{XYWH(0, 0, 100, 100), XYWH(200, 100, 400, 200)},
		{XYWH(50, 50, 20, 40), XYWH(0, 0, 10, 10)},
	}
	for _, tt := range tests {
		tr := CenterTransform(tt.from, tt.to)
		if got := TransformRect(tt.from, tr); got != tt.to {
			t.Errorf("TransformRect(%v, CenterTransform(%v, %v)) = %v, want %v", tt.from, tt.from, tt.to, got, tt.to)
		}
	}

	if tr := CenterTransform(XYWH(0, 0, 10, 10), XYWH(0, 0, 10, 10)); tr != (f32.Affine2D{}) {
		t.Errorf("transform between equal rects = %v, want identity", tr)
	}
}

func TestLerp(t *testing.T) {
	a := XYWH(0, 0, 100, 100)
	b := XYWH(300, 0, 100, 100)
	if got := LerpRect(a, b, 0.5); got != XYWH(150, 0, 100, 100) {
		t.Errorf("LerpRect at 0.5 = %v, want %v", got, XYWH(150, 0, 100, 100))
	}

	target := CenterTransform(a, XYWH(0, 0, 200, 200))
	if got := LerpAffine(f32.Affine2D{}, target, 1); got != target {
		t.Errorf("LerpAffine at 1 = %v, want %v", got, target)
	}
	if got := LerpAffine(f32.Affine2D{}, target, 0); got != (f32.Affine2D{}) {
		t.Errorf("LerpAffine at 0 = %v, want identity", got)
	}
	mid := TransformRect(a, LerpAffine(f32.Affine2D{}, target, 0.5))
	if mid.Dx() != 150 || mid.Dy() != 150 {
		t.Errorf("halfway scale gives %vx%v, want 150x150", mid.Dx(), mid.Dy())
	}
}
