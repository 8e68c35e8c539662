package dragger

import (
	"honnef.co/go/dragger/geom"
	"honnef.co/go/dragger/view"

	"gioui.org/f32"
)

// travelUnit returns the signed distance, along axis and in ancestor's
// coordinate space, from the center of the anchor a transition toward state
// starts at to the center of the anchor it ends at. It reports false if either
// anchor isn't in ancestor's tree.
func travelUnit(backwards, forwards Anchor, ancestor *view.Element, axis geom.Axis, state TravelState) (float32, bool) {
	bc, ok := backwards.Container.ConvertPoint(backwards.Frame.Center(), ancestor)
	if !ok {
		return 0, false
	}
	fc, ok := forwards.Container.ConvertPoint(forwards.Frame.Center(), ancestor)
	if !ok {
		return 0, false
	}
	b, f := axis.Along(bc), axis.Along(fc)
	switch state {
	case Forwards:
		return f - b, true
	case Backwards:
		return b - f, true
	default:
		panic("unreachable")
	}
}

// affineTransform returns the transform that makes an element with frame from
// appear at to. Both rectangles are in the same coordinate space.
func affineTransform(from, to geom.Rect) f32.Affine2D {
	return geom.CenterTransform(from, to)
}

func clampProgress(p float64) float64 {
	return geom.Clamp01(p)
}

// shouldComplete decides the outcome of a released drag. A release at least
// as fast as trigger completes the transition when it points the way the
// transition travels and cancels it otherwise. Slower releases complete once
// progress has reached fraction.
func shouldComplete(unit, velocity float32, progress float64, trigger float32, fraction float64) bool {
	if unit != 0 {
		// Velocity along the direction of travel.
		v := velocity
		if unit < 0 {
			v = -v
		}
		switch {
		case v >= trigger:
			return true
		case v <= -trigger:
			return false
		}
	}
	return progress >= fraction
}
