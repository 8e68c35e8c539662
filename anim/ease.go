package anim

import "math"

// EasingFunction maps the fraction of an animation that has elapsed to the
// fraction of the way between its start and end values.
type EasingFunction func(float64) float64

func Linear(r float64) float64 { return r }

func EaseIn(power int) EasingFunction {
	switch power {
	case 1:
		return Linear
	case 2:
		return func(r float64) float64 { return r * r }
	case 3:
		return func(r float64) float64 { return r * r * r }
	default:
		return func(r float64) float64 { return math.Pow(r, float64(power)) }
	}
}

func EaseOut(power int) EasingFunction {
	switch power {
	case 1:
		return Linear
	case 2:
		return func(r float64) float64 { r = 1 - r; return 1 - r*r }
	case 3:
		return func(r float64) float64 { r = 1 - r; return 1 - r*r*r }
	default:
		return func(r float64) float64 { return 1 - math.Pow(1-r, float64(power)) }
	}
}

func EaseBezier(t float64) float64 {
	return t * t * (3.0 - 2.0*t)
}
