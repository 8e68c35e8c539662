// Package color mixes colors in the Oklch color space, which keeps
// lightness changes perceptually even.
package color

import (
	"image/color"
	"math"

	"honnef.co/go/stuff/math/mathutil"
)

// Oklch is a color in polar Oklab coordinates. H is in degrees.
type Oklch struct {
	L float32
	C float32
	H float32
	A float32
}

type oklab struct {
	l, a, b float32
}

func (c Oklch) lab() oklab {
	h := float64(c.H) * (math.Pi / 180)
	return oklab{c.L, c.C * float32(math.Cos(h)), c.C * float32(math.Sin(h))}
}

func (c oklab) lch(alpha float32) Oklch {
	h := float32(math.Atan2(float64(c.b), float64(c.a)) * (180 / math.Pi))
	if h < 0 {
		h += 360
	}
	return Oklch{c.l, float32(math.Hypot(float64(c.a), float64(c.b))), h, alpha}
}

// linear converts to linear sRGB. Channels of colors outside the sRGB gamut
// fall outside [0, 1].
func (c oklab) linear() [3]float64 {
	l := cube(float64(c.l + 0.3963377774*c.a + 0.2158037573*c.b))
	m := cube(float64(c.l - 0.1055613458*c.a - 0.0638541728*c.b))
	s := cube(float64(c.l - 0.0894841775*c.a - 1.2914855480*c.b))
	return [3]float64{
		+4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		-1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		-0.0041960863*l - 0.7034186147*m + 1.7076147010*s,
	}
}

func cube(x float64) float64 { return x * x * x }

func fromLinear(rgb [3]float64) oklab {
	r, g, b := rgb[0], rgb[1], rgb[2]
	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)
	return oklab{
		float32(0.2104542553*l + 0.7936177850*m - 0.0040720468*s),
		float32(1.9779984951*l - 2.4285922050*m + 0.4505937099*s),
		float32(0.0259040371*l + 0.7827717662*m - 0.8086757660*s),
	}
}

func toSRGB(c float64) float64 {
	if c >= 0.0031308 {
		return 1.055*math.Pow(c, 1/2.4) - 0.055
	}
	return 12.92 * c
}

func fromSRGB(c float64) float64 {
	if c >= 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return c / 12.92
}

// FromNRGBA converts an sRGB color.
func FromNRGBA(c color.NRGBA) Oklch {
	rgb := [3]float64{
		fromSRGB(float64(c.R) / 0xFF),
		fromSRGB(float64(c.G) / 0xFF),
		fromSRGB(float64(c.B) / 0xFF),
	}
	return fromLinear(rgb).lch(float32(c.A) / 0xFF)
}

// NRGBA converts c to sRGB, clipping channels that fall outside the gamut.
func (c Oklch) NRGBA() color.NRGBA {
	rgb := c.lab().linear()
	ch := func(v float64) uint8 {
		return uint8(math.Round(min(1, max(0, toSRGB(v))) * 0xFF))
	}
	return color.NRGBA{ch(rgb[0]), ch(rgb[1]), ch(rgb[2]), uint8(math.Round(float64(min(1, max(0, c.A))) * 0xFF))}
}

// Mix interpolates between a and b, taking the shorter way around the hue
// circle.
func Mix(a, b Oklch, ratio float64) Oklch {
	h1, h2 := a.H, b.H
	// Achromatic colors have no meaningful hue.
	if a.C == 0 {
		h1 = h2
	} else if b.C == 0 {
		h2 = h1
	}
	switch d := h2 - h1; {
	case d > 180:
		h1 += 360
	case d < -180:
		h2 += 360
	}
	h := float32(math.Mod(float64(mathutil.Lerp(h1, h2, ratio)), 360))
	return Oklch{
		L: mathutil.Lerp(a.L, b.L, ratio),
		C: mathutil.Lerp(a.C, b.C, ratio),
		H: h,
		A: mathutil.Lerp(a.A, b.A, ratio),
	}
}
