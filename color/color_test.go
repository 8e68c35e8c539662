package color

import (
	"image/color"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	for _, c := range []color.NRGBA{
		{0, 0, 0, 0xFF},
		{0xFF, 0xFF, 0xFF, 0xFF},
		{0xD3, 0xD3, 0xD3, 0xFF},
		{0x44, 0x88, 0x44, 0x80},
		{0xBB, 0x5D, 0x5D, 0xFF},
	} {
		if got := FromNRGBA(c).NRGBA(); got != c {
			t.Errorf("got %v, want %v", got, c)
		}
	}
}

func TestMix(t *testing.T) {
	a := FromNRGBA(color.NRGBA{0xFF, 0, 0, 0xFF})
	b := FromNRGBA(color.NRGBA{0, 0, 0xFF, 0xFF})
	if got, want := Mix(a, b, 0).NRGBA(), a.NRGBA(); got != want {
		t.Errorf("got %v at 0, want %v", got, want)
	}
	if got, want := Mix(a, b, 1).NRGBA(), b.NRGBA(); got != want {
		t.Errorf("got %v at 1, want %v", got, want)
	}

	// Hues 350 and 10 are 20 degrees apart, not 340.
	m := Mix(Oklch{L: 0.5, C: 0.1, H: 350, A: 1}, Oklch{L: 0.5, C: 0.1, H: 10, A: 1}, 0.5)
	if m.H > 1 && m.H < 359 {
		t.Errorf("got hue %g, want close to 0", m.H)
	}

	// Mixing with gray keeps the chromatic color's hue.
	gray := Oklch{L: 0.5, A: 1}
	if h := Mix(gray, a, 0.5).H; h != a.H {
		t.Errorf("got hue %g, want %g", h, a.H)
	}
}
