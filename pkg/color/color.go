// Package color provides color conversion, WCAG contrast math, and
// harmony-based palette generation for brand templates.
//
// All functions operate on 6-digit "#RRGGBB" hex strings. Malformed input
// fails with an INVALID_COLOR_FORMAT error rather than a silent default;
// this is the one boundary where the core rejects bad color data.
package color

import (
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/deckforge/deckforge/pkg/errors"
)

// HSL is a color in hue/saturation/lightness space.
// H is in degrees [0, 360); S and L are in [0, 1].
type HSL struct {
	H float64
	S float64
	L float64
}

// HexToHSL converts a "#RRGGBB" string to HSL.
func HexToHSL(hex string) (HSL, error) {
	c, err := parse(hex)
	if err != nil {
		return HSL{}, err
	}
	h, s, l := hsl(c)
	return HSL{H: h, S: s, L: l}, nil
}

// HSLToHex converts an HSL value to an uppercase "#RRGGBB" string.
// The round trip HexToHSL → HSLToHex is lossless within ±1 per channel.
func HSLToHex(c HSL) string {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	col := fromHSL(h, clamp01(c.S), clamp01(c.L))
	return strings.ToUpper(col.Clamped().Hex())
}

// ContrastRatio returns the WCAG contrast ratio between two colors,
// in [1, 21]. The ratio is symmetric; equal colors yield 1.0.
func ContrastRatio(a, b string) (float64, error) {
	ca, err := parse(a)
	if err != nil {
		return 0, err
	}
	cb, err := parse(b)
	if err != nil {
		return 0, err
	}
	return ratio(relativeLuminance(ca), relativeLuminance(cb)), nil
}

// MeetsAA reports whether fg on bg satisfies WCAG AA for normal text (≥4.5:1).
func MeetsAA(fg, bg string) (bool, error) {
	r, err := ContrastRatio(fg, bg)
	if err != nil {
		return false, err
	}
	return r >= 4.5, nil
}

// MeetsAALarge reports whether fg on bg satisfies WCAG AA for large text (≥3:1).
func MeetsAALarge(fg, bg string) (bool, error) {
	r, err := ContrastRatio(fg, bg)
	if err != nil {
		return false, err
	}
	return r >= 3.0, nil
}

// IsNearWhite reports whether every RGB channel of hex exceeds 240.
// Mood background tints only apply to near-white backgrounds so explicit
// user color choices are preserved.
func IsNearWhite(hex string) bool {
	c, err := parse(hex)
	if err != nil {
		return false
	}
	r, g, b := c.RGB255()
	return r > 240 && g > 240 && b > 240
}

func parse(hex string) (colorful.Color, error) {
	if err := errors.ValidateHexColor(hex); err != nil {
		return colorful.Color{}, err
	}
	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidColorFormat, err, "parse %q", hex)
	}
	return c, nil
}

// hsl converts to HSL. colorful exposes Hsv natively; HSL is derived from
// the raw RGB channels to match the conventional formulation.
func hsl(c colorful.Color) (h, s, l float64) {
	maxC := math.Max(c.R, math.Max(c.G, c.B))
	minC := math.Min(c.R, math.Min(c.G, c.B))
	l = (maxC + minC) / 2

	if maxC == minC {
		return 0, 0, l
	}

	d := maxC - minC
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	switch maxC {
	case c.R:
		h = (c.G - c.B) / d
		if c.G < c.B {
			h += 6
		}
	case c.G:
		h = (c.B-c.R)/d + 2
	default:
		h = (c.R-c.G)/d + 4
	}
	return h * 60, s, l
}

func fromHSL(h, s, l float64) colorful.Color {
	if s == 0 {
		return colorful.Color{R: l, G: l, B: l}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return colorful.Color{
		R: hueToRGB(p, q, h/360+1.0/3),
		G: hueToRGB(p, q, h/360),
		B: hueToRGB(p, q, h/360-1.0/3),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// relativeLuminance implements the WCAG 2.x relative luminance formula.
func relativeLuminance(c colorful.Color) float64 {
	lin := func(ch float64) float64 {
		if ch <= 0.03928 {
			return ch / 12.92
		}
		return math.Pow((ch+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

func ratio(la, lb float64) float64 {
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
