package style

import (
	"math"
	"strings"

	"github.com/deckforge/deckforge/pkg/color"
)

// Compound visual properties are products of the user knobs, the family
// params, and the mood params; never overrides. Both renderers must go
// through these helpers (or reproduce them exactly) or their outputs
// visibly diverge.

// Spacing composes base spacing with the user's density knob and the
// family/mood multipliers.
func Spacing(base, density float64, p Params, m MoodParams) float64 {
	return base * density * p.SpacingMultiplier * m.SpacingModifier
}

// AccentOpacity composes accent opacity, hard-clamped at 1.0 so contrast
// and mood can only attenuate, never amplify past full opacity.
func AccentOpacity(p Params, m MoodParams, contrastFactor float64) float64 {
	return p.AccentOpacity * math.Min(contrastFactor*m.ColorIntensity, 1)
}

// CornerRadius composes a base radius with the family roundness, the mood
// multiplier, and the render scale.
func CornerRadius(base, scale float64, p Params, m MoodParams) float64 {
	return base * p.ElementRoundness * m.CornerRadiusMultiplier * scale
}

// StrokeWidth composes a stroke-width multiplier with the mood element
// scale and the render scale. The multiplier is one of BorderThickness,
// LineThickness, or AccentThickness depending on what is being stroked.
func StrokeWidth(mult, scale float64, m MoodParams) float64 {
	return mult * m.ElementScale * scale
}

// ShadowOffset composes the family shadow offset with the mood shadow
// intensity and render scale. Returns 0 when the family draws no shadows.
func ShadowOffset(scale float64, p Params, m MoodParams) float64 {
	return p.ShadowOffset * m.ShadowIntensity * scale
}

// FontSize composes a base point size with the user's type scale knob and
// the mood element scale.
func FontSize(base, typeScale float64, m MoodParams) float64 {
	return base * typeScale * m.ElementScale
}

// ContrastFactor maps the user's 0–100 contrast level to a multiplicative
// factor around 1.0 (0 → 0.75, 50 → 1.0, 100 → 1.25).
func ContrastFactor(level int) float64 {
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	return 0.75 + float64(level)/200
}

// Label applies the family's label transform to a short label string.
func Label(s string, ls LabelStyle) string {
	if ls == LabelUppercase {
		return strings.ToUpper(s)
	}
	return s
}

// LabelSizeFactor returns the size multiplier implied by the label style.
func LabelSizeFactor(ls LabelStyle) float64 {
	if ls == LabelSmall {
		return 0.8
	}
	return 1
}

// Background resolves the effective slide background: the mood tint applies
// only when the user's chosen background is near-white, preserving explicit
// color choices over mood defaults.
func Background(userBackground string, m MoodParams) string {
	if m.BackgroundTint != "" && color.IsNearWhite(userBackground) {
		return m.BackgroundTint
	}
	return userBackground
}
