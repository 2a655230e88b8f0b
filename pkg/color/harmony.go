package color

import (
	"math"
	"math/rand"

	"github.com/deckforge/deckforge/pkg/errors"
)

// Harmony is a color-theory rule for deriving a multi-color palette from
// one base hue.
type Harmony string

// Supported harmony modes.
const (
	HarmonyComplementary      Harmony = "complementary"
	HarmonyAnalogous          Harmony = "analogous"
	HarmonyTriadic            Harmony = "triadic"
	HarmonySplitComplementary Harmony = "splitComplementary"
	HarmonyMonochromatic      Harmony = "monochromatic"
)

// Harmonies lists every supported harmony mode.
var Harmonies = []Harmony{
	HarmonyComplementary,
	HarmonyAnalogous,
	HarmonyTriadic,
	HarmonySplitComplementary,
	HarmonyMonochromatic,
}

// Mood constrains the randomly chosen base hue to a temperature band.
type Mood string

// Supported color moods.
const (
	MoodWarm    Mood = "warm"
	MoodCool    Mood = "cool"
	MoodNeutral Mood = "neutral"
)

// Contrast thresholds applied by the repair loop.
const (
	textContrastTarget   = 4.5 // primary/secondary/neutral vs background
	accentContrastTarget = 3.0 // accent vs background (large-text threshold)

	repairMaxSteps = 50
	repairStep     = 0.02 // 2% lightness per step
)

// Options configures palette generation.
type Options struct {
	Harmony Harmony
	Mood    Mood

	// Current supplies role colors for locked roles. May be nil.
	Current *Palette

	// Locked roles are copied verbatim from Current after generation.
	Locked Locks

	// Rand supplies the hue randomness. Nil uses the shared source;
	// tests inject a seeded source for determinism.
	Rand *rand.Rand
}

// temperature tunes seeded generation per color mood.
type temperature struct {
	saturationMul    float64 // multiplier on derived saturations
	lightnessShift   float64 // additive shift on derived lightness
	accentSaturation float64 // saturation target for the accent role
	backgroundWarmth float64 // hue pull toward warm tones for the background
}

var temperatures = map[Mood]temperature{
	MoodWarm:    {saturationMul: 1.1, lightnessShift: 0.02, accentSaturation: 0.9, backgroundWarmth: 40},
	MoodCool:    {saturationMul: 0.95, lightnessShift: -0.02, accentSaturation: 0.8, backgroundWarmth: 220},
	MoodNeutral: {saturationMul: 1.0, lightnessShift: 0, accentSaturation: 0.85, backgroundWarmth: 0},
}

// Generate produces a palette from a random base hue constrained by the
// mood band, derives companion hues per the harmony mode, assigns fixed
// saturation/lightness roles, and repairs contrast against the background.
func Generate(opts Options) (Palette, error) {
	if err := validateHarmony(opts.Harmony); err != nil {
		return Palette{}, err
	}
	base := randomHue(opts.Mood, opts.Rand)
	p := build(base, opts.Harmony, temperatures[normalizeMood(opts.Mood)])
	p = repairContrast(p)
	return applyLocks(p, opts.Current, opts.Locked), nil
}

// GenerateFromSeed derives the palette hues from the seed color's own hue
// instead of a random base. The seed lands on the primary role and is still
// subject to contrast repair, which can shift its exact value; callers that
// need the seed verbatim should lock the primary role.
func GenerateFromSeed(seedHex string, opts Options) (Palette, error) {
	if err := validateHarmony(opts.Harmony); err != nil {
		return Palette{}, err
	}
	seed, err := HexToHSL(seedHex)
	if err != nil {
		return Palette{}, err
	}
	temp := temperatures[normalizeMood(opts.Mood)]
	p := build(seed.H, opts.Harmony, temp)

	// The seed keeps its own saturation and lightness on the primary role,
	// shifted by the mood temperature.
	p.Primary = HSLToHex(HSL{
		H: seed.H,
		S: clamp01(seed.S * temp.saturationMul),
		L: clamp01(seed.L + temp.lightnessShift),
	})

	p = repairContrast(p)
	return applyLocks(p, opts.Current, opts.Locked), nil
}

func validateHarmony(h Harmony) error {
	for _, known := range Harmonies {
		if h == known {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidHarmony, "unknown harmony mode: %q", h)
}

func normalizeMood(m Mood) Mood {
	switch m {
	case MoodWarm, MoodCool, MoodNeutral:
		return m
	}
	return MoodNeutral
}

// randomHue picks a base hue inside the mood's temperature band.
func randomHue(m Mood, r *rand.Rand) float64 {
	f := rand.Float64
	if r != nil {
		f = r.Float64
	}
	switch m {
	case MoodWarm:
		return f() * 60 // reds through yellows
	case MoodCool:
		return 180 + f()*120 // cyans through violets
	default:
		return f() * 360
	}
}

// harmonyHues derives companion hues from a base hue.
func harmonyHues(base float64, h Harmony) []float64 {
	switch h {
	case HarmonyComplementary:
		return []float64{base, wrapHue(base + 180)}
	case HarmonyAnalogous:
		return []float64{base, wrapHue(base - 30), wrapHue(base + 30)}
	case HarmonyTriadic:
		return []float64{base, wrapHue(base + 120), wrapHue(base + 240)}
	case HarmonySplitComplementary:
		return []float64{base, wrapHue(base + 150), wrapHue(base + 210)}
	default: // monochromatic: one hue, roles vary lightness/saturation
		return []float64{base}
	}
}

// build assigns fixed saturation/lightness roles across the derived hues:
// primary dark and saturated, background near-white, accent vibrant.
func build(base float64, h Harmony, temp temperature) Palette {
	hues := harmonyHues(base, h)
	pick := func(i int) float64 { return hues[i%len(hues)] }

	bgHue := base
	if temp.backgroundWarmth != 0 {
		bgHue = temp.backgroundWarmth
	}

	if h == HarmonyMonochromatic {
		// Same hue, five lightness/saturation steps.
		return Palette{
			Primary:    HSLToHex(HSL{H: base, S: clamp01(0.60 * temp.saturationMul), L: clamp01(0.24 + temp.lightnessShift)}),
			Secondary:  HSLToHex(HSL{H: base, S: clamp01(0.45 * temp.saturationMul), L: clamp01(0.42 + temp.lightnessShift)}),
			Neutral:    HSLToHex(HSL{H: base, S: clamp01(0.18 * temp.saturationMul), L: clamp01(0.38 + temp.lightnessShift)}),
			Background: HSLToHex(HSL{H: base, S: 0.10, L: 0.97}),
			Accent:     HSLToHex(HSL{H: base, S: clamp01(temp.accentSaturation), L: 0.55}),
		}
	}

	return Palette{
		Primary:    HSLToHex(HSL{H: pick(0), S: clamp01(0.65 * temp.saturationMul), L: clamp01(0.25 + temp.lightnessShift)}),
		Secondary:  HSLToHex(HSL{H: pick(1), S: clamp01(0.50 * temp.saturationMul), L: clamp01(0.45 + temp.lightnessShift)}),
		Neutral:    HSLToHex(HSL{H: pick(0), S: clamp01(0.15 * temp.saturationMul), L: clamp01(0.40 + temp.lightnessShift)}),
		Background: HSLToHex(HSL{H: bgHue, S: 0.08, L: 0.97}),
		Accent:     HSLToHex(HSL{H: pick(len(hues) - 1), S: clamp01(temp.accentSaturation), L: 0.55}),
	}
}

// repairContrast iteratively darkens or lightens primary/secondary/neutral
// until each reaches the 4.5:1 text threshold against the background.
// Accent is exempt from the loop and only nudged toward the 3:1 large-text
// threshold.
func repairContrast(p Palette) Palette {
	p.Primary = repairRole(p.Primary, p.Background, textContrastTarget)
	p.Secondary = repairRole(p.Secondary, p.Background, textContrastTarget)
	p.Neutral = repairRole(p.Neutral, p.Background, textContrastTarget)
	p.Accent = repairRole(p.Accent, p.Background, accentContrastTarget)
	return p
}

func repairRole(fg, bg string, target float64) string {
	cur, err := HexToHSL(fg)
	if err != nil {
		return fg
	}
	bgHSL, err := HexToHSL(bg)
	if err != nil {
		return fg
	}

	// Light backgrounds need darker foregrounds and vice versa.
	darken := bgHSL.L >= 0.5

	for i := 0; i < repairMaxSteps; i++ {
		r, err := ContrastRatio(HSLToHex(cur), bg)
		if err != nil || r >= target {
			break
		}
		if darken {
			cur.L = math.Max(0, cur.L-repairStep)
		} else {
			cur.L = math.Min(1, cur.L+repairStep)
		}
	}
	return HSLToHex(cur)
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
