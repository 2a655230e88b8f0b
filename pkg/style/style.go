// Package style compiles a small set of user-chosen knobs (style family,
// mood, density, scale, contrast) into a dense, internally consistent set of
// visual parameters.
//
// The compiler is a pure, total lookup layer: every enum variant maps to a
// literal parameter record through one closed switch, and both renderers
// recompute the records on every pass. Families are independently authored
// presets with no inheritance or composition between them; adding a family
// means adding one case.
package style

// Family is a named aesthetic preset controlling shape, border, shadow, and
// chart rendering choices.
type Family string

// All supported style families.
const (
	FamilyClean        Family = "clean"
	FamilyEditorial    Family = "editorial"
	FamilyBold         Family = "bold"
	FamilyMinimal      Family = "minimal"
	FamilyCorporate    Family = "corporate"
	FamilyPlayful      Family = "playful"
	FamilyElegant      Family = "elegant"
	FamilyBrutalist    Family = "brutalist"
	FamilyNeubrutalist Family = "neubrutalist"
	FamilyBento        Family = "bento"
	FamilyGlass        Family = "glass"
	FamilyRetro        Family = "retro"
	FamilyOrganic      Family = "organic"
	FamilyGeometric    Family = "geometric"
	FamilyLuxe         Family = "luxe"
	FamilyTech         Family = "tech"
	FamilyZine         Family = "zine"
	FamilySwiss        Family = "swiss"
	FamilyMemphis      Family = "memphis"
	FamilySoft         Family = "soft"
)

// Families lists every style family in presentation order.
var Families = []Family{
	FamilyClean, FamilyEditorial, FamilyBold, FamilyMinimal, FamilyCorporate,
	FamilyPlayful, FamilyElegant, FamilyBrutalist, FamilyNeubrutalist,
	FamilyBento, FamilyGlass, FamilyRetro, FamilyOrganic, FamilyGeometric,
	FamilyLuxe, FamilyTech, FamilyZine, FamilySwiss, FamilyMemphis, FamilySoft,
}

// Valid reports whether f is a known style family.
func (f Family) Valid() bool {
	for _, known := range Families {
		if f == known {
			return true
		}
	}
	return false
}

// Mood is an orthogonal preset adjusting color intensity, spacing, and
// shadow depth independent of style family.
type Mood string

// All supported mood presets.
const (
	MoodCalm      Mood = "calm"
	MoodEnergetic Mood = "energetic"
	MoodPremium   Mood = "premium"
	MoodTechnical Mood = "technical"
)

// Moods lists every mood preset.
var Moods = []Mood{MoodCalm, MoodEnergetic, MoodPremium, MoodTechnical}

// Valid reports whether m is a known mood.
func (m Mood) Valid() bool {
	for _, known := range Moods {
		if m == known {
			return true
		}
	}
	return false
}

// ChartStyle selects which chart-rendering code path a data layout uses.
type ChartStyle string

// Chart rendering modes.
const (
	ChartFilled   ChartStyle = "filled"
	ChartOutlined ChartStyle = "outlined"
	ChartGradient ChartStyle = "gradient"
	ChartMinimal  ChartStyle = "minimal"
	ChartStacked  ChartStyle = "stacked"
)

// LabelStyle is the text-casing/size transform applied to short labels
// (not body paragraphs).
type LabelStyle string

// Label transforms.
const (
	LabelNormal    LabelStyle = "normal"
	LabelUppercase LabelStyle = "uppercase"
	LabelSmall     LabelStyle = "small"
)

// DataPointStyle is the marker shape on line and scatter charts.
type DataPointStyle string

// Data point marker shapes.
const (
	PointCircle  DataPointStyle = "circle"
	PointSquare  DataPointStyle = "square"
	PointDiamond DataPointStyle = "diamond"
	PointNone    DataPointStyle = "none"
)

// Params is the flat visual parameter record fully determined by a style
// family. It is derived, never stored, and recomputed on every render.
type Params struct {
	// ElementRoundness scales corner radius on every rounded shape.
	// 0 is sharp; ~2.5 is pill/blob territory.
	ElementRoundness float64

	// Stroke-width multipliers. Container borders, connecting lines
	// (timelines, chart axes), and accent decorations are never conflated.
	BorderThickness float64
	LineThickness   float64
	AccentThickness float64

	// ShadowOffset > 0 makes every card-like shape render twice: a flat
	// offset silhouette in a shadow tone, then the real shape on top.
	ShadowOffset float64

	// UseGradients is advisory; ChartStyle is the primary dispatch key.
	UseGradients bool
	ChartStyle   ChartStyle

	// DecorativeElements gates ornamental marks (arrows, squiggles,
	// accent underlines) entirely.
	DecorativeElements bool

	LabelStyle     LabelStyle
	DataPointStyle DataPointStyle

	// SpacingMultiplier and AccentOpacity feed the multiplicative
	// combination rule shared by both renderers.
	SpacingMultiplier float64
	AccentOpacity     float64
}

// MoodParams is the flat parameter record fully determined by a mood.
type MoodParams struct {
	// ColorIntensity is an opacity-style multiplier, not a hue shift.
	ColorIntensity float64

	AccentEmphasis  float64
	ElementScale    float64
	ShadowIntensity float64
	SpacingModifier float64
	SaturationShift float64

	// BackgroundTint is applied only when the user's chosen background is
	// near-white (every RGB channel > 240), preserving explicit choices.
	BackgroundTint string

	CornerRadiusMultiplier float64

	// StrokeDasharray is an SVG-style dash pattern, empty for solid.
	StrokeDasharray string
}
