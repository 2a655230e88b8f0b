package style

import (
	"math"
	"testing"
)

func TestCompileCoversEveryFamily(t *testing.T) {
	seen := map[Params]Family{}
	for _, f := range Families {
		p := Compile(f)
		if p.SpacingMultiplier <= 0 {
			t.Errorf("%s: SpacingMultiplier = %g", f, p.SpacingMultiplier)
		}
		if p.AccentOpacity <= 0 || p.AccentOpacity > 1 {
			t.Errorf("%s: AccentOpacity = %g", f, p.AccentOpacity)
		}
		if p.ChartStyle == "" || p.LabelStyle == "" || p.DataPointStyle == "" {
			t.Errorf("%s: incomplete params %+v", f, p)
		}
		if prev, dup := seen[p]; dup {
			t.Errorf("%s and %s compile to identical params", f, prev)
		}
		seen[p] = f
	}
}

func TestCompileUnknownFamilyFallsBack(t *testing.T) {
	p := Compile(Family("vaporwave"))
	if p.ChartStyle != ChartFilled || p.SpacingMultiplier != 1 {
		t.Fatalf("fallback params = %+v", p)
	}
}

func TestFamilyValid(t *testing.T) {
	if !FamilyNeubrutalist.Valid() {
		t.Error("neubrutalist reported invalid")
	}
	if Family("vaporwave").Valid() {
		t.Error("vaporwave reported valid")
	}
}

func TestCompileMoodCoversEveryMood(t *testing.T) {
	for _, m := range Moods {
		mp := CompileMood(m)
		if mp.ColorIntensity <= 0 || mp.ElementScale <= 0 || mp.SpacingModifier <= 0 {
			t.Errorf("%s: degenerate params %+v", m, mp)
		}
		if mp.BackgroundTint == "" {
			t.Errorf("%s: missing background tint", m)
		}
	}
}

func TestOnlyTechnicalMoodDashes(t *testing.T) {
	for _, m := range Moods {
		mp := CompileMood(m)
		if (m == MoodTechnical) != (mp.StrokeDasharray != "") {
			t.Errorf("%s: dasharray = %q", m, mp.StrokeDasharray)
		}
	}
}

func TestSpacingIsMultiplicative(t *testing.T) {
	p := Compile(FamilyMinimal)     // SpacingMultiplier 1.3
	m := CompileMood(MoodCalm)      // SpacingModifier 1.15
	got := Spacing(8, 1.5, p, m)
	want := 8 * 1.5 * 1.3 * 1.15
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Spacing = %g, want %g", got, want)
	}
}

func TestAccentOpacityClamped(t *testing.T) {
	p := Compile(FamilyBold)          // AccentOpacity 1
	m := CompileMood(MoodEnergetic)   // ColorIntensity 1.15
	got := AccentOpacity(p, m, ContrastFactor(100))
	if got > 1 {
		t.Fatalf("AccentOpacity = %g, want <= 1", got)
	}
	// Attenuation still passes through below the clamp.
	low := AccentOpacity(Compile(FamilyGlass), CompileMood(MoodCalm), ContrastFactor(0))
	want := 0.6 * 0.75 * 0.85
	if math.Abs(low-want) > 1e-9 {
		t.Fatalf("attenuated AccentOpacity = %g, want %g", low, want)
	}
}

func TestContrastFactor(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{0, 0.75},
		{50, 1.0},
		{100, 1.25},
		{-10, 0.75},
		{250, 1.25},
	}
	for _, tt := range tests {
		if got := ContrastFactor(tt.level); got != tt.want {
			t.Errorf("ContrastFactor(%d) = %g, want %g", tt.level, got, tt.want)
		}
	}
}

func TestCornerRadius(t *testing.T) {
	p := Compile(FamilyPlayful)    // ElementRoundness 2
	m := CompileMood(MoodPremium)  // CornerRadiusMultiplier 0.85
	got := CornerRadius(6, 2, p, m)
	want := 6.0 * 2 * 0.85 * 2
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("CornerRadius = %g, want %g", got, want)
	}
	if CornerRadius(6, 1, Compile(FamilyBrutalist), m) != 0 {
		t.Fatal("zero-roundness family produced a radius")
	}
}

func TestShadowOffset(t *testing.T) {
	p := Compile(FamilyNeubrutalist) // ShadowOffset 5
	m := CompileMood(MoodEnergetic)  // ShadowIntensity 1.2
	if got := ShadowOffset(1, p, m); math.Abs(got-6) > 1e-9 {
		t.Fatalf("ShadowOffset = %g, want 6", got)
	}
	if ShadowOffset(1, Compile(FamilySwiss), m) != 0 {
		t.Fatal("flat family produced a shadow")
	}
}

func TestFontSize(t *testing.T) {
	m := CompileMood(MoodTechnical) // ElementScale 0.94
	got := FontSize(32, 1.25, m)
	want := 32 * 1.25 * 0.94
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("FontSize = %g, want %g", got, want)
	}
}

func TestLabelTransforms(t *testing.T) {
	if got := Label("Revenue", LabelUppercase); got != "REVENUE" {
		t.Errorf("uppercase label = %q", got)
	}
	if got := Label("Revenue", LabelSmall); got != "Revenue" {
		t.Errorf("small label mutated text: %q", got)
	}
	if LabelSizeFactor(LabelSmall) != 0.8 || LabelSizeFactor(LabelNormal) != 1 {
		t.Error("label size factors wrong")
	}
}

func TestBackgroundTintOnlyNearWhite(t *testing.T) {
	m := CompileMood(MoodCalm)
	if got := Background("#FAFAF8", m); got != m.BackgroundTint {
		t.Errorf("near-white background not tinted: %q", got)
	}
	if got := Background("#1A2B4C", m); got != "#1A2B4C" {
		t.Errorf("explicit dark background overridden: %q", got)
	}
}
