package color

import (
	"math"
	"math/rand"
	"testing"
)

func TestHexToHSL(t *testing.T) {
	tests := []struct {
		hex     string
		h, s, l float64
	}{
		{"#FF0000", 0, 1, 0.5},
		{"#00FF00", 120, 1, 0.5},
		{"#0000FF", 240, 1, 0.5},
		{"#FFFFFF", 0, 0, 1},
		{"#000000", 0, 0, 0},
		{"#808080", 0, 0, 0.502},
	}
	for _, tt := range tests {
		got, err := HexToHSL(tt.hex)
		if err != nil {
			t.Errorf("HexToHSL(%q): %v", tt.hex, err)
			continue
		}
		if math.Abs(got.H-tt.h) > 0.5 || math.Abs(got.S-tt.s) > 0.01 || math.Abs(got.L-tt.l) > 0.01 {
			t.Errorf("HexToHSL(%q) = %+v, want H=%g S=%g L=%g", tt.hex, got, tt.h, tt.s, tt.l)
		}
	}
}

func TestHexToHSLRejectsMalformed(t *testing.T) {
	for _, hex := range []string{"", "FF0000", "#FFF", "#GG0000", "#ff00", "red"} {
		if _, err := HexToHSL(hex); err == nil {
			t.Errorf("HexToHSL(%q) accepted malformed input", hex)
		}
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for _, hex := range []string{"#1A2B4C", "#EE6C4D", "#FAFAF8", "#3D5A80", "#000000", "#FFFFFF"} {
		hsl, err := HexToHSL(hex)
		if err != nil {
			t.Fatalf("HexToHSL(%q): %v", hex, err)
		}
		if got := HSLToHex(hsl); got != hex {
			t.Errorf("round trip %q = %q", hex, got)
		}
	}
}

func TestContrastRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"#000000", "#FFFFFF", 21},
		{"#FFFFFF", "#FFFFFF", 1},
		{"#777777", "#FFFFFF", 4.48},
	}
	for _, tt := range tests {
		got, err := ContrastRatio(tt.a, tt.b)
		if err != nil {
			t.Fatalf("ContrastRatio(%q, %q): %v", tt.a, tt.b, err)
		}
		if math.Abs(got-tt.want) > 0.05 {
			t.Errorf("ContrastRatio(%q, %q) = %.3f, want %.3f", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestContrastRatioSymmetric(t *testing.T) {
	ab, _ := ContrastRatio("#1A2B4C", "#FAFAF8")
	ba, _ := ContrastRatio("#FAFAF8", "#1A2B4C")
	if ab != ba {
		t.Fatalf("ratio not symmetric: %g vs %g", ab, ba)
	}
}

func TestMeetsAA(t *testing.T) {
	ok, err := MeetsAA("#000000", "#FFFFFF")
	if err != nil || !ok {
		t.Errorf("black on white should pass AA, got (%v, %v)", ok, err)
	}
	ok, err = MeetsAA("#AAAAAA", "#FFFFFF")
	if err != nil || ok {
		t.Errorf("light gray on white should fail AA, got (%v, %v)", ok, err)
	}
	large, err := MeetsAALarge("#949494", "#FFFFFF")
	if err != nil || !large {
		t.Errorf("mid gray on white should pass AA large, got (%v, %v)", large, err)
	}
}

func TestIsNearWhite(t *testing.T) {
	tests := []struct {
		hex  string
		want bool
	}{
		{"#FFFFFF", true},
		{"#FAFAF8", true},
		{"#F0F0F0", false},
		{"#1A2B4C", false},
		{"not-a-color", false},
	}
	for _, tt := range tests {
		if got := IsNearWhite(tt.hex); got != tt.want {
			t.Errorf("IsNearWhite(%q) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestPaletteValidate(t *testing.T) {
	p := Palette{
		Primary:    "#1A2B4C",
		Secondary:  "#3D5A80",
		Neutral:    "#5C6672",
		Background: "#FAFAF8",
		Accent:     "#EE6C4D",
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("valid palette rejected: %v", err)
	}
	p.Accent = "#ZZZZZZ"
	if err := p.Validate(); err == nil {
		t.Fatal("malformed accent accepted")
	}
}

func TestGenerateMeetsContrast(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, h := range Harmonies {
		for _, m := range []Mood{MoodWarm, MoodCool, MoodNeutral} {
			p, err := Generate(Options{Harmony: h, Mood: m, Rand: r})
			if err != nil {
				t.Fatalf("Generate(%s, %s): %v", h, m, err)
			}
			if err := p.Validate(); err != nil {
				t.Fatalf("Generate(%s, %s) produced invalid palette: %v", h, m, err)
			}
			for _, role := range []Role{RolePrimary, RoleSecondary, RoleNeutral} {
				ratio, err := ContrastRatio(p.Get(role), p.Background)
				if err != nil {
					t.Fatal(err)
				}
				if ratio < 4.5 {
					t.Errorf("%s/%s: %s contrast %.2f < 4.5", h, m, role, ratio)
				}
			}
			accent, _ := ContrastRatio(p.Accent, p.Background)
			if accent < 3.0 {
				t.Errorf("%s/%s: accent contrast %.2f < 3.0", h, m, accent)
			}
		}
	}
}

func TestGenerateRejectsUnknownHarmony(t *testing.T) {
	if _, err := Generate(Options{Harmony: "tetradic"}); err == nil {
		t.Fatal("unknown harmony accepted")
	}
}

func TestGenerateDeterministicWithSeededRand(t *testing.T) {
	a, err := Generate(Options{Harmony: HarmonyTriadic, Mood: MoodWarm, Rand: rand.New(rand.NewSource(7))})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(Options{Harmony: HarmonyTriadic, Mood: MoodWarm, Rand: rand.New(rand.NewSource(7))})
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("same seed produced different palettes:\n%+v\n%+v", a, b)
	}
}

func TestGenerateRespectsLocks(t *testing.T) {
	current := Palette{
		Primary:    "#112233",
		Secondary:  "#3D5A80",
		Neutral:    "#5C6672",
		Background: "#FAFAF8",
		Accent:     "#EE6C4D",
	}
	p, err := Generate(Options{
		Harmony: HarmonyAnalogous,
		Current: &current,
		Locked:  Locks{Primary: true, Accent: true},
		Rand:    rand.New(rand.NewSource(3)),
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.Primary != current.Primary {
		t.Errorf("locked primary replaced: %s", p.Primary)
	}
	if p.Accent != current.Accent {
		t.Errorf("locked accent replaced: %s", p.Accent)
	}
	if p.Secondary == current.Secondary {
		t.Error("unlocked secondary untouched by generation")
	}
}

func TestGenerateFromSeedUsesSeedHue(t *testing.T) {
	seed := "#3D5A80" // blue
	p, err := GenerateFromSeed(seed, Options{Harmony: HarmonyMonochromatic})
	if err != nil {
		t.Fatal(err)
	}
	seedHSL, _ := HexToHSL(seed)
	primHSL, _ := HexToHSL(p.Primary)
	if math.Abs(primHSL.H-seedHSL.H) > 2 {
		t.Errorf("primary hue %g drifted from seed hue %g", primHSL.H, seedHSL.H)
	}
}

func TestGenerateFromSeedRejectsBadSeed(t *testing.T) {
	if _, err := GenerateFromSeed("blue", Options{Harmony: HarmonyTriadic}); err == nil {
		t.Fatal("malformed seed accepted")
	}
}

func TestHarmonyHueRelationships(t *testing.T) {
	hues := harmonyHues(100, HarmonyComplementary)
	if len(hues) != 2 || hues[1] != 280 {
		t.Errorf("complementary of 100 = %v", hues)
	}
	hues = harmonyHues(350, HarmonyTriadic)
	if len(hues) != 3 || hues[1] != 110 || hues[2] != 230 {
		t.Errorf("triadic of 350 = %v", hues)
	}
	hues = harmonyHues(10, HarmonyAnalogous)
	if len(hues) != 3 || hues[1] != 340 || hues[2] != 40 {
		t.Errorf("analogous of 10 = %v", hues)
	}
}
