package brand

import (
	"bytes"
	"testing"

	"github.com/deckforge/deckforge/pkg/color"
	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/style"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	if s.ID == "" {
		t.Error("missing id")
	}
	if s.StyleFamily != style.FamilyClean || s.Mood != style.MoodCalm {
		t.Errorf("presets = %s/%s, want clean/calm", s.StyleFamily, s.Mood)
	}
	if len(s.Layouts) != len(layout.Types) {
		t.Errorf("layouts = %d, want %d", len(s.Layouts), len(layout.Types))
	}
	if s.Tokens.Colors != DefaultPalette {
		t.Errorf("palette = %+v", s.Tokens.Colors)
	}
	if issues := Validate(s); HasErrors(issues) {
		t.Errorf("fresh state fails validation: %+v", issues)
	}
}

func TestMutatorsDoNotShareState(t *testing.T) {
	s := NewState()
	mutated := s.SetStyleFamily(style.FamilyBrutalist)

	if s.StyleFamily != style.FamilyClean {
		t.Error("mutator changed the receiver")
	}
	if mutated.StyleFamily != style.FamilyBrutalist {
		t.Error("mutator did not apply")
	}
	if mutated.Version != s.Version+1 {
		t.Errorf("version = %d, want %d", mutated.Version, s.Version+1)
	}

	mutated.Layouts[0].Regions[0].ID = "mutated"
	if s.Layouts[0].Regions[0].ID == "mutated" {
		t.Error("mutated state shares region storage with the original")
	}
}

func TestSetColorsIsExplicit(t *testing.T) {
	s := NewState()
	p := color.Palette{
		Primary:    "#222222",
		Secondary:  "#333333",
		Neutral:    "#444444",
		Background: "#FFFFFF",
		Accent:     "#CC3300",
	}
	out := s.SetColors(p)
	if out.Tokens.Colors != p {
		t.Fatal("palette not applied")
	}
	if s.Tokens.Colors == p {
		t.Fatal("original palette overwritten")
	}
}

func TestReplaceLayoutWholesale(t *testing.T) {
	s := NewState()
	variants := layout.Variants(layout.TypeTitle)
	replacement := variants[1]

	out := s.ReplaceLayout(replacement)
	got, ok := out.Layout(layout.TypeTitle)
	if !ok {
		t.Fatal("title layout missing after replace")
	}
	if got.Name != replacement.Name || len(got.Regions) != len(replacement.Regions) {
		t.Fatalf("layout not replaced wholesale: %+v", got)
	}
	if len(out.Layouts) != len(s.Layouts) {
		t.Fatal("replace changed layout count")
	}
}

func TestSetLayoutEnabled(t *testing.T) {
	s := NewState().SetLayoutEnabled(layout.TypeQuote, false)
	l, _ := s.Layout(layout.TypeQuote)
	if l.IsEnabled() {
		t.Fatal("quote layout still enabled")
	}
	for _, el := range s.EnabledLayouts() {
		if el.Type == layout.TypeQuote {
			t.Fatal("disabled layout in EnabledLayouts")
		}
	}
	if len(s.EnabledLayouts()) != len(layout.Types)-1 {
		t.Fatalf("enabled count = %d", len(s.EnabledLayouts()))
	}
}

func TestHistoryUndoRedo(t *testing.T) {
	s := NewState()
	h := NewHistory(s)

	s2 := s.SetMood(style.MoodPremium)
	h.Push(s2)
	s3 := s2.SetContrastLevel(80)
	h.Push(s3)

	if h.Current().ContrastLevel != 80 {
		t.Fatal("cursor not at latest snapshot")
	}
	if got := h.Undo(); got.ContrastLevel != s2.ContrastLevel || got.Mood != style.MoodPremium {
		t.Fatalf("undo = %+v", got)
	}
	if got := h.Undo(); got.Mood != style.MoodCalm {
		t.Fatalf("second undo mood = %s", got.Mood)
	}
	// Past the beginning: no-op.
	if got := h.Undo(); got.Mood != style.MoodCalm || h.CanUndo() {
		t.Fatal("undo past boundary moved the cursor")
	}
	if got := h.Redo(); got.Mood != style.MoodPremium {
		t.Fatalf("redo mood = %s", got.Mood)
	}
}

func TestHistoryPushTruncatesRedoTail(t *testing.T) {
	s := NewState()
	h := NewHistory(s)
	h.Push(s.SetMood(style.MoodEnergetic))
	h.Undo()

	h.Push(s.SetMood(style.MoodTechnical))
	if h.CanRedo() {
		t.Fatal("redo tail survived a push")
	}
	if h.Current().Mood != style.MoodTechnical {
		t.Fatalf("current mood = %s", h.Current().Mood)
	}
	if h.Len() != 2 {
		t.Fatalf("history length = %d, want 2", h.Len())
	}
}

func TestPresetRoundTrip(t *testing.T) {
	s := NewState().
		SetStyleFamily(style.FamilyLuxe).
		SetMood(style.MoodPremium).
		SetTypeScale(1.4)

	preset := ExportPreset(s, "Luxe Premium")

	var buf bytes.Buffer
	if err := WritePreset(preset, &buf); err != nil {
		t.Fatalf("WritePreset: %v", err)
	}
	decoded, err := ReadPreset(&buf)
	if err != nil {
		t.Fatalf("ReadPreset: %v", err)
	}
	if decoded.StyleFamily != style.FamilyLuxe || decoded.Mood != style.MoodPremium {
		t.Fatalf("presets lost in round trip: %+v", decoded)
	}
	if decoded.TypeScale != 1.4 {
		t.Fatalf("type scale = %g", decoded.TypeScale)
	}

	fresh := NewState()
	applied := decoded.Apply(fresh)
	if applied.StyleFamily != style.FamilyLuxe {
		t.Fatal("preset not applied")
	}
	if len(applied.Layouts) != len(fresh.Layouts) {
		t.Fatal("preset application disturbed layouts")
	}
	if applied.Typography.TitleSize != fresh.Typography.TitleSize {
		t.Fatal("preset overwrote non-preset typography")
	}
}

func TestValidateFlagsContrastRegression(t *testing.T) {
	s := NewState()
	p := s.Tokens.Colors
	p.Primary = "#E0E0E0" // near-invisible on the near-white background
	s = s.SetColors(p)

	issues := Validate(s)
	if !HasErrors(issues) {
		t.Fatalf("contrast regression not flagged: %+v", issues)
	}
	found := false
	for _, i := range issues {
		if i.Field == "tokens.colors.primary" && i.Severity == SeverityError {
			found = true
		}
	}
	if !found {
		t.Fatalf("no primary contrast error in %+v", issues)
	}
}

func TestValidateContrastWarningBand(t *testing.T) {
	s := NewState()
	p := s.Tokens.Colors
	p.Background = "#FFFFFF"
	p.Primary = "#808080" // ~3.95:1, between large-text and normal-text AA
	s = s.SetColors(p)

	var warned bool
	for _, i := range Validate(s) {
		if i.Field == "tokens.colors.primary" {
			if i.Severity != SeverityWarning {
				t.Fatalf("severity = %s, want warning", i.Severity)
			}
			warned = true
		}
	}
	if !warned {
		t.Fatal("mid-band contrast produced no warning")
	}
}

func TestValidateTypographyFloors(t *testing.T) {
	s := NewState()
	typo := s.Typography
	typo.TitleSize = 14
	typo.BodySize = 8
	s = s.SetTypography(typo)

	fields := map[string]bool{}
	for _, i := range Validate(s) {
		fields[i.Field] = true
	}
	if !fields["typography.titleSize"] || !fields["typography.bodySize"] {
		t.Fatalf("size floors not enforced: %v", fields)
	}
}

func TestValidateMalformedColorShortCircuitsContrast(t *testing.T) {
	s := NewState()
	p := s.Tokens.Colors
	p.Neutral = "#XYZXYZ"
	s = s.SetColors(p)

	issues := Validate(s)
	if !HasErrors(issues) {
		t.Fatal("malformed color accepted")
	}
	for _, i := range issues {
		if i.Field == "tokens.colors.primary" {
			t.Fatal("contrast checks ran despite unparseable palette")
		}
	}
}
