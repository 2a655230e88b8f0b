package deck

import (
	"archive/zip"
	"bytes"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/deckforge/deckforge/pkg/brand"
	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/layout"
)

func TestExportProducesValidArchive(t *testing.T) {
	state := brand.NewState()
	result := Export(state)

	if !result.Success {
		t.Fatalf("export failed: %v", result.Errors)
	}
	if !bytes.HasPrefix(result.Buffer, []byte("PK")) {
		t.Fatal("output does not start with the zip signature")
	}

	zr, err := zip.NewReader(bytes.NewReader(result.Buffer), int64(len(result.Buffer)))
	if err != nil {
		t.Fatalf("output is not a readable zip: %v", err)
	}

	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/slides/slide1.xml",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
	} {
		if !names[want] {
			t.Errorf("archive missing part %s", want)
		}
	}
}

func TestExportSlideIDsUnique(t *testing.T) {
	// sldMasterId and sldLayoutId values share one id space; a repeated id
	// across masters trips strict OOXML validators.
	state := brand.NewState()
	result := Export(state)
	if !result.Success {
		t.Fatalf("export failed: %v", result.Errors)
	}

	zr, err := zip.NewReader(bytes.NewReader(result.Buffer), int64(len(result.Buffer)))
	if err != nil {
		t.Fatalf("output is not a readable zip: %v", err)
	}

	idAttr := regexp.MustCompile(`<p:(?:sldMasterId|sldLayoutId) id="(\d+)"`)
	seen := map[string]string{}
	for _, f := range zr.File {
		if f.Name != "ppt/presentation.xml" && !strings.HasPrefix(f.Name, "ppt/slideMasters/slideMaster") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		for _, m := range idAttr.FindAllStringSubmatch(string(data), -1) {
			if prev, dup := seen[m[1]]; dup {
				t.Errorf("id %s used in both %s and %s", m[1], prev, f.Name)
			}
			seen[m[1]] = f.Name
		}
	}
	if len(seen) < 2*len(state.EnabledLayouts()) {
		t.Fatalf("found %d slide ids, want %d", len(seen), 2*len(state.EnabledLayouts()))
	}
}

func TestExportMetrics(t *testing.T) {
	state := brand.NewState()
	result := Export(state)

	if !result.Success {
		t.Fatalf("export failed: %v", result.Errors)
	}
	enabled := len(state.EnabledLayouts())
	if result.Metrics.SlideCount != enabled {
		t.Errorf("SlideCount = %d, want %d", result.Metrics.SlideCount, enabled)
	}
	if result.Metrics.MasterSlideCount != enabled {
		t.Errorf("MasterSlideCount = %d, want %d", result.Metrics.MasterSlideCount, enabled)
	}
	if result.Metrics.EndTime.Before(result.Metrics.StartTime) {
		t.Error("EndTime precedes StartTime")
	}
}

func TestExportFontSubstitution(t *testing.T) {
	// The default title font is Helvetica, which PowerPoint does not ship.
	state := brand.NewState()
	result := Export(state)

	if got := result.Metrics.FontSubstitutions["Helvetica"]; got != "Arial" {
		t.Fatalf("Helvetica substitution = %q, want Arial", got)
	}
	found := false
	for _, w := range result.Warnings {
		if errors.Is(w, errors.ErrCodeFontSubstituted) {
			found = true
		}
	}
	if !found {
		t.Fatal("substitution produced no FONT_SUBSTITUTED warning")
	}
	// Arial itself maps cleanly and must not be reported.
	if _, ok := result.Metrics.FontSubstitutions["Arial"]; ok {
		t.Fatal("Arial reported as substituted")
	}
}

func TestExportValidationFailure(t *testing.T) {
	state := brand.NewState()
	state.Tokens.Colors.Primary = "not-a-color"

	result := Export(state)
	if result.Success {
		t.Fatal("export succeeded with a malformed color")
	}
	if len(result.Errors) == 0 {
		t.Fatal("failed export carries no errors")
	}
	if result.Buffer != nil {
		t.Fatal("failed export still produced a buffer")
	}
	if result.Metrics.StartTime.IsZero() || result.Metrics.EndTime.IsZero() {
		t.Fatal("failed export has unpopulated metrics")
	}
}

func TestExportRejectsIncompleteState(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*brand.State)
	}{
		{"empty id", func(s *brand.State) { s.ID = "" }},
		{"empty name", func(s *brand.State) { s.Name = "" }},
		{"title below floor", func(s *brand.State) { s.Typography.TitleSize = 10 }},
		{"body below floor", func(s *brand.State) { s.Typography.BodySize = 8 }},
		{"zero font sizes", func(s *brand.State) {
			s.Typography.TitleSize = 0
			s.Typography.BodySize = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := brand.NewState()
			tt.mutate(&state)

			result := Export(state)
			if result.Success {
				t.Fatal("export succeeded with an incomplete state")
			}
			if len(result.Errors) == 0 {
				t.Fatal("failed export carries no errors")
			}
			if !errors.Is(result.Errors[0], errors.ErrCodeValidation) {
				t.Fatalf("error code = %v, want VALIDATION", errors.GetCode(result.Errors[0]))
			}
			if result.Buffer != nil {
				t.Fatal("failed export still produced a buffer")
			}
		})
	}
}

func TestExportNoEnabledLayouts(t *testing.T) {
	state := brand.NewState()
	for _, typ := range layout.Types {
		state = state.SetLayoutEnabled(typ, false)
	}
	result := Export(state)
	if result.Success {
		t.Fatal("export succeeded with zero enabled layouts")
	}
	if !errors.Is(result.Errors[0], errors.ErrCodeInvalidLayout) {
		t.Fatalf("error code = %v, want INVALID_LAYOUT", errors.GetCode(result.Errors[0]))
	}
}

func TestExportDisabledLayoutSkipped(t *testing.T) {
	state := brand.NewState()
	state = state.SetLayoutEnabled(layout.TypeQuote, false)

	result := Export(state)
	if !result.Success {
		t.Fatalf("export failed: %v", result.Errors)
	}
	if result.Metrics.SlideCount != len(layout.Types)-1 {
		t.Fatalf("SlideCount = %d, want %d", result.Metrics.SlideCount, len(layout.Types)-1)
	}
}

func TestExportChartParts(t *testing.T) {
	state := brand.NewState()
	result := Export(state)
	if !result.Success {
		t.Fatalf("export failed: %v", result.Errors)
	}

	zr, err := zip.NewReader(bytes.NewReader(result.Buffer), int64(len(result.Buffer)))
	if err != nil {
		t.Fatalf("zip: %v", err)
	}
	charts := 0
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/charts/") {
			charts++
		}
	}
	// One chart part per chart archetype.
	if charts != 8 {
		t.Fatalf("archive has %d chart parts, want 8", charts)
	}
}

func TestExportDeterministic(t *testing.T) {
	state := brand.NewState()
	a := Export(state)
	b := Export(state)
	if !bytes.Equal(a.Buffer, b.Buffer) {
		t.Fatal("identical states produced different archives")
	}
}

func TestResolveFont(t *testing.T) {
	tests := []struct {
		in          string
		want        string
		substituted bool
	}{
		{"Arial", "Arial", false},
		{"arial", "Arial", false},
		{"Helvetica", "Arial", true},
		{"Avenir Next", "Calibri", true},
		{"SF Pro Display", "Segoe UI", true},
		{"Georgia", "Georgia", false},
		{"Times New Roman", "Times New Roman", false},
		{"Comic Parade", "Arial", true},
	}
	for _, tt := range tests {
		got, sub := resolveFont(tt.in)
		if got != tt.want || sub != tt.substituted {
			t.Errorf("resolveFont(%q) = (%q, %v), want (%q, %v)", tt.in, got, sub, tt.want, tt.substituted)
		}
	}
}
